package persistence

import (
	"github.com/go-playground/validator/v10"

	"github.com/rotorworks/enigma/internal/core/repositories"
	"github.com/rotorworks/enigma/internal/persistence/inifile"
)

type Config struct {
	SettingsFile string
}

func Provide(cfg Config, validate *validator.Validate) repositories.SettingsRepository {
	return inifile.New(cfg.SettingsFile, validate)
}
