package testapp

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/rotorworks/enigma/cmd/enigma/persistence"
)

func ProvidePersistence(lc fx.Lifecycle) (persistence.Config, error) {
	dir, err := os.MkdirTemp("", "enigma")
	if err != nil {
		return persistence.Config{}, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return os.RemoveAll(dir)
		},
	})

	return persistence.Config{
		SettingsFile: filepath.Join(dir, "enigma.ini"),
	}, nil
}

func NoLogging() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}
