package repositories

import (
	"context"
	"errors"

	"github.com/rotorworks/enigma/internal/machine"
)

var (
	ErrSettingsNotFound  = errors.New("machine settings file does not exist")
	ErrSettingsMalformed = errors.New("machine settings are malformed")
)

// SettingsRepository persists a machine's settings.
// Save writes the reflector, every rotor and the plugboard;
// Load only ever yields the wheel sections.
type SettingsRepository interface {
	Save(ctx context.Context, settings machine.Settings) error
	Load(ctx context.Context) (machine.WheelSettings, error)
}
