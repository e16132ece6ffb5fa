package savemachine

import (
	"context"
	"errors"

	"github.com/rotorworks/enigma/internal/core/repositories"
	"github.com/rotorworks/enigma/internal/machine"
)

var ErrUnableToSaveSettings = errors.New("unable to save machine settings")

type UseCase struct {
	machine      *machine.Machine
	settingsRepo repositories.SettingsRepository
}

func New(
	m *machine.Machine,
	settingsRepo repositories.SettingsRepository,
) UseCase {
	return UseCase{
		machine:      m,
		settingsRepo: settingsRepo,
	}
}

// Execute persists the machine's full state: reflector, rotors and plugboard.
// Decryption later depends on the state saved here, so this is meant to run
// before the session's first keystroke.
func (uc UseCase) Execute(ctx context.Context) error {
	if err := uc.settingsRepo.Save(ctx, uc.machine.Snapshot()); err != nil {
		return ErrUnableToSaveSettings
	}
	return nil
}
