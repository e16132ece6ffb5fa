package loadmachine

import (
	"context"
	"errors"

	"github.com/rotorworks/enigma/internal/core/repositories"
	"github.com/rotorworks/enigma/internal/machine"
)

var ErrUnableToRestoreMachine = errors.New("unable to restore machine from saved settings")

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

// Execute restores the reflector and rotors from saved settings.
// The plugboard is never restored. A missing settings file is not an error:
// the freshly constructed random machine stays in place.
func (uc UseCase) Execute(ctx context.Context) error {
	wheels, err := uc.settingsRepo.Load(ctx)
	switch {
	case errors.Is(err, repositories.ErrSettingsNotFound):
		return nil
	case err != nil:
		return err
	}
	if err = uc.machine.Restore(wheels); err != nil {
		return ErrUnableToRestoreMachine
	}
	return nil
}
