package machine

import (
	"errors"

	"github.com/rotorworks/enigma/internal/core/entities/reflector"
	"github.com/rotorworks/enigma/internal/core/entities/rotor"
	"github.com/rotorworks/enigma/pkg/random"
)

// NumRotors is the number of rotors mounted in the assembly.
const NumRotors = 3

var ErrWrongRotorCount = errors.New("settings do not match the machine's rotor count")

// Assembly mounts the rotors linearly with the reflector at the far end,
// on top of the pawl-and-ratchet mechanism that turns them.
// The assembly owns its rotors; the mechanism addresses them by index.
type Assembly struct {
	rotors    []rotor.Rotor
	reflector reflector.Reflector
	mech      mechanism
}

func NewAssembly(rnd random.Source) Assembly {
	rotors := make([]rotor.Rotor, NumRotors)
	for i := range rotors {
		rotors[i] = rotor.New(rnd)
	}
	return Assembly{
		rotors:    rotors,
		reflector: reflector.New(rnd),
		mech:      newMechanism(NumRotors),
	}
}

func assembleWheels(s WheelSettings) ([]rotor.Rotor, reflector.Reflector, error) {
	if len(s.Rotors) != NumRotors {
		return nil, reflector.Reflector{}, ErrWrongRotorCount
	}
	refl, err := reflector.FromWiring(s.Reflector)
	if err != nil {
		return nil, reflector.Reflector{}, err
	}
	rotors := make([]rotor.Rotor, NumRotors)
	for i, rs := range s.Rotors {
		rotors[i], err = rotor.Assemble(rs.Wiring, rs.Notch, rs.Ringstellung)
		if err != nil {
			return nil, reflector.Reflector{}, err
		}
	}
	return rotors, refl, nil
}

// Get passes the signal forward through the rotors, through the reflector,
// and back through the rotors in reverse order. The mechanism steps exactly
// once per character, after the substitution is computed, so the positions
// in effect encode the current character, not the next.
func (a *Assembly) Get(num int) (int, error) {
	value := num
	var err error
	for idx := range a.rotors {
		if value, err = a.rotors[idx].Get(value); err != nil {
			return 0, err
		}
	}
	if value, err = a.reflector.Get(value); err != nil {
		return 0, err
	}
	for idx := len(a.rotors) - 1; idx >= 0; idx-- {
		if value, err = a.rotors[idx].Reverse(value); err != nil {
			return 0, err
		}
	}
	a.mech.step(a.rotors)
	return value, nil
}

func (a *Assembly) snapshot() WheelSettings {
	rotors := make([]RotorSettings, len(a.rotors))
	for i, r := range a.rotors {
		rotors[i] = RotorSettings{
			Wiring:       r.Wiring(),
			Notch:        r.Notch(),
			Ringstellung: r.Ringstellung(),
		}
	}
	return WheelSettings{
		Reflector: a.reflector.Wiring(),
		Rotors:    rotors,
	}
}

// restore swaps in wheels built from saved settings.
// The rotation counters are not part of the persisted state
// and start over from zero.
func (a *Assembly) restore(s WheelSettings) error {
	rotors, refl, err := assembleWheels(s)
	if err != nil {
		return err
	}
	a.rotors = rotors
	a.reflector = refl
	a.mech.reset()
	return nil
}
