// Package machine implements the cipher engine: a plugboard in front of
// a rotor assembly with a reflector, advanced by a pawl-and-ratchet
// stepping mechanism between characters.
//
// A machine instance owns all of its mutable state and must not be shared
// between concurrent sessions. Stepping counters are not part of the
// persisted settings: a restored machine starts counting from zero, so a
// session that is meant to be decrypted later has to be saved before its
// first keystroke.
package machine

import (
	"github.com/rotorworks/enigma/internal/core/entities/alphabet"
	"github.com/rotorworks/enigma/internal/core/entities/plugboard"
	"github.com/rotorworks/enigma/pkg/random"
)

type Machine struct {
	plugboard plugboard.Plugboard
	assembly  Assembly
}

func New(rnd random.Source) *Machine {
	return &Machine{
		plugboard: plugboard.New(rnd),
		assembly:  NewAssembly(rnd),
	}
}

// Assemble builds a machine entirely from explicit settings.
func Assemble(s Settings) (*Machine, error) {
	pb, err := plugboard.FromPairs(s.Plugboard)
	if err != nil {
		return nil, err
	}
	rotors, refl, err := assembleWheels(s.WheelSettings)
	if err != nil {
		return nil, err
	}
	return &Machine{
		plugboard: pb,
		assembly: Assembly{
			rotors:    rotors,
			reflector: refl,
			mech:      newMechanism(NumRotors),
		},
	}, nil
}

// Get encodes a single character index: plugboard, rotor chain, plugboard.
// Invalid input is rejected before the rotors step.
func (m *Machine) Get(num int) (int, error) {
	if !alphabet.Contains(num) {
		return 0, alphabet.ErrInvalidCharacter
	}
	value, err := m.plugboard.Get(num)
	if err != nil {
		return 0, err
	}
	if value, err = m.assembly.Get(value); err != nil {
		return 0, err
	}
	return m.plugboard.Get(value)
}

// Snapshot captures the full machine state: reflector, rotors and plugboard.
func (m *Machine) Snapshot() Settings {
	return Settings{
		WheelSettings: m.assembly.snapshot(),
		Plugboard:     m.plugboard.Pairs(),
	}
}

// Restore swaps in the reflector and rotors from saved settings.
// The plugboard keeps whatever state was in memory: save writes all three
// sections but load only ever restores the wheels.
func (m *Machine) Restore(s WheelSettings) error {
	return m.assembly.restore(s)
}

// Plugboard returns a copy of the machine's plugboard.
func (m *Machine) Plugboard() plugboard.Plugboard {
	return m.plugboard
}
