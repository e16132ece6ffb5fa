package machine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rotorworks/enigma/internal/core/entities/alphabet"
	"github.com/rotorworks/enigma/internal/core/entities/permutation"
	"github.com/rotorworks/enigma/internal/core/entities/rotor"
)

func mustRotor(t *testing.T, notch int) rotor.Rotor {
	t.Helper()
	r, err := rotor.Assemble(permutation.Identity(), notch, 0)
	require.NoError(t, err)
	return r
}

func advanced(before []int, r rotor.Rotor) bool {
	after := r.Wiring()
	for i := range before {
		if before[i] != after[i] {
			return true
		}
	}
	return false
}

func TestMechanism_FirstRotorAdvancesEveryKeystroke(t *testing.T) {
	rotors := []rotor.Rotor{mustRotor(t, 10), mustRotor(t, 10)}
	mech := newMechanism(len(rotors))
	for keystroke := 1; keystroke <= alphabet.Size; keystroke++ {
		before := rotors[0].Wiring()
		mech.step(rotors)
		assert.True(t, advanced(before, rotors[0]), "rotor 0 idle at keystroke %d", keystroke)
	}
}

func TestMechanism_SecondRotorAdvancesOncePerCycle(t *testing.T) {
	notch := 5
	rotors := []rotor.Rotor{mustRotor(t, notch), mustRotor(t, 20)}
	mech := newMechanism(len(rotors))

	turnovers := 0
	turnoverKeystroke := 0
	for keystroke := 1; keystroke <= alphabet.Size; keystroke++ {
		before := rotors[1].Wiring()
		mech.step(rotors)
		if advanced(before, rotors[1]) {
			turnovers++
			turnoverKeystroke = keystroke
		}
	}

	assert.Equal(t, 1, turnovers)
	// the counter reaches the notch after keystroke 5,
	// so the turnover lands on the keystroke right after
	assert.Equal(t, notch+1, turnoverKeystroke)
}

func TestMechanism_ZeroNotchTriggersOnFirstKeystroke(t *testing.T) {
	rotors := []rotor.Rotor{mustRotor(t, 0), mustRotor(t, 0)}
	mech := newMechanism(len(rotors))

	before := rotors[1].Wiring()
	mech.step(rotors)
	assert.True(t, advanced(before, rotors[1]))

	// counter has moved off the notch, so the next keystroke is quiet
	before = rotors[1].Wiring()
	mech.step(rotors)
	assert.False(t, advanced(before, rotors[1]))
}

func TestMechanism_AdvancesAreSimultaneousNotCascading(t *testing.T) {
	// with every notch at zero, all three rotors are flagged on the first
	// keystroke based on the counters observed before any of them moved
	rotors := []rotor.Rotor{mustRotor(t, 0), mustRotor(t, 0), mustRotor(t, 0)}
	mech := newMechanism(len(rotors))

	snapshots := make([][]int, len(rotors))
	for i, r := range rotors {
		snapshots[i] = r.Wiring()
	}
	mech.step(rotors)
	for i := range rotors {
		assert.True(t, advanced(snapshots[i], rotors[i]), "rotor %d idle on first keystroke", i)
	}

	// on the second keystroke the counters read 1, off every notch
	for i, r := range rotors {
		snapshots[i] = r.Wiring()
	}
	mech.step(rotors)
	assert.True(t, advanced(snapshots[0], rotors[0]))
	assert.False(t, advanced(snapshots[1], rotors[1]))
	assert.False(t, advanced(snapshots[2], rotors[2]))
}

func TestMechanism_CounterWrapsAroundAlphabet(t *testing.T) {
	notch := 3
	rotors := []rotor.Rotor{mustRotor(t, notch), mustRotor(t, 19)}
	mech := newMechanism(len(rotors))

	turnovers := 0
	for keystroke := 1; keystroke <= alphabet.Size*2; keystroke++ {
		before := rotors[1].Wiring()
		mech.step(rotors)
		if advanced(before, rotors[1]) {
			turnovers++
		}
	}
	assert.Equal(t, 2, turnovers)
}
