package machine

import (
	"github.com/rotorworks/enigma/internal/core/entities/alphabet"
	"github.com/rotorworks/enigma/internal/core/entities/rotor"
)

// mechanism is the pawl-and-ratchet stepping controller.
// It keeps one rotation counter per rotor except the last
// and decides on every keystroke which rotors advance.
type mechanism struct {
	counts []int
}

func newMechanism(numRotors int) mechanism {
	return mechanism{
		counts: make([]int, numRotors-1),
	}
}

// step advances the rotors for a single keystroke.
// Rotor 0 always advances; rotor idx advances when the previous rotor's
// counter sits on the previous rotor's notch. All turnover decisions are
// made against the counters as they were before this keystroke, so rotors
// flagged together advance simultaneously rather than cascading.
func (m *mechanism) step(rotors []rotor.Rotor) {
	pending := make([]bool, len(rotors))
	pending[0] = true
	for idx := 1; idx < len(rotors); idx++ {
		if m.counts[idx-1] == rotors[idx-1].Notch() {
			pending[idx] = true
		}
	}
	for idx, advance := range pending {
		if !advance {
			continue
		}
		rotors[idx].Rotate()
		if idx < len(m.counts) {
			m.counts[idx] = (m.counts[idx] + 1) % alphabet.Size
		}
	}
}

// reset zeroes the rotation counters, used when wheels are swapped in
// from a saved configuration.
func (m *mechanism) reset() {
	for i := range m.counts {
		m.counts[i] = 0
	}
}
