package ring

import (
	"errors"

	"github.com/rotorworks/enigma/internal/core/entities/alphabet"
	"github.com/rotorworks/enigma/pkg/random"
)

var ErrInvalidNotch = errors.New("notch is outside of the alphabet range")

// Ring carries the notch position that triggers the next rotor's turnover.
// The notch never changes after construction.
type Ring struct {
	notch int
}

func New(rnd random.Source) Ring {
	return Ring{
		notch: rnd.Intn(alphabet.Size),
	}
}

func FromNotch(notch int) (Ring, error) {
	if !alphabet.Contains(notch) {
		return Ring{}, ErrInvalidNotch
	}
	return Ring{notch: notch}, nil
}

func (r Ring) Notch() int {
	return r.notch
}
