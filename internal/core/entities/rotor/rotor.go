package rotor

import (
	"errors"

	"github.com/rotorworks/enigma/internal/core/entities/alphabet"
	"github.com/rotorworks/enigma/internal/core/entities/disc"
	"github.com/rotorworks/enigma/internal/core/entities/ring"
	"github.com/rotorworks/enigma/pkg/random"
)

var ErrInvalidRingstellung = errors.New("ring setting is outside of the alphabet range")

// Rotor combines a rotating disc with an alphabet ring.
// The ring setting (Ringstellung) shifts the effective contact position
// relative to the alphabet ring and is fixed for the rotor's lifetime.
type Rotor struct {
	disc         disc.Disc
	ring         ring.Ring
	ringstellung int
}

func New(rnd random.Source) Rotor {
	return Rotor{
		disc:         disc.New(rnd),
		ring:         ring.New(rnd),
		ringstellung: rnd.Intn(alphabet.Size),
	}
}

// Assemble builds a rotor from explicit wiring and settings,
// validating each part.
func Assemble(wiring []int, notch, ringstellung int) (Rotor, error) {
	d, err := disc.FromWiring(wiring)
	if err != nil {
		return Rotor{}, err
	}
	r, err := ring.FromNotch(notch)
	if err != nil {
		return Rotor{}, err
	}
	if !alphabet.Contains(ringstellung) {
		return Rotor{}, ErrInvalidRingstellung
	}
	return Rotor{
		disc:         d,
		ring:         r,
		ringstellung: ringstellung,
	}, nil
}

func (r Rotor) Get(num int) (int, error) {
	if !alphabet.Contains(num) {
		return 0, alphabet.ErrInvalidCharacter
	}
	shifted := (num + r.ringstellung) % alphabet.Size
	return r.disc.Get(shifted)
}

// Reverse maps a value back through the rotor,
// undoing both the disc mapping and the ring setting shift.
func (r Rotor) Reverse(num int) (int, error) {
	shifted, err := r.disc.Position(num)
	if err != nil {
		return 0, err
	}
	return (shifted - r.ringstellung + alphabet.Size) % alphabet.Size, nil
}

func (r *Rotor) Rotate() {
	r.disc.Rotate()
}

func (r Rotor) Notch() int {
	return r.ring.Notch()
}

func (r Rotor) Ringstellung() int {
	return r.ringstellung
}

func (r Rotor) Wiring() []int {
	return r.disc.Wiring()
}
