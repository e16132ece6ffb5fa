package reflector

import (
	"errors"

	"github.com/rotorworks/enigma/internal/core/entities/alphabet"
	"github.com/rotorworks/enigma/internal/core/entities/permutation"
	"github.com/rotorworks/enigma/pkg/random"
)

var (
	ErrNotInvolution = errors.New("reflector wiring is not an involution")
	ErrFixedPoint    = errors.New("reflector wiring maps a letter to itself")
)

// Reflector sits at the far end of the rotor chain.
// Unlike a disc it never rotates, and its wiring is an involution
// with no fixed points: every letter is wired to a different one.
type Reflector struct {
	mapping permutation.Permutation
}

// New wires a random reflector by shuffling the alphabet
// and soldering adjacent letters of the shuffle together.
func New(rnd random.Source) Reflector {
	order := permutation.Random(rnd)
	mapping := make(permutation.Permutation, alphabet.Size)
	for i := 0; i < alphabet.Size; i += 2 {
		a, b := order[i], order[i+1]
		mapping[a], mapping[b] = b, a
	}
	return Reflector{mapping: mapping}
}

func FromWiring(wiring []int) (Reflector, error) {
	mapping, err := permutation.FromWiring(wiring)
	if err != nil {
		return Reflector{}, err
	}
	if !mapping.IsInvolution() {
		return Reflector{}, ErrNotInvolution
	}
	if mapping.HasFixedPoints() {
		return Reflector{}, ErrFixedPoint
	}
	return Reflector{mapping: mapping}, nil
}

func (r Reflector) Get(num int) (int, error) {
	return r.mapping.Get(num)
}

func (r Reflector) Wiring() []int {
	return r.mapping.Clone()
}
