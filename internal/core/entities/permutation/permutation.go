package permutation

import (
	"errors"

	"github.com/rotorworks/enigma/internal/core/entities/alphabet"
	"github.com/rotorworks/enigma/pkg/random"
)

var ErrNotBijective = errors.New("wiring is not a bijection of the alphabet")

// Permutation is a bijective mapping of the alphabet index space onto itself.
type Permutation []int

func Identity() Permutation {
	p := make(Permutation, alphabet.Size)
	for i := range p {
		p[i] = i
	}
	return p
}

func Random(rnd random.Source) Permutation {
	p := Identity()
	rnd.Shuffle(len(p), func(i, j int) {
		p[i], p[j] = p[j], p[i]
	})
	return p
}

// FromWiring copies the given wiring after checking that it is
// a valid bijection of the index space.
func FromWiring(wiring []int) (Permutation, error) {
	if len(wiring) != alphabet.Size {
		return nil, ErrNotBijective
	}
	var seen [alphabet.Size]bool
	for _, value := range wiring {
		if !alphabet.Contains(value) || seen[value] {
			return nil, ErrNotBijective
		}
		seen[value] = true
	}
	p := make(Permutation, alphabet.Size)
	copy(p, wiring)
	return p, nil
}

func (p Permutation) Get(num int) (int, error) {
	if !alphabet.Contains(num) {
		return 0, alphabet.ErrInvalidCharacter
	}
	return p[num], nil
}

// Position returns the index that maps to the given value,
// i.e. the inverse lookup.
func (p Permutation) Position(value int) (int, error) {
	if !alphabet.Contains(value) {
		return 0, alphabet.ErrInvalidCharacter
	}
	for i, mapped := range p {
		if mapped == value {
			return i, nil
		}
	}
	// unreachable for a valid bijection
	return 0, ErrNotBijective
}

// Rotate cyclically shifts the mapping by one position:
// the element at index 0 moves to the end.
func (p Permutation) Rotate() {
	first := p[0]
	copy(p, p[1:])
	p[len(p)-1] = first
}

func (p Permutation) IsInvolution() bool {
	for i, mapped := range p {
		if !alphabet.Contains(mapped) || p[mapped] != i {
			return false
		}
	}
	return true
}

func (p Permutation) HasFixedPoints() bool {
	for i, mapped := range p {
		if mapped == i {
			return true
		}
	}
	return false
}

func (p Permutation) Clone() Permutation {
	clone := make(Permutation, len(p))
	copy(clone, p)
	return clone
}
