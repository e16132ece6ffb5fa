package disc

import (
	"github.com/rotorworks/enigma/internal/core/entities/permutation"
	"github.com/rotorworks/enigma/pkg/random"
)

// Disc is the rotating wiring core of a rotor.
// Its mapping is cyclically shifted one position per Rotate call.
type Disc struct {
	mapping permutation.Permutation
}

func New(rnd random.Source) Disc {
	return Disc{
		mapping: permutation.Random(rnd),
	}
}

func FromWiring(wiring []int) (Disc, error) {
	mapping, err := permutation.FromWiring(wiring)
	if err != nil {
		return Disc{}, err
	}
	return Disc{mapping: mapping}, nil
}

func (d Disc) Get(num int) (int, error) {
	return d.mapping.Get(num)
}

// Position is the inverse lookup of Get,
// used by the return leg of the signal path.
func (d Disc) Position(value int) (int, error) {
	return d.mapping.Position(value)
}

func (d *Disc) Rotate() {
	d.mapping.Rotate()
}

// Wiring returns a copy of the disc's current mapping state.
func (d Disc) Wiring() []int {
	return d.mapping.Clone()
}
