package plugboard

import (
	"errors"
	"strings"

	"github.com/rotorworks/enigma/internal/core/entities/alphabet"
	"github.com/rotorworks/enigma/internal/core/entities/permutation"
	"github.com/rotorworks/enigma/pkg/random"
)

// MaxPairs caps the number of patch cables the board accepts.
const MaxPairs = 10

var (
	ErrEmptyPairing     = errors.New("plugboard requires at least one pair")
	ErrTooManyPairings  = errors.New("plugboard accepts at most ten pairs")
	ErrMalformedPairing = errors.New("plugboard pair must connect exactly two letters")
	ErrSelfPairing      = errors.New("plugboard pair connects a letter to itself")
	ErrDuplicatePairing = errors.New("letter is already connected to another pair")
)

// Plugboard swaps a small set of letter pairs before and after the rotor chain.
// Its mapping is an involution: unpaired letters map to themselves.
type Plugboard struct {
	mapping permutation.Permutation
	pairs   string
}

// New draws between one and ten random disjoint pairs:
// the pool of unused letters is reshuffled and two letters
// are popped from it for every pair.
func New(rnd random.Source) Plugboard {
	numPairs := rnd.Intn(MaxPairs) + 1
	pool := make([]int, alphabet.Size)
	for i := range pool {
		pool[i] = i
	}
	mapping := permutation.Identity()
	tokens := make([]string, 0, numPairs)
	for i := 0; i < numPairs; i++ {
		rnd.Shuffle(len(pool), func(i, j int) {
			pool[i], pool[j] = pool[j], pool[i]
		})
		a, b := pool[0], pool[1]
		pool = pool[2:]
		mapping[a], mapping[b] = b, a
		tokens = append(tokens, string([]rune{rune('a' + a), rune('a' + b)}))
	}
	return Plugboard{
		mapping: mapping,
		pairs:   strings.Join(tokens, " "),
	}
}

// FromPairs builds a plugboard from its canonical string form,
// space-separated two-letter tokens such as "ab cd ef".
func FromPairs(pairs string) (Plugboard, error) {
	tokens := strings.Fields(pairs)
	if len(tokens) == 0 {
		return Plugboard{}, ErrEmptyPairing
	}
	if len(tokens) > MaxPairs {
		return Plugboard{}, ErrTooManyPairings
	}
	mapping := permutation.Identity()
	var used [alphabet.Size]bool
	canonical := make([]string, 0, len(tokens))
	for _, token := range tokens {
		runes := []rune(strings.ToLower(token))
		if len(runes) != 2 {
			return Plugboard{}, ErrMalformedPairing
		}
		a, err := alphabet.CharToIndex(runes[0])
		if err != nil {
			return Plugboard{}, err
		}
		b, err := alphabet.CharToIndex(runes[1])
		if err != nil {
			return Plugboard{}, err
		}
		if a == b {
			return Plugboard{}, ErrSelfPairing
		}
		if used[a] || used[b] {
			return Plugboard{}, ErrDuplicatePairing
		}
		used[a], used[b] = true, true
		mapping[a], mapping[b] = b, a
		canonical = append(canonical, string(runes))
	}
	return Plugboard{
		mapping: mapping,
		pairs:   strings.Join(canonical, " "),
	}, nil
}

func (p Plugboard) Get(num int) (int, error) {
	return p.mapping.Get(num)
}

// Pairs returns the canonical string form used for serialization.
func (p Plugboard) Pairs() string {
	return p.pairs
}

func (p Plugboard) NumPairs() int {
	return len(strings.Fields(p.pairs))
}
