package encodetext

import (
	"context"
	"strings"
	"unicode"

	"github.com/rotorworks/enigma/internal/core/entities/alphabet"
	"github.com/rotorworks/enigma/internal/machine"
)

type UseCase struct {
	machine *machine.Machine
}

func New(m *machine.Machine) UseCase {
	return UseCase{
		machine: m,
	}
}

// Execute encodes text one character at a time, folding uppercase input.
// The first invalid character aborts the operation before the rotors step
// for it, so already-encoded characters have advanced the machine but the
// offending one has not.
func (uc UseCase) Execute(_ context.Context, text string) (string, error) {
	var encoded strings.Builder
	encoded.Grow(len(text))
	for _, char := range text {
		num, err := alphabet.CharToIndex(unicode.ToLower(char))
		if err != nil {
			return "", err
		}
		out, err := uc.machine.Get(num)
		if err != nil {
			return "", err
		}
		outChar, err := alphabet.IndexToChar(out)
		if err != nil {
			return "", err
		}
		encoded.WriteRune(outChar)
	}
	return encoded.String(), nil
}
