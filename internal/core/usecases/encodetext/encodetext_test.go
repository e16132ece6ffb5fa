package encodetext_test

import (
	"context"
	mrand "math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rotorworks/enigma/internal/core/entities/alphabet"
	"github.com/rotorworks/enigma/internal/core/usecases/encodetext"
	"github.com/rotorworks/enigma/internal/machine"
)

func newMachine(seed int64) *machine.Machine {
	return machine.New(mrand.New(mrand.NewSource(seed))) // nolint: gosec
}

func TestEncodeTextUseCase_OK(t *testing.T) {
	ctx := context.TODO()
	m := newMachine(101)
	uc := encodetext.New(m)

	ciphertext, err := uc.Execute(ctx, "hello")
	require.NoError(t, err)
	assert.Len(t, ciphertext, 5)
	assert.NotEqual(t, "hello", ciphertext)

	// a machine reset to the same starting position decodes the text
	restored, err := machine.Assemble(newMachine(101).Snapshot())
	require.NoError(t, err)
	plaintext, err := encodetext.New(restored).Execute(ctx, ciphertext)
	require.NoError(t, err)
	assert.Equal(t, "hello", plaintext)
}

func TestEncodeTextUseCase_FoldsUppercase(t *testing.T) {
	ctx := context.TODO()

	upper, err := encodetext.New(newMachine(103)).Execute(ctx, "HELLO")
	require.NoError(t, err)
	lower, err := encodetext.New(newMachine(103)).Execute(ctx, "hello")
	require.NoError(t, err)
	assert.Equal(t, lower, upper)
}

func TestEncodeTextUseCase_InvalidCharacter(t *testing.T) {
	ctx := context.TODO()
	uc := encodetext.New(newMachine(107))

	tests := []struct {
		name string
		text string
	}{
		{"digit", "ab1"},
		{"space", "a b"},
		{"punctuation", "a!"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(ctx, tt.text)
			assert.ErrorIs(t, err, alphabet.ErrInvalidCharacter)
		})
	}
}

func TestEncodeTextUseCase_EmptyTextIsNoop(t *testing.T) {
	m := newMachine(109)
	before := m.Snapshot()

	out, err := encodetext.New(m).Execute(context.TODO(), "")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Equal(t, before, m.Snapshot())
}
