package validators

import (
	"github.com/go-playground/validator/v10"

	"github.com/rotorworks/enigma/internal/core/entities/permutation"
)

func wiring(fl validator.FieldLevel) ([]int, bool) {
	value, ok := fl.Field().Interface().([]int)
	return value, ok
}

// ValidatePermutation checks that an []int field is a bijection
// of the alphabet index space.
func ValidatePermutation(fl validator.FieldLevel) bool {
	value, ok := wiring(fl)
	if !ok {
		return false
	}
	_, err := permutation.FromWiring(value)
	return err == nil
}

// ValidateInvolution checks that an []int field is its own inverse.
func ValidateInvolution(fl validator.FieldLevel) bool {
	value, ok := wiring(fl)
	if !ok {
		return false
	}
	p, err := permutation.FromWiring(value)
	if err != nil {
		return false
	}
	return p.IsInvolution()
}

// ValidateNoFixedPoints checks that an []int field maps no index to itself.
func ValidateNoFixedPoints(fl validator.FieldLevel) bool {
	value, ok := wiring(fl)
	if !ok {
		return false
	}
	p, err := permutation.FromWiring(value)
	if err != nil {
		return false
	}
	return !p.HasFixedPoints()
}
