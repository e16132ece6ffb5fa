package validation

import (
	"github.com/go-playground/validator/v10"

	"github.com/rotorworks/enigma/internal/validation/validators"
)

func New() (*validator.Validate, error) {
	validate := validator.New()
	if err := validate.RegisterValidation("permutation", validators.ValidatePermutation); err != nil {
		return nil, err
	}
	if err := validate.RegisterValidation("involution", validators.ValidateInvolution); err != nil {
		return nil, err
	}
	if err := validate.RegisterValidation("nofixedpoints", validators.ValidateNoFixedPoints); err != nil {
		return nil, err
	}
	return validate, nil
}
