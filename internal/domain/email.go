package domain

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Email is an address in RFC 5322 addr-spec shape.
type Email struct {
	value string
}

func NewEmail(raw string) (Email, error) {
	if err := validate.Var(raw, "required,email"); err != nil {
		return Email{}, newValidationError("email", raw, err)
	}
	return Email{value: raw}, nil
}

func (e Email) String() string {
	return e.value
}
