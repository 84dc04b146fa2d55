package validator

import (
	"github.com/go-playground/validator/v10"
)

// echoの c.Validate から呼ばれる。
type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	return &Validator{v: validator.New()}
}

func (v *Validator) Validate(i interface{}) error {
	return v.v.Struct(i)
}
