package emailvalidator

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// Ozzo checks email format with the ozzo-validation rule set. The check is
// pure, so IsValid never returns an error; the error return satisfies the
// validator contract.
type Ozzo struct{}

func NewOzzo() *Ozzo {
	return &Ozzo{}
}

func (v *Ozzo) IsValid(email string) (bool, error) {
	err := validation.Validate(email, validation.Required, is.Email, validation.Length(0, 512))
	return err == nil, nil
}
