package books

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/supakorn-kn/go-libros/errors"
)

type CreateBookRequest struct {
	Titulo  string   `json:"titulo"`
	Autores []string `json:"autores"`
	Copias  *float64 `json:"copias"`
}

// Validate only checks presence: titulo must be non-empty and autores must be given,
// an empty list is fine.
func (r CreateBookRequest) Validate() error {

	err := validation.ValidateStruct(&r,
		validation.Field(&r.Titulo, validation.Required),
		validation.Field(&r.Autores, validation.NotNil),
	)
	if err != nil {
		return errors.RequiredFieldsError.New("El titulo y los autores son campos requeridos")
	}

	return nil
}

// UpdateBookRequest also accepts the older "Id" and "copia" keys. JSON keys match
// case-insensitively so "Id" lands in ID.
type UpdateBookRequest struct {
	ID      string   `json:"id"`
	Titulo  string   `json:"titulo"`
	Autores []string `json:"autores"`
	Copias  *float64 `json:"copias"`
	Copia   *float64 `json:"copia"`
}

func (r UpdateBookRequest) Validate() error {

	err := validation.ValidateStruct(&r,
		validation.Field(&r.ID, validation.Required),
		validation.Field(&r.Titulo, validation.Required),
		validation.Field(&r.Autores, validation.NotNil),
	)
	if err != nil {
		return errors.RequiredFieldsError.New("El id, el titulo y los autores son campos requeridos")
	}

	return nil
}

func (r UpdateBookRequest) CopiasValue() *float64 {

	if r.Copias != nil {
		return r.Copias
	}

	return r.Copia
}
