package objects

import (
	"github.com/supakorn-kn/go-libros/models"
)

type Author struct {
	ID        string `json:"id"`
	Nombre    string `json:"nombre"`
	Biografia string `json:"biografia"`
}

type CreatedAuthor struct {
	Nombre    string `json:"nombre"`
	Biografia string `json:"biografia"`
	ID        string `json:"id"`
}

func FromModelToAuthor(model models.Author) Author {
	return Author{
		ID:        model.ID.Hex(),
		Nombre:    model.Nombre,
		Biografia: model.Biografia,
	}
}
