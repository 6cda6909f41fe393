package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Item interface {
	GetID() primitive.ObjectID
}

// Author is the stored shape of a document in the autores collection.
type Author struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Nombre    string             `bson:"nombre"`
	Biografia string             `bson:"biografia"`
}

func (a Author) GetID() primitive.ObjectID {
	return a.ID
}

// Book is the stored shape of a document in the libros collection. Autores holds
// soft references to Author IDs, nothing enforces that they exist.
type Book struct {
	ID      primitive.ObjectID   `bson:"_id,omitempty"`
	Titulo  string               `bson:"titulo"`
	Autores []primitive.ObjectID `bson:"autores"`
	Copias  *float64             `bson:"copias"`
}

func (b Book) GetID() primitive.ObjectID {
	return b.ID
}
