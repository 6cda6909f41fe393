package models

import (
	"github.com/supakorn-kn/go-libros/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func ParseObjectID(hex string) (primitive.ObjectID, error) {

	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, errors.ObjectIDInvalidError.New(hex)
	}

	return id, nil
}

// ParseObjectIDs keeps order and duplicates. The result is non-nil even for empty input.
func ParseObjectIDs(hexes []string) ([]primitive.ObjectID, error) {

	ids := make([]primitive.ObjectID, 0, len(hexes))
	for _, hex := range hexes {

		id, err := ParseObjectID(hex)
		if err != nil {
			return nil, err
		}

		ids = append(ids, id)
	}

	return ids, nil
}

func HexIDs(ids []primitive.ObjectID) []string {

	hexes := make([]string, 0, len(ids))
	for _, id := range ids {
		hexes = append(hexes, id.Hex())
	}

	return hexes
}
