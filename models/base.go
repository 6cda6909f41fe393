package models

import (
	"context"
	"errors"

	serverError "github.com/supakorn-kn/go-libros/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const idKey = "_id"

type BaseModel[T Item] struct {
	Coll *mongo.Collection
}

func (m *BaseModel[T]) Inject(coll *mongo.Collection) error {

	if coll == nil {
		return errors.New("collection must not be nil")
	}

	m.Coll = coll

	return nil
}

// Insert stores item and returns the ID the driver generated for it.
func (m BaseModel[T]) Insert(ctx context.Context, item T) (primitive.ObjectID, error) {

	result, err := m.Coll.InsertOne(ctx, item)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("inserted ID is not an ObjectID")
	}

	return insertedID, nil
}

func (m BaseModel[T]) FindByID(ctx context.Context, itemID primitive.ObjectID) (item T, err error) {

	result := m.Coll.FindOne(ctx, EqualMatchBson(idKey, itemID))

	err = result.Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		err = serverError.ObjectIDNotFoundError.New(itemID.Hex())
		return
	}

	return
}

// Find returns every document matching filter. The result is never nil.
func (m BaseModel[T]) Find(ctx context.Context, filter bson.D) ([]T, error) {

	cur, err := m.Coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := []T{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}

	return items, nil
}

// UpdateByID sets the given fields on the document and reports how many documents changed.
func (m BaseModel[T]) UpdateByID(ctx context.Context, itemID primitive.ObjectID, fields bson.D) (int64, error) {

	result, err := m.Coll.UpdateOne(ctx, EqualMatchBson(idKey, itemID), bson.D{{Key: "$set", Value: fields}})
	if err != nil {
		return 0, err
	}

	return result.ModifiedCount, nil
}

func (m BaseModel[T]) DeleteByID(ctx context.Context, itemID primitive.ObjectID) (int64, error) {

	result, err := m.Coll.DeleteOne(ctx, EqualMatchBson(idKey, itemID))
	if err != nil {
		return 0, err
	}

	return result.DeletedCount, nil
}
