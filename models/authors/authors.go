package authors

import (
	"context"
	"slices"

	"github.com/supakorn-kn/go-libros/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AuthorsModel struct {
	models.BaseModel[models.Author]
}

func NewAuthorsModel(ctx context.Context, db *mongo.Database) (*AuthorsModel, error) {

	var model = new(AuthorsModel)

	coll, err := model.createCollection(ctx, db)
	if err != nil {
		return nil, err
	}

	err = model.Inject(coll)
	if err != nil {
		return nil, err
	}

	return model, nil
}

func (AuthorsModel) GetCollectionName() string {
	return "autores"
}

func (m AuthorsModel) createCollection(ctx context.Context, db *mongo.Database) (*mongo.Collection, error) {

	collectionName := m.GetCollectionName()

	collectionNameList, err := db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, err
	}

	validator := bson.D{
		{
			Key: "$jsonSchema", Value: bson.M{
				"bsonType": "object",
				"required": []string{"nombre", "biografia"},
				"properties": bson.M{
					"nombre": bson.M{
						"bsonType":    "string",
						"minLength":   1,
						"description": "Nombre must not be empty",
					},
					"biografia": bson.M{
						"bsonType":    "string",
						"minLength":   1,
						"description": "Biografia must not be empty",
					},
				},
			},
		},
	}

	if slices.Contains(collectionNameList, collectionName) {

		cmd := bson.D{
			{Key: "collMod", Value: collectionName},
			{Key: "validator", Value: validator},
			{Key: "validationLevel", Value: "strict"},
		}

		result := db.RunCommand(ctx, cmd, options.RunCmd())
		if err := result.Err(); err != nil {
			return nil, err
		}

		return db.Collection(collectionName), nil
	}

	collectionOption := options.CreateCollection()
	collectionOption.SetValidator(validator)
	collectionOption.SetValidationLevel("strict")

	err = db.CreateCollection(ctx, collectionName, collectionOption)
	if err != nil {
		return nil, err
	}

	return db.Collection(collectionName), nil
}

// FindByIDs fetches the authors whose ID is in ids with a single query. Unknown IDs are
// skipped, so the result can be shorter than ids and its order follows the collection.
func (m AuthorsModel) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Author, error) {

	if len(ids) == 0 {
		return []models.Author{}, nil
	}

	return m.Find(ctx, models.InMatchBson("_id", ids))
}
