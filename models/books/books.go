package books

import (
	"context"
	"slices"

	serverError "github.com/supakorn-kn/go-libros/errors"
	"github.com/supakorn-kn/go-libros/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const titleIndex = "titulo_1"

type BooksModel struct {
	models.BaseModel[models.Book]
}

func NewBooksModel(ctx context.Context, db *mongo.Database) (*BooksModel, error) {

	var model = new(BooksModel)

	coll, err := model.createCollection(ctx, db)
	if err != nil {
		return nil, err
	}

	err = model.createIndexes(ctx, coll)
	if err != nil {
		return nil, err
	}

	err = model.Inject(coll)
	if err != nil {
		return nil, err
	}

	return model, nil
}

func (BooksModel) GetCollectionName() string {
	return "libros"
}

func (m BooksModel) createCollection(ctx context.Context, db *mongo.Database) (*mongo.Collection, error) {

	collectionName := m.GetCollectionName()

	collectionNameList, err := db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, err
	}

	validator := bson.D{
		{
			Key: "$jsonSchema", Value: bson.M{
				"bsonType": "object",
				"required": []string{"titulo", "autores"},
				"properties": bson.M{
					"titulo": bson.M{
						"bsonType":    "string",
						"description": "Titulo must be a string",
					},
					"autores": bson.M{
						"bsonType": "array",
						"items": bson.M{
							"bsonType": "objectId",
						},
						"description": "Autores must be an array of author IDs",
					},
					"copias": bson.M{
						"bsonType":    bson.A{"int", "long", "double", "null"},
						"description": "Copias must be a number when given",
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

func (m BooksModel) createIndexes(ctx context.Context, coll *mongo.Collection) error {

	cur, err := coll.Indexes().List(ctx)
	if err != nil {
		return err
	}

	var indexes []bson.M
	err = cur.All(ctx, &indexes)
	if err != nil {
		return err
	}

	contains := slices.ContainsFunc(indexes, func(m bson.M) bool {
		return m["name"] == titleIndex
	})

	if contains {
		return nil
	}

	indexModelOption := options.Index()
	indexModelOption.SetName(titleIndex)

	indexModel := mongo.IndexModel{
		Keys: bson.D{
			{Key: "titulo", Value: 1},
		},
		Options: indexModelOption,
	}

	_, err = coll.Indexes().CreateOne(ctx, indexModel, options.CreateIndexes())
	return err
}

func (m BooksModel) GetByID(ctx context.Context, bookID primitive.ObjectID) (models.Book, error) {

	book, err := m.FindByID(ctx, bookID)
	if serverError.HasCode(err, serverError.ObjectIDNotFoundErrorCode) {
		return models.Book{}, serverError.BookNotFoundError.New()
	}

	return book, err
}

// Search returns books whose titulo equals title exactly, or every book when title is empty.
func (m BooksModel) Search(ctx context.Context, title string) ([]models.Book, error) {

	filter := models.AllMatchBson()
	if title != "" {
		filter = models.EqualMatchBson("titulo", title)
	}

	return m.Find(ctx, filter)
}

// Update overwrites titulo, autores and copias of the book with the same ID.
func (m BooksModel) Update(ctx context.Context, book models.Book) (int64, error) {

	fields := bson.D{
		{Key: "titulo", Value: book.Titulo},
		{Key: "autores", Value: book.Autores},
		{Key: "copias", Value: book.Copias},
	}

	return m.UpdateByID(ctx, book.ID, fields)
}

func (m BooksModel) Delete(ctx context.Context, bookID primitive.ObjectID) (int64, error) {

	return m.DeleteByID(ctx, bookID)
}
