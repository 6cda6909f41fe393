package books

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/supakorn-kn/go-libros/apis"
	"github.com/supakorn-kn/go-libros/errors"
	"github.com/supakorn-kn/go-libros/models"
	"github.com/supakorn-kn/go-libros/objects"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BooksStore interface {
	Insert(ctx context.Context, book models.Book) (primitive.ObjectID, error)
	GetByID(ctx context.Context, bookID primitive.ObjectID) (models.Book, error)
	Search(ctx context.Context, title string) ([]models.Book, error)
	Update(ctx context.Context, book models.Book) (int64, error)
	Delete(ctx context.Context, bookID primitive.ObjectID) (int64, error)
}

type BooksAPI struct {
	store   BooksStore
	authors objects.AuthorFinder
}

func NewBooksAPI(store BooksStore, authors objects.AuthorFinder) *BooksAPI {

	return &BooksAPI{
		store:   store,
		authors: authors,
	}
}

func (api BooksAPI) List(ctx *gin.Context) ([]objects.Book, error) {

	list, err := api.store.Search(ctx.Request.Context(), ctx.Query("titulo"))
	if err != nil {
		return nil, err
	}

	return objects.FromModelsToBooks(ctx.Request.Context(), list, api.authors)
}

func (api BooksAPI) ReadOne(ctx *gin.Context) (*objects.Book, error) {

	rawID := ctx.Query("id")
	if rawID == "" {
		return nil, errors.MissingIDQueryError.New()
	}

	bookID, err := models.ParseObjectID(rawID)
	if err != nil {
		return nil, err
	}

	model, err := api.store.GetByID(ctx.Request.Context(), bookID)
	if err != nil {
		return nil, err
	}

	book, err := objects.FromModelToBook(ctx.Request.Context(), model, api.authors)
	if err != nil {
		return nil, err
	}

	return &book, nil
}

func (api BooksAPI) Insert(ctx *gin.Context) (*objects.CreatedBook, error) {

	var req CreateBookRequest
	if err := apis.BindJSON(ctx, &req); err != nil {
		return nil, err
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	autores, err := models.ParseObjectIDs(req.Autores)
	if err != nil {
		return nil, err
	}

	bookID, err := api.store.Insert(ctx.Request.Context(), models.Book{
		Titulo:  req.Titulo,
		Autores: autores,
		Copias:  req.Copias,
	})
	if err != nil {
		return nil, err
	}

	return &objects.CreatedBook{
		Titulo:  req.Titulo,
		Autores: models.HexIDs(autores),
		Copias:  req.Copias,
		ID:      bookID.Hex(),
	}, nil
}

// Update overwrites the book. A book that was not modified, because the ID is unknown
// or nothing changed, is reported with BookNotModifiedError.
func (api BooksAPI) Update(ctx *gin.Context) error {

	var req UpdateBookRequest
	if err := apis.BindTruthyJSON(ctx, &req); err != nil {
		return err
	}

	if err := req.Validate(); err != nil {
		return err
	}

	bookID, err := models.ParseObjectID(req.ID)
	if err != nil {
		return err
	}

	autores, err := models.ParseObjectIDs(req.Autores)
	if err != nil {
		return err
	}

	modified, err := api.store.Update(ctx.Request.Context(), models.Book{
		ID:      bookID,
		Titulo:  req.Titulo,
		Autores: autores,
		Copias:  req.CopiasValue(),
	})
	if err != nil {
		return err
	}

	if modified == 0 {
		return errors.BookNotModifiedError.New()
	}

	return nil
}

func (api BooksAPI) Delete(ctx *gin.Context) error {

	rawID := ctx.Query("id")
	if rawID == "" {
		return errors.MissingDeleteIDError.New()
	}

	bookID, err := models.ParseObjectID(rawID)
	if err != nil {
		return err
	}

	deleted, err := api.store.Delete(ctx.Request.Context(), bookID)
	if err != nil {
		return err
	}

	if deleted == 0 {
		return errors.BookNotFoundError.New()
	}

	return nil
}
