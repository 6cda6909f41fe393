package authors

import (
	"context"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/supakorn-kn/go-libros/apis"
	"github.com/supakorn-kn/go-libros/errors"
	"github.com/supakorn-kn/go-libros/models"
	"github.com/supakorn-kn/go-libros/objects"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AuthorsStore interface {
	Insert(ctx context.Context, author models.Author) (primitive.ObjectID, error)
}

type CreateAuthorRequest struct {
	Nombre    string `json:"nombre"`
	Biografia string `json:"biografia"`
}

func (r CreateAuthorRequest) Validate() error {

	err := validation.ValidateStruct(&r,
		validation.Field(&r.Nombre, validation.Required),
		validation.Field(&r.Biografia, validation.Required),
	)
	if err != nil {
		return errors.RequiredFieldsError.New("El nombre y la bio son campos requeridos")
	}

	return nil
}

type AuthorsAPI struct {
	store AuthorsStore
}

func NewAuthorsAPI(store AuthorsStore) *AuthorsAPI {

	return &AuthorsAPI{store: store}
}

func (api AuthorsAPI) Insert(ctx *gin.Context) (*objects.CreatedAuthor, error) {

	var req CreateAuthorRequest
	if err := apis.BindJSON(ctx, &req); err != nil {
		return nil, err
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	authorID, err := api.store.Insert(ctx.Request.Context(), models.Author{
		Nombre:    req.Nombre,
		Biografia: req.Biografia,
	})
	if err != nil {
		return nil, err
	}

	return &objects.CreatedAuthor{
		Nombre:    req.Nombre,
		Biografia: req.Biografia,
		ID:        authorID.Hex(),
	}, nil
}
