package apis

import (
	"github.com/gin-gonic/gin"
	"github.com/supakorn-kn/go-libros/objects"
)

const (
	UpdatedMessage = "Respuesta exitosa: OK"
	DeletedMessage = "Libro eliminado exitosamente"
)

type BooksHandler interface {
	List(ctx *gin.Context) ([]objects.Book, error)
	ReadOne(ctx *gin.Context) (*objects.Book, error)
	Insert(ctx *gin.Context) (*objects.CreatedBook, error)
	Update(ctx *gin.Context) error
	Delete(ctx *gin.Context) error
}

type AuthorsHandler interface {
	Insert(ctx *gin.Context) (*objects.CreatedAuthor, error)
}
