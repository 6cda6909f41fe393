package apis

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/supakorn-kn/go-libros/errors"
	"github.com/supakorn-kn/go-libros/middleware"
)

func NewRouter(books BooksHandler, authors AuthorsHandler) *gin.Engine {

	g := gin.New()

	// "/libro/" must answer 404 like any other unknown path instead of redirecting.
	g.RedirectTrailingSlash = false
	g.Use(middleware.Recovery(), middleware.RequestID(), middleware.Logger())

	RegisterLibraryAPI(books, authors, g)

	return g
}

func RegisterLibraryAPI(books BooksHandler, authors AuthorsHandler, g *gin.Engine) {

	g.GET("/libros", func(ctx *gin.Context) {

		list, err := books.List(ctx)
		if err != nil {
			writeError(ctx, err)
			return
		}

		ctx.JSON(http.StatusOK, list)
	})

	g.GET("/libro", func(ctx *gin.Context) {

		book, err := books.ReadOne(ctx)
		if err != nil {
			writeError(ctx, err)
			return
		}

		ctx.JSON(http.StatusOK, book)
	})

	g.POST("/libro", func(ctx *gin.Context) {

		created, err := books.Insert(ctx)
		if err != nil {
			writeError(ctx, err)
			return
		}

		ctx.JSON(http.StatusOK, created)
	})

	g.PUT("/libro", func(ctx *gin.Context) {

		err := books.Update(ctx)
		if err != nil {
			writeError(ctx, err)
			return
		}

		ctx.String(http.StatusOK, UpdatedMessage)
	})

	g.DELETE("/libro", func(ctx *gin.Context) {

		err := books.Delete(ctx)
		if err != nil {
			writeError(ctx, err)
			return
		}

		ctx.String(http.StatusOK, DeletedMessage)
	})

	g.POST("/autor", func(ctx *gin.Context) {

		created, err := authors.Insert(ctx)
		if err != nil {
			writeError(ctx, err)
			return
		}

		ctx.JSON(http.StatusOK, created)
	})

	g.NoRoute(func(ctx *gin.Context) {
		writeError(ctx, errors.EndpointNotFoundError.New())
	})
}

func writeError(ctx *gin.Context, err error) {

	assertedError, ok := errors.TryAssertError(err)
	if !ok {
		_ = ctx.Error(err)
		ctx.String(http.StatusInternalServerError, errors.UnknownError.New().Error())
		return
	}

	var statusCode int

	switch assertedError.Code {
	case errors.BookNotModifiedErrorCode:
		statusCode = http.StatusOK
	case errors.EndpointNotFoundErrorCode,
		errors.ObjectIDNotFoundErrorCode,
		errors.BookNotFoundErrorCode,
		errors.MissingIDQueryErrorCode,
		errors.EmptyBodyErrorCode:
		statusCode = http.StatusNotFound
	case errors.UnknownErrorCode:
		statusCode = http.StatusInternalServerError
	default:
		statusCode = http.StatusBadRequest
	}

	ctx.String(statusCode, assertedError.Error())
}
