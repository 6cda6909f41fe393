package objects

import (
	"context"

	"github.com/supakorn-kn/go-libros/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"
)

type Book struct {
	ID      string   `json:"id"`
	Titulo  string   `json:"titulo"`
	Autores []Author `json:"autores"`
	Copias  *float64 `json:"copias,omitempty"`
}

type CreatedBook struct {
	Titulo  string   `json:"titulo"`
	Autores []string `json:"autores"`
	Copias  *float64 `json:"copias,omitempty"`
	ID      string   `json:"id"`
}

// AuthorFinder resolves author references with one set-membership lookup.
type AuthorFinder interface {
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Author, error)
}

// FromModelToBook embeds the authors referenced by model. References to authors that
// no longer exist are dropped, so Autores is a subset of model.Autores.
func FromModelToBook(ctx context.Context, model models.Book, finder AuthorFinder) (Book, error) {

	autores := []Author{}

	if len(model.Autores) > 0 {

		found, err := finder.FindByIDs(ctx, model.Autores)
		if err != nil {
			return Book{}, err
		}

		for _, author := range found {
			autores = append(autores, FromModelToAuthor(author))
		}
	}

	return Book{
		ID:      model.ID.Hex(),
		Titulo:  model.Titulo,
		Autores: autores,
		Copias:  model.Copias,
	}, nil
}

// FromModelsToBooks projects every book concurrently. The result keeps the order of
// list; the first failing lookup cancels the others.
func FromModelsToBooks(ctx context.Context, list []models.Book, finder AuthorFinder) ([]Book, error) {

	result := make([]Book, len(list))

	g, gctx := errgroup.WithContext(ctx)
	for i, model := range list {

		i, model := i, model
		g.Go(func() error {

			book, err := FromModelToBook(gctx, model, finder)
			if err != nil {
				return err
			}

			result[i] = book
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return result, nil
}
