package objects

import (
	"context"
	"errors"
	"math/rand"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/suite"
	"github.com/supakorn-kn/go-libros/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeFinder struct {
	mu      sync.Mutex
	authors []models.Author
	calls   int
	err     error
}

func (f *fakeFinder) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Author, error) {

	f.mu.Lock()
	f.calls++
	f.mu.Unlock()

	// Shuffle completion order between concurrent lookups.
	time.Sleep(time.Duration(rand.Intn(5)) * time.Millisecond)

	if f.err != nil {
		return nil, f.err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	found := []models.Author{}
	for _, author := range f.authors {
		if slices.Contains(ids, author.ID) {
			found = append(found, author)
		}
	}

	return found, nil
}

type ProjectionTestSuite struct {
	suite.Suite
	authorA models.Author
	authorB models.Author
	finder  *fakeFinder
}

func (s *ProjectionTestSuite) SetupTest() {

	s.authorA = fakeAuthor()
	s.authorB = fakeAuthor()
	s.finder = &fakeFinder{authors: []models.Author{s.authorA, s.authorB}}
}

func (s *ProjectionTestSuite) TestFromModelToAuthor() {

	actual := FromModelToAuthor(s.authorA)
	s.Require().Equal(Author{
		ID:        s.authorA.ID.Hex(),
		Nombre:    s.authorA.Nombre,
		Biografia: s.authorA.Biografia,
	}, actual)
}

func (s *ProjectionTestSuite) TestFromModelToBook() {

	s.Run("Should embed every referenced author", func() {

		copias := 3.0
		model := models.Book{
			ID:      primitive.NewObjectID(),
			Titulo:  gofakeit.Book().Title,
			Autores: []primitive.ObjectID{s.authorA.ID, s.authorB.ID},
			Copias:  &copias,
		}

		actual, err := FromModelToBook(context.Background(), model, s.finder)
		s.Require().NoError(err)
		s.Require().Equal(model.ID.Hex(), actual.ID)
		s.Require().Equal(model.Titulo, actual.Titulo)
		s.Require().Equal(&copias, actual.Copias)
		s.Require().ElementsMatch([]Author{FromModelToAuthor(s.authorA), FromModelToAuthor(s.authorB)}, actual.Autores)
	})

	s.Run("Should drop references to authors that do not exist", func() {

		model := models.Book{
			ID:      primitive.NewObjectID(),
			Titulo:  gofakeit.Book().Title,
			Autores: []primitive.ObjectID{primitive.NewObjectID(), s.authorB.ID},
		}

		actual, err := FromModelToBook(context.Background(), model, s.finder)
		s.Require().NoError(err)
		s.Require().Equal([]Author{FromModelToAuthor(s.authorB)}, actual.Autores)
	})

	s.Run("Should return an empty author list when every reference dangles", func() {

		model := models.Book{
			ID:      primitive.NewObjectID(),
			Titulo:  gofakeit.Book().Title,
			Autores: []primitive.ObjectID{primitive.NewObjectID()},
		}

		actual, err := FromModelToBook(context.Background(), model, s.finder)
		s.Require().NoError(err)
		s.Require().NotNil(actual.Autores)
		s.Require().Empty(actual.Autores)
	})

	s.Run("Should skip the lookup when the book has no authors", func() {

		calls := s.finder.calls

		actual, err := FromModelToBook(context.Background(), models.Book{ID: primitive.NewObjectID()}, s.finder)
		s.Require().NoError(err)
		s.Require().NotNil(actual.Autores)
		s.Require().Empty(actual.Autores)
		s.Require().Equal(calls, s.finder.calls)
	})

	s.Run("Should return the lookup error", func() {

		finder := &fakeFinder{err: errors.New("lookup failed")}
		model := models.Book{ID: primitive.NewObjectID(), Autores: []primitive.ObjectID{s.authorA.ID}}

		_, err := FromModelToBook(context.Background(), model, finder)
		s.Require().EqualError(err, "lookup failed")
	})
}

func (s *ProjectionTestSuite) TestFromModelsToBooks() {

	s.Run("Should keep the order of the given books", func() {

		list := make([]models.Book, 20)
		for i := range list {
			list[i] = models.Book{
				ID:      primitive.NewObjectID(),
				Titulo:  gofakeit.Book().Title,
				Autores: []primitive.ObjectID{s.authorA.ID},
			}
		}

		actual, err := FromModelsToBooks(context.Background(), list, s.finder)
		s.Require().NoError(err)
		s.Require().Len(actual, len(list))

		for i, book := range actual {
			s.Require().Equal(list[i].ID.Hex(), book.ID)
			s.Require().Equal([]Author{FromModelToAuthor(s.authorA)}, book.Autores)
		}
	})

	s.Run("Should return an empty list for no books", func() {

		actual, err := FromModelsToBooks(context.Background(), []models.Book{}, s.finder)
		s.Require().NoError(err)
		s.Require().NotNil(actual)
		s.Require().Empty(actual)
	})

	s.Run("Should fail when any lookup fails", func() {

		finder := &fakeFinder{err: errors.New("lookup failed")}
		list := []models.Book{
			{ID: primitive.NewObjectID(), Autores: []primitive.ObjectID{s.authorA.ID}},
			{ID: primitive.NewObjectID(), Autores: []primitive.ObjectID{s.authorB.ID}},
		}

		actual, err := FromModelsToBooks(context.Background(), list, finder)
		s.Require().EqualError(err, "lookup failed")
		s.Require().Nil(actual)
	})
}

func TestProjection(t *testing.T) {
	suite.Run(t, new(ProjectionTestSuite))
}

func fakeAuthor() models.Author {

	return models.Author{
		ID:        primitive.NewObjectID(),
		Nombre:    gofakeit.Name(),
		Biografia: gofakeit.SentenceSimple(),
	}
}
