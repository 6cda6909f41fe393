// Package apitest provides an in-memory stand-in for the MongoDB models so the
// handlers can be exercised without a server.
package apitest

import (
	"context"
	"slices"
	"sync"

	"github.com/supakorn-kn/go-libros/errors"
	"github.com/supakorn-kn/go-libros/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Store struct {
	mu      sync.RWMutex
	books   []models.Book
	authors []models.Author

	// Err, when set, is returned by every call.
	Err error
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Books() *BooksStore {
	return &BooksStore{s}
}

func (s *Store) Authors() *AuthorsStore {
	return &AuthorsStore{s}
}

type BooksStore struct {
	s *Store
}

func (b *BooksStore) Insert(_ context.Context, book models.Book) (primitive.ObjectID, error) {

	b.s.mu.Lock()
	defer b.s.mu.Unlock()

	if b.s.Err != nil {
		return primitive.NilObjectID, b.s.Err
	}

	book.ID = primitive.NewObjectID()
	book.Autores = slices.Clone(book.Autores)
	b.s.books = append(b.s.books, book)

	return book.ID, nil
}

func (b *BooksStore) GetByID(_ context.Context, bookID primitive.ObjectID) (models.Book, error) {

	b.s.mu.RLock()
	defer b.s.mu.RUnlock()

	if b.s.Err != nil {
		return models.Book{}, b.s.Err
	}

	i := b.s.indexOfBook(bookID)
	if i < 0 {
		return models.Book{}, errors.BookNotFoundError.New()
	}

	return b.s.books[i], nil
}

func (b *BooksStore) Search(_ context.Context, title string) ([]models.Book, error) {

	b.s.mu.RLock()
	defer b.s.mu.RUnlock()

	if b.s.Err != nil {
		return nil, b.s.Err
	}

	result := []models.Book{}
	for _, book := range b.s.books {
		if title == "" || book.Titulo == title {
			result = append(result, book)
		}
	}

	return result, nil
}

// Update follows MongoDB's modified count: rewriting a book with identical values counts as zero.
func (b *BooksStore) Update(_ context.Context, book models.Book) (int64, error) {

	b.s.mu.Lock()
	defer b.s.mu.Unlock()

	if b.s.Err != nil {
		return 0, b.s.Err
	}

	i := b.s.indexOfBook(book.ID)
	if i < 0 {
		return 0, nil
	}

	current := b.s.books[i]
	if current.Titulo == book.Titulo && slices.Equal(current.Autores, book.Autores) && sameCopias(current.Copias, book.Copias) {
		return 0, nil
	}

	book.Autores = slices.Clone(book.Autores)
	b.s.books[i] = book

	return 1, nil
}

func (b *BooksStore) Delete(_ context.Context, bookID primitive.ObjectID) (int64, error) {

	b.s.mu.Lock()
	defer b.s.mu.Unlock()

	if b.s.Err != nil {
		return 0, b.s.Err
	}

	i := b.s.indexOfBook(bookID)
	if i < 0 {
		return 0, nil
	}

	b.s.books = slices.Delete(b.s.books, i, i+1)

	return 1, nil
}

type AuthorsStore struct {
	s *Store
}

func (a *AuthorsStore) Insert(_ context.Context, author models.Author) (primitive.ObjectID, error) {

	a.s.mu.Lock()
	defer a.s.mu.Unlock()

	if a.s.Err != nil {
		return primitive.NilObjectID, a.s.Err
	}

	author.ID = primitive.NewObjectID()
	a.s.authors = append(a.s.authors, author)

	return author.ID, nil
}

// RemoveAuthor drops an author directly, leaving dangling references in books.
func (a *AuthorsStore) RemoveAuthor(authorID primitive.ObjectID) {

	a.s.mu.Lock()
	defer a.s.mu.Unlock()

	a.s.authors = slices.DeleteFunc(a.s.authors, func(author models.Author) bool {
		return author.ID == authorID
	})
}

func (a *AuthorsStore) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]models.Author, error) {

	a.s.mu.RLock()
	defer a.s.mu.RUnlock()

	if a.s.Err != nil {
		return nil, a.s.Err
	}

	result := []models.Author{}
	for _, author := range a.s.authors {
		if slices.Contains(ids, author.ID) {
			result = append(result, author)
		}
	}

	return result, nil
}

func (s *Store) indexOfBook(bookID primitive.ObjectID) int {

	return slices.IndexFunc(s.books, func(book models.Book) bool {
		return book.ID == bookID
	})
}

func sameCopias(a, b *float64) bool {

	if a == nil || b == nil {
		return a == b
	}

	return *a == *b
}
