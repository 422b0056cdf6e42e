package http

import "github.com/mrlokans/catalog/internal/entities"

// This file consolidates the store interfaces used by HTTP controllers.
// Each controller depends only on the operations it calls.

// AuthorStore provides author lookups and writes.
type AuthorStore interface {
	AddAuthor(name, biography, email string) (*entities.Author, error)
	GetAuthorInfo(authorName string) (*entities.Author, error)
	EditAuthorInfo(authorName string, update entities.AuthorUpdate) (*entities.Author, error)
}

// BookStore provides book lookups and writes.
type BookStore interface {
	AddBook(authorName, authorBiography, authorEmail, bookName, description string) (*entities.Book, error)
	GetBookInfo(bookName string) (*entities.Book, error)
	GetAllBooks() ([]entities.Book, error)
	GetBooksByAuthor(authorName string) ([]entities.Book, error)
}

// CatalogStore combines both for wiring and tests.
type CatalogStore interface {
	AuthorStore
	BookStore
}
