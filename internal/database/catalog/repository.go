// Package catalog provides data access for authors and their books.
//
// This package implements the CatalogStore interface defined in
// internal/http/stores.go.
//
// # Interface Implementation
//
//	var _ http.CatalogStore = (*Repository)(nil)
//
// # Usage
//
//	repo := catalog.NewRepository(db)
//	book, err := repo.AddBook("Rowling", "", "jk@example.com", "Chamber", "Second year")
//	books, err := repo.GetBooksByAuthor("Rowling")
//
// Every lookup reads straight from the store; the repository keeps no
// state besides the connection, so there is nothing to invalidate.
package catalog

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/mrlokans/catalog/internal/entities"
)

// Repository handles all author and book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new catalog repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// AddAuthor inserts a new author and returns the stored row.
// Returns entities.ErrAuthorExists when the name is taken.
func (r *Repository) AddAuthor(name, biography, email string) (*entities.Author, error) {
	if err := createAuthor(r.db, name, biography, email); err != nil {
		return nil, err
	}
	return r.GetAuthorInfo(name)
}

// AddBook stores a book for the named author, creating the author from
// the given details when no author with that name exists yet. An
// existing author keeps its stored biography and email. Both inserts
// share one transaction.
func (r *Repository) AddBook(authorName, authorBiography, authorEmail, bookName, description string) (*entities.Book, error) {
	book := &entities.Book{
		BookName:    bookName,
		Description: description,
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		author, err := findAuthor(tx, authorName)
		if errors.Is(err, entities.ErrAuthorNotFound) {
			if err := createAuthor(tx, authorName, authorBiography, authorEmail); err != nil {
				return err
			}
			author, err = findAuthor(tx, authorName)
		}
		if err != nil {
			return err
		}

		book.AuthorID = author.ID
		if err := tx.Create(book).Error; err != nil {
			return fmt.Errorf("failed to create book %q: %w", bookName, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return book, nil
}

// GetBookInfo returns the first book with exactly the given name.
func (r *Repository) GetBookInfo(bookName string) (*entities.Book, error) {
	var book entities.Book
	err := r.db.Where("book_name = ?", bookName).Order("id").First(&book).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, entities.ErrBookNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get book %q: %w", bookName, err)
	}
	return &book, nil
}

// GetAllBooks returns every book in store order.
func (r *Repository) GetAllBooks() ([]entities.Book, error) {
	var books []entities.Book
	if err := r.db.Find(&books).Error; err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	return books, nil
}

// GetBooksByAuthor returns the books of the named author.
func (r *Repository) GetBooksByAuthor(authorName string) ([]entities.Book, error) {
	author, err := findAuthor(r.db, authorName)
	if err != nil {
		return nil, err
	}

	var books []entities.Book
	if err := r.db.Model(author).Association("Books").Find(&books); err != nil {
		return nil, fmt.Errorf("failed to list books of %q: %w", authorName, err)
	}
	return books, nil
}

// GetAuthorInfo returns the first author with exactly the given name.
func (r *Repository) GetAuthorInfo(authorName string) (*entities.Author, error) {
	return findAuthor(r.db, authorName)
}

// EditAuthorInfo applies the non-nil fields of update to the named
// author and returns the result, looked up under the new name when the
// name changed.
func (r *Repository) EditAuthorInfo(authorName string, update entities.AuthorUpdate) (*entities.Author, error) {
	author, err := findAuthor(r.db, authorName)
	if err != nil {
		return nil, err
	}

	changes := make(map[string]any, 3)
	if update.Name != nil {
		if *update.Name != author.AuthorName {
			if _, err := findAuthor(r.db, *update.Name); err == nil {
				return nil, entities.ErrAuthorExists
			} else if !errors.Is(err, entities.ErrAuthorNotFound) {
				return nil, err
			}
		}
		changes["author_name"] = *update.Name
		authorName = *update.Name
	}
	if update.Biography != nil {
		changes["short_biography"] = *update.Biography
	}
	if update.Email != nil {
		changes["email"] = *update.Email
	}

	if len(changes) > 0 {
		err := r.db.Model(&entities.Author{}).Where("id = ?", author.ID).Updates(changes).Error
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, entities.ErrAuthorExists
		}
		if err != nil {
			return nil, fmt.Errorf("failed to update author %q: %w", author.AuthorName, err)
		}
	}

	return r.GetAuthorInfo(authorName)
}

func findAuthor(db *gorm.DB, name string) (*entities.Author, error) {
	var author entities.Author
	err := db.Where("author_name = ?", name).Order("id").First(&author).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, entities.ErrAuthorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get author %q: %w", name, err)
	}
	return &author, nil
}

func createAuthor(db *gorm.DB, name, biography, email string) error {
	if _, err := findAuthor(db, name); err == nil {
		return entities.ErrAuthorExists
	} else if !errors.Is(err, entities.ErrAuthorNotFound) {
		return err
	}

	author := &entities.Author{
		AuthorName:     name,
		ShortBiography: biography,
		Email:          email,
	}
	err := db.Create(author).Error
	// Lost a race with a concurrent insert of the same name.
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return entities.ErrAuthorExists
	}
	if err != nil {
		return fmt.Errorf("failed to create author %q: %w", name, err)
	}
	return nil
}
