package catalog

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/catalog/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, *gorm.DB) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "catalog.db")

	db, err := gorm.Open(sqlite.Open(dbPath+"?_foreign_keys=on"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&entities.Author{}, &entities.Book{}))

	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})

	return NewRepository(db), db
}

func strPtr(s string) *string {
	return &s
}

func countRows(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(model).Count(&count).Error)
	return count
}

func TestRepository_AddAuthor(t *testing.T) {
	repo, _ := setupTestDB(t)

	author, err := repo.AddAuthor("Kuja", "Lived a long life!", "k@x.com")

	require.NoError(t, err)
	assert.NotZero(t, author.ID)
	assert.Equal(t, "Kuja", author.AuthorName)
	assert.Equal(t, "Lived a long life!", author.ShortBiography)
	assert.Equal(t, "k@x.com", author.Email)
}

func TestRepository_AddAuthor_Duplicate(t *testing.T) {
	repo, db := setupTestDB(t)

	_, err := repo.AddAuthor("Kuja", "bio", "k@x.com")
	require.NoError(t, err)

	_, err = repo.AddAuthor("Kuja", "other", "other@x.com")
	assert.ErrorIs(t, err, entities.ErrAuthorExists)
	assert.Equal(t, int64(1), countRows(t, db, &entities.Author{}))
}

func TestRepository_AddAuthor_SameEmailAllowed(t *testing.T) {
	repo, _ := setupTestDB(t)

	_, err := repo.AddAuthor("Kuja", "", "shared@x.com")
	require.NoError(t, err)
	_, err = repo.AddAuthor("Jecht", "", "shared@x.com")
	assert.NoError(t, err)
}

func TestRepository_GetAuthorInfo_NotFound(t *testing.T) {
	repo, _ := setupTestDB(t)

	author, err := repo.GetAuthorInfo("Nonexistent")

	assert.Nil(t, author)
	assert.ErrorIs(t, err, entities.ErrAuthorNotFound)
}

func TestRepository_GetAuthorInfo_ExactMatch(t *testing.T) {
	repo, _ := setupTestDB(t)

	_, err := repo.AddAuthor("Kuja", "", "")
	require.NoError(t, err)

	_, err = repo.GetAuthorInfo("kuja")
	assert.ErrorIs(t, err, entities.ErrAuthorNotFound)
	_, err = repo.GetAuthorInfo("Kuj")
	assert.ErrorIs(t, err, entities.ErrAuthorNotFound)
}

func TestRepository_AddBook_CreatesMissingAuthor(t *testing.T) {
	repo, db := setupTestDB(t)

	book, err := repo.AddBook("Rowling", "British author", "jk@example.com", "Philosopher's Stone", "First year")
	require.NoError(t, err)
	assert.NotZero(t, book.ID)
	assert.NotZero(t, book.AuthorID)

	assert.Equal(t, int64(1), countRows(t, db, &entities.Author{}))
	assert.Equal(t, int64(1), countRows(t, db, &entities.Book{}))

	author, err := repo.GetAuthorInfo("Rowling")
	require.NoError(t, err)
	assert.Equal(t, author.ID, book.AuthorID)
	assert.Equal(t, "British author", author.ShortBiography)
	assert.Equal(t, "jk@example.com", author.Email)
}

func TestRepository_AddBook_ReusesExistingAuthor(t *testing.T) {
	repo, db := setupTestDB(t)

	first, err := repo.AddBook("Rowling", "British author", "jk@example.com", "Philosopher's Stone", "First year")
	require.NoError(t, err)
	second, err := repo.AddBook("Rowling", "ignored", "ignored@example.com", "Chamber of Secrets", "Second year")
	require.NoError(t, err)

	assert.Equal(t, first.AuthorID, second.AuthorID)
	assert.Equal(t, int64(1), countRows(t, db, &entities.Author{}))
	assert.Equal(t, int64(2), countRows(t, db, &entities.Book{}))

	author, err := repo.GetAuthorInfo("Rowling")
	require.NoError(t, err)
	assert.Equal(t, "jk@example.com", author.Email)
}

func TestRepository_AddBook_RollsBackAuthorOnFailure(t *testing.T) {
	repo, db := setupTestDB(t)

	err := db.Callback().Create().Before("gorm:create").Register("test:fail_books", func(tx *gorm.DB) {
		if tx.Statement.Schema != nil && tx.Statement.Schema.Table == "books" {
			tx.AddError(errors.New("disk full"))
		}
	})
	require.NoError(t, err)

	_, err = repo.AddBook("Rowling", "", "", "Philosopher's Stone", "")
	require.Error(t, err)

	assert.Zero(t, countRows(t, db, &entities.Author{}))
	assert.Zero(t, countRows(t, db, &entities.Book{}))
}

func TestRepository_GetBookInfo(t *testing.T) {
	repo, _ := setupTestDB(t)

	_, err := repo.AddBook("Kuja", "", "", "Gogi", "A nice book!")
	require.NoError(t, err)

	book, err := repo.GetBookInfo("Gogi")
	require.NoError(t, err)
	assert.Equal(t, "Gogi", book.BookName)
	assert.Equal(t, "A nice book!", book.Description)
}

func TestRepository_GetBookInfo_FirstMatch(t *testing.T) {
	repo, _ := setupTestDB(t)

	_, err := repo.AddBook("Kuja", "", "", "Gogi", "first")
	require.NoError(t, err)
	_, err = repo.AddBook("Jecht", "", "", "Gogi", "second")
	require.NoError(t, err)

	book, err := repo.GetBookInfo("Gogi")
	require.NoError(t, err)
	assert.Equal(t, "first", book.Description)
}

func TestRepository_GetBookInfo_NotFound(t *testing.T) {
	repo, _ := setupTestDB(t)

	book, err := repo.GetBookInfo("Nonexistent")

	assert.Nil(t, book)
	assert.ErrorIs(t, err, entities.ErrBookNotFound)
}

func TestRepository_GetAllBooks(t *testing.T) {
	repo, _ := setupTestDB(t)

	books, err := repo.GetAllBooks()
	require.NoError(t, err)
	assert.Empty(t, books)

	_, err = repo.AddBook("Rowling", "", "", "Philosopher's Stone", "")
	require.NoError(t, err)
	_, err = repo.AddBook("Kuja", "", "", "Gogi", "")
	require.NoError(t, err)
	_, err = repo.AddBook("Rowling", "", "", "Chamber of Secrets", "")
	require.NoError(t, err)

	books, err = repo.GetAllBooks()
	require.NoError(t, err)

	names := make([]string, 0, len(books))
	for _, b := range books {
		names = append(names, b.BookName)
	}
	assert.ElementsMatch(t, []string{"Philosopher's Stone", "Gogi", "Chamber of Secrets"}, names)
}

func TestRepository_GetBooksByAuthor(t *testing.T) {
	repo, _ := setupTestDB(t)

	_, err := repo.AddBook("Rowling", "", "", "Philosopher's Stone", "")
	require.NoError(t, err)
	_, err = repo.AddBook("Kuja", "", "", "Gogi", "")
	require.NoError(t, err)
	_, err = repo.AddBook("Rowling", "", "", "Chamber of Secrets", "")
	require.NoError(t, err)

	books, err := repo.GetBooksByAuthor("Rowling")
	require.NoError(t, err)

	names := make([]string, 0, len(books))
	for _, b := range books {
		names = append(names, b.BookName)
	}
	assert.ElementsMatch(t, []string{"Philosopher's Stone", "Chamber of Secrets"}, names)
}

func TestRepository_GetBooksByAuthor_NoBooks(t *testing.T) {
	repo, _ := setupTestDB(t)

	_, err := repo.AddAuthor("Kuja", "", "")
	require.NoError(t, err)

	books, err := repo.GetBooksByAuthor("Kuja")
	require.NoError(t, err)
	assert.Empty(t, books)
}

func TestRepository_GetBooksByAuthor_UnknownAuthor(t *testing.T) {
	repo, _ := setupTestDB(t)

	books, err := repo.GetBooksByAuthor("Nonexistent")

	assert.Nil(t, books)
	assert.ErrorIs(t, err, entities.ErrAuthorNotFound)
}

func TestRepository_EditAuthorInfo_EmailOnly(t *testing.T) {
	repo, _ := setupTestDB(t)

	_, err := repo.AddAuthor("Kuja", "Lived a long life!", "k@x.com")
	require.NoError(t, err)

	author, err := repo.EditAuthorInfo("Kuja", entities.AuthorUpdate{Email: strPtr("new@x.com")})
	require.NoError(t, err)

	assert.Equal(t, "Kuja", author.AuthorName)
	assert.Equal(t, "Lived a long life!", author.ShortBiography)
	assert.Equal(t, "new@x.com", author.Email)
}

func TestRepository_EditAuthorInfo_ClearsWithEmptyString(t *testing.T) {
	repo, _ := setupTestDB(t)

	_, err := repo.AddAuthor("Kuja", "Lived a long life!", "k@x.com")
	require.NoError(t, err)

	author, err := repo.EditAuthorInfo("Kuja", entities.AuthorUpdate{Biography: strPtr("")})
	require.NoError(t, err)

	assert.Empty(t, author.ShortBiography)
	assert.Equal(t, "k@x.com", author.Email)
}

func TestRepository_EditAuthorInfo_Rename(t *testing.T) {
	repo, _ := setupTestDB(t)

	created, err := repo.AddAuthor("Kuja", "bio", "k@x.com")
	require.NoError(t, err)
	_, err = repo.AddBook("Kuja", "", "", "Gogi", "")
	require.NoError(t, err)

	author, err := repo.EditAuthorInfo("Kuja", entities.AuthorUpdate{Name: strPtr("Jecht")})
	require.NoError(t, err)
	assert.Equal(t, created.ID, author.ID)
	assert.Equal(t, "Jecht", author.AuthorName)

	_, err = repo.GetAuthorInfo("Jecht")
	assert.NoError(t, err)
	_, err = repo.GetAuthorInfo("Kuja")
	assert.ErrorIs(t, err, entities.ErrAuthorNotFound)

	books, err := repo.GetBooksByAuthor("Jecht")
	require.NoError(t, err)
	assert.Len(t, books, 1)
}

func TestRepository_EditAuthorInfo_RenameToSameName(t *testing.T) {
	repo, _ := setupTestDB(t)

	_, err := repo.AddAuthor("Kuja", "bio", "k@x.com")
	require.NoError(t, err)

	author, err := repo.EditAuthorInfo("Kuja", entities.AuthorUpdate{Name: strPtr("Kuja"), Email: strPtr("e@x.com")})
	require.NoError(t, err)
	assert.Equal(t, "e@x.com", author.Email)
}

func TestRepository_EditAuthorInfo_RenameConflict(t *testing.T) {
	repo, _ := setupTestDB(t)

	_, err := repo.AddAuthor("Kuja", "", "")
	require.NoError(t, err)
	_, err = repo.AddAuthor("Jecht", "", "")
	require.NoError(t, err)

	_, err = repo.EditAuthorInfo("Kuja", entities.AuthorUpdate{Name: strPtr("Jecht")})
	assert.ErrorIs(t, err, entities.ErrAuthorExists)

	_, err = repo.GetAuthorInfo("Kuja")
	assert.NoError(t, err)
}

func TestRepository_EditAuthorInfo_NoChanges(t *testing.T) {
	repo, _ := setupTestDB(t)

	_, err := repo.AddAuthor("Kuja", "bio", "k@x.com")
	require.NoError(t, err)

	author, err := repo.EditAuthorInfo("Kuja", entities.AuthorUpdate{})
	require.NoError(t, err)
	assert.Equal(t, "bio", author.ShortBiography)
	assert.Equal(t, "k@x.com", author.Email)
}

func TestRepository_EditAuthorInfo_NotFound(t *testing.T) {
	repo, _ := setupTestDB(t)

	_, err := repo.EditAuthorInfo("Nonexistent", entities.AuthorUpdate{Email: strPtr("x@x.com")})

	assert.ErrorIs(t, err, entities.ErrAuthorNotFound)
}
