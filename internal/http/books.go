package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/catalog/internal/audit"
)

type BooksController struct {
	store   BookStore
	auditor *audit.Auditor
}

func NewBooksController(store BookStore, auditor *audit.Auditor) *BooksController {
	return &BooksController{
		store:   store,
		auditor: auditor,
	}
}

// AddBook stores a book, creating its author first if needed
// POST /add_book
func (controller *BooksController) AddBook(c *gin.Context) {
	var req AddBookRequest
	if !bindJSON(c, &req) {
		return
	}
	controller.auditor.RecordQuietly("add_book", req)

	_, err := controller.store.AddBook(req.Name, req.Biography, req.Email, req.BookName, req.Description)
	if err != nil {
		respondStoreError(c, err, "add book")
		return
	}

	c.String(http.StatusCreated, "Success! Added %s", req.BookName)
}

// GetBook returns the public fields of a book
// GET /get_book/:name
func (controller *BooksController) GetBook(c *gin.Context) {
	book, err := controller.store.GetBookInfo(c.Param("name"))
	if err != nil {
		respondStoreError(c, err, "get book")
		return
	}

	c.JSON(http.StatusOK, book)
}

// GetAllBooks lists every book
// GET /get_all_books
func (controller *BooksController) GetAllBooks(c *gin.Context) {
	books, err := controller.store.GetAllBooks()
	if err != nil {
		respondStoreError(c, err, "get all books")
		return
	}

	c.JSON(http.StatusOK, nonNilBooks(books))
}

// GetBooksByAuthor lists the books of one author
// GET /get_all_books_by_:author
func (controller *BooksController) GetBooksByAuthor(c *gin.Context) {
	books, err := controller.store.GetBooksByAuthor(c.Param("author"))
	if err != nil {
		respondStoreError(c, err, "get books by author")
		return
	}

	c.JSON(http.StatusOK, nonNilBooks(books))
}
