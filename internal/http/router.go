package http

import (
	"github.com/gin-gonic/gin"

	"github.com/mrlokans/catalog/internal/audit"
	"github.com/mrlokans/catalog/internal/logging"
)

// RouterConfig holds the dependencies of NewRouter.
type RouterConfig struct {
	Store    CatalogStore
	Database StoreProbe // optional, reported by /health
	Auditor  *audit.Auditor
	Version  string
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(logging.GinLogger())
	router.Use(logging.GinRecovery())

	health := NewHealthController(cfg.Database, cfg.Version)
	authors := NewAuthorsController(cfg.Store, cfg.Auditor)
	books := NewBooksController(cfg.Store, cfg.Auditor)

	router.GET("/", Home)
	router.GET("/home", Home)
	router.GET("/health", health.Status)

	// Authors
	router.POST("/add_author", authors.AddAuthor)
	router.GET("/get_author/:name", authors.GetAuthor)
	router.PUT("/edit_author/:name", authors.EditAuthor)

	// Books
	router.POST("/add_book", books.AddBook)
	router.GET("/get_book/:name", books.GetBook)
	router.GET("/get_all_books", books.GetAllBooks)
	router.GET("/get_all_books_by_:author", books.GetBooksByAuthor)

	router.NoRoute(pageNotFound)

	return router
}
