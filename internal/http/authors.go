package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/catalog/internal/audit"
	"github.com/mrlokans/catalog/internal/entities"
)

type AuthorsController struct {
	store   AuthorStore
	auditor *audit.Auditor
}

func NewAuthorsController(store AuthorStore, auditor *audit.Auditor) *AuthorsController {
	return &AuthorsController{store: store, auditor: auditor}
}

// AddAuthor creates an author
// POST /add_author
func (ac *AuthorsController) AddAuthor(c *gin.Context) {
	var req AddAuthorRequest
	if !bindJSON(c, &req) {
		return
	}
	ac.auditor.RecordQuietly("add_author", req)

	if _, err := ac.store.AddAuthor(req.AuthorName, req.Biography, req.Email); err != nil {
		respondStoreError(c, err, "add author")
		return
	}

	c.String(http.StatusCreated, "Success added %s", req.AuthorName)
}

// GetAuthor returns the public fields of an author
// GET /get_author/:name
func (ac *AuthorsController) GetAuthor(c *gin.Context) {
	author, err := ac.store.GetAuthorInfo(c.Param("name"))
	if err != nil {
		respondStoreError(c, err, "get author")
		return
	}

	c.JSON(http.StatusOK, author)
}

// EditAuthor overwrites the provided fields of an author
// PUT /edit_author/:name
func (ac *AuthorsController) EditAuthor(c *gin.Context) {
	var req EditAuthorRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.AuthorName != nil && *req.AuthorName == "" {
		respondBadRequest(c, "author_name cannot be empty")
		return
	}
	ac.auditor.RecordQuietly("edit_author", gin.H{"author": c.Param("name"), "changes": req})

	update := entities.AuthorUpdate{
		Name:      req.AuthorName,
		Biography: req.ShortBiography,
		Email:     req.Email,
	}
	if _, err := ac.store.EditAuthorInfo(c.Param("name"), update); err != nil {
		respondStoreError(c, err, "edit author")
		return
	}

	c.String(http.StatusOK, "Success")
}
