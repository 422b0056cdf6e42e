package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/mrlokans/catalog/internal/entities"
)

// --- Response Types ---

// ErrorResponse is the standard error response format for all API errors.
type ErrorResponse struct {
	Error string `json:"error"`
}

// --- Error Response Helpers ---

// respondBadRequest sends a 400 Bad Request response.
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

// respondNotFound sends a 404 Not Found response.
func respondNotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Error: message})
}

// respondConflict sends a 409 Conflict response.
func respondConflict(c *gin.Context, message string) {
	c.JSON(http.StatusConflict, ErrorResponse{Error: message})
}

// respondInternalError logs the error and sends a 500 Internal Server Error response.
// The actual error is logged but not exposed to the client.
func respondInternalError(c *gin.Context, err error, context string) {
	log.Error().Err(err).Str("context", context).Msg("Internal error")
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}

// respondStoreError maps catalog errors to their status codes. Anything
// unrecognised is a 500.
func respondStoreError(c *gin.Context, err error, context string) {
	switch {
	case errors.Is(err, entities.ErrAuthorNotFound):
		respondNotFound(c, "Author not found!")
	case errors.Is(err, entities.ErrBookNotFound):
		respondNotFound(c, "Book not found!")
	case errors.Is(err, entities.ErrAuthorExists):
		respondConflict(c, "author already exists")
	default:
		respondInternalError(c, err, context)
	}
}

// --- Request Binding ---

// bindJSON decodes and validates the request body into req.
// Responds with 400 and returns false on failure.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return false
	}
	return true
}

// --- Serialization ---

// nonNilBooks keeps empty listings serialised as [] rather than null.
func nonNilBooks(books []entities.Book) []entities.Book {
	if books == nil {
		return []entities.Book{}
	}
	return books
}
