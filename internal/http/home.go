package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const welcomeText = "Welcome to our e-library!"

func Home(c *gin.Context) {
	c.String(http.StatusOK, welcomeText)
}

func pageNotFound(c *gin.Context) {
	respondNotFound(c, "page not found")
}
