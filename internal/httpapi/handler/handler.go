// Package handler wires the HTTP surface onto the service layer. Handlers
// parse primitive parameters, delegate, and translate the error taxonomy
// into status codes.
package handler

import (
	"net/http"

	"jokehub/internal/apperr"

	"github.com/gin-gonic/gin"
)

// respondError maps a service error onto an HTTP status.
func respondError(c *gin.Context, err error) {
	switch {
	case apperr.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperr.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperr.IsConflict(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
