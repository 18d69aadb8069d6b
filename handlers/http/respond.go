package httpHandler

import (
	"budget-server/usecases"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// respondError maps usecase errors onto status codes: validation
// problems are 400, bad credentials 401, missing rows 404, anything
// else 500.
func respondError(c *gin.Context, err error) {
	switch {
	case usecases.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, usecases.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, usecases.ErrUserNotFound), errors.Is(err, usecases.ErrExpenseNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
