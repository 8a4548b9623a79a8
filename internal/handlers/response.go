package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sprintslides/sprintslides-backend/internal/deckgen"
)

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

// RespondDeckError maps pipeline failures onto the HTTP contract: caller
// mistakes are 400 with a bare message, everything downstream is 500 with a
// debug payload. Rate limits are provider failures, not caller mistakes, so
// they land in the 500 bucket too.
func RespondDeckError(c *gin.Context, derr *deckgen.Error) {
	if derr.Kind == deckgen.KindInvalidRequest {
		c.JSON(http.StatusBadRequest, gin.H{"error": derr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": derr.Message,
		"debug": derr.Debug(),
	})
}
