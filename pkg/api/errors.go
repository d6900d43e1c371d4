package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/taskfleet/maestro/pkg/models"
	"github.com/taskfleet/maestro/pkg/services"
)

// respondError maps service-layer errors to HTTP error responses. AgentError
// bodies keep their structured code so clients can branch without parsing
// messages.
func respondError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"code":    "NOT_FOUND",
			"message": "resource not found",
		})
		return
	}

	var ae *models.AgentError
	if errors.As(err, &ae) {
		c.JSON(statusForCode(ae.Code), ae.ToMap())
		return
	}

	// Unexpected error
	slog.Error("Unexpected service error", "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{
		"code":    "INTERNAL",
		"message": "internal server error",
	})
}

func statusForCode(code string) int {
	switch code {
	case models.CodeInvalidRequest:
		return http.StatusBadRequest
	case models.CodeUnauthorized:
		return http.StatusUnauthorized
	case models.CodeInsufficientCredits:
		return http.StatusPaymentRequired
	case models.CodeToolNotAllowed:
		return http.StatusForbidden
	case models.CodeInvalidTransition, models.CodeConcurrentUpdate:
		return http.StatusConflict
	case models.CodeRateLimited, models.CodeProviderRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
