package handlers

import (
	"errors"
	"net/http"

	"eval-workbench/internal/core/domain"

	"github.com/gin-gonic/gin"
)

func mapDomainError(c *gin.Context, err error) {
	switch {
	// Not found errors
	case errors.Is(err, domain.ErrEvaluationNotFound),
		errors.Is(err, domain.ErrMetricNotFound),
		errors.Is(err, domain.ErrBindingNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	// Bad request / validation errors
	case errors.Is(err, domain.ErrInvalidEvaluationName),
		errors.Is(err, domain.ErrInvalidMetricName),
		errors.Is(err, domain.ErrInvalidBinding),
		errors.Is(err, domain.ErrInvalidSelector),
		errors.Is(err, domain.ErrNoFilesMatched):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	// Upstream boundary errors
	case errors.Is(err, domain.ErrOriginNotAllowed),
		errors.Is(err, domain.ErrMirrorNotBound):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
