// Package handlers provides the read-only HTTP handlers for the article
// content and its rendered pages.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dailystar-data/police-story-go/internal/application/services"
	"github.com/dailystar-data/police-story-go/internal/domain/entities/locale"
)

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, locale.ErrUnknownLocale),
		errors.Is(err, services.ErrUnknownComponent),
		errors.Is(err, services.ErrComponentMissing):
		return http.StatusNotFound
	case errors.Is(err, services.ErrInvalidPage):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func abortWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(statusFor(err), gin.H{"error": err.Error()})
}
