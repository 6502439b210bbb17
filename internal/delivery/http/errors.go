package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/brandyemurray/compare-and-save/internal/domain"
	"github.com/gin-gonic/gin"
)

// statusFor maps domain errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNoProducts):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrSheetNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrRateLimited):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// errorMessage hides internal error details from clients
func errorMessage(err error) string {
	if statusFor(err) == http.StatusInternalServerError {
		return "internal server error"
	}
	return err.Error()
}

func respondError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(statusFor(err), gin.H{
		"error": errorMessage(err),
	})
}

// bindError marks request decoding and validation failures as invalid requests
func bindError(err error) error {
	return fmt.Errorf("%w: %v", domain.ErrInvalidRequest, err)
}
