package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"live-backend/models"
	"live-backend/services"

	"github.com/gin-gonic/gin"
)

// =============================================================================
// Response Helpers
// =============================================================================

// respondWithError sends a standardized error response
func respondWithError(c *gin.Context, code int, error, message string) {
	c.JSON(code, models.ErrorResponse{
		Error:   error,
		Message: message,
		Code:    code,
	})
}

// respondBadRequest sends a 400 error response
func respondBadRequest(c *gin.Context, message string) {
	respondWithError(c, http.StatusBadRequest, "Invalid request", message)
}

// respondNotFound sends a 404 error response
func respondNotFound(c *gin.Context, message string) {
	respondWithError(c, http.StatusNotFound, "Not found", message)
}

// respondInternalError sends a 500 error response
func respondInternalError(c *gin.Context, message string) {
	respondWithError(c, http.StatusInternalServerError, "Internal error", message)
}

// respondListError maps service errors to the proper status. Validation
// errors are client mistakes; a missing primary subject is 404; anything
// else (store timeout, store unavailable) is surfaced as retryable 500 —
// the request fails closed rather than returning partially-scored results.
func respondListError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidPage), errors.Is(err, services.ErrInvalidPageSize):
		respondBadRequest(c, err.Error())
	case errors.Is(err, services.ErrRoomNotFound):
		respondNotFound(c, err.Error())
	default:
		respondInternalError(c, err.Error())
	}
}

// requestContext derives the deadline-bounded context every aggregation call
// runs under.
func requestContext(c *gin.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), timeout)
}

// parseIDParam reads a positive integer path parameter.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		respondBadRequest(c, name+" must be a positive integer")
		return 0, false
	}
	return uint(id), true
}
