package api

import (
	"alcyxob/exercise-tracker/internal/service"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Constants for context keys and headers
const (
	ContextRequestIDKey = "requestID"
	RequestIDHeader     = "X-Request-ID"
)

// genericErrorMessage is the only detail clients get for unexpected failures.
const genericErrorMessage = "An error occurred"

// maxRequestIDLength caps client-supplied request ids before they reach the logs.
const maxRequestIDLength = 128

// RequestIDMiddleware tags every request with an id, reusing the caller's
// X-Request-ID when present, and echoes it in the response.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > maxRequestIDLength {
			id = uuid.NewString()
		}
		c.Set(ContextRequestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// Helper to return JSON error response and abort request
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

// respondServiceError maps service errors onto HTTP statuses. Anything that
// is not a validation or not-found error is logged and reported as a 500.
func respondServiceError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, service.ErrValidationFailed):
		abortWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrUserNotFound):
		abortWithError(c, http.StatusNotFound, "User not found")
	default:
		log.Printf("ERROR: [%s] %s: %v", getRequestID(c), op, err)
		abortWithError(c, http.StatusInternalServerError, genericErrorMessage)
	}
}

// Helper function to get the request id from context (used by handlers)
func getRequestID(c *gin.Context) string {
	return c.GetString(ContextRequestIDKey)
}
