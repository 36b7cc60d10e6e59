package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/judyrop/restaurant-pos/middleware"
	"github.com/judyrop/restaurant-pos/store"
)

var errNoChanges = errors.New("request contains no updatable fields")

// respondError aborts with {message, error}. The error detail is only shown
// for client errors.
func respondError(c *gin.Context, status int, message string, err error) {
	body := gin.H{"message": message}
	if err != nil && status < http.StatusInternalServerError {
		body["error"] = err.Error()
	}
	c.AbortWithStatusJSON(status, body)
}

// bind decodes and validates the JSON body into v, answering 400 on failure.
func bind(c *gin.Context, v any) bool {
	if err := c.ShouldBindJSON(v); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", err)
		return false
	}
	return true
}

// fail maps a store error to its HTTP status. Unexpected errors are logged
// and answered with a generic 500.
func (h *Handler) fail(c *gin.Context, message string, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		respondError(c, http.StatusNotFound, message, err)
	case errors.Is(err, store.ErrUnknownDish):
		respondError(c, http.StatusBadRequest, message, err)
	default:
		h.log.Error(message,
			"error", err,
			"method", c.Request.Method,
			"path", c.FullPath(),
			"request_id", middleware.RequestID(c),
		)
		respondError(c, http.StatusInternalServerError, "Internal server error", nil)
	}
}
