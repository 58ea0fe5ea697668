// Package response centralizes HTTP response shapes and helpers.
// Handlers rely on it to keep controllers thin and uniform.
package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/maxviazov/league-registry/internal/service"
)

const internalMessage = "Internal server error"

// ErrorPayload is the canonical error envelope returned by the API.
type ErrorPayload struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// MapError converts a domain / infrastructure error into an HTTP status and payload.
// Only service errors carry their message to the client; everything else is opaque.
func MapError(err error) (int, ErrorPayload) {
	if err == nil {
		return http.StatusOK, ErrorPayload{Code: "ok"}
	}

	msg := service.Message(err)
	if msg != "" {
		switch {
		case errors.Is(err, service.ErrValidation):
			return http.StatusBadRequest, ErrorPayload{Error: msg, Code: "validation"}
		case errors.Is(err, service.ErrNotFound):
			return http.StatusNotFound, ErrorPayload{Error: msg, Code: "not_found"}
		case errors.Is(err, service.ErrConflict):
			return http.StatusConflict, ErrorPayload{Error: msg, Code: "conflict"}
		}
	}
	return http.StatusInternalServerError, ErrorPayload{Error: internalMessage, Code: "internal"}
}

// WriteError writes an error response and aborts the context.
// Unclassified failures are logged here, once; caller errors and conflicts are expected and stay quiet.
func WriteError(c *gin.Context, err error) {
	status, payload := MapError(err)
	if status == http.StatusInternalServerError {
		zerolog.Ctx(c.Request.Context()).Error().
			Err(err).
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Msg("request failed")
	}
	c.AbortWithStatusJSON(status, payload)
}

// WriteData writes a successful JSON response.
func WriteData(c *gin.Context, status int, data any) {
	c.JSON(status, data)
}
