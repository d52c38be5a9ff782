// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"travelgenie/internal/ai"
	"travelgenie/internal/modules/account"
	"travelgenie/internal/modules/trip"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

// writeGenerationError maps the generation error taxonomy onto HTTP statuses.
// Every failure is surfaced as a human-readable message; the caller may retry.
func writeGenerationError(c *gin.Context, err error) {
	var remoteErr *ai.RemoteError
	var schemaErr *ai.SchemaError
	var netErr *ai.NetworkError
	var decodeErr *ai.DecodeError

	switch {
	case errors.Is(err, trip.ErrInvalidDateRange):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.As(err, &remoteErr), errors.As(err, &netErr),
		errors.As(err, &schemaErr), errors.As(err, &decodeErr),
		errors.Is(err, ai.ErrEmptyModelResponse):
		writeError(c, http.StatusBadGateway, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}

// writeAccountError surfaces identity-provider failures with the embedded message.
func writeAccountError(c *gin.Context, err error) {
	var apiErr *account.APIError
	switch {
	case errors.Is(err, account.ErrMissingCredentials), errors.Is(err, account.ErrMissingFields):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.As(err, &apiErr):
		writeError(c, http.StatusUnauthorized, apiErr.Message)
	default:
		writeError(c, http.StatusBadGateway, err.Error())
	}
}
