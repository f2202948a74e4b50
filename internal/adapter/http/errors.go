package http

import (
	"errors"
	"net/http"

	"expman-backend/internal/usecase/record"

	"github.com/labstack/echo/v4"
)

// Reusable error payload
type ErrorResponse struct {
	Error   string              `json:"error"`
	Details []record.FieldError `json:"details,omitempty"`
}

// writeError maps the usecase error taxonomy onto HTTP statuses:
// not-found → 404, field errors → 400, anything else → 500.
func writeError(c echo.Context, err error) error {
	var ve *record.ValidationError
	switch {
	case errors.Is(err, record.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	case errors.As(err, &ve):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ve.Fields})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
