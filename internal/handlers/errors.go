package handlers

import (
	"errors"
	"net/http"

	"github.com/diewo77/go-billing/httpx"
	"github.com/diewo77/go-billing/internal/services"
)

// writeServiceError maps the service error taxonomy onto HTTP status codes.
// Ownership and existence failures are indistinguishable on the wire so the
// API never leaks whether a foreign record exists.
func writeServiceError(w http.ResponseWriter, err error) {
	var ve *services.ValidationError
	var pe *services.PersistenceError
	switch {
	case errors.As(err, &ve):
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", ve.Violations)
	case errors.Is(err, services.ErrNotFound), errors.Is(err, services.ErrForbidden):
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
	case errors.As(err, &pe):
		httpx.JSONError(w, http.StatusInternalServerError, "persistence_failed", nil)
	default:
		httpx.JSONError(w, http.StatusInternalServerError, "internal_error", nil)
	}
}
