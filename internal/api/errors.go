package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"carelink/internal/domain"
)

// errorResponse is the JSON body for every non-2xx response.
type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// httpStatusFromError maps domain errors to HTTP status codes. Unknown
// errors become 500 with a generic message so internals never leak.
func httpStatusFromError(err error) (int, string) {
	var (
		notFound *domain.NotFoundError
		denied   *domain.AccessDeniedError
		invalid  *domain.ValidationError
		conflict *domain.ConflictError
		unauthed *domain.UnauthenticatedError
	)
	switch {
	case errors.As(err, &invalid):
		return http.StatusBadRequest, invalid.Message
	case errors.As(err, &unauthed):
		return http.StatusUnauthorized, unauthed.Message
	case errors.As(err, &denied):
		return http.StatusForbidden, denied.Message
	case errors.As(err, &notFound):
		return http.StatusNotFound, notFound.Message
	case errors.As(err, &conflict):
		return http.StatusConflict, conflict.Message
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

func writeError(w http.ResponseWriter, logger *slog.Logger, err error) {
	status, message := httpStatusFromError(err)
	if status == http.StatusInternalServerError {
		logger.Error("request failed", "error", err)
	}
	writeJSON(w, status, errorResponse{Code: status, Message: message})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// decodeJSON parses a request body into dst, surfacing malformed JSON as
// a validation error.
func decodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return domain.ErrValidation("invalid JSON body: %v", err)
	}
	return nil
}
