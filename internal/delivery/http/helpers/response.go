package helpers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"meetingplanner/internal/domain"
)

// Response codes used in the API envelope. Token codes are returned by the
// auth middleware so clients can distinguish an expired token from a bad one.
const (
	CodeSuccess = "SUCCESS"

	ErrCodeBadRequest       = "BAD_REQUEST"
	ErrCodeConflict         = "CONFLICT"
	ErrCodeUnauthorized     = "UNAUTHORIZED"
	ErrCodePermissionDenied = "PERMISSION_DENIED"
	ErrCodeNotFound         = "NOT_FOUND"
	ErrCodeInternalError    = "INTERNAL_SERVER_ERROR"

	ErrCodeExpiredToken  = "EXPIRED_TOKEN"
	ErrCodeInvalidToken  = "INVALID_TOKEN"
	ErrCodeNotFoundToken = "NOT_FOUND_TOKEN"
	ErrCodeUnknownError  = "UNKNOWN_ERROR"
)

// APIResponse is the standardized envelope for all API responses.
// On success: Code is SUCCESS and Data is set. On error: Code names the
// failure and Message describes it.
// swagger:model APIResponse
type APIResponse struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// WriteJSONSuccess sets Content-Type to application/json, writes statusCode,
// and encodes a SUCCESS envelope with the given data.
func WriteJSONSuccess(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(APIResponse{Code: CodeSuccess, Data: data})
}

// WriteJSONError sets Content-Type to application/json, writes statusCode,
// and encodes an error envelope with the given code and message.
func WriteJSONError(w http.ResponseWriter, statusCode int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(APIResponse{Code: code, Message: message})
}

// WriteDomainError maps a service error to the HTTP status and envelope code
// the API contract defines. Anything unrecognized is a 500 and gets logged;
// the sentinel cases are expected client errors and are not.
func WriteDomainError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
	case errors.Is(err, domain.ErrDuplicateEmail),
		errors.Is(err, domain.ErrAlreadyJoined),
		errors.Is(err, domain.ErrCapacityExceeded):
		WriteJSONError(w, http.StatusBadRequest, ErrCodeConflict, err.Error())
	case errors.Is(err, domain.ErrInvalidCredentials):
		WriteJSONError(w, http.StatusUnauthorized, ErrCodeUnauthorized, "invalid credentials")
	case errors.Is(err, domain.ErrForbidden):
		WriteJSONError(w, http.StatusForbidden, ErrCodePermissionDenied, "permission denied")
	case errors.Is(err, domain.ErrNotFound):
		WriteJSONError(w, http.StatusNotFound, ErrCodeNotFound, "not found")
	default:
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		WriteJSONError(w, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")
	}
}
