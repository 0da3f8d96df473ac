package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// errorResponse is the wire shape shared by all error replies: {"detail": ...}.
// Detail is a plain string for not-found and server errors, and a list of
// fieldError for validation failures.
type errorResponse struct {
	Detail any `json:"detail"`
}

// fieldError names the offending field in a 422 response so clients can
// attach the message to the right form input.
type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// respondJSON writes v as a JSON response with the given status code.
// Encoding failures after the header is written can only be logged.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

// respondNotFound writes the 404 body for a missing schedule.
func respondNotFound(w http.ResponseWriter) {
	respondJSON(w, http.StatusNotFound, errorResponse{Detail: "Schedule not found"})
}

// respondValidation writes a 422 with one entry per invalid field.
func respondValidation(w http.ResponseWriter, errs []fieldError) {
	respondJSON(w, http.StatusUnprocessableEntity, errorResponse{Detail: errs})
}

// respondTooLarge writes the 413 body for a request body over the size limit.
func respondTooLarge(w http.ResponseWriter) {
	respondJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Detail: "Request body too large"})
}

// respondServerError logs the underlying error and writes a generic 500.
// Store failures and other internals are never leaked to the client.
func respondServerError(w http.ResponseWriter, r *http.Request, err error) {
	slog.ErrorContext(r.Context(), "request failed",
		"method", r.Method,
		"path", r.URL.Path,
		"error", err,
	)
	respondJSON(w, http.StatusInternalServerError, errorResponse{Detail: "Internal Server Error"})
}
