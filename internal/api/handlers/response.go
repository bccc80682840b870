package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	apperrors "github.com/zatekoja/inspectionreport/pkg/errors"
)

func respondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	respondWithJSON(w, statusCode, map[string]string{
		"error": message,
	})
}

// respondWithAppError maps the error taxonomy onto HTTP status codes.
// Only validation messages are echoed back to the caller.
func respondWithAppError(w http.ResponseWriter, err error) {
	var appErr *apperrors.AppError
	switch apperrors.TypeOf(err) {
	case apperrors.ErrorTypeValidation:
		message := "invalid request"
		if errors.As(err, &appErr) {
			message = appErr.Message
		}
		respondWithError(w, http.StatusBadRequest, message)
	case apperrors.ErrorTypeNotFound:
		respondWithError(w, http.StatusNotFound, "not found")
	case apperrors.ErrorTypeUnavailable:
		respondWithError(w, http.StatusServiceUnavailable, "service unavailable")
	default:
		respondWithError(w, http.StatusInternalServerError, "internal server error")
	}
}
