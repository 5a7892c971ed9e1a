// Package response provides standardized HTTP response formatting for the
// handlers that sit outside the huma operation surface, such as
// middleware rejections.
package response

import (
	"encoding/json/v2"
	"log/slog"
	"net/http"
)

// Envelope provides a consistent JSON response structure.
type Envelope struct {
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
	Success bool   `json:"success"`
}

// JSON writes a JSON response with the given status code using json/v2.
func JSON(w http.ResponseWriter, status int, data any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	envelope := Envelope{
		Success: status < 400,
		Data:    data,
	}

	if err := json.MarshalWrite(w, envelope); err != nil {
		if logger != nil {
			logger.Error("Failed to encode JSON response", "error", err)
		}
	}
}

// Error writes an error response with the given status code.
func Error(w http.ResponseWriter, status int, message string, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	envelope := Envelope{
		Success: false,
		Error:   message,
	}

	if err := json.MarshalWrite(w, envelope); err != nil {
		if logger != nil {
			logger.Error("Failed to encode error response", "error", err)
		}
	}
}

// TooManyRequests writes a rate-limit rejection (429).
func TooManyRequests(w http.ResponseWriter, message string, logger *slog.Logger) {
	Error(w, http.StatusTooManyRequests, message, logger)
}
