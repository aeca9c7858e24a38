// ABOUTME: JSON error response helper shared by the gate and rate limiter
// ABOUTME: Emits the same {error,code} body the API handlers use

package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/rimki/rimki/models"
)

// writeJSONError writes an error body in the API's uniform format.
func writeJSONError(w http.ResponseWriter, message string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(models.ErrorResponse{
		Error: message,
		Code:  code,
	})
}
