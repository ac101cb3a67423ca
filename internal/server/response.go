package server

import (
	"encoding/json"
	"net/http"
)

// respondJSON writes v as the JSON response body with the given status.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// respondError writes a {"error": msg} body. Every validation and
// unknown-algorithm failure maps to a 4xx with a human-readable message;
// no partial results accompany an error.
func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}
