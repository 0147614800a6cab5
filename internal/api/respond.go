package api

import (
	"encoding/json"
	"log"
	"net/http"
)

// respondJSON writes data as a JSON response with the given status.
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("[api] encode response: %v", err)
	}
}

// errorBody is the JSON shape for every error response.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// respondError writes a JSON error response.
func respondError(w http.ResponseWriter, status int, errType, message string) {
	respondJSON(w, status, errorBody{Error: errType, Message: message})
}
