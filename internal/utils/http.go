package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON marshals data and writes it as the response body with the given
// status code and an "application/json" Content-Type. Every API envelope
// (success and error alike) goes out through this function.
//
// A marshaling failure answers 500 with a plain-text message and returns a
// wrapped error; the status code argument is not written in that case.
// It returns the number of body bytes written.
//
// Example:
//
//	WriteJSON(w, models.APIResponse{...}, http.StatusCreated)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}
