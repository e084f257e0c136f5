// Package utils provides small helpers shared by the transport layer:
// JSON response writing and trace id generation.
package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON marshals data and writes it with the given status code and an
// "application/json" content type. Strings are written as JSON strings, so
// WriteJSON(w, "done", 200) sends "\"done\"".
//
// If marshaling fails nothing of data is sent; the client gets a plain 500
// and the wrapped marshaling error is returned.
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
