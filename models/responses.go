package models

// ErrorResponse is the JSON body written for failures that are not
// reported as a plain message or a message list
// (e.g. {"error": "Unauthorized"}).
type ErrorResponse struct {
	Error string `json:"error"`
}
