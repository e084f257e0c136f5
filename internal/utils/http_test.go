package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON_TableTest(t *testing.T) {
	tests := []struct {
		name       string
		data       any
		status     int
		wantBody   string
		wantStatus int
	}{
		{
			name:       "object",
			data:       map[string]string{"error": "Unauthorized"},
			status:     http.StatusUnauthorized,
			wantBody:   `{"error":"Unauthorized"}`,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "plain message is a JSON string",
			data:       "User with ID 99 not found.",
			status:     http.StatusNotFound,
			wantBody:   `"User with ID 99 not found."`,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "message list",
			data:       []string{"Name is required.", "Email is required."},
			status:     http.StatusBadRequest,
			wantBody:   `["Name is required.","Email is required."]`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "empty slice",
			data:       []int{},
			status:     http.StatusOK,
			wantBody:   `[]`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "nil",
			data:       nil,
			status:     http.StatusOK,
			wantBody:   `null`,
			wantStatus: http.StatusOK,
		},
		{
			name: "struct with tags",
			data: struct {
				ID   int64  `json:"id"`
				Name string `json:"name"`
			}{ID: 1, Name: "Al"},
			status:     http.StatusCreated,
			wantBody:   `{"id":1,"name":"Al"}`,
			wantStatus: http.StatusCreated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			n, err := WriteJSON(w, tt.data, tt.status)

			require.NoError(t, err)
			assert.Equal(t, len(tt.wantBody), n)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestWriteJSON_InvalidData(t *testing.T) {
	w := httptest.NewRecorder()

	// channels cannot be marshaled to JSON
	n, err := WriteJSON(w, make(chan int), http.StatusOK)

	require.Error(t, err)
	assert.Zero(t, n)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotEqual(t, "application/json", w.Header().Get("Content-Type"))
}
