package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{
		"app": {
			"auth_token": "json-token",
			"version": "3.0.0",
			"log_level": "error"
		},
		"server": {
			"http_address": "0.0.0.0:8081",
			"read_timeout": "15s",
			"write_timeout": 20000000000,
			"shutdown_timeout": "1m"
		}
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "json-token", cfg.App.AuthToken)
	assert.Equal(t, "3.0.0", cfg.App.Version)
	assert.Equal(t, "error", cfg.App.LogLevel)

	assert.Equal(t, "0.0.0.0:8081", cfg.Server.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 20*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, time.Minute, cfg.Server.ShutdownTimeout)

	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	// Act
	cfg, err := parseJSON("definitely-does-not-exist.json")

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(p, []byte(`{ this is not json }`), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "bad-duration.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"server": {"read_timeout": "forever"}}`), 0o600))

	cfg, err := parseJSON(p)

	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "string", input: `"90s"`, want: 90 * time.Second},
		{name: "number of nanoseconds", input: `1000`, want: 1000},
		{name: "bool", input: `true`, wantErr: true},
		{name: "bad string", input: `"later"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalJSON([]byte(tt.input))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(2 * time.Minute).MarshalJSON()

	require.NoError(t, err)
	assert.Equal(t, `"2m0s"`, string(b))
}
