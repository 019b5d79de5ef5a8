package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseJSON_ValidFile verifies that a well-formed config file maps onto
// the structured config.
func TestParseJSON_ValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	body := `{
		"app": {"version": "3.0.0"},
		"storage": {
			"logbook": {"dsn": "lb.db"},
			"explorer": {"dsn": "ex.db"}
		}
	}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "3.0.0", cfg.App.Version)
	assert.Equal(t, "lb.db", cfg.Storage.Logbook.DSN)
	assert.Equal(t, "ex.db", cfg.Storage.Explorer.DSN)
	assert.Empty(t, cfg.JSONFilePath)
}

// TestParseJSON_PartialFile verifies that absent sections stay zero-valued.
func TestParseJSON_PartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"storage":{"logbook":{"dsn":"only.db"}}}`), 0o600))

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "only.db", cfg.Storage.Logbook.DSN)
	assert.Empty(t, cfg.Storage.Explorer.DSN)
	assert.Empty(t, cfg.App.Version)
}

// TestParseJSON_MissingFile verifies the wrapped open error.
func TestParseJSON_MissingFile(t *testing.T) {
	cfg, err := parseJSON("does/not/exist.json")
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorContains(t, err, "error reading a json file")
}

// TestParseJSON_MalformedBody verifies the wrapped decode error.
func TestParseJSON_MalformedBody(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o600))

	cfg, err := parseJSON(path)
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorContains(t, err, "error decoding json configs")
}
