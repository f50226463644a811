package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	pathFlag := writeTempJSON(t, dir, "flag.json", map[string]any{
		"api_endpoint_addr": "https://stories.example:9000",
		"request_timeout":   "15s",
		"session_db_path":   "/tmp/other.db",
	})

	t.Run("loads from flags", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", pathFlag}

		cfg := &Config{}
		parseJson(cfg)

		assert.Equal(t, "https://stories.example:9000", cfg.APIEndpointAddr)
		assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
		assert.Equal(t, "/tmp/other.db", cfg.SessionDBPath)
	})

	t.Run("no CONFIG and no flags → no changes", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{
			APIEndpointAddr: "https://defaults.example",
			RequestTimeout:  42 * time.Second,
			SessionDBPath:   "defaults.db",
		}
		parseJson(cfg)

		assert.Equal(t, "https://defaults.example", cfg.APIEndpointAddr)
		assert.Equal(t, 42*time.Second, cfg.RequestTimeout)
		assert.Equal(t, "defaults.db", cfg.SessionDBPath)
	})

	t.Run("missing fields keep current values", func(t *testing.T) {
		partial := writeTempJSON(t, dir, "partial.json", map[string]any{
			"api_endpoint_addr": "https://partial.example",
		})
		os.Args = []string{"testbin", "-config", partial}

		cfg := &Config{
			APIEndpointAddr: "https://defaults.example",
			RequestTimeout:  42 * time.Second,
			SessionDBPath:   "defaults.db",
		}
		parseJson(cfg)

		assert.Equal(t, "https://partial.example", cfg.APIEndpointAddr)
		assert.Equal(t, 42*time.Second, cfg.RequestTimeout)
		assert.Equal(t, "defaults.db", cfg.SessionDBPath)
	})

	t.Run("invalid JSON → panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		os.Args = []string{"testbin", "-config", bad}

		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg) })
	})
}
