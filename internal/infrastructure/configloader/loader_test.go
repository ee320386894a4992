package configloader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_ReadsAllSections(t *testing.T) {
	path := writeConfig(t, `
server:
  port: ":9090"
  readTimeout: 5
logging:
  level: "debug"
geckoTerminal:
  baseURL: "http://localhost:1234/api/v2"
  requestTimeoutMillis: 2500
storage:
  dataDir: "/tmp/verifier-data"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Port)
	assert.Equal(t, 5, cfg.Server.ReadTimeout)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "http://localhost:1234/api/v2", cfg.GeckoTerminal.BaseURL)
	assert.Equal(t, int64(2500), cfg.GeckoTerminal.RequestTimeoutMillis)
	assert.Equal(t, "/tmp/verifier-data", cfg.Storage.DataDir)
}

func TestLoad_AppliesDefaultsForMissingValues(t *testing.T) {
	path := writeConfig(t, `logging: {level: "warn"}`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "https://api.geckoterminal.com/api/v2", cfg.GeckoTerminal.BaseURL)
	assert.Equal(t, "https://api.dexscreener.com", cfg.DEXScreener.BaseURL)
	assert.Equal(t, "https://apilist.tronscanapi.com", cfg.Tronscan.BaseURL)
	assert.Equal(t, int64(10000), cfg.Tronscan.RequestTimeoutMillis)
	assert.Equal(t, "data", cfg.Storage.DataDir)
}

func TestLoad_MissingFileIsAnError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yml"))
	assert.Error(t, err)
}

func TestLoad_MalformedYAMLIsAnError(t *testing.T) {
	path := writeConfig(t, "server: [this is not a mapping")
	_, err := Load(path)
	assert.Error(t, err)
}
