package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	t.Setenv(EnvAPIKey, "")
	t.Setenv(EnvFallbackAPIKey, "")

	cfg, err := Load(filepath.Join(t.TempDir(), "config.toml"))

	require.NoError(t, err)
	assert.Equal(t, DefaultCollection, cfg.Scrape.Collection)
	assert.Equal(t, DefaultReranker, cfg.Search.Reranker)
	assert.Equal(t, DefaultTimeoutSeconds, cfg.API.TimeoutSeconds)
	assert.Empty(t, cfg.API.Key)
}

func TestLoadParsesFile(t *testing.T) {
	t.Setenv(EnvAPIKey, "")
	t.Setenv(EnvFallbackAPIKey, "")

	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
data_dir = "/tmp/presscan-test"

[api]
key = "file-key"
timeout_seconds = 30

[scrape]
feeds = ["https://a.example/rss", "https://b.example/rss"]
collection = "news"

[search]
reranker = "zerank-1"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "file-key", cfg.API.Key)
	assert.Equal(t, 30, cfg.API.TimeoutSeconds)
	assert.Equal(t, []string{"https://a.example/rss", "https://b.example/rss"}, cfg.Scrape.Feeds)
	assert.Equal(t, "news", cfg.Scrape.Collection)
	assert.Equal(t, "zerank-1", cfg.Search.Reranker)
	assert.Equal(t, "/tmp/presscan-test", cfg.DataDir)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	t.Setenv(EnvAPIKey, "")
	t.Setenv(EnvFallbackAPIKey, "")

	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[scrape]
feeds = ["https://a.example/rss"]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, DefaultCollection, cfg.Scrape.Collection)
	assert.Equal(t, DefaultRequestsPerSecond, cfg.Scrape.RequestsPerSecond)
	assert.Equal(t, DefaultReranker, cfg.Search.Reranker)
}

func TestLoadEnvOverridesFileKey(t *testing.T) {
	t.Setenv(EnvAPIKey, "env-key")
	t.Setenv(EnvFallbackAPIKey, "fallback-key")

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[api]\nkey = \"file-key\"\n"), 0600))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.API.Key)
}

func TestLoadFallbackEnvKey(t *testing.T) {
	t.Setenv(EnvAPIKey, "")
	t.Setenv(EnvFallbackAPIKey, "fallback-key")

	cfg, err := Load(filepath.Join(t.TempDir(), "config.toml"))

	require.NoError(t, err)
	assert.Equal(t, "fallback-key", cfg.API.Key)
}

func TestLoadRejectsMalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("not [valid toml"), 0600))

	_, err := Load(path)

	require.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv(EnvAPIKey, "")
	t.Setenv(EnvFallbackAPIKey, "")

	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := defaults()
	cfg.Scrape.Feeds = []string{"https://a.example/rss"}
	cfg.API.Key = "saved-key"

	require.NoError(t, Save(cfg, path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.Scrape.Feeds, loaded.Scrape.Feeds)
	assert.Equal(t, "saved-key", loaded.API.Key)
}
