package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/scraper"
	"github.com/fwojciec/scraper/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := config.Default()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "https://www.nature.com", cfg.BaseURL)
	assert.Equal(t, "en-US,en;q=0.5", cfg.Headers()["Accept-Language"])
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Empty(t, cfg.HistoryDB)
}

func TestConfig_ListingPageURL(t *testing.T) {
	t.Parallel()

	cfg := config.Default()

	assert.Equal(t, "https://www.nature.com/nature/articles?sort=PubDate&year=2020&page=3", cfg.ListingPageURL(3))
}

func TestConfig_Headers(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.AcceptLanguage = ""

	assert.Nil(t, cfg.Headers())
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{name: "missing base url", mutate: func(c *config.Config) { c.BaseURL = "" }},
		{name: "missing listing url", mutate: func(c *config.Config) { c.ListingURL = "" }},
		{name: "missing joke url", mutate: func(c *config.Config) { c.JokeURL = "" }},
		{name: "zero timeout", mutate: func(c *config.Config) { c.Timeout = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := config.Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Equal(t, scraper.EINVALID, scraper.ErrorCode(err))
		})
	}
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	t.Run("missing file returns defaults", func(t *testing.T) {
		t.Parallel()

		cfg, err := config.LoadFile(filepath.Join(t.TempDir(), "config.yaml"))

		require.NoError(t, err)
		assert.Equal(t, config.Default(), cfg)
	})

	t.Run("empty path returns defaults", func(t *testing.T) {
		t.Parallel()

		cfg, err := config.LoadFile("")

		require.NoError(t, err)
		assert.Equal(t, config.Default(), cfg)
	})

	t.Run("overlays file values on defaults", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "config.yaml")
		content := `base_url: "https://example.com"
timeout: 3s
history_db: "/tmp/history.db"
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		cfg, err := config.LoadFile(path)

		require.NoError(t, err)
		assert.Equal(t, "https://example.com", cfg.BaseURL)
		assert.Equal(t, 3*time.Second, cfg.Timeout)
		assert.Equal(t, "/tmp/history.db", cfg.HistoryDB)
		assert.Equal(t, config.DefaultListingURL, cfg.ListingURL)
		assert.Equal(t, config.DefaultAcceptLanguage, cfg.AcceptLanguage)
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("base_url: [unclosed"), 0o600))

		_, err := config.LoadFile(path)

		require.Error(t, err)
		assert.Equal(t, scraper.EINVALID, scraper.ErrorCode(err))
	})

	t.Run("rejects invalid values", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("timeout: 0s\n"), 0o600))

		_, err := config.LoadFile(path)

		require.Error(t, err)
		assert.Equal(t, scraper.EINVALID, scraper.ErrorCode(err))
	})
}

func TestDefaultPath(t *testing.T) {
	t.Setenv(config.EnvPath, "/etc/scraper.yaml")

	assert.Equal(t, "/etc/scraper.yaml", config.DefaultPath())
}
