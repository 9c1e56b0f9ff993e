// Package config loads scraper settings from a YAML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/fwojciec/scraper"
	"gopkg.in/yaml.v3"
)

// Defaults matching the site the scraper was written against.
const (
	DefaultBaseURL        = "https://www.nature.com"
	DefaultListingURL     = "https://www.nature.com/nature/articles?sort=PubDate&year=2020&page="
	DefaultJokeURL        = "https://icanhazdadjoke.com"
	DefaultArticleMarker  = "nature.com/articles/"
	DefaultAcceptLanguage = "en-US,en;q=0.5"
	DefaultTimeout        = 10 * time.Second
	DefaultOutputDir      = "."
)

// EnvPath names the environment variable that overrides the config path.
const EnvPath = "SCRAPER_CONFIG"

// Config holds every fixed URL and header the scraper uses.
type Config struct {
	// BaseURL is prepended to relative article links.
	BaseURL string `yaml:"base_url"`

	// ListingURL is the listing address; the page number is appended.
	ListingURL string `yaml:"listing_url"`

	JokeURL string `yaml:"joke_url"`

	// ArticleMarker must appear in URLs passed to describe.
	ArticleMarker string `yaml:"article_marker"`

	AcceptLanguage string        `yaml:"accept_language"`
	Timeout        time.Duration `yaml:"timeout"`
	OutputDir      string        `yaml:"output_dir"`

	// HistoryDB is the SQLite path for the crawl history. Empty disables it.
	HistoryDB string `yaml:"history_db"`
}

// Default returns a Config populated with the default values.
func Default() *Config {
	return &Config{
		BaseURL:        DefaultBaseURL,
		ListingURL:     DefaultListingURL,
		JokeURL:        DefaultJokeURL,
		ArticleMarker:  DefaultArticleMarker,
		AcceptLanguage: DefaultAcceptLanguage,
		Timeout:        DefaultTimeout,
		OutputDir:      DefaultOutputDir,
	}
}

// Validate returns an error if the config contains invalid fields.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return scraper.Errorf(scraper.EINVALID, "base_url required")
	}
	if c.ListingURL == "" {
		return scraper.Errorf(scraper.EINVALID, "listing_url required")
	}
	if c.JokeURL == "" {
		return scraper.Errorf(scraper.EINVALID, "joke_url required")
	}
	if c.Timeout <= 0 {
		return scraper.Errorf(scraper.EINVALID, "timeout must be positive, got %s", c.Timeout)
	}
	return nil
}

// ListingPageURL returns the listing address for a 1-indexed page.
func (c *Config) ListingPageURL(page int) string {
	return c.ListingURL + strconv.Itoa(page)
}

// Headers returns the fixed headers sent with every page request.
func (c *Config) Headers() map[string]string {
	if c.AcceptLanguage == "" {
		return nil
	}
	return map[string]string{"Accept-Language": c.AcceptLanguage}
}

// DefaultPath returns $SCRAPER_CONFIG when set, otherwise
// ~/.scraper/config.yaml. It returns "" when no home directory is known.
func DefaultPath() string {
	if path := os.Getenv(EnvPath); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".scraper", "config.yaml")
}

// LoadFile reads the YAML file at path over the defaults. A missing file
// is not an error: the defaults are returned unchanged.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if strings.TrimSpace(string(data)) != "" {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, scraper.Errorf(scraper.EINVALID, "failed to parse config file %s: %v", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
