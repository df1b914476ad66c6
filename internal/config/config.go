package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const DefaultSiteURL = "https://displaytest.site"

type Config struct {
	Port    string
	Env     string
	SiteURL string

	// LastModified is reported in the sitemap and dates the footer.
	LastModified time.Time
}

func (c *Config) DevMode() bool {
	return strings.HasPrefix(c.Env, "dev")
}

// Load reads config.yaml from . or ./config if present, then the environment
// (PORT, ENV, SITE_URL, SITE_LAST_MODIFIED), which takes precedence.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return load(v, time.Now())
}

func load(v *viper.Viper, now time.Time) (*Config, error) {
	v.SetDefault("port", "3000")
	v.SetDefault("env", "")
	v.SetDefault("site_url", DefaultSiteURL)
	v.SetDefault("site_last_modified", "")

	v.AutomaticEnv()

	cfg := &Config{
		Port:    v.GetString("port"),
		Env:     v.GetString("env"),
		SiteURL: strings.TrimSuffix(v.GetString("site_url"), "/"),
	}

	if !strings.HasPrefix(cfg.SiteURL, "http://") && !strings.HasPrefix(cfg.SiteURL, "https://") {
		return nil, fmt.Errorf("site_url must be an absolute http(s) url: %q", cfg.SiteURL)
	}

	lastModified, err := parseDate(v.GetString("site_last_modified"), now)
	if err != nil {
		return nil, err
	}

	cfg.LastModified = lastModified

	return cfg, nil
}

func parseDate(s string, now time.Time) (time.Time, error) {
	if s == "" {
		return now.UTC().Truncate(24 * time.Hour), nil
	}

	for _, layout := range []string{time.RFC3339, time.DateOnly} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, fmt.Errorf("site_last_modified: cannot parse %q as RFC 3339 or YYYY-MM-DD", s)
}
