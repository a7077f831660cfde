// Package config handles configuration loading for Newsly.
// It supports YAML config files with environment variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the complete application configuration.
type Config struct {
	Feed     FeedConfig     `mapstructure:"feed"     yaml:"feed"     json:"feed"`
	Results  ResultsConfig  `mapstructure:"results"  yaml:"results"  json:"results"`
	Chat     ChatConfig     `mapstructure:"chat"     yaml:"chat"     json:"chat"`
	Insights InsightsConfig `mapstructure:"insights" yaml:"insights" json:"insights"`
	API      APIConfig      `mapstructure:"api"      yaml:"api"      json:"api"`
	Logging  LoggingConfig  `mapstructure:"logging"  yaml:"logging"  json:"logging"`
}

// FeedConfig holds the upstream news-search feed settings.
type FeedConfig struct {
	// Endpoint is the syndication search endpoint; the trimmed,
	// percent-encoded keyword is appended as the q parameter.
	Endpoint string `mapstructure:"endpoint" yaml:"endpoint" json:"endpoint"`
	Language string `mapstructure:"language" yaml:"language" json:"language"` // hl parameter
	Country  string `mapstructure:"country"  yaml:"country"  json:"country"`  // gl parameter
	Edition  string `mapstructure:"edition"  yaml:"edition"  json:"edition"`  // ceid parameter

	TimeoutSec     int `mapstructure:"timeout_sec"      yaml:"timeout_sec"      json:"timeout_sec"`
	CacheTTLSec    int `mapstructure:"cache_ttl_sec"    yaml:"cache_ttl_sec"    json:"cache_ttl_sec"` // 0 disables caching
	RequestsPerSec int `mapstructure:"requests_per_sec" yaml:"requests_per_sec" json:"requests_per_sec"`
}

// ResultsConfig holds the default aggregation policy.
type ResultsConfig struct {
	MaxArticles int      `mapstructure:"max_articles" yaml:"max_articles" json:"max_articles"`
	SortBy      string   `mapstructure:"sort_by"      yaml:"sort_by"      json:"sort_by"`   // "published_date", "sentiment", "relevance"
	ShowOnly    []string `mapstructure:"show_only"    yaml:"show_only"    json:"show_only"` // empty means all sentiments
}

// ChatConfig holds the chat assistant settings.
type ChatConfig struct {
	MaxResults int `mapstructure:"max_results" yaml:"max_results" json:"max_results"`
}

// InsightsConfig holds the insight aggregation settings.
type InsightsConfig struct {
	TopKeywords int `mapstructure:"top_keywords" yaml:"top_keywords" json:"top_keywords"`
}

// APIConfig holds HTTP API server settings.
type APIConfig struct {
	Host        string   `mapstructure:"host"         yaml:"host"         json:"host"`
	Port        int      `mapstructure:"port"         yaml:"port"         json:"port"`
	CORSOrigins []string `mapstructure:"cors_origins" yaml:"cors_origins" json:"cors_origins"`
}

// Addr returns the host:port listen address for the API server.
func (c APIConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"  yaml:"level"  json:"level"`  // "debug", "info", "warn", "error"
	Format string `mapstructure:"format" yaml:"format" json:"format"` // "text" or "json"
}

// Load reads the configuration from file and environment variables.
// Config file search order:
//  1. ./config/config.yaml (project root)
//  2. ~/.newsly/config.yaml (home directory)
//  3. /etc/newsly/config.yaml (system)
//
// Environment variables override config file values.
// Format: NEWSLY_<SECTION>_<KEY>, e.g., NEWSLY_FEED_ENDPOINT
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(filepath.Join(homeDir(), ".newsly"))
	v.AddConfigPath("/etc/newsly")

	v.SetEnvPrefix("NEWSLY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required to exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found — that's fine, use defaults + env vars
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// LoadFromFile reads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	v.SetEnvPrefix("NEWSLY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets sensible defaults for all config values.
func setDefaults(v *viper.Viper) {
	// Feed defaults: the public Google News search feed.
	v.SetDefault("feed.endpoint", "https://news.google.com/rss/search")
	v.SetDefault("feed.language", "en-US")
	v.SetDefault("feed.country", "US")
	v.SetDefault("feed.edition", "US:en")
	v.SetDefault("feed.timeout_sec", 15)
	v.SetDefault("feed.cache_ttl_sec", 0)
	v.SetDefault("feed.requests_per_sec", 2)

	// Result policy defaults
	v.SetDefault("results.max_articles", 10)
	v.SetDefault("results.sort_by", "published_date")
	v.SetDefault("results.show_only", []string{})

	// Chat defaults
	v.SetDefault("chat.max_results", 3)

	// Insights defaults
	v.SetDefault("insights.top_keywords", 15)

	// API defaults
	v.SetDefault("api.host", "0.0.0.0")
	v.SetDefault("api.port", 8080)
	v.SetDefault("api.cors_origins", []string{"http://localhost:3000"})

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

// homeDir returns the user's home directory.
func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
