// Path: internal/config/config.go
package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	Server ServerConfig
	Hub    HubConfig
	Cache  CacheConfig
	Query  QueryConfig
}

// ServerConfig holds the API server settings.
type ServerConfig struct {
	Port string `mapstructure:"port"`
}

// HubConfig holds settings for the Hugging Face API client.
type HubConfig struct {
	BaseURL           string `mapstructure:"base_url"`
	RequestsPerSecond int    `mapstructure:"requests_per_second"`
	BurstLimit        int    `mapstructure:"burst_limit"`
	TimeoutSeconds    int    `mapstructure:"timeout_seconds"`
}

// CacheConfig holds the TTLs for the two cache namespaces.
type CacheConfig struct {
	ListTTLMinutes   int `mapstructure:"list_ttl_minutes"`
	DetailTTLMinutes int `mapstructure:"detail_ttl_minutes"`
}

// ListTTL returns the list-query TTL as a duration.
func (c CacheConfig) ListTTL() time.Duration {
	return time.Duration(c.ListTTLMinutes) * time.Minute
}

// DetailTTL returns the detail-lookup TTL as a duration.
func (c CacheConfig) DetailTTL() time.Duration {
	return time.Duration(c.DetailTTLMinutes) * time.Minute
}

// QueryConfig holds settings for the popularity query pipeline.
type QueryConfig struct {
	// OversampleFactor scales the raw fetch beyond the requested limit so
	// the time-window filter has records to discard.
	OversampleFactor int `mapstructure:"oversample_factor"`
	// FetchFloor is the minimum raw fetch size regardless of limit.
	FetchFloor int `mapstructure:"fetch_floor"`
}

// Load loads the configuration from file and environment variables.
func Load() (*Config, error) {
	// Set default values
	viper.SetDefault("SERVER.PORT", "8080")
	viper.SetDefault("HUB.BASE_URL", "https://huggingface.co")
	viper.SetDefault("HUB.REQUESTS_PER_SECOND", 5)
	viper.SetDefault("HUB.BURST_LIMIT", 10)
	viper.SetDefault("HUB.TIMEOUT_SECONDS", 30)
	viper.SetDefault("CACHE.LIST_TTL_MINUTES", 60)
	viper.SetDefault("CACHE.DETAIL_TTL_MINUTES", 1440)
	viper.SetDefault("QUERY.OVERSAMPLE_FACTOR", 3)
	viper.SetDefault("QUERY.FETCH_FLOOR", 500)

	// Load from config file
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err // Only return error if it's not a "file not found" error
		}
	}

	// Load from environment variables
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
