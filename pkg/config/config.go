package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	apperrors "github.com/killallgit/search-api/pkg/errors"
)

// EnvPrefix is prepended to every environment variable override,
// e.g. SEARCHAPI_SERVER_PORT=9000.
const EnvPrefix = "SEARCHAPI"

// DefaultConfigPath is where an optional YAML settings file is looked up
const DefaultConfigPath = "./config/settings.yaml"

var (
	once    sync.Once
	initErr error
)

// Init initializes the configuration system
// This should be called once at application startup
func Init() error {
	once.Do(func() {
		initErr = Load(DefaultConfigPath)
	})

	return initErr
}

// Load reads defaults, the optional config file at path and environment
// overrides into the global viper instance, then validates the result.
func Load(path string) error {
	setDefaults()

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	configPath := filepath.Clean(path)
	viper.SetConfigFile(configPath)

	if err := viper.ReadInConfig(); err != nil {
		// A missing file is fine - defaults and env vars still apply
		if !os.IsNotExist(err) {
			return fmt.Errorf("error reading config file %s: %w", configPath, err)
		}
	}

	if err := validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	return nil
}

// GetConfig returns the current configuration as a struct
// Init() must be called before using this
func GetConfig() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &config, nil
}

// GetString returns a string config value
func GetString(key string) string {
	return viper.GetString(key)
}

// validate validates the configuration using Viper values
func validate() error {
	port := viper.GetInt("server.port")
	if port <= 0 || port > 65535 {
		return apperrors.ConfigError("server.port", fmt.Sprintf("must be between 1 and 65535, got %d", port))
	}

	if viper.GetDuration("search.timeout") <= 0 {
		return apperrors.ConfigError("search.timeout", fmt.Sprintf("must be positive, got %q", viper.GetString("search.timeout")))
	}

	for _, key := range []string{"google.base_url", "youtube.base_url"} {
		if viper.GetString(key) == "" {
			return apperrors.ConfigError(key, "must not be empty")
		}
	}

	// Auto-correct invalid cache size
	if viper.GetInt("cache.max_entries") <= 0 {
		log.Warn().Int("max_entries", viper.GetInt("cache.max_entries")).Msg("Invalid cache.max_entries, using 500")
		viper.Set("cache.max_entries", 500)
	}

	// Auto-correct invalid rate limits
	if viper.GetInt("rate_limiting.rps") <= 0 {
		viper.Set("rate_limiting.rps", 5)
	}
	if viper.GetInt("rate_limiting.burst") <= 0 {
		viper.Set("rate_limiting.burst", 10)
	}

	return nil
}

// Validate checks a Config after flag overrides, correcting soft limits in place
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return apperrors.ConfigError("server.port", fmt.Sprintf("must be between 1 and 65535, got %d", c.Server.Port))
	}

	if c.Search.Timeout <= 0 {
		return apperrors.ConfigError("search.timeout", fmt.Sprintf("must be positive, got %s", c.Search.Timeout))
	}

	if c.Cache.MaxEntries <= 0 {
		c.Cache.MaxEntries = 500
	}

	if c.RateLimiting.RPS <= 0 {
		c.RateLimiting.RPS = 5
	}

	if c.RateLimiting.Burst <= 0 {
		c.RateLimiting.Burst = 10
	}

	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("environment", "development")

	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8000)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 30*time.Second)
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)
	viper.SetDefault("server.max_header_bytes", 1048576)

	// Search provider defaults
	viper.SetDefault("search.timeout", 10*time.Second)
	viper.SetDefault("search.user_agent", "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36")
	viper.SetDefault("google.base_url", "https://www.google.com")
	viper.SetDefault("google.language", "en")
	viper.SetDefault("youtube.base_url", "https://www.youtube.com")

	// Cache defaults
	viper.SetDefault("cache.search_ttl", 1*time.Hour)
	viper.SetDefault("cache.max_entries", 500)
	viper.SetDefault("cache.cleanup_interval", 5*time.Minute)

	// Rate limiting defaults
	viper.SetDefault("rate_limiting.enabled", true)
	viper.SetDefault("rate_limiting.rps", 5)
	viper.SetDefault("rate_limiting.burst", 10)

	// Security defaults
	viper.SetDefault("security.enable_cors", true)
	viper.SetDefault("security.cors_origins", []string{"*"})
	viper.SetDefault("security.max_body_bytes", 1048576)

	// Logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "console")
}
