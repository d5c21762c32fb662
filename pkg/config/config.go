package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"

	"github.com/krishvsoni/suno/pkg/errors"
)

// DefaultConfigPath is read when no --config flag is given
const DefaultConfigPath = "./config/settings.yaml"

// placeholder values that must not reach a production upstream
var placeholders = []string{
	"YOUR_KEY_HERE",
	"YOUR_API_KEY",
	"changeme",
	"CHANGEME",
	"",
}

// Option adjusts how Init validates the loaded values
type Option func(*initOptions)

type initOptions struct {
	skipCredentials bool
}

// WithoutCredentials skips the upstream key check, for processes such as
// the terminal client that never call the upstreams themselves
func WithoutCredentials() Option {
	return func(o *initOptions) {
		o.skipCredentials = true
	}
}

// Init initializes the configuration system.
// Values resolve in order: env (SUNO_*, plus the legacy SEARCH_API and PORT),
// then the config file, then defaults.
func Init(configPath string, opts ...Option) error {
	var o initOptions
	for _, opt := range opts {
		opt(&o)
	}

	setDefaults()

	viper.SetEnvPrefix("SUNO")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Variables the original deployment already uses
	_ = viper.BindEnv("credentials.search_api", "SUNO_CREDENTIALS_SEARCH_API", "SEARCH_API")
	_ = viper.BindEnv("server.port", "SUNO_SERVER_PORT", "PORT")

	if configPath == "" {
		configPath = DefaultConfigPath
	}
	configPath = filepath.Clean(configPath)
	viper.SetConfigFile(configPath)

	if err := viper.ReadInConfig(); err != nil {
		// A missing file is fine: defaults and env vars still apply
		if !os.IsNotExist(err) {
			return fmt.Errorf("error reading config file %s: %w", configPath, err)
		}
	}

	if err := validate(o); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	return nil
}

// GetConfig returns the current configuration as a validated struct
// Init() must be called before using this
func GetConfig() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &config, nil
}

// validate validates the configuration using Viper values
func validate(o initOptions) error {
	port := viper.GetInt("server.port")
	if port <= 0 || port > 65535 {
		return errors.ConfigError("server.port", fmt.Sprintf("invalid server port: %d", port))
	}

	if !o.skipCredentials {
		if err := validateAPIKeys(); err != nil {
			return err
		}
	}

	if viper.GetDuration("client.debounce") <= 0 {
		viper.Set("client.debounce", 500*time.Millisecond)
	}

	switch backend := viper.GetString("cache.backend"); backend {
	case "memory", "redis":
	default:
		return errors.ConfigError("cache.backend", fmt.Sprintf("unknown cache backend: %q", backend))
	}

	if viper.GetBool("rate_limiting.enabled") && viper.GetInt("rate_limiting.rps") <= 0 {
		viper.Set("rate_limiting.rps", 5)
	}

	return nil
}

// validateAPIKeys rejects placeholder upstream keys in production and warns
// about them elsewhere
func validateAPIKeys() error {
	env := viper.GetString("environment")
	isProduction := env == "production" || env == "prod"

	shared := viper.GetString("credentials.search_api")
	keys := map[string]string{
		"catalog": firstNonEmpty(viper.GetString("catalog.api_key"), shared),
		"video":   firstNonEmpty(viper.GetString("video.api_key"), shared),
	}

	for service, key := range keys {
		if !isPlaceholder(key) {
			continue
		}
		if isProduction {
			return errors.ConfigError(service+".api_key", "cannot use placeholder values in production")
		}
		log.Warn("API key is missing or a placeholder", "service", service)
	}

	return nil
}

func isPlaceholder(key string) bool {
	for _, p := range placeholders {
		if key == p {
			return true
		}
	}
	return false
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Validate checks the decoded struct and fills zero durations the
// controller cannot work with
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return errors.ConfigError("server.port", fmt.Sprintf("invalid server port: %d", c.Server.Port))
	}

	if c.Catalog.BaseURL == "" {
		return errors.ConfigError("catalog.base_url", "catalog base URL is required")
	}

	if c.Client.Debounce <= 0 {
		c.Client.Debounce = 500 * time.Millisecond
	}

	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("environment", "development")

	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 3000)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 30*time.Second)
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)
	viper.SetDefault("server.max_header_bytes", 1048576)

	viper.SetDefault("credentials.search_api", "")

	// Catalog defaults (RapidAPI Spotify proxy)
	viper.SetDefault("catalog.base_url", "https://spotify23.p.rapidapi.com")
	viper.SetDefault("catalog.host", "spotify23.p.rapidapi.com")
	viper.SetDefault("catalog.api_key", "")
	viper.SetDefault("catalog.timeout", 0)

	// Video defaults
	viper.SetDefault("video.base_url", "")
	viper.SetDefault("video.api_key", "")
	viper.SetDefault("video.timeout", 0)

	// Terminal client defaults
	viper.SetDefault("client.api_url", "http://localhost:3000")
	viper.SetDefault("client.debounce", 500*time.Millisecond)
	viper.SetDefault("client.timeout", 15*time.Second)

	// Cache defaults
	viper.SetDefault("cache.enabled", false)
	viper.SetDefault("cache.backend", "memory")
	viper.SetDefault("cache.redis_url", "redis://localhost:6379/0")
	viper.SetDefault("cache.key_prefix", "suno:")
	viper.SetDefault("cache.max_size_mb", 64)
	viper.SetDefault("cache.default_ttl", 10*time.Minute)
	viper.SetDefault("cache.search_ttl", 10*time.Minute)
	viper.SetDefault("cache.play_ttl", 1*time.Hour)

	// Rate limiting defaults
	viper.SetDefault("rate_limiting.enabled", false)
	viper.SetDefault("rate_limiting.rps", 5)
	viper.SetDefault("rate_limiting.burst", 10)

	// Security defaults
	viper.SetDefault("security.enable_cors", true)
	viper.SetDefault("security.cors_origins", []string{"*"})
	viper.SetDefault("security.enable_request_id", true)
	viper.SetDefault("security.max_body_bytes", 1048576)

	// Logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "text")
	viper.SetDefault("logging.file_path", "./tmp/suno-tui.log")
}
