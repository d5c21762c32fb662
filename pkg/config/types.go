package config

import "time"

// Config represents the complete application configuration
type Config struct {
	Environment  string             `mapstructure:"environment"`
	Server       ServerConfig       `mapstructure:"server"`
	Credentials  CredentialsConfig  `mapstructure:"credentials"`
	Catalog      CatalogConfig      `mapstructure:"catalog"`
	Video        VideoConfig        `mapstructure:"video"`
	Client       ClientConfig       `mapstructure:"client"`
	Cache        CacheConfig        `mapstructure:"cache"`
	RateLimiting RateLimitConfig    `mapstructure:"rate_limiting"`
	Security     SecurityConfig     `mapstructure:"security"`
	Logging      LoggingConfig      `mapstructure:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxHeaderBytes  int           `mapstructure:"max_header_bytes"`
}

// CredentialsConfig holds the shared upstream secret. Both the catalog and
// the video provider read it unless they carry their own key.
type CredentialsConfig struct {
	SearchAPI string `mapstructure:"search_api"`
}

// CatalogConfig contains music catalog (RapidAPI) settings
type CatalogConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Host    string        `mapstructure:"host"`
	APIKey  string        `mapstructure:"api_key"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// VideoConfig contains YouTube Data API settings. An empty BaseURL keeps the
// library default endpoint.
type VideoConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	APIKey  string        `mapstructure:"api_key"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// ClientConfig contains settings for the terminal client
type ClientConfig struct {
	APIURL   string        `mapstructure:"api_url"`
	Debounce time.Duration `mapstructure:"debounce"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// CacheConfig contains response cache settings
type CacheConfig struct {
	Enabled    bool          `mapstructure:"enabled"`
	Backend    string        `mapstructure:"backend"` // memory or redis
	RedisURL   string        `mapstructure:"redis_url"`
	KeyPrefix  string        `mapstructure:"key_prefix"`
	MaxSizeMB  int64         `mapstructure:"max_size_mb"`
	DefaultTTL time.Duration `mapstructure:"default_ttl"`
	SearchTTL  time.Duration `mapstructure:"search_ttl"`
	PlayTTL    time.Duration `mapstructure:"play_ttl"`
}

// RateLimitConfig contains per-client rate limiting settings
type RateLimitConfig struct {
	Enabled bool `mapstructure:"enabled"`
	RPS     int  `mapstructure:"rps"`
	Burst   int  `mapstructure:"burst"`
}

// SecurityConfig contains security settings
type SecurityConfig struct {
	EnableCORS      bool     `mapstructure:"enable_cors"`
	CORSOrigins     []string `mapstructure:"cors_origins"`
	EnableRequestID bool     `mapstructure:"enable_request_id"`
	MaxBodyBytes    int64    `mapstructure:"max_body_bytes"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level    string `mapstructure:"level"`
	Format   string `mapstructure:"format"`
	FilePath string `mapstructure:"file_path"`
}

// CatalogKey returns the key used for the catalog API
func (c *Config) CatalogKey() string {
	if c.Catalog.APIKey != "" {
		return c.Catalog.APIKey
	}
	return c.Credentials.SearchAPI
}

// VideoKey returns the key used for the video API
func (c *Config) VideoKey() string {
	if c.Video.APIKey != "" {
		return c.Video.APIKey
	}
	return c.Credentials.SearchAPI
}
