package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Fallback payee used when neither a config file nor the environment sets one.
const (
	DefaultPayeeAddress = "7268955274@ptsbi"
	DefaultPayeeName    = "Coffee Support"
	DefaultNote         = "Thanks for the coffee!"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Payee     PayeeConfig     `mapstructure:"payee"`
	QR        QRConfig        `mapstructure:"qr"`
	Redis     RedisConfig     `mapstructure:"redis"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
	Log       LogConfig       `mapstructure:"log"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"` // debug, release, test
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// PayeeConfig is who receives the coffee money.
type PayeeConfig struct {
	Address string `mapstructure:"address"` // VPA, e.g. name@bank
	Name    string `mapstructure:"name"`
	Note    string `mapstructure:"note"`
	Presets []int  `mapstructure:"presets"` // quick-pick amounts in rupees
}

type QRConfig struct {
	DefaultSize int           `mapstructure:"default_size"` // PNG edge in pixels
	CacheMaxAge time.Duration `mapstructure:"cache_max_age"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// RateLimitConfig sets per-client request budgets. Only enforced when Redis
// is enabled.
type RateLimitConfig struct {
	PagePerMinute  int64 `mapstructure:"page_per_minute"`
	LinksPerMinute int64 `mapstructure:"links_per_minute"` // the page refreshes through this API while typing
	QRPerMinute    int64 `mapstructure:"qr_per_minute"`
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: BMC_ (Buy Me a Coffee).
// Nested keys use underscore: BMC_PAYEE_ADDRESS, BMC_REDIS_ENABLED, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("payee.address", DefaultPayeeAddress)
	v.SetDefault("payee.name", DefaultPayeeName)
	v.SetDefault("payee.note", DefaultNote)
	v.SetDefault("payee.presets", []int{50, 100, 200, 500})
	v.SetDefault("qr.default_size", 256)
	v.SetDefault("qr.cache_max_age", "5m")
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("ratelimit.page_per_minute", 60)
	v.SetDefault("ratelimit.links_per_minute", 600)
	v.SetDefault("ratelimit.qr_per_minute", 30)
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: BMC_PAYEE_ADDRESS -> payee.address
	v.SetEnvPrefix("BMC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required, env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	cfg.normalize()
	return &cfg, nil
}

// normalize trims payee fields and restores the fallback literals when an
// override is blank, so an empty BMC_PAYEE_ADDRESS behaves like an unset one.
func (c *Config) normalize() {
	c.Payee.Address = strings.TrimSpace(c.Payee.Address)
	if c.Payee.Address == "" {
		c.Payee.Address = DefaultPayeeAddress
	}
	c.Payee.Name = strings.TrimSpace(c.Payee.Name)
	if c.Payee.Name == "" {
		c.Payee.Name = DefaultPayeeName
	}

	presets := c.Payee.Presets[:0]
	for _, p := range c.Payee.Presets {
		if p > 0 {
			presets = append(presets, p)
		}
	}
	c.Payee.Presets = presets
}
