package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// PathEnvVar names an optional YAML file layered between defaults and the
// environment.
const PathEnvVar = "CONFIG_PATH"

// Natural Earth 110m admin-0 country polygons.
const (
	DefaultBordersPrimaryURL  = "https://raw.githubusercontent.com/nvkelso/natural-earth-vector/master/geojson/ne_110m_admin_0_countries.geojson"
	DefaultBordersFallbackURL = "https://d2ad6b4ur7yvpq.cloudfront.net/naturalearth-3.3.0/ne_110m_admin_0_countries.geojson"
)

// Config holds all service settings. Keys match the environment variable
// names in lower case.
type Config struct {
	HTTPAddr        string        `koanf:"http_addr"`
	LogLevel        string        `koanf:"log_level"`
	LogFormat       string        `koanf:"log_format"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	CORSOrigins     []string      `koanf:"cors_origins"`

	// Per-IP limit on /api requests. Zero requests disables it.
	RateLimitRequests int           `koanf:"rate_limit_requests"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`

	DataDir       string        `koanf:"data_dir"`
	FrameInterval time.Duration `koanf:"frame_interval"`
	SessionTTL    time.Duration `koanf:"session_ttl"`
	PreferencesDB string        `koanf:"preferences_db"`

	// Border overlay configuration.
	BordersEnabled     bool          `koanf:"borders_enabled"`
	BordersPrimaryURL  string        `koanf:"borders_primary_url"`
	BordersFallbackURL string        `koanf:"borders_fallback_url"`
	BordersTimeout     time.Duration `koanf:"borders_timeout"`
	BordersCacheSize   int           `koanf:"borders_cache_size"`

	// Frame streaming configuration.
	KafkaEnabled    bool     `koanf:"kafka_enabled"`
	KafkaBrokers    []string `koanf:"kafka_brokers"`
	KafkaFrameTopic string   `koanf:"kafka_frame_topic"`
}

func defaults() Config {
	return Config{
		HTTPAddr:        ":8080",
		LogLevel:        "info",
		LogFormat:       "json",
		ShutdownTimeout: 10 * time.Second,
		CORSOrigins:     []string{"*"},

		RateLimitRequests: 1200,
		RateLimitWindow:   time.Minute,

		DataDir:       "data",
		FrameInterval: 16 * time.Millisecond,
		SessionTTL:    30 * time.Minute,
		PreferencesDB: "journey.db",

		BordersEnabled:     true,
		BordersPrimaryURL:  DefaultBordersPrimaryURL,
		BordersFallbackURL: DefaultBordersFallbackURL,
		BordersTimeout:     10 * time.Second,
		BordersCacheSize:   64,

		KafkaEnabled:    false,
		KafkaBrokers:    []string{"localhost:9092"},
		KafkaFrameTopic: "journey-frames",
	}
}

var listKeys = []string{"cors_origins", "kafka_brokers"}

// Load reads configuration from defaults, an optional YAML file and the
// environment, in increasing priority. A .env file in the working directory
// is read first and never overrides variables already set.
func Load() (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(structs.Provider(defaults(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path := os.Getenv(PathEnvVar); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	known := knownKeys()
	if err := k.Load(env.Provider("", ".", func(s string) string {
		key := strings.ToLower(s)
		if !known[key] {
			return ""
		}
		return key
	}), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	for _, key := range listKeys {
		if s, ok := k.Get(key).(string); ok {
			if err := k.Set(key, ParseList(s)); err != nil {
				return nil, fmt.Errorf("set %s: %w", key, err)
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.HTTPAddr == "" {
		return errors.New("HTTP_ADDR is required")
	}
	if !slices.Contains([]string{"json", "text"}, strings.ToLower(c.LogFormat)) {
		return errors.New("LOG_FORMAT must be json or text")
	}
	if c.ShutdownTimeout <= 0 {
		return errors.New("invalid SHUTDOWN_TIMEOUT")
	}
	if c.RateLimitRequests < 0 {
		return errors.New("invalid RATE_LIMIT_REQUESTS")
	}
	if c.RateLimitRequests > 0 && c.RateLimitWindow <= 0 {
		return errors.New("invalid RATE_LIMIT_WINDOW")
	}
	if c.DataDir == "" {
		return errors.New("DATA_DIR is required")
	}
	if c.FrameInterval <= 0 {
		return errors.New("invalid FRAME_INTERVAL")
	}
	if c.SessionTTL <= 0 {
		return errors.New("invalid SESSION_TTL")
	}
	if c.BordersEnabled {
		if c.BordersPrimaryURL == "" {
			return errors.New("BORDERS_ENABLED is true but BORDERS_PRIMARY_URL is not set")
		}
		if c.BordersTimeout <= 0 {
			return errors.New("invalid BORDERS_TIMEOUT")
		}
		if c.BordersCacheSize <= 0 {
			return errors.New("invalid BORDERS_CACHE_SIZE")
		}
	}
	if c.KafkaEnabled {
		if len(c.KafkaBrokers) == 0 {
			return errors.New("KAFKA_BROKERS is required when KAFKA_ENABLED is true")
		}
		if c.KafkaFrameTopic == "" {
			return errors.New("KAFKA_FRAME_TOPIC is required when KAFKA_ENABLED is true")
		}
	}
	return nil
}

// ParseList splits a comma-separated value, dropping blanks.
func ParseList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func knownKeys() map[string]bool {
	k := koanf.New(".")
	_ = k.Load(structs.Provider(defaults(), "koanf"), nil)
	out := make(map[string]bool)
	for _, key := range k.Keys() {
		out[key] = true
	}
	return out
}
