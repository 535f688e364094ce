// Package config loads server configuration from the environment.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the complete server configuration
type Config struct {
	Port    string
	GinMode string

	LogLevel  string
	LogFormat string

	DatabaseURL string
	CORSOrigins []string

	AIEnabled bool
	Gemini    GeminiConfig
	Gateway   GatewayConfig

	AnalysisTimeout      time.Duration
	FirstMeasuresTimeout time.Duration
	FirstMeasuresCache   CacheConfig
	Breaker              BreakerConfig
	RateLimit            RateLimitConfig
}

// GeminiConfig configures the analysis model
type GeminiConfig struct {
	APIKey string
	Model  string
}

// GatewayConfig configures the OpenAI-compatible gateway used for first measures
type GatewayConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

// CacheConfig sizes an expiring LRU cache
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

// BreakerConfig tunes the circuit breaker around the analysis model
type BreakerConfig struct {
	MaxFailures  uint32
	ResetTimeout time.Duration
}

// RateLimitConfig bounds per-IP request rates on /api and per-connection
// check rates on /ws/check
type RateLimitConfig struct {
	PerMinute   int
	Burst       int
	WSPerMinute int
	WSBurst     int
}

// Load reads an optional .env file and then the process environment.
// Missing AI credentials are not an error: the AI components fall back.
func Load() (*Config, error) {
	// .env is optional; production injects real environment variables
	_ = godotenv.Load()

	return FromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("GIN_MODE", "release")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "")

	v.SetDefault("AI_ENABLED", true)
	v.SetDefault("GEMINI_API_KEY", "")
	v.SetDefault("GEMINI_MODEL", "gemini-2.0-flash")
	v.SetDefault("AI_GATEWAY_API_KEY", "")
	v.SetDefault("AI_GATEWAY_BASE_URL", "https://ai.gateway.lovable.dev/v1")
	v.SetDefault("AI_GATEWAY_MODEL", "google/gemini-2.5-flash")

	v.SetDefault("ANALYSIS_TIMEOUT", "30s")
	v.SetDefault("FIRST_MEASURES_TIMEOUT", "10s")
	v.SetDefault("FIRST_MEASURES_CACHE_SIZE", 256)
	v.SetDefault("FIRST_MEASURES_CACHE_TTL", "15m")

	v.SetDefault("BREAKER_MAX_FAILURES", 5)
	v.SetDefault("BREAKER_RESET_TIMEOUT", "30s")

	v.SetDefault("RATE_LIMIT_PER_MINUTE", 60)
	v.SetDefault("RATE_LIMIT_BURST", 20)
	v.SetDefault("WS_RATE_LIMIT_PER_MINUTE", 20)
	v.SetDefault("WS_RATE_LIMIT_BURST", 5)
}

// FromViper builds a Config from an already populated viper instance
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Port:        v.GetString("PORT"),
		GinMode:     v.GetString("GIN_MODE"),
		LogLevel:    v.GetString("LOG_LEVEL"),
		LogFormat:   v.GetString("LOG_FORMAT"),
		DatabaseURL: v.GetString("DATABASE_URL"),
		CORSOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		AIEnabled:   v.GetBool("AI_ENABLED"),
		Gemini: GeminiConfig{
			APIKey: v.GetString("GEMINI_API_KEY"),
			Model:  v.GetString("GEMINI_MODEL"),
		},
		Gateway: GatewayConfig{
			APIKey:  v.GetString("AI_GATEWAY_API_KEY"),
			BaseURL: v.GetString("AI_GATEWAY_BASE_URL"),
			Model:   v.GetString("AI_GATEWAY_MODEL"),
		},
		AnalysisTimeout:      v.GetDuration("ANALYSIS_TIMEOUT"),
		FirstMeasuresTimeout: v.GetDuration("FIRST_MEASURES_TIMEOUT"),
		FirstMeasuresCache: CacheConfig{
			Size: v.GetInt("FIRST_MEASURES_CACHE_SIZE"),
			TTL:  v.GetDuration("FIRST_MEASURES_CACHE_TTL"),
		},
		Breaker: BreakerConfig{
			MaxFailures:  v.GetUint32("BREAKER_MAX_FAILURES"),
			ResetTimeout: v.GetDuration("BREAKER_RESET_TIMEOUT"),
		},
		RateLimit: RateLimitConfig{
			PerMinute:   v.GetInt("RATE_LIMIT_PER_MINUTE"),
			Burst:       v.GetInt("RATE_LIMIT_BURST"),
			WSPerMinute: v.GetInt("WS_RATE_LIMIT_PER_MINUTE"),
			WSBurst:     v.GetInt("WS_RATE_LIMIT_BURST"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values the server cannot run with
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT must not be empty")
	}
	if c.AnalysisTimeout <= 0 {
		return fmt.Errorf("invalid ANALYSIS_TIMEOUT: %s", c.AnalysisTimeout)
	}
	if c.FirstMeasuresTimeout <= 0 {
		return fmt.Errorf("invalid FIRST_MEASURES_TIMEOUT: %s", c.FirstMeasuresTimeout)
	}
	if c.FirstMeasuresCache.Size <= 0 {
		return fmt.Errorf("invalid FIRST_MEASURES_CACHE_SIZE: %d", c.FirstMeasuresCache.Size)
	}
	if c.Breaker.MaxFailures == 0 {
		return fmt.Errorf("BREAKER_MAX_FAILURES must be at least 1")
	}
	if c.RateLimit.PerMinute <= 0 || c.RateLimit.Burst <= 0 {
		return fmt.Errorf("rate limit must be positive (per minute %d, burst %d)", c.RateLimit.PerMinute, c.RateLimit.Burst)
	}
	if c.RateLimit.WSPerMinute <= 0 || c.RateLimit.WSBurst <= 0 {
		return fmt.Errorf("websocket rate limit must be positive (per minute %d, burst %d)", c.RateLimit.WSPerMinute, c.RateLimit.WSBurst)
	}

	validLogLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true, "fatal": true, "panic": true,
	}
	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}
	return nil
}

// AnalysisConfigured reports whether the analysis model has a credential
func (c *Config) AnalysisConfigured() bool {
	return c.AIEnabled && c.Gemini.APIKey != ""
}

// FirstMeasuresConfigured reports whether the first-measures gateway has a credential
func (c *Config) FirstMeasuresConfigured() bool {
	return c.AIEnabled && c.Gateway.APIKey != ""
}

// splitList parses a comma separated env value, dropping blanks
func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
