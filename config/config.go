// Package config defines the validated configuration record described
// by spec §6.3: a tree of per-section option groups plus a Validate
// method enforcing the cross-field insecure-combination checks the
// section calls out explicitly (public bind without rate limiting,
// wildcard CORS origin with credentials, sanitization disabled on a
// public bind, caps outside their safe range, and TLS cert/key
// all-or-nothing).
//
// Grounded on the small-struct-plus-constructor idiom used throughout
// this repo's own packages (ratelimit.Rule, transport.HTTPConfig) and
// on go-playground/validator's struct-tag style already exercised by
// jsonrpc's per-parameter validation (jsonrpc/server.go).
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// LimitConfig is a requests-per-window budget (§6.3 rate_limit.*).
type LimitConfig struct {
	Requests int           `mapstructure:"requests" validate:"gte=1"`
	Window   time.Duration `mapstructure:"window" validate:"gt=0"`
}

// MethodLimitConfig overrides the default/websocket limit for requests
// matching Pattern (§6.3 rate_limit.method_limits[]).
type MethodLimitConfig struct {
	Pattern string      `mapstructure:"pattern" validate:"required"`
	Limit   LimitConfig `mapstructure:"limit"`
}

// CORSConfig mirrors §6.3's http.cors.* keys.
type CORSConfig struct {
	Enabled          bool     `mapstructure:"enabled"`
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAgeSeconds    int      `mapstructure:"max_age_seconds" validate:"gte=0"`
}

// HTTPConfig is the §6.3 http.* section.
type HTTPConfig struct {
	BindAddress    string        `mapstructure:"bind_address" validate:"required"`
	MaxBodySize    int64         `mapstructure:"max_body_size" validate:"gte=1"`
	RequestTimeout time.Duration `mapstructure:"request_timeout" validate:"gt=0"`
	MaxConnections int           `mapstructure:"max_connections" validate:"gte=1"`
	CertFile       string        `mapstructure:"cert"`
	KeyFile        string        `mapstructure:"key"`
	CORS           CORSConfig    `mapstructure:"cors"`
}

// TLSEnabled reports whether both halves of the cert/key pair are set.
func (h HTTPConfig) TLSEnabled() bool {
	return h.CertFile != "" && h.KeyFile != ""
}

// WSConfig is the §6.3 ws.* section.
type WSConfig struct {
	BindAddress                   string        `mapstructure:"bind_address" validate:"required"`
	MaxMessageSize                int64         `mapstructure:"max_message_size" validate:"gte=1"`
	MaxConnections                int           `mapstructure:"max_connections" validate:"gte=1"`
	MaxSubscriptionsPerConnection int           `mapstructure:"max_subscriptions_per_connection" validate:"gte=1"`
	IdleTimeout                   time.Duration `mapstructure:"idle_timeout" validate:"gt=0"`
	MaxEventsPerSecond            int           `mapstructure:"max_events_per_second" validate:"gte=1"`
}

// RateLimitConfig is the §6.3 rate_limit.* section.
type RateLimitConfig struct {
	Enabled        bool                 `mapstructure:"enabled"`
	DefaultLimit   LimitConfig         `mapstructure:"default_limit"`
	WebSocketLimit LimitConfig         `mapstructure:"websocket_limit"`
	MethodLimits   []MethodLimitConfig `mapstructure:"method_limits"`
}

// FeaturesConfig is the §6.3 features.* section.
type FeaturesConfig struct {
	EnableWebSocket           bool `mapstructure:"enable_websocket"`
	DetailedErrors            bool `mapstructure:"detailed_errors"`
	MethodTiming              bool `mapstructure:"method_timing"`
	StrictVersionChecking     bool `mapstructure:"strict_version_checking"`
	StrictParameterValidation bool `mapstructure:"strict_parameter_validation"`
	MaxBlockRange             int  `mapstructure:"max_block_range" validate:"gte=1"`
	MaxBatchSize              int  `mapstructure:"max_batch_size" validate:"gte=1"`

	// LegacyStatusNotFoundAsResult resolves the Open Question over
	// getTransactionStatus's not-found shape: false (the default)
	// returns rpcerr.ErrTxnNotFound; true returns a NotFound result
	// value instead of an error.
	LegacyStatusNotFoundAsResult bool `mapstructure:"legacy_status_not_found_as_result"`
}

// SanitizationConfig is the §6.3 sanitization.* section.
type SanitizationConfig struct {
	Enabled          bool     `mapstructure:"enabled"`
	SensitiveTerms   []string `mapstructure:"sensitive_terms"`
	MaxMessageLength int      `mapstructure:"max_message_length" validate:"gte=0"`
	RedactionMarker  string   `mapstructure:"redaction_marker"`
	SanitizePaths    bool     `mapstructure:"sanitize_paths"`
}

// Config is the validated record passed at startup (§6.3).
type Config struct {
	HTTP         HTTPConfig         `mapstructure:"http"`
	WS           WSConfig           `mapstructure:"ws"`
	RateLimit    RateLimitConfig    `mapstructure:"rate_limit"`
	Features     FeaturesConfig     `mapstructure:"features"`
	Sanitization SanitizationConfig `mapstructure:"sanitization"`
}

// Safe thresholds enforced by Validate beyond go-playground/validator's
// struct tags (§6.3 "caps set below minimal safe thresholds; above
// maximal safe thresholds").
const (
	minBodySize = 1 << 10        // 1 KiB
	maxBodySize = 128 << 20      // 128 MiB
	minRequestTimeout = time.Second
	maxRequestTimeout = 2 * time.Minute
	minConnections    = 1
	maxConnections    = 200_000
	minMessageSize    = 1 << 10
	maxMessageSize    = 64 << 20
	minSubsPerConn    = 1
	maxSubsPerConn    = 4096
	minEventsPerSec   = 1
	maxEventsPerSec   = 100_000
	minBlockRange     = 1
	maxBlockRange     = 50_000
	minBatchSize      = 1
	maxBatchSize      = 10_000
	minMessageLength  = 32 // only enforced when truncation is enabled (>0)
	maxMessageLength  = 1 << 20
)

var structValidator = validator.New()

// Validate runs struct-tag validation and then the cross-field
// insecure-combination checks §6.3 calls out by name.
func (c Config) Validate() error {
	if err := structValidator.Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	var errs []string
	check := func(cond bool, msg string) {
		if cond {
			errs = append(errs, msg)
		}
	}

	check(c.HTTP.CertFile != "" && c.HTTP.KeyFile == "", "http: cert set without key")
	check(c.HTTP.CertFile == "" && c.HTTP.KeyFile != "", "http: key set without cert")

	check(outOfRange(c.HTTP.MaxBodySize, minBodySize, maxBodySize), fmt.Sprintf("http.max_body_size must be between %d and %d bytes", minBodySize, maxBodySize))
	check(c.HTTP.RequestTimeout < minRequestTimeout || c.HTTP.RequestTimeout > maxRequestTimeout, fmt.Sprintf("http.request_timeout must be between %s and %s", minRequestTimeout, maxRequestTimeout))
	check(outOfRangeInt(c.HTTP.MaxConnections, minConnections, maxConnections), fmt.Sprintf("http.max_connections must be between %d and %d", minConnections, maxConnections))

	check(outOfRange(c.WS.MaxMessageSize, minMessageSize, maxMessageSize), fmt.Sprintf("ws.max_message_size must be between %d and %d bytes", minMessageSize, maxMessageSize))
	check(outOfRangeInt(c.WS.MaxConnections, minConnections, maxConnections), fmt.Sprintf("ws.max_connections must be between %d and %d", minConnections, maxConnections))
	check(outOfRangeInt(c.WS.MaxSubscriptionsPerConnection, minSubsPerConn, maxSubsPerConn), fmt.Sprintf("ws.max_subscriptions_per_connection must be between %d and %d", minSubsPerConn, maxSubsPerConn))
	check(outOfRangeInt(c.WS.MaxEventsPerSecond, minEventsPerSec, maxEventsPerSec), fmt.Sprintf("ws.max_events_per_second must be between %d and %d", minEventsPerSec, maxEventsPerSec))

	check(outOfRangeInt(c.Features.MaxBlockRange, minBlockRange, maxBlockRange), fmt.Sprintf("features.max_block_range must be between %d and %d", minBlockRange, maxBlockRange))
	check(outOfRangeInt(c.Features.MaxBatchSize, minBatchSize, maxBatchSize), fmt.Sprintf("features.max_batch_size must be between %d and %d", minBatchSize, maxBatchSize))

	check(c.Sanitization.MaxMessageLength > 0 && outOfRangeInt(c.Sanitization.MaxMessageLength, minMessageLength, maxMessageLength), fmt.Sprintf("sanitization.max_message_length must be 0 (unbounded) or between %d and %d", minMessageLength, maxMessageLength))

	publicHTTP := isPublicBind(c.HTTP.BindAddress)
	publicWS := c.Features.EnableWebSocket && isPublicBind(c.WS.BindAddress)
	public := publicHTTP || publicWS

	check(public && !c.RateLimit.Enabled, "rate_limit.enabled must be true when http or ws binds to a non-loopback address")
	check(public && !c.Sanitization.Enabled, "sanitization.enabled must be true when http or ws binds to a non-loopback address")

	if c.HTTP.CORS.Enabled && c.HTTP.CORS.AllowCredentials {
		for _, origin := range c.HTTP.CORS.AllowedOrigins {
			if origin == "*" {
				errs = append(errs, "http.cors: allowed_origins may not contain \"*\" when allow_credentials is true")
				break
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %s", strings.Join(errs, "; "))
	}
	return nil
}

func outOfRange(v, lo, hi int64) bool { return v < lo || v > hi }
func outOfRangeInt(v, lo, hi int) bool { return v < lo || v > hi }

// isPublicBind reports whether addr names anything other than a
// loopback interface (localhost, 127.0.0.1, ::1). The wildcard host
// (0.0.0.0, or a bare ":port") counts as public. An empty address is
// treated as not bound (not public).
func isPublicBind(addr string) bool {
	if addr == "" {
		return false
	}
	host := addr
	if idx := strings.LastIndex(addr, ":"); idx >= 0 {
		host = addr[:idx]
	}
	host = strings.Trim(host, "[]")
	switch host {
	case "localhost", "127.0.0.1", "::1":
		return false
	}
	return true
}

// Default returns a Config suitable for a loopback-only development
// deployment: rate limiting and sanitization are on regardless, since
// neither costs anything at loopback scale and both are required the
// moment bind_address changes to anything public.
func Default() Config {
	return Config{
		HTTP: HTTPConfig{
			BindAddress:    "127.0.0.1:8545",
			MaxBodySize:    5 << 20,
			RequestTimeout: 30 * time.Second,
			MaxConnections: 1000,
			CORS: CORSConfig{
				Enabled:        true,
				AllowedOrigins: []string{"*"},
				AllowedMethods: []string{"POST", "OPTIONS"},
				AllowedHeaders: []string{"Content-Type", "Rusk-Version"},
				MaxAgeSeconds:  600,
			},
		},
		WS: WSConfig{
			BindAddress:                   "127.0.0.1:8546",
			MaxMessageSize:                1 << 20,
			MaxConnections:                1000,
			MaxSubscriptionsPerConnection: 64,
			IdleTimeout:                   5 * time.Minute,
			MaxEventsPerSecond:            100,
		},
		RateLimit: RateLimitConfig{
			Enabled:        true,
			DefaultLimit:   LimitConfig{Requests: 100, Window: time.Second},
			WebSocketLimit: LimitConfig{Requests: 50, Window: time.Second},
		},
		Features: FeaturesConfig{
			EnableWebSocket:           true,
			DetailedErrors:            false,
			MethodTiming:              true,
			StrictVersionChecking:     false,
			StrictParameterValidation: true,
			MaxBlockRange:             1000,
			MaxBatchSize:              50,
		},
		Sanitization: SanitizationConfig{
			Enabled:          true,
			SensitiveTerms:   []string{"password", "secret", "private_key", "seed"},
			MaxMessageLength: 512,
			RedactionMarker:  "[REDACTED]",
			SanitizePaths:    true,
		},
	}
}
