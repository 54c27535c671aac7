package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/citizenchain/citizenauth/core"
)

// Config aggregates application configuration values.
type Config struct {
	HTTP     HTTPConfig
	Auth     AuthConfig
	Replay   ReplayConfig
	Redis    RedisConfig
	Events   EventsConfig
	Verifier VerifierConfig
	QR       QRConfig
	Logging  LoggingConfig
}

// HTTPConfig governs HTTP server behaviour.
type HTTPConfig struct {
	Host            string
	Port            int
	ShutdownTimeout time.Duration
}

// Addr returns the listen address.
func (c HTTPConfig) Addr() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}

// AuthConfig selects the login protocol and session token settings.
type AuthConfig struct {
	Variant              core.Variant
	ChallengeTTL         time.Duration // zero keeps the protocol default
	UnknownSigner        core.UnknownSignerPolicy
	FallbackOrganization string
	AccessTTL            time.Duration
	SigningKeyFile       string // PEM EC private key; empty generates one at startup
}

// Protocol builds the login protocol profile with overrides applied.
func (c AuthConfig) Protocol() (core.Protocol, error) {
	p, err := core.ProtocolFor(c.Variant)
	if err != nil {
		return core.Protocol{}, err
	}
	if c.ChallengeTTL > 0 {
		p.TTL = c.ChallengeTTL
	}
	if c.UnknownSigner != "" {
		p.UnknownSigner = c.UnknownSigner
	}
	if c.FallbackOrganization != "" {
		p.FallbackOrganization = c.FallbackOrganization
	}
	if p.UnknownSigner == core.PolicyFallback && p.FallbackOrganization == "" {
		p.FallbackOrganization = core.DefaultFallbackOrganization
	}
	if err := p.Validate(); err != nil {
		return core.Protocol{}, err
	}
	return p, nil
}

// ReplayConfig chooses where consumed request ids are kept.
type ReplayConfig struct {
	Backend string // memory|redis
	TTL     time.Duration
}

// RedisConfig describes connectivity to Redis.
type RedisConfig struct {
	URL string
}

// EventsConfig toggles publishing of login events to Redis streams.
type EventsConfig struct {
	Enabled bool
}

// VerifierConfig selects how signatures are checked.
type VerifierConfig struct {
	Mode    string // local|remote
	URL     string
	Timeout time.Duration
}

// QRConfig controls challenge QR rendering.
type QRConfig struct {
	Enabled   bool
	RemoteURL string // empty disables the remote service
	Size      int
	Timeout   time.Duration
}

// LoggingConfig controls structured logging settings.
type LoggingConfig struct {
	Level         string
	Format        string // text|json
	IncludeCaller bool
}

const (
	ReplayMemory = "memory"
	ReplayRedis  = "redis"

	VerifierLocal  = "local"
	VerifierRemote = "remote"
)

const (
	defaultHost            = "0.0.0.0"
	defaultPort            = 8080
	defaultShutdownTimeout = 10 * time.Second
	defaultProtocol        = core.VariantWuminapp
	defaultAccessTTL       = 15 * time.Minute
	defaultReplayTTL       = 24 * time.Hour
	defaultRedisURL        = "redis://localhost:6379/0"
	defaultVerifierTimeout = 5 * time.Second
	defaultQRRemoteURL     = "https://api.qrserver.com/v1/create-qr-code/"
	defaultQRSize          = 220
	defaultQRTimeout       = 3 * time.Second
	defaultLoggingLevel    = "info"
	defaultLoggingFormat   = "text"
)

// Load reads configuration from environment variables, applying defaults.
func Load() (Config, error) {
	cfg := Config{
		HTTP: HTTPConfig{
			Host: valueOrDefault("SERVER_HOST", defaultHost),
		},
		Auth: AuthConfig{
			Variant:              core.Variant(valueOrDefault("AUTH_PROTOCOL", string(defaultProtocol))),
			UnknownSigner:        core.UnknownSignerPolicy(os.Getenv("AUTH_UNKNOWN_SIGNER")),
			FallbackOrganization: os.Getenv("AUTH_FALLBACK_ORGANIZATION"),
			SigningKeyFile:       os.Getenv("AUTH_SIGNING_KEY_FILE"),
		},
		Replay: ReplayConfig{
			Backend: strings.ToLower(valueOrDefault("REPLAY_BACKEND", ReplayMemory)),
		},
		Redis: RedisConfig{
			URL: valueOrDefault("REDIS_URL", defaultRedisURL),
		},
		Verifier: VerifierConfig{
			Mode: strings.ToLower(valueOrDefault("VERIFIER_MODE", VerifierLocal)),
			URL:  os.Getenv("VERIFIER_URL"),
		},
		QR: QRConfig{
			RemoteURL: valueOrDefault("QR_REMOTE_URL", defaultQRRemoteURL),
		},
		Logging: LoggingConfig{
			Level:  valueOrDefault("LOG_LEVEL", defaultLoggingLevel),
			Format: valueOrDefault("LOG_FORMAT", defaultLoggingFormat),
		},
	}

	var err error
	if cfg.HTTP.Port, err = parsePort("SERVER_PORT", defaultPort); err != nil {
		return Config{}, err
	}
	if cfg.HTTP.ShutdownTimeout, err = parseDuration("SERVER_SHUTDOWN_TIMEOUT", defaultShutdownTimeout); err != nil {
		return Config{}, err
	}
	if cfg.Auth.ChallengeTTL, err = parseDuration("AUTH_CHALLENGE_TTL", 0); err != nil {
		return Config{}, err
	}
	if cfg.Auth.AccessTTL, err = parseDuration("AUTH_ACCESS_TTL", defaultAccessTTL); err != nil {
		return Config{}, err
	}
	if cfg.Replay.TTL, err = parseDuration("REPLAY_TTL", defaultReplayTTL); err != nil {
		return Config{}, err
	}
	if cfg.Verifier.Timeout, err = parseDuration("VERIFIER_TIMEOUT", defaultVerifierTimeout); err != nil {
		return Config{}, err
	}
	if cfg.QR.Timeout, err = parseDuration("QR_TIMEOUT", defaultQRTimeout); err != nil {
		return Config{}, err
	}
	if cfg.Events.Enabled, err = parseBool("EVENTS_ENABLED", false); err != nil {
		return Config{}, err
	}
	if cfg.QR.Enabled, err = parseBool("QR_ENABLED", true); err != nil {
		return Config{}, err
	}
	if cfg.Logging.IncludeCaller, err = parseBool("LOG_INCLUDE_CALLER", false); err != nil {
		return Config{}, err
	}
	if cfg.QR.Size, err = parseInt("QR_SIZE", defaultQRSize); err != nil {
		return Config{}, err
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) validate() error {
	if _, err := c.Auth.Protocol(); err != nil {
		return fmt.Errorf("invalid AUTH_PROTOCOL settings: %w", err)
	}
	if c.Auth.AccessTTL <= 0 {
		return fmt.Errorf("AUTH_ACCESS_TTL must be positive")
	}

	switch c.Replay.Backend {
	case ReplayMemory, ReplayRedis:
	default:
		return fmt.Errorf("invalid REPLAY_BACKEND %q", c.Replay.Backend)
	}
	if c.Replay.TTL <= 0 {
		return fmt.Errorf("REPLAY_TTL must be positive")
	}

	switch c.Verifier.Mode {
	case VerifierLocal:
	case VerifierRemote:
		if c.Verifier.URL == "" {
			return fmt.Errorf("VERIFIER_URL is required when VERIFIER_MODE is remote")
		}
	default:
		return fmt.Errorf("invalid VERIFIER_MODE %q", c.Verifier.Mode)
	}

	if c.QR.Size <= 0 {
		return fmt.Errorf("QR_SIZE must be positive")
	}
	return nil
}

// NeedsRedis reports whether any configured component talks to Redis.
func (c Config) NeedsRedis() bool {
	return c.Replay.Backend == ReplayRedis || c.Events.Enabled
}

func valueOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseBool(key string, fallback bool) (bool, error) {
	if v := os.Getenv(key); v != "" {
		val, err := strconv.ParseBool(v)
		if err != nil {
			return false, fmt.Errorf("invalid %s value %q: %w", key, v, err)
		}
		return val, nil
	}
	return fallback, nil
}

func parseInt(key string, fallback int) (int, error) {
	if v := os.Getenv(key); v != "" {
		val, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("invalid %s value %q: %w", key, v, err)
		}
		return val, nil
	}
	return fallback, nil
}

func parseDuration(key string, fallback time.Duration) (time.Duration, error) {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %w", key, err)
		}
		return d, nil
	}
	return fallback, nil
}

func parsePort(key string, fallback int) (int, error) {
	if v := os.Getenv(key); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("invalid %s value %q: %w", key, v, err)
		}
		if port <= 0 || port > 65535 {
			return 0, fmt.Errorf("port %d is out of range", port)
		}
		return port, nil
	}
	return fallback, nil
}
