package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	// BackendMemory keeps the bookmark tree in process memory only.
	BackendMemory = "memory"
	// BackendRedis persists the bookmark tree in Redis.
	BackendRedis = "redis"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	SeedFile       string        // path to a YAML bookmark tree imported at startup (optional)
	WatchSeedFile  bool          // re-import when the seed file changes on disk
	ReloadInterval time.Duration // interval to re-import the seed file (default: 24h)
	ReservedFolder string        // folder keyword excluded from folder listings

	StoreBackend string // "memory" | "redis"

	// Redis (required only when StoreBackend == "redis")
	RedisAddr             string
	RedisUser             string
	RedisPassword         string
	RedisPasswordRequired bool
	RedisDB               int
	RedisDT               time.Duration // dial timeout
	RedisRT               time.Duration // read timeout
	RedisWT               time.Duration // write timeout
	RedisMaxWait          time.Duration // max wait between retries
	RedisPingTimeout      time.Duration
	RedisPoolSize         int
	RedisConnectTimeout   time.Duration
	RedisRetryInterval    time.Duration

	RateLimitBurst  int // token bucket burst per client IP
	RateLimitPerMin int // token refill per client IP per minute

	AllowedHosts []string // optional, restrict access to specific Host headers
	AllowedCIDRS []string // optional, restrict admin endpoints to specific IPs
	TrustProxy   bool     // true => trust X-Forwarded-For headers
}

func Load() *Config {
	cfg := &Config{
		ListenPort:      getenv("CORRAL_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("CORRAL_SHUTDOWN_TIMEOUT", 5*time.Second),

		LogLevel:  getenv("CORRAL_LOG_LEVEL", "info"),
		PrettyLog: mustBool("CORRAL_PRETTY_LOG", true),

		SeedFile:       getenv("CORRAL_SEED_FILE", ""),
		WatchSeedFile:  mustBool("CORRAL_WATCH_SEED_FILE", true),
		ReloadInterval: mustDuration("CORRAL_RELOAD_INTERVAL", 24*time.Hour),
		ReservedFolder: getenv("CORRAL_RESERVED_FOLDER", "workspaces"),

		StoreBackend: getenv("CORRAL_STORE_BACKEND", BackendMemory),

		RateLimitBurst:  getenvInt("CORRAL_RATE_LIMIT_BURST", 20),
		RateLimitPerMin: getenvInt("CORRAL_RATE_LIMIT_PER_MIN", 60),

		AllowedHosts: splitAndTrim(getenv("CORRAL_ALLOWED_HOSTS", "")),
		AllowedCIDRS: splitAndTrim(getenv("CORRAL_ALLOWED_CIDRS", "")),
		TrustProxy:   mustBool("CORRAL_TRUST_PROXY", false),
	}

	switch cfg.StoreBackend {
	case BackendMemory:
		// Nothing extra to load.
	case BackendRedis:
		cfg.RedisAddr = requireEnv("CORRAL_REDIS_ADDR")
		cfg.RedisUser = getenv("CORRAL_REDIS_USERNAME", "default")
		cfg.RedisPasswordRequired = mustBool("CORRAL_REDIS_PASSWORD_REQUIRED", false)
		cfg.RedisPassword = getenv("CORRAL_REDIS_PASSWORD", "")
		cfg.RedisDB = getenvInt("CORRAL_REDIS_DB", 0)
		cfg.RedisDT = mustDuration("CORRAL_REDIS_DIAL_TIMEOUT", 5*time.Second)
		cfg.RedisRT = mustDuration("CORRAL_REDIS_READ_TIMEOUT", 3*time.Second)
		cfg.RedisWT = mustDuration("CORRAL_REDIS_WRITE_TIMEOUT", 3*time.Second)
		cfg.RedisMaxWait = mustDuration("CORRAL_REDIS_MAX_WAIT", 10*time.Second)
		cfg.RedisPingTimeout = mustDuration("CORRAL_REDIS_PING_TIMEOUT", 5*time.Second)
		cfg.RedisPoolSize = getenvInt("CORRAL_REDIS_POOL_SIZE", 10)
		cfg.RedisConnectTimeout = mustDuration("CORRAL_REDIS_CONNECT_TIMEOUT", 30*time.Second)
		cfg.RedisRetryInterval = mustDuration("CORRAL_REDIS_RETRY_INTERVAL", 2*time.Second)

		if cfg.RedisPasswordRequired && cfg.RedisPassword == "" {
			panic("FATAL: CORRAL_REDIS_PASSWORD is required when CORRAL_REDIS_PASSWORD_REQUIRED=true")
		}
	default:
		panic(fmt.Sprintf("FATAL: unknown CORRAL_STORE_BACKEND %q (want %q or %q)",
			cfg.StoreBackend, BackendMemory, BackendRedis))
	}

	// Log config only in debug mode with redacted sensitive fields
	if cfg.LogLevel == "debug" {
		cfgCopy := *cfg
		if cfg.RedisPassword != "" {
			cfgCopy.RedisPassword = "***REDACTED***"
		}
		log.Printf("[DEBUG] cfg: %+v\n", cfgCopy)
	}

	return cfg
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func requireEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		panic(fmt.Sprintf("FATAL: Required environment variable %s is not set", key))
	}
	return v
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		// Remove surrounding quotes if present
		trimmed = strings.Trim(trimmed, `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
