package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	DataDir       string // directory for the local snapshot cache
	SeedFile      string // optional YAML seed overriding the built-in defaults
	DefaultAuthor string // author stamped on posts created without one
	DocumentKey   string // remote document key (empty = built-in default)

	SaveCooldown        time.Duration // reconciliation suppression window after a save
	ReconcileInterval   time.Duration // periodic reconciliation interval
	PublishScanInterval time.Duration // scheduled-post scan interval

	// Redis
	RedisAddr             string        // ex: "localhost:6379"
	RedisUser             string        // optional
	RedisPassword         string        // optional
	RedisPasswordRequired bool          // true => refuse to start without a password
	RedisDB               int           // Redis DB number
	RedisDT               time.Duration // dial timeout
	RedisRT               time.Duration // read timeout
	RedisWT               time.Duration // write timeout
	RedisMaxWait          time.Duration // max wait between connect retries
	RedisPingTimeout      time.Duration // timeout per ping attempt
	RedisPoolSize         int
	RedisConnectTimeout   time.Duration // total time to retry connecting
	RedisRetryInterval    time.Duration // initial wait between retries, grows exponentially
	RedisWarnThreshold    int           // warn for this many attempts, error after
}

func Load() *Config {
	cfg := &Config{
		// Server settings
		ListenPort:      getenv("SITESYNC_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("SITESYNC_SHUTDOWN_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("SITESYNC_LOG_LEVEL", "info"),
		PrettyLog: mustBool("SITESYNC_PRETTY_LOG", true),

		// Engine
		DataDir:             getenv("SITESYNC_DATA_DIR", "/var/lib/sitesync"),
		SeedFile:            getenv("SITESYNC_SEED_FILE", ""), // optional, empty = built-in defaults
		DefaultAuthor:       getenv("SITESYNC_DEFAULT_AUTHOR", "Michael B."),
		DocumentKey:         getenv("SITESYNC_DOCUMENT_KEY", ""),
		SaveCooldown:        mustDuration("SITESYNC_SAVE_COOLDOWN", 10*time.Second),
		ReconcileInterval:   mustDuration("SITESYNC_RECONCILE_INTERVAL", 5*time.Minute),
		PublishScanInterval: mustDuration("SITESYNC_PUBLISH_SCAN_INTERVAL", time.Minute),

		// Redis settings
		RedisAddr:             requireEnv("SITESYNC_REDIS_ADDR"),
		RedisUser:             getenv("SITESYNC_REDIS_USERNAME", "default"),
		RedisPasswordRequired: mustBool("SITESYNC_REDIS_PASSWORD_REQUIRED", true),
		RedisPassword:         getenv("SITESYNC_REDIS_PASSWORD", ""),
		RedisDB:               getenvInt("SITESYNC_REDIS_DB", 0),
		RedisDT:               mustDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisRT:               mustDuration("REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWT:               mustDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisMaxWait:          mustDuration("REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:      mustDuration("REDIS_PING_TIMEOUT", 5*time.Second),
		RedisPoolSize:         getenvInt("REDIS_POOL_SIZE", 10),
		RedisConnectTimeout:   mustDuration("REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:    mustDuration("REDIS_RETRY_INTERVAL", 2*time.Second),
		RedisWarnThreshold:    getenvInt("REDIS_WARN_THRESHOLD", 3),
	}

	if cfg.RedisPasswordRequired && cfg.RedisPassword == "" {
		panic("❌ FATAL: SITESYNC_REDIS_PASSWORD is required when SITESYNC_REDIS_PASSWORD_REQUIRED=true")
	}

	// The cooldown is the only defense against re-reading our own
	// not-yet-propagated write; refuse obviously broken values.
	if cfg.SaveCooldown <= 0 {
		panic("❌ FATAL: SITESYNC_SAVE_COOLDOWN must be a positive duration")
	}

	// Log config only in debug mode with redacted sensitive fields
	if cfg.LogLevel == "debug" {
		cfgCopy := *cfg
		cfgCopy.RedisPassword = "***REDACTED***"
		if cfg.RedisUser != "" {
			cfgCopy.RedisUser = "***REDACTED***"
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
		panic(fmt.Sprintf("❌ FATAL: Required environment variable %s is not set", key))
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
