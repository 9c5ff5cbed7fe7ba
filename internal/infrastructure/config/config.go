package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Addr            string
	LogLevel        string
	CORSAllowOrigin string
	// Optional upstream used when a request carries an Authorization header
	// but no Server-Url header (single-VMS deployments).
	DefaultVMSURL string
	// Self-signed certs are the norm on on-prem VMS installs.
	InsecureTLS bool

	// Archive playback polling cadence. Wall-clock; playback speed only
	// affects how far the server advances per frame, not this interval.
	FramePollIntervalMs int

	// Player registry limits.
	MaxPlayers       int
	PlayerTTLMinutes int

	// Live view.
	STUNServer string

	// Upstream HTTP client timeout.
	UpstreamTimeoutMs int
}

func FromEnv() Config {
	cfg := Config{
		Addr:            getEnv("ADDR", ":9091"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		CORSAllowOrigin: getEnv("CORS_ALLOW_ORIGIN", "*"),
	}
	cfg.DefaultVMSURL = getEnv("DEFAULT_VMS_URL", "")
	if os.Getenv("INSECURE_TLS") == "1" || os.Getenv("INSECURE_TLS") == "true" {
		cfg.InsecureTLS = true
	}
	cfg.FramePollIntervalMs = getEnvInt("FRAME_POLL_INTERVAL_MS", 1000)
	cfg.MaxPlayers = getEnvInt("MAX_PLAYERS", 64)
	cfg.PlayerTTLMinutes = getEnvInt("PLAYER_TTL_MINUTES", 120)
	cfg.STUNServer = getEnv("STUN_SERVER", "stun:stun.l.google.com:19302")
	cfg.UpstreamTimeoutMs = getEnvInt("UPSTREAM_TIMEOUT_MS", 15000)
	return cfg
}

func (c Config) FramePollInterval() time.Duration {
	if c.FramePollIntervalMs <= 0 {
		return time.Second
	}
	return time.Duration(c.FramePollIntervalMs) * time.Millisecond
}

func (c Config) PlayerTTL() time.Duration {
	return time.Duration(c.PlayerTTLMinutes) * time.Minute
}

func (c Config) UpstreamTimeout() time.Duration {
	return time.Duration(c.UpstreamTimeoutMs) * time.Millisecond
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
