package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/dmehra2102/retail-shop/pkg/logging"
)

type Mode string

const (
	// ModeCompat swallows rejected operations, matching the legacy demo.
	ModeCompat Mode = "compat"
	// ModeStrict surfaces rejections and enforces status transitions.
	ModeStrict Mode = "strict"
)

type Config struct {
	ShopName    string
	Mode        Mode
	LogLevel    slog.Level
	LogFormat   string
	TraceStdout bool
	OutboxFlush bool
}

// Load reads the environment. Invalid values fall back to defaults and are
// reported through warn.
func Load(warn func(msg string, args ...any)) Config {
	cfg := Config{
		ShopName:    env("SHOP_NAME", "Isroil Store"),
		Mode:        ModeCompat,
		LogLevel:    slog.LevelInfo,
		LogFormat:   "json",
		TraceStdout: false,
		OutboxFlush: true,
	}

	switch m := Mode(strings.ToLower(env("SHOP_MODE", string(ModeCompat)))); m {
	case ModeCompat, ModeStrict:
		cfg.Mode = m
	default:
		warn("invalid SHOP_MODE, using default", "value", m, "default", ModeCompat)
	}

	if lvl, ok := logging.ParseLevel(env("LOG_LEVEL", "info")); ok {
		cfg.LogLevel = lvl
	} else {
		warn("invalid LOG_LEVEL, using default", "value", os.Getenv("LOG_LEVEL"), "default", "info")
	}

	switch f := strings.ToLower(env("LOG_FORMAT", "json")); f {
	case "json", "text":
		cfg.LogFormat = f
	default:
		warn("invalid LOG_FORMAT, using default", "value", f, "default", "json")
	}

	cfg.TraceStdout = boolEnv("TRACE_STDOUT", cfg.TraceStdout, warn)
	cfg.OutboxFlush = boolEnv("OUTBOX_FLUSH", cfg.OutboxFlush, warn)
	return cfg
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func boolEnv(k string, def bool, warn func(msg string, args ...any)) bool {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		warn("invalid boolean, using default", "key", k, "value", v, "default", def)
		return def
	}
	return b
}
