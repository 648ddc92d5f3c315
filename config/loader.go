package config

// loader.go - configuration loading from environment variables.
//
// Precedence order (highest wins):
//   1. CLI flags  (handled by cmd/root.go)
//   2. Environment variables  (this file)
//   3. Defaults   (defaults.go)

import (
	"os"
	"strconv"
	"strings"
)

// ── Environment variable mapping ─────────────────────────────────────
//
// Every supported env var uses the KEXHOLD_ prefix.  Boolean values
// accept "1", "true", "yes" (case-insensitive).

// LoadFromEnv overlays environment variables onto cfg.  Only non-empty
// env vars override the existing value.  This should be called BEFORE
// CLI flag parsing so that flags take precedence.
func LoadFromEnv(cfg *Config) {
	if v := os.Getenv("KEXHOLD_SERVICE"); v != "" {
		cfg.Service = v
	}
	if v := envInt("KEXHOLD_MAX_CONCUR"); v > 0 {
		cfg.MaxConcur = v
	}
	if v := envInt("KEXHOLD_BUFFER_SIZE"); v > 0 {
		cfg.BufferSize = v
	}
	if envBool("KEXHOLD_NO_DNS") {
		cfg.NoDNS = true
	}
	if v := envInt("KEXHOLD_VERBOSE"); v > 0 {
		cfg.Verbose = v
	}
}

// ── Helpers ──────────────────────────────────────────────────────────

func envInt(key string) int {
	v := os.Getenv(key)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}

func envBool(key string) bool {
	switch strings.ToLower(os.Getenv(key)) {
	case "1", "true", "yes":
		return true
	}
	return false
}
