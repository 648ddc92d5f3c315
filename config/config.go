// Package config defines the runtime configuration for kexhold and
// provides helpers for parsing the target argument.
package config

import (
	"fmt"
	"net/netip"
	"strings"
)

// Config holds every tuneable for a single kexhold run.
type Config struct {
	// ── Target ───────────────────────────────────────────────────────
	Host    string // hostname or IP literal
	Service string // numeric port or service name ("ssh")
	NoDNS   bool   // numeric-only, no DNS resolution

	// ── Pool ─────────────────────────────────────────────────────────
	MaxConcur  int // maximum simultaneous connections
	BufferSize int // per-connection receive buffer capacity

	// ── Output ───────────────────────────────────────────────────────
	Verbose int
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		Service:    DefaultService,
		MaxConcur:  DefaultMaxConcur,
		BufferSize: DefaultBufferSize,
	}
}

// ── Target parser ────────────────────────────────────────────────────

// ParseTarget splits a "host[:port]" argument into host and service.
// Bracketed IPv6 literals ("[::1]:22") and bare IPv6 literals ("::1")
// are both accepted; a bare literal keeps the default service.
func ParseTarget(arg string) (host, service string, err error) {
	if arg == "" {
		return "", "", fmt.Errorf("empty target")
	}

	if strings.HasPrefix(arg, "[") {
		end := strings.Index(arg, "]")
		if end < 0 {
			return "", "", fmt.Errorf("unterminated bracket in target %q", arg)
		}
		host = arg[1:end]
		rest := arg[end+1:]
		switch {
		case rest == "":
			service = DefaultService
		case strings.HasPrefix(rest, ":") && len(rest) > 1:
			service = rest[1:]
		default:
			return "", "", fmt.Errorf("invalid target %q - expected [host]:port", arg)
		}
		if host == "" {
			return "", "", fmt.Errorf("empty host in target %q", arg)
		}
		return host, service, nil
	}

	switch strings.Count(arg, ":") {
	case 0:
		return arg, DefaultService, nil
	case 1:
		i := strings.IndexByte(arg, ':')
		host, service = arg[:i], arg[i+1:]
		if host == "" || service == "" {
			return "", "", fmt.Errorf("invalid target %q - expected host[:port]", arg)
		}
		return host, service, nil
	default:
		// Multiple colons: an unbracketed IPv6 literal.
		if _, perr := netip.ParseAddr(arg); perr != nil {
			return "", "", fmt.Errorf("invalid target %q: %v", arg, perr)
		}
		return arg, DefaultService, nil
	}
}

// ── Validation ───────────────────────────────────────────────────────

// Validate checks that the configuration is internally consistent.
func (c *Config) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("target host is required (use --help for usage)")
	}
	if c.Service == "" {
		return fmt.Errorf("target service is required")
	}
	if c.NoDNS {
		if _, err := netip.ParseAddr(c.Host); err != nil {
			return fmt.Errorf("cannot parse %q as an IP address (DNS disabled with -n)", c.Host)
		}
	}
	if c.MaxConcur < 1 || c.MaxConcur > MaxConcurLimit {
		return fmt.Errorf("max-concur %d out of range 1-%d", c.MaxConcur, MaxConcurLimit)
	}
	if c.BufferSize < MinBufferSize {
		return fmt.Errorf("buffer size %d below minimum %d", c.BufferSize, MinBufferSize)
	}
	return nil
}
