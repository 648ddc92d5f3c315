package config

import (
	"testing"
)

// ── ParseTarget ──────────────────────────────────────────────────────

func TestParseTarget(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantHost    string
		wantService string
		wantErr     bool
	}{
		{"host only", "bastion.example.com", "bastion.example.com", "ssh", false},
		{"host and port", "bastion.example.com:2222", "bastion.example.com", "2222", false},
		{"host and service", "gateway:ssh", "gateway", "ssh", false},
		{"ipv4", "192.0.2.7", "192.0.2.7", "ssh", false},
		{"ipv4 and port", "192.0.2.7:22", "192.0.2.7", "22", false},
		{"bare ipv6", "2001:db8::1", "2001:db8::1", "ssh", false},
		{"bracketed ipv6", "[2001:db8::1]:2200", "2001:db8::1", "2200", false},
		{"bracketed ipv6 no port", "[::1]", "::1", "ssh", false},
		{"empty", "", "", "", true},
		{"trailing colon", "host:", "", "", true},
		{"leading colon", ":22", "", "", true},
		{"unterminated bracket", "[::1:22", "", "", true},
		{"garbage colons", "a:b:c", "", "", true},
		{"empty bracket", "[]:22", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			host, service, err := ParseTarget(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr = %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if host != tt.wantHost || service != tt.wantService {
				t.Errorf("got (%q, %q), want (%q, %q)",
					host, service, tt.wantHost, tt.wantService)
			}
		})
	}
}

// ── Validate ─────────────────────────────────────────────────────────

func TestValidate(t *testing.T) {
	valid := func() *Config {
		c := New()
		c.Host = "192.0.2.7"
		return c
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults with host", func(c *Config) {}, false},
		{"missing host", func(c *Config) { c.Host = "" }, true},
		{"missing service", func(c *Config) { c.Service = "" }, true},
		{"no-dns with ip", func(c *Config) { c.NoDNS = true }, false},
		{"no-dns with hostname", func(c *Config) { c.NoDNS = true; c.Host = "example.com" }, true},
		{"zero max-concur", func(c *Config) { c.MaxConcur = 0 }, true},
		{"excessive max-concur", func(c *Config) { c.MaxConcur = MaxConcurLimit + 1 }, true},
		{"tiny buffer", func(c *Config) { c.BufferSize = 16 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := c.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr = %v", err, tt.wantErr)
			}
		})
	}
}
