package config

// ── Default values ───────────────────────────────────────────────────
//
// All tuneable defaults live here so they are easy to audit and reuse
// across CLI flags and environment variable loading.

const (
	// DefaultService is the service probed when the target carries no
	// explicit port.
	DefaultService = "ssh"

	// DefaultMaxConcur is the pool capacity: the maximum number of
	// simultaneous pre-auth sessions held against the target.
	DefaultMaxConcur = 128

	// MaxConcurLimit caps --max-concur; poll(2) degrades well before
	// this, and each slot costs a file descriptor.
	MaxConcurLimit = 4096

	// DefaultBufferSize is the per-connection receive buffer capacity.
	// A peer that cannot fit a complete frame in this many bytes is
	// closed as misbehaving.
	DefaultBufferSize = 2048

	// MinBufferSize must cover the 4-byte length field, the packet
	// header, and the longest banner the protocol allows (255 bytes).
	MinBufferSize = 512
)
