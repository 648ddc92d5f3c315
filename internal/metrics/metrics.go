// Package metrics provides lightweight counters for tracking the
// statistics of a kexhold run.
//
// All methods are safe for concurrent use.  A nil *Collector is a
// valid no-op receiver, so callers never need to nil-check.
package metrics

import (
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

// Collector tracks runtime metrics for a single run.
// A nil Collector is safe to use - all methods become no-ops.
type Collector struct {
	opensTotal     atomic.Int64
	active         atomic.Int64
	dialFailures   atomic.Int64
	bytesIn        atomic.Int64
	bytesOut       atomic.Int64
	banners        atomic.Int64
	kexInits       atomic.Int64
	disconnects    atomic.Int64
	protocolErrors atomic.Int64
	ioErrors       atomic.Int64

	mu        sync.RWMutex
	startTime time.Time
}

// New creates a metrics collector with the start time set to now.
func New() *Collector {
	return &Collector{startTime: time.Now()}
}

// ── Connection lifecycle ─────────────────────────────────────────────

// ConnectionOpened records a successful transport open.
func (c *Collector) ConnectionOpened() {
	if c == nil {
		return
	}
	c.opensTotal.Add(1)
	c.active.Add(1)
}

// ConnectionClosed records a released slot.
func (c *Collector) ConnectionClosed() {
	if c == nil {
		return
	}
	c.active.Add(-1)
}

// DialFailed records a transport that could not be opened.
func (c *Collector) DialFailed() {
	if c == nil {
		return
	}
	c.dialFailures.Add(1)
}

// ActiveConnections returns the current number of held sessions.
func (c *Collector) ActiveConnections() int64 {
	if c == nil {
		return 0
	}
	return c.active.Load()
}

// TotalOpens returns the lifetime successful-open count.
func (c *Collector) TotalOpens() int64 {
	if c == nil {
		return 0
	}
	return c.opensTotal.Load()
}

// ── I/O ──────────────────────────────────────────────────────────────

// BytesReceived records n bytes read from the network.
func (c *Collector) BytesReceived(n int64) {
	if c == nil {
		return
	}
	c.bytesIn.Add(n)
}

// BytesSent records n bytes written to the network.
func (c *Collector) BytesSent(n int64) {
	if c == nil {
		return
	}
	c.bytesOut.Add(n)
}

// ── Protocol events ──────────────────────────────────────────────────

// BannerReceived records a valid server banner.
func (c *Collector) BannerReceived() {
	if c == nil {
		return
	}
	c.banners.Add(1)
}

// KexInitReceived records a key-exchange-init packet from the peer.
func (c *Collector) KexInitReceived() {
	if c == nil {
		return
	}
	c.kexInits.Add(1)
}

// KexInitsReceived returns the number of peer kexinit packets seen.
func (c *Collector) KexInitsReceived() int64 {
	if c == nil {
		return 0
	}
	return c.kexInits.Load()
}

// Disconnect records a peer-initiated disconnect message.
func (c *Collector) Disconnect() {
	if c == nil {
		return
	}
	c.disconnects.Add(1)
}

// ProtocolError records a per-connection protocol violation.
func (c *Collector) ProtocolError() {
	if c == nil {
		return
	}
	c.protocolErrors.Add(1)
}

// IOError records a per-connection read or write failure.
func (c *Collector) IOError() {
	if c == nil {
		return
	}
	c.ioErrors.Add(1)
}

// ── Reporting ────────────────────────────────────────────────────────

// Snapshot is a point-in-time copy of all counters, JSON-encodable.
type Snapshot struct {
	OpensTotal     int64   `json:"opens_total"`
	Active         int64   `json:"active"`
	DialFailures   int64   `json:"dial_failures"`
	BytesIn        int64   `json:"bytes_in"`
	BytesOut       int64   `json:"bytes_out"`
	Banners        int64   `json:"banners"`
	KexInits       int64   `json:"kexinits"`
	Disconnects    int64   `json:"disconnects"`
	ProtocolErrors int64   `json:"protocol_errors"`
	IOErrors       int64   `json:"io_errors"`
	UptimeSeconds  float64 `json:"uptime_seconds"`
}

// Snapshot returns a copy of the current counter values.
func (c *Collector) Snapshot() Snapshot {
	if c == nil {
		return Snapshot{}
	}
	c.mu.RLock()
	start := c.startTime
	c.mu.RUnlock()

	return Snapshot{
		OpensTotal:     c.opensTotal.Load(),
		Active:         c.active.Load(),
		DialFailures:   c.dialFailures.Load(),
		BytesIn:        c.bytesIn.Load(),
		BytesOut:       c.bytesOut.Load(),
		Banners:        c.banners.Load(),
		KexInits:       c.kexInits.Load(),
		Disconnects:    c.disconnects.Load(),
		ProtocolErrors: c.protocolErrors.Load(),
		IOErrors:       c.ioErrors.Load(),
		UptimeSeconds:  time.Since(start).Seconds(),
	}
}

// JSON returns the snapshot as a JSON object.
func (c *Collector) JSON() ([]byte, error) {
	return json.Marshal(c.Snapshot())
}

// Summary returns a one-line human-readable digest for end-of-run logs.
func (c *Collector) Summary() string {
	s := c.Snapshot()
	return fmt.Sprintf(
		"opened %d (failed dials %d), banners %d, kexinits %d, disconnects %d, protocol errors %d, in %dB out %dB",
		s.OpensTotal, s.DialFailures, s.Banners, s.KexInits,
		s.Disconnects, s.ProtocolErrors, s.BytesIn, s.BytesOut)
}
