// Package transport provides the byte-stream endpoints the scheduler
// drives.  The production implementation is a raw socket, because the
// event loop multiplexes on file descriptors; tests substitute
// in-memory fakes through the same interfaces.
package transport

import (
	"io"
	"net/netip"
)

// Transport is one open byte-stream endpoint, exclusively owned by a
// pool slot.  Reads and writes are only issued after the scheduler has
// observed readiness, so a Transport never needs its own buffering.
type Transport interface {
	io.ReadWriteCloser

	// Fd returns the file descriptor registered with the readiness
	// primitive.
	Fd() int
}

// Dialer opens outbound transports.
type Dialer interface {
	// Dial connects to the endpoint.  Failures are per-attempt and
	// non-fatal to the caller: the slot simply stays free.
	Dial(ep netip.AddrPort) (Transport, error)
}
