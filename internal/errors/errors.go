// Package errors provides domain-specific error types for kexhold.
//
// These types carry structured context (handshake stage, endpoint,
// retryability) so the scheduler can tell a per-slot failure worth
// retrying from one that should abandon the endpoint.
package errors

import (
	"errors"
	"fmt"
	"syscall"

	"golang.org/x/sys/unix"
)

// ── Sentinel errors ──────────────────────────────────────────────────

var (
	// ErrBufferFull means the peer filled the receive buffer without
	// ever completing a frame.
	ErrBufferFull = errors.New("receive buffer full before a complete frame")

	// ErrPeerClosed means the peer half-closed before speaking; an SSH
	// server must send its banner first, so this is a hard failure.
	ErrPeerClosed = errors.New("peer closed connection before completing handshake")
)

// ── Structured error types ───────────────────────────────────────────

// ProtocolError records a handshake violation by the peer.  It is
// always contained to the connection that produced it.
type ProtocolError struct {
	Stage  string // handshake stage name when the violation occurred
	Reason string // human-readable description
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("protocol violation in %s: %s", e.Stage, e.Reason)
}

// Protocol builds a ProtocolError.
func Protocol(stage, format string, args ...interface{}) *ProtocolError {
	return &ProtocolError{Stage: stage, Reason: fmt.Sprintf(format, args...)}
}

// DialError records a failed transport open.  Retryable failures leave
// the slot free for another attempt on the next scheduler pass.
type DialError struct {
	Addr      string // endpoint the dial targeted
	Err       error  // underlying error
	Retryable bool
}

func (e *DialError) Error() string {
	s := fmt.Sprintf("dial %s: %v", e.Addr, e.Err)
	if e.Retryable {
		s += " (retryable)"
	}
	return s
}

func (e *DialError) Unwrap() error { return e.Err }

// WrapDial creates a DialError, classifying retryability from the
// underlying errno.
func WrapDial(addr string, err error) *DialError {
	return &DialError{
		Addr:      addr,
		Err:       err,
		Retryable: classifyRetryable(err),
	}
}

// ── Classification helpers ───────────────────────────────────────────

// IsRetryable reports whether err describes a transient condition that
// the next pool top-up may succeed past.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	var de *DialError
	if errors.As(err, &de) {
		return de.Retryable
	}
	return classifyRetryable(err)
}

// classifyRetryable inspects the underlying errno.  Connection refusal,
// resets, timeouts, and local resource exhaustion all clear up on their
// own; address-family and permission problems do not.
func classifyRetryable(err error) bool {
	var errno syscall.Errno
	if !errors.As(err, &errno) {
		return false
	}
	switch errno {
	case unix.ECONNREFUSED, unix.ECONNRESET, unix.ETIMEDOUT,
		unix.EHOSTUNREACH, unix.ENETUNREACH, unix.EAGAIN,
		unix.EMFILE, unix.ENFILE, unix.ENOBUFS, unix.EADDRNOTAVAIL:
		return true
	}
	return false
}

// ── Re-exports for convenience ───────────────────────────────────────
//
// These allow callers to use kexhold/internal/errors as a drop-in
// replacement for the standard library in common operations.

// As is [errors.As].
func As(err error, target interface{}) bool { return errors.As(err, target) }

// Is is [errors.Is].
func Is(err, target error) bool { return errors.Is(err, target) }

// New is [errors.New].
func New(text string) error { return errors.New(text) }

// Unwrap is [errors.Unwrap].
func Unwrap(err error) error { return errors.Unwrap(err) }
