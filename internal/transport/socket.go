package transport

import (
	"net/netip"

	"golang.org/x/sys/unix"

	kerr "kexhold/internal/errors"
)

// SocketDialer opens plain blocking TCP sockets.  The scheduler's poll
// loop establishes readiness before any read, so the sockets themselves
// stay in blocking mode.
type SocketDialer struct{}

// Dial connects to ep over TCP.
func (SocketDialer) Dial(ep netip.AddrPort) (Transport, error) {
	domain, sa := sockaddr(ep)

	fd, err := unix.Socket(domain, unix.SOCK_STREAM, 0)
	if err != nil {
		return nil, kerr.WrapDial(ep.String(), err)
	}
	unix.CloseOnExec(fd)

	if err := unix.Connect(fd, sa); err != nil {
		unix.Close(fd)
		return nil, kerr.WrapDial(ep.String(), err)
	}
	return &socket{fd: fd, addr: ep.String()}, nil
}

func sockaddr(ep netip.AddrPort) (int, unix.Sockaddr) {
	addr := ep.Addr().Unmap()
	if addr.Is4() {
		return unix.AF_INET, &unix.SockaddrInet4{
			Port: int(ep.Port()),
			Addr: addr.As4(),
		}
	}
	return unix.AF_INET6, &unix.SockaddrInet6{
		Port: int(ep.Port()),
		Addr: addr.As16(),
	}
}

// socket is a Transport over a raw file descriptor.
type socket struct {
	fd   int
	addr string
}

func (s *socket) Fd() int { return s.fd }

// Read fills p with whatever is available.  A zero return with nil
// error is a peer half-close; interpreting that is the caller's job.
func (s *socket) Read(p []byte) (int, error) {
	for {
		n, err := unix.Read(s.fd, p)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return 0, err
		}
		return n, nil
	}
}

// Write sends all of p, looping on short writes the way the rest of
// the handshake expects whole messages on the wire.
func (s *socket) Write(p []byte) (int, error) {
	sent := 0
	for sent < len(p) {
		n, err := unix.Write(s.fd, p[sent:])
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return sent, err
		}
		sent += n
	}
	return sent, nil
}

func (s *socket) Close() error { return unix.Close(s.fd) }

// String returns the remote endpoint, for diagnostics.
func (s *socket) String() string { return s.addr }
