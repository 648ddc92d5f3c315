package probe

import (
	"context"
	"fmt"
	"net/netip"

	"golang.org/x/sys/unix"

	"kexhold/util"
)

// Loop is the scheduler: a single-threaded, poll(2)-driven event loop
// that tops up the pool and dispatches readiness notifications into the
// per-slot state machines.  It is the only component that ever blocks.
type Loop struct {
	pool *Pool
	log  *util.Logger
}

// NewLoop wraps a pool in a scheduler.
func NewLoop(pool *Pool, log *util.Logger) *Loop {
	return &Loop{pool: pool, log: log}
}

// Run drives the pool against one endpoint until no slot is active,
// and returns the number of transports successfully opened.  The loop
// ends naturally only when the target stops accepting connections; a
// target that keeps every session alive holds the loop open forever,
// which is the point of the tool.
//
// Cancellation is observed at pass boundaries: the signal that cancels
// ctx also interrupts the poll wait.
func (l *Loop) Run(ctx context.Context, ep netip.AddrPort) (int, error) {
	opened := 0
	fds := make([]unix.PollFd, l.pool.Size())

	for {
		if ctx.Err() != nil {
			l.pool.releaseAll()
			return opened, ctx.Err()
		}

		// Top up free slots and build the interest set in one sweep.
		// Slot order is array order; nothing fancier is needed.
		active := 0
		for i, c := range l.pool.conns {
			if c.stage == StageClosed {
				if l.pool.openSlot(i, ep) {
					opened++
				}
			}
			if c.stage == StageClosed {
				fds[i] = unix.PollFd{Fd: -1}
				continue
			}
			fds[i] = unix.PollFd{
				Fd:     int32(c.tr.Fd()),
				Events: unix.POLLIN | unix.POLLOUT | unix.POLLERR,
			}
			active++
		}
		if active == 0 {
			return opened, nil
		}

		l.log.Debug("polling %d/%d connections", active, opened)
		n, err := unix.Poll(fds, -1)
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			l.pool.releaseAll()
			return opened, fmt.Errorf("poll: %w", err)
		}
		if n <= 0 {
			continue
		}
		l.log.Debug("polled %d events", n)

		for i := range fds {
			c := l.pool.conns[i]
			if fds[i].Fd < 0 || c.stage == StageClosed {
				continue
			}
			re := fds[i].Revents
			if re&(unix.POLLERR|unix.POLLHUP|unix.POLLNVAL) != 0 {
				l.log.Info("[slot %02d] connection closed", i)
				c.release()
				continue
			}
			if re&unix.POLLIN != 0 {
				c.handleReadable()
			}
			if re&unix.POLLOUT != 0 && c.stage != StageClosed {
				c.handleWritable()
			}
		}
	}
}
