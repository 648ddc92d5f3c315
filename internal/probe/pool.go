package probe

import (
	"net/netip"

	kerr "kexhold/internal/errors"
	"kexhold/internal/metrics"
	"kexhold/internal/transport"
	"kexhold/util"
)

// Pool is the fixed-capacity table of connection slots.  There is no
// separate free list: a slot is free exactly when its stage is
// StageClosed.  Only the scheduler touches the pool, so it needs no
// locking.
type Pool struct {
	conns  []*Conn
	dialer transport.Dialer
	log    *util.Logger
}

// NewPool creates size slots, each with its own bufCap-byte receive
// buffer.
func NewPool(size, bufCap int, d transport.Dialer, log *util.Logger, m *metrics.Collector) *Pool {
	p := &Pool{
		conns:  make([]*Conn, size),
		dialer: d,
		log:    log,
	}
	for i := range p.conns {
		p.conns[i] = newConn(i, bufCap, log, m)
	}
	return p
}

// Size returns the slot count.
func (p *Pool) Size() int { return len(p.conns) }

// Active returns the number of non-closed slots.
func (p *Pool) Active() int {
	n := 0
	for _, c := range p.conns {
		if c.stage != StageClosed {
			n++
		}
	}
	return n
}

// openSlot dials the endpoint into slot i.  A failed dial leaves the
// slot free; the next pass will try again.
func (p *Pool) openSlot(i int, ep netip.AddrPort) bool {
	c := p.conns[i]
	tr, err := p.dialer.Dial(ep)
	if err != nil {
		c.metrics.DialFailed()
		if kerr.IsRetryable(err) {
			p.log.Debug("[slot %02d] %v", i, err)
		} else {
			p.log.Warn("[slot %02d] %v", i, err)
		}
		return false
	}
	c.open(tr)
	return true
}

// releaseAll closes every active slot; used when a run is abandoned.
func (p *Pool) releaseAll() {
	for _, c := range p.conns {
		c.release()
	}
}
