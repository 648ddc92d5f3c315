package probe

import (
	"kexhold/internal/metrics"
	"kexhold/internal/transport"
	"kexhold/internal/wire"
	"kexhold/util"
)

// Stage is a connection's position in the pre-auth handshake.
type Stage int

const (
	// StageClosed marks a free slot; it owns no transport.
	StageClosed Stage = iota

	// StageConnected means the transport is open and we are waiting for
	// the server's banner.  The server speaks first.
	StageConnected

	// StageBanner means the server's banner arrived and ours is owed.
	StageBanner

	// StageKexInit means our banner went out; we send the fixed kexinit
	// whenever the socket is writable and parse whatever comes back.
	StageKexInit
)

func (s Stage) String() string {
	switch s {
	case StageClosed:
		return "closed"
	case StageConnected:
		return "connected"
	case StageBanner:
		return "banner"
	case StageKexInit:
		return "kexinit"
	default:
		return "unknown"
	}
}

// Conn is one pool slot: a transport, a handshake stage, and a receive
// buffer.  It is driven entirely by readable/writable notifications
// from the scheduler; it never blocks and never touches other slots.
type Conn struct {
	slot    int
	tr      transport.Transport
	stage   Stage
	buf     *recvBuffer
	log     *util.Logger
	metrics *metrics.Collector
}

func newConn(slot, bufCap int, log *util.Logger, m *metrics.Collector) *Conn {
	return &Conn{
		slot:    slot,
		buf:     newRecvBuffer(bufCap),
		log:     log,
		metrics: m,
	}
}

// Stage returns the current handshake stage.
func (c *Conn) Stage() Stage { return c.stage }

// open takes ownership of a freshly dialed transport.
func (c *Conn) open(tr transport.Transport) {
	c.tr = tr
	c.stage = StageConnected
	c.metrics.ConnectionOpened()
	c.log.Info("[slot %02d] connected", c.slot)
}

// release closes the transport (if any), zeroes the buffer, and frees
// the slot.  Idempotent.
func (c *Conn) release() {
	if c.stage == StageClosed {
		return
	}
	c.log.Verbose("[slot %02d] closing", c.slot)
	if c.tr != nil {
		c.tr.Close()
		c.tr = nil
	}
	c.buf.reset()
	c.stage = StageClosed
	c.metrics.ConnectionClosed()
}

// handleReadable performs one receive and one codec pass.  Partial
// reads are expected; the buffer persists across passes.
func (c *Conn) handleReadable() {
	if c.buf.full() {
		c.log.Warn("[slot %02d] buffer full, peer never completed a frame", c.slot)
		c.metrics.ProtocolError()
		c.release()
		return
	}

	n, err := c.tr.Read(c.buf.free())
	if err != nil {
		c.log.Warn("[slot %02d] read: %v", c.slot, err)
		c.metrics.IOError()
		c.release()
		return
	}
	if n == 0 {
		// Zero bytes on a readable socket is a half-close.  The server
		// must send its banner before we say anything, so this cannot
		// be a legitimate quiet peer.
		c.log.Verbose("[slot %02d] peer closed", c.slot)
		c.release()
		return
	}
	c.buf.grow(n)
	c.metrics.BytesReceived(int64(n))

	switch c.stage {
	case StageConnected:
		c.scanBanner()
	case StageKexInit:
		c.scanPackets()
	}
}

// scanBanner tries to recognise the server banner at the buffer front.
func (c *Conn) scanBanner() {
	res := wire.ParseBanner(c.buf.bytes())
	switch res.Status {
	case wire.NeedMore:
		return
	case wire.Invalid:
		c.log.Warn("[slot %02d] invalid banner: %s", c.slot, res.Reason)
		c.metrics.ProtocolError()
		c.release()
	case wire.Parsed:
		c.log.Info("[slot %02d] got banner: %s", c.slot, res.Line)
		c.metrics.BannerReceived()
		c.buf.discard(res.Consumed)
		c.stage = StageBanner
	}
}

// scanPackets consumes complete binary packets until the buffer holds
// only a partial frame.
func (c *Conn) scanPackets() {
	for {
		res := wire.ParsePacket(c.buf.bytes(), c.buf.cap())
		switch res.Status {
		case wire.NeedMore:
			return
		case wire.Invalid:
			c.log.Warn("[slot %02d] %s", c.slot, res.Reason)
			c.metrics.ProtocolError()
			c.release()
			return
		case wire.Parsed:
			c.log.Verbose("[slot %02d] received type %d packet (%d bytes)",
				c.slot, res.Type, res.Length)
			switch res.Type {
			case wire.MsgDisconnect:
				c.log.Info("[slot %02d] received disconnect", c.slot)
				c.metrics.Disconnect()
				c.release()
				return
			case wire.MsgKexInit:
				c.log.Info("[slot %02d] received kexinit", c.slot)
				c.metrics.KexInitReceived()
			}
			c.buf.discard(res.Consumed)
		}
	}
}

// handleWritable performs one send attempt.  In StageKexInit the fixed
// kexinit goes out again on every writable notification; the message is
// idempotent and repeating it is what keeps the peer's handshake state
// busy.
func (c *Conn) handleWritable() {
	switch c.stage {
	case StageBanner:
		c.log.Info("[slot %02d] sending banner", c.slot)
		if !c.send([]byte(wire.ClientBanner)) {
			return
		}
		c.stage = StageKexInit
	case StageKexInit:
		c.log.Verbose("[slot %02d] sending kexinit", c.slot)
		c.send(wire.KexInit())
	}
}

func (c *Conn) send(msg []byte) bool {
	n, err := c.tr.Write(msg)
	c.metrics.BytesSent(int64(n))
	if err != nil {
		c.log.Warn("[slot %02d] write: %v", c.slot, err)
		c.metrics.IOError()
		c.release()
		return false
	}
	return true
}
