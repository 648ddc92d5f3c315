package probe

// recvBuffer is a fixed-capacity receive buffer.  Consumed bytes are
// discarded from the front; unconsumed bytes keep their relative order.
// It never grows past its capacity.
type recvBuffer struct {
	data []byte
	n    int
}

func newRecvBuffer(capacity int) *recvBuffer {
	return &recvBuffer{data: make([]byte, capacity)}
}

// bytes returns the buffered, not-yet-consumed content.
func (b *recvBuffer) bytes() []byte { return b.data[:b.n] }

// free returns the writable tail for the next receive.
func (b *recvBuffer) free() []byte { return b.data[b.n:] }

func (b *recvBuffer) len() int   { return b.n }
func (b *recvBuffer) cap() int   { return len(b.data) }
func (b *recvBuffer) full() bool { return b.n == len(b.data) }

// grow records n bytes received into free().
func (b *recvBuffer) grow(n int) { b.n += n }

// discard removes n bytes from the front.
func (b *recvBuffer) discard(n int) {
	copy(b.data, b.data[n:b.n])
	b.n -= n
}

// reset zeroes the buffer for slot reuse.
func (b *recvBuffer) reset() {
	for i := range b.data[:b.n] {
		b.data[i] = 0
	}
	b.n = 0
}
