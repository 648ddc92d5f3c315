package wire

// Status tags a parse result.
type Status int

const (
	// NeedMore means no complete frame is buffered yet.  Not an error:
	// the caller should wait for the next read event.
	NeedMore Status = iota

	// Parsed means a complete frame was recognised; the caller must
	// discard Consumed bytes from the front of its buffer.
	Parsed

	// Invalid means the peer violated the protocol; the connection
	// cannot recover and should be closed.
	Invalid
)

func (s Status) String() string {
	switch s {
	case NeedMore:
		return "need-more"
	case Parsed:
		return "parsed"
	case Invalid:
		return "invalid"
	default:
		return "unknown"
	}
}
