package wire

import (
	"encoding/binary"
	"fmt"
)

// PacketResult is the outcome of one ParsePacket call.
type PacketResult struct {
	Status   Status
	Type     byte   // message type; 0 when the packet is too short to carry one
	Length   int    // declared packet length (excludes the length field)
	Consumed int    // whole frame size: Length + 4, valid when Parsed
	Reason   string // violation description, valid when Invalid
}

// ParsePacket recognises one length-prefixed binary packet at the front
// of buf.  capacity is the caller's buffer capacity: a frame that could
// never fit is rejected immediately, regardless of how many bytes have
// actually arrived.
func ParsePacket(buf []byte, capacity int) PacketResult {
	if len(buf) < 4 {
		return PacketResult{Status: NeedMore}
	}
	length := binary.BigEndian.Uint32(buf)
	if int64(length)+4 > int64(capacity) {
		return PacketResult{
			Status: Invalid,
			Reason: fmt.Sprintf("oversize packet (%d bytes, buffer %d)", length, capacity),
		}
	}
	total := int(length) + 4
	if len(buf) < total {
		return PacketResult{Status: NeedMore, Length: int(length)}
	}

	// Message type sits after the length field and the padding-length
	// byte.  A degenerate packet may be too short to carry one.
	var typ byte
	if length >= 2 {
		typ = buf[5]
	}
	return PacketResult{
		Status:   Parsed,
		Type:     typ,
		Length:   int(length),
		Consumed: total,
	}
}
