// Package wire implements the framing logic for the pre-auth phase of
// the SSH transport protocol (RFC 4253): the CRLF-terminated version
// banner and the length-prefixed binary packet that follows it.
//
// The parse functions are stateless and never consume input themselves.
// Each returns a tagged result telling the caller whether a complete
// frame was recognised and how many bytes to discard from the front of
// its buffer.  Invoking a parser repeatedly on a growing buffer yields
// the same result as one invocation on the full bytes, so callers may
// feed arbitrarily fragmented reads.
//
// Binary packet layout, from the start of the frame:
//
//	offset  size  field
//	0       4     packet length (big-endian, excludes this field)
//	4       1     padding length
//	5       1     message type
//	6       ...   message body
//	...     ...   padding
//
// Before keys are negotiated there is no MAC trailer.
package wire
