package wire

import (
	"bytes"
	"fmt"
)

// BannerResult is the outcome of one ParseBanner call.
type BannerResult struct {
	Status   Status
	Line     string // banner line without CRLF, valid when Parsed
	Consumed int    // bytes to discard from the buffer front, when Parsed
	Reason   string // violation description, valid when Invalid
}

// ParseBanner recognises a CRLF-terminated version banner at the front
// of buf.  It needs more data until both the CR and the byte after it
// are buffered.  A complete line must carry the version-2.0 prefix and
// fit in MaxBannerBytes including the terminator.
func ParseBanner(buf []byte) BannerResult {
	cr := bytes.IndexByte(buf, '\r')
	if cr < 0 || cr == len(buf)-1 {
		return BannerResult{Status: NeedMore}
	}
	if buf[cr+1] != '\n' {
		return BannerResult{Status: Invalid, Reason: "no LF after CR"}
	}
	consumed := cr + 2
	if consumed > MaxBannerBytes {
		return BannerResult{
			Status: Invalid,
			Reason: fmt.Sprintf("banner line is %d bytes, limit %d", consumed, MaxBannerBytes),
		}
	}
	if !bytes.HasPrefix(buf, []byte(BannerPrefix)) {
		return BannerResult{Status: Invalid, Reason: "missing " + BannerPrefix + " prefix"}
	}
	return BannerResult{
		Status:   Parsed,
		Line:     string(buf[:cr]),
		Consumed: consumed,
	}
}
