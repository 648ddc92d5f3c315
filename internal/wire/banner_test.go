package wire

import (
	"strings"
	"testing"
)

func TestParseBannerValid(t *testing.T) {
	buf := []byte("SSH-2.0-OpenSSH_9.0\r\n")
	res := ParseBanner(buf)
	if res.Status != Parsed {
		t.Fatalf("status = %v, want parsed (%s)", res.Status, res.Reason)
	}
	if res.Line != "SSH-2.0-OpenSSH_9.0" {
		t.Errorf("line = %q", res.Line)
	}
	if res.Consumed != len(buf) {
		t.Errorf("consumed = %d, want %d", res.Consumed, len(buf))
	}
}

func TestParseBannerTrailingBytesNotConsumed(t *testing.T) {
	banner := "SSH-2.0-srv\r\n"
	buf := []byte(banner + "\x00\x00\x00\x0c leftover")
	res := ParseBanner(buf)
	if res.Status != Parsed {
		t.Fatalf("status = %v", res.Status)
	}
	if res.Consumed != len(banner) {
		t.Errorf("consumed = %d, want %d", res.Consumed, len(banner))
	}
}

// TestParseBannerFragmented feeds the banner one byte at a time and
// checks the parser reaches the same result as seeing it whole.
func TestParseBannerFragmented(t *testing.T) {
	full := []byte("SSH-2.0-OpenSSH_9.0 Debian\r\n")
	whole := ParseBanner(full)
	if whole.Status != Parsed {
		t.Fatalf("whole parse failed: %v", whole.Reason)
	}

	for i := 0; i < len(full); i++ {
		res := ParseBanner(full[:i])
		if res.Status != NeedMore {
			t.Fatalf("prefix of %d bytes: status = %v, want need-more", i, res.Status)
		}
	}
	res := ParseBanner(full)
	if res != whole {
		t.Errorf("fragmented result %+v differs from whole %+v", res, whole)
	}
}

func TestParseBannerCRWithoutFollowingByte(t *testing.T) {
	res := ParseBanner([]byte("SSH-2.0-x\r"))
	if res.Status != NeedMore {
		t.Errorf("status = %v, want need-more until the LF arrives", res.Status)
	}
}

func TestParseBannerViolations(t *testing.T) {
	tooLong := BannerPrefix + strings.Repeat("a", MaxBannerBytes) + "\r\n"
	atLimit := BannerPrefix + strings.Repeat("a", MaxBannerBytes-len(BannerPrefix)-2) + "\r\n"
	if len(atLimit) != MaxBannerBytes {
		t.Fatalf("test setup: atLimit is %d bytes", len(atLimit))
	}

	tests := []struct {
		name  string
		input string
		want  Status
	}{
		{"missing LF", "SSH-2.0-x\rjunk", Invalid},
		{"wrong protocol version", "SSH-1.99-old\r\n", Invalid},
		{"not ssh at all", "HTTP/1.1 400 Bad Request\r\n", Invalid},
		{"bare CRLF", "\r\n", Invalid},
		{"over length limit", tooLong, Invalid},
		{"exactly at length limit", atLimit, Parsed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ParseBanner([]byte(tt.input))
			if res.Status != tt.want {
				t.Errorf("status = %v, want %v (reason %q)", res.Status, tt.want, res.Reason)
			}
		})
	}
}
