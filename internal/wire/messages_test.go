package wire

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestClientBanner(t *testing.T) {
	if !bytes.HasPrefix([]byte(ClientBanner), []byte(BannerPrefix)) {
		t.Errorf("client banner %q missing version prefix", ClientBanner)
	}
	if !bytes.HasSuffix([]byte(ClientBanner), []byte("\r\n")) {
		t.Errorf("client banner %q missing CRLF", ClientBanner)
	}
	if len(ClientBanner) > MaxBannerBytes {
		t.Errorf("client banner is %d bytes", len(ClientBanner))
	}
	// Our own banner must satisfy our own parser.
	if res := ParseBanner([]byte(ClientBanner)); res.Status != Parsed {
		t.Errorf("ParseBanner(ClientBanner) = %v (%s)", res.Status, res.Reason)
	}
}

func TestKexInitLayout(t *testing.T) {
	f := KexInit()

	declared := binary.BigEndian.Uint32(f)
	if int(declared)+4 != len(f) {
		t.Fatalf("declared length %d, frame is %d bytes", declared, len(f))
	}

	paddingLen := int(f[4])
	if f[5] != MsgKexInit {
		t.Errorf("type byte = %d, want %d", f[5], MsgKexInit)
	}

	cookie := f[6:22]
	if len(kexInitCookie) != 16 || !bytes.Equal(cookie, []byte(kexInitCookie)) {
		t.Errorf("cookie = %q", cookie)
	}

	// Walk the ten name-lists.
	wantLists := []string{
		nameListKex, nameListHostKey,
		nameListCipher, nameListCipher,
		nameListMAC, nameListMAC,
		nameListCompress, nameListCompress,
		nameListLanguages, nameListLanguages,
	}
	off := 22
	for i, want := range wantLists {
		n := int(binary.BigEndian.Uint32(f[off:]))
		off += 4
		if got := string(f[off : off+n]); got != want {
			t.Errorf("name-list %d = %q, want %q", i, got, want)
		}
		off += n
	}

	if f[off] != 0 {
		t.Errorf("guess flag = %d, want 0", f[off])
	}
	off++
	if r := binary.BigEndian.Uint32(f[off:]); r != 0 {
		t.Errorf("reserved = %d, want 0", r)
	}
	off += 4

	if got := len(f) - off; got != paddingLen {
		t.Errorf("trailing padding is %d bytes, padding-length byte says %d", got, paddingLen)
	}
}

func TestKexInitSelfParses(t *testing.T) {
	f := KexInit()
	res := ParsePacket(f, len(f))
	if res.Status != Parsed {
		t.Fatalf("status = %v (%s)", res.Status, res.Reason)
	}
	if res.Type != MsgKexInit {
		t.Errorf("type = %d, want %d", res.Type, MsgKexInit)
	}
	if res.Consumed != len(f) {
		t.Errorf("consumed = %d, want %d", res.Consumed, len(f))
	}
}
