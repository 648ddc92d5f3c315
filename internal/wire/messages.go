package wire

import (
	"bytes"
	"encoding/binary"
)

// Transport-layer message types (RFC 4253 section 12).
const (
	MsgDisconnect    = 1
	MsgIgnore        = 2
	MsgUnimplemented = 3
	MsgDebug         = 4
	MsgKexInit       = 20
	MsgNewKeys       = 21
)

// BannerPrefix identifies protocol version 2.0; every banner on either
// side must start with it.
const BannerPrefix = "SSH-2.0-"

// MaxBannerBytes bounds a banner line including its CRLF terminator.
const MaxBannerBytes = 255

// ClientBanner is the version string this tool announces, sent in full
// exactly once per connection.
const ClientBanner = "SSH-2.0-kexhold\r\n"

// Algorithm name-lists advertised in the fixed kexinit.  Nothing is
// ever negotiated; the server merely has to account for them.
const (
	nameListKex        = "diffie-hellman-group1-sha1,diffie-hellman-group14-sha1"
	nameListHostKey    = "ssh-dss,ssh-rsa"
	nameListCipher     = "3des-cbc,aes128-cbc"
	nameListMAC        = "hmac-sha1"
	nameListCompress   = "none"
	nameListLanguages  = ""
	kexInitCookie      = "kexhold cookies!" // exactly 16 bytes
	kexInitPaddingText = "padding!"
)

// kexInitPacket is built once at start-up and treated as an immutable
// constant from then on.
var kexInitPacket = buildKexInit()

// KexInit returns the fixed key-exchange-init frame, ready to write to
// the wire.  Callers must not modify the returned slice.
func KexInit() []byte { return kexInitPacket }

func buildKexInit() []byte {
	var payload bytes.Buffer

	payload.WriteByte(byte(len(kexInitPaddingText))) // padding length
	payload.WriteByte(MsgKexInit)
	payload.WriteString(kexInitCookie)

	for _, list := range []string{
		nameListKex,       // key exchange algorithms
		nameListHostKey,   // server host key algorithms
		nameListCipher,    // encryption, client to server
		nameListCipher,    // encryption, server to client
		nameListMAC,       // MAC, client to server
		nameListMAC,       // MAC, server to client
		nameListCompress,  // compression, client to server
		nameListCompress,  // compression, server to client
		nameListLanguages, // languages, client to server
		nameListLanguages, // languages, server to client
	} {
		var n [4]byte
		binary.BigEndian.PutUint32(n[:], uint32(len(list)))
		payload.Write(n[:])
		payload.WriteString(list)
	}

	payload.WriteByte(0)                    // first kex packet follows: no
	payload.Write([]byte{0, 0, 0, 0})       // reserved
	payload.WriteString(kexInitPaddingText) // padding

	frame := make([]byte, 4+payload.Len())
	binary.BigEndian.PutUint32(frame, uint32(payload.Len()))
	copy(frame[4:], payload.Bytes())
	return frame
}
