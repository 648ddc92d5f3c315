package probe

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"net"
	"testing"
	"time"

	"golang.org/x/crypto/ssh"

	"kexhold/internal/metrics"
	"kexhold/internal/transport"
	"kexhold/util"
)

// TestProbeAgainstRealSSHServer holds a session against an actual SSH
// server from golang.org/x/crypto.  The server must get far enough to
// send its banner and kexinit; the probe must receive both and stay in
// the kexinit stage until the server side is torn down.
func TestProbeAgainstRealSSHServer(t *testing.T) {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	signer, err := ssh.NewSignerFromKey(priv)
	if err != nil {
		t.Fatal(err)
	}
	serverCfg := &ssh.ServerConfig{NoClientAuth: true}
	serverCfg.AddHostKey(signer)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	ep := listenerEndpoint(t, ln)

	rawCh := make(chan net.Conn, 1)
	go func() {
		c, err := ln.Accept()
		if err != nil {
			return
		}
		rawCh <- c
		// Drives the server's transport handshake: it writes its banner
		// and kexinit, then fails or stalls because we never complete a
		// key exchange.  Either way the raw conn stays open.
		ssh.NewServerConn(c, serverCfg) //nolint:errcheck
	}()

	m := metrics.New()
	log := util.NewLogger(0)
	pool := NewPool(1, 2048, transport.SocketDialer{}, log, m)

	type result struct {
		opened int
		err    error
	}
	ch := make(chan result, 1)
	go func() {
		opened, err := NewLoop(pool, log).Run(context.Background(), ep)
		ch <- result{opened, err}
	}()

	// Wait until the probe has swallowed the server's kexinit.
	deadline := time.Now().Add(8 * time.Second)
	for m.KexInitsReceived() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("probe never received the server kexinit")
		}
		time.Sleep(10 * time.Millisecond)
	}

	// Tear down: refuse further dials, then hang up on the held session.
	ln.Close()
	raw := <-rawCh
	raw.Close()

	select {
	case r := <-ch:
		if r.err != nil {
			t.Fatalf("Run: %v", r.err)
		}
		if r.opened < 1 {
			t.Errorf("opened = %d, want at least 1", r.opened)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("loop did not terminate after teardown")
	}

	s := m.Snapshot()
	if s.Banners < 1 {
		t.Errorf("banners = %d, want at least 1", s.Banners)
	}
	if s.ProtocolErrors != 0 {
		t.Errorf("protocol errors = %d, want 0 against a real server", s.ProtocolErrors)
	}
}
