package terminal

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/ssh"
)

// fakeSession feeds scripted input and records output. Methods not used by
// SessionTty panic through the nil embedded interface.
type fakeSession struct {
	ssh.Session
	input chan []byte
	out   bytes.Buffer
}

func newFakeSession() *fakeSession {
	return &fakeSession{input: make(chan []byte, 4)}
}

func (f *fakeSession) Read(p []byte) (int, error) {
	b, ok := <-f.input
	if !ok {
		return 0, io.EOF
	}
	return copy(p, b), nil
}

func (f *fakeSession) Write(p []byte) (int, error) {
	return f.out.Write(p)
}

func readWithTimeout(t *testing.T, tty *SessionTty, p []byte) (int, error) {
	t.Helper()
	type result struct {
		n   int
		err error
	}
	done := make(chan result, 1)
	go func() {
		n, err := tty.Read(p)
		done <- result{n, err}
	}()
	select {
	case r := <-done:
		return r.n, r.err
	case <-time.After(2 * time.Second):
		t.Fatal("Read did not return")
		return 0, nil
	}
}

func TestSessionTtyRead(t *testing.T) {
	sess := newFakeSession()
	tty := NewSessionTty(sess, ssh.Window{Width: 80, Height: 24}, nil)
	defer tty.Close()
	if err := tty.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	sess.input <- []byte("hello")

	buf := make([]byte, 3)
	n, err := readWithTimeout(t, tty, buf)
	if err != nil || string(buf[:n]) != "hel" {
		t.Fatalf("first Read = %q, %v; expected \"hel\"", buf[:n], err)
	}
	n, err = readWithTimeout(t, tty, buf)
	if err != nil || string(buf[:n]) != "lo" {
		t.Fatalf("second Read = %q, %v; expected \"lo\"", buf[:n], err)
	}
}

func TestSessionTtyDrainUnblocksRead(t *testing.T) {
	sess := newFakeSession()
	tty := NewSessionTty(sess, ssh.Window{Width: 80, Height: 24}, nil)
	defer tty.Close()
	if err := tty.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	result := make(chan error, 1)
	go func() {
		_, err := tty.Read(make([]byte, 16))
		result <- err
	}()

	if err := tty.Drain(); err != nil {
		t.Fatalf("Drain failed: %v", err)
	}
	select {
	case err := <-result:
		if !errors.Is(err, errDrained) {
			t.Errorf("Read after Drain returned %v, expected errDrained", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Drain did not unblock Read")
	}

	// Draining twice is harmless.
	if err := tty.Drain(); err != nil {
		t.Errorf("second Drain failed: %v", err)
	}
}

func TestSessionTtyReadError(t *testing.T) {
	sess := newFakeSession()
	tty := NewSessionTty(sess, ssh.Window{}, nil)
	defer tty.Close()
	if err := tty.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	if tty.HungUp() {
		t.Fatal("HungUp() = true before the client closed its input")
	}

	close(sess.input)
	for i := 0; i < 2; i++ {
		if _, err := readWithTimeout(t, tty, make([]byte, 8)); !errors.Is(err, io.EOF) {
			t.Errorf("Read %d returned %v, expected io.EOF", i, err)
		}
	}
	if !tty.HungUp() {
		t.Error("HungUp() = false after the client closed its input")
	}
}

func TestSessionTtyWindow(t *testing.T) {
	windows := make(chan ssh.Window)
	tty := NewSessionTty(newFakeSession(), ssh.Window{Width: 80, Height: 24}, windows)
	defer tty.Close()

	ws, err := tty.WindowSize()
	if err != nil || ws.Width != 80 || ws.Height != 24 {
		t.Fatalf("WindowSize() = %+v, %v; expected 80x24", ws, err)
	}

	resized := make(chan struct{}, 1)
	tty.NotifyResize(func() { resized <- struct{}{} })
	windows <- ssh.Window{Width: 100, Height: 30}

	select {
	case <-resized:
	case <-time.After(2 * time.Second):
		t.Fatal("resize callback was not called")
	}

	ws, _ = tty.WindowSize()
	if ws.Width != 100 || ws.Height != 30 {
		t.Errorf("WindowSize() after resize = %+v, expected 100x30", ws)
	}
	close(windows)
}

func TestSessionTtyWrite(t *testing.T) {
	sess := newFakeSession()
	tty := NewSessionTty(sess, ssh.Window{}, nil)

	if _, err := tty.Write([]byte("\x1b[H")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if sess.out.String() != "\x1b[H" {
		t.Errorf("session received %q", sess.out.String())
	}
}

func TestLookupTerminfoFallback(t *testing.T) {
	ti, err := lookupTerminfo("no-such-terminal")
	if err != nil {
		t.Fatalf("lookupTerminfo failed: %v", err)
	}
	if ti == nil {
		t.Fatal("expected a fallback terminfo")
	}
}
