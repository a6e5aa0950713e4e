package terminal

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/ssh"
	"github.com/gdamore/tcell/v2"
	"github.com/gdamore/tcell/v2/terminfo"
)

// fallbackTerms are tried in order when the client's TERM is unknown.
var fallbackTerms = []string{"xterm-256color", "xterm"}

var errDrained = errors.New("terminal: session input drained")

// NewSession creates a terminal that draws on an SSH session's pty.
func NewSession(sess ssh.Session) (*Terminal, error) {
	pty, windows, ok := sess.Pty()
	if !ok {
		return nil, errors.New("terminal: session has no pty")
	}

	ti, err := lookupTerminfo(pty.Term)
	if err != nil {
		return nil, err
	}

	tty := NewSessionTty(sess, pty.Window, windows)
	screen, err := tcell.NewTerminfoScreenFromTtyTerminfo(tty, ti)
	if err != nil {
		return nil, fmt.Errorf("terminal: cannot create session screen: %w", err)
	}
	t := Wrap(screen)
	t.hungUp = tty.HungUp
	return t, nil
}

func lookupTerminfo(term string) (*terminfo.Terminfo, error) {
	for _, name := range append([]string{term}, fallbackTerms...) {
		if ti, err := terminfo.LookupTerminfo(name); err == nil {
			return ti, nil
		}
	}
	return nil, fmt.Errorf("terminal: no terminfo for %q", term)
}

// SessionTty is a tcell.Tty over an SSH session. The session's pty is
// already in raw mode on the client side, so Start and Stop only manage
// the input pump.
type SessionTty struct {
	sess ssh.Session

	mu       sync.Mutex
	window   ssh.Window
	onResize func()
	drained  chan struct{}
	pending  []byte

	pumpOnce  sync.Once
	closeOnce sync.Once
	chunks    chan []byte
	readErr   chan error
	done      chan struct{}
	eof       atomic.Bool
}

// NewSessionTty creates a tty reading from sess. Window updates received on
// windows are reported to tcell as resizes.
func NewSessionTty(sess ssh.Session, initial ssh.Window, windows <-chan ssh.Window) *SessionTty {
	t := &SessionTty{
		sess:    sess,
		window:  initial,
		drained: make(chan struct{}),
		chunks:  make(chan []byte),
		readErr: make(chan error, 1),
		done:    make(chan struct{}),
	}
	if windows != nil {
		go t.watchWindows(windows)
	}
	return t
}

func (t *SessionTty) watchWindows(windows <-chan ssh.Window) {
	for w := range windows {
		t.mu.Lock()
		t.window = w
		cb := t.onResize
		t.mu.Unlock()
		if cb != nil {
			cb()
		}
	}
}

// pump copies session input to the chunks channel until the session fails.
func (t *SessionTty) pump() {
	for {
		buf := make([]byte, 128)
		n, err := t.sess.Read(buf)
		if n > 0 {
			select {
			case t.chunks <- buf[:n]:
			case <-t.done:
				return
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				t.eof.Store(true)
			}
			t.readErr <- err
			return
		}
	}
}

// HungUp reports whether the client has closed its input.
func (t *SessionTty) HungUp() bool {
	return t.eof.Load()
}

// Start begins delivering session input to Read.
func (t *SessionTty) Start() error {
	t.mu.Lock()
	t.drained = make(chan struct{})
	t.mu.Unlock()

	t.pumpOnce.Do(func() { go t.pump() })
	return nil
}

// Stop is a no-op; the session stays open for the SSH handler.
func (t *SessionTty) Stop() error {
	return nil
}

// Drain wakes up a blocked Read and makes further reads fail until the next
// Start.
func (t *SessionTty) Drain() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	select {
	case <-t.drained:
	default:
		close(t.drained)
	}
	return nil
}

// NotifyResize registers cb to be called when the client window changes.
func (t *SessionTty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.onResize = cb
	t.mu.Unlock()
}

// WindowSize returns the last window size reported by the client.
func (t *SessionTty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tcell.WindowSize{Width: t.window.Width, Height: t.window.Height}, nil
}

// Read returns session input. A chunk larger than p is returned over
// several calls.
func (t *SessionTty) Read(p []byte) (int, error) {
	t.mu.Lock()
	drained := t.drained
	if len(t.pending) > 0 {
		n := copy(p, t.pending)
		t.pending = t.pending[n:]
		t.mu.Unlock()
		return n, nil
	}
	t.mu.Unlock()

	select {
	case <-drained:
		return 0, errDrained
	case err := <-t.readErr:
		t.readErr <- err
		return 0, err
	case chunk := <-t.chunks:
		n := copy(p, chunk)
		if n < len(chunk) {
			t.mu.Lock()
			t.pending = append(t.pending, chunk[n:]...)
			t.mu.Unlock()
		}
		return n, nil
	}
}

// Write sends output to the client.
func (t *SessionTty) Write(p []byte) (int, error) {
	return t.sess.Write(p)
}

// Close stops the input pump. The session itself is left to its handler.
func (t *SessionTty) Close() error {
	t.closeOnce.Do(func() { close(t.done) })
	return nil
}
