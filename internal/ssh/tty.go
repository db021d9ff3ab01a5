// Package ssh adapts gliderlabs/ssh sessions to tcell screens.
package ssh

import (
	"io"
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// Tty implements tcell.Tty over an SSH channel. Each connected client gets
// its own Tty and Screen.
type Tty struct {
	ch     io.ReadWriteCloser
	mu     sync.Mutex
	window gossh.Window
	winCh  <-chan gossh.Window
	cb     func() // resize callback registered by tcell
	watch  sync.Once
}

// NewTty wraps an SSH channel as a tcell Tty. win is the initial window
// size; winCh delivers later resizes and may be nil.
func NewTty(ch io.ReadWriteCloser, win gossh.Window, winCh <-chan gossh.Window) *Tty {
	return &Tty{ch: ch, window: win, winCh: winCh}
}

func (t *Tty) Read(b []byte) (int, error)  { return t.ch.Read(b) }
func (t *Tty) Write(b []byte) (int, error) { return t.ch.Write(b) }
func (t *Tty) Close() error                { return t.ch.Close() }

// Start, Stop and Drain are no-ops: the server handler owns the channel.
func (t *Tty) Start() error { return nil }
func (t *Tty) Stop() error  { return nil }
func (t *Tty) Drain() error { return nil }

// WindowSize returns the current terminal dimensions.
func (t *Tty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tcell.WindowSize{Width: t.window.Width, Height: t.window.Height}, nil
}

// NotifyResize registers cb for window changes. The window channel is
// drained by a single goroutine no matter how often this is called.
func (t *Tty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.cb = cb
	t.mu.Unlock()

	if t.winCh == nil {
		return
	}
	t.watch.Do(func() {
		go func() {
			for win := range t.winCh {
				t.mu.Lock()
				t.window = win
				localCb := t.cb
				t.mu.Unlock()
				if localCb != nil {
					localCb()
				}
			}
		}()
	})
}
