//go:build !headless

package gui

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/dfpsr-go/softcanvas/pixel"
	"golang.org/x/term"
)

// TerminalBackend renders the canvas as a low-resolution ANSI truecolor
// preview directly to stdout, putting the terminal into raw mode for the
// duration so a caller can forward individual keystrokes without line
// buffering or local echo. It has no mouse input of its own; HandleMouse
// callers should not expect pointer events from this backend.
type TerminalBackend struct {
	mu       sync.Mutex
	surface  pixel.Image
	started  bool
	fd       int
	oldState *term.State
}

// NewTerminalBackend creates a backend with a logical canvas of the given
// size; each canvas pixel becomes one printed character cell, so callers
// typically choose a small size (e.g. 80x24) rather than a real display
// resolution.
func NewTerminalBackend(width, height int) *TerminalBackend {
	return &TerminalBackend{
		surface: pixel.New(pixel.FormatRGBA8, width, height),
		fd:      int(os.Stdin.Fd()),
	}
}

func (t *TerminalBackend) Surface() pixel.Image { return t.surface }

func (t *TerminalBackend) Start() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.started {
		return nil
	}
	oldState, err := term.MakeRaw(t.fd)
	if err != nil {
		return fmt.Errorf("terminal backend: failed to set raw mode: %w", err)
	}
	t.oldState = oldState
	t.started = true
	return nil
}

func (t *TerminalBackend) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.started {
		return
	}
	if t.oldState != nil {
		_ = term.Restore(t.fd, t.oldState)
		t.oldState = nil
	}
	t.started = false
}

func (t *TerminalBackend) Close() { t.Stop() }

func (t *TerminalBackend) IsStarted() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.started
}

// Present prints the surface to stdout as a grid of "\x1b[48;2;R;G;Bm  "
// truecolor background cells, one pair of spaces per pixel so cells are
// roughly square, followed by a reset and cursor-home so the next frame
// overwrites in place.
func (t *TerminalBackend) Present() {
	t.mu.Lock()
	im := t.surface
	t.mu.Unlock()
	if !im.IsValid() {
		return
	}
	var buf []byte
	buf = append(buf, "\x1b[H"...)
	for y := 0; y < im.Height(); y++ {
		for x := 0; x < im.Width(); x++ {
			c := im.ReadColor(x, y)
			buf = append(buf, fmt.Sprintf("\x1b[48;2;%d;%d;%dm  ", c.R, c.G, c.B)...)
		}
		buf = append(buf, "\x1b[0m\r\n"...)
	}
	os.Stdout.Write(buf)
}

// ClipboardLoad and ClipboardStore are not available over a bare terminal
// connection; callers get an immediate false rather than blocking for
// timeout.
func (t *TerminalBackend) ClipboardLoad(timeout time.Duration) (string, bool) { return "", false }
func (t *TerminalBackend) ClipboardStore(text string, timeout time.Duration) bool { return false }
