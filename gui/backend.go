package gui

import (
	"time"

	"github.com/dfpsr-go/softcanvas/pixel"
)

// Backend presents a rendered canvas to the outside world: a real window,
// a terminal, or nothing at all. Concrete implementations live in
// build-tag-gated files, grounded on the teacher's VideoOutput interface
// shape.
type Backend interface {
	Start() error
	Stop()
	Close()
	IsStarted() bool

	// Surface returns the RGBA8 image the window driver should render
	// into before calling Present.
	Surface() pixel.Image
	// Present pushes whatever was last drawn into Surface to the actual
	// display device.
	Present()

	// ClipboardLoad reads Unicode text from the system clipboard, giving
	// up and reporting false if it doesn't respond within timeout.
	ClipboardLoad(timeout time.Duration) (string, bool)
	// ClipboardStore writes Unicode text to the system clipboard, giving
	// up and reporting false if it doesn't complete within timeout.
	ClipboardStore(text string, timeout time.Duration) bool
}

// BackendKind selects which concrete Backend NewWindowBackend constructs.
type BackendKind int

const (
	BackendEbiten BackendKind = iota
	BackendTerminal
	BackendHeadless
)
