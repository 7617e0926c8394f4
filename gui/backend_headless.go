package gui

import (
	"sync"
	"time"

	"github.com/dfpsr-go/softcanvas/pixel"
)

// HeadlessBackend is a Backend that renders into an in-memory surface and
// presents nothing, for tests and servers with no display.
type HeadlessBackend struct {
	mu      sync.Mutex
	surface pixel.Image
	started bool
}

// NewHeadlessBackend creates a backend with an RGBA8 surface of the given
// size.
func NewHeadlessBackend(width, height int) *HeadlessBackend {
	return &HeadlessBackend{surface: pixel.New(pixel.FormatRGBA8, width, height)}
}

func (h *HeadlessBackend) Start() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.started = true
	return nil
}

func (h *HeadlessBackend) Stop() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.started = false
}

func (h *HeadlessBackend) Close() { h.Stop() }

func (h *HeadlessBackend) IsStarted() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.started
}

func (h *HeadlessBackend) Surface() pixel.Image { return h.surface }
func (h *HeadlessBackend) Present()             {}

func (h *HeadlessBackend) ClipboardLoad(timeout time.Duration) (string, bool) { return "", false }
func (h *HeadlessBackend) ClipboardStore(text string, timeout time.Duration) bool { return false }
