package audio

import "sync"

// headlessBackend discards mixed output, for environments with no audio
// device (CI, servers, the headless build tag) and for tests that want to
// drive the mixing path on a synthetic clock.
type headlessBackend struct {
	mu      sync.Mutex
	mixer   *Mixer
	started bool
	block   []float32
}

func newHeadlessBackend() *headlessBackend {
	return &headlessBackend{block: make([]float32, PeriodSize*OutputChannels)}
}

func (h *headlessBackend) Start(mixer *Mixer) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.mixer = mixer
	h.started = true
	return nil
}

func (h *headlessBackend) Stop() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.started = false
}

func (h *headlessBackend) Close() { h.Stop() }

func (h *headlessBackend) IsStarted() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.started
}

// Pump mixes and discards one block; exposed for tests that want to
// exercise the mixing path without a real audio clock.
func (h *headlessBackend) Pump() {
	h.mu.Lock()
	mixer := h.mixer
	h.mu.Unlock()
	if mixer != nil {
		mixer.NextBlock(h.block)
	}
}
