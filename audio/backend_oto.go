//go:build !headless

package audio

import (
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/ebitengine/oto/v3"
)

// OtoPlayer streams a Mixer's output through the oto/v3 backend. It
// implements io.Reader so oto can pull blocks on its own callback thread;
// the mixer pointer is read atomically so that hot path never takes a
// lock.
type OtoPlayer struct {
	ctx    *oto.Context
	player *oto.Player
	mixer  atomic.Pointer[Mixer]
	block  []float32

	started bool
	mutex   sync.Mutex
}

// NewOtoPlayer opens an oto context at OutputSampleRate, stereo,
// float32LE, matching the mixer's fixed output format.
func NewOtoPlayer() (*OtoPlayer, error) {
	opts := &oto.NewContextOptions{
		SampleRate:   OutputSampleRate,
		ChannelCount: OutputChannels,
		Format:       oto.FormatFloat32LE,
		BufferSize:   4,
	}
	ctx, ready, err := oto.NewContext(opts)
	if err != nil {
		return nil, err
	}
	<-ready
	return &OtoPlayer{ctx: ctx, block: make([]float32, PeriodSize*OutputChannels)}, nil
}

// Start implements Backend: it stores mixer atomically, lazily builds the
// oto.Player and starts playback.
func (op *OtoPlayer) Start(mixer *Mixer) error {
	op.mutex.Lock()
	defer op.mutex.Unlock()
	op.mixer.Store(mixer)
	if op.player == nil {
		op.player = op.ctx.NewPlayer(op)
	}
	if !op.started {
		op.player.Play()
		op.started = true
	}
	return nil
}

// Read implements io.Reader for oto's pull model: each call fills p with
// one or more PeriodSize*channels mixed blocks, mixing silence if no
// mixer has been attached yet.
func (op *OtoPlayer) Read(p []byte) (int, error) {
	mixer := op.mixer.Load()
	if mixer == nil {
		for i := range p {
			p[i] = 0
		}
		return len(p), nil
	}
	blockBytes := len(op.block) * 4
	filled := 0
	for filled < len(p) {
		mixer.NextBlock(op.block)
		n := copy(p[filled:], floatBytes(op.block))
		filled += n
		if n < blockBytes {
			break
		}
	}
	return filled, nil
}

func floatBytes(samples []float32) []byte {
	if len(samples) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&samples[0])), len(samples)*4)
}

func (op *OtoPlayer) Stop() {
	op.mutex.Lock()
	defer op.mutex.Unlock()
	if op.started && op.player != nil {
		op.player.Pause()
		op.started = false
	}
}

func (op *OtoPlayer) Close() {
	op.Stop()
	op.mutex.Lock()
	defer op.mutex.Unlock()
	if op.player != nil {
		op.player.Close()
		op.player = nil
	}
}

func (op *OtoPlayer) IsStarted() bool {
	op.mutex.Lock()
	defer op.mutex.Unlock()
	return op.started
}

// NewBackend constructs the concrete backend for kind. In a non-headless
// build BackendHeadless still resolves to the in-memory headlessBackend so
// tests don't need an audio device.
func NewBackend(kind BackendKind) (Backend, error) {
	if kind == BackendOto {
		return NewOtoPlayer()
	}
	return newHeadlessBackend(), nil
}
