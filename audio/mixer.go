package audio

import "sync"

// PeriodSize is the number of frames the mixer produces per mixing pass,
// matching the reference engine's fixed streaming block size.
const PeriodSize = 1024

// OutputSampleRate is the sample rate the mixer produces; voices at a
// different rate are rejected by Play.
const OutputSampleRate = 44100

// OutputChannels is the number of interleaved channels the mixer produces.
const OutputChannels = 2

// Mixer owns the set of currently active voices and sums them into a
// fixed-period interleaved stereo output block on demand. Safe for
// concurrent use: Play/Release/Stop may be called from any goroutine while
// a backend pulls blocks via NextBlock.
type Mixer struct {
	mu      sync.Mutex
	players []*SoundPlayer
	nextID  int
	scratch []float32
}

// NewMixer creates an empty mixer.
func NewMixer() *Mixer {
	return &Mixer{scratch: make([]float32, PeriodSize*2)}
}

// Play starts a new voice playing buffer and returns its player ID, or -1
// if the buffer's sample rate doesn't match the mixer's fixed output rate
// or it has more channels than the mixer supports.
func (m *Mixer) Play(buffer *SoundBuffer, repeat bool, leftVolume, rightVolume float32, settings EnvelopeSettings) int {
	if buffer.SampleRate != OutputSampleRate || buffer.Channels > OutputChannels {
		return -1
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.nextID
	m.nextID++
	m.players = append(m.players, NewSoundPlayer(id, buffer, repeat, leftVolume, rightVolume, settings))
	return id
}

// Release begins the release phase of the voice with the given player ID,
// a no-op if no such voice is active.
func (m *Mixer) Release(playerID int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p := m.find(playerID); p != nil {
		p.Release()
	}
}

// Stop removes the voice with the given player ID immediately, skipping
// its release phase.
func (m *Mixer) Stop(playerID int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, p := range m.players {
		if p.ID == playerID {
			m.players = append(m.players[:i], m.players[i+1:]...)
			return
		}
	}
}

// StopAll immediately removes every active voice.
func (m *Mixer) StopAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.players = m.players[:0]
}

// ActiveVoices returns the number of currently active (not yet reclaimed)
// voices.
func (m *Mixer) ActiveVoices() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.players)
}

func (m *Mixer) find(playerID int) *SoundPlayer {
	for _, p := range m.players {
		if p.ID == playerID {
			return p
		}
	}
	return nil
}

// NextBlock mixes one PeriodSize-frame block of every active voice into
// out (which must have room for PeriodSize*OutputChannels samples),
// summing mono voices into both channels weighted by left/right volume and
// stereo voices channel-for-channel, then drops any voice that has
// finished releasing. Active players are walked in reverse so a
// removal during the pass never skips the next player.
func (m *Mixer) NextBlock(out []float32) {
	for i := range out {
		out[i] = 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := len(m.players) - 1; i >= 0; i-- {
		p := m.players[i]
		channels := p.GetNextSamples(m.scratch, PeriodSize)
		if channels == 1 {
			for f := 0; f < PeriodSize; f++ {
				s := m.scratch[f]
				out[f*2] += s * p.leftVolume
				out[f*2+1] += s * p.rightVolume
			}
		} else {
			for f := 0; f < PeriodSize; f++ {
				out[f*2] += m.scratch[f*2] * p.leftVolume
				out[f*2+1] += m.scratch[f*2+1] * p.rightVolume
			}
		}
		if p.Done() {
			m.players = append(m.players[:i], m.players[i+1:]...)
		}
	}
}
