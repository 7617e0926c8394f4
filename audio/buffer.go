// Package audio implements interleaved PCM sound storage, ADSR envelope
// shaping and a real-time mixer that sums active voices into a fixed
// period output ring, mirroring the reference sound engine's block-based
// streaming design.
package audio

// SoundBuffer holds interleaved PCM samples at a fixed sample rate and
// channel count (1 = mono, 2 = stereo). Samples are stored as float32 in
// the logical range [-1, 1], matching the float output format the oto
// backend streams.
type SoundBuffer struct {
	Samples    []float32
	SampleRate int
	Channels   int
}

// NewSoundBuffer allocates a silent buffer holding frameCount frames.
func NewSoundBuffer(sampleRate, channels, frameCount int) *SoundBuffer {
	return &SoundBuffer{
		Samples:    make([]float32, frameCount*channels),
		SampleRate: sampleRate,
		Channels:   channels,
	}
}

// FrameCount returns the number of sample frames (samples per channel).
func (b *SoundBuffer) FrameCount() int {
	if b.Channels <= 0 {
		return 0
	}
	return len(b.Samples) / b.Channels
}

// sampleLinear reads a linearly interpolated sample from channel ch at a
// fractional frame position, clamping at the buffer edges. Used by
// SoundPlayer for non-repeating playback, whose cursor advances by a
// possibly fractional playback rate.
func (b *SoundBuffer) sampleLinear(ch int, framePos float64) float32 {
	return b.sampleLinearMode(ch, framePos, sampleClamped)
}

// sampleLinearCyclic is sampleLinear but wraps the position modulo the
// buffer length instead of clamping, for looping playback.
func (b *SoundBuffer) sampleLinearCyclic(ch int, framePos float64) float32 {
	return b.sampleLinearMode(ch, framePos, sampleCyclic)
}

type edgeMode int

const (
	sampleClamped edgeMode = iota
	sampleCyclic
)

func (b *SoundBuffer) sampleLinearMode(ch int, framePos float64, mode edgeMode) float32 {
	n := b.FrameCount()
	if n == 0 {
		return 0
	}
	whole := int(framePos)
	frac := float32(framePos - float64(whole))
	idx := func(i int) int {
		if mode == sampleCyclic {
			i %= n
			if i < 0 {
				i += n
			}
			return i
		}
		if i < 0 {
			return 0
		}
		if i >= n {
			return n - 1
		}
		return i
	}
	a := b.frame(idx(whole), ch)
	c := b.frame(idx(whole+1), ch)
	return a*(1-frac) + c*frac
}

func (b *SoundBuffer) frame(frameIndex, ch int) float32 {
	if ch >= b.Channels {
		ch = b.Channels - 1
	}
	return b.Samples[frameIndex*b.Channels+ch]
}

// sampleMinMax scans the frame range [start, end) on channel ch and
// returns the minimum and maximum sample values, for drawing a waveform
// envelope without plotting every sample.
func (b *SoundBuffer) sampleMinMax(ch, start, end int) (min, max float32) {
	n := b.FrameCount()
	if start < 0 {
		start = 0
	}
	if end > n {
		end = n
	}
	if start >= end {
		return 0, 0
	}
	min = b.frame(start, ch)
	max = min
	for i := start + 1; i < end; i++ {
		v := b.frame(i, ch)
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return
}
