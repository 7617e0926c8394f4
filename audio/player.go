package audio

// SoundPlayer drives one active voice: it walks a SoundBuffer's playback
// cursor forward by however many frames the mixer asks for, applying the
// voice's envelope, and reports when it has fully released so the mixer
// can drop it. The mixer applies the left/right volume when it sums the
// voice into its output.
type SoundPlayer struct {
	ID int

	buffer   *SoundBuffer
	cursor   float64
	playbackRate float64
	repeat   bool

	leftVolume  float32
	rightVolume float32
	fadeLeft    bool
	fadeRight   bool

	envelope *Envelope
	sustained bool
}

// NewSoundPlayer creates a player for buffer, starting at frame 0 with
// unity playback rate. A leftVolume/rightVolume other than 1 sets the
// corresponding fade flag; Mixer.NextBlock does not read these flags and
// always multiplies by both volumes.
func NewSoundPlayer(id int, buffer *SoundBuffer, repeat bool, leftVolume, rightVolume float32, settings EnvelopeSettings) *SoundPlayer {
	return &SoundPlayer{
		ID:           id,
		buffer:       buffer,
		playbackRate: 1.0,
		repeat:       repeat,
		leftVolume:   leftVolume,
		rightVolume:  rightVolume,
		fadeLeft:     leftVolume != 1.0,
		fadeRight:    rightVolume != 1.0,
		envelope:     NewEnvelope(settings),
		sustained:    true,
	}
}

// Release begins the voice's release phase; subsequent GetNextSamples
// calls fade it toward silence rather than holding at sustain.
func (p *SoundPlayer) Release() { p.sustained = false }

// Done reports whether the voice has finished and can be dropped from the
// mixer's active list: every voice has an envelope, and it is done once
// that envelope has fully released. A non-repeating voice that reaches the
// end of its buffer stops sustaining in GetNextSamples, which starts that
// release.
func (p *SoundPlayer) Done() bool {
	return p.envelope.Done()
}

// GetNextSamples appends frameCount frames (interleaved per buffer
// channel count) into out, advancing the playback cursor by frameCount *
// playbackRate frames and the envelope by frameCount/sampleRate seconds.
// Returns the number of channels the underlying buffer has (1 or 2).
func (p *SoundPlayer) GetNextSamples(out []float32, frameCount int) int {
	buf := p.buffer
	seconds := float64(frameCount) / float64(buf.SampleRate)
	volume := float32(p.envelope.GetVolume(p.sustained, seconds))

	n := buf.FrameCount()
	for i := 0; i < frameCount; i++ {
		for ch := 0; ch < buf.Channels; ch++ {
			var s float32
			if p.repeat {
				s = buf.sampleLinearCyclic(ch, p.cursor)
			} else {
				s = buf.sampleLinear(ch, p.cursor)
			}
			out[i*buf.Channels+ch] = s * volume
		}
		p.cursor += p.playbackRate
		if !p.repeat && int(p.cursor) >= n {
			p.sustained = false
		}
	}
	if p.repeat && n > 0 {
		p.cursor = wrapCursor(p.cursor, float64(n))
	}
	return buf.Channels
}

func wrapCursor(cursor, length float64) float64 {
	for cursor >= length {
		cursor -= length
	}
	return cursor
}
