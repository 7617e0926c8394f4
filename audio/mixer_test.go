package audio

import "testing"

func makeToneBuffer(frames int) *SoundBuffer {
	b := NewSoundBuffer(OutputSampleRate, 1, frames)
	for i := range b.Samples {
		b.Samples[i] = 0.5
	}
	return b
}

func TestMixerRejectsWrongSampleRate(t *testing.T) {
	m := NewMixer()
	b := NewSoundBuffer(22050, 1, 100)
	if id := m.Play(b, false, 1, 1, DefaultEnvelopeSettings()); id != -1 {
		t.Fatalf("expected rejection of mismatched sample rate, got id %d", id)
	}
}

func TestMixerProducesNonSilentBlockWhileSustained(t *testing.T) {
	m := NewMixer()
	buf := makeToneBuffer(PeriodSize * 4)
	settings := EnvelopeSettings{Attack: shortestTime, Decay: shortestTime, Sustain: 1, Release: 0.05}
	id := m.Play(buf, true, 1, 1, settings)
	if id < 0 {
		t.Fatal("expected a valid player id")
	}
	out := make([]float32, PeriodSize*OutputChannels)
	m.NextBlock(out)
	m.NextBlock(out)
	any := false
	for _, s := range out {
		if s != 0 {
			any = true
		}
	}
	if !any {
		t.Fatal("expected non-silent output from a sustained voice")
	}
	if m.ActiveVoices() != 1 {
		t.Fatalf("expected voice to remain active while sustained, got %d", m.ActiveVoices())
	}
}

func TestMixerReclaimsVoiceAfterRelease(t *testing.T) {
	m := NewMixer()
	buf := makeToneBuffer(PeriodSize * 100)
	settings := EnvelopeSettings{Attack: shortestTime, Decay: shortestTime, Sustain: 1, Release: shortestTime}
	id := m.Play(buf, true, 1, 1, settings)
	m.Release(id)

	out := make([]float32, PeriodSize*OutputChannels)
	for i := 0; i < 50 && m.ActiveVoices() > 0; i++ {
		m.NextBlock(out)
	}
	if m.ActiveVoices() != 0 {
		t.Fatalf("expected voice reclaimed after release, still have %d", m.ActiveVoices())
	}
}

func TestMixerStopRemovesImmediately(t *testing.T) {
	m := NewMixer()
	buf := makeToneBuffer(PeriodSize * 4)
	id := m.Play(buf, true, 1, 1, DefaultEnvelopeSettings())
	m.Stop(id)
	if m.ActiveVoices() != 0 {
		t.Fatalf("expected immediate removal, got %d active", m.ActiveVoices())
	}
}

func TestEnvelopeReleaseFadesToZero(t *testing.T) {
	e := NewEnvelope(EnvelopeSettings{Attack: shortestTime, Decay: shortestTime, Sustain: 1, Release: 0.1})
	for i := 0; i < 50; i++ {
		e.GetVolume(true, 0.01)
	}
	if e.currentVolume < 0.9 {
		t.Fatalf("expected envelope near full volume while sustained, got %f", e.currentVolume)
	}
	for i := 0; i < 200; i++ {
		e.GetVolume(false, 0.01)
	}
	if !e.Done() {
		t.Fatalf("expected envelope done after long release, volume=%f", e.currentVolume)
	}
}
