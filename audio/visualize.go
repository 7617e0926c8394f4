package audio

import "github.com/dfpsr-go/softcanvas/pixel"

// DrawEnvelope renders a preview curve of settings into region on target,
// simulating GetVolume at a fixed time step across viewTime seconds with
// the release triggered at releaseTime. This mirrors the reference
// engine's debug envelope visualization used by a sound-authoring tool's
// inspector panel.
func DrawEnvelope(target pixel.Image, region pixel.Rect, settings EnvelopeSettings, releaseTime, viewTime float64) {
	if !target.IsValid() || region.Empty() || viewTime <= 0 {
		return
	}
	pixel.FillRect(target, region, pixel.Gray(32))
	env := NewEnvelope(settings)
	const step = 1.0 / 200.0
	w := region.Width()
	prevX, prevY := -1, -1
	for t := 0.0; t < viewTime; t += step {
		sustained := t < releaseTime
		v := env.GetVolume(sustained, step)
		x := region.Left + int(float64(w)*t/viewTime)
		y := region.Bottom - 1 - int(v*float64(region.Height()-1))
		if prevX >= 0 {
			pixel.DrawLine(target, prevX, prevY, x, y, pixel.RGBA(80, 220, 120, 255))
		}
		prevX, prevY = x, y
	}
}

// DrawWaveform renders a min/max envelope of buf's first channel into
// region, one output column per run of source frames, optionally
// highlighting the trace to indicate the buffer is selected in an editor.
func DrawWaveform(target pixel.Image, region pixel.Rect, buf *SoundBuffer, selected bool) {
	if !target.IsValid() || region.Empty() || buf == nil {
		return
	}
	bg := pixel.Gray(16)
	if selected {
		bg = pixel.RGBA(24, 24, 40, 255)
	}
	pixel.FillRect(target, region, bg)

	n := buf.FrameCount()
	if n == 0 {
		return
	}
	w := region.Width()
	midY := region.Top + region.Height()/2
	halfH := float32(region.Height() / 2)
	traceColor := pixel.RGBA(200, 200, 200, 255)
	if selected {
		traceColor = pixel.RGBA(255, 220, 80, 255)
	}
	for x := 0; x < w; x++ {
		start := x * n / w
		end := (x + 1) * n / w
		if end <= start {
			end = start + 1
		}
		lo, hi := buf.sampleMinMax(0, start, end)
		y0 := midY - int(lo*halfH)
		y1 := midY - int(hi*halfH)
		pixel.DrawLine(target, region.Left+x, y0, region.Left+x, y1, traceColor)
	}
}
