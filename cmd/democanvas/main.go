// Command democanvas opens a window showing a small component tree, a
// looping tone through the audio mixer, and optionally a picture loaded
// from a file given on the command line. It exists to exercise the
// rendering, GUI, and audio packages together the way a real application
// would wire them, not as a library entry point.
package main

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/dfpsr-go/softcanvas/audio"
	"github.com/dfpsr-go/softcanvas/gui"
	"github.com/dfpsr-go/softcanvas/imageio"
	"github.com/dfpsr-go/softcanvas/internal/diag"
	"github.com/dfpsr-go/softcanvas/pixel"
)

func buildUI(picture pixel.Image) gui.Component {
	root := gui.NewPanel()
	root.SetRegion(gui.FillRegion())

	toolbar := gui.NewToolbar()
	toolbar.SetRegion(gui.FlexRegion{
		Left:   gui.Edge{Ratio: 0},
		Top:    gui.Edge{Ratio: 0},
		Right:  gui.Edge{Ratio: 1},
		Bottom: gui.Edge{Offset: 32},
	})
	toolbar.AddChild(gui.NewButton("Play Tone"))
	toolbar.AddChild(gui.NewButton("Quit"))
	root.AddChild(toolbar)

	if picture.IsValid() {
		pic := gui.NewPicture(picture)
		pic.SetRegion(gui.FlexRegion{
			Left:   gui.Edge{Ratio: 0},
			Top:    gui.Edge{Offset: 32},
			Right:  gui.Edge{Ratio: 1},
			Bottom: gui.Edge{Ratio: 1},
		})
		root.AddChild(pic)
	} else {
		label := gui.NewLabel("softcanvas demo")
		label.SetRegion(gui.FlexRegion{
			Left:   gui.Edge{Ratio: 0, Offset: 16},
			Top:    gui.Edge{Offset: 48},
			Right:  gui.Edge{Ratio: 1},
			Bottom: gui.Edge{Offset: 64},
		})
		root.AddChild(label)
	}

	return root
}

func makeToneBuffer() *audio.SoundBuffer {
	const sampleRate = audio.OutputSampleRate
	const freqHz = 440.0
	const seconds = 0.5
	buf := audio.NewSoundBuffer(sampleRate, 1, int(sampleRate*seconds))
	for i := range buf.Samples {
		t := float64(i) / float64(sampleRate)
		buf.Samples[i] = float32(0.2 * math.Sin(2*math.Pi*freqHz*t))
	}
	return buf
}

func main() {
	headless := false
	var imagePath string
	for _, arg := range os.Args[1:] {
		if arg == "-headless" {
			headless = true
			continue
		}
		imagePath = arg
	}

	var picture pixel.Image
	if imagePath != "" {
		var err error
		picture, err = imageio.Load(imagePath, false)
		if err != nil {
			diag.Warn("democanvas: could not load %q, showing the label instead: %v", imagePath, err)
		}
	}

	root := buildUI(picture)

	backendKind := gui.BackendEbiten
	if headless {
		backendKind = gui.BackendHeadless
	}
	backend, err := gui.NewWindowBackend(backendKind, 800, 600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "democanvas: failed to create window backend: %v\n", err)
		os.Exit(1)
	}

	window := gui.NewWindow(root, backend, 800, 600, false)
	window.Layout()

	if err := backend.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "democanvas: failed to start window backend: %v\n", err)
		os.Exit(1)
	}
	defer backend.Close()

	mixer := audio.NewMixer()
	audioBackend, err := audio.NewBackend(audio.BackendOto)
	if err != nil {
		diag.Warn("democanvas: falling back to a silent audio backend: %v", err)
	} else if err := audioBackend.Start(mixer); err != nil {
		diag.Warn("democanvas: audio backend failed to start: %v", err)
	} else {
		defer audioBackend.Close()
	}
	tone := makeToneBuffer()
	mixer.Play(tone, true, 1, 1, audio.EnvelopeSettings{Sustain: 1, Release: 0.05})

	frameInterval := time.Second / 60
	for i := 0; i < 600; i++ {
		window.Render(backend.Surface())
		backend.Present()
		time.Sleep(frameInterval)
		if headless {
			break
		}
	}
}
