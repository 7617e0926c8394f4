//go:build !headless

package gui

import (
	"sync"
	"time"

	"github.com/dfpsr-go/softcanvas/pixel"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.design/x/clipboard"
)

// EbitenBackend presents a canvas through an ebiten window, translating
// ebiten's own input callbacks into this package's MouseEvent/KeyboardEvent
// types and feeding them to a Window.
type EbitenBackend struct {
	window *Window

	running       bool
	width, height int
	surface       pixel.Image
	ebitenImage   *ebiten.Image
	mutex         sync.RWMutex
	fullscreen    bool
	readyChan     chan struct{}

	clipboardOnce sync.Once
	clipboardErr  error
}

// NewEbitenBackend creates a backend targeting a physical surface of the
// given size; call AttachWindow before Start so input callbacks have
// somewhere to route to.
func NewEbitenBackend(width, height int) *EbitenBackend {
	return &EbitenBackend{
		width:     width,
		height:    height,
		surface:   pixel.New(pixel.FormatRGBA8, width, height),
		readyChan: make(chan struct{}, 1),
	}
}

// AttachWindow connects the backend to the Window whose mouse/keyboard
// events it should forward ebiten callbacks to.
func (eb *EbitenBackend) AttachWindow(w *Window) { eb.window = w }

func (eb *EbitenBackend) Surface() pixel.Image { return eb.surface }

func (eb *EbitenBackend) Start() error {
	eb.mutex.Lock()
	if eb.running {
		eb.mutex.Unlock()
		return nil
	}
	eb.running = true
	eb.mutex.Unlock()

	ebiten.SetWindowSize(eb.width, eb.height)
	ebiten.SetWindowTitle("softcanvas")
	ebiten.SetWindowResizable(true)
	ebiten.SetRunnableOnUnfocused(true)
	ebiten.SetVsyncEnabled(true)

	go func() { _ = ebiten.RunGame(eb) }()
	<-eb.readyChan
	return nil
}

func (eb *EbitenBackend) Stop() {
	eb.mutex.Lock()
	eb.running = false
	eb.mutex.Unlock()
}

func (eb *EbitenBackend) Close() { eb.Stop() }

func (eb *EbitenBackend) IsStarted() bool {
	eb.mutex.RLock()
	defer eb.mutex.RUnlock()
	return eb.running
}

// Present is a no-op for the ebiten backend: Draw() (called by ebiten's
// own game loop on its own goroutine) reads directly from Surface.
func (eb *EbitenBackend) Present() {}

func (eb *EbitenBackend) initClipboard() bool {
	eb.clipboardOnce.Do(func() { eb.clipboardErr = clipboard.Init() })
	return eb.clipboardErr == nil
}

// ClipboardLoad reads the system clipboard's text contents, grounded on
// video_backend_ebiten.go's handleClipboardPaste.
func (eb *EbitenBackend) ClipboardLoad(timeout time.Duration) (string, bool) {
	if !eb.initClipboard() {
		return "", false
	}
	result := make(chan []byte, 1)
	go func() { result <- clipboard.Read(clipboard.FmtText) }()
	select {
	case data := <-result:
		if data == nil {
			return "", false
		}
		return string(data), true
	case <-time.After(timeout):
		return "", false
	}
}

// ClipboardStore writes text to the system clipboard.
func (eb *EbitenBackend) ClipboardStore(text string, timeout time.Duration) bool {
	if !eb.initClipboard() {
		return false
	}
	done := clipboard.Write(clipboard.FmtText, []byte(text))
	select {
	case <-done:
		return true
	case <-time.After(timeout):
		return false
	}
}

// Update implements ebiten.Game: it detects window close, toggles
// fullscreen on F11, and forwards mouse/keyboard state into the attached
// Window.
func (eb *EbitenBackend) Update() error {
	if ebiten.IsWindowBeingClosed() || !eb.IsStarted() {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		eb.mutex.Lock()
		eb.fullscreen = !eb.fullscreen
		ebiten.SetFullscreen(eb.fullscreen)
		eb.mutex.Unlock()
	}
	eb.pumpMouse()
	eb.pumpKeyboard()
	return nil
}

func (eb *EbitenBackend) pumpMouse() {
	if eb.window == nil {
		return
	}
	x, y := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		eb.window.HandleMouse(MouseDown, MouseLeft, x, y)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		eb.window.HandleMouse(MouseUp, MouseLeft, x, y)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		eb.window.HandleMouse(MouseDown, MouseRight, x, y)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight) {
		eb.window.HandleMouse(MouseUp, MouseRight, x, y)
	}
	eb.window.HandleMouse(MouseMove, MouseNone, x, y)
	if _, dy := ebiten.Wheel(); dy != 0 {
		btn := MouseScrollUp
		if dy < 0 {
			btn = MouseScrollDown
		}
		eb.window.HandleMouse(MouseScroll, btn, x, y)
	}
}

var ebitenSpecialKeys = map[ebiten.Key]Key{
	ebiten.KeyArrowUp:    KeyUp,
	ebiten.KeyArrowDown:  KeyDown,
	ebiten.KeyArrowLeft:  KeyLeft,
	ebiten.KeyArrowRight: KeyRight,
	ebiten.KeyPageUp:     KeyPageUp,
	ebiten.KeyPageDown:   KeyPageDown,
	ebiten.KeyControlLeft: KeyControl,
	ebiten.KeyShiftLeft:  KeyShift,
	ebiten.KeyAltLeft:    KeyAlt,
	ebiten.KeyEscape:     KeyEscape,
	ebiten.KeySpace:      KeySpace,
	ebiten.KeyTab:        KeyTab,
	ebiten.KeyEnter:      KeyReturn,
	ebiten.KeyBackspace:  KeyBackspace,
	ebiten.KeyDelete:     KeyDelete,
	ebiten.KeyInsert:     KeyInsert,
	ebiten.KeyHome:       KeyHome,
	ebiten.KeyEnd:        KeyEnd,
}

func (eb *EbitenBackend) pumpKeyboard() {
	if eb.window == nil {
		return
	}
	for ebitenKey, logical := range ebitenSpecialKeys {
		if inpututil.IsKeyJustPressed(ebitenKey) {
			eb.window.HandleKeyboard(KeyboardEvent{Type: KeyEventDown, Key: logical})
		}
		if inpututil.IsKeyJustReleased(ebitenKey) {
			eb.window.HandleKeyboard(KeyboardEvent{Type: KeyEventUp, Key: logical})
		}
	}
	for _, r := range ebiten.AppendInputChars(nil) {
		eb.window.HandleKeyboard(KeyboardEvent{Type: KeyEventType, Character: r})
	}
}

// Draw implements ebiten.Game: it uploads the RGBA8 surface into an
// ebiten.Image and blits it to the screen.
func (eb *EbitenBackend) Draw(screen *ebiten.Image) {
	eb.mutex.Lock()
	if eb.ebitenImage == nil {
		eb.ebitenImage = ebiten.NewImage(eb.width, eb.height)
	}
	eb.ebitenImage.WritePixels(surfaceBytes(eb.surface))
	eb.mutex.Unlock()
	screen.DrawImage(eb.ebitenImage, nil)
	select {
	case eb.readyChan <- struct{}{}:
	default:
	}
}

func (eb *EbitenBackend) Layout(outsideWidth, outsideHeight int) (int, int) {
	return eb.width, eb.height
}

// surfaceBytes returns the raw RGBA bytes backing a tightly-packed RGBA8
// image, as required by ebiten.Image.WritePixels.
func surfaceBytes(im pixel.Image) []byte {
	return im.RowPointer(0).Bytes(im.Width() * im.Height() * 4)
}
