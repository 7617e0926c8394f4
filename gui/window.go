package gui

import "github.com/dfpsr-go/softcanvas/pixel"

// Window owns the logical canvas a component tree draws into, a backend
// that presents it, and the integer-scale block magnification that maps
// the logical canvas onto whatever physical window size the backend
// reports, matching the reference windowing layer's pixel_scale
// parameter.
type Window struct {
	Root    Component
	Backend Backend

	canvas       pixel.Image
	depthBuffer  pixel.Image
	useDepth     bool
	pixelScale   int
}

// NewWindow creates a window over root, with a canvas of the given
// logical resolution. useDepth allocates a U16 height buffer alongside the
// canvas for draw_higher-based compositing of overlapping components
// (used by 3D-ish component art, not by the flat 2D widgets in this
// package, but part of the window driver's contract).
func NewWindow(root Component, backend Backend, width, height int, useDepth bool) *Window {
	w := &Window{
		Root:       root,
		Backend:    backend,
		canvas:     pixel.NewRGBA(width, height, pixel.PackOrderRGBA),
		pixelScale: 1,
		useDepth:   useDepth,
	}
	if useDepth {
		w.depthBuffer = pixel.New(pixel.FormatU16, width, height)
	}
	if wa, ok := backend.(interface{ AttachWindow(*Window) }); ok {
		wa.AttachWindow(w)
	}
	return w
}

// SetPixelScale sets the integer block-magnification factor applied when
// presenting the canvas to the backend's physical surface.
func (w *Window) SetPixelScale(scale int) {
	if scale < 1 {
		scale = 1
	}
	w.pixelScale = scale
}

// Layout resolves every component's Location against the canvas bounds.
func (w *Window) Layout() {
	ApplyLayout(w.Root, w.canvas.Bounds())
}

// Render draws the tree into the logical canvas, then presents it to
// target (the backend's physical surface) via integer block
// magnification, or a direct copy when pixelScale is 1.
func (w *Window) Render(target pixel.Image) {
	pixel.FillRect(w.canvas, w.canvas.Bounds(), pixel.Color{})
	if w.useDepth {
		pixel.FillRect(w.depthBuffer, w.depthBuffer.Bounds(), pixel.Color{})
	}
	Draw(w.Root, w.canvas, pixel.Point{})
	if w.pixelScale <= 1 {
		pixel.CopyInto(target, w.canvas, 0, 0)
		return
	}
	pixel.BlockMagnifyLetterbox(target, w.canvas)
}

// TranslatePointerPosition maps a physical-surface pointer position back
// into logical canvas coordinates, inverting the block magnification
// Render applies, so mouse routing always operates in the canvas's own
// coordinate space regardless of window scale.
func (w *Window) TranslatePointerPosition(physicalX, physicalY int) pixel.Point {
	if w.pixelScale <= 1 {
		return pixel.Point{X: physicalX, Y: physicalY}
	}
	return pixel.Point{X: physicalX / w.pixelScale, Y: physicalY / w.pixelScale}
}

// HandleMouse translates a physical-space mouse event into canvas space
// and routes it through the component tree.
func (w *Window) HandleMouse(eventType MouseEventType, button MouseButton, physicalX, physicalY int) {
	SendMouseEvent(w.Root, MouseEvent{
		Type:     eventType,
		Button:   button,
		Position: w.TranslatePointerPosition(physicalX, physicalY),
	})
}

// HandleKeyboard routes a keyboard event to whichever component holds
// focus.
func (w *Window) HandleKeyboard(e KeyboardEvent) {
	SendKeyboardEvent(w.Root, e)
}
