package gui

import "github.com/dfpsr-go/softcanvas/pixel"

// Key enumerates logical keyboard keys, independent of any backend's own
// key codes.
type Key int

const (
	KeyUnhandled Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyPageUp
	KeyPageDown
	KeyControl
	KeyShift
	KeyAlt
	KeyEscape
	KeyPause
	KeySpace
	KeyTab
	KeyReturn
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyHome
	KeyEnd
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

// KeyboardEventType distinguishes a raw key transition from a typed
// character: KeyDown/KeyUp fire for every physical key, KeyType fires only
// when the platform resolves a printable rune (accounting for layout and
// modifiers).
type KeyboardEventType int

const (
	KeyEventDown KeyboardEventType = iota
	KeyEventUp
	KeyEventType
)

// KeyboardEvent is delivered to the component holding direct focus on
// every key transition or typed character; ancestors holding indirect
// focus only pass it down the focus trail.
type KeyboardEvent struct {
	Type      KeyboardEventType
	Character rune
	Key       Key
}

// MouseButton enumerates which button (if any) a mouse event concerns.
type MouseButton int

const (
	MouseNone MouseButton = iota
	MouseLeft
	MouseRight
	MouseMiddle
	MouseScrollUp
	MouseScrollDown
)

// MouseEventType distinguishes the four kinds of pointer activity the
// routing algorithm understands.
type MouseEventType int

const (
	MouseDown MouseEventType = iota
	MouseUp
	MouseMove
	MouseScroll
)

// MouseEvent carries a pointer position. While sendMouseEvent recurses down
// the tree, Position stays in root-relative coordinates; deliverMouseEvent
// translates it into the receiving component's local space before calling
// its On* hook.
type MouseEvent struct {
	Type     MouseEventType
	Button   MouseButton
	Position pixel.Point
}

func (e MouseEvent) offsetBy(dx, dy int) MouseEvent {
	e.Position.X += dx
	e.Position.Y += dy
	return e
}

// WindowEventType distinguishes the two window-level notifications a root
// component can receive.
type WindowEventType int

const (
	WindowClose WindowEventType = iota
	WindowRedraw
)

// WindowEvent notifies the root of a close request or a resize requiring
// a layout pass, carrying the window's new size for WindowRedraw.
type WindowEvent struct {
	Type          WindowEventType
	Width, Height int
}
