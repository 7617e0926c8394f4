package gui

import "github.com/dfpsr-go/softcanvas/pixel"

// stubComponent renders the unknown-class placeholder: a solid red
// rectangle with its class name printed in the corner. ListBox and TextBox
// register as stubs rather than full implementations, the same fallback
// layout persistence uses for a class name it doesn't recognize at all
// (see LoadLayout).
type stubComponent struct {
	Node
	className string
}

func newStub(className string) *stubComponent {
	s := &stubComponent{className: className}
	s.Node = NewNode(s, className)
	return s
}

func (s *stubComponent) DrawSelf(target pixel.Image, offset pixel.Point) {
	pixel.FillRect(target, s.location, currentPalette.PlaceholderColor)
	DrawText(target, s.location.Left+2, s.location.Top+2, s.className, pixel.RGBA(0, 0, 0, 255))
}
func (s *stubComponent) DrawOverlay(target pixel.Image, offset pixel.Point) {}
func (s *stubComponent) ManagesChildren() bool                              { return false }
func (s *stubComponent) OnMouseDown(e MouseEvent)                           {}
func (s *stubComponent) OnMouseUp(e MouseEvent)                             {}
func (s *stubComponent) OnMouseMove(e MouseEvent)                           {}
func (s *stubComponent) OnMouseScroll(e MouseEvent)                         {}
func (s *stubComponent) OnKeyDown(e KeyboardEvent)                          {}
func (s *stubComponent) OnKeyUp(e KeyboardEvent)                            {}
func (s *stubComponent) OnKeyType(e KeyboardEvent)                          {}
func (s *stubComponent) OnStateChanged(previous, current State)             {}

// NewListBox returns a placeholder ListBox: the class is registered and
// participates in layout and persistence, but renders only the
// unknown-class placeholder. A scrolling, selectable list view is outside
// the invariants and testable properties this module commits to.
func NewListBox() Component { return newStub("ListBox") }

// NewTextBox returns a placeholder TextBox for the same reason as
// NewListBox: registered, laid out, and persisted, but not a functioning
// text editor.
func NewTextBox() Component { return newStub("TextBox") }
