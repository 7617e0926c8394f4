package gui

import (
	"testing"

	"github.com/dfpsr-go/softcanvas/pixel"
)

func buildTestTree() (root *Panel, a, b *Button) {
	root = NewPanel()
	a = NewButton("A")
	b = NewButton("B")
	a.SetRegion(FixedRegion(0, 0, 50, 20))
	b.SetRegion(FixedRegion(50, 0, 50, 20))
	root.AddChild(a)
	root.AddChild(b)
	ApplyLayout(root, pixel.NewRect(0, 0, 100, 20))
	return
}

func TestMouseDownFocusesDirectChild(t *testing.T) {
	root, a, b := buildTestTree()
	SendMouseEvent(root, MouseEvent{Type: MouseDown, Button: MouseLeft, Position: pixel.Point{X: 10, Y: 5}})
	if !a.State().OwnsFocus() {
		t.Fatal("expected button A to own focus after click inside its bounds")
	}
	if b.State().OwnsFocus() {
		t.Fatal("button B should not have focus")
	}
	if !root.State().IsFocused() {
		t.Fatal("expected root to report indirect focus from a focused descendant")
	}
}

func TestMouseCaptureTracksDragAcrossMove(t *testing.T) {
	root, a, _ := buildTestTree()
	SendMouseEvent(root, MouseEvent{Type: MouseDown, Button: MouseLeft, Position: pixel.Point{X: 10, Y: 5}})
	// Move far outside A's bounds while still "holding" the mouse button.
	SendMouseEvent(root, MouseEvent{Type: MouseMove, Position: pixel.Point{X: 90, Y: 5}})
	if !a.armed {
		t.Fatal("expected button A to still be armed: capture should route moves to it, not button B")
	}
	SendMouseEvent(root, MouseEvent{Type: MouseUp, Button: MouseLeft, Position: pixel.Point{X: 90, Y: 5}})
	if a.armed {
		t.Fatal("expected release to disarm the captured button")
	}
}

func TestButtonFiresOnReleaseInsideBounds(t *testing.T) {
	root, a, _ := buildTestTree()
	fired := false
	a.Pressed = func() { fired = true }
	SendMouseEvent(root, MouseEvent{Type: MouseDown, Button: MouseLeft, Position: pixel.Point{X: 10, Y: 5}})
	SendMouseEvent(root, MouseEvent{Type: MouseUp, Button: MouseLeft, Position: pixel.Point{X: 10, Y: 5}})
	if !fired {
		t.Fatal("expected button to fire Pressed on mouse up while armed")
	}
}

func TestKeyboardEventKeepsFocusOnClickedComponent(t *testing.T) {
	root, a, _ := buildTestTree()
	var typed rune
	// Button has no key handling to observe, so this does not check
	// delivery itself: it clicks A, routes a typed-character event through
	// the focused tree, and checks that A still holds direct focus.
	SendMouseEvent(root, MouseEvent{Type: MouseDown, Button: MouseLeft, Position: pixel.Point{X: 10, Y: 5}})
	SendKeyboardEvent(root, KeyboardEvent{Type: KeyEventType, Character: 'x'})
	if !a.State().OwnsFocus() {
		t.Fatal("expected A to still own focus after a keyboard event")
	}
	_ = typed
}

func TestUpdateIndirectStatesPropagatesHover(t *testing.T) {
	root, a, _ := buildTestTree()
	a.Hover()
	if !root.State().IsHovered() {
		t.Fatal("expected root to report indirect hover from a hovered child")
	}
	if !a.State().has(StateHoverDirect) {
		t.Fatal("expected A to carry the direct hover bit")
	}
}

func TestMenuOpensAndClosesOnClick(t *testing.T) {
	menu := NewMenu("File", []MenuItem{{Text: "Open"}, {Text: "Save"}})
	menu.SetRegion(FixedRegion(0, 0, 40, 20))
	root := NewPanel()
	root.AddChild(menu)
	ApplyLayout(root, pixel.NewRect(0, 0, 100, 100))

	SendMouseEvent(root, MouseEvent{Type: MouseDown, Position: pixel.Point{X: 5, Y: 5}})
	if !menu.State().has(StateOverlayDirect) {
		t.Fatal("expected first click to open the menu overlay")
	}
	selected := false
	menu.Items[0].Selected = func() { selected = true }
	// Click inside the overlay's first row.
	SendMouseEvent(root, MouseEvent{Type: MouseDown, Position: pixel.Point{X: 5, Y: 25}})
	if !selected {
		t.Fatal("expected clicking the first overlay row to fire its Selected callback")
	}
	if menu.State().has(StateOverlayDirect) {
		t.Fatal("expected overlay to close after selecting an item")
	}
}
