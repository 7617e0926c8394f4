package gui

import "github.com/dfpsr-go/softcanvas/pixel"

// ApplyLayout recomputes a component's Location from its FlexRegion,
// recursing into children with their resolved rectangle as the new parent
// space. An invisible component still gets its own Location resolved, but
// its children are not laid out, and Draw skips it and its subtree.
func ApplyLayout(c Component, parent pixel.Rect) {
	n := c.Base()
	n.location = n.region.Resolve(parent)
	if !n.visible {
		return
	}
	for _, child := range n.children {
		ApplyLayout(child, n.location)
	}
}

// Draw renders the component tree starting at c, which is assumed to
// already have its Location computed by ApplyLayout. offset is the
// top-left of the destination image this subtree draws relative to
// (ordinarily pixel.Point{0,0} at the root, since Location is already
// root-relative).
func Draw(c Component, target pixel.Image, offset pixel.Point) {
	n := c.Base()
	if !n.visible || n.location.Empty() {
		return
	}
	c.DrawSelf(target, offset)
	for _, child := range n.children {
		Draw(child, target, offset)
	}
	if n.currentState.ShowingOverlay() {
		c.DrawOverlay(target, offset)
	}
}

// getDirectChild returns the first (topmost, last-added) child whose
// Location contains the given root-relative point, or nil.
func getDirectChild(n *Node, point pixel.Point) Component {
	for i := len(n.children) - 1; i >= 0; i-- {
		child := n.children[i]
		cb := child.Base()
		if cb.visible && cb.location.Contains(point.X, point.Y) {
			return child
		}
	}
	return nil
}

// OverlayBounds is an optional interface a component implements when its
// overlay draws somewhere other than its own Location (e.g. a dropdown
// list that appears below a closed menu header). Components that don't
// implement it are assumed to hit-test their overlay against their own
// Location.
type OverlayBounds interface {
	OverlayBounds() pixel.Rect
}

func overlayHitRect(c Component) pixel.Rect {
	if ob, ok := c.(OverlayBounds); ok {
		return ob.OverlayBounds()
	}
	return c.Base().location
}

// getTopmostOverlay searches the tree rooted at c (in reverse draw order,
// so the most recently opened overlay wins) for the first component
// showing an overlay whose overlay region contains point.
func getTopmostOverlay(c Component, point pixel.Point) Component {
	n := c.Base()
	for i := len(n.children) - 1; i >= 0; i-- {
		if found := getTopmostOverlay(n.children[i], point); found != nil {
			return found
		}
	}
	if n.currentState.has(StateOverlayDirect) && overlayHitRect(c).Contains(point.X, point.Y) {
		return c
	}
	return nil
}

// SendMouseEvent routes a mouse event starting at the root. Call this only
// on the root component; it recurses internally.
func SendMouseEvent(root Component, e MouseEvent) {
	sendMouseEvent(root, e, false)
}

// sendMouseEvent recurses down the tree looking for the component that
// should actually receive the event. e.Position is always in root-relative
// absolute coordinates; only deliverMouseEvent translates it into the
// receiving component's local space, since hit testing against Location
// (also root-relative) needs no per-level offset bookkeeping.
func sendMouseEvent(c Component, e MouseEvent, recursive bool) {
	n := c.Base()
	if !recursive {
		applyStateAndMask(n, ^stateHoverMask)
	}

	var target Component
	switch {
	case e.Type == MouseDown || n.dragChild == nil:
		if !recursive {
			if ov := getTopmostOverlay(c, e.Position); ov != nil {
				target = ov
			}
		}
		if target == nil && !c.ManagesChildren() {
			target = getDirectChild(n, e.Position)
		}
	default:
		target = n.dragChild
	}

	if e.Type == MouseDown && target != nil {
		target.Base().MakeFocused()
		n.dragChild = target
		n.holdCount++
	}

	if target != nil {
		sendMouseEvent(target, e, true)
	} else {
		n.Hover()
		deliverMouseEvent(c, e)
	}

	if e.Type == MouseUp {
		n.holdCount--
		if n.holdCount <= 0 {
			n.holdCount = 0
			n.dragChild = nil
		}
	}

	if !recursive {
		sendNotifications(c)
	}
}

func deliverMouseEvent(c Component, e MouseEvent) {
	loc := c.Base().location
	e = e.offsetBy(-loc.Left, -loc.Top)
	switch e.Type {
	case MouseDown:
		c.OnMouseDown(e)
	case MouseUp:
		c.OnMouseUp(e)
	case MouseMove:
		c.OnMouseMove(e)
	case MouseScroll:
		c.OnMouseScroll(e)
	}
}

// SendKeyboardEvent routes a keyboard event to whichever component holds
// direct focus, walking down through any ancestor holding indirect focus.
// Call this only on the root component.
func SendKeyboardEvent(root Component, e KeyboardEvent) {
	sendKeyboardEvent(root, e)
	sendNotifications(root)
}

func sendKeyboardEvent(c Component, e KeyboardEvent) {
	n := c.Base()
	for _, child := range n.children {
		cb := child.Base()
		if cb.currentState.has(StateFocusDirect) {
			deliverKeyboardEvent(child, e)
		} else if cb.currentState.has(StateFocusIndirect) {
			sendKeyboardEvent(child, e)
		}
	}
}

func deliverKeyboardEvent(c Component, e KeyboardEvent) {
	switch e.Type {
	case KeyEventDown:
		c.OnKeyDown(e)
	case KeyEventUp:
		c.OnKeyUp(e)
	case KeyEventType:
		c.OnKeyType(e)
	}
}
