package gui

import "github.com/dfpsr-go/softcanvas/pixel"

// Component is the capability interface every concrete widget (Button,
// Panel, Menu, ...) implements. Node embeds the shared tree/state/layout
// machinery; concrete types embed Node and override the drawing and event
// hooks they care about.
type Component interface {
	Base() *Node
	DrawSelf(target pixel.Image, offset pixel.Point)
	DrawOverlay(target pixel.Image, offset pixel.Point)
	ManagesChildren() bool

	OnMouseDown(e MouseEvent)
	OnMouseUp(e MouseEvent)
	OnMouseMove(e MouseEvent)
	OnMouseScroll(e MouseEvent)
	OnKeyDown(e KeyboardEvent)
	OnKeyUp(e KeyboardEvent)
	OnKeyType(e KeyboardEvent)
	OnStateChanged(previous, current State)
}

// Node holds the tree structure, layout, and state machine data shared by
// every component, mirroring the reference component base class.
type Node struct {
	self  Component
	class string
	name  string

	parent   *Node
	children []Component

	region   FlexRegion
	location pixel.Rect
	visible  bool

	currentState  State
	previousState State

	holdCount    int
	dragChild    Component
	pointInside  bool
}

// NewNode initializes a Node for embedding into a concrete component.
// self must be the concrete component embedding this Node, so default
// hooks can be overridden via the Component interface.
func NewNode(self Component, class string) Node {
	return Node{self: self, class: class, visible: true, region: FillRegion()}
}

func (n *Node) Base() *Node { return n }

func (n *Node) Class() string  { return n.class }
func (n *Node) Name() string   { return n.name }
func (n *Node) SetName(s string) { n.name = s }

func (n *Node) Visible() bool      { return n.visible }
func (n *Node) SetVisible(v bool)  { n.visible = v }

func (n *Node) Region() FlexRegion     { return n.region }
func (n *Node) SetRegion(r FlexRegion) { n.region = r }

// Location returns the last rectangle layout resolved for this component,
// in the coordinate space of the root.
func (n *Node) Location() pixel.Rect { return n.location }

func (n *Node) State() State { return n.currentState }

// AddChild appends child to this component's child list, taking ownership
// of its parent pointer.
func (n *Node) AddChild(child Component) {
	cb := child.Base()
	cb.parent = n
	n.children = append(n.children, child)
}

func (n *Node) Children() []Component { return n.children }
func (n *Node) Parent() *Node         { return n.parent }
func (n *Node) ChildCount() int       { return len(n.children) }

// ManagesChildren reports false by default: components with custom hit
// testing (such as Menu) override this to claim routing
// responsibility themselves instead of the default point-in-rectangle
// search.
func (n *Node) ManagesChildren() bool { return false }

func (n *Node) DrawOverlay(target pixel.Image, offset pixel.Point) {}
func (n *Node) OnMouseDown(e MouseEvent)                           {}
func (n *Node) OnMouseUp(e MouseEvent)                             {}
func (n *Node) OnMouseMove(e MouseEvent)                           {}
func (n *Node) OnMouseScroll(e MouseEvent)                         {}
func (n *Node) OnKeyDown(e KeyboardEvent)                          {}
func (n *Node) OnKeyUp(e KeyboardEvent)                            {}
func (n *Node) OnKeyType(e KeyboardEvent)                          {}
func (n *Node) OnStateChanged(previous, current State)             {}

func getRoot(n *Node) *Node {
	for n.parent != nil {
		n = n.parent
	}
	return n
}

// applyStateAndMask recursively ANDs keepMask into every component's
// current state, used to clear a whole class of bits (e.g. all hover bits)
// tree-wide before recomputing them.
func applyStateAndMask(n *Node, keepMask State) {
	n.currentState &= keepMask
	for _, c := range n.children {
		applyStateAndMask(c.Base(), keepMask)
	}
}

// addStateBits ORs bits into n's current state. If unique is true, those
// bits are first cleared from the entire tree, so only one component can
// hold them (used for focus and overlay, not hover).
func addStateBits(n *Node, bits State, unique bool) {
	root := getRoot(n)
	if unique {
		applyStateAndMask(root, ^bits)
	}
	n.currentState |= bits
	updateIndirectStates(root)
}

func removeStateBits(n *Node, bits State) {
	n.currentState &^= bits
	updateIndirectStates(getRoot(n))
}

// MakeFocused gives this component exclusive direct focus.
func (n *Node) MakeFocused() { addStateBits(n, StateFocusDirect, true) }

// Hover marks this component as directly hovered; unlike focus, more than
// one component can be flagged before a refresh sweep clears stale bits.
func (n *Node) Hover() { addStateBits(n, StateHoverDirect, false) }

// ShowOverlay marks this component as showing an overlay (e.g. an open
// dropdown), exclusively.
func (n *Node) ShowOverlay() { addStateBits(n, StateOverlayDirect, true) }

func (n *Node) HideOverlay() { removeStateBits(n, StateOverlayDirect) }

// updateIndirectStates recomputes every component's indirect bits from its
// children's direct-or-indirect bits, bottom-up, starting from root.
func updateIndirectStates(n *Node) State {
	var childStates State
	for _, c := range n.children {
		childStates |= updateIndirectStates(c.Base())
	}
	n.currentState = (n.currentState & stateDirectMask) | indirectFromChildren(childStates)
	return n.currentState
}

// sendNotifications walks the tree depth-first, invoking OnStateChanged on
// every component whose state changed since the last sweep. SendMouseEvent
// and SendKeyboardEvent call this once, from the root, after routing each
// event.
func sendNotifications(c Component) {
	n := c.Base()
	for _, child := range n.children {
		sendNotifications(child)
	}
	if n.currentState != n.previousState {
		c.OnStateChanged(n.previousState, n.currentState)
		n.previousState = n.currentState
	}
}
