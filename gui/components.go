package gui

import "github.com/dfpsr-go/softcanvas/pixel"

func zeroImage() pixel.Image { return pixel.Image{} }

// Panel is a plain container: it draws a themed background behind its
// children and otherwise has no behavior of its own.
type Panel struct {
	Node
}

func NewPanel() *Panel {
	p := &Panel{}
	p.Node = NewNode(p, "Panel")
	return p
}

func (p *Panel) DrawSelf(target pixel.Image, offset pixel.Point) {
	im := themeClassImage("Panel", p.location, false, false, false)
	pixel.CopyInto(target, im, p.location.Left, p.location.Top)
}
func (p *Panel) DrawOverlay(target pixel.Image, offset pixel.Point) {}
func (p *Panel) ManagesChildren() bool                              { return false }
func (p *Panel) OnMouseDown(e MouseEvent)                           {}
func (p *Panel) OnMouseUp(e MouseEvent)                             {}
func (p *Panel) OnMouseMove(e MouseEvent)                           {}
func (p *Panel) OnMouseScroll(e MouseEvent)                         {}
func (p *Panel) OnKeyDown(e KeyboardEvent)                          {}
func (p *Panel) OnKeyUp(e KeyboardEvent)                            {}
func (p *Panel) OnKeyType(e KeyboardEvent)                          {}
func (p *Panel) OnStateChanged(previous, current State)             {}

// Label draws static text, word-wrapped to its Location's width, with no
// interaction.
type Label struct {
	Node
	Text string
}

func NewLabel(text string) *Label {
	l := &Label{Text: text}
	l.Node = NewNode(l, "Label")
	return l
}

func (l *Label) DrawSelf(target pixel.Image, offset pixel.Point) {
	DrawTextWrapped(target, l.location, l.Text, currentPalette.TextColor)
}
func (l *Label) DrawOverlay(target pixel.Image, offset pixel.Point) {}
func (l *Label) ManagesChildren() bool                              { return false }
func (l *Label) OnMouseDown(e MouseEvent)                           {}
func (l *Label) OnMouseUp(e MouseEvent)                             {}
func (l *Label) OnMouseMove(e MouseEvent)                           {}
func (l *Label) OnMouseScroll(e MouseEvent)                         {}
func (l *Label) OnKeyDown(e KeyboardEvent)                          {}
func (l *Label) OnKeyUp(e KeyboardEvent)                            {}
func (l *Label) OnKeyType(e KeyboardEvent)                          {}
func (l *Label) OnStateChanged(previous, current State)             {}

// Button is a pressable control that fires Pressed when released while
// still hovered, matching a conventional click gesture (press inside,
// release inside).
type Button struct {
	Node
	Text    string
	Pressed func()

	armed bool
}

func NewButton(text string) *Button {
	b := &Button{Text: text}
	b.Node = NewNode(b, "Button")
	return b
}

func (b *Button) DrawSelf(target pixel.Image, offset pixel.Point) {
	hover := b.currentState.has(StateHoverDirect)
	focused := b.currentState.has(StateFocusDirect)
	im := themeClassImage("Button", b.location, b.armed, focused, hover)
	pixel.CopyInto(target, im, b.location.Left, b.location.Top)
	DrawText(target, b.location.Left+4, b.location.Top+4, b.Text, currentPalette.TextColor)
}
func (b *Button) DrawOverlay(target pixel.Image, offset pixel.Point) {}
func (b *Button) ManagesChildren() bool                              { return false }

func (b *Button) OnMouseDown(e MouseEvent) {
	if e.Button == MouseLeft {
		b.armed = true
	}
}
func (b *Button) OnMouseUp(e MouseEvent) {
	if e.Button == MouseLeft && b.armed {
		b.armed = false
		inside := e.Position.X >= 0 && e.Position.Y >= 0 &&
			e.Position.X < b.location.Width() && e.Position.Y < b.location.Height()
		if inside && b.Pressed != nil {
			b.Pressed()
		}
	}
}
func (b *Button) OnMouseMove(e MouseEvent)               {}
func (b *Button) OnMouseScroll(e MouseEvent)             {}
func (b *Button) OnKeyDown(e KeyboardEvent)              {}
func (b *Button) OnKeyUp(e KeyboardEvent)                {}
func (b *Button) OnKeyType(e KeyboardEvent)              {}
func (b *Button) OnStateChanged(previous, current State) {
	if !current.has(StateHoverDirect) {
		b.armed = false
	}
}

// Picture displays a static image scaled to fill its region.
type Picture struct {
	Node
	Image pixel.Image
}

func NewPicture(img pixel.Image) *Picture {
	p := &Picture{Image: img}
	p.Node = NewNode(p, "Picture")
	return p
}

func (p *Picture) DrawSelf(target pixel.Image, offset pixel.Point) {
	if !p.Image.IsValid() {
		return
	}
	dst := target.Crop(p.location)
	if !dst.IsValid() {
		return
	}
	pixel.ResizeNearest(dst, p.Image)
}
func (p *Picture) DrawOverlay(target pixel.Image, offset pixel.Point) {}
func (p *Picture) ManagesChildren() bool                              { return false }
func (p *Picture) OnMouseDown(e MouseEvent)                           {}
func (p *Picture) OnMouseUp(e MouseEvent)                             {}
func (p *Picture) OnMouseMove(e MouseEvent)                           {}
func (p *Picture) OnMouseScroll(e MouseEvent)                         {}
func (p *Picture) OnKeyDown(e KeyboardEvent)                          {}
func (p *Picture) OnKeyUp(e KeyboardEvent)                            {}
func (p *Picture) OnKeyType(e KeyboardEvent)                          {}
func (p *Picture) OnStateChanged(previous, current State)             {}

// Toolbar draws a themed strip behind its children. ApplyLayout places its
// children by their own regions like any other container;
// ArrangeToolbarChildren re-lays them out in a horizontal row of
// equal-width slots when called. Children still receive normal routing
// since Toolbar does not manage children itself.
type Toolbar struct {
	Node
}

func NewToolbar() *Toolbar {
	t := &Toolbar{}
	t.Node = NewNode(t, "Toolbar")
	return t
}

func (t *Toolbar) DrawSelf(target pixel.Image, offset pixel.Point) {
	im := themeClassImage("Toolbar", t.location, false, false, false)
	pixel.CopyInto(target, im, t.location.Left, t.location.Top)
}
func (t *Toolbar) DrawOverlay(target pixel.Image, offset pixel.Point) {}
func (t *Toolbar) ManagesChildren() bool                              { return false }
func (t *Toolbar) OnMouseDown(e MouseEvent)                           {}
func (t *Toolbar) OnMouseUp(e MouseEvent)                             {}
func (t *Toolbar) OnMouseMove(e MouseEvent)                           {}
func (t *Toolbar) OnMouseScroll(e MouseEvent)                         {}
func (t *Toolbar) OnKeyDown(e KeyboardEvent)                          {}
func (t *Toolbar) OnKeyUp(e KeyboardEvent)                            {}
func (t *Toolbar) OnKeyType(e KeyboardEvent)                          {}
func (t *Toolbar) OnStateChanged(previous, current State)             {}

// ArrangeToolbarChildren lays out n equal-width children left to right
// inside the toolbar's already-resolved Location; call after ApplyLayout
// has positioned the toolbar itself but before drawing.
func ArrangeToolbarChildren(t *Toolbar) {
	n := len(t.children)
	if n == 0 {
		return
	}
	w := t.location.Width() / n
	for i, child := range t.children {
		cb := child.Base()
		cb.location = pixel.NewRect(t.location.Left+i*w, t.location.Top, w, t.location.Height())
		ApplyLayout(child, cb.location)
	}
}

// MenuItem is one selectable row of a Menu overlay.
type MenuItem struct {
	Text     string
	Selected func()
}

// Menu is an overlay component: normally collapsed to a single button-like
// header, it shows a dropdown list of MenuItems while ShowingOverlay is
// true. It manages its own children's hit testing since the overlay's
// geometry is computed dynamically rather than being an ordinary child
// rectangle.
type Menu struct {
	Node
	Header string
	Items  []MenuItem

	itemHeight int
	hoverIndex int
}

func NewMenu(header string, items []MenuItem) *Menu {
	m := &Menu{Header: header, Items: items, itemHeight: 20, hoverIndex: -1}
	m.Node = NewNode(m, "Menu")
	return m
}

func (m *Menu) ManagesChildren() bool { return true }

func (m *Menu) overlayRect() pixel.Rect {
	h := m.itemHeight * len(m.Items)
	return pixel.NewRect(m.location.Left, m.location.Bottom, m.location.Width(), h)
}

// OverlayBounds implements the OverlayBounds hit-testing interface, since
// the dropdown list appears below the menu's header rather than over it.
func (m *Menu) OverlayBounds() pixel.Rect { return m.overlayRect() }

func (m *Menu) DrawSelf(target pixel.Image, offset pixel.Point) {
	pressed := m.currentState.has(StateOverlayDirect)
	im := themeClassImage("Menu", m.location, pressed, false, false)
	pixel.CopyInto(target, im, m.location.Left, m.location.Top)
	DrawText(target, m.location.Left+4, m.location.Top+4, m.Header, currentPalette.TextColor)
}

func (m *Menu) DrawOverlay(target pixel.Image, offset pixel.Point) {
	r := m.overlayRect()
	bgList := themeClassImage("MenuList", r, false, false, false)
	pixel.CopyInto(target, bgList, r.Left, r.Top)
	for i, item := range m.Items {
		row := pixel.NewRect(r.Left, r.Top+i*m.itemHeight, r.Width(), m.itemHeight)
		rowImg := themeClassImage("MenuItem", row, false, false, i == m.hoverIndex)
		pixel.CopyInto(target, rowImg, row.Left, row.Top)
		DrawText(target, row.Left+4, row.Top+2, item.Text, currentPalette.TextColor)
	}
}

func (m *Menu) OnMouseDown(e MouseEvent) {
	if m.currentState.has(StateOverlayDirect) {
		r := m.overlayRect()
		rel := e.Position.Y - m.location.Height()
		if e.Position.X >= 0 && e.Position.X < r.Width() && rel >= 0 {
			idx := rel / m.itemHeight
			if idx < len(m.Items) {
				if f := m.Items[idx].Selected; f != nil {
					f()
				}
			}
		}
		m.HideOverlay()
	} else {
		m.ShowOverlay()
	}
}
func (m *Menu) OnMouseUp(e MouseEvent) {}
func (m *Menu) OnMouseMove(e MouseEvent) {
	if m.currentState.has(StateOverlayDirect) {
		r := m.overlayRect()
		rel := e.Position.Y - m.location.Height()
		if e.Position.X >= 0 && e.Position.X < r.Width() && rel >= 0 && rel/m.itemHeight < len(m.Items) {
			m.hoverIndex = rel / m.itemHeight
		} else {
			m.hoverIndex = -1
		}
	}
}
func (m *Menu) OnMouseScroll(e MouseEvent)             {}
func (m *Menu) OnKeyDown(e KeyboardEvent)              {}
func (m *Menu) OnKeyUp(e KeyboardEvent)                {}
func (m *Menu) OnKeyType(e KeyboardEvent)              {}
func (m *Menu) OnStateChanged(previous, current State) {}
