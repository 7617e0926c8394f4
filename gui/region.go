package gui

import "github.com/dfpsr-go/softcanvas/pixel"

// Edge places one side of a FlexRegion as ratio*parentSize + offset, so a
// component can be pinned a fixed number of pixels from an edge, placed at
// a fraction of the parent, or both (e.g. "always 8px from the right" is
// Ratio=1, Offset=-8).
type Edge struct {
	Ratio  float64
	Offset float64
}

// FlexRegion positions a component's four edges relative to its parent's
// resolved rectangle.
type FlexRegion struct {
	Left, Top, Right, Bottom Edge
}

// FixedRegion returns a region pinned at (x, y) with a constant size,
// ignoring the parent's size entirely.
func FixedRegion(x, y, width, height int) FlexRegion {
	return FlexRegion{
		Left:   Edge{0, float64(x)},
		Top:    Edge{0, float64(y)},
		Right:  Edge{0, float64(x + width)},
		Bottom: Edge{0, float64(y + height)},
	}
}

// FillRegion returns a region that exactly fills its parent.
func FillRegion() FlexRegion {
	return FlexRegion{
		Left:   Edge{0, 0},
		Top:    Edge{0, 0},
		Right:  Edge{1, 0},
		Bottom: Edge{1, 0},
	}
}

// Resolve computes the pixel rectangle a region occupies within a parent
// rectangle of the given size.
func (r FlexRegion) Resolve(parent pixel.Rect) pixel.Rect {
	w := float64(parent.Width())
	h := float64(parent.Height())
	left := int(r.Left.Ratio*w + r.Left.Offset)
	top := int(r.Top.Ratio*h + r.Top.Offset)
	right := int(r.Right.Ratio*w + r.Right.Offset)
	bottom := int(r.Bottom.Ratio*h + r.Bottom.Offset)
	if right < left {
		right = left
	}
	if bottom < top {
		bottom = top
	}
	return pixel.Rect{
		Left:   parent.Left + left,
		Top:    parent.Top + top,
		Right:  parent.Left + right,
		Bottom: parent.Top + bottom,
	}
}
