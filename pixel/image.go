package pixel

import "fmt"

// Image is a reference-counted reader/writer of a rectangular region of a
// shared byte buffer, per the data model's image handle. The zero value is
// not a valid image; use New, NewAligned, or Crop.
type Image struct {
	buf             *buffer
	byteStartOffset int
	width, height   int
	stride          int
	format          Format
	packOrder       PackOrder
	isSubImage      bool
}

// IsValid reports whether the handle refers to a real allocation. Failed
// constructors (bad dimensions) return the zero Image, for which IsValid is
// false, matching the teacher's empty-handle-on-precondition-violation
// convention (spec §7).
func (im Image) IsValid() bool { return im.buf != nil }

func dimensionsOK(width, height int) bool {
	return width > 0 && height > 0 && width <= MaxImageDimension && height <= MaxImageDimension
}

// New allocates a zero-filled image of the given format and dimensions,
// with rows packed tightly (stride == width*pixelSize). Returns the zero
// Image if the dimensions are non-positive or exceed MaxImageDimension.
func New(format Format, width, height int) Image {
	if !dimensionsOK(width, height) {
		return Image{}
	}
	pixelSize := format.Size()
	stride := width * pixelSize
	return Image{
		buf:       newBuffer(stride * height),
		width:     width,
		height:    height,
		stride:    stride,
		format:    format,
		packOrder: PackOrderRGBA,
	}
}

// NewAligned allocates a zero-filled image whose stride is rounded up to a
// multiple of the platform SIMD alignment (16 bytes), per the stride
// invariant for images created through the aligned constructor.
func NewAligned(format Format, width, height int) Image {
	if !dimensionsOK(width, height) {
		return Image{}
	}
	pixelSize := format.Size()
	minStride := width * pixelSize
	stride := ((minStride + simdAlignment - 1) / simdAlignment) * simdAlignment
	return Image{
		buf:       newBuffer(stride * height),
		width:     width,
		height:    height,
		stride:    stride,
		format:    format,
		packOrder: PackOrderRGBA,
	}
}

// NewRGBA allocates an RGBA8 image with the given channel pack order.
func NewRGBA(width, height int, order PackOrder) Image {
	im := New(FormatRGBA8, width, height)
	if !im.IsValid() {
		return im
	}
	im.packOrder = order
	return im
}

// WrapRGBA adopts an externally-owned RGBA8 byte slice (tightly packed,
// RGBA order) without copying it, calling onFree (if non-nil) when
// Release is called. Used by window backends to present a backend-owned
// canvas (§4.10) without an extra copy.
func WrapRGBA(data []byte, width, height int, onFree func()) Image {
	if !dimensionsOK(width, height) || len(data) < width*height*4 {
		return Image{}
	}
	return Image{
		buf:       wrapBuffer(data, onFree),
		width:     width,
		height:    height,
		stride:    width * 4,
		format:    FormatRGBA8,
		packOrder: PackOrderRGBA,
	}
}

// Release invokes the buffer's destructor slot, if any. Safe to call more
// than once or on sub-images (sub-images extend the parent allocation's
// lifetime but releasing a sub-image view has no effect on the parent).
func (im Image) Release() {
	if im.buf != nil && !im.isSubImage {
		im.buf.release()
	}
}

func (im Image) Width() int        { return im.width }
func (im Image) Height() int       { return im.height }
func (im Image) Stride() int       { return im.stride }
func (im Image) Format() Format    { return im.format }
func (im Image) PackOrder() PackOrder { return im.packOrder }
func (im Image) IsSubImage() bool  { return im.isSubImage }
func (im Image) PixelSize() int    { return im.format.Size() }

// Bounds returns the image's own rectangle, (0,0)-(width,height).
func (im Image) Bounds() Rect {
	return Rect{Left: 0, Top: 0, Right: im.width, Bottom: im.height}
}

// Crop returns a sub-image view of the rectangle r intersected with the
// image's own bounds. The sub-image never exposes padding bytes belonging
// to another view, and it extends this image's buffer lifetime. Returns
// the zero Image if the intersection is empty.
func (im Image) Crop(r Rect) Image {
	r = r.Intersect(im.Bounds())
	if r.Empty() {
		return Image{}
	}
	out := im
	out.width = r.Width()
	out.height = r.Height()
	out.byteStartOffset = im.byteStartOffset + r.Top*im.stride + r.Left*im.PixelSize()
	out.isSubImage = true
	return out
}

// Clone copies the image's pixels into a new, tightly-packed allocation,
// discarding any padding. RGBA8 sources are converted to canonical RGBA
// pack order in the clone, per the lifecycle rule that cloning discards
// pack-order variants.
func (im Image) Clone() Image {
	if !im.IsValid() {
		return Image{}
	}
	dst := New(im.format, im.width, im.height)
	CopyInto(dst, im, 0, 0)
	return dst
}

// RowPointer returns a SafePointer to the start of row y (in the image's
// local coordinate system).
func (im Image) RowPointer(y int) SafePointer {
	return NewSafePointer(im.buf.data, im.byteStartOffset+y*im.stride, im.PixelSize())
}

// PixelPointer returns a SafePointer to pixel (x, y). Callers are expected
// to have already validated the coordinate; this does not clip.
func (im Image) PixelPointer(x, y int) SafePointer {
	return NewSafePointer(im.buf.data, im.byteStartOffset+y*im.stride+x*im.PixelSize(), im.PixelSize())
}

func (im Image) String() string {
	return fmt.Sprintf("Image(%s %dx%d stride=%d pack=%d sub=%v)", im.format, im.width, im.height, im.stride, im.packOrder, im.isSubImage)
}
