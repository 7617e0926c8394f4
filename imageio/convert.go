package imageio

import (
	"image"
	"image/color"

	"github.com/dfpsr-go/softcanvas/internal/vstack"
	"github.com/dfpsr-go/softcanvas/pixel"
)

// pixelView adapts a pixel.Image to image.Image without copying its
// pixels, so png.Encode can walk it at its native stride (including a
// sub-image's padding-free cropped view) instead of forcing a
// materialization pass the way the other codecs need.
type pixelView struct{ im pixel.Image }

func (v pixelView) ColorModel() color.Model { return color.RGBAModel }

func (v pixelView) Bounds() image.Rectangle {
	return image.Rect(0, 0, v.im.Width(), v.im.Height())
}

func (v pixelView) At(x, y int) color.Color {
	c := v.im.ReadColor(x, y)
	return color.RGBA{saturateByte(c.R), saturateByte(c.G), saturateByte(c.B), saturateByte(c.A)}
}

func saturateByte(v int32) byte {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return byte(v)
}

// unpadRGBA materializes im into a tightly packed *image.RGBA, borrowing
// its backing storage from a vstack.Stack rather than the heap: the
// buffer only needs to live for the duration of a single encode call,
// which is exactly the LIFO lifetime vstack is built for. The returned
// release func must be called after the encoder is done with the image.
func unpadRGBA(im pixel.Image) (*image.RGBA, func()) {
	w, h := im.Width(), im.Height()
	stack := vstack.Borrow()
	buf, mark := stack.Push(w * h * 4)
	out := &image.RGBA{Pix: buf, Stride: w * 4, Rect: image.Rect(0, 0, w, h)}
	for y := 0; y < h; y++ {
		rowOff := y * out.Stride
		for x := 0; x < w; x++ {
			c := im.ReadColor(x, y)
			o := rowOff + x*4
			buf[o+0] = saturateByte(c.R)
			buf[o+1] = saturateByte(c.G)
			buf[o+2] = saturateByte(c.B)
			buf[o+3] = saturateByte(c.A)
		}
	}
	return out, func() {
		stack.Pop(mark)
		vstack.Release(stack)
	}
}

// fromGoImage copies a decoded image.Image into a freshly allocated RGBA8
// pixel.Image in canonical channel order. The *image.RGBA fast path
// avoids the color.Color boxing At() does for every pixel.
func fromGoImage(src image.Image) pixel.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	dst := pixel.New(pixel.FormatRGBA8, w, h)
	if !dst.IsValid() {
		return dst
	}
	if rgba, ok := src.(*image.RGBA); ok {
		for y := 0; y < h; y++ {
			srcOff := (y) * rgba.Stride
			for x := 0; x < w; x++ {
				o := srcOff + x*4
				dst.WriteColor(x, y, pixel.RGBA(
					int32(rgba.Pix[o+0]),
					int32(rgba.Pix[o+1]),
					int32(rgba.Pix[o+2]),
					int32(rgba.Pix[o+3]),
				))
			}
		}
		return dst
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, bl, a := src.At(b.Min.X+x, b.Min.Y+y).RGBA()
			dst.WriteColor(x, y, pixel.RGBA(int32(r>>8), int32(g>>8), int32(bl>>8), int32(a>>8)))
		}
	}
	return dst
}
