package imageio

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/dfpsr-go/softcanvas/internal/vstack"
	"github.com/dfpsr-go/softcanvas/pixel"
)

// TGA has no maintained Go decoder in the example ecosystem, so this is a
// small hand-rolled reader/writer covering the one variant anything
// actually produces today: uncompressed (type 2) or run-length encoded
// (type 10) 32-bit true-color, top-to-bottom row order.

const tgaHeaderSize = 18

func encodeTGA(w io.Writer, im pixel.Image) error {
	width, height := im.Width(), im.Height()
	if width <= 0 || height <= 0 || width > 0xffff || height > 0xffff {
		return fmt.Errorf("imageio: tga dimensions out of range: %dx%d", width, height)
	}
	var header [tgaHeaderSize]byte
	header[2] = 2 // uncompressed true-color
	binary.LittleEndian.PutUint16(header[12:], uint16(width))
	binary.LittleEndian.PutUint16(header[14:], uint16(height))
	header[16] = 32   // bits per pixel
	header[17] = 0x28 // top-left origin, 8 bits of alpha in the descriptor
	if _, err := w.Write(header[:]); err != nil {
		return err
	}

	stack := vstack.Borrow()
	defer vstack.Release(stack)
	row, mark := stack.Push(width * 4)
	defer stack.Pop(mark)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := im.ReadColor(x, y)
			o := x * 4
			row[o+0] = saturateByte(c.B)
			row[o+1] = saturateByte(c.G)
			row[o+2] = saturateByte(c.R)
			row[o+3] = saturateByte(c.A)
		}
		if _, err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func decodeTGA(r io.Reader) (pixel.Image, error) {
	var header [tgaHeaderSize]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return pixel.Image{}, fmt.Errorf("imageio: tga header: %w", err)
	}
	imageType := header[2]
	if imageType != 2 && imageType != 10 {
		return pixel.Image{}, fmt.Errorf("imageio: unsupported tga image type %d", imageType)
	}
	idLength := header[0]
	width := int(binary.LittleEndian.Uint16(header[12:]))
	height := int(binary.LittleEndian.Uint16(header[14:]))
	bpp := header[16]
	if bpp != 24 && bpp != 32 {
		return pixel.Image{}, fmt.Errorf("imageio: unsupported tga bit depth %d", bpp)
	}
	pixelSize := int(bpp / 8)
	topDown := header[17]&0x20 != 0

	if idLength > 0 {
		if _, err := io.CopyN(io.Discard, r, int64(idLength)); err != nil {
			return pixel.Image{}, err
		}
	}

	dst := pixel.New(pixel.FormatRGBA8, width, height)
	if !dst.IsValid() {
		return dst, fmt.Errorf("imageio: invalid tga dimensions %dx%d", width, height)
	}

	readPixel := func() (pixel.Color, error) {
		var px [4]byte
		if _, err := io.ReadFull(r, px[:pixelSize]); err != nil {
			return pixel.Color{}, err
		}
		a := int32(255)
		if pixelSize == 4 {
			a = int32(px[3])
		}
		return pixel.RGBA(int32(px[2]), int32(px[1]), int32(px[0]), a), nil
	}

	for row := 0; row < height; row++ {
		y := row
		if !topDown {
			y = height - 1 - row
		}
		x := 0
		if imageType == 2 {
			for ; x < width; x++ {
				c, err := readPixel()
				if err != nil {
					return pixel.Image{}, fmt.Errorf("imageio: tga pixel data: %w", err)
				}
				dst.WriteColor(x, y, c)
			}
			continue
		}
		for x < width {
			var packet [1]byte
			if _, err := io.ReadFull(r, packet[:]); err != nil {
				return pixel.Image{}, fmt.Errorf("imageio: tga rle packet: %w", err)
			}
			count := int(packet[0]&0x7f) + 1
			if packet[0]&0x80 != 0 {
				c, err := readPixel()
				if err != nil {
					return pixel.Image{}, fmt.Errorf("imageio: tga rle run: %w", err)
				}
				for i := 0; i < count && x < width; i++ {
					dst.WriteColor(x, y, c)
					x++
				}
			} else {
				for i := 0; i < count && x < width; i++ {
					c, err := readPixel()
					if err != nil {
						return pixel.Image{}, fmt.Errorf("imageio: tga raw run: %w", err)
					}
					dst.WriteColor(x, y, c)
					x++
				}
			}
		}
	}
	return dst, nil
}
