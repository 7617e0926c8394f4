// Package imageio plugs RGBA pixel.Images into the host's actual image
// file formats. The rendering core never imports this package; call sites
// that need to load a texture from disk or save a screenshot do, keeping
// the codec choice (and its third-party decoders) out of the hot path.
package imageio

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"

	"github.com/dfpsr-go/softcanvas/internal/diag"
	"github.com/dfpsr-go/softcanvas/pixel"
)

// Format identifies one of the recognized file formats.
type Format int

const (
	FormatPNG Format = iota
	FormatJPEG
	FormatBMP
	FormatTGA
)

// DefaultQuality is the JPEG/TGA-adjacent "encode quality" used when the
// caller doesn't care to pick one.
const DefaultQuality = 100

func formatFromExt(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG, true
	case ".jpg", ".jpeg":
		return FormatJPEG, true
	case ".bmp":
		return FormatBMP, true
	case ".tga", ".targa":
		return FormatTGA, true
	default:
		return 0, false
	}
}

// Load decodes the RGBA image at path. If mustExist is true, a missing
// file or decode failure is a fatal precondition violation (diag.Fatalf);
// otherwise it is logged as a warning and an empty handle is returned,
// per the must_exist error-handling convention.
func Load(path string, mustExist bool) (pixel.Image, error) {
	format, ok := formatFromExt(path)
	if !ok {
		return failLoad(path, mustExist, fmt.Errorf("unrecognized image extension %q", filepath.Ext(path)))
	}
	f, err := os.Open(path)
	if err != nil {
		return failLoad(path, mustExist, err)
	}
	defer f.Close()

	if format == FormatTGA {
		im, err := decodeTGA(f)
		if err != nil {
			return failLoad(path, mustExist, err)
		}
		return im, nil
	}

	var goImg image.Image
	switch format {
	case FormatPNG:
		goImg, err = png.Decode(f)
	case FormatJPEG:
		goImg, err = jpeg.Decode(f)
	case FormatBMP:
		goImg, err = bmp.Decode(f)
	}
	if err != nil {
		return failLoad(path, mustExist, err)
	}
	return fromGoImage(goImg), nil
}

func failLoad(path string, mustExist bool, err error) (pixel.Image, error) {
	if mustExist {
		diag.Fatalf("imageio: required image %q could not be loaded: %v", path, err)
	} else {
		diag.Warn("imageio: image %q could not be loaded: %v", path, err)
	}
	return pixel.Image{}, err
}

// Save encodes im to path, dispatching on the lowercased file extension.
// quality is an integer percentage 1..100 (clamped; <=0 means
// DefaultQuality) honored by the JPEG encoder and ignored by the other
// formats. A padded image is un-padded into a tightly packed scratch
// buffer before handing it to a codec, except PNG, whose codec already
// understands an arbitrary row stride and is handed the image directly.
// If mustWork is true, any failure is fatal; otherwise it is a logged
// warning and the error is returned to the caller.
func Save(path string, im pixel.Image, quality int, mustWork bool) error {
	if !im.IsValid() {
		return failSave(path, mustWork, fmt.Errorf("cannot save an invalid image"))
	}
	format, ok := formatFromExt(path)
	if !ok {
		return failSave(path, mustWork, fmt.Errorf("unrecognized image extension %q", filepath.Ext(path)))
	}
	if quality <= 0 {
		quality = DefaultQuality
	}
	if quality > 100 {
		quality = 100
	}

	f, err := os.Create(path)
	if err != nil {
		return failSave(path, mustWork, err)
	}
	defer f.Close()

	switch format {
	case FormatPNG:
		err = png.Encode(f, pixelView{im})
	case FormatJPEG:
		rgba, release := unpadRGBA(im)
		defer release()
		err = jpeg.Encode(f, rgba, &jpeg.Options{Quality: quality})
	case FormatBMP:
		rgba, release := unpadRGBA(im)
		defer release()
		err = bmp.Encode(f, rgba)
	case FormatTGA:
		err = encodeTGA(f, im)
	}
	if err != nil {
		return failSave(path, mustWork, err)
	}
	return nil
}

func failSave(path string, mustWork bool, err error) error {
	if mustWork {
		diag.Fatalf("imageio: required save to %q failed: %v", path, err)
	} else {
		diag.Warn("imageio: save to %q failed: %v", path, err)
	}
	return err
}
