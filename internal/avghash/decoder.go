package avghash

import (
	"image"

	"github.com/disintegration/imaging"
	// imaging registers PNG, JPEG, GIF, BMP and TIFF; WebP comes from x/image.
	_ "golang.org/x/image/webp"
)

// Decoder turns a path into a decoded image.
type Decoder interface {
	Decode(path string) (image.Image, error)
}

// DecoderFunc adapts a function to the Decoder interface.
type DecoderFunc func(path string) (image.Image, error)

// Decode calls f(path).
func (f DecoderFunc) Decode(path string) (image.Image, error) { return f(path) }

// ImagingDecoder decodes files with the imaging package.
type ImagingDecoder struct {
	// AutoOrient applies the EXIF orientation tag of JPEG files.
	AutoOrient bool
}

// Decode opens and decodes path.
func (d ImagingDecoder) Decode(path string) (image.Image, error) {
	return imaging.Open(path, imaging.AutoOrientation(d.AutoOrient))
}
