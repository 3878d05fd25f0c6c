package avghash

import (
	"fmt"
	"image"
)

// Grid is a Width x Height block of luma values in raster order.
type Grid struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewGrid wraps pix as a grid. pix must hold width*height values.
func NewGrid(width, height int, pix []uint8) (Grid, error) {
	g := Grid{Width: width, Height: height, Pix: pix}
	if err := g.validate(); err != nil {
		return Grid{}, err
	}
	return g, nil
}

// At returns the luma value at column x, row y.
func (g Grid) At(x, y int) uint8 {
	return g.Pix[y*g.Width+x]
}

// Average returns floor(sum / cells). It returns 0 for an empty grid.
func (g Grid) Average() uint8 {
	if len(g.Pix) == 0 {
		return 0
	}
	var sum uint64
	for _, v := range g.Pix {
		sum += uint64(v)
	}
	return uint8(sum / uint64(len(g.Pix)))
}

func (g Grid) validate() error {
	if g.Width <= 0 || g.Height <= 0 {
		return fmt.Errorf("%w: dimensions %dx%d", ErrInvalidGrid, g.Width, g.Height)
	}
	if len(g.Pix) != g.Width*g.Height {
		return fmt.Errorf("%w: %d values for %dx%d", ErrInvalidGrid, len(g.Pix), g.Width, g.Height)
	}
	return nil
}

// gridFromNRGBA takes the red channel of a grayscale NRGBA image, where all
// three color channels carry the same luma value.
func gridFromNRGBA(img *image.NRGBA) Grid {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	pix := make([]uint8, 0, w*h)
	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+w*4]
		for x := 0; x < w; x++ {
			pix = append(pix, row[x*4])
		}
	}
	return Grid{Width: w, Height: h, Pix: pix}
}
