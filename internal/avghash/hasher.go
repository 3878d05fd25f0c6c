package avghash

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"avghash/internal/fingerprint"
)

const (
	// DefaultWidth and DefaultHeight give the classic 64 bit average hash.
	DefaultWidth  = 8
	DefaultHeight = 8
)

// Options fixes the parameters every hash in a corpus must share.
type Options struct {
	Width      int
	Height     int
	Filter     Filter
	AutoOrient bool
}

// Option customizes a Hasher.
type Option func(*Hasher)

// WithDecoder replaces the default imaging based decoder.
func WithDecoder(d Decoder) Option {
	return func(h *Hasher) {
		if d != nil {
			h.decoder = d
		}
	}
}

// Hasher computes average hashes with fixed options.
type Hasher struct {
	opts    Options
	filter  imaging.ResampleFilter
	decoder Decoder
}

// New validates opts and returns a Hasher.
func New(opts Options, options ...Option) (*Hasher, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("%w: grid %dx%d must be positive", ErrInvalidOptions, opts.Width, opts.Height)
	}
	if opts.Filter == "" {
		opts.Filter = DefaultFilter
	}
	rf, ok := opts.Filter.resample()
	if !ok {
		return nil, fmt.Errorf("%w: unknown filter %q", ErrInvalidOptions, opts.Filter)
	}

	h := &Hasher{
		opts:    opts,
		filter:  rf,
		decoder: ImagingDecoder{AutoOrient: opts.AutoOrient},
	}
	for _, opt := range options {
		opt(h)
	}
	return h, nil
}

// Options returns the options the Hasher was built with.
func (h *Hasher) Options() Options { return h.opts }

// Bits returns the size of every hash this Hasher produces.
func (h *Hasher) Bits() int { return h.opts.Width * h.opts.Height }

// HashFile decodes path and hashes the image. Decode failures are returned as
// *DecodeError.
func (h *Hasher) HashFile(path string) (fingerprint.Hash, error) {
	img, err := h.decoder.Decode(path)
	if err != nil {
		return fingerprint.Hash{}, &DecodeError{Path: path, Err: err}
	}
	return h.HashImage(img)
}

// HashImage resamples img to the configured grid and hashes it.
func (h *Hasher) HashImage(img image.Image) (fingerprint.Hash, error) {
	return HashGrid(h.Grid(img))
}

// Grid resamples img to the configured dimensions and converts it to luma.
func (h *Hasher) Grid(img image.Image) Grid {
	resized := imaging.Resize(img, h.opts.Width, h.opts.Height, h.filter)
	return gridFromNRGBA(imaging.Grayscale(resized))
}

// HashGrid thresholds every cell of grid against the integer mean of all
// cells and packs the results in raster order.
func HashGrid(grid Grid) (fingerprint.Hash, error) {
	if err := grid.validate(); err != nil {
		return fingerprint.Hash{}, err
	}

	average := grid.Average()
	builder := fingerprint.NewBuilder(len(grid.Pix))
	for _, v := range grid.Pix {
		if err := builder.Append(v >= average); err != nil {
			return fingerprint.Hash{}, fmt.Errorf("pack grid: %w", err)
		}
	}
	hash, err := builder.Finalize()
	if err != nil {
		return fingerprint.Hash{}, fmt.Errorf("pack grid: %w", err)
	}
	return hash, nil
}
