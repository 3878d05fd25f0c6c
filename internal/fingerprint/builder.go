package fingerprint

import (
	"errors"
	"fmt"
)

const wordBits = 64

var (
	// ErrInsufficientBits reports a Finalize call before the builder reached its target size.
	ErrInsufficientBits = errors.New("insufficient bits")
	// ErrOverflow reports an Append past the builder's target size.
	ErrOverflow = errors.New("bit buffer full")
	// ErrFinalized reports use of a builder after Finalize succeeded.
	ErrFinalized = errors.New("bit buffer already finalized")
)

// Builder accumulates a fixed number of bits. It is not safe for concurrent use.
type Builder struct {
	words     []uint64
	size      int
	filled    int
	finalized bool
}

// NewBuilder returns an empty builder that must receive exactly size bits.
// Negative sizes are treated as zero.
func NewBuilder(size int) *Builder {
	if size < 0 {
		size = 0
	}
	return &Builder{
		words: make([]uint64, 0, wordCount(size)),
		size:  size,
	}
}

// Append adds one bit. The first bit of each word ends up as its most
// significant bit once the word holds 64 bits.
func (b *Builder) Append(bit bool) error {
	if b.finalized {
		return ErrFinalized
	}
	if b.filled >= b.size {
		return fmt.Errorf("append bit %d of %d: %w", b.filled+1, b.size, ErrOverflow)
	}

	var v uint64
	if bit {
		v = 1
	}
	if b.filled%wordBits == 0 {
		b.words = append(b.words, v)
	} else {
		last := len(b.words) - 1
		b.words[last] = b.words[last]<<1 | v
	}
	b.filled++
	return nil
}

// Len returns the number of bits appended so far.
func (b *Builder) Len() int { return b.filled }

// Cap returns the number of bits the builder expects.
func (b *Builder) Cap() int { return b.size }

// Finalize freezes the builder into a Hash. The builder cannot be appended to
// afterwards.
func (b *Builder) Finalize() (Hash, error) {
	if b.finalized {
		return Hash{}, ErrFinalized
	}
	if b.filled < b.size {
		return Hash{}, fmt.Errorf("finalize with %d of %d bits: %w", b.filled, b.size, ErrInsufficientBits)
	}
	b.finalized = true
	h := Hash{words: b.words, size: b.size}
	b.words = nil
	return h, nil
}

func wordCount(bits int) int {
	return (bits + wordBits - 1) / wordBits
}
