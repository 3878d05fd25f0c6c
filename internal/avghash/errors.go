package avghash

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidOptions reports unusable grid dimensions or filter names.
	ErrInvalidOptions = errors.New("invalid hash options")
	// ErrInvalidGrid reports a grid whose pixel count does not match its dimensions.
	ErrInvalidGrid = errors.New("invalid grid")
)

// DecodeError wraps any failure to read or decode an input image.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
