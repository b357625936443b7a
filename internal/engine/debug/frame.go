package debug

import (
	"errors"
	"fmt"
)

// ErrEmptyFrame is returned when a frame source reports no pixels.
var ErrEmptyFrame = errors.New("frame has no pixels")

// FrameSource is a surface whose last frame can be read back.
type FrameSource interface {
	// FrameSize returns the size in pixels of the image ReadFrame writes.
	FrameSize() (int, int, error)
	// ReadFrame writes RGBA rows of pitch bytes into pixels.
	ReadFrame(pixels []byte, pitch int) error
}

// ReadFrame reads the last frame of src into a buffer sized from
// src.FrameSize.
func ReadFrame(src FrameSource) ([]byte, int, int, error) {
	width, height, err := src.FrameSize()
	if err != nil {
		return nil, 0, 0, fmt.Errorf("querying frame size: %w", err)
	}
	if width <= 0 || height <= 0 {
		return nil, 0, 0, fmt.Errorf("%w: %dx%d", ErrEmptyFrame, width, height)
	}

	pitch := width * 4
	pixels := make([]byte, pitch*height)
	if err := src.ReadFrame(pixels, pitch); err != nil {
		return nil, 0, 0, fmt.Errorf("reading frame: %w", err)
	}
	return pixels, width, height, nil
}
