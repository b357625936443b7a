// Package ui2d holds the 2D drawing primitives shared by the renderer and
// the platform surface.
package ui2d

// Color represents an opaque RGB color with 8-bit components.
type Color struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
}

// Predefined colors.
var (
	ColorBlack      = Color{0, 0, 0}
	ColorWhite      = Color{255, 255, 255}
	ColorBackground = Color{30, 30, 30}
	ColorDoor       = Color{0, 100, 100}
)

// Scale multiplies every channel by factor, clamped to [0, 1].
func (c Color) Scale(factor float64) Color {
	if factor <= 0 {
		return ColorBlack
	}
	if factor >= 1 {
		return c
	}
	return Color{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
	}
}

// Rect is an axis-aligned rectangle in screen pixels.
type Rect struct {
	X, Y, W, H int32
}
