package raycast

import (
	"math"

	"github.com/Faultbox/raycaster/internal/engine/ui2d"
	"github.com/Faultbox/raycaster/internal/game/world"
)

// Projection constants.
const (
	// Epsilon keeps the height formula finite at zero distance.
	Epsilon = 1e-4

	// DefaultWallTuning gives a wall scale of 21000 for a 480px viewport
	// with 64-unit tiles.
	DefaultWallTuning = 0.68359375

	// shadeFalloff is the inverse-square coefficient of distance shading.
	shadeFalloff = 0.0001

	// maxColumnHeight caps column heights so int32 conversion stays defined.
	maxColumnHeight = 1 << 28
)

// WallScale returns the projection constant K for a viewport height and
// tile size.
func WallScale(viewportHeight int, tileSize, tuning float64) float64 {
	return float64(viewportHeight) * tileSize * tuning
}

// Intensity returns the 0-255 brightness of a wall at distance d.
func Intensity(d float64) float64 {
	v := 255 / (1 + d*d*shadeFalloff)
	return math.Max(0, math.Min(255, v))
}

// Surface is the drawing collaborator columns are rendered onto.
type Surface interface {
	FillRect(r ui2d.Rect, c ui2d.Color) error
}

// Column is one projected wall slice.
type Column struct {
	Rect  ui2d.Rect
	Color ui2d.Color
}

// ProjectorConfig holds projection settings.
type ProjectorConfig struct {
	ViewportHeight int
	WallScale      float64
	WallColor      ui2d.Color
	DoorColor      ui2d.Color
	ShadeDoors     bool
}

// Projector turns hit records into screen columns.
type Projector struct {
	config  ProjectorConfig
	columns []Column
}

// NewProjector creates a projector.
func NewProjector(cfg ProjectorConfig) *Projector {
	return &Projector{config: cfg}
}

// WallHeight returns the on-screen height of a wall at perpendicular
// distance d.
func (p *Projector) WallHeight(d float64) float64 {
	return p.config.WallScale / (d + Epsilon)
}

// Shade returns the color of a hit.
func (p *Projector) Shade(hit HitRecord) ui2d.Color {
	if hit.Kind == world.Door {
		if !p.config.ShadeDoors {
			return p.config.DoorColor
		}
		return p.config.DoorColor.Scale(Intensity(hit.Distance) / 255)
	}
	return p.config.WallColor.Scale(Intensity(hit.Distance) / 255)
}

// Rect returns the screen rectangle of a hit. Columns taller than the
// viewport are not clipped.
func (p *Projector) Rect(hit HitRecord, columnWidth int32) ui2d.Rect {
	h := int32(math.Min(math.Max(p.WallHeight(hit.Distance), 0), maxColumnHeight))
	return ui2d.Rect{
		X: int32(hit.Column) * columnWidth,
		Y: int32(p.config.ViewportHeight)/2 - h/2,
		W: columnWidth,
		H: h,
	}
}

// Project converts hits to columns. The returned slice is reused by the
// next call.
func (p *Projector) Project(hits []HitRecord, columnWidth int32) []Column {
	p.columns = p.columns[:0]
	for _, hit := range hits {
		p.columns = append(p.columns, Column{
			Rect:  p.Rect(hit, columnWidth),
			Color: p.Shade(hit),
		})
	}
	return p.columns
}

// Draw projects hits and fills one rectangle per column.
func (p *Projector) Draw(s Surface, hits []HitRecord, columnWidth int32) error {
	for _, col := range p.Project(hits, columnWidth) {
		if err := s.FillRect(col.Rect, col.Color); err != nil {
			return err
		}
	}
	return nil
}
