package raycast

import (
	"math"

	"github.com/Faultbox/raycaster/internal/game/world"
	mathx "github.com/Faultbox/raycaster/pkg/math"
)

// HitRecord describes where one ray stopped.
type HitRecord struct {
	Column   int
	Distance float64 // perpendicular to the view axis
	Kind     world.CellKind
	Depth    int // march steps taken before the hit
	Tile     world.Tile
}

// Caster marches a fan of rays through the world once per frame.
type Caster struct {
	fov           float64
	viewportWidth int

	profile     Profile
	step        float64
	columnWidth int32

	hits []HitRecord
}

// NewCaster creates a caster for a viewport of the given width.
func NewCaster(fov float64, viewportWidth int, p Profile) *Caster {
	c := &Caster{
		fov:           fov,
		viewportWidth: viewportWidth,
	}
	c.SetProfile(p)
	return c
}

// SetProfile switches the ray count and depth, recomputing the angular step
// and column width.
func (c *Caster) SetProfile(p Profile) {
	c.profile = p
	c.step = c.fov / float64(p.RayCount)
	c.columnWidth = int32(c.viewportWidth / p.RayCount)
	if cap(c.hits) < p.RayCount {
		c.hits = make([]HitRecord, 0, p.RayCount)
	}
}

// Profile returns the active profile.
func (c *Caster) Profile() Profile {
	return c.profile
}

// Step returns the angle between neighboring rays.
func (c *Caster) Step() float64 {
	return c.step
}

// ColumnWidth returns the on-screen width of one ray's column.
func (c *Caster) ColumnWidth() int32 {
	return c.columnWidth
}

// RayAngle returns the angle of ray i for the given heading.
func (c *Caster) RayAngle(heading float64, i int) float64 {
	return heading - c.fov/2 + float64(i)*c.step
}

// Cast sweeps the field of view from pos along heading and returns one
// record per ray that hit a wall or closed door within the profile's max
// depth. The returned slice is reused by the next call.
func (c *Caster) Cast(pos mathx.Vec2, heading float64, w *world.World) []HitRecord {
	c.hits = c.hits[:0]
	for i := 0; i < c.profile.RayCount; i++ {
		angle := c.RayAngle(heading, i)
		if hit, ok := c.march(pos, angle, w); ok {
			hit.Column = i
			hit.Distance = float64(hit.Depth) * math.Cos(heading-angle)
			c.hits = append(c.hits, hit)
		}
	}
	return c.hits
}

// march walks one unit at a time along angle. Points outside the grid are
// treated as open space.
func (c *Caster) march(pos mathx.Vec2, angle float64, w *world.World) (HitRecord, bool) {
	dir := mathx.FromAngle(angle)
	g := w.Grid

	for depth := 0; depth < c.profile.MaxDepth; depth++ {
		p := pos.Add(dir.Scale(float64(depth)))
		tx, ty := g.WorldToTile(p.X, p.Y)
		if !g.InBounds(tx, ty) {
			continue
		}

		t := world.Tile{X: tx, Y: ty}
		kind := g.CellAt(tx, ty)
		if w.Solid(kind, t) {
			return HitRecord{Kind: kind, Depth: depth, Tile: t}, true
		}
	}
	return HitRecord{}, false
}
