package world

import "time"

// World is the grid together with the live door state.
type World struct {
	Grid  *Grid
	Doors *Doors
}

// New creates a world with a closed door on every Door cell of g.
func New(g *Grid, doorDuration time.Duration) *World {
	return &World{
		Grid:  g,
		Doors: NewDoors(g.Doors(), doorDuration),
	}
}

// Load parses rows and builds a world, returning the player start tile.
func Load(rows []string, tileSize float64, doorDuration time.Duration) (*World, Tile, error) {
	g, spawn, err := Parse(rows, tileSize)
	if err != nil {
		return nil, Tile{}, err
	}
	return New(g, doorDuration), spawn, nil
}

// Solid reports whether a cell of the given kind at t stops rays and
// movement: walls always, doors only while closed.
func (w *World) Solid(kind CellKind, t Tile) bool {
	switch kind {
	case Wall:
		return true
	case Door:
		return !w.Doors.IsOpen(t)
	default:
		return false
	}
}

// Blocked reports whether the player may not enter tile (x, y).
// Tiles outside the grid are blocked.
func (w *World) Blocked(x, y int) bool {
	return w.Solid(w.Grid.CellAt(x, y), Tile{x, y})
}
