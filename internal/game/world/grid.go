// Package world holds the tile map and the door state layered on top of it.
package world

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/Faultbox/raycaster/internal/logger"
)

// Map parsing errors.
var (
	ErrEmptyMap        = errors.New("empty map")
	ErrRaggedMap       = errors.New("map rows have different lengths")
	ErrUnknownCell     = errors.New("unknown map character")
	ErrNoSpawn         = errors.New("map has no player start")
	ErrDuplicateSpawn  = errors.New("map has more than one player start")
	ErrInvalidTileSize = errors.New("tile size must be positive")
)

// CellKind classifies a single tile.
type CellKind uint8

// Cell kinds.
const (
	Empty CellKind = iota
	Wall
	Door
)

// String returns a human-readable cell kind name.
func (k CellKind) String() string {
	switch k {
	case Empty:
		return "Empty"
	case Wall:
		return "Wall"
	case Door:
		return "Door"
	default:
		return fmt.Sprintf("Unknown(%d)", k)
	}
}

// Map characters.
const (
	charWall  = '#'
	charEmpty = '.'
	charDoor  = 'D'
	charSpawn = 'P'
)

// Tile is a grid coordinate.
type Tile struct {
	X, Y int
}

// Grid is the immutable tile map.
type Grid struct {
	Width    int
	Height   int
	TileSize float64
	cells    []CellKind
}

// NewGrid creates a grid of the given size with every cell set to Empty.
func NewGrid(width, height int, tileSize float64) *Grid {
	return &Grid{
		Width:    width,
		Height:   height,
		TileSize: tileSize,
		cells:    make([]CellKind, width*height),
	}
}

// Parse builds a grid from character rows. The 'P' cell marks the player
// start; it is returned as spawn and stored as Empty.
func Parse(rows []string, tileSize float64) (*Grid, Tile, error) {
	if tileSize <= 0 {
		return nil, Tile{}, ErrInvalidTileSize
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, Tile{}, ErrEmptyMap
	}

	g := NewGrid(len(rows[0]), len(rows), tileSize)
	spawn := Tile{-1, -1}

	for y, row := range rows {
		if len(row) != g.Width {
			return nil, Tile{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedMap, y, len(row), g.Width)
		}
		for x := 0; x < len(row); x++ {
			var kind CellKind
			switch row[x] {
			case charWall:
				kind = Wall
			case charEmpty:
				kind = Empty
			case charDoor:
				kind = Door
			case charSpawn:
				if spawn.X >= 0 {
					return nil, Tile{}, fmt.Errorf("%w: at (%d,%d)", ErrDuplicateSpawn, x, y)
				}
				spawn = Tile{x, y}
				kind = Empty
			default:
				return nil, Tile{}, fmt.Errorf("%w %q at (%d,%d)", ErrUnknownCell, row[x], x, y)
			}
			g.Set(x, y, kind)
		}
	}

	if spawn.X < 0 {
		return nil, Tile{}, ErrNoSpawn
	}

	if open := g.openBorderCells(); open > 0 {
		logger.Warn("map border is not fully walled; rays may leave the grid",
			zap.Int("open_cells", open),
		)
	}

	return g, spawn, nil
}

// Set overwrites the cell at (x, y). Out-of-range writes are ignored.
func (g *Grid) Set(x, y int, kind CellKind) {
	if !g.InBounds(x, y) {
		return
	}
	g.cells[y*g.Width+x] = kind
}

// InBounds reports whether (x, y) lies inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.Width && y < g.Height
}

// CellAt returns the cell at (x, y). Out-of-range coordinates read as Wall.
func (g *Grid) CellAt(x, y int) CellKind {
	if !g.InBounds(x, y) {
		return Wall
	}
	return g.cells[y*g.Width+x]
}

// WorldToTile converts world coordinates to tile coordinates.
func (g *Grid) WorldToTile(x, y float64) (int, int) {
	return int(math.Floor(x / g.TileSize)), int(math.Floor(y / g.TileSize))
}

// TileCenter returns the world coordinates of the center of a tile.
func (g *Grid) TileCenter(x, y int) (float64, float64) {
	return (float64(x) + 0.5) * g.TileSize, (float64(y) + 0.5) * g.TileSize
}

// Doors returns the coordinates of every Door cell in row-major order.
func (g *Grid) Doors() []Tile {
	var doors []Tile
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.cells[y*g.Width+x] == Door {
				doors = append(doors, Tile{x, y})
			}
		}
	}
	return doors
}

func (g *Grid) openBorderCells() int {
	open := 0
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			onBorder := x == 0 || y == 0 || x == g.Width-1 || y == g.Height-1
			if onBorder && g.CellAt(x, y) != Wall {
				open++
			}
		}
	}
	return open
}
