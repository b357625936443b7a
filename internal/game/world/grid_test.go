package world

import (
	"errors"
	"testing"
)

var doorMap = []string{
	"########",
	"#......#",
	"###D####",
	"#......#",
	"#......#",
	"#......#",
	"#..P...#",
	"########",
}

func TestParse_ValidMap(t *testing.T) {
	g, spawn, err := Parse(doorMap, 64)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if g.Width != 8 || g.Height != 8 {
		t.Errorf("expected 8x8 grid, got %dx%d", g.Width, g.Height)
	}
	if spawn != (Tile{3, 6}) {
		t.Errorf("expected spawn (3,6), got %v", spawn)
	}
	if got := g.CellAt(3, 6); got != Empty {
		t.Errorf("spawn cell should be stored as Empty, got %s", got)
	}
	if got := g.CellAt(3, 2); got != Door {
		t.Errorf("expected Door at (3,2), got %s", got)
	}
	if got := g.CellAt(0, 0); got != Wall {
		t.Errorf("expected Wall at (0,0), got %s", got)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name     string
		rows     []string
		tileSize float64
		want     error
	}{
		{"empty", nil, 64, ErrEmptyMap},
		{"empty row", []string{""}, 64, ErrEmptyMap},
		{"ragged", []string{"###", "#P", "###"}, 64, ErrRaggedMap},
		{"unknown", []string{"###", "#P?", "###"}, 64, ErrUnknownCell},
		{"no spawn", []string{"###", "#.#", "###"}, 64, ErrNoSpawn},
		{"two spawns", []string{"####", "#PP#", "####"}, 64, ErrDuplicateSpawn},
		{"zero tile", []string{"###", "#P#", "###"}, 0, ErrInvalidTileSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Parse(tt.rows, tt.tileSize)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestParse_OpenBorderIsAllowed(t *testing.T) {
	g, _, err := Parse([]string{"#.#", "#P#", "###"}, 64)
	if err != nil {
		t.Fatalf("open border should only warn, got %v", err)
	}
	if got := g.openBorderCells(); got != 1 {
		t.Errorf("expected 1 open border cell, got %d", got)
	}
}

func TestGrid_CellAtOutOfBounds(t *testing.T) {
	g := NewGrid(4, 4, 64)

	for _, c := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 4}, {100, 100}} {
		if g.InBounds(c[0], c[1]) {
			t.Errorf("(%d,%d) should be out of bounds", c[0], c[1])
		}
		if got := g.CellAt(c[0], c[1]); got != Wall {
			t.Errorf("CellAt(%d,%d) = %s, want Wall", c[0], c[1], got)
		}
	}
	if got := g.CellAt(1, 1); got != Empty {
		t.Errorf("CellAt(1,1) = %s, want Empty", got)
	}
}

func TestGrid_WorldToTile(t *testing.T) {
	g := NewGrid(8, 8, 64)

	tests := []struct {
		x, y   float64
		tx, ty int
	}{
		{0, 0, 0, 0},
		{63.99, 63.99, 0, 0},
		{64, 64, 1, 1},
		{300, 300, 4, 4},
		{-0.5, 10, -1, 0},
		{-64, -65, -1, -2},
	}

	for _, tt := range tests {
		tx, ty := g.WorldToTile(tt.x, tt.y)
		if tx != tt.tx || ty != tt.ty {
			t.Errorf("WorldToTile(%v,%v) = (%d,%d), want (%d,%d)", tt.x, tt.y, tx, ty, tt.tx, tt.ty)
		}
	}
}

func TestGrid_TileCenter(t *testing.T) {
	g := NewGrid(8, 8, 64)
	x, y := g.TileCenter(3, 6)
	if x != 224 || y != 416 {
		t.Errorf("TileCenter(3,6) = (%v,%v), want (224,416)", x, y)
	}
}

func TestGrid_Doors(t *testing.T) {
	g, _, err := Parse([]string{
		"#####",
		"#D.D#",
		"#.P.#",
		"##D##",
	}, 64)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	doors := g.Doors()
	want := []Tile{{1, 1}, {3, 1}, {2, 3}}
	if len(doors) != len(want) {
		t.Fatalf("expected %d doors, got %d", len(want), len(doors))
	}
	for i := range want {
		if doors[i] != want[i] {
			t.Errorf("door %d = %v, want %v", i, doors[i], want[i])
		}
	}
}

func TestCellKindString(t *testing.T) {
	if Wall.String() != "Wall" || Door.String() != "Door" || Empty.String() != "Empty" {
		t.Error("unexpected cell kind names")
	}
	if CellKind(9).String() != "Unknown(9)" {
		t.Errorf("unexpected name for unknown kind: %s", CellKind(9))
	}
}
