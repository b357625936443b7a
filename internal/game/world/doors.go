package world

import (
	"slices"
	"time"

	"github.com/zyedidia/generic/mapset"
	"go.uber.org/zap"

	"github.com/Faultbox/raycaster/internal/logger"
)

// DefaultDoorDuration is how long a door stays open before closing itself.
const DefaultDoorDuration = 5 * time.Second

// DoorState is the state of a single door cell.
type DoorState struct {
	Open     bool
	OpenedAt uint64 // ms, monotonic
}

// Doors tracks one timed door per Door cell.
// A door opens on request while closed and closes on the first Tick that
// sees more than the configured duration elapsed since it opened.
type Doors struct {
	duration uint64
	states   map[Tile]*DoorState
	open     mapset.Set[Tile]
}

// NewDoors creates closed doors at the given tiles.
func NewDoors(tiles []Tile, duration time.Duration) *Doors {
	d := &Doors{
		duration: uint64(duration.Milliseconds()),
		states:   make(map[Tile]*DoorState, len(tiles)),
		open:     mapset.New[Tile](),
	}
	for _, t := range tiles {
		d.states[t] = &DoorState{}
	}
	return d
}

// Len returns the number of doors.
func (d *Doors) Len() int {
	return len(d.states)
}

// State returns the state of the door at t.
func (d *Doors) State(t Tile) (DoorState, bool) {
	s, ok := d.states[t]
	if !ok {
		return DoorState{}, false
	}
	return *s, true
}

// IsOpen reports whether the door at t is open. Unknown tiles are closed.
func (d *Doors) IsOpen(t Tile) bool {
	return d.open.Has(t)
}

// OpenCount returns the number of doors currently open.
func (d *Doors) OpenCount() int {
	return d.open.Size()
}

// Open opens the door at t. It returns false when there is no door at t or
// the door is already open; an open door's timer is not extended.
func (d *Doors) Open(t Tile, now uint64) bool {
	s, ok := d.states[t]
	if !ok || s.Open {
		return false
	}
	s.Open = true
	s.OpenedAt = now
	d.open.Put(t)

	logger.Debug("door opened", zap.Int("x", t.X), zap.Int("y", t.Y), zap.Uint64("at_ms", now))
	return true
}

// Tick closes every door open for longer than the door duration and
// returns how many closed. Doors on an occupied tile stay open past their
// duration and close on the first Tick after the tile is left.
func (d *Doors) Tick(now uint64, occupied ...Tile) int {
	if d.open.Size() == 0 {
		return 0
	}

	var expired []Tile
	d.open.Each(func(t Tile) {
		s := d.states[t]
		if now > s.OpenedAt && now-s.OpenedAt > d.duration && !slices.Contains(occupied, t) {
			expired = append(expired, t)
		}
	})

	for _, t := range expired {
		d.states[t].Open = false
		d.open.Remove(t)
		logger.Debug("door closed", zap.Int("x", t.X), zap.Int("y", t.Y), zap.Uint64("at_ms", now))
	}
	return len(expired)
}

// NearestClosed returns the closed door whose center is closest to (x, y).
// A positive reach limits the search to doors within that many world units.
func (d *Doors) NearestClosed(g *Grid, x, y, reach float64) (Tile, bool) {
	var (
		best     Tile
		bestDist float64
		found    bool
	)
	for t, s := range d.states {
		if s.Open {
			continue
		}
		cx, cy := g.TileCenter(t.X, t.Y)
		dist := (cx-x)*(cx-x) + (cy-y)*(cy-y)
		if reach > 0 && dist > reach*reach {
			continue
		}
		// Ties resolve to the lowest row, then column.
		if !found || dist < bestDist || (dist == bestDist && less(t, best)) {
			best, bestDist, found = t, dist, true
		}
	}
	return best, found
}

func less(a, b Tile) bool {
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.X < b.X
}
