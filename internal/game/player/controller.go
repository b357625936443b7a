// Package player moves the viewer through the world.
package player

import (
	"go.uber.org/zap"

	"github.com/Faultbox/raycaster/internal/game/world"
	"github.com/Faultbox/raycaster/internal/logger"
	mathx "github.com/Faultbox/raycaster/pkg/math"
)

// Pose is the player's position in world units and heading in radians.
// Heading is not wrapped.
type Pose struct {
	Pos     mathx.Vec2
	Heading float64
}

// Intents are the player actions requested for one frame.
type Intents struct {
	TurnLeft  bool
	TurnRight bool
	Forward   bool
	Backward  bool
	OpenDoor  bool // edge-triggered, at most once per key press
}

// Config holds movement settings.
type Config struct {
	TurnSpeed float64 // radians per frame
	MoveSpeed float64 // world units per frame
	Slide     bool    // retry a blocked move along each axis
	DoorReach float64 // world units; 0 means any distance
}

// DefaultConfig returns the default movement settings.
func DefaultConfig() Config {
	return Config{
		TurnSpeed: 0.04,
		MoveSpeed: 5,
	}
}

// SpawnPose returns a pose at the center of tile t facing along +X.
func SpawnPose(g *world.Grid, t world.Tile) Pose {
	x, y := g.TileCenter(t.X, t.Y)
	return Pose{Pos: mathx.Vec2{X: x, Y: y}}
}

// Controller applies intents to the pose with tile collision.
type Controller struct {
	config Config
	world  *world.World
	pose   Pose
}

// NewController creates a controller starting at pose.
func NewController(cfg Config, w *world.World, pose Pose) *Controller {
	return &Controller{
		config: cfg,
		world:  w,
		pose:   pose,
	}
}

// Pose returns the current pose.
func (c *Controller) Pose() Pose {
	return c.pose
}

// Update applies one frame of intents. now is the frame time in ms and is
// used to stamp a door that gets opened.
func (c *Controller) Update(in Intents, now uint64) {
	if in.TurnLeft {
		c.pose.Heading -= c.config.TurnSpeed
	}
	if in.TurnRight {
		c.pose.Heading += c.config.TurnSpeed
	}

	dir := mathx.FromAngle(c.pose.Heading)
	if in.Forward {
		c.Move(dir.Scale(c.config.MoveSpeed))
	}
	if in.Backward {
		c.Move(dir.Scale(-c.config.MoveSpeed))
	}

	if in.OpenDoor {
		c.OpenDoor(now)
	}
}

// Move shifts the pose by delta if the destination tile is passable and
// reports whether the pose changed. X and Y move together; with Slide
// enabled a rejected move is retried along X alone, then Y alone.
func (c *Controller) Move(delta mathx.Vec2) bool {
	if c.tryMove(delta) {
		return true
	}
	if !c.config.Slide {
		return false
	}
	return c.tryMove(mathx.Vec2{X: delta.X}) || c.tryMove(mathx.Vec2{Y: delta.Y})
}

func (c *Controller) tryMove(delta mathx.Vec2) bool {
	if delta == (mathx.Vec2{}) {
		return false
	}
	next := c.pose.Pos.Add(delta)
	tx, ty := c.world.Grid.WorldToTile(next.X, next.Y)
	if c.world.Blocked(tx, ty) {
		return false
	}
	c.pose.Pos = next
	return true
}

// OpenDoor opens the nearest closed door within reach and reports whether
// one opened.
func (c *Controller) OpenDoor(now uint64) bool {
	t, ok := c.world.Doors.NearestClosed(c.world.Grid, c.pose.Pos.X, c.pose.Pos.Y, c.config.DoorReach)
	if !ok {
		return false
	}
	if !c.world.Doors.Open(t, now) {
		return false
	}
	logger.Info("door opened by player", zap.Int("x", t.X), zap.Int("y", t.Y))
	return true
}
