// Package game implements the main loop: input, simulation, ray casting and
// presentation, once per frame on a single goroutine.
package game

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/raycaster/internal/config"
	"github.com/Faultbox/raycaster/internal/engine/clock"
	"github.com/Faultbox/raycaster/internal/engine/debug"
	"github.com/Faultbox/raycaster/internal/engine/ui2d"
	"github.com/Faultbox/raycaster/internal/game/controls"
	"github.com/Faultbox/raycaster/internal/game/player"
	"github.com/Faultbox/raycaster/internal/game/raycast"
	"github.com/Faultbox/raycaster/internal/game/world"
	"github.com/Faultbox/raycaster/internal/logger"
)

// Surface is the drawing target of the frame loop.
type Surface interface {
	Clear(c ui2d.Color) error
	FillRect(r ui2d.Rect, c ui2d.Color) error
	Present()
	SetTitle(title string)
}

// Input supplies discrete events and the held-key state.
type Input interface {
	Update() bool
	Events() []controls.Event
	Held() controls.Held
}

// Platform bundles the collaborators the loop runs on.
type Platform struct {
	Surface Surface
	Input   Input
	Clock   clock.Source
}

// State is the simulation state owned by the loop.
type State struct {
	World   *world.World
	Player  *player.Controller
	Profile raycast.Profile
}

// Game is the main game instance.
type Game struct {
	title      string
	background ui2d.Color
	profiles   []raycast.Profile

	platform  Platform
	state     State
	caster    *raycast.Caster
	projector *raycast.Projector
	limiter   *clock.Limiter
	shots     *debug.ScreenshotCapture

	running    bool
	frames     uint64
	fpsFrames  int
	fpsElapsed uint64
}

// New creates a game from cfg running on platform.
func New(cfg *config.Config, platform Platform) (*Game, error) {
	w, spawn, err := world.Load(cfg.Map.Rows, cfg.Map.TileSize, cfg.Door.OpenDuration)
	if err != nil {
		return nil, fmt.Errorf("loading map: %w", err)
	}

	profiles := append([]raycast.Profile(nil), cfg.Render.Profiles...)
	for _, p := range profiles {
		if err := p.Validate(cfg.Window.Width); err != nil {
			return nil, err
		}
	}
	active, err := raycast.Find(profiles, cfg.Render.Profile)
	if err != nil {
		return nil, err
	}

	pc := player.Config{
		TurnSpeed: cfg.Player.TurnSpeed,
		MoveSpeed: cfg.Player.MoveSpeed,
		Slide:     cfg.Player.Slide,
		DoorReach: cfg.Door.Reach,
	}

	g := &Game{
		title:      cfg.Window.Title,
		background: cfg.Render.Background,
		profiles:   profiles,
		platform:   platform,
		state: State{
			World:   w,
			Player:  player.NewController(pc, w, player.SpawnPose(w.Grid, spawn)),
			Profile: active,
		},
		caster: raycast.NewCaster(cfg.FOV(), cfg.Window.Width, active),
		projector: raycast.NewProjector(raycast.ProjectorConfig{
			ViewportHeight: cfg.Window.Height,
			WallScale:      raycast.WallScale(cfg.Window.Height, cfg.Map.TileSize, cfg.Render.WallTuning),
			WallColor:      cfg.Render.WallColor,
			DoorColor:      cfg.Render.DoorColor,
			ShadeDoors:     cfg.Render.ShadeDoors,
		}),
		limiter: clock.NewLimiter(platform.Clock, cfg.Render.FPSLimit),
		shots:   debug.NewScreenshotCapture(cfg.Render.ScreenshotDir, "raycaster"),
	}

	g.updateTitle()

	logger.Info("game initialized",
		zap.Int("map_width", w.Grid.Width),
		zap.Int("map_height", w.Grid.Height),
		zap.Int("doors", w.Doors.Len()),
		zap.Stringer("profile", active),
		zap.Uint64("frame_budget_ms", g.limiter.Budget()),
	)
	return g, nil
}

// State returns the simulation state.
func (g *Game) State() State {
	return g.state
}

// Frames returns the number of frames presented.
func (g *Game) Frames() uint64 {
	return g.frames
}

// Run runs frames until a quit is requested.
func (g *Game) Run() error {
	g.running = true
	logger.Info("starting game loop")

	for g.running {
		if err := g.Frame(); err != nil {
			return err
		}
	}

	logger.Info("game loop stopped", zap.Uint64("frames", g.frames))
	return nil
}

// Frame runs one iteration of the loop. A quit stops the loop before
// anything is simulated or drawn.
func (g *Game) Frame() error {
	if g.platform.Input.Update() {
		g.running = false
		return nil
	}

	var intents player.Intents
	for _, e := range g.platform.Input.Events() {
		switch e.Type {
		case controls.EventQuit:
			g.running = false
			return nil
		case controls.EventKeyDown:
			if g.handleKeyDown(e.Action, &intents) {
				g.running = false
				return nil
			}
		}
	}

	held := g.platform.Input.Held()
	intents.TurnLeft = held.Has(controls.TurnLeft)
	intents.TurnRight = held.Has(controls.TurnRight)
	intents.Forward = held.Has(controls.MoveForward)
	intents.Backward = held.Has(controls.MoveBackward)

	now := g.platform.Clock.Ticks()
	g.state.Player.Update(intents, now)

	pos := g.state.Player.Pose().Pos
	tx, ty := g.state.World.Grid.WorldToTile(pos.X, pos.Y)
	g.state.World.Doors.Tick(now, world.Tile{X: tx, Y: ty})

	if err := g.render(); err != nil {
		return fmt.Errorf("render error: %w", err)
	}
	g.platform.Surface.Present()
	g.frames++

	g.countFPS(g.limiter.Wait())
	return nil
}

// handleKeyDown applies a discrete action and returns true on quit.
func (g *Game) handleKeyDown(a controls.Action, intents *player.Intents) bool {
	switch a {
	case controls.Quit:
		return true
	case controls.OpenDoor:
		intents.OpenDoor = true
	case controls.ProfileLow:
		g.SwitchProfile("low")
	case controls.ProfileMedium:
		g.SwitchProfile("medium")
	case controls.ProfileHigh:
		g.SwitchProfile("high")
	case controls.Screenshot:
		g.screenshot()
	}
	return false
}

// SwitchProfile activates the named graphics profile.
func (g *Game) SwitchProfile(name string) {
	p, err := raycast.Find(g.profiles, name)
	if err != nil {
		logger.Warn("profile switch ignored", zap.Error(err))
		return
	}
	if p == g.state.Profile {
		return
	}

	g.state.Profile = p
	g.caster.SetProfile(p)
	g.updateTitle()

	logger.Info("graphics profile changed",
		zap.Stringer("profile", p),
		zap.Float64("step", g.caster.Step()),
		zap.Int32("column_width", g.caster.ColumnWidth()),
	)
}

func (g *Game) render() error {
	if err := g.platform.Surface.Clear(g.background); err != nil {
		return err
	}
	pose := g.state.Player.Pose()
	hits := g.caster.Cast(pose.Pos, pose.Heading, g.state.World)
	return g.projector.Draw(g.platform.Surface, hits, g.caster.ColumnWidth())
}

func (g *Game) updateTitle() {
	g.platform.Surface.SetTitle(fmt.Sprintf("%s [%s]", g.title, g.state.Profile.Name))
}

func (g *Game) screenshot() {
	src, ok := g.platform.Surface.(debug.FrameSource)
	if !ok {
		return
	}
	pixels, w, h, err := debug.ReadFrame(src)
	if err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
		return
	}
	name, err := g.shots.Capture(pixels, w, h)
	if err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("file", name))
}

func (g *Game) countFPS(elapsed uint64) {
	g.fpsFrames++
	g.fpsElapsed += elapsed
	if g.fpsElapsed >= 1000 {
		logger.Debug("fps",
			zap.Int("count", g.fpsFrames),
			zap.Int("open_doors", g.state.World.Doors.OpenCount()),
		)
		g.fpsFrames = 0
		g.fpsElapsed = 0
	}
}
