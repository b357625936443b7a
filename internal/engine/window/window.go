// Package window handles the SDL2 window and its 2D renderer.
package window

import (
	"fmt"
	"runtime"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/raycaster/internal/engine/ui2d"
	"github.com/Faultbox/raycaster/internal/logger"
)

func init() {
	// SDL video calls must be made from the main thread
	runtime.LockOSThread()
}

// Config holds window configuration.
type Config struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	VSync      bool
}

// Window wraps an SDL2 window and accelerated renderer. It is the drawing
// surface and the tick source of the frame loop.
// Frames are drawn into a Width x Height target texture that Present scales
// onto the window.
type Window struct {
	config    Config
	sdlWindow *sdl.Window
	renderer  *sdl.Renderer
	target    *sdl.Texture
	rect      sdl.Rect
}

// New creates a new window with a 2D renderer.
func New(cfg Config) (*Window, error) {
	w := &Window{
		config: cfg,
	}

	logger.Info("initializing SDL2")
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS | sdl.INIT_TIMER); err != nil {
		return nil, fmt.Errorf("SDL_Init failed: %w", err)
	}

	flags := uint32(sdl.WINDOW_SHOWN)
	if cfg.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN
	}

	var err error
	w.sdlWindow, err = sdl.CreateWindow(
		cfg.Title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(cfg.Width),
		int32(cfg.Height),
		flags,
	)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateWindow failed: %w", err)
	}

	rendererFlags := uint32(sdl.RENDERER_ACCELERATED)
	if cfg.VSync {
		rendererFlags |= sdl.RENDERER_PRESENTVSYNC
	}
	w.renderer, err = sdl.CreateRenderer(w.sdlWindow, -1, rendererFlags)
	if err != nil {
		w.sdlWindow.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateRenderer failed: %w", err)
	}

	// Fullscreen modes may not match the requested size; let SDL letterbox
	// the frame texture.
	if err := w.renderer.SetLogicalSize(int32(cfg.Width), int32(cfg.Height)); err != nil {
		logger.Warn("failed to set logical size", zap.Error(err))
	}

	w.target, err = w.renderer.CreateTexture(
		uint32(sdl.PIXELFORMAT_ABGR8888),
		sdl.TEXTUREACCESS_TARGET,
		int32(cfg.Width),
		int32(cfg.Height),
	)
	if err != nil {
		w.renderer.Destroy()
		w.sdlWindow.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateTexture failed: %w", err)
	}

	logger.Info("window created",
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Bool("fullscreen", cfg.Fullscreen),
		zap.Bool("vsync", cfg.VSync),
	)

	return w, nil
}

// Close destroys the window and cleans up SDL2.
func (w *Window) Close() {
	logger.Info("closing window")

	if w.target != nil {
		w.target.Destroy()
	}
	if w.renderer != nil {
		w.renderer.Destroy()
	}
	if w.sdlWindow != nil {
		w.sdlWindow.Destroy()
	}

	sdl.Quit()
}

// Clear fills the whole frame with c.
func (w *Window) Clear(c ui2d.Color) error {
	if err := w.renderer.SetRenderTarget(w.target); err != nil {
		return err
	}
	if err := w.renderer.SetDrawColor(c.R, c.G, c.B, 0xFF); err != nil {
		return err
	}
	return w.renderer.Clear()
}

// FillRect draws an opaque filled rectangle into the frame.
func (w *Window) FillRect(r ui2d.Rect, c ui2d.Color) error {
	if err := w.renderer.SetDrawColor(c.R, c.G, c.B, 0xFF); err != nil {
		return err
	}
	w.rect = sdl.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H}
	return w.renderer.FillRect(&w.rect)
}

// Present scales the frame onto the window and shows it.
func (w *Window) Present() {
	if err := w.renderer.SetRenderTarget(nil); err != nil {
		logger.Warn("failed to reset render target", zap.Error(err))
		return
	}
	_ = w.renderer.SetDrawColor(0, 0, 0, 0xFF)
	_ = w.renderer.Clear()
	if err := w.renderer.Copy(w.target, nil, nil); err != nil {
		logger.Warn("failed to copy frame", zap.Error(err))
	}
	w.renderer.Present()
}

// FrameSize returns the size of the frame texture.
func (w *Window) FrameSize() (int, int, error) {
	_, _, width, height, err := w.target.Query()
	if err != nil {
		return 0, 0, err
	}
	return int(width), int(height), nil
}

// ReadFrame copies the last frame into pixels as RGBA rows of pitch bytes.
// pixels must hold FrameSize rows.
func (w *Window) ReadFrame(pixels []byte, pitch int) error {
	if err := w.renderer.SetRenderTarget(w.target); err != nil {
		return err
	}
	// ABGR8888 is R,G,B,A in memory on little-endian hosts.
	err := w.renderer.ReadPixels(nil, uint32(sdl.PIXELFORMAT_ABGR8888), unsafe.Pointer(&pixels[0]), pitch)
	if err != nil {
		return fmt.Errorf("SDL_RenderReadPixels failed: %w", err)
	}
	return nil
}

// Ticks returns milliseconds since SDL initialization.
func (w *Window) Ticks() uint64 {
	return sdl.GetTicks64()
}

// Delay sleeps for ms milliseconds.
func (w *Window) Delay(ms uint32) {
	sdl.Delay(ms)
}

// SetTitle sets the window title.
func (w *Window) SetTitle(title string) {
	w.sdlWindow.SetTitle(title)
}
