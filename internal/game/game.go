// Package game wires window, tracker, scene and renderer into the frame loop.
package game

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/cube-letters/internal/config"
	"github.com/Faultbox/cube-letters/internal/engine/camera"
	"github.com/Faultbox/cube-letters/internal/engine/capture"
	"github.com/Faultbox/cube-letters/internal/engine/renderer"
	"github.com/Faultbox/cube-letters/internal/engine/window"
	"github.com/Faultbox/cube-letters/internal/game/letters"
	"github.com/Faultbox/cube-letters/internal/game/scene"
	"github.com/Faultbox/cube-letters/internal/game/world"
	"github.com/Faultbox/cube-letters/internal/logger"
)

// Title is the window title prefix.
const Title = "CHAMMA"

// Game is the running demo.
type Game struct {
	config   *config.Config
	log      *zap.Logger
	surface  window.Surface
	renderer *renderer.Renderer
	capture  *capture.Writer

	state   *world.State
	tracker *world.Tracker

	width, height int
}

// New opens the window, creates the renderer and the start-up state.
func New(cfg *config.Config) (*Game, error) {
	g := &Game{
		config: cfg,
		log:    logger.Named("game"),
	}

	g.log.Info("initializing",
		zap.String("backend", cfg.Graphics.Backend),
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
	)

	var err error
	g.surface, err = window.Open(window.Config{
		Title:      Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
		Samples:    cfg.Graphics.Samples,
		Backend:    cfg.Graphics.Backend,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// The renderer needs the context the window just made current.
	g.width, g.height = g.surface.GetSize()
	g.renderer, err = renderer.New(renderer.Config{
		Width:       g.width,
		Height:      g.height,
		Multisample: cfg.Graphics.Samples > 0,
		ClearColor:  renderer.DefaultClearColor,
	})
	if err != nil {
		g.surface.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	g.capture = capture.New(cfg.Graphics.ScreenshotDir, "chamma")
	g.state = world.NewState(CameraSettings(cfg))
	g.tracker = world.NewTracker(Rates(cfg))

	g.log.Info("initialized", zap.Int("parts", letters.PartCount()))
	return g, nil
}

// Rates converts the controls section to tracker rates.
func Rates(cfg *config.Config) world.Rates {
	c := cfg.Controls
	return world.Rates{
		RotateStep:      c.RotateStep,
		ScaleStep:       c.ScaleStep,
		RotateSpeed:     c.RotateSpeed,
		MoveSpeed:       c.MoveSpeed,
		CameraSpeed:     c.CameraSpeed,
		CameraFastSpeed: c.CameraFastSpeed,
	}
}

// CameraSettings converts the camera and controls sections to camera settings.
func CameraSettings(cfg *config.Config) camera.Settings {
	return camera.Settings{
		FOV:              cfg.Camera.FOV,
		FOVMin:           cfg.Camera.FOVMin,
		FOVMax:           cfg.Camera.FOVMax,
		Near:             cfg.Camera.Near,
		Far:              cfg.Camera.Far,
		OrbitSensitivity: cfg.Controls.OrbitSensitivity,
		ZoomSensitivity:  cfg.Controls.ZoomSensitivity,
	}
}

// Run drives the frame loop until the window closes or Escape is pressed.
func (g *Game) Run() error {
	lastTime := time.Now()
	frameCount := 0
	fpsTimer := lastTime

	g.log.Info("starting frame loop")

	for {
		snap, open := g.surface.Poll()
		if !open {
			g.log.Info("window closed")
			return nil
		}

		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		selected, mode := g.state.Selected, g.state.Mode
		g.tracker.Apply(g.state, snap, dt)
		if g.state.Quit {
			g.log.Info("escape pressed")
			return nil
		}
		if g.state.Selected != selected {
			g.log.Debug("selection changed",
				zap.Stringer("from", selected),
				zap.Stringer("to", g.state.Selected),
			)
		}
		if g.state.Mode != mode {
			g.log.Debug("draw mode changed", zap.Stringer("mode", g.state.Mode))
		}

		if w, h := g.surface.GetSize(); w != g.width || h != g.height {
			g.width, g.height = w, h
			g.renderer.Resize(w, h)
		}

		g.renderer.Draw(scene.Build(g.state, g.renderer.Aspect()))
		if g.state.Capture {
			g.saveCapture()
			g.state.Capture = false
		}
		g.surface.SwapBuffers()

		frameCount++
		if elapsed := now.Sub(fpsTimer); elapsed >= time.Second {
			fps := float64(frameCount) / elapsed.Seconds()
			g.log.Debug("fps",
				zap.Int("frames", frameCount),
				zap.String("dt", fmt.Sprintf("%.2fms", dt*1000)),
			)
			g.surface.SetTitle(fmt.Sprintf("%s - %s - %.0f fps", Title, g.state.Selected, fps))
			frameCount = 0
			fpsTimer = now
		}
	}
}

func (g *Game) saveCapture() {
	pixels, w, h := g.renderer.ReadPixels()
	path, err := g.capture.Save(pixels, w, h)
	if err != nil {
		g.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	g.log.Info("screenshot saved", zap.String("path", path))
}

// Close releases the renderer and the window.
func (g *Game) Close() {
	g.log.Info("closing")

	if g.renderer != nil {
		g.renderer.Close()
	}
	if g.surface != nil {
		g.surface.Close()
	}
}
