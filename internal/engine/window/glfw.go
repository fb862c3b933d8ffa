package window

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"

	"github.com/Faultbox/cube-letters/internal/engine/input"
	"github.com/Faultbox/cube-letters/internal/logger"
)

var glfwKeys = map[input.Key]glfw.Key{
	input.KeyA:            glfw.KeyA,
	input.KeyC:            glfw.KeyC,
	input.KeyD:            glfw.KeyD,
	input.KeyI:            glfw.KeyI,
	input.KeyJ:            glfw.KeyJ,
	input.KeyK:            glfw.KeyK,
	input.KeyL:            glfw.KeyL,
	input.KeyO:            glfw.KeyO,
	input.KeyP:            glfw.KeyP,
	input.KeyS:            glfw.KeyS,
	input.KeyT:            glfw.KeyT,
	input.KeyU:            glfw.KeyU,
	input.KeyW:            glfw.KeyW,
	input.KeyZ:            glfw.KeyZ,
	input.Key0:            glfw.Key0,
	input.Key1:            glfw.Key1,
	input.Key2:            glfw.Key2,
	input.Key3:            glfw.Key3,
	input.Key4:            glfw.Key4,
	input.Key5:            glfw.Key5,
	input.Key6:            glfw.Key6,
	input.KeyLeftBracket:  glfw.KeyLeftBracket,
	input.KeyRightBracket: glfw.KeyRightBracket,
	input.KeyLeft:         glfw.KeyLeft,
	input.KeyRight:        glfw.KeyRight,
	input.KeyUp:           glfw.KeyUp,
	input.KeyDown:         glfw.KeyDown,
	input.KeyHome:         glfw.KeyHome,
	input.KeyEscape:       glfw.KeyEscape,
	input.KeyF12:          glfw.KeyF12,
	input.KeyLeftShift:    glfw.KeyLeftShift,
	input.KeyRightShift:   glfw.KeyRightShift,
}

// glfwWindow wraps a GLFW window with a current context.
type glfwWindow struct {
	config Config
	log    *zap.Logger
	win    *glfw.Window
}

func newGLFW(cfg Config) (*glfwWindow, error) {
	w := &glfwWindow{
		config: cfg,
		log:    logger.Named("window"),
	}

	w.log.Info("initializing GLFW")
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init failed: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.DepthBits, 24)
	glfw.WindowHint(glfw.Samples, cfg.Samples)

	var monitor *glfw.Monitor
	if cfg.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
	}

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, monitor, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("glfw create window failed: %w", err)
	}
	win.MakeContextCurrent()
	w.win = win

	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	w.log.Info("window created",
		zap.String("backend", BackendGLFW),
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Bool("fullscreen", cfg.Fullscreen),
		zap.Bool("vsync", cfg.VSync),
		zap.Int("samples", cfg.Samples),
	)

	return w, nil
}

func (w *glfwWindow) Poll() (input.Snapshot, bool) {
	glfw.PollEvents()

	var snap input.Snapshot
	for _, key := range input.Keys() {
		if gk, ok := glfwKeys[key]; ok {
			snap.Set(key, w.win.GetKey(gk) == glfw.Press)
		}
	}

	snap.CursorX, snap.CursorY = w.win.GetCursorPos()
	snap.SetButton(input.ButtonLeft, w.win.GetMouseButton(glfw.MouseButtonLeft) == glfw.Press)
	snap.SetButton(input.ButtonRight, w.win.GetMouseButton(glfw.MouseButtonRight) == glfw.Press)

	return snap, !w.win.ShouldClose()
}

func (w *glfwWindow) SwapBuffers() {
	w.win.SwapBuffers()
}

func (w *glfwWindow) GetSize() (int, int) {
	return w.win.GetFramebufferSize()
}

func (w *glfwWindow) SetTitle(title string) {
	w.win.SetTitle(title)
}

func (w *glfwWindow) Close() {
	w.log.Info("closing window")
	if w.win != nil {
		w.win.Destroy()
	}
	glfw.Terminate()
}
