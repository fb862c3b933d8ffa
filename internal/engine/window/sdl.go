package window

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/cube-letters/internal/engine/input"
	"github.com/Faultbox/cube-letters/internal/logger"
)

// sdlScancodes maps keys to keyboard-state indices.
var sdlScancodes = map[input.Key]sdl.Scancode{
	input.KeyA:            sdl.SCANCODE_A,
	input.KeyC:            sdl.SCANCODE_C,
	input.KeyD:            sdl.SCANCODE_D,
	input.KeyI:            sdl.SCANCODE_I,
	input.KeyJ:            sdl.SCANCODE_J,
	input.KeyK:            sdl.SCANCODE_K,
	input.KeyL:            sdl.SCANCODE_L,
	input.KeyO:            sdl.SCANCODE_O,
	input.KeyP:            sdl.SCANCODE_P,
	input.KeyS:            sdl.SCANCODE_S,
	input.KeyT:            sdl.SCANCODE_T,
	input.KeyU:            sdl.SCANCODE_U,
	input.KeyW:            sdl.SCANCODE_W,
	input.KeyZ:            sdl.SCANCODE_Z,
	input.Key0:            sdl.SCANCODE_0,
	input.Key1:            sdl.SCANCODE_1,
	input.Key2:            sdl.SCANCODE_2,
	input.Key3:            sdl.SCANCODE_3,
	input.Key4:            sdl.SCANCODE_4,
	input.Key5:            sdl.SCANCODE_5,
	input.Key6:            sdl.SCANCODE_6,
	input.KeyLeftBracket:  sdl.SCANCODE_LEFTBRACKET,
	input.KeyRightBracket: sdl.SCANCODE_RIGHTBRACKET,
	input.KeyLeft:         sdl.SCANCODE_LEFT,
	input.KeyRight:        sdl.SCANCODE_RIGHT,
	input.KeyUp:           sdl.SCANCODE_UP,
	input.KeyDown:         sdl.SCANCODE_DOWN,
	input.KeyHome:         sdl.SCANCODE_HOME,
	input.KeyEscape:       sdl.SCANCODE_ESCAPE,
	input.KeyF12:          sdl.SCANCODE_F12,
	input.KeyLeftShift:    sdl.SCANCODE_LSHIFT,
	input.KeyRightShift:   sdl.SCANCODE_RSHIFT,
}

// sdlWindow wraps an SDL2 window and its OpenGL context.
type sdlWindow struct {
	config    Config
	log       *zap.Logger
	win       *sdl.Window
	glContext sdl.GLContext
	closed    bool
}

func newSDL(cfg Config) (*sdlWindow, error) {
	w := &sdlWindow{
		config: cfg,
		log:    logger.Named("window"),
	}

	w.log.Info("initializing SDL2")
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("SDL_Init failed: %w", err)
	}

	// Attributes must be set before the window exists.
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 4)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 1)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG)
	sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)
	sdl.GLSetAttribute(sdl.GL_DEPTH_SIZE, 24)
	if cfg.Samples > 0 {
		sdl.GLSetAttribute(sdl.GL_MULTISAMPLEBUFFERS, 1)
		sdl.GLSetAttribute(sdl.GL_MULTISAMPLESAMPLES, cfg.Samples)
	}

	flags := uint32(sdl.WINDOW_OPENGL | sdl.WINDOW_RESIZABLE | sdl.WINDOW_ALLOW_HIGHDPI)
	if cfg.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}

	var err error
	w.win, err = sdl.CreateWindow(
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

	w.glContext, err = w.win.GLCreateContext()
	if err != nil {
		w.win.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("SDL_GL_CreateContext failed: %w", err)
	}

	interval := 0
	if cfg.VSync {
		interval = 1
	}
	if err := sdl.GLSetSwapInterval(interval); err != nil {
		w.log.Warn("failed to set swap interval", zap.Int("interval", interval), zap.Error(err))
	}

	w.log.Info("window created",
		zap.String("backend", BackendSDL),
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Bool("fullscreen", cfg.Fullscreen),
		zap.Bool("vsync", cfg.VSync),
		zap.Int("samples", cfg.Samples),
	)

	return w, nil
}

func (w *sdlWindow) Poll() (input.Snapshot, bool) {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if _, ok := event.(*sdl.QuitEvent); ok {
			w.closed = true
		}
	}

	var snap input.Snapshot
	state := sdl.GetKeyboardState()
	for _, key := range input.Keys() {
		sc, ok := sdlScancodes[key]
		if ok && int(sc) < len(state) {
			snap.Set(key, state[sc] != 0)
		}
	}

	x, y, buttons := sdl.GetMouseState()
	snap.CursorX, snap.CursorY = float64(x), float64(y)
	snap.SetButton(input.ButtonLeft, buttons&sdlButtonMask(sdl.BUTTON_LEFT) != 0)
	snap.SetButton(input.ButtonRight, buttons&sdlButtonMask(sdl.BUTTON_RIGHT) != 0)

	return snap, !w.closed
}

func sdlButtonMask(button uint32) uint32 {
	return 1 << (button - 1)
}

func (w *sdlWindow) SwapBuffers() {
	w.win.GLSwap()
}

func (w *sdlWindow) GetSize() (int, int) {
	width, height := w.win.GLGetDrawableSize()
	return int(width), int(height)
}

func (w *sdlWindow) SetTitle(title string) {
	w.win.SetTitle(title)
}

func (w *sdlWindow) Close() {
	w.log.Info("closing window")

	if w.glContext != nil {
		sdl.GLDeleteContext(w.glContext)
	}
	if w.win != nil {
		w.win.Destroy()
	}

	sdl.Quit()
}
