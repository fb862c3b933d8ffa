// Package window creates the OS window and OpenGL context and polls input.
// Two backends are available, SDL2 and GLFW, behind the Surface interface.
package window

import (
	"fmt"
	"runtime"

	"github.com/Faultbox/cube-letters/internal/engine/input"
)

func init() {
	// OpenGL calls must be made from the main thread
	runtime.LockOSThread()
}

// Backend names.
const (
	BackendSDL  = "sdl"
	BackendGLFW = "glfw"
)

// Config holds window configuration.
type Config struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	VSync      bool
	Samples    int // MSAA samples, 0 disables
	Backend    string
}

// Surface is a window with a current OpenGL 4.1 core context.
type Surface interface {
	// Poll pumps the OS event queue and returns the current input state.
	// It reports false once the user has asked to close the window.
	Poll() (input.Snapshot, bool)
	SwapBuffers()
	// GetSize returns the drawable size in pixels.
	GetSize() (int, int)
	SetTitle(title string)
	Close()
}

// Open creates a window using the configured backend.
func Open(cfg Config) (Surface, error) {
	switch cfg.Backend {
	case BackendSDL, "":
		return newSDL(cfg)
	case BackendGLFW:
		return newGLFW(cfg)
	default:
		return nil, fmt.Errorf("unknown window backend %q", cfg.Backend)
	}
}
