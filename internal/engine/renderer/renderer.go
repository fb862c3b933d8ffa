// Package renderer executes draw frames with OpenGL.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/cube-letters/internal/engine/draw"
	"github.com/Faultbox/cube-letters/internal/engine/renderer/shaders"
	"github.com/Faultbox/cube-letters/internal/engine/shader"
	"github.com/Faultbox/cube-letters/internal/logger"
	"github.com/Faultbox/cube-letters/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	Width       int
	Height      int
	Multisample bool
	ClearColor  math.Vec3
}

// DefaultClearColor is the mid-grey background.
var DefaultClearColor = math.Vec3{X: 0.5, Y: 0.5, Z: 0.5}

// mesh is an uploaded vertex buffer.
type mesh struct {
	vao   uint32
	vbo   uint32
	count int32
}

// Renderer owns the shader program and the static meshes.
type Renderer struct {
	config  Config
	log     *zap.Logger
	program *shader.Program

	cube mesh
	grid mesh
}

// New creates a renderer. The GL context must be current.
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
		log:    logger.Named("renderer"),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	c := cfg.ClearColor
	gl.ClearColor(c.X, c.Y, c.Z, 1.0)
	gl.Enable(gl.CULL_FACE)
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	if cfg.Multisample {
		gl.Enable(gl.MULTISAMPLE)
	}

	program, err := shader.Compile(shaders.CubeVertexShader, shaders.CubeFragmentShader)
	if err != nil {
		// Draws with program 0 are no-ops.
		r.log.Error("shader program failed", zap.Error(err))
		program = &shader.Program{}
	} else {
		r.log.Debug("shader program created", zap.Uint32("program", program.ID))
	}
	r.program = program

	r.cube = upload(draw.Flatten(draw.CubeVertices()))
	r.grid = upload(draw.Flatten(draw.GridVertices()))
	r.log.Debug("meshes uploaded",
		zap.Int32("cube_vertices", r.cube.count),
		zap.Int32("grid_vertices", r.grid.count),
	)

	r.Resize(cfg.Width, cfg.Height)
	return r, nil
}

// upload creates a VAO with positions at attribute 0.
func upload(data []float32) mesh {
	m := mesh{count: int32(len(data) / 3)}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, unsafe.Pointer(&data[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, nil)
	gl.EnableVertexAttribArray(0)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return m
}

// Close frees GL resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	for _, m := range []*mesh{&r.cube, &r.grid} {
		if m.vao != 0 {
			gl.DeleteVertexArrays(1, &m.vao)
		}
		if m.vbo != 0 {
			gl.DeleteBuffers(1, &m.vbo)
		}
	}
	r.program.Delete()
}

// Resize updates the viewport.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Aspect returns the viewport aspect ratio.
func (r *Renderer) Aspect() float32 {
	if r.config.Height == 0 {
		return 1
	}
	return float32(r.config.Width) / float32(r.config.Height)
}

// Draw clears the framebuffer and executes every command in f.
func (r *Renderer) Draw(f draw.Frame) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	r.program.Use()
	r.program.SetMat4("viewMatrix", f.View)
	r.program.SetMat4("projectionMatrix", f.Projection)

	for _, cmd := range f.Commands {
		m := r.cube
		if cmd.Mesh == draw.Grid {
			m = r.grid
		}
		r.program.SetMat4("worldMatrix", cmd.World)
		r.program.SetVec3("objectColor", cmd.Color)

		gl.BindVertexArray(m.vao)
		gl.DrawArrays(primitive(cmd), 0, m.count)
	}
	gl.BindVertexArray(0)
}

// ReadPixels returns the back buffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	if len(pixels) == 0 {
		return pixels, w, h
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, w, h
}

// primitive maps a command to its GL primitive. The grid is always separate
// segments; cubes in line mode are drawn as one strip through their vertices.
func primitive(cmd draw.Command) uint32 {
	if cmd.Mesh == draw.Grid {
		return gl.LINES
	}
	switch cmd.Mode {
	case draw.Lines:
		return gl.LINE_STRIP
	case draw.Points:
		return gl.POINTS
	default:
		return gl.TRIANGLES
	}
}
