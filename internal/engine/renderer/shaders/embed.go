// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// CubeVertexShader transforms positions by world, view and projection and
// passes the flat object colour through.
//
//go:embed cube.vert
var CubeVertexShader string

// CubeFragmentShader writes the interpolated colour.
//
//go:embed cube.frag
var CubeFragmentShader string
