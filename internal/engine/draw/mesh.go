package draw

import "github.com/Faultbox/cube-letters/pkg/math"

// CubeVertexCount is the number of vertices in the cube mesh.
const CubeVertexCount = 36

// GridVertexCount is the number of vertices in the grid mesh.
const GridVertexCount = 400

// gridY sits the grid just below the letters' ground.
const gridY = -0.1

// CubeVertices returns the unit cube centred on the origin as 12 triangles,
// two per face, wound so outward faces are front faces.
func CubeVertices() []math.Vec3 {
	v := func(x, y, z float32) math.Vec3 { return math.Vec3{X: x, Y: y, Z: z} }
	const h = 0.5
	return []math.Vec3{
		// left
		v(-h, -h, -h), v(-h, -h, h), v(-h, h, h),
		v(-h, -h, -h), v(-h, h, h), v(-h, h, -h),
		// far
		v(h, h, -h), v(-h, -h, -h), v(-h, h, -h),
		v(h, h, -h), v(h, -h, -h), v(-h, -h, -h),
		// bottom
		v(h, -h, h), v(-h, -h, -h), v(h, -h, -h),
		v(h, -h, h), v(-h, -h, h), v(-h, -h, -h),
		// near
		v(-h, h, h), v(-h, -h, h), v(h, -h, h),
		v(h, h, h), v(-h, h, h), v(h, -h, h),
		// right
		v(h, h, h), v(h, -h, -h), v(h, h, -h),
		v(h, -h, -h), v(h, h, h), v(h, -h, h),
		// top
		v(h, h, h), v(h, h, -h), v(-h, h, -h),
		v(h, h, h), v(-h, h, -h), v(-h, h, h),
	}
}

// GridVertices returns the ground grid as line-segment endpoints: 100 lines
// parallel to X, then 100 parallel to Z, one unit apart.
func GridVertices() []math.Vec3 {
	verts := make([]math.Vec3, 0, GridVertexCount)
	for i := 0; i < GridVertexCount/2; i++ {
		if i < 100 {
			z := float32(50 - i)
			verts = append(verts, math.Vec3{X: -50, Y: gridY, Z: z}, math.Vec3{X: 50, Y: gridY, Z: z})
			continue
		}
		x := float32(150 - i)
		verts = append(verts, math.Vec3{X: x, Y: gridY, Z: -50}, math.Vec3{X: x, Y: gridY, Z: 50})
	}
	return verts
}

// Flatten packs vertices into a tightly packed float slice for upload.
func Flatten(verts []math.Vec3) []float32 {
	out := make([]float32, 0, len(verts)*3)
	for _, v := range verts {
		out = append(out, v.X, v.Y, v.Z)
	}
	return out
}
