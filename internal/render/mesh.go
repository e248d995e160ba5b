// Package render holds the mesh descriptors the simulation produces and the
// contract the renderer consumes them through. The GPU side (buffers,
// shaders, texture arrays, draw calls) lives behind the Resource interface;
// nothing here touches it directly.
package render

import (
	"github.com/go-gl/mathgl/mgl32"

	"gocraft/internal/sim/catalogs"
	"gocraft/internal/sim/geom"
)

// CullMode selects which faces the renderer skips for a mesh.
type CullMode int

const (
	CullBack CullMode = iota
	CullFront
	CullNone
)

// Resource is a handle to GPU-side state for one mesh. The renderer attaches
// one lazily on first draw; Release must be called exactly once before the
// descriptor is dropped. There is no implicit reclamation.
type Resource interface {
	Release()
}

// Mesh is a render-geometry descriptor: a world-relative offset, a flat
// vertex buffer laid out as (x, y, z, u, v, layer) per vertex, the texture
// set the layer indices refer to, and a culling mode.
type Mesh struct {
	Position mgl32.Vec3
	Data     []float32
	Textures *catalogs.TextureSet
	Cull     CullMode

	res Resource
}

func NewMesh(pos mgl32.Vec3, data []float32, textures *catalogs.TextureSet, cull CullMode) *Mesh {
	return &Mesh{Position: pos, Data: data, Textures: textures, Cull: cull}
}

// Resource returns the attached GPU handle, nil before first draw.
func (m *Mesh) Resource() Resource {
	return m.res
}

// Attach stores the GPU handle created by the renderer for this mesh.
func (m *Mesh) Attach(r Resource) {
	m.res = r
}

// Discard releases the GPU handle, if any, and drops the vertex data. The
// mesh must not be drawn afterwards.
func (m *Mesh) Discard() {
	if m.res != nil {
		m.res.Release()
		m.res = nil
	}
	m.Data = nil
}

// UniformLayers maps every face to the same texture layer.
func UniformLayers(layer int) map[geom.Normal]int {
	layers := make(map[geom.Normal]int, len(geom.Normals))
	for _, n := range geom.Normals {
		layers[n] = layer
	}
	return layers
}
