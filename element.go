package render2d

import "github.com/gogpu/render2d/gpucore"

// Renderer is the owning component of an element: the sprite, text, or
// mask renderer that produced it. The batching layer only needs the mask
// participation of the owner; everything else travels on the element.
type Renderer interface {
	// MaskLayer returns the layers this renderer is clipped by.
	MaskLayer() LayerMask

	// MaskInteraction returns how this renderer participates in masking.
	MaskInteraction() MaskInteraction
}

// Camera carries the opaque shader data block supplied by the scene/camera
// service. The batcher uploads ShaderData as a uniform block before each
// chunk draw; it never inspects the contents.
type Camera struct {
	// Label identifies the camera in logs and uniform block names.
	Label string

	// ShaderData is the packed uniform block (view/projection and friends).
	ShaderData []byte
}

// Element is the minimal per-draw record submitted to a Batcher: geometry,
// material, camera, and the owning renderer. Elements are transient; they
// are pooled and overwritten every frame (see ElementPool), so callers must
// not retain an element past the flush that consumes it.
type Element struct {
	// Renderer is the component that produced this element.
	Renderer Renderer

	// Positions holds one entry per vertex.
	Positions []Vec3

	// UVs holds one entry per vertex.
	UVs []Vec2

	// Colors holds one entry per vertex. Nil means the vertex writer
	// substitutes White.
	Colors []RGBA

	// Indices is a triangle list into Positions, local to this element.
	// The batcher rebases them onto the shared buffer at flush time.
	Indices []uint16

	// Material selects the shader program and render state for the draw.
	Material *gpucore.Material

	// Camera supplies the uniform block for the draw.
	Camera *Camera

	// StateOverride, when non-nil, is applied instead of the material's
	// render state immediately before the chunk containing this element
	// draws. The stencil package uses it to select increment or decrement
	// ops for mask geometry.
	StateOverride *gpucore.RenderState
}

// VertexCount returns the number of vertices this element contributes.
func (e *Element) VertexCount() int {
	return len(e.Positions)
}

// Reset clears the element for reuse while keeping allocated capacity.
func (e *Element) Reset() {
	e.Renderer = nil
	e.Positions = e.Positions[:0]
	e.UVs = e.UVs[:0]
	e.Colors = e.Colors[:0]
	e.Indices = e.Indices[:0]
	e.Material = nil
	e.Camera = nil
	e.StateOverride = nil
}
