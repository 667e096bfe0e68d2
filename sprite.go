package render2d

import "github.com/gogpu/gputypes"

// Sprite vertex layout: position (float32x3), uv (float32x2),
// color (float32x4), interleaved. 36 bytes per vertex.
const (
	spriteFloatsPerVertex = 9
	spriteVertexStride    = spriteFloatsPerVertex * 4
)

// SpriteLayout returns the interleaved vertex layout shared by sprite,
// text, and mask geometry.
func SpriteLayout() gputypes.VertexBufferLayout {
	return gputypes.VertexBufferLayout{
		ArrayStride: spriteVertexStride,
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes: []gputypes.VertexAttribute{
			{Format: gputypes.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
			{Format: gputypes.VertexFormatFloat32x2, Offset: 12, ShaderLocation: 1},
			{Format: gputypes.VertexFormatFloat32x4, Offset: 20, ShaderLocation: 2},
		},
	}
}

// CanBatchSprites is the compatibility predicate for sprite-style elements.
// Two adjacent elements share a draw call when they use the same material
// and camera, carry the same state override, and their owning renderers are
// mask-compatible (same interaction mode and layer membership).
func CanBatchSprites(prev, cur *Element) bool {
	if prev.Material != cur.Material || prev.Camera != cur.Camera {
		return false
	}
	if prev.StateOverride != cur.StateOverride {
		return false
	}
	return maskCompatible(prev.Renderer, cur.Renderer)
}

func maskCompatible(a, b Renderer) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.MaskInteraction() == b.MaskInteraction() && a.MaskLayer() == b.MaskLayer()
}

// WriteSpriteVertices packs an element's geometry into the shared buffer
// using the SpriteLayout interleaving. Missing UVs write zero; missing
// colors write White.
func WriteSpriteVertices(e *Element, verts []float32, vertexOffset int) int {
	o := vertexOffset * spriteFloatsPerVertex
	for i, p := range e.Positions {
		verts[o+0] = p.X
		verts[o+1] = p.Y
		verts[o+2] = p.Z
		if i < len(e.UVs) {
			verts[o+3] = e.UVs[i].X
			verts[o+4] = e.UVs[i].Y
		} else {
			verts[o+3] = 0
			verts[o+4] = 0
		}
		c := White
		if i < len(e.Colors) {
			c = e.Colors[i]
		}
		verts[o+5] = c.R
		verts[o+6] = c.G
		verts[o+7] = c.B
		verts[o+8] = c.A
		o += spriteFloatsPerVertex
	}
	return vertexOffset + len(e.Positions)
}

// AppendQuad appends an axis-aligned textured quad to the element:
// four vertices (bottom-left, bottom-right, top-right, top-left) and two
// triangles. Glyph and sprite sources build their geometry from this.
func AppendQuad(e *Element, x0, y0, x1, y1, u0, v0, u1, v1, z float32, c RGBA) {
	base := uint16(len(e.Positions))
	e.Positions = append(e.Positions,
		Vec3{X: x0, Y: y0, Z: z},
		Vec3{X: x1, Y: y0, Z: z},
		Vec3{X: x1, Y: y1, Z: z},
		Vec3{X: x0, Y: y1, Z: z},
	)
	e.UVs = append(e.UVs,
		Vec2{X: u0, Y: v0},
		Vec2{X: u1, Y: v0},
		Vec2{X: u1, Y: v1},
		Vec2{X: u0, Y: v1},
	)
	e.Colors = append(e.Colors, c, c, c, c)
	e.Indices = append(e.Indices,
		base, base+1, base+2,
		base, base+2, base+3,
	)
}
