package render2d

import "testing"

func TestAppendQuadGeometry(t *testing.T) {
	e := &Element{}
	AppendQuad(e, 10, 20, 30, 40, 0, 0, 1, 1, 0.5, White)

	if got := e.VertexCount(); got != 4 {
		t.Fatalf("VertexCount() = %d, want 4", got)
	}
	if len(e.Indices) != 6 {
		t.Fatalf("got %d indices, want 6", len(e.Indices))
	}

	want := []Vec3{
		{X: 10, Y: 20, Z: 0.5},
		{X: 30, Y: 20, Z: 0.5},
		{X: 30, Y: 40, Z: 0.5},
		{X: 10, Y: 40, Z: 0.5},
	}
	for i, w := range want {
		if e.Positions[i] != w {
			t.Errorf("position %d = %+v, want %+v", i, e.Positions[i], w)
		}
	}

	wantIdx := []uint16{0, 1, 2, 0, 2, 3}
	for i, w := range wantIdx {
		if e.Indices[i] != w {
			t.Errorf("index %d = %d, want %d", i, e.Indices[i], w)
		}
	}

	// A second quad indexes its own vertices.
	AppendQuad(e, 0, 0, 1, 1, 0, 0, 1, 1, 0, White)
	if e.Indices[6] != 4 {
		t.Errorf("second quad first index = %d, want 4", e.Indices[6])
	}
}

func TestWriteSpriteVertices(t *testing.T) {
	e := &Element{}
	AppendQuad(e, 0, 0, 1, 1, 0, 0, 1, 1, 0, RGBA{R: 1, G: 0.5, B: 0.25, A: 1})

	verts := make([]float32, 8*spriteFloatsPerVertex)
	next := WriteSpriteVertices(e, verts, 2)
	if next != 6 {
		t.Fatalf("returned offset = %d, want 6", next)
	}

	// Vertex 0 lands at slot 2.
	o := 2 * spriteFloatsPerVertex
	if verts[o] != 0 || verts[o+1] != 0 {
		t.Errorf("position = (%v, %v), want (0, 0)", verts[o], verts[o+1])
	}
	if verts[o+5] != 1 || verts[o+6] != 0.5 {
		t.Errorf("color = (%v, %v), want (1, 0.5)", verts[o+5], verts[o+6])
	}
	// Slots before the offset stay untouched.
	for i := 0; i < o; i++ {
		if verts[i] != 0 {
			t.Fatalf("verts[%d] = %v, want 0 (untouched)", i, verts[i])
		}
	}
}

func TestWriteSpriteVerticesDefaults(t *testing.T) {
	// Positions only: UVs default to zero, colors to White.
	e := &Element{Positions: []Vec3{{X: 1, Y: 2, Z: 3}}}
	verts := make([]float32, spriteFloatsPerVertex)
	WriteSpriteVertices(e, verts, 0)

	if verts[3] != 0 || verts[4] != 0 {
		t.Errorf("uv = (%v, %v), want (0, 0)", verts[3], verts[4])
	}
	if verts[5] != 1 || verts[8] != 1 {
		t.Errorf("color = (%v ... %v), want White", verts[5], verts[8])
	}
}

func TestSpriteLayout(t *testing.T) {
	layout := SpriteLayout()
	if layout.ArrayStride != 36 {
		t.Errorf("ArrayStride = %d, want 36", layout.ArrayStride)
	}
	if len(layout.Attributes) != 3 {
		t.Fatalf("got %d attributes, want 3", len(layout.Attributes))
	}
	wantOffsets := []uint64{0, 12, 20}
	for i, w := range wantOffsets {
		if layout.Attributes[i].Offset != w {
			t.Errorf("attribute %d offset = %d, want %d", i, layout.Attributes[i].Offset, w)
		}
	}
}
