// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package text

import "github.com/gogpu/render2d"

// UVRect is a glyph's atlas region in normalized texture coordinates.
type UVRect struct {
	U0, V0, U1, V1 float32
}

// AtlasFunc looks up a glyph's atlas region. Returning false skips the
// glyph (typically whitespace or a glyph not yet packed).
type AtlasFunc func(gid GlyphID) (UVRect, bool)

// Quad is one glyph quad in pixel coordinates: corners plus atlas UVs.
type Quad struct {
	X0, Y0, X1, Y1 float32
	UV             UVRect
}

// QuadBuilder lays out strings as glyph quads.
type QuadBuilder struct {
	shaper *Shaper
	atlas  AtlasFunc
}

// NewQuadBuilder creates a quad builder using the given atlas lookup.
func NewQuadBuilder(atlas AtlasFunc) *QuadBuilder {
	return &QuadBuilder{
		shaper: NewShaper(),
		atlas:  atlas,
	}
}

// Layout shapes s at the given pixel size and returns one quad per glyph
// with an atlas entry. x, y is the baseline origin; each glyph's cell spans
// one em above the baseline and the glyph's advance in width.
func (qb *QuadBuilder) Layout(src *Source, s string, size float64, x, y float32) []Quad {
	glyphs := qb.shaper.Shape(src, s, size)
	if len(glyphs) == 0 {
		return nil
	}

	quads := make([]Quad, 0, len(glyphs))
	for _, g := range glyphs {
		uv, ok := qb.atlas(g.GID)
		if !ok {
			continue
		}
		gx := x + float32(g.X)
		gy := y + float32(g.Y)
		quads = append(quads, Quad{
			X0: gx,
			Y0: gy - float32(size),
			X1: gx + float32(g.XAdvance),
			Y1: gy,
			UV: uv,
		})
	}
	return quads
}

// AppendQuads expands glyph quads into the element's geometry arrays:
// four vertices and six indices per quad, all with the given depth and
// color. The resulting element batches like any sprite.
func AppendQuads(e *render2d.Element, quads []Quad, z float32, c render2d.RGBA) {
	for _, q := range quads {
		render2d.AppendQuad(e, q.X0, q.Y0, q.X1, q.Y1, q.UV.U0, q.UV.V0, q.UV.U1, q.UV.V1, z, c)
	}
}
