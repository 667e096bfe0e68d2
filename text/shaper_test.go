// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package text

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/render2d"
)

func testSource(t *testing.T) *Source {
	t.Helper()
	src, err := NewSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewSource(goregular) = %v", err)
	}
	return src
}

func TestNewSourceRejectsGarbage(t *testing.T) {
	if _, err := NewSource([]byte("not a font")); err == nil {
		t.Error("NewSource(garbage) = nil error, want parse failure")
	}
}

func TestShapeBasic(t *testing.T) {
	src := testSource(t)
	sh := NewShaper()

	glyphs := sh.Shape(src, "Hello", 16)
	if len(glyphs) != 5 {
		t.Fatalf("Shape(%q) produced %d glyphs, want 5", "Hello", len(glyphs))
	}

	// Pen advances monotonically for LTR text.
	var x float64
	for i, g := range glyphs {
		if g.X < x {
			t.Errorf("glyph %d X = %v, earlier pen was %v", i, g.X, x)
		}
		if g.XAdvance <= 0 {
			t.Errorf("glyph %d XAdvance = %v, want > 0", i, g.XAdvance)
		}
		x = g.X
	}

	// Clusters map back to rune indices in order.
	for i, g := range glyphs {
		if g.Cluster != i {
			t.Errorf("glyph %d cluster = %d, want %d", i, g.Cluster, i)
		}
	}
}

func TestShapeEmptyAndNil(t *testing.T) {
	sh := NewShaper()
	if got := sh.Shape(nil, "abc", 16); got != nil {
		t.Errorf("Shape(nil source) = %v, want nil", got)
	}
	if got := sh.Shape(testSource(t), "", 16); got != nil {
		t.Errorf("Shape(empty string) = %v, want nil", got)
	}
}

func TestShapeSizeScalesAdvance(t *testing.T) {
	src := testSource(t)
	sh := NewShaper()

	small := sh.Shape(src, "m", 10)
	large := sh.Shape(src, "m", 20)
	if len(small) != 1 || len(large) != 1 {
		t.Fatalf("got %d and %d glyphs, want 1 and 1", len(small), len(large))
	}
	if large[0].XAdvance <= small[0].XAdvance {
		t.Errorf("advance at size 20 (%v) not larger than at size 10 (%v)",
			large[0].XAdvance, small[0].XAdvance)
	}
}

func TestSplitRunsMixedDirection(t *testing.T) {
	// Latin, then Hebrew, then Latin: three runs with the middle one RTL.
	runes := []rune("ab אב cd")
	runs := splitRuns(runes)
	if len(runs) < 2 {
		t.Fatalf("got %d runs, want at least 2", len(runs))
	}

	// Runs must tile the rune range in logical order.
	pos := 0
	sawRTL := false
	for i, r := range runs {
		if r.start != pos {
			t.Errorf("run %d starts at %d, want %d", i, r.start, pos)
		}
		if r.end <= r.start {
			t.Errorf("run %d is empty: [%d,%d)", i, r.start, r.end)
		}
		pos = r.end
		sawRTL = sawRTL || r.rtl
	}
	if pos != len(runes) {
		t.Errorf("runs end at %d, want %d", pos, len(runes))
	}
	if !sawRTL {
		t.Error("no RTL run found for Hebrew text")
	}
}

func TestSplitRunsNeutralText(t *testing.T) {
	runs := splitRuns([]rune("hello"))
	if len(runs) != 1 {
		t.Fatalf("got %d runs, want 1", len(runs))
	}
	if runs[0].start != 0 || runs[0].end != 5 || runs[0].rtl {
		t.Errorf("run = %+v, want {0 5 false}", runs[0])
	}
	if got := splitRuns(nil); got != nil {
		t.Errorf("splitRuns(nil) = %v, want nil", got)
	}
}

func TestQuadBuilderLayout(t *testing.T) {
	src := testSource(t)

	atlas := func(gid GlyphID) (UVRect, bool) {
		return UVRect{U0: 0, V0: 0, U1: 1, V1: 1}, true
	}
	qb := NewQuadBuilder(atlas)

	quads := qb.Layout(src, "Hi", 16, 100, 50)
	if len(quads) != 2 {
		t.Fatalf("got %d quads, want 2", len(quads))
	}
	for i, q := range quads {
		if q.X1 <= q.X0 {
			t.Errorf("quad %d has non-positive width: [%v, %v]", i, q.X0, q.X1)
		}
		// Baseline at y=50, cell spans one em above it.
		if q.Y1 != 50 || q.Y0 != 50-16 {
			t.Errorf("quad %d vertical span = [%v, %v], want [34, 50]", i, q.Y0, q.Y1)
		}
	}
	if quads[0].X0 != 100 {
		t.Errorf("first quad starts at %v, want 100 (the pen origin)", quads[0].X0)
	}
	if quads[1].X0 <= quads[0].X0 {
		t.Error("second quad did not advance past the first")
	}
}

func TestQuadBuilderSkipsMissingGlyphs(t *testing.T) {
	src := testSource(t)

	noAtlas := func(gid GlyphID) (UVRect, bool) { return UVRect{}, false }
	qb := NewQuadBuilder(noAtlas)

	if quads := qb.Layout(src, "Hi", 16, 0, 0); len(quads) != 0 {
		t.Errorf("got %d quads with empty atlas, want 0", len(quads))
	}
}

func TestAppendQuads(t *testing.T) {
	e := &render2d.Element{}
	quads := []Quad{
		{X0: 0, Y0: 0, X1: 1, Y1: 1, UV: UVRect{U1: 1, V1: 1}},
		{X0: 2, Y0: 0, X1: 3, Y1: 1, UV: UVRect{U1: 1, V1: 1}},
	}
	AppendQuads(e, quads, 0.5, render2d.White)

	if got := e.VertexCount(); got != 8 {
		t.Errorf("VertexCount() = %d, want 8", got)
	}
	if len(e.Indices) != 12 {
		t.Errorf("got %d indices, want 12", len(e.Indices))
	}
	// Second quad's indices reference its own vertices.
	if e.Indices[6] != 4 {
		t.Errorf("second quad first index = %d, want 4", e.Indices[6])
	}
	for _, p := range e.Positions {
		if p.Z != 0.5 {
			t.Errorf("vertex depth = %v, want 0.5", p.Z)
			break
		}
	}
}
