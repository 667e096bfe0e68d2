// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package text

import (
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// GlyphID identifies a glyph within its font.
type GlyphID uint16

// ShapedGlyph is one positioned glyph produced by shaping: pen-relative
// position plus the advance to the next glyph, in pixels.
type ShapedGlyph struct {
	GID     GlyphID
	Cluster int
	X, Y    float64

	XAdvance float64
	YAdvance float64
}

// Shaper shapes strings into positioned glyphs via HarfBuzz.
//
// Shaper is safe for concurrent use: HarfbuzzShaper instances have internal
// mutable state and are pooled, and each Shape call gets its own font.Face.
type Shaper struct {
	pool sync.Pool
}

// NewShaper creates a shaper.
func NewShaper() *Shaper {
	return &Shaper{
		pool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
	}
}

// Shape converts s into positioned glyphs at the given pixel size.
// Mixed-direction text is split into bidi runs first; glyph positions
// accumulate across runs so the result reads as one line.
func (sh *Shaper) Shape(src *Source, s string, size float64) []ShapedGlyph {
	if src == nil || s == "" {
		return nil
	}

	runes := []rune(s)
	var out []ShapedGlyph
	var penX, penY float64

	hb := sh.pool.Get().(*shaping.HarfbuzzShaper)
	defer sh.pool.Put(hb)

	for _, run := range splitRuns(runes) {
		dir := di.DirectionLTR
		if run.rtl {
			dir = di.DirectionRTL
		}
		input := shaping.Input{
			Text:      runes,
			RunStart:  run.start,
			RunEnd:    run.end,
			Direction: dir,
			Face:      src.face(),
			Size:      floatToFixed(size),
			Script:    detectScript(runes[run.start:run.end]),
			Language:  language.NewLanguage("en"),
		}
		output := hb.Shape(input)
		out, penX, penY = appendGlyphs(out, output.Glyphs, dir, penX, penY)
	}

	return out
}

// appendGlyphs converts go-text output glyphs, advancing the pen.
func appendGlyphs(dst []ShapedGlyph, glyphs []shaping.Glyph, dir di.Direction, x, y float64) ([]ShapedGlyph, float64, float64) {
	for _, g := range glyphs {
		sg := ShapedGlyph{
			GID:     GlyphID(uint16(g.GlyphID)),
			Cluster: g.TextIndex(),
			X:       x + fixedToFloat(g.XOffset),
			Y:       y + fixedToFloat(g.YOffset),
		}
		adv := fixedToFloat(g.Advance)
		if dir.IsVertical() {
			sg.YAdvance = adv
			y += adv
		} else {
			sg.XAdvance = adv
			x += adv
		}
		dst = append(dst, sg)
	}
	return dst, x, y
}

// detectScript inspects the runes and returns the script of the first
// non-space rune. Mixed-script runs should be split by the caller.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// floatToFixed converts a float64 font size to fixed.Int26_6.
func floatToFixed(size float64) fixed.Int26_6 {
	return fixed.Int26_6(size * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
