// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package text turns strings into per-glyph quads consumable by the
// render2d batcher.
//
// Shaping is delegated to go-text/typesetting's HarfBuzz implementation,
// with mixed-direction text split into bidi runs first. The package does
// not rasterize glyphs or manage atlases: atlas UV lookup is supplied by
// the caller through [AtlasFunc], and glyphs without an atlas entry are
// skipped. The output of [QuadBuilder.Layout] plus [AppendQuads] is a
// regular render element, batched like any sprite.
package text
