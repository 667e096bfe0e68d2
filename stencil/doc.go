// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package stencil coordinates stencil-buffer mask regions for 2D rendering.
//
// Overlapping masks cannot share a boolean stencil flag: a pixel covered by
// two masks must stay masked when one of them leaves scope. The stencil
// buffer therefore holds a saturating count per pixel, and masks are drawn
// with increment-clamp when they enter scope and decrement-clamp when they
// leave.
//
// The [Coordinator] keeps the count correct incrementally. Before each
// masked renderer draws, it diffs the renderer's mask-layer bitmask against
// the previous renderer's: layers present in both are already in the
// correct stencil state, entering layers get their masks incremented, and
// leaving layers get theirs decremented. Consecutive renderers with
// identical masking — the common case — skip the diff entirely.
package stencil
