// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package stencil

import (
	"slices"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/render2d"
	"github.com/gogpu/render2d/gpucore"
	"github.com/gogpu/wgpu/hal"
)

// Mask is one registered mask region: the layers it influences and its
// precomputed draw element. A mask with zero influence layers never draws.
type Mask struct {
	// InfluenceLayers is the set of layers this mask affects.
	InfluenceLayers render2d.LayerMask

	// Element is the mask's geometry, drawn into the stencil buffer when
	// the mask enters or leaves scope.
	Element *render2d.Element
}

// MaskedRenderer is a renderer component that participates in masking and
// exposes the material whose stencil state the coordinator adjusts around
// its draw.
type MaskedRenderer interface {
	render2d.Renderer

	// Material returns the material the renderer draws with.
	Material() *gpucore.Material
}

// stencilSnapshot holds the material stencil fields saved by PreRender and
// restored by PostRender.
type stencilSnapshot struct {
	enabled   bool
	ref       uint32
	writeMask uint32
	front     hal.StencilFaceState
	back      hal.StencilFaceState
}

// Coordinator tracks active masks and keeps the stencil buffer consistent
// with each renderer's mask-layer membership. It owns a dedicated batcher
// for mask geometry and a scratch snapshot of the renderer's stencil state;
// there is no global mutable state.
//
// Coordinator is frame-synchronous and not safe for concurrent use.
type Coordinator struct {
	masks []*Mask

	// prev is the mask layer of the last renderer drawn this frame.
	prev render2d.LayerMask

	batcher *render2d.Batcher

	// incrementState and decrementState are the chunk state overrides for
	// mask draws. They live on the coordinator so override pointers stay
	// stable and increment draws batch with each other.
	incrementState gpucore.RenderState
	decrementState gpucore.RenderState

	snapshot      stencilSnapshot
	snapshotValid bool
}

// NewCoordinator creates a coordinator with its own mask batcher.
func NewCoordinator() *Coordinator {
	return &Coordinator{
		batcher:        render2d.NewBatcher(render2d.SpriteLayout(), render2d.CanBatchSprites, render2d.WriteSpriteVertices),
		incrementState: maskWriteState(hal.StencilOperationIncrementClamp),
		decrementState: maskWriteState(hal.StencilOperationDecrementClamp),
	}
}

// maskWriteState is the render state for drawing mask geometry into the
// stencil buffer: always-pass compare, no color writes, and the given
// saturating pass operation on both faces.
func maskWriteState(op hal.StencilOperation) gpucore.RenderState {
	st := gpucore.NewRenderState()
	st.StencilEnabled = true
	st.StencilRef = 1
	face := hal.StencilFaceState{
		Compare:     gputypes.CompareFunctionAlways,
		FailOp:      hal.StencilOperationKeep,
		DepthFailOp: hal.StencilOperationKeep,
		PassOp:      op,
	}
	st.StencilFront = face
	st.StencilBack = face
	st.ColorWrite = gputypes.ColorWriteMaskNone
	return st
}

// AddMask registers a mask. Masks draw in registration order.
func (c *Coordinator) AddMask(m *Mask) {
	c.masks = append(c.masks, m)
}

// RemoveMask unregisters a mask.
func (c *Coordinator) RemoveMask(m *Mask) {
	if i := slices.Index(c.masks, m); i >= 0 {
		c.masks = slices.Delete(c.masks, i, i+1)
	}
}

// Masks returns the registered masks in draw order.
func (c *Coordinator) Masks() []*Mask { return c.masks }

// Clear unregisters all masks and forgets the previous mask layer.
func (c *Coordinator) Clear() {
	for i := range c.masks {
		c.masks[i] = nil
	}
	c.masks = c.masks[:0]
	c.prev = render2d.LayerNone
	c.batcher.Clear()
}

// PreRender brings the stencil buffer up to date for the renderer about to
// draw, and redirects the renderer's material stencil state so its geometry
// is clipped by the mask count.
//
// Renderers with MaskInteractionNone are ignored. Otherwise the material's
// stencil fields are saved (PostRender restores them), the stencil test is
// forced on with write mask zero and reference one, and the compare
// function selects inside (LessEqual) or outside (Greater) visibility.
// Masks whose influence layers enter scope relative to the previous
// renderer are drawn with increment-clamp, leaving ones with
// decrement-clamp, then the mask batcher flushes so all stencil writes land
// before the renderer draws.
func (c *Coordinator) PreRender(sub gpucore.Submitter, r MaskedRenderer, camera *render2d.Camera) error {
	interaction := r.MaskInteraction()
	if interaction == render2d.MaskInteractionNone {
		return nil
	}

	st := &r.Material().State
	c.snapshot = stencilSnapshot{
		enabled:   st.StencilEnabled,
		ref:       st.StencilRef,
		writeMask: st.StencilWriteMask,
		front:     st.StencilFront,
		back:      st.StencilBack,
	}
	c.snapshotValid = true

	st.StencilEnabled = true
	st.StencilWriteMask = 0
	st.StencilRef = 1
	cmp := gputypes.CompareFunctionLessEqual
	if interaction == render2d.MaskInteractionVisibleOutside {
		cmp = gputypes.CompareFunctionGreater
	}
	st.StencilFront.Compare = cmp
	st.StencilBack.Compare = cmp

	cur := r.MaskLayer()
	if cur == c.prev {
		// Consecutive renderers with identical masking: the stencil buffer
		// is already correct.
		return nil
	}

	common := c.prev.And(cur)
	toAdd := cur.AndNot(c.prev)
	toRemove := c.prev.AndNot(cur)

	render2d.Logger().Debug("stencil: mask diff",
		"prev", c.prev, "cur", cur,
		"common", common, "add", toAdd, "remove", toRemove)

	for _, m := range c.masks {
		if m.Element == nil || m.InfluenceLayers == render2d.LayerNone {
			continue
		}
		// A mask touching a common layer is skipped before the entering and
		// leaving sets are examined, even when it also touches an entering
		// bit. Partial overlap is not updated; see TestMaskSpanningCommonAndAdd.
		if m.InfluenceLayers.Intersects(common) {
			continue
		}
		switch {
		case m.InfluenceLayers.Intersects(toAdd):
			m.Element.Camera = camera
			m.Element.StateOverride = &c.incrementState
			if err := c.batcher.Draw(sub, m.Element); err != nil {
				// Drop the queued mask draws: a later PreRender must not
				// flush them under another renderer's camera.
				c.batcher.Clear()
				return err
			}
		case m.InfluenceLayers.Intersects(toRemove):
			m.Element.Camera = camera
			m.Element.StateOverride = &c.decrementState
			if err := c.batcher.Draw(sub, m.Element); err != nil {
				c.batcher.Clear()
				return err
			}
		}
	}

	return c.batcher.Flush(sub)
}

// PostRender records the renderer's mask layer as the new previous layer
// and restores the material stencil fields saved by PreRender. Renderers
// with MaskInteractionNone are ignored.
func (c *Coordinator) PostRender(r MaskedRenderer) {
	if r.MaskInteraction() == render2d.MaskInteractionNone {
		return
	}
	c.prev = r.MaskLayer()

	if !c.snapshotValid {
		return
	}
	st := &r.Material().State
	st.StencilEnabled = c.snapshot.enabled
	st.StencilRef = c.snapshot.ref
	st.StencilWriteMask = c.snapshot.writeMask
	st.StencilFront = c.snapshot.front
	st.StencilBack = c.snapshot.back
	c.snapshotValid = false
}

// EndFrame resets the previous mask layer so the next frame's first diff
// starts from an empty stencil buffer.
func (c *Coordinator) EndFrame() {
	c.prev = render2d.LayerNone
}

// PreviousLayer returns the mask layer recorded by the last PostRender.
func (c *Coordinator) PreviousLayer() render2d.LayerMask { return c.prev }
