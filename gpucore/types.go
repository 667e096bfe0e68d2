// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpucore

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// Resource IDs
//
// These opaque IDs represent GPU resources. Each Submitter implementation
// maintains a mapping between IDs and actual backend resources.
// IDs are uint64 to accommodate various backend handle sizes.

// ProgramID is an opaque handle to a compiled and linked shader program.
type ProgramID uint64

// MeshID is an opaque handle to a GPU-resident vertex/index buffer pair.
type MeshID uint64

// InvalidID is the zero value, representing an invalid/null resource.
const InvalidID = 0

// IndexFormat specifies the element width of an index buffer.
// The width is always the smallest that holds every index value; it may be
// promoted, never demoted, within one upload cycle.
type IndexFormat uint8

// Index formats.
const (
	// IndexFormatNone means the mesh has no index buffer.
	IndexFormatNone IndexFormat = iota

	// IndexFormatUint8 is 8-bit indices.
	IndexFormatUint8

	// IndexFormatUint16 is 16-bit indices.
	IndexFormatUint16

	// IndexFormatUint32 is 32-bit indices.
	IndexFormatUint32
)

// ByteSize returns the size of one index element in bytes.
func (f IndexFormat) ByteSize() int {
	switch f {
	case IndexFormatUint8:
		return 1
	case IndexFormatUint16:
		return 2
	case IndexFormatUint32:
		return 4
	default:
		return 0
	}
}

// String returns the string representation of IndexFormat.
func (f IndexFormat) String() string {
	switch f {
	case IndexFormatNone:
		return "None"
	case IndexFormatUint8:
		return "Uint8"
	case IndexFormatUint16:
		return "Uint16"
	case IndexFormatUint32:
		return "Uint32"
	default:
		return "Unknown"
	}
}

// RenderState is the mutable per-draw pipeline state applied via
// [Submitter.ApplyRenderState]. The stencil fields reuse the wgpu HAL
// vocabulary so a hardware backend can forward them unconverted.
type RenderState struct {
	// StencilEnabled turns the stencil test on.
	StencilEnabled bool

	// StencilRef is the reference value compared against the stencil buffer.
	StencilRef uint32

	// StencilReadMask masks the bits read during the stencil compare.
	StencilReadMask uint32

	// StencilWriteMask masks the bits written by stencil operations.
	StencilWriteMask uint32

	// StencilFront is the stencil behavior for front-facing primitives.
	StencilFront hal.StencilFaceState

	// StencilBack is the stencil behavior for back-facing primitives.
	StencilBack hal.StencilFaceState

	// Blend is the color blend configuration. Nil means no blending.
	Blend *gputypes.BlendState

	// ColorWrite selects the color channels written by the draw.
	ColorWrite gputypes.ColorWriteMask
}

// NewRenderState returns the default state for 2D drawing: stencil off,
// premultiplied alpha blending, all color channels written.
func NewRenderState() RenderState {
	blend := gputypes.BlendStatePremultiplied()
	face := hal.StencilFaceState{
		Compare:     gputypes.CompareFunctionAlways,
		FailOp:      hal.StencilOperationKeep,
		DepthFailOp: hal.StencilOperationKeep,
		PassOp:      hal.StencilOperationKeep,
	}
	return RenderState{
		StencilReadMask:  0xFF,
		StencilWriteMask: 0xFF,
		StencilFront:     face,
		StencilBack:      face,
		Blend:            &blend,
		ColorWrite:       gputypes.ColorWriteMaskAll,
	}
}

// Material selects the shader program and baseline render state for a draw.
// Elements sharing the same *Material pointer are candidates for batching.
type Material struct {
	// Name identifies the material in logs and program caches.
	Name string

	// WGSL is the shader source. Empty selects the backend's built-in
	// 2D program, which every backend must provide.
	WGSL string

	// State is the baseline render state for draws with this material.
	State RenderState
}

// SubMesh is one draw-call-sized slice of a shared index buffer.
type SubMesh struct {
	// IndexStart is the first index element of the range.
	IndexStart int

	// IndexCount is the number of index elements in the range.
	IndexCount int

	// Topology is the primitive topology of the range.
	Topology gputypes.PrimitiveTopology
}

// TriangleRange returns a triangle-list SubMesh covering
// [start, start+count).
func TriangleRange(start, count int) SubMesh {
	return SubMesh{
		IndexStart: start,
		IndexCount: count,
		Topology:   gputypes.PrimitiveTopologyTriangleList,
	}
}
