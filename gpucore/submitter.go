// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpucore

import "errors"

// Submitter errors.
var (
	// ErrProgramCompile is returned when a material's shader fails to
	// compile into a valid program. Callers treat this as non-fatal and
	// skip the affected draw.
	ErrProgramCompile = errors.New("gpucore: shader program compilation failed")

	// ErrUnknownMesh is returned when drawing with a MeshID that was never
	// uploaded.
	ErrUnknownMesh = errors.New("gpucore: unknown mesh id")

	// ErrUnknownProgram is returned when drawing with an unbound or invalid
	// ProgramID.
	ErrUnknownProgram = errors.New("gpucore: unknown program id")
)

// Submitter is the GPU submission service consumed by the batching layer.
// Implementations own the device; render2d only issues commands.
//
// All methods are synchronous and must be called from the render thread.
// Failures are reported on the call that caused them, never retried.
type Submitter interface {
	// CompileProgram compiles the material's shader into a program,
	// specialized by the given macro definitions. Implementations should
	// cache by material name and macros. A compile failure returns
	// InvalidID and an error wrapping ErrProgramCompile.
	CompileProgram(mat *Material, macros []string) (ProgramID, error)

	// BindProgram makes the program current for subsequent uniform uploads
	// and draws.
	BindProgram(id ProgramID)

	// UploadUniformBlock uploads an opaque uniform data block to the named
	// block of the program.
	UploadUniformBlock(id ProgramID, block string, data []byte)

	// ApplyRenderState applies mutable pipeline state for subsequent draws.
	ApplyRenderState(st *RenderState)

	// UploadMesh uploads packed vertex and index data. Pass InvalidID to
	// allocate a new mesh; the returned MeshID identifies the GPU copy on
	// subsequent calls. Indices are packed little-endian at the width given
	// by format; format IndexFormatNone uploads no index data.
	UploadMesh(id MeshID, vertices []float32, indices []byte, format IndexFormat) MeshID

	// DrawPrimitive issues one draw call for the given sub-mesh range using
	// the given program.
	DrawPrimitive(mesh MeshID, sub SubMesh, prog ProgramID) error
}
