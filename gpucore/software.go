// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpucore

import (
	"fmt"
	"strings"
)

// MeshUpload is the recorded CPU copy of one UploadMesh call.
type MeshUpload struct {
	// Mesh is the handle the data was uploaded to.
	Mesh MeshID

	// Vertices is a copy of the packed vertex data.
	Vertices []float32

	// Indices is a copy of the packed index data.
	Indices []byte

	// Format is the index element width.
	Format IndexFormat
}

// UniformUpload is the recorded copy of one UploadUniformBlock call.
type UniformUpload struct {
	Program ProgramID
	Block   string
	Data    []byte
}

// DrawCall is the recorded outcome of one DrawPrimitive call, including the
// render state in effect when the draw was issued.
type DrawCall struct {
	Mesh    MeshID
	Sub     SubMesh
	Program ProgramID
	State   RenderState
}

// SoftwareSubmitter is a Submitter that validates shaders through naga and
// records every submission instead of touching a device. It is the test
// double for the batching layer and the fallback path when the host has no
// GPU device.
//
// SoftwareSubmitter is not safe for concurrent use; like the batcher that
// feeds it, it belongs to the render thread.
type SoftwareSubmitter struct {
	handle DeviceHandle

	nextID   uint64
	programs map[string]ProgramID
	spirv    map[ProgramID][]uint32
	meshes   map[MeshID]MeshUpload

	bound ProgramID
	state RenderState

	// Recorded submissions, in call order. Inspect after a flush; call
	// Reset to clear between frames.
	Uploads  []MeshUpload
	Uniforms []UniformUpload
	Draws    []DrawCall
}

// NewSoftwareSubmitter creates a software submitter. The handle may be
// NullDeviceHandle; a missing device only means recorded submissions are
// never forwarded to hardware.
func NewSoftwareSubmitter(handle DeviceHandle) *SoftwareSubmitter {
	if handle == nil {
		handle = NullDeviceHandle{}
	}
	if handle.Device() == nil {
		slogger().Debug("gpucore: no device available, recording submissions on CPU")
	}
	return &SoftwareSubmitter{
		handle:   handle,
		programs: make(map[string]ProgramID),
		spirv:    make(map[ProgramID][]uint32),
		meshes:   make(map[MeshID]MeshUpload),
		state:    NewRenderState(),
	}
}

// CompileProgram compiles the material's WGSL through naga, caching by
// material name and macros. A material with empty WGSL resolves to the
// built-in 2D program without invoking the compiler.
func (s *SoftwareSubmitter) CompileProgram(mat *Material, macros []string) (ProgramID, error) {
	if mat == nil {
		return InvalidID, fmt.Errorf("%w: nil material", ErrProgramCompile)
	}

	key := mat.Name + "\x00" + strings.Join(macros, "\x00")
	if id, ok := s.programs[key]; ok {
		return id, nil
	}

	id := s.newID()
	if mat.WGSL != "" {
		code, err := CompileWGSL(mat.WGSL)
		if err != nil {
			return InvalidID, fmt.Errorf("%w: material %q: %w", ErrProgramCompile, mat.Name, err)
		}
		s.spirv[ProgramID(id)] = code
	}

	s.programs[key] = ProgramID(id)
	return ProgramID(id), nil
}

// BindProgram makes the program current.
func (s *SoftwareSubmitter) BindProgram(id ProgramID) {
	s.bound = id
}

// BoundProgram returns the currently bound program.
func (s *SoftwareSubmitter) BoundProgram() ProgramID {
	return s.bound
}

// UploadUniformBlock records a copy of the uniform data.
func (s *SoftwareSubmitter) UploadUniformBlock(id ProgramID, block string, data []byte) {
	s.Uniforms = append(s.Uniforms, UniformUpload{
		Program: id,
		Block:   block,
		Data:    append([]byte(nil), data...),
	})
}

// ApplyRenderState makes st current for subsequent draws.
func (s *SoftwareSubmitter) ApplyRenderState(st *RenderState) {
	if st == nil {
		return
	}
	s.state = *st
}

// State returns the render state currently in effect.
func (s *SoftwareSubmitter) State() RenderState {
	return s.state
}

// UploadMesh records a copy of the packed vertex and index data. Pass
// InvalidID to allocate a new mesh handle.
func (s *SoftwareSubmitter) UploadMesh(id MeshID, vertices []float32, indices []byte, format IndexFormat) MeshID {
	if id == InvalidID {
		id = MeshID(s.newID())
	}
	up := MeshUpload{
		Mesh:     id,
		Vertices: append([]float32(nil), vertices...),
		Indices:  append([]byte(nil), indices...),
		Format:   format,
	}
	s.meshes[id] = up
	s.Uploads = append(s.Uploads, up)
	return id
}

// DrawPrimitive records one draw call with the current render state.
func (s *SoftwareSubmitter) DrawPrimitive(mesh MeshID, sub SubMesh, prog ProgramID) error {
	if _, ok := s.meshes[mesh]; !ok {
		return fmt.Errorf("%w: %d", ErrUnknownMesh, mesh)
	}
	if prog == InvalidID {
		return fmt.Errorf("%w: %d", ErrUnknownProgram, prog)
	}
	s.Draws = append(s.Draws, DrawCall{
		Mesh:    mesh,
		Sub:     sub,
		Program: prog,
		State:   s.state,
	})
	return nil
}

// Reset clears recorded submissions. Uploaded meshes and compiled programs
// survive so handles stay valid across frames.
func (s *SoftwareSubmitter) Reset() {
	s.Uploads = s.Uploads[:0]
	s.Uniforms = s.Uniforms[:0]
	s.Draws = s.Draws[:0]
}

func (s *SoftwareSubmitter) newID() uint64 {
	s.nextID++
	return s.nextID
}
