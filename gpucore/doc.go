// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package gpucore defines the boundary between render2d and a GPU
// submission backend.
//
// render2d never talks to a device directly. Everything it needs from the
// GPU — program compilation, render state, buffer upload, draw calls — goes
// through the [Submitter] interface. Resources are identified by opaque
// uint64 handles ([ProgramID], [MeshID]); each backend maintains its own
// mapping from handles to real GPU objects.
//
// The package ships one Submitter implementation, [SoftwareSubmitter],
// which validates WGSL through naga and records every call. It serves as
// the test double and as a CPU fallback when no device is available.
package gpucore
