// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package mesh provides CPU-side mesh data buffers with a dirty-flag
// upload lifecycle.
//
// A [DataBuffer] owns per-vertex attribute arrays and an index array.
// While the buffer is accessible, attributes and indices may be set any
// number of times; edits are coalesced and packed into a single interleaved
// GPU upload by [DataBuffer.UploadData]. Uploading with releaseCPUCopy
// drops the CPU arrays, after which every accessor fails with
// [ErrNotAccessible].
//
// Getters return the exact slice instance last set — a borrowed view with
// the same backing storage, never a defensive copy — so callers can inspect
// geometry without allocation. The buffer exclusively owns those arrays;
// callers must not mutate them concurrently with an upload.
package mesh
