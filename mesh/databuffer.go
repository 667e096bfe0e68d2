// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package mesh

import (
	"errors"
	"fmt"

	"github.com/gogpu/render2d"
	"github.com/gogpu/render2d/gpucore"
)

// DataBuffer errors.
var (
	// ErrNotAccessible is returned by every accessor after the CPU copy has
	// been released by UploadData(releaseCPUCopy=true).
	ErrNotAccessible = errors.New("mesh: not allowed to access data while accessible is false")

	// ErrSizeMismatch is returned when an attribute array's length differs
	// from the established vertex count. The buffer is left unchanged.
	ErrSizeMismatch = errors.New("mesh: array provided needs to be the same size as vertex count")

	// ErrInvalidUVChannel is returned for UV channels outside [0, 8).
	ErrInvalidUVChannel = errors.New("mesh: uv channel out of range")
)

// DataBuffer owns the CPU-side vertex and index data of one mesh object.
// See the package documentation for the lifecycle.
//
// DataBuffer is exclusively owned by its mesh and frame-synchronous; it is
// not safe for concurrent use.
type DataBuffer struct {
	accessible bool

	vertexCount        int
	uploadedCount      int
	vertexCountChanged bool

	positions   []render2d.Vec3
	normals     []render2d.Vec3
	colors      []render2d.RGBA
	tangents    [][4]float32
	boneWeights [][4]float32
	boneIndices [][4]uint16
	uvs         [UVChannelCount][]render2d.Vec2

	// dirty has one bit per Kind, set when the attribute changed since the
	// last upload.
	dirty uint16

	indices     []uint32
	indexFormat gpucore.IndexFormat
	indexDirty  bool

	// cycleFormat is the widest format seen since the last upload; within
	// one upload cycle the format only grows. A new cycle starts at upload.
	cycleFormat gpucore.IndexFormat

	packed        []float32
	packedIndices []byte
	gpuMesh       gpucore.MeshID
}

// NewDataBuffer creates an empty, accessible data buffer.
func NewDataBuffer() *DataBuffer {
	return &DataBuffer{accessible: true, uploadedCount: -1}
}

// Accessible reports whether CPU-side data may still be read and written.
func (b *DataBuffer) Accessible() bool { return b.accessible }

// VertexCount returns the vertex count established by SetPositions.
func (b *DataBuffer) VertexCount() int { return b.vertexCount }

// GPUMesh returns the handle of the GPU copy, or InvalidID before the
// first upload.
func (b *DataBuffer) GPUMesh() gpucore.MeshID { return b.gpuMesh }

// SetPositions stores the position array and establishes the vertex count.
// A count change is remembered so the next upload reallocates the
// interleaved buffer.
func (b *DataBuffer) SetPositions(values []render2d.Vec3) error {
	if !b.accessible {
		return ErrNotAccessible
	}
	b.positions = values
	b.vertexCount = len(values)
	if b.vertexCount != b.uploadedCount {
		b.vertexCountChanged = true
	}
	b.dirty |= KindPosition.bit()
	return nil
}

// GetPositions returns the exact position array last set.
func (b *DataBuffer) GetPositions() ([]render2d.Vec3, error) {
	if !b.accessible {
		return nil, ErrNotAccessible
	}
	return b.positions, nil
}

// SetNormals stores the normal array. Its length must equal the vertex
// count.
func (b *DataBuffer) SetNormals(values []render2d.Vec3) error {
	if err := b.checkSet(len(values)); err != nil {
		return err
	}
	b.normals = values
	b.dirty |= KindNormal.bit()
	return nil
}

// GetNormals returns the exact normal array last set.
func (b *DataBuffer) GetNormals() ([]render2d.Vec3, error) {
	if !b.accessible {
		return nil, ErrNotAccessible
	}
	return b.normals, nil
}

// SetColors stores the vertex color array. Its length must equal the
// vertex count.
func (b *DataBuffer) SetColors(values []render2d.RGBA) error {
	if err := b.checkSet(len(values)); err != nil {
		return err
	}
	b.colors = values
	b.dirty |= KindColor.bit()
	return nil
}

// GetColors returns the exact color array last set.
func (b *DataBuffer) GetColors() ([]render2d.RGBA, error) {
	if !b.accessible {
		return nil, ErrNotAccessible
	}
	return b.colors, nil
}

// SetTangents stores the tangent array (xyz + w handedness). Its length
// must equal the vertex count.
func (b *DataBuffer) SetTangents(values [][4]float32) error {
	if err := b.checkSet(len(values)); err != nil {
		return err
	}
	b.tangents = values
	b.dirty |= KindTangent.bit()
	return nil
}

// GetTangents returns the exact tangent array last set.
func (b *DataBuffer) GetTangents() ([][4]float32, error) {
	if !b.accessible {
		return nil, ErrNotAccessible
	}
	return b.tangents, nil
}

// SetBoneWeights stores the bone weight array. Its length must equal the
// vertex count.
func (b *DataBuffer) SetBoneWeights(values [][4]float32) error {
	if err := b.checkSet(len(values)); err != nil {
		return err
	}
	b.boneWeights = values
	b.dirty |= KindBoneWeight.bit()
	return nil
}

// GetBoneWeights returns the exact bone weight array last set.
func (b *DataBuffer) GetBoneWeights() ([][4]float32, error) {
	if !b.accessible {
		return nil, ErrNotAccessible
	}
	return b.boneWeights, nil
}

// SetBoneIndices stores the bone index array. Its length must equal the
// vertex count.
func (b *DataBuffer) SetBoneIndices(values [][4]uint16) error {
	if err := b.checkSet(len(values)); err != nil {
		return err
	}
	b.boneIndices = values
	b.dirty |= KindBoneIndex.bit()
	return nil
}

// GetBoneIndices returns the exact bone index array last set.
func (b *DataBuffer) GetBoneIndices() ([][4]uint16, error) {
	if !b.accessible {
		return nil, ErrNotAccessible
	}
	return b.boneIndices, nil
}

// SetUVs stores a UV array on the given channel (0 to 7). Its length must
// equal the vertex count.
func (b *DataBuffer) SetUVs(channel int, values []render2d.Vec2) error {
	if channel < 0 || channel >= UVChannelCount {
		return fmt.Errorf("%w: %d", ErrInvalidUVChannel, channel)
	}
	if err := b.checkSet(len(values)); err != nil {
		return err
	}
	b.uvs[channel] = values
	b.dirty |= (KindUV0 + Kind(channel)).bit()
	return nil
}

// GetUVs returns the exact UV array last set on the given channel.
func (b *DataBuffer) GetUVs(channel int) ([]render2d.Vec2, error) {
	if channel < 0 || channel >= UVChannelCount {
		return nil, fmt.Errorf("%w: %d", ErrInvalidUVChannel, channel)
	}
	if !b.accessible {
		return nil, ErrNotAccessible
	}
	return b.uvs[channel], nil
}

// SetIndices stores the index array. The index format becomes the smallest
// of 8, 16, or 32 bits that holds every value; within one upload cycle the
// format may only be promoted, never demoted, so re-setting smaller values
// before an upload keeps the wider format.
func (b *DataBuffer) SetIndices(values []uint32) error {
	if !b.accessible {
		return ErrNotAccessible
	}
	if values == nil {
		return b.ClearIndices()
	}
	b.indices = values
	f := minIndexFormat(values)
	if f < b.cycleFormat {
		f = b.cycleFormat
	}
	b.cycleFormat = f
	b.indexFormat = f
	b.indexDirty = true
	return nil
}

// ClearIndices removes the index buffer. The mesh then draws non-indexed.
func (b *DataBuffer) ClearIndices() error {
	if !b.accessible {
		return ErrNotAccessible
	}
	b.indices = nil
	b.indexFormat = gpucore.IndexFormatNone
	b.cycleFormat = gpucore.IndexFormatNone
	b.indexDirty = true
	return nil
}

// GetIndices returns the exact index array last set.
func (b *DataBuffer) GetIndices() ([]uint32, error) {
	if !b.accessible {
		return nil, ErrNotAccessible
	}
	return b.indices, nil
}

// IndexFormat returns the current index element width.
func (b *DataBuffer) IndexFormat() gpucore.IndexFormat { return b.indexFormat }

// checkSet validates accessibility and attribute length. State is left
// unchanged on failure (no partial write).
func (b *DataBuffer) checkSet(n int) error {
	if !b.accessible {
		return ErrNotAccessible
	}
	if n != b.vertexCount {
		return fmt.Errorf("%w: got %d, vertex count %d", ErrSizeMismatch, n, b.vertexCount)
	}
	return nil
}

func minIndexFormat(values []uint32) gpucore.IndexFormat {
	var max uint32
	for _, v := range values {
		if v > max {
			max = v
		}
	}
	switch {
	case max <= 0xFF:
		return gpucore.IndexFormatUint8
	case max <= 0xFFFF:
		return gpucore.IndexFormatUint16
	default:
		return gpucore.IndexFormatUint32
	}
}
