// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package mesh

import (
	"encoding/binary"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/render2d/gpucore"
)

// UploadData packs all dirty attributes and indices into their GPU form and
// uploads them through sub.
//
// The interleaved buffer is sized exactly vertexCount x the sum of the
// enabled attributes' component counts. It is recomputed only when an
// attribute changed or the vertex count changed since the last upload; a
// vertex count change reallocates the buffer rather than resizing it in
// place, so Packed returns a new slice identity after such an upload.
//
// If releaseCPUCopy is true the buffer becomes inaccessible and all source
// array references are dropped; subsequent accessor calls fail with
// ErrNotAccessible.
func (b *DataBuffer) UploadData(sub gpucore.Submitter, releaseCPUCopy bool) error {
	if !b.accessible {
		return ErrNotAccessible
	}
	if err := b.validateLengths(); err != nil {
		return err
	}

	if b.dirty != 0 || b.vertexCountChanged || b.gpuMesh == gpucore.InvalidID {
		b.pack()
		b.packIndices()
		b.gpuMesh = sub.UploadMesh(b.gpuMesh, b.packed, b.packedIndices, b.indexFormat)
	} else if b.indexDirty {
		b.packIndices()
		b.gpuMesh = sub.UploadMesh(b.gpuMesh, b.packed, b.packedIndices, b.indexFormat)
	}

	b.dirty = 0
	b.indexDirty = false
	b.vertexCountChanged = false
	b.uploadedCount = b.vertexCount
	b.cycleFormat = gpucore.IndexFormatNone

	if releaseCPUCopy {
		b.release()
	}
	return nil
}

// Packed returns the interleaved vertex buffer produced by the last upload.
// It is a borrowed view of the buffer's internal storage.
func (b *DataBuffer) Packed() []float32 { return b.packed }

// Stride returns the number of float32 components per vertex in the
// interleaved buffer, given the currently present attributes.
func (b *DataBuffer) Stride() int {
	stride := 0
	for k := KindPosition; k < kindCount; k++ {
		if b.has(k) {
			stride += k.Components()
		}
	}
	return stride
}

// Layout returns the interleaved vertex layout of the present attributes,
// with shader locations assigned in kind order.
func (b *DataBuffer) Layout() gputypes.VertexBufferLayout {
	var attrs []gputypes.VertexAttribute
	offset := uint64(0)
	location := uint32(0)
	for k := KindPosition; k < kindCount; k++ {
		if !b.has(k) {
			continue
		}
		attrs = append(attrs, gputypes.VertexAttribute{
			Format:         kindFormat(k),
			Offset:         offset,
			ShaderLocation: location,
		})
		offset += uint64(k.Components() * 4)
		location++
	}
	return gputypes.VertexBufferLayout{
		ArrayStride: offset,
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes:  attrs,
	}
}

func kindFormat(k Kind) gputypes.VertexFormat {
	switch k.Components() {
	case 2:
		return gputypes.VertexFormatFloat32x2
	case 3:
		return gputypes.VertexFormatFloat32x3
	default:
		return gputypes.VertexFormatFloat32x4
	}
}

// validateLengths re-checks every present attribute against the current
// vertex count. Setters validate on write, but SetPositions may grow the
// count after shorter attributes were stored; packing such a buffer would
// read past the shorter arrays.
func (b *DataBuffer) validateLengths() error {
	check := func(k Kind, n int) error {
		if n != b.vertexCount {
			return fmt.Errorf("%w: %v has %d entries, vertex count %d", ErrSizeMismatch, k, n, b.vertexCount)
		}
		return nil
	}
	if b.normals != nil {
		if err := check(KindNormal, len(b.normals)); err != nil {
			return err
		}
	}
	if b.colors != nil {
		if err := check(KindColor, len(b.colors)); err != nil {
			return err
		}
	}
	if b.tangents != nil {
		if err := check(KindTangent, len(b.tangents)); err != nil {
			return err
		}
	}
	if b.boneWeights != nil {
		if err := check(KindBoneWeight, len(b.boneWeights)); err != nil {
			return err
		}
	}
	if b.boneIndices != nil {
		if err := check(KindBoneIndex, len(b.boneIndices)); err != nil {
			return err
		}
	}
	for ch := 0; ch < UVChannelCount; ch++ {
		if b.uvs[ch] == nil {
			continue
		}
		if err := check(KindUV0+Kind(ch), len(b.uvs[ch])); err != nil {
			return err
		}
	}
	return nil
}

// has reports whether the attribute is present.
func (b *DataBuffer) has(k Kind) bool {
	switch k {
	case KindPosition:
		return b.positions != nil
	case KindNormal:
		return b.normals != nil
	case KindColor:
		return b.colors != nil
	case KindTangent:
		return b.tangents != nil
	case KindBoneWeight:
		return b.boneWeights != nil
	case KindBoneIndex:
		return b.boneIndices != nil
	default:
		if k >= KindUV0 && k <= KindUV7 {
			return b.uvs[k-KindUV0] != nil
		}
		return false
	}
}

// pack interleaves the present attributes. The buffer is reallocated when
// the vertex count changed since the last upload; this identity change is
// part of the observable contract.
func (b *DataBuffer) pack() {
	stride := b.Stride()
	need := b.vertexCount * stride
	if b.vertexCountChanged || b.packed == nil {
		b.packed = make([]float32, need)
	} else if len(b.packed) != need {
		// Attribute set changed without a count change (new attribute
		// enabled); resize to the exact packed length.
		b.packed = make([]float32, need)
	}

	for v := 0; v < b.vertexCount; v++ {
		o := v * stride
		if b.positions != nil {
			p := b.positions[v]
			b.packed[o], b.packed[o+1], b.packed[o+2] = p.X, p.Y, p.Z
			o += 3
		}
		if b.normals != nil {
			n := b.normals[v]
			b.packed[o], b.packed[o+1], b.packed[o+2] = n.X, n.Y, n.Z
			o += 3
		}
		if b.colors != nil {
			c := b.colors[v]
			b.packed[o], b.packed[o+1], b.packed[o+2], b.packed[o+3] = c.R, c.G, c.B, c.A
			o += 4
		}
		if b.tangents != nil {
			t := b.tangents[v]
			b.packed[o], b.packed[o+1], b.packed[o+2], b.packed[o+3] = t[0], t[1], t[2], t[3]
			o += 4
		}
		if b.boneWeights != nil {
			w := b.boneWeights[v]
			b.packed[o], b.packed[o+1], b.packed[o+2], b.packed[o+3] = w[0], w[1], w[2], w[3]
			o += 4
		}
		if b.boneIndices != nil {
			j := b.boneIndices[v]
			b.packed[o] = float32(j[0])
			b.packed[o+1] = float32(j[1])
			b.packed[o+2] = float32(j[2])
			b.packed[o+3] = float32(j[3])
			o += 4
		}
		for ch := 0; ch < UVChannelCount; ch++ {
			if b.uvs[ch] == nil {
				continue
			}
			uv := b.uvs[ch][v]
			b.packed[o], b.packed[o+1] = uv.X, uv.Y
			o += 2
		}
	}
}

// packIndices encodes the index array little-endian at the current format
// width.
func (b *DataBuffer) packIndices() {
	if b.indexFormat == gpucore.IndexFormatNone || b.indices == nil {
		b.packedIndices = nil
		return
	}
	size := b.indexFormat.ByteSize()
	need := len(b.indices) * size
	if cap(b.packedIndices) < need {
		b.packedIndices = make([]byte, need)
	} else {
		b.packedIndices = b.packedIndices[:need]
	}
	for i, idx := range b.indices {
		switch b.indexFormat {
		case gpucore.IndexFormatUint8:
			b.packedIndices[i] = byte(idx)
		case gpucore.IndexFormatUint16:
			binary.LittleEndian.PutUint16(b.packedIndices[i*2:], uint16(idx))
		case gpucore.IndexFormatUint32:
			binary.LittleEndian.PutUint32(b.packedIndices[i*4:], idx)
		}
	}
}

// release drops the CPU copies after an upload with releaseCPUCopy.
func (b *DataBuffer) release() {
	b.accessible = false
	b.positions = nil
	b.normals = nil
	b.colors = nil
	b.tangents = nil
	b.boneWeights = nil
	b.boneIndices = nil
	for ch := range b.uvs {
		b.uvs[ch] = nil
	}
	b.indices = nil
}
