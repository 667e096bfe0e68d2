// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package mesh

import "fmt"

// Kind identifies a per-vertex attribute.
type Kind uint8

// Vertex attribute kinds, in interleave order.
const (
	KindPosition Kind = iota
	KindNormal
	KindColor
	KindTangent
	KindBoneWeight
	KindBoneIndex
	KindUV0
	KindUV1
	KindUV2
	KindUV3
	KindUV4
	KindUV5
	KindUV6
	KindUV7

	kindCount
)

// UVChannelCount is the number of UV channels a buffer carries.
const UVChannelCount = 8

// Components returns the number of float32 components the attribute
// occupies in the interleaved buffer.
func (k Kind) Components() int {
	switch k {
	case KindPosition, KindNormal:
		return 3
	case KindColor, KindTangent, KindBoneWeight, KindBoneIndex:
		return 4
	case KindUV0, KindUV1, KindUV2, KindUV3, KindUV4, KindUV5, KindUV6, KindUV7:
		return 2
	default:
		return 0
	}
}

// String returns the string representation of Kind.
func (k Kind) String() string {
	switch k {
	case KindPosition:
		return "Position"
	case KindNormal:
		return "Normal"
	case KindColor:
		return "Color"
	case KindTangent:
		return "Tangent"
	case KindBoneWeight:
		return "BoneWeight"
	case KindBoneIndex:
		return "BoneIndex"
	case KindUV0, KindUV1, KindUV2, KindUV3, KindUV4, KindUV5, KindUV6, KindUV7:
		return fmt.Sprintf("UV%d", k-KindUV0)
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(k))
	}
}

func (k Kind) bit() uint16 { return 1 << k }
