package render2d

import "fmt"

// LayerMask is a bitmask of named clipping layers. A renderer participates
// in zero or more layers; a stencil mask influences zero or more layers.
// The algebra below is what the mask diff in the stencil package runs on.
//
// Layer counts beyond 32 would need a wider set type with the same
// And/AndNot operations; one machine word covers every engine we target.
type LayerMask uint32

// Predefined layer masks.
const (
	// LayerNone matches no layers.
	LayerNone LayerMask = 0

	// LayerAll matches every layer.
	LayerAll LayerMask = 0xFFFFFFFF
)

// Layer returns the mask with only bit i set. i must be in [0, 32).
func Layer(i int) LayerMask {
	return 1 << i
}

// And returns the layers present in both masks.
func (m LayerMask) And(n LayerMask) LayerMask { return m & n }

// AndNot returns the layers present in m but not in n.
func (m LayerMask) AndNot(n LayerMask) LayerMask { return m &^ n }

// Or returns the union of both masks.
func (m LayerMask) Or(n LayerMask) LayerMask { return m | n }

// Intersects reports whether the masks share at least one layer.
func (m LayerMask) Intersects(n LayerMask) bool { return m&n != 0 }

// MaskInteraction describes how a renderer participates in stencil masking.
type MaskInteraction uint8

const (
	// MaskInteractionNone ignores masks entirely.
	MaskInteractionNone MaskInteraction = iota

	// MaskInteractionVisibleInside renders only pixels covered by the
	// renderer's mask layers.
	MaskInteractionVisibleInside

	// MaskInteractionVisibleOutside renders only pixels not covered by the
	// renderer's mask layers.
	MaskInteractionVisibleOutside
)

// String returns the string representation of MaskInteraction.
func (i MaskInteraction) String() string {
	switch i {
	case MaskInteractionNone:
		return "None"
	case MaskInteractionVisibleInside:
		return "VisibleInside"
	case MaskInteractionVisibleOutside:
		return "VisibleOutside"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(i))
	}
}
