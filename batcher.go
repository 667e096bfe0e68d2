package render2d

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/render2d/gpucore"
)

// Batcher errors.
var (
	// ErrCapacityExceeded is returned when a single element's vertex count
	// exceeds the batcher's vertex budget. The caller must pre-split such
	// geometry; the batcher never truncates.
	ErrCapacityExceeded = errors.New("render2d: element exceeds batcher vertex budget")
)

// defaultVertexBudget keeps every rebased index representable in 16 bits.
// It is a multiple of 4 so quad geometry never straddles the boundary.
const defaultVertexBudget = 65528

// flushBufferCount is the number of shared vertex/index buffers cycled
// round-robin across flushes, so a flush never rewrites a buffer the GPU
// may still be reading.
const flushBufferCount = 3

// CanBatchFunc decides whether cur may share a draw call with prev. It must
// be a pure function of the two elements' visible render state (material,
// camera, mask compatibility, state overrides). Only adjacent pairs in
// submission order are compared; the predicate need not be transitive.
type CanBatchFunc func(prev, cur *Element) bool

// VertexWriterFunc writes the element's vertices into the shared interleaved
// buffer starting at vertex index vertexOffset, and returns the new vertex
// offset. The buffer stride is the batcher layout's ArrayStride. Keeping the
// packing pluggable keeps geometry formats out of the batcher itself.
type VertexWriterFunc func(e *Element, verts []float32, vertexOffset int) int

// flushBuffer is one shared vertex/index buffer pair. The GPU copy is
// created lazily on first upload and reused afterwards.
type flushBuffer struct {
	vertices   []float32
	indexBytes []byte
	mesh       gpucore.MeshID
}

// chunk is a draw-call-sized slice of a flush buffer: a contiguous index
// range plus the representative element whose material/state drives the
// draw.
type chunk struct {
	indexStart int
	indexCount int
	rep        *Element
}

// Batcher merges a frame's render elements into the fewest draw calls that
// preserve submission order. Consecutive elements accepted by the CanBatch
// predicate accumulate into one sub-mesh chunk; a rejected pair starts a
// new chunk. This is a deliberate greedy, order-sensitive heuristic, not
// globally optimal batching: reordering would break draw-order-dependent
// transparency blending.
//
// Batcher is frame-synchronous and not safe for concurrent use. At most
// one flush is in flight at a time.
type Batcher struct {
	layout   gputypes.VertexBufferLayout
	stride   int // floats per vertex
	canBatch CanBatchFunc
	write    VertexWriterFunc
	budget   int

	pending     []*Element
	vertexCount int
	indexCount  int

	buffers     [flushBufferCount]flushBuffer
	bufferIndex int

	chunks []chunk // scratch, reused across flushes
}

// Option configures a Batcher.
type Option func(*Batcher)

// WithVertexBudget overrides the maximum vertex count per flush buffer.
// Budgets above 65536 would overflow 16-bit indices and are clamped.
func WithVertexBudget(n int) Option {
	return func(b *Batcher) {
		if n > 65536 {
			n = 65536
		}
		if n > 0 {
			b.budget = n
		}
	}
}

// NewBatcher creates a batcher for the given interleaved vertex layout,
// compatibility predicate, and vertex writer.
func NewBatcher(layout gputypes.VertexBufferLayout, canBatch CanBatchFunc, write VertexWriterFunc, opts ...Option) *Batcher {
	b := &Batcher{
		layout:   layout,
		stride:   int(layout.ArrayStride) / 4,
		canBatch: canBatch,
		write:    write,
		budget:   defaultVertexBudget,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// VertexBudget returns the maximum vertex count per flush buffer.
func (b *Batcher) VertexBudget() int { return b.budget }

// PendingVertices returns the vertex count accumulated since the last flush.
func (b *Batcher) PendingVertices() int { return b.vertexCount }

// Draw appends an element to the in-progress batch. If the element would
// push the accumulated vertex count past the budget, the pending batch is
// flushed through sub first; geometry is never truncated or dropped.
//
// An element whose vertex count alone exceeds the budget cannot fit any
// flush buffer and is rejected with ErrCapacityExceeded.
func (b *Batcher) Draw(sub gpucore.Submitter, e *Element) error {
	n := e.VertexCount()
	if n > b.budget {
		return fmt.Errorf("%w: %d vertices, budget %d", ErrCapacityExceeded, n, b.budget)
	}
	if b.vertexCount+n > b.budget {
		if err := b.Flush(sub); err != nil {
			return err
		}
	}
	b.pending = append(b.pending, e)
	b.vertexCount += n
	b.indexCount += len(e.Indices)
	return nil
}

// Flush packs all pending elements into the current flush buffer, uploads
// it once, and issues one draw call per chunk. Chunk-specific render state
// (material state, or the element's StateOverride) is applied immediately
// before each draw.
//
// A chunk whose material fails to compile is skipped with a warning;
// remaining chunks still draw. Afterwards the queue is cleared and the
// round-robin buffer index advances.
func (b *Batcher) Flush(sub gpucore.Submitter) error {
	if len(b.pending) == 0 {
		return nil
	}

	buf := &b.buffers[b.bufferIndex]
	b.packInto(buf)

	buf.mesh = sub.UploadMesh(buf.mesh,
		buf.vertices[:b.vertexCount*b.stride],
		buf.indexBytes[:b.indexCount*2],
		gpucore.IndexFormatUint16)

	Logger().Debug("render2d: flush",
		"elements", len(b.pending),
		"chunks", len(b.chunks),
		"vertices", b.vertexCount,
		"indices", b.indexCount,
		"buffer", b.bufferIndex)

	for _, c := range b.chunks {
		b.drawChunk(sub, buf, c)
	}

	b.clearPending()
	b.bufferIndex = (b.bufferIndex + 1) % flushBufferCount
	return nil
}

// Clear drops all pending elements without drawing them. The round-robin
// buffer index does not advance.
func (b *Batcher) Clear() {
	b.clearPending()
}

// packInto walks the pending queue in submission order, writing vertices
// through the pluggable writer and rebasing each element's indices onto the
// shared buffer. Adjacent canBatch-compatible elements accumulate into the
// current chunk; a mismatch starts a new one.
func (b *Batcher) packInto(buf *flushBuffer) {
	if need := b.vertexCount * b.stride; cap(buf.vertices) < need {
		buf.vertices = make([]float32, need)
	} else {
		buf.vertices = buf.vertices[:need]
	}
	if need := b.indexCount * 2; cap(buf.indexBytes) < need {
		buf.indexBytes = make([]byte, need)
	} else {
		buf.indexBytes = buf.indexBytes[:need]
	}

	b.chunks = b.chunks[:0]
	vertexOffset := 0
	indexOffset := 0
	for i, e := range b.pending {
		if i == 0 || !b.canBatch(b.pending[i-1], e) {
			b.chunks = append(b.chunks, chunk{indexStart: indexOffset, rep: e})
		}
		for _, idx := range e.Indices {
			binary.LittleEndian.PutUint16(buf.indexBytes[indexOffset*2:], uint16(vertexOffset)+idx)
			indexOffset++
		}
		b.chunks[len(b.chunks)-1].indexCount += len(e.Indices)
		vertexOffset = b.write(e, buf.vertices, vertexOffset)
	}
}

// drawChunk compiles, binds, and draws one chunk. Compile and draw failures
// degrade to a skipped chunk: a single bad material must not blank the
// whole frame.
func (b *Batcher) drawChunk(sub gpucore.Submitter, buf *flushBuffer, c chunk) {
	prog, err := sub.CompileProgram(c.rep.Material, nil)
	if err != nil {
		Logger().Warn("render2d: skipping draw chunk", "error", err)
		return
	}
	sub.BindProgram(prog)

	if c.rep.Camera != nil {
		sub.UploadUniformBlock(prog, "Camera", c.rep.Camera.ShaderData)
	}

	state := c.rep.Material.State
	if c.rep.StateOverride != nil {
		state = *c.rep.StateOverride
	}
	sub.ApplyRenderState(&state)

	if err := sub.DrawPrimitive(buf.mesh, gpucore.TriangleRange(c.indexStart, c.indexCount), prog); err != nil {
		Logger().Warn("render2d: draw chunk failed", "error", err)
	}
}

func (b *Batcher) clearPending() {
	for i := range b.pending {
		b.pending[i] = nil
	}
	b.pending = b.pending[:0]
	b.vertexCount = 0
	b.indexCount = 0
}
