// Package render2d provides the 2D draw-call batching layer for the GoGPU
// ecosystem.
//
// # Overview
//
// render2d sits between 2D renderer components (sprites, text, stencil
// masks) and a GPU submission backend. Renderer components produce one
// [Element] per drawable per frame; the [Batcher] merges runs of adjacent
// compatible elements into shared vertex/index buffers and emits one draw
// call per merged run. Draw order always equals submission order, which is
// the engine's depth/transparency sort order established upstream.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/render2d"
//	    "github.com/gogpu/render2d/gpucore"
//	)
//
//	sub := gpucore.NewSoftwareSubmitter(gpucore.NullDeviceHandle{})
//	batcher := render2d.NewBatcher(render2d.SpriteLayout(),
//	    render2d.CanBatchSprites, render2d.WriteSpriteVertices)
//
//	// per frame, in draw order:
//	batcher.Draw(elem)
//	batcher.Flush(sub)
//
// # Architecture
//
// The module is organized into:
//   - render2d: elements, element pooling, the generic batcher
//   - gpucore: GPU resource handles, render state, the Submitter interface
//   - mesh: CPU-side mesh data buffers with dirty-flag upload
//   - stencil: mask-layer diffing and stencil state coordination
//   - text: shaped glyph quads as a batcher element source
//
// The GPU itself is reached only through [gpucore.Submitter]; render2d
// never creates a device.
package render2d
