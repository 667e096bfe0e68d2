package render2d

import "testing"

func TestElementPoolGetResets(t *testing.T) {
	pool := NewElementPool()

	e := pool.Get()
	AppendQuad(e, 0, 0, 1, 1, 0, 0, 1, 1, 0, White)
	e.Camera = &Camera{Label: "cam"}
	pool.Put(e)

	got := pool.Get()
	if got.VertexCount() != 0 || len(got.Indices) != 0 {
		t.Error("pooled element not reset")
	}
	if got.Camera != nil || got.Material != nil || got.Renderer != nil || got.StateOverride != nil {
		t.Error("pooled element retains references")
	}
}

func TestElementPoolPutNil(t *testing.T) {
	pool := NewElementPool()
	pool.Put(nil) // must not panic
	if e := pool.Get(); e == nil {
		t.Fatal("Get() returned nil")
	}
}

func TestElementPoolWarmup(t *testing.T) {
	pool := NewElementPool()
	pool.Warmup(16)
	e := pool.Get()
	if e == nil {
		t.Fatal("Get() after Warmup returned nil")
	}
}
