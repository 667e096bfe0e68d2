package render2d

import "testing"

func TestVec2Arithmetic(t *testing.T) {
	a := V2(1, 2)
	b := V2(3, 5)

	if got := a.Add(b); got != (Vec2{X: 4, Y: 7}) {
		t.Errorf("Add = %+v, want {4 7}", got)
	}
	if got := b.Sub(a); got != (Vec2{X: 2, Y: 3}) {
		t.Errorf("Sub = %+v, want {2 3}", got)
	}
}

func TestVec3Arithmetic(t *testing.T) {
	a := V3(1, 2, 3)
	b := V3(4, 6, 8)

	if got := a.Add(b); got != (Vec3{X: 5, Y: 8, Z: 11}) {
		t.Errorf("Add = %+v, want {5 8 11}", got)
	}
	if got := b.Sub(a); got != (Vec3{X: 3, Y: 4, Z: 5}) {
		t.Errorf("Sub = %+v, want {3 4 5}", got)
	}
}

func TestRGBAColor(t *testing.T) {
	c := RGBA{R: 1, G: 0.5, B: 0, A: 1}
	nrgba := c.Color()
	r, g, _, a := nrgba.RGBA()
	if r != 0xFFFF || a != 0xFFFF {
		t.Errorf("RGBA() = r:%#x a:%#x, want full red and alpha", r, a)
	}
	if g == 0 || g == 0xFFFF {
		t.Errorf("green channel = %#x, want mid-range", g)
	}

	// Out-of-range components clamp instead of wrapping.
	hot := RGBA{R: 2, G: -1, B: 0, A: 1}
	hr, hg, _, _ := hot.Color().RGBA()
	if hr != 0xFFFF || hg != 0 {
		t.Errorf("clamped = r:%#x g:%#x, want 0xffff and 0", hr, hg)
	}
}
