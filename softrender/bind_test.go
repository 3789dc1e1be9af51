package softrender

import (
	"testing"

	"github.com/gogpu/accel"
)

func TestTargetBindingIsMemoized(t *testing.T) {
	r, drv, window := newTestRenderer(t)
	img := mustCreateImage(t, r, 8, 8, accel.FormatRGBA)
	off, err := r.Impl().LoadTarget(r, img)
	if err != nil {
		t.Fatalf("LoadTarget: %v", err)
	}

	// The window target is the seeded binding, so drawing to it first issues
	// no rebind at all.
	if err := r.Impl().ClearRGBA(r, window, 0, 0, 0, 255); err != nil {
		t.Fatalf("ClearRGBA: %v", err)
	}
	if n := len(drv.canvas.setTargetCalls); n != 0 {
		t.Fatalf("SetTarget calls after window draw = %d, want 0", n)
	}

	// Switching to the offscreen target rebinds once; repeat draws do not.
	for i := 0; i < 3; i++ {
		if err := r.Impl().ClearRGBA(r, off, 0, 0, 0, 255); err != nil {
			t.Fatalf("ClearRGBA #%d: %v", i, err)
		}
	}
	if n := len(drv.canvas.setTargetCalls); n != 1 {
		t.Fatalf("SetTarget calls after 3 offscreen draws = %d, want 1", n)
	}
	if got := drv.canvas.setTargetCalls[0]; got != imageDataOf(img).tex {
		t.Error("offscreen rebind did not bind the image's texture")
	}

	// Switching back rebinds the window surface (nil texture).
	if err := r.Impl().ClearRGBA(r, window, 0, 0, 0, 255); err != nil {
		t.Fatalf("ClearRGBA: %v", err)
	}
	if n := len(drv.canvas.setTargetCalls); n != 2 {
		t.Fatalf("SetTarget calls after switch back = %d, want 2", n)
	}
	if drv.canvas.setTargetCalls[1] != nil {
		t.Error("window rebind passed a non-nil texture")
	}
}

func TestAlternatingTargetsRebindEachTime(t *testing.T) {
	r, drv, window := newTestRenderer(t)
	img := mustCreateImage(t, r, 8, 8, accel.FormatRGBA)
	off, err := r.Impl().LoadTarget(r, img)
	if err != nil {
		t.Fatalf("LoadTarget: %v", err)
	}

	targets := []*accel.Target{off, window, off, window}
	for i, tgt := range targets {
		if err := r.Impl().ClearRGBA(r, tgt, 0, 0, 0, 255); err != nil {
			t.Fatalf("ClearRGBA #%d: %v", i, err)
		}
	}
	if n := len(drv.canvas.setTargetCalls); n != 4 {
		t.Fatalf("SetTarget calls = %d, want 4", n)
	}
}
