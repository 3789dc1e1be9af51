package softrender

import (
	"testing"

	"github.com/gogpu/accel"
)

func TestRegisteredOnImport(t *testing.T) {
	if !accel.IsRegistered(accel.RendererSoftware) {
		t.Fatal("software renderer not registered on import")
	}
	drv := newFakeDriver(1, 32, 32)
	r, err := accel.New(accel.RendererSoftware, drv)
	if err != nil {
		t.Fatalf("accel.New: %v", err)
	}
	if r.Name() != accel.RendererSoftware {
		t.Errorf("Name() = %q, want %q", r.Name(), accel.RendererSoftware)
	}
}

// TestRenderLoop walks a full frame the way a host would: init, upload a
// sprite, compose it into an offscreen buffer, draw the buffer to the window,
// present, tear everything down. No step may queue an error.
func TestRenderLoop(t *testing.T) {
	r, drv, window := newTestRenderer(t)
	impl := r.Impl()

	sprite := mustCreateImage(t, r, 8, 8, accel.FormatRGBA)
	if err := impl.UpdateImage(r, sprite, nil, gradientRGBA(8, 8), nil); err != nil {
		t.Fatalf("UpdateImage: %v", err)
	}

	buffer := mustCreateImage(t, r, 32, 32, accel.FormatRGBA)
	bufTarget, err := impl.LoadTarget(r, buffer)
	if err != nil {
		t.Fatalf("LoadTarget: %v", err)
	}

	if err := impl.ClearRGBA(r, bufTarget, 0, 0, 0, 255); err != nil {
		t.Fatalf("ClearRGBA: %v", err)
	}
	for i := 0; i < 4; i++ {
		if err := impl.Blit(r, sprite, nil, bufTarget, float32(4+i*8), 16); err != nil {
			t.Fatalf("Blit #%d: %v", i, err)
		}
	}
	if err := impl.Blit(r, buffer, nil, window, 32, 24); err != nil {
		t.Fatalf("Blit buffer: %v", err)
	}
	if err := impl.Flip(r, window); err != nil {
		t.Fatalf("Flip: %v", err)
	}

	// One rebind to the offscreen buffer, one back to the window.
	if n := len(drv.canvas.setTargetCalls); n != 2 {
		t.Errorf("SetTarget calls = %d, want 2", n)
	}
	if drv.canvas.presents != 1 {
		t.Errorf("presents = %d, want 1", drv.canvas.presents)
	}
	if errs := r.Errors(); len(errs) != 0 {
		t.Fatalf("render loop queued errors: %v", errs)
	}

	// Teardown releases every resource exactly once.
	spriteTex := imageDataOf(sprite).tex.(*fakeTexture)
	bufferTex := imageDataOf(buffer).tex.(*fakeTexture)

	impl.FreeTarget(r, bufTarget)
	impl.FreeImage(r, buffer)
	impl.FreeImage(r, sprite)
	impl.Quit(r)

	if spriteTex.destroyCount != 1 || bufferTex.destroyCount != 1 {
		t.Errorf("texture destroyCounts = %d, %d, want 1, 1",
			spriteTex.destroyCount, bufferTex.destroyCount)
	}
	if !drv.canvas.destroyed {
		t.Error("canvas renderer survives Quit")
	}
	if errs := r.Errors(); len(errs) != 0 {
		t.Fatalf("teardown queued errors: %v", errs)
	}
}

func TestUnsupportedTailQueuesErrors(t *testing.T) {
	r, _, window := newTestRenderer(t)
	impl := r.Impl()

	if _, err := impl.CreateShaderProgram(r); err == nil {
		t.Fatal("CreateShaderProgram succeeded on the software backend")
	}
	if err := impl.Circle(r, window, 10, 10, 5, colorWhite); err == nil {
		t.Fatal("Circle succeeded on the software backend")
	}
	if _, err := impl.CreateAliasTarget(r, window); err == nil {
		t.Fatal("CreateAliasTarget succeeded on the software backend")
	}

	for _, e := range r.Errors() {
		if e.Kind != accel.KindUnsupported {
			t.Errorf("op %s queued %v, want KindUnsupported", e.Op, e.Kind)
		}
	}
	if len(r.Errors()) != 3 {
		t.Fatalf("queued %d errors, want 3", len(r.Errors()))
	}
}

func TestMakeCurrentIgnoresNonContextTargets(t *testing.T) {
	r, _, window := newTestRenderer(t)
	img := mustCreateImage(t, r, 8, 8, accel.FormatRGBA)
	off, err := r.Impl().LoadTarget(r, img)
	if err != nil {
		t.Fatalf("LoadTarget: %v", err)
	}

	r.Impl().MakeCurrent(r, off, 1)
	if r.CurrentTarget() != window {
		t.Error("MakeCurrent accepted a target without a context")
	}
	r.Impl().MakeCurrent(r, nil, 1)
	if r.CurrentTarget() != window {
		t.Error("MakeCurrent(nil) changed the current target")
	}
	r.Impl().MakeCurrent(r, window, 1)
	if r.CurrentTarget() != window {
		t.Error("MakeCurrent rejected the window target")
	}
}
