package accel

import (
	"errors"
	"testing"
)

func TestUnsupportedQueuesErrors(t *testing.T) {
	r := NewRenderer("stub", Unsupported{})
	impl := r.Impl()

	if _, err := impl.CreateImage(r, 4, 4, FormatRGBA); err == nil {
		t.Fatal("CreateImage on Unsupported returned nil error")
	}
	if err := impl.Blit(r, nil, nil, nil, 0, 0); err == nil {
		t.Fatal("Blit on Unsupported returned nil error")
	}
	// Void operations queue without returning.
	impl.FreeImage(r, nil)

	errs := r.Errors()
	if len(errs) != 3 {
		t.Fatalf("len(Errors) = %d, want 3", len(errs))
	}
	wantOps := []string{"CreateImage", "Blit", "FreeImage"}
	for i, e := range errs {
		if e.Kind != KindUnsupported {
			t.Errorf("errs[%d].Kind = %v, want KindUnsupported", i, e.Kind)
		}
		if e.Op != wantOps[i] {
			t.Errorf("errs[%d].Op = %q, want %q", i, e.Op, wantOps[i])
		}
	}
}

func TestUnsupportedErrorIsTyped(t *testing.T) {
	r := NewRenderer("stub", Unsupported{})

	_, err := r.Impl().LoadTarget(r, nil)
	var ae *Error
	if !errors.As(err, &ae) {
		t.Fatalf("error %T does not unwrap to *Error", err)
	}
	if ae.Kind != KindUnsupported {
		t.Errorf("Kind = %v, want KindUnsupported", ae.Kind)
	}
}
