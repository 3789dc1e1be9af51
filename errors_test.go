package accel

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorQueueOrder(t *testing.T) {
	r := NewRenderer("test", Unsupported{})

	r.PushError("OpA", KindUserError, "first")
	r.PushError("OpB", KindBackendError, "second")
	r.PushError("OpC", KindUnsupported, "third")

	if got := r.LastError(); got == nil || got.Op != "OpC" {
		t.Fatalf("LastError = %v, want OpC", got)
	}
	// LastError does not remove.
	if got := r.LastError(); got == nil || got.Op != "OpC" {
		t.Fatalf("LastError after peek = %v, want OpC", got)
	}

	// PopError drains oldest first.
	for i, want := range []string{"OpA", "OpB", "OpC"} {
		got := r.PopError()
		if got == nil || got.Op != want {
			t.Fatalf("PopError #%d = %v, want %s", i, got, want)
		}
	}
	if got := r.PopError(); got != nil {
		t.Fatalf("PopError on empty queue = %v, want nil", got)
	}
	if got := r.LastError(); got != nil {
		t.Fatalf("LastError on empty queue = %v, want nil", got)
	}
}

func TestErrorQueueCap(t *testing.T) {
	r := NewRenderer("test", Unsupported{})

	for i := 0; i < maxErrors+5; i++ {
		r.PushError("Op", KindUserError, "error %d", i)
	}
	errs := r.Errors()
	if len(errs) != maxErrors {
		t.Fatalf("len(Errors) = %d, want %d", len(errs), maxErrors)
	}
	// Overflow drops the newest entries, keeping the oldest.
	if errs[0].Message != "error 0" {
		t.Errorf("oldest = %q, want %q", errs[0].Message, "error 0")
	}
	if last := errs[len(errs)-1]; last.Message != fmt.Sprintf("error %d", maxErrors-1) {
		t.Errorf("newest = %q, want %q", last.Message, fmt.Sprintf("error %d", maxErrors-1))
	}

	r.ClearErrors()
	if len(r.Errors()) != 0 {
		t.Fatal("ClearErrors left entries behind")
	}
}

func TestPushBackendErrorWraps(t *testing.T) {
	r := NewRenderer("test", Unsupported{})
	cause := errors.New("native failure")

	e := r.PushBackendError("CreateImage", cause, "texture allocation failed")
	if e.Kind != KindBackendError {
		t.Fatalf("Kind = %v, want KindBackendError", e.Kind)
	}
	if !errors.Is(e, cause) {
		t.Error("errors.Is(e, cause) = false, want true")
	}
	if want := "texture allocation failed: native failure"; e.Message != want {
		t.Errorf("Message = %q, want %q", e.Message, want)
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnsupported, "unsupported operation"},
		{KindUserError, "user error"},
		{KindBackendError, "backend error"},
		{ErrorKind(99), "unknown error"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestErrorsReturnsCopy(t *testing.T) {
	r := NewRenderer("test", Unsupported{})
	r.PushError("Op", KindUserError, "one")

	errs := r.Errors()
	errs[0] = nil
	if r.LastError() == nil {
		t.Fatal("mutating the Errors copy affected the queue")
	}
}
