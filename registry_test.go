package accel

import (
	"errors"
	"slices"
	"testing"

	"github.com/gogpu/accel/canvas"
)

type stubDriver struct{}

func (stubDriver) WindowByID(id uint32) (canvas.Window, error) {
	return nil, errors.New("no windows")
}

func (stubDriver) NewRenderer(win canvas.Window) (canvas.Renderer, error) {
	return nil, errors.New("no renderer")
}

func TestRegistry(t *testing.T) {
	const name = "test-backend"
	factory := func(drv canvas.Driver) (*Renderer, error) {
		return NewRenderer(name, Unsupported{}), nil
	}

	Register(name, factory)
	defer Unregister(name)

	if !IsRegistered(name) {
		t.Fatalf("IsRegistered(%q) = false after Register", name)
	}
	if !slices.Contains(Available(), name) {
		t.Fatalf("Available() = %v, missing %q", Available(), name)
	}
	if Get(name) == nil {
		t.Fatalf("Get(%q) = nil after Register", name)
	}

	r, err := New(name, stubDriver{})
	if err != nil {
		t.Fatalf("New(%q) error: %v", name, err)
	}
	if r.Name() != name {
		t.Errorf("Name() = %q, want %q", r.Name(), name)
	}

	Unregister(name)
	if IsRegistered(name) {
		t.Fatalf("IsRegistered(%q) = true after Unregister", name)
	}
	if _, err := New(name, stubDriver{}); !errors.Is(err, ErrRendererNotRegistered) {
		t.Fatalf("New after Unregister error = %v, want ErrRendererNotRegistered", err)
	}
}

func TestNewDefaultEmpty(t *testing.T) {
	// The root package registers nothing itself, so with no backends imported
	// the default lookup must fail cleanly.
	if _, err := NewDefault(stubDriver{}); !errors.Is(err, ErrRendererNotRegistered) {
		t.Fatalf("NewDefault error = %v, want ErrRendererNotRegistered", err)
	}
}

func TestNewDefaultPriority(t *testing.T) {
	Register(RendererSoftware, func(drv canvas.Driver) (*Renderer, error) {
		return NewRenderer(RendererSoftware, Unsupported{}), nil
	})
	Register("other", func(drv canvas.Driver) (*Renderer, error) {
		return NewRenderer("other", Unsupported{}), nil
	})
	defer Unregister(RendererSoftware)
	defer Unregister("other")

	r, err := NewDefault(stubDriver{})
	if err != nil {
		t.Fatalf("NewDefault error: %v", err)
	}
	if r.Name() != RendererSoftware {
		t.Errorf("NewDefault picked %q, want %q", r.Name(), RendererSoftware)
	}
}
