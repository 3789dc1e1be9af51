// Package accel is a pluggable 2D acceleration abstraction layer.
//
// The package defines the host contract: the Renderer, Context, Target and
// Image entities, the full operation table (Impl), a push-style error queue,
// and a registry of renderer backends. Backends implement Impl and register
// themselves by name; the host selects one and drives it through the table.
//
// The module ships one backend, softrender, which performs every operation on
// the CPU by delegating to the gg drawing library through the canvas
// boundary. Import it for side effects to make it available:
//
//	import (
//	    "github.com/gogpu/accel"
//	    "github.com/gogpu/accel/canvas/ggcanvas"
//	    _ "github.com/gogpu/accel/softrender"
//	)
//
//	drv := ggcanvas.NewDriver()
//	drv.AddWindow(ggcanvas.NewWindow(1, 640, 480))
//	r, err := accel.New(accel.RendererSoftware, drv)
//
// All entities are single-threaded: the host must not invoke a Renderer from
// multiple goroutines concurrently. Resource reclamation is refcount-driven
// and immediate; see Impl.FreeImage and Impl.FreeTarget for the ordering
// rules backends must follow.
package accel
