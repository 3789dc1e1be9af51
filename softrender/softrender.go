// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package softrender

import (
	"github.com/gogpu/accel"
	"github.com/gogpu/accel/canvas"
)

// backend is the software operation table. Operations the canvas cannot
// express come from the embedded accel.Unsupported.
type backend struct {
	accel.Unsupported

	drv canvas.Driver
}

var _ accel.Impl = (*backend)(nil)

// init registers the software renderer on package import.
func init() {
	accel.Register(accel.RendererSoftware, New)
}

// New creates a software renderer on top of drv.
func New(drv canvas.Driver) (*accel.Renderer, error) {
	return accel.NewRenderer(accel.RendererSoftware, &backend{drv: drv}), nil
}

// Init creates the window target for windowID and makes it current. The
// software backend cannot create windows, so windowID must name an existing
// window; w, h and flags are ignored.
func (b *backend) Init(r *accel.Renderer, windowID uint32, w, h uint16, flags accel.WindowFlags) (*accel.Target, error) {
	return b.CreateTargetFromWindow(r, windowID, nil)
}

// MakeCurrent makes target the current context target. Only targets that own
// a context qualify; the window id is ignored, as the backend supports a
// single window.
func (b *backend) MakeCurrent(r *accel.Renderer, target *accel.Target, windowID uint32) {
	if target == nil || target.Context == nil {
		return
	}
	r.SetCurrentTarget(target)
}

// SetAsCurrent is a no-op: the single context is always active.
func (b *backend) SetAsCurrent(r *accel.Renderer) {}

// ResetRendererState is a no-op: no state is shared with other renderers.
func (b *backend) ResetRendererState(r *accel.Renderer) {}

// FlushBlitBuffer is a no-op: drawing is unbuffered.
func (b *backend) FlushBlitBuffer(r *accel.Renderer) {}

// Quit tears down the current context target.
func (b *backend) Quit(r *accel.Renderer) {
	b.FreeTarget(r, r.CurrentTarget())
	r.SetCurrentTarget(nil)
}
