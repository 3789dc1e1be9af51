// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package softrender

import (
	"github.com/gogpu/accel"
	"github.com/gogpu/accel/canvas"
)

// setRenderTarget binds target as the canvas render destination and returns
// the canvas renderer to draw on, or nil when the context behind the target
// has already been torn down. The binding is memoized per context:
// consecutive draws to the same target issue no rebind.
//
// The cache key is the Target pointer, not the underlying texture. Two alias
// targets over the same texture therefore rebind on every alternation; this
// is wasteful but harmless, since binding the same texture twice is idempotent
// on the canvas side.
func setRenderTarget(target *accel.Target) canvas.Renderer {
	ct := target.ContextTarget
	if ct == nil {
		return nil
	}
	cd := contextDataOf(ct.Context)
	if cd == nil {
		return nil
	}
	if cd.renderTarget != target {
		cd.renderTarget = target
		var tex canvas.Texture
		if target.Image != nil {
			tex = imageDataOf(target.Image).tex
		}
		cd.cv.SetTarget(tex)
	}
	return cd.cv
}
