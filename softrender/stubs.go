// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package softrender

import "github.com/gogpu/accel"

// SetImageFilter is a quality hint the software path cannot honor. It logs a
// warning instead of queueing an error so callers sharing code with hardware
// backends keep working.
func (b *backend) SetImageFilter(r *accel.Renderer, img *accel.Image, filter accel.Filter) {
	accel.Logger().Warn("softrender: SetImageFilter is not implemented")
}

// SetWrapMode is likewise a hint the software path ignores with a warning.
func (b *backend) SetWrapMode(r *accel.Renderer, img *accel.Image, wrapX, wrapY accel.Wrap) {
	accel.Logger().Warn("softrender: SetWrapMode is not implemented")
}
