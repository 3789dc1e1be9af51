// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggcanvas

import (
	"fmt"
	"image"

	"github.com/gogpu/accel/canvas"
	"github.com/gogpu/gg"
	"github.com/gogpu/gputypes"
)

// texture pairs a gg pixmap with a gg context drawing into it. The pixmap is
// the single pixel store: uploads write it directly, drawing goes through the
// context, and blits read it as an image.Image.
type texture struct {
	pm     *gg.Pixmap
	dc     *gg.Context
	w, h   int
	format gputypes.TextureFormat
	blend  canvas.BlendMode

	destroyed bool
}

func newTexture(w, h int, format gputypes.TextureFormat) *texture {
	pm := gg.NewPixmap(w, h)
	return &texture{
		pm:     pm,
		dc:     gg.NewContext(w, h, gg.WithPixmap(pm)),
		w:      w,
		h:      h,
		format: format,
		blend:  canvas.BlendAlpha,
	}
}

// Size returns the texture dimensions in pixels.
func (t *texture) Size() (int, int) { return t.w, t.h }

// Format returns the texture's pixel format.
func (t *texture) Format() gputypes.TextureFormat { return t.format }

// Update overwrites the rect region with pixel rows from pix.
func (t *texture) Update(rect image.Rectangle, pix []byte, stride int) error {
	if t.destroyed {
		return ErrTextureDestroyed
	}
	bounds := image.Rect(0, 0, t.w, t.h)
	if !rect.In(bounds) {
		return fmt.Errorf("ggcanvas: update rect %v outside texture bounds %v", rect, bounds)
	}

	data := t.pm.Data()
	rowLen := rect.Dx() * 4
	for row := 0; row < rect.Dy(); row++ {
		dstOff := ((rect.Min.Y+row)*t.w + rect.Min.X) * 4
		srcOff := row * stride
		copy(data[dstOff:dstOff+rowLen], pix[srcOff:srcOff+rowLen])
	}
	return nil
}

// SetBlendMode sets how the texture blends when copied.
func (t *texture) SetBlendMode(mode canvas.BlendMode) {
	t.blend = mode
}

// Destroy releases the texture.
func (t *texture) Destroy() {
	t.destroyed = true
	t.pm = nil
	t.dc = nil
}

// ggBlend maps a canvas blend mode onto the nearest gg compositing mode.
// gg has no overwrite or additive operator; BlendNone and BlendAdditive fall
// back to source-over and screen respectively.
func ggBlend(mode canvas.BlendMode) gg.BlendMode {
	switch mode {
	case canvas.BlendModulate:
		return gg.BlendMultiply
	case canvas.BlendAdditive:
		return gg.BlendScreen
	default:
		return gg.BlendNormal
	}
}
