// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggcanvas

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"github.com/gogpu/accel/canvas"
	"github.com/gogpu/gg"
	"github.com/gogpu/gputypes"
)

// Renderer is a render surface bound to one window. The window surface and
// all textures created from the renderer share its lifetime.
type Renderer struct {
	win     *Window
	surface *texture

	// target is the bound destination, nil for the window surface.
	target *texture

	drawColor color.RGBA

	targetSwitches int
	destroyed      bool
}

func newRenderer(win *Window) *Renderer {
	return &Renderer{
		win:       win,
		surface:   newTexture(win.w, win.h, gputypes.TextureFormatRGBA8Unorm),
		drawColor: color.RGBA{A: 0xFF},
	}
}

// cur returns the texture drawing currently lands on.
func (r *Renderer) cur() *texture {
	if r.target != nil {
		return r.target
	}
	return r.surface
}

// CreateTexture allocates a texture in the native RGBA8 format.
func (r *Renderer) CreateTexture(format gputypes.TextureFormat, w, h int) (canvas.Texture, error) {
	if r.destroyed {
		return nil, ErrRendererDestroyed
	}
	if format != gputypes.TextureFormatRGBA8Unorm {
		return nil, ErrUnsupportedFormat
	}
	return newTexture(w, h, format), nil
}

// SetTarget binds the render destination; nil binds the window surface.
func (r *Renderer) SetTarget(t canvas.Texture) error {
	if r.destroyed {
		return ErrRendererDestroyed
	}
	r.targetSwitches++
	if t == nil {
		r.target = nil
		return nil
	}
	tex, ok := t.(*texture)
	if !ok {
		return ErrForeignTexture
	}
	if tex.destroyed {
		return ErrTextureDestroyed
	}
	r.target = tex
	return nil
}

// TargetSwitches returns how many times SetTarget has been called. The accel
// software backend memoizes its bound target, so well-behaved callers keep
// this low; it is exposed so that behavior stays observable.
func (r *Renderer) TargetSwitches() int { return r.targetSwitches }

// SetClip restricts drawing on the bound target to rect. A new clip replaces
// the previous one.
func (r *Renderer) SetClip(rect image.Rectangle) {
	dc := r.cur().dc
	dc.ResetClip()
	dc.ClipRect(float64(rect.Min.X), float64(rect.Min.Y), float64(rect.Dx()), float64(rect.Dy()))
}

// ResetClip removes the clip rectangle from the bound target.
func (r *Renderer) ResetClip() {
	r.cur().dc.ResetClip()
}

// SetDrawColor sets the color used by Clear and the draw primitives.
func (r *Renderer) SetDrawColor(c color.RGBA) {
	r.drawColor = c
}

// Clear fills the bound target with the draw color. The clip rectangle does
// not apply.
func (r *Renderer) Clear() error {
	if r.destroyed {
		return ErrRendererDestroyed
	}
	r.cur().dc.ClearWithColor(gg.FromColor(r.drawColor))
	return nil
}

// DrawPoint sets a single pixel to the draw color.
func (r *Renderer) DrawPoint(x, y int) error {
	if r.destroyed {
		return ErrRendererDestroyed
	}
	r.cur().dc.SetPixel(x, y, gg.FromColor(r.drawColor))
	return nil
}

// DrawLine draws a one pixel wide line between the two points, inclusive.
func (r *Renderer) DrawLine(x1, y1, x2, y2 int) error {
	if r.destroyed {
		return ErrRendererDestroyed
	}
	dc := r.cur().dc
	dc.SetColor(r.drawColor)
	dc.SetLineWidth(1)
	// +0.5 centers the hairline on the pixel row/column.
	dc.DrawLine(float64(x1)+0.5, float64(y1)+0.5, float64(x2)+0.5, float64(y2)+0.5)
	return dc.Stroke()
}

// DrawRect outlines rect with a one pixel wide border.
func (r *Renderer) DrawRect(rect image.Rectangle) error {
	if r.destroyed {
		return ErrRendererDestroyed
	}
	dc := r.cur().dc
	dc.SetColor(r.drawColor)
	dc.SetLineWidth(1)
	dc.DrawRectangle(float64(rect.Min.X)+0.5, float64(rect.Min.Y)+0.5,
		float64(rect.Dx())-1, float64(rect.Dy())-1)
	return dc.Stroke()
}

// FillRect fills rect with the draw color.
func (r *Renderer) FillRect(rect image.Rectangle) error {
	if r.destroyed {
		return ErrRendererDestroyed
	}
	dc := r.cur().dc
	dc.SetColor(r.drawColor)
	dc.DrawRectangle(float64(rect.Min.X), float64(rect.Min.Y),
		float64(rect.Dx()), float64(rect.Dy()))
	return dc.Fill()
}

// Copy draws the src region of tex onto the dst region of the bound target.
func (r *Renderer) Copy(tex canvas.Texture, src, dst image.Rectangle) error {
	if r.destroyed {
		return ErrRendererDestroyed
	}
	t, ok := tex.(*texture)
	if !ok {
		return ErrForeignTexture
	}
	if t.destroyed {
		return ErrTextureDestroyed
	}

	// Bilinear sampling is exact for unscaled copies: pixel centers land on
	// integer source coordinates.
	buf := gg.ImageBufFromImage(t.pm)
	r.cur().dc.DrawImageEx(buf, gg.DrawImageOptions{
		X:             float64(dst.Min.X),
		Y:             float64(dst.Min.Y),
		DstWidth:      float64(dst.Dx()),
		DstHeight:     float64(dst.Dy()),
		SrcRect:       &src,
		Interpolation: gg.InterpBilinear,
		Opacity:       1.0,
		BlendMode:     ggBlend(t.blend),
	})
	return nil
}

// CopyEx draws the src region of tex onto dst, mirrored by flip and rotated
// by degrees (clockwise) about dst.Min+center.
func (r *Renderer) CopyEx(tex canvas.Texture, src, dst image.Rectangle, degrees float64, center image.Point, flip canvas.Flip) error {
	if r.destroyed {
		return ErrRendererDestroyed
	}
	t, ok := tex.(*texture)
	if !ok {
		return ErrForeignTexture
	}
	if t.destroyed {
		return ErrTextureDestroyed
	}

	// Crop first so the mirror applies to the selected region, not the
	// whole texture.
	var region image.Image = imaging.Crop(t.pm, src)
	if flip&canvas.FlipHorizontal != 0 {
		region = imaging.FlipH(region)
	}
	if flip&canvas.FlipVertical != 0 {
		region = imaging.FlipV(region)
	}
	buf := gg.ImageBufFromImage(region)

	dc := r.cur().dc
	rotated := degrees != 0
	if rotated {
		dc.Push()
		dc.RotateAbout(degrees*math.Pi/180,
			float64(dst.Min.X+center.X), float64(dst.Min.Y+center.Y))
	}
	dc.DrawImageEx(buf, gg.DrawImageOptions{
		X:             float64(dst.Min.X),
		Y:             float64(dst.Min.Y),
		DstWidth:      float64(dst.Dx()),
		DstHeight:     float64(dst.Dy()),
		Interpolation: gg.InterpBilinear,
		Opacity:       1.0,
		BlendMode:     ggBlend(t.blend),
	})
	if rotated {
		dc.Pop()
	}
	return nil
}

// Present copies the window surface into the window framebuffer.
func (r *Renderer) Present() error {
	if r.destroyed {
		return ErrRendererDestroyed
	}
	copy(r.win.fb.Pix, r.surface.pm.Data())
	r.win.presents++
	return nil
}

// Destroy releases the render surface.
func (r *Renderer) Destroy() {
	r.destroyed = true
	r.surface.Destroy()
	r.target = nil
}
