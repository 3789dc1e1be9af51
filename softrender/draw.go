// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package softrender

import (
	"image"
	"image/color"

	"github.com/chewxy/math32"

	"github.com/gogpu/accel"
	"github.com/gogpu/accel/canvas"
)

// Blit draws img (or srcRect within it) onto target with the image's anchor
// point at (x, y).
func (b *backend) Blit(r *accel.Renderer, img *accel.Image, srcRect *accel.Rect, target *accel.Target, x, y float32) error {
	const op = "Blit"

	if img == nil {
		return r.PushError(op, accel.KindUserError, "image is nil")
	}
	if target == nil {
		return r.PushError(op, accel.KindUserError, "target is nil")
	}

	id := imageDataOf(img)
	if id == nil {
		return r.PushError(op, accel.KindUserError, "image has been released")
	}

	src := rectFrom(srcRect, int(img.W), int(img.H))
	// The position snaps to the pixel grid before the anchor offset is
	// subtracted, so a fractional position never shifts the placement.
	dx := int(float32(int(x)) - float32(src.w)*img.AnchorX)
	dy := int(float32(int(y)) - float32(src.h)*img.AnchorY)

	cv := setRenderTarget(target)
	if cv == nil {
		return r.PushError(op, accel.KindUserError, "target has no context")
	}
	err := cv.Copy(id.tex,
		image.Rect(src.x, src.y, src.x+src.w, src.y+src.h),
		image.Rect(dx, dy, dx+src.w, dy+src.h))
	if err != nil {
		return r.PushBackendError(op, err, "copy failed")
	}
	return nil
}

// BlitRotate is Blit rotated by degrees about the anchor point.
func (b *backend) BlitRotate(r *accel.Renderer, img *accel.Image, srcRect *accel.Rect, target *accel.Target, x, y, degrees float32) error {
	w, h := blitExtent(img, srcRect)
	return b.BlitTransformX(r, img, srcRect, target, x, y,
		w*anchorX(img), h*anchorY(img), degrees, 1, 1)
}

// BlitScale is Blit scaled about the anchor point. Negative scales mirror.
func (b *backend) BlitScale(r *accel.Renderer, img *accel.Image, srcRect *accel.Rect, target *accel.Target, x, y, scaleX, scaleY float32) error {
	w, h := blitExtent(img, srcRect)
	return b.BlitTransformX(r, img, srcRect, target, x, y,
		w*anchorX(img), h*anchorY(img), 0, scaleX, scaleY)
}

// BlitTransform combines rotation and scaling about the anchor point.
func (b *backend) BlitTransform(r *accel.Renderer, img *accel.Image, srcRect *accel.Rect, target *accel.Target, x, y, degrees, scaleX, scaleY float32) error {
	w, h := blitExtent(img, srcRect)
	return b.BlitTransformX(r, img, srcRect, target, x, y,
		w*anchorX(img), h*anchorY(img), degrees, scaleX, scaleY)
}

// BlitTransformX draws img with an explicit pivot in source coordinates,
// rotation in degrees and independent axis scales. (x, y) is the destination
// origin; rotation is about the scaled pivot relative to it. Negative scales
// mirror on that axis.
func (b *backend) BlitTransformX(r *accel.Renderer, img *accel.Image, srcRect *accel.Rect, target *accel.Target, x, y, pivotX, pivotY, degrees, scaleX, scaleY float32) error {
	const op = "BlitTransformX"

	if img == nil {
		return r.PushError(op, accel.KindUserError, "image is nil")
	}
	if target == nil {
		return r.PushError(op, accel.KindUserError, "target is nil")
	}

	var flip canvas.Flip
	if scaleX < 0 {
		flip |= canvas.FlipHorizontal
		scaleX = math32.Abs(scaleX)
	}
	if scaleY < 0 {
		flip |= canvas.FlipVertical
		scaleY = math32.Abs(scaleY)
	}

	id := imageDataOf(img)
	if id == nil {
		return r.PushError(op, accel.KindUserError, "image has been released")
	}

	src := rectFrom(srcRect, int(img.W), int(img.H))
	dw := int(float32(src.w) * scaleX)
	dh := int(float32(src.h) * scaleY)
	dx, dy := int(x), int(y)
	center := image.Pt(int(pivotX*scaleX), int(pivotY*scaleY))

	cv := setRenderTarget(target)
	if cv == nil {
		return r.PushError(op, accel.KindUserError, "target has no context")
	}
	err := cv.CopyEx(id.tex,
		image.Rect(src.x, src.y, src.x+src.w, src.y+src.h),
		image.Rect(dx, dy, dx+dw, dy+dh),
		float64(degrees), center, flip)
	if err != nil {
		return r.PushBackendError(op, err, "copy failed")
	}
	return nil
}

func blitExtent(img *accel.Image, srcRect *accel.Rect) (w, h float32) {
	if srcRect != nil {
		return srcRect.W, srcRect.H
	}
	if img != nil {
		return float32(img.W), float32(img.H)
	}
	return 0, 0
}

func anchorX(img *accel.Image) float32 {
	if img == nil {
		return 0
	}
	return img.AnchorX
}

func anchorY(img *accel.Image) float32 {
	if img == nil {
		return 0
	}
	return img.AnchorY
}

// SetClip sets target's clip rectangle and returns the previous one.
func (b *backend) SetClip(r *accel.Renderer, target *accel.Target, x, y int16, w, h uint16) accel.Rect {
	if target == nil {
		return accel.Rect{}
	}
	old := target.ClipRect
	target.UseClipRect = true
	target.ClipRect = accel.Rect{X: float32(x), Y: float32(y), W: float32(w), H: float32(h)}

	if cv := setRenderTarget(target); cv != nil {
		cv.SetClip(image.Rect(int(x), int(y), int(x)+int(w), int(y)+int(h)))
	}
	return old
}

// UnsetClip removes target's clip rectangle.
func (b *backend) UnsetClip(r *accel.Renderer, target *accel.Target) {
	if target == nil {
		return
	}
	target.UseClipRect = false
	target.ClipRect = accel.Rect{}

	if cv := setRenderTarget(target); cv != nil {
		cv.ResetClip()
	}
}

// ClearRGBA fills target with the given color. The clip rectangle does not
// apply.
func (b *backend) ClearRGBA(r *accel.Renderer, target *accel.Target, cr, cg, cb, ca uint8) error {
	const op = "ClearRGBA"

	if target == nil {
		return r.PushError(op, accel.KindUserError, "target is nil")
	}
	cv := setRenderTarget(target)
	if cv == nil {
		return r.PushError(op, accel.KindUserError, "target has no context")
	}
	cv.SetDrawColor(color.RGBA{R: cr, G: cg, B: cb, A: ca})
	if err := cv.Clear(); err != nil {
		return r.PushBackendError(op, err, "clear failed")
	}
	return nil
}

// Flip presents target's window. An offscreen target presents the window of
// the context it was created under.
func (b *backend) Flip(r *accel.Renderer, target *accel.Target) error {
	const op = "Flip"

	if target == nil {
		target = r.CurrentTarget()
	}
	if target == nil {
		return r.PushError(op, accel.KindUserError, "no target to present")
	}
	ctx := target.Context
	if ctx == nil && target.ContextTarget != nil {
		ctx = target.ContextTarget.Context
	}
	cd := contextDataOf(ctx)
	if cd == nil {
		return r.PushError(op, accel.KindUserError, "target has no context")
	}
	if err := cd.cv.Present(); err != nil {
		return r.PushBackendError(op, err, "present failed")
	}
	return nil
}

// Pixel sets a single pixel on target.
func (b *backend) Pixel(r *accel.Renderer, target *accel.Target, x, y float32, c color.RGBA) error {
	const op = "Pixel"

	if target == nil {
		return r.PushError(op, accel.KindUserError, "target is nil")
	}
	cv := setRenderTarget(target)
	if cv == nil {
		return r.PushError(op, accel.KindUserError, "target has no context")
	}
	cv.SetDrawColor(c)
	if err := cv.DrawPoint(int(x), int(y)); err != nil {
		return r.PushBackendError(op, err, "draw failed")
	}
	return nil
}

// Line draws a one pixel wide line on target, endpoints inclusive.
func (b *backend) Line(r *accel.Renderer, target *accel.Target, x1, y1, x2, y2 float32, c color.RGBA) error {
	const op = "Line"

	if target == nil {
		return r.PushError(op, accel.KindUserError, "target is nil")
	}
	cv := setRenderTarget(target)
	if cv == nil {
		return r.PushError(op, accel.KindUserError, "target has no context")
	}
	cv.SetDrawColor(c)
	if err := cv.DrawLine(int(x1), int(y1), int(x2), int(y2)); err != nil {
		return r.PushBackendError(op, err, "draw failed")
	}
	return nil
}

// Rectangle outlines the rectangle spanning (x1,y1)-(x2,y2). The corners may
// be given in any order.
func (b *backend) Rectangle(r *accel.Renderer, target *accel.Target, x1, y1, x2, y2 float32, c color.RGBA) error {
	const op = "Rectangle"

	if target == nil {
		return r.PushError(op, accel.KindUserError, "target is nil")
	}
	cv := setRenderTarget(target)
	if cv == nil {
		return r.PushError(op, accel.KindUserError, "target has no context")
	}
	cv.SetDrawColor(c)
	// image.Rect canonicalizes, so the corners may come in either order.
	if err := cv.DrawRect(image.Rect(int(x1), int(y1), int(x2), int(y2))); err != nil {
		return r.PushBackendError(op, err, "draw failed")
	}
	return nil
}

// RectangleFilled fills the rectangle spanning (x1,y1)-(x2,y2).
func (b *backend) RectangleFilled(r *accel.Renderer, target *accel.Target, x1, y1, x2, y2 float32, c color.RGBA) error {
	const op = "RectangleFilled"

	if target == nil {
		return r.PushError(op, accel.KindUserError, "target is nil")
	}
	cv := setRenderTarget(target)
	if cv == nil {
		return r.PushError(op, accel.KindUserError, "target has no context")
	}
	cv.SetDrawColor(c)
	if err := cv.FillRect(image.Rect(int(x1), int(y1), int(x2), int(y2))); err != nil {
		return r.PushBackendError(op, err, "draw failed")
	}
	return nil
}
