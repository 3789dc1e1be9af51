// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package softrender

import (
	"image"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/accel"
)

// UpdateImage copies pixels from surface into img. Nil rects select the full
// extents; the pair is clipped against both the surface and the image bounds
// in lockstep, and a fully clipped update is a silent no-op.
func (b *backend) UpdateImage(r *accel.Renderer, img *accel.Image, imageRect *accel.Rect, surface image.Image, surfaceRect *accel.Rect) error {
	const op = "UpdateImage"

	if img == nil {
		return r.PushError(op, accel.KindUserError, "image is nil")
	}
	if surface == nil {
		return r.PushError(op, accel.KindUserError, "surface is nil")
	}

	sb := surface.Bounds()
	src := rectFrom(surfaceRect, sb.Dx(), sb.Dy())
	dst := rectFrom(imageRect, int(img.W), int(img.H))
	if !clipBlitPair(&src, &dst, sb.Dx(), sb.Dy(), int(img.W), int(img.H)) {
		return nil
	}

	// Upload rows come from an RGBA store. Anything else is converted through
	// a scratch image; RGB-format images also take the scratch path so their
	// padding alpha can be forced opaque.
	rgba, direct := surface.(*image.RGBA)
	if !direct || img.Format == accel.FormatRGB {
		scratch := image.NewRGBA(image.Rect(0, 0, src.w, src.h))
		srcRect := image.Rect(sb.Min.X+src.x, sb.Min.Y+src.y,
			sb.Min.X+src.x+src.w, sb.Min.Y+src.y+src.h)
		xdraw.Copy(scratch, image.Point{}, surface, srcRect, xdraw.Src, nil)
		if img.Format == accel.FormatRGB {
			for i := 3; i < len(scratch.Pix); i += 4 {
				scratch.Pix[i] = 0xFF
			}
		}
		rgba = scratch
		src.x, src.y = 0, 0
	}

	id := imageDataOf(img)
	if id == nil {
		return r.PushError(op, accel.KindUserError, "image has been released")
	}
	off := rgba.PixOffset(rgba.Rect.Min.X+src.x, rgba.Rect.Min.Y+src.y)
	dstRect := image.Rect(dst.x, dst.y, dst.x+dst.w, dst.y+dst.h)
	if err := id.tex.Update(dstRect, rgba.Pix[off:], rgba.Stride); err != nil {
		return r.PushBackendError(op, err, "texture upload failed")
	}
	return nil
}

// UpdateImageBytes copies raw RGBA rows into img. A nil rect selects the
// full extent; the rect is clipped to the image and the read offset advanced
// to match, so out-of-bounds regions are skipped rather than rejected.
func (b *backend) UpdateImageBytes(r *accel.Renderer, img *accel.Image, imageRect *accel.Rect, bytes []byte, bytesPerRow int) error {
	const op = "UpdateImageBytes"

	if img == nil {
		return r.PushError(op, accel.KindUserError, "image is nil")
	}
	if bytes == nil {
		return r.PushError(op, accel.KindUserError, "bytes is nil")
	}

	dst := rectFrom(imageRect, int(img.W), int(img.H))
	offX, offY, ok := clipDestOnly(&dst, int(img.W), int(img.H))
	if !ok {
		return nil
	}

	id := imageDataOf(img)
	if id == nil {
		return r.PushError(op, accel.KindUserError, "image has been released")
	}
	off := offY*bytesPerRow + offX*img.BytesPerPixel
	dstRect := image.Rect(dst.x, dst.y, dst.x+dst.w, dst.y+dst.h)
	if err := id.tex.Update(dstRect, bytes[off:], bytesPerRow); err != nil {
		return r.PushBackendError(op, err, "texture upload failed")
	}
	return nil
}

// CopyImageFromSurface creates an RGBA image holding surface's pixels.
func (b *backend) CopyImageFromSurface(r *accel.Renderer, surface image.Image) (*accel.Image, error) {
	const op = "CopyImageFromSurface"

	if surface == nil {
		return nil, r.PushError(op, accel.KindUserError, "surface is nil")
	}
	sb := surface.Bounds()
	if sb.Dx() <= 0 || sb.Dy() <= 0 {
		return nil, r.PushError(op, accel.KindUserError, "surface is empty")
	}

	img, err := b.CreateImage(r, uint16(sb.Dx()), uint16(sb.Dy()), accel.FormatRGBA)
	if err != nil {
		return nil, err
	}
	if err := b.UpdateImage(r, img, nil, surface, nil); err != nil {
		b.FreeImage(r, img)
		return nil, err
	}
	return img, nil
}
