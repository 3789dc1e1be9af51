// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package softrender

import "github.com/gogpu/accel"

// blitRect is an integer rectangle in the clipper's working form.
type blitRect struct {
	x, y, w, h int
}

// rectFrom converts an optional float rect to the integer working form,
// falling back to the full defW by defH extent when r is nil.
func rectFrom(r *accel.Rect, defW, defH int) blitRect {
	if r == nil {
		return blitRect{w: defW, h: defH}
	}
	return blitRect{x: int(r.X), y: int(r.Y), w: int(r.W), h: int(r.H)}
}

// clipToSource trims the source rectangle to the srcW by srcH bounds and
// shifts the destination in lockstep, so the pixels that survive keep their
// relative placement. Trimming off the left or top moves both origins;
// trimming off the right or bottom only shrinks.
func clipToSource(src, dst *blitRect, srcW, srcH int) {
	if src.x < 0 {
		d := -src.x
		src.x = 0
		src.w -= d
		dst.x += d
		dst.w -= d
	}
	if src.y < 0 {
		d := -src.y
		src.y = 0
		src.h -= d
		dst.y += d
		dst.h -= d
	}
	if over := src.x + src.w - srcW; over > 0 {
		src.w -= over
		dst.w -= over
	}
	if over := src.y + src.h - srcH; over > 0 {
		src.h -= over
		dst.h -= over
	}
}

// clipToDest is the mirror of clipToSource: it trims the destination to the
// dstW by dstH bounds and shifts the source in lockstep.
func clipToDest(src, dst *blitRect, dstW, dstH int) {
	if dst.x < 0 {
		d := -dst.x
		dst.x = 0
		dst.w -= d
		src.x += d
		src.w -= d
	}
	if dst.y < 0 {
		d := -dst.y
		dst.y = 0
		dst.h -= d
		src.y += d
		src.h -= d
	}
	if over := dst.x + dst.w - dstW; over > 0 {
		dst.w -= over
		src.w -= over
	}
	if over := dst.y + dst.h - dstH; over > 0 {
		dst.h -= over
		src.h -= over
	}
}

// clampDestToSource shrinks the destination to the source extent. Only the
// destination moves; a source wider than the destination keeps its extra
// pixels, they just never get copied.
func clampDestToSource(src, dst *blitRect) {
	if dst.w > src.w {
		dst.w = src.w
	}
	if dst.h > src.h {
		dst.h = src.h
	}
}

// clipBlitPair clips an unscaled src to dst copy against both the source and
// destination bounds, keeping the two rectangles paired throughout. Bounds
// trims come first, so a source overhang eats into the destination extent
// before the final clamp; a destination smaller than the trimmed source can
// therefore end up empty. It reports false when nothing is left to copy.
func clipBlitPair(src, dst *blitRect, srcW, srcH, dstW, dstH int) bool {
	clipToSource(src, dst, srcW, srcH)
	clipToDest(src, dst, dstW, dstH)
	clampDestToSource(src, dst)
	return dst.w > 0 && dst.h > 0
}

// clipDestOnly clips dst to the dstW by dstH bounds and returns how far the
// origin moved, so the caller can advance its pixel pointer by the same
// amount. It reports false when the rectangle is fully outside.
func clipDestOnly(dst *blitRect, dstW, dstH int) (offX, offY int, ok bool) {
	if dst.x < 0 {
		offX = -dst.x
		dst.x = 0
		dst.w -= offX
	}
	if dst.y < 0 {
		offY = -dst.y
		dst.y = 0
		dst.h -= offY
	}
	if over := dst.x + dst.w - dstW; over > 0 {
		dst.w -= over
	}
	if over := dst.y + dst.h - dstH; over > 0 {
		dst.h -= over
	}
	return offX, offY, dst.w > 0 && dst.h > 0
}
