// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package canvas is the boundary to the underlying 2D drawing library.
//
// The accel backends do not talk to a drawing library directly; they receive
// a Driver from the host and operate on the Renderer and Texture handles it
// hands out. The interfaces cover exactly the capabilities the software
// backend needs: create a render surface bound to a window, create textures,
// bind a render destination, copy rectangular regions with optional rotation
// and flip, update texture pixels, clear, clip, draw hairline primitives and
// present.
//
// Implementations are not required to be safe for concurrent use; accel
// drives them from a single goroutine.
package canvas

import (
	"image"
	"image/color"

	"github.com/gogpu/gputypes"
)

// Flip is a bitmask of axis mirror operations applied by CopyEx.
type Flip uint32

const (
	// FlipNone draws the source as-is.
	FlipNone Flip = 0x0

	// FlipHorizontal mirrors the source about its vertical axis.
	FlipHorizontal Flip = 0x1

	// FlipVertical mirrors the source about its horizontal axis.
	FlipVertical Flip = 0x2
)

// BlendMode controls how a texture's pixels combine with the destination
// when copied.
type BlendMode uint32

const (
	// BlendNone overwrites destination pixels.
	BlendNone BlendMode = iota

	// BlendAlpha is standard source-over alpha blending.
	BlendAlpha

	// BlendAdditive adds source to destination.
	BlendAdditive

	// BlendModulate multiplies source into destination.
	BlendModulate
)

// Driver is the entry point the host supplies: it resolves window handles
// and creates render surfaces bound to them.
type Driver interface {
	// WindowByID resolves a window handle. Window creation and event
	// handling belong to the host; the driver only looks windows up.
	WindowByID(id uint32) (Window, error)

	// NewRenderer creates a render surface bound to win.
	NewRenderer(win Window) (Renderer, error)
}

// Window is a host-managed OS window (or an offscreen stand-in).
type Window interface {
	// ID returns the host's handle for this window.
	ID() uint32

	// DrawableSize returns the drawable area in pixels.
	DrawableSize() (w, h int)
}

// Renderer is a render surface bound to one window. All drawing lands on the
// bound target: the window surface by default, or a texture after SetTarget.
type Renderer interface {
	// CreateTexture allocates a w×h texture. Implementations may support
	// only their native format.
	CreateTexture(format gputypes.TextureFormat, w, h int) (Texture, error)

	// SetTarget binds the render destination. A nil texture binds the
	// window surface.
	SetTarget(t Texture) error

	// SetClip restricts subsequent drawing on the bound target to r.
	SetClip(r image.Rectangle)

	// ResetClip removes the clip rectangle from the bound target.
	ResetClip()

	// SetDrawColor sets the color used by Clear and the draw primitives.
	SetDrawColor(c color.RGBA)

	// Clear fills the bound target with the draw color, ignoring the clip
	// rectangle.
	Clear() error

	DrawPoint(x, y int) error
	DrawLine(x1, y1, x2, y2 int) error
	DrawRect(r image.Rectangle) error
	FillRect(r image.Rectangle) error

	// Copy draws the src region of tex onto the dst region of the bound
	// target, scaling if the extents differ.
	Copy(tex Texture, src, dst image.Rectangle) error

	// CopyEx is Copy with a rotation (degrees, clockwise) about
	// dst.Min+center and an optional flip applied to the source.
	CopyEx(tex Texture, src, dst image.Rectangle, degrees float64, center image.Point, flip Flip) error

	// Present pushes the window surface to the window.
	Present() error

	// Destroy releases the render surface. The Renderer and all textures
	// created from it must not be used afterwards.
	Destroy()
}

// Texture is a 2D pixel resource owned by a Renderer.
type Texture interface {
	// Size returns the texture dimensions in pixels.
	Size() (w, h int)

	// Format returns the texture's pixel format.
	Format() gputypes.TextureFormat

	// Update overwrites the rect region with pixel rows from pix, stride
	// bytes apart. pix is laid out in the texture's format; rect must lie
	// within the texture bounds.
	Update(rect image.Rectangle, pix []byte, stride int) error

	// SetBlendMode sets how the texture blends when copied.
	SetBlendMode(mode BlendMode)

	// Destroy releases the texture.
	Destroy()
}
