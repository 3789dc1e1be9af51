// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggcanvas

import (
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/accel/canvas"
)

// Package errors.
var (
	// ErrUnknownWindow is returned when a window id has not been registered.
	ErrUnknownWindow = errors.New("ggcanvas: unknown window id")

	// ErrForeignWindow is returned when a window from another driver is
	// passed to NewRenderer.
	ErrForeignWindow = errors.New("ggcanvas: window was not created by this package")

	// ErrForeignTexture is returned when a texture from another canvas
	// implementation is passed to a Renderer.
	ErrForeignTexture = errors.New("ggcanvas: texture was not created by this renderer")

	// ErrTextureDestroyed is returned when operating on a destroyed texture.
	ErrTextureDestroyed = errors.New("ggcanvas: texture has been destroyed")

	// ErrRendererDestroyed is returned when operating on a destroyed renderer.
	ErrRendererDestroyed = errors.New("ggcanvas: renderer has been destroyed")

	// ErrUnsupportedFormat is returned when a texture format other than the
	// native RGBA8 is requested.
	ErrUnsupportedFormat = errors.New("ggcanvas: unsupported texture format")
)

// Driver hands out render surfaces for host-registered windows.
type Driver struct {
	windows map[uint32]*Window
}

// NewDriver creates an empty driver. The host registers windows with
// AddWindow before asking accel to create targets for them.
func NewDriver() *Driver {
	return &Driver{windows: make(map[uint32]*Window)}
}

// AddWindow registers a window under its id, replacing any previous one.
func (d *Driver) AddWindow(w *Window) {
	d.windows[w.id] = w
}

// WindowByID resolves a registered window.
func (d *Driver) WindowByID(id uint32) (canvas.Window, error) {
	w, ok := d.windows[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownWindow, id)
	}
	return w, nil
}

// NewRenderer creates a render surface bound to win.
func (d *Driver) NewRenderer(win canvas.Window) (canvas.Renderer, error) {
	w, ok := win.(*Window)
	if !ok {
		return nil, ErrForeignWindow
	}
	return newRenderer(w), nil
}

// Window is an offscreen stand-in for an OS window. Present copies the
// render surface into its framebuffer.
type Window struct {
	id       uint32
	w, h     int
	fb       *image.RGBA
	presents int
}

// NewWindow creates a window with a w×h drawable area.
func NewWindow(id uint32, w, h int) *Window {
	return &Window{
		id: id,
		w:  w,
		h:  h,
		fb: image.NewRGBA(image.Rect(0, 0, w, h)),
	}
}

// ID returns the host's handle for this window.
func (w *Window) ID() uint32 { return w.id }

// DrawableSize returns the drawable area in pixels.
func (w *Window) DrawableSize() (int, int) { return w.w, w.h }

// Framebuffer returns the pixels of the last presented frame. The image is
// shared, not copied.
func (w *Window) Framebuffer() *image.RGBA { return w.fb }

// Presents returns how many times the window has been presented.
func (w *Window) Presents() int { return w.presents }
