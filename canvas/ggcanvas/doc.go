// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ggcanvas implements the canvas boundary on the gg drawing library.
//
// Every texture and window surface pairs a gg.Pixmap (the pixel store) with a
// gg.Context drawing into it, so pixel uploads write the pixmap directly
// while drawing and compositing go through gg. Windows are offscreen: the
// host registers them with the Driver and Present copies the surface into the
// window's framebuffer. This makes the package usable both headless (tests,
// server-side rendering) and under a host that displays the framebuffer
// itself.
package ggcanvas
