// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package softrender is a software renderer backend for accel.
//
// It implements the accel operation table on the CPU by delegating to the
// canvas boundary (backed by the gg drawing library in this module). Three
// pieces carry the real logic:
//
//   - the resource bridge, which maps accel entities to canvas resources and
//     reference-counts shared backing textures (bridge.go)
//   - the target binding cache, which memoizes the bound render destination
//     per context so rebinding is only issued on change (bind.go)
//   - the blit clipper, the rectangle arithmetic behind pixel uploads
//     (blitclip.go, upload.go)
//
// Everything the canvas cannot do natively (shaders, geometry primitives
// beyond lines and rectangles, cameras, virtual resolution) reports
// unsupported. Exactly one window per renderer is supported.
//
// The package registers itself under accel.RendererSoftware on import.
package softrender
