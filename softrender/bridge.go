// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package softrender

import (
	"image/color"

	"github.com/gogpu/accel"
	"github.com/gogpu/accel/canvas"
	"github.com/gogpu/gputypes"
)

// contextData is the backend payload on a Context: the canvas render surface
// for its window and the cached bound destination (see bind.go).
type contextData struct {
	cv canvas.Renderer

	// renderTarget is the last target bound on cv. Compared by identity.
	renderTarget *accel.Target
}

// imageData is the shared record behind one backing texture. Alias images
// point at the same imageData; the texture is destroyed when its refcount
// reaches zero, which may be later than any single Image's release.
type imageData struct {
	refcount int
	format   accel.Format
	tex      canvas.Texture
}

func contextDataOf(ctx *accel.Context) *contextData {
	if ctx == nil || ctx.Data == nil {
		return nil
	}
	return ctx.Data.(*contextData)
}

func imageDataOf(img *accel.Image) *imageData {
	if img == nil || img.Data == nil {
		return nil
	}
	return img.Data.(*imageData)
}

// CreateTargetFromWindow binds a canvas render surface to an existing window
// and returns the window target. The backend supports exactly one window:
// re-initialization and second windows are rejected.
func (b *backend) CreateTargetFromWindow(r *accel.Renderer, windowID uint32, existing *accel.Target) (*accel.Target, error) {
	const op = "CreateTargetFromWindow"

	if existing != nil {
		return nil, r.PushError(op, accel.KindUnsupported, "reinitializing target not supported")
	}
	if r.CurrentTarget() != nil {
		return nil, r.PushError(op, accel.KindUnsupported, "multiple windows not supported")
	}

	win, err := b.drv.WindowByID(windowID)
	if err != nil {
		return nil, r.PushBackendError(op, err, "failed to acquire the window from the given id")
	}
	cv, err := b.drv.NewRenderer(win)
	if err != nil {
		return nil, r.PushBackendError(op, err, "failed to initialize the canvas renderer")
	}

	ww, hh := win.DrawableSize()

	ctx := &accel.Context{
		WindowID:  windowID,
		WindowW:   ww,
		WindowH:   hh,
		DrawableW: ww,
		DrawableH: hh,
	}
	target := &accel.Target{
		Renderer: r,
		Context:  ctx,
		W:        uint16(ww),
		H:        uint16(hh),
		BaseW:    uint16(ww),
		BaseH:    uint16(hh),
		Viewport: accel.Rect{W: float32(ww), H: float32(hh)},
		Refcount: 1,
	}
	target.ContextTarget = target
	ctx.Data = &contextData{cv: cv, renderTarget: target}

	r.SetCurrentTarget(target)
	accel.Logger().Debug("softrender: window target created",
		"window", windowID, "w", ww, "h", hh)
	return target, nil
}

// CreateImage allocates a texture-backed image. Requires a current context.
func (b *backend) CreateImage(r *accel.Renderer, w, h uint16, format accel.Format) (*accel.Image, error) {
	const op = "CreateImage"

	current := r.CurrentTarget()
	if current == nil {
		return nil, r.PushError(op, accel.KindUserError, "no current context")
	}

	var numLayers int
	switch format {
	case accel.FormatRGB:
		numLayers = 3
	case accel.FormatRGBA:
		numLayers = 4
	default:
		return nil, r.PushError(op, accel.KindBackendError, "unsupported format %d", format)
	}

	cd := contextDataOf(current.Context)
	tex, err := cd.cv.CreateTexture(gputypes.TextureFormatRGBA8Unorm, int(w), int(h))
	if err != nil {
		return nil, r.PushBackendError(op, err, "texture allocation failed")
	}
	tex.SetBlendMode(canvas.BlendAlpha)

	return &accel.Image{
		Renderer:      r,
		ContextTarget: current,
		W:             w,
		H:             h,
		BaseW:         w,
		BaseH:         h,
		TextureW:      w,
		TextureH:      h,
		Format:        format,
		NumLayers:     numLayers,
		BytesPerPixel: 4,
		AnchorX:       r.DefaultAnchorX,
		AnchorY:       r.DefaultAnchorY,
		Color:         color.RGBA{0xFF, 0xFF, 0xFF, 0xFF},
		UseBlending:   true,
		BlendMode:     accel.BlendNormal,
		FilterMode:    accel.FilterLinear,
		SnapMode:      accel.SnapPositionAndDimensions,
		WrapModeX:     accel.WrapNone,
		WrapModeY:     accel.WrapNone,
		Refcount:      1,
		Data:          &imageData{refcount: 1, format: format, tex: tex},
	}, nil
}

// CreateAliasImage returns a second Image sharing img's backing texture.
// The alias carries its own refcount; the shared texture record's refcount
// is raised so teardown order between the two does not matter.
func (b *backend) CreateAliasImage(r *accel.Renderer, img *accel.Image) *accel.Image {
	if img == nil {
		return nil
	}
	alias := *img
	if id := imageDataOf(img); id != nil {
		id.refcount++
	}
	alias.Refcount = 1
	alias.IsAlias = true
	return &alias
}

// FreeImage releases one reference to img. At zero the derived target goes
// first, then the backing texture's refcount; the texture itself is
// destroyed only when no other alias holds it. Extra frees past zero are
// no-ops.
func (b *backend) FreeImage(r *accel.Renderer, img *accel.Image) {
	if img == nil || img.Refcount <= 0 {
		return
	}
	img.Refcount--
	if img.Refcount > 0 {
		return
	}

	// The derived target must be torn down before the texture it renders
	// into can go away.
	if img.Target != nil {
		target := img.Target
		img.Target = nil
		b.FreeTarget(r, target)
	}

	if id := imageDataOf(img); id != nil {
		id.refcount--
		if id.refcount <= 0 {
			id.tex.Destroy()
		}
	}
	img.Data = nil
}

// LoadTarget returns img's derived render target, creating it on first use.
// Returns nil for a nil image.
func (b *backend) LoadTarget(r *accel.Renderer, img *accel.Image) (*accel.Target, error) {
	if img == nil {
		return nil, nil
	}

	if img.Target != nil {
		img.Target.Refcount++
		return img.Target, nil
	}

	target := &accel.Target{
		Renderer:      r,
		ContextTarget: img.ContextTarget,
		Image:         img,
		W:             img.W,
		H:             img.H,
		BaseW:         img.W,
		BaseH:         img.H,
		Viewport:      accel.Rect{W: float32(img.W), H: float32(img.H)},
		Refcount:      1,
	}
	img.Target = target
	return target, nil
}

// FreeTarget releases one reference to t. At zero, a window target tears
// down its context and canvas renderer; an offscreen target detaches from
// its image and, if it is the cached bound destination, rebinds the context
// to the window target so the cache never dangles.
func (b *backend) FreeTarget(r *accel.Renderer, t *accel.Target) {
	if t == nil || t.Refcount <= 0 {
		return
	}
	t.Refcount--
	if t.Refcount > 0 {
		return
	}

	if !t.IsAlias && t.Image != nil {
		t.Image.Target = nil
	}

	if t.Context != nil {
		cd := contextDataOf(t.Context)
		cd.cv.Destroy()
		t.Context.Data = nil
		t.Context = nil

		if r.CurrentTarget() == t {
			r.SetCurrentTarget(nil)
		}
		accel.Logger().Debug("softrender: window target destroyed")
	} else if ct := t.ContextTarget; ct != nil {
		// An offscreen target can outlive its context; nothing to rebind then.
		if cd := contextDataOf(ct.Context); cd != nil && cd.renderTarget == t {
			setRenderTarget(ct)
		}
	}
}
