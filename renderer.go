package accel

import "image/color"

// Renderer is one backend instance: the operation table plus the state the
// host contract attaches to it. A Renderer is created through the registry
// (New) and owns at most one Context at a time; this module's software
// backend enforces exactly one window per Renderer.
//
// Renderer is not safe for concurrent use. Distinct Renderer instances are
// independent and may coexist in one process, each with its own Context.
type Renderer struct {
	name string
	impl Impl

	// current is the context target in use: the window Target whose Context
	// subsequent image loads and draws bind to.
	current *Target

	// DefaultAnchorX and DefaultAnchorY are copied onto new Images as their
	// anchor point. New renderers default to (0.5, 0.5), the image center.
	DefaultAnchorX float32
	DefaultAnchorY float32

	errs []*Error
}

// NewRenderer assembles a Renderer around an operation table. Backend
// packages call this from their factories; hosts use the registry's New.
func NewRenderer(name string, impl Impl) *Renderer {
	return &Renderer{
		name:           name,
		impl:           impl,
		DefaultAnchorX: 0.5,
		DefaultAnchorY: 0.5,
	}
}

// Name returns the backend name this Renderer was registered under.
func (r *Renderer) Name() string { return r.name }

// Impl returns the operation table. The host drives all rendering through it.
func (r *Renderer) Impl() Impl { return r.impl }

// CurrentTarget returns the current context target, or nil before a window
// target exists.
func (r *Renderer) CurrentTarget() *Target { return r.current }

// SetCurrentTarget updates the current context target. Backends call this;
// hosts use Impl.MakeCurrent.
func (r *Renderer) SetCurrentTarget(t *Target) { r.current = t }

// Context is the per-window rendering state. Exactly one Context exists per
// window; the software backend supports exactly one window per Renderer.
type Context struct {
	WindowID uint32

	WindowW, WindowH     int
	DrawableW, DrawableH int

	// Data is the backend's payload slot. For the software backend it holds
	// the canvas renderer handle and the cached bound target.
	Data any
}

// Target is a renderable destination: either a window surface
// (Context != nil, Image == nil) or an offscreen destination backed by an
// Image (Context == nil, Image != nil, ContextTarget = the window target).
//
// Targets are reference counted. FreeTarget decrements Refcount and tears the
// Target down only at zero; see Impl.FreeTarget for the ordering rules.
type Target struct {
	Renderer *Renderer

	// ContextTarget points at the window target whose Context this Target
	// renders through. For the window target itself it is self-referential.
	ContextTarget *Target

	// Context is non-nil only on the window target.
	Context *Context

	// Image is non-nil only on offscreen targets.
	Image *Image

	W, H         uint16
	BaseW, BaseH uint16

	UsingVirtualResolution bool

	Viewport Rect

	Camera    Camera
	UseCamera bool

	UseClipRect bool
	ClipRect    Rect

	UseColor bool
	Color    color.RGBA

	Refcount int
	IsAlias  bool

	// Data is the backend's payload slot. Unused by the software backend.
	Data any
}

// Image is a 2D pixel resource backed by a texture in the underlying drawing
// library. Images are reference counted and may alias: CreateAliasImage
// yields a second Image sharing one backing texture.
type Image struct {
	Renderer *Renderer

	// ContextTarget is the window target whose Context owns the backing
	// texture.
	ContextTarget *Target

	// Target is the Image's derived render target, created lazily by
	// LoadTarget, or nil if the Image has never been rendered to.
	Target *Target

	W, H               uint16
	BaseW, BaseH       uint16
	TextureW, TextureH uint16

	UsingVirtualResolution bool

	Format        Format
	NumLayers     int
	BytesPerPixel int

	HasMipmaps bool

	// AnchorX and AnchorY are the normalized pivot used to position blits
	// relative to the target coordinate. (0,0) is the top-left corner,
	// (0.5,0.5) the center.
	AnchorX, AnchorY float32

	Color       color.RGBA
	UseBlending bool
	BlendMode   BlendPreset

	FilterMode Filter
	SnapMode   Snap
	WrapModeX  Wrap
	WrapModeY  Wrap

	Refcount int
	IsAlias  bool

	// Data is the backend's payload slot. For the software backend it holds
	// the shared, refcounted texture record.
	Data any
}
