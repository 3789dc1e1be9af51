package accel

import (
	"image"
	"image/color"
)

// Impl is the operation table a backend must populate: one method per
// operation the host may invoke. Every method takes the owning Renderer as
// its first argument, mirroring the dispatch contract.
//
// A backend rarely implements all of it. Embed Unsupported to inherit stub
// implementations that queue a KindUnsupported error, and override only the
// operations the backend actually supports.
//
// Failing operations queue an error on the Renderer (push-style) and also
// return it, so hosts may either check return values or drain the queue.
type Impl interface {
	// --- lifecycle ---

	// Init creates the window target for windowID and makes it current.
	// w, h and flags are forwarded to the windowing collaborator when the
	// window does not exist yet; backends that cannot create windows ignore
	// them and resolve windowID directly.
	Init(r *Renderer, windowID uint32, w, h uint16, flags WindowFlags) (*Target, error)

	// CreateTargetFromWindow binds a render surface to an existing window
	// and returns its Target. Passing a non-nil existing target requests
	// re-initialization, which backends may reject.
	CreateTargetFromWindow(r *Renderer, windowID uint32, existing *Target) (*Target, error)

	// CreateAliasTarget returns a new Target sharing t's backing resource.
	CreateAliasTarget(r *Renderer, t *Target) (*Target, error)

	// MakeCurrent makes target the current context target.
	MakeCurrent(r *Renderer, target *Target, windowID uint32)

	// SetAsCurrent re-activates the renderer's current context.
	SetAsCurrent(r *Renderer)

	// ResetRendererState resyncs backend state with the underlying library.
	ResetRendererState(r *Renderer)

	SetWindowResolution(r *Renderer, w, h uint16) error
	SetVirtualResolution(r *Renderer, t *Target, w, h uint16) error
	UnsetVirtualResolution(r *Renderer, t *Target) error

	// Quit tears down the current context target and clears the current
	// pointer.
	Quit(r *Renderer)

	SetFullscreen(r *Renderer, enable, useDesktopResolution bool) error
	SetCamera(r *Renderer, t *Target, cam *Camera) (Camera, error)

	// --- image management ---

	// CreateImage allocates a w×h texture-backed Image in the given format.
	CreateImage(r *Renderer, w, h uint16, format Format) (*Image, error)

	// CreateImageUsingTexture wraps an existing native texture handle.
	CreateImageUsingTexture(r *Renderer, handle any, takeOwnership bool) (*Image, error)

	// CreateAliasImage returns a new Image sharing img's backing texture.
	// Returns nil if img is nil.
	CreateAliasImage(r *Renderer, img *Image) *Image

	SaveImage(r *Renderer, img *Image, filename string, format FileFormat) error
	CopyImage(r *Renderer, img *Image) (*Image, error)

	// UpdateImage copies pixels from surface into img. Nil rects select the
	// full extents. The rectangles are clipped against both the surface and
	// the image; a fully clipped update is a silent no-op.
	UpdateImage(r *Renderer, img *Image, imageRect *Rect, surface image.Image, surfaceRect *Rect) error

	// UpdateImageBytes copies raw pixel rows (img's pixel layout,
	// bytesPerRow stride) into img. A nil rect selects the full extent.
	UpdateImageBytes(r *Renderer, img *Image, imageRect *Rect, bytes []byte, bytesPerRow int) error

	ReplaceImage(r *Renderer, img *Image, surface image.Image, surfaceRect *Rect) error

	// CopyImageFromSurface creates an RGBA Image holding surface's pixels.
	CopyImageFromSurface(r *Renderer, surface image.Image) (*Image, error)

	CopyImageFromTarget(r *Renderer, t *Target) (*Image, error)
	CopySurfaceFromTarget(r *Renderer, t *Target) (image.Image, error)
	CopySurfaceFromImage(r *Renderer, img *Image) (image.Image, error)

	// FreeImage releases one reference to img. At refcount zero the derived
	// Target (if any) is freed first, then the backing texture's refcount is
	// decremented, destroying the texture only when it reaches zero.
	FreeImage(r *Renderer, img *Image)

	// --- target management ---

	// LoadTarget returns img's derived render target, creating it on first
	// use. Repeated calls return the same Target with its refcount raised.
	LoadTarget(r *Renderer, img *Image) (*Target, error)

	// FreeTarget releases one reference to t. At refcount zero: non-alias
	// targets detach from their Image; the window target tears down its
	// Context and render surface and clears the renderer's current pointer;
	// an offscreen target that is the cached bound destination rebinds the
	// context to the window target.
	FreeTarget(r *Renderer, t *Target)

	// --- blitting ---

	// Blit draws img (or srcRect within it) onto target, positioning the
	// image's anchor point at (x, y).
	Blit(r *Renderer, img *Image, srcRect *Rect, target *Target, x, y float32) error

	// BlitRotate is Blit rotated by degrees about the anchor point.
	BlitRotate(r *Renderer, img *Image, srcRect *Rect, target *Target, x, y, degrees float32) error

	// BlitScale is Blit scaled about the anchor point. Negative scales flip.
	BlitScale(r *Renderer, img *Image, srcRect *Rect, target *Target, x, y, scaleX, scaleY float32) error

	// BlitTransform combines rotation and scaling about the anchor point.
	BlitTransform(r *Renderer, img *Image, srcRect *Rect, target *Target, x, y, degrees, scaleX, scaleY float32) error

	// BlitTransformX is the fully general form: an explicit pivot in image
	// coordinates, rotation in degrees, and independent axis scales.
	BlitTransformX(r *Renderer, img *Image, srcRect *Rect, target *Target, x, y, pivotX, pivotY, degrees, scaleX, scaleY float32) error

	TriangleBatch(r *Renderer, img *Image, target *Target, vertices []float32, indices []uint16, flags BatchFlags) error
	GenerateMipmaps(r *Renderer, img *Image) error

	// --- target state and drawing ---

	// SetClip sets target's clip rectangle and returns the previous one.
	SetClip(r *Renderer, target *Target, x, y int16, w, h uint16) Rect

	// UnsetClip removes target's clip rectangle.
	UnsetClip(r *Renderer, target *Target)

	GetPixel(r *Renderer, target *Target, x, y int16) (color.RGBA, error)

	// SetImageFilter and SetWrapMode are quality hints; backends without the
	// capability log a warning and ignore them rather than failing.
	SetImageFilter(r *Renderer, img *Image, filter Filter)
	SetWrapMode(r *Renderer, img *Image, wrapX, wrapY Wrap)

	// ClearRGBA fills target with the given color, ignoring the clip rect.
	ClearRGBA(r *Renderer, target *Target, cr, cg, cb, ca uint8) error

	// FlushBlitBuffer submits any batched drawing to the underlying library.
	FlushBlitBuffer(r *Renderer)

	// Flip presents target's window.
	Flip(r *Renderer, target *Target) error

	SetLineThickness(r *Renderer, thickness float32) (float32, error)
	GetLineThickness(r *Renderer) (float32, error)

	Pixel(r *Renderer, target *Target, x, y float32, c color.RGBA) error
	Line(r *Renderer, target *Target, x1, y1, x2, y2 float32, c color.RGBA) error
	Arc(r *Renderer, target *Target, x, y, radius, startAngle, endAngle float32, c color.RGBA) error
	ArcFilled(r *Renderer, target *Target, x, y, radius, startAngle, endAngle float32, c color.RGBA) error
	Circle(r *Renderer, target *Target, x, y, radius float32, c color.RGBA) error
	CircleFilled(r *Renderer, target *Target, x, y, radius float32, c color.RGBA) error
	Ellipse(r *Renderer, target *Target, x, y, rx, ry, degrees float32, c color.RGBA) error
	EllipseFilled(r *Renderer, target *Target, x, y, rx, ry, degrees float32, c color.RGBA) error
	Sector(r *Renderer, target *Target, x, y, innerRadius, outerRadius, startAngle, endAngle float32, c color.RGBA) error
	SectorFilled(r *Renderer, target *Target, x, y, innerRadius, outerRadius, startAngle, endAngle float32, c color.RGBA) error
	Tri(r *Renderer, target *Target, x1, y1, x2, y2, x3, y3 float32, c color.RGBA) error
	TriFilled(r *Renderer, target *Target, x1, y1, x2, y2, x3, y3 float32, c color.RGBA) error

	// Rectangle draws the outline of the rectangle spanning (x1,y1)-(x2,y2).
	Rectangle(r *Renderer, target *Target, x1, y1, x2, y2 float32, c color.RGBA) error
	RectangleFilled(r *Renderer, target *Target, x1, y1, x2, y2 float32, c color.RGBA) error
	RectangleRound(r *Renderer, target *Target, x1, y1, x2, y2, radius float32, c color.RGBA) error
	RectangleRoundFilled(r *Renderer, target *Target, x1, y1, x2, y2, radius float32, c color.RGBA) error
	Polygon(r *Renderer, target *Target, vertices []float32, c color.RGBA) error
	PolygonFilled(r *Renderer, target *Target, vertices []float32, c color.RGBA) error

	// --- shaders, uniforms, attributes ---

	CreateShaderProgram(r *Renderer) (uint32, error)
	FreeShaderProgram(r *Renderer, program uint32) error
	CompileShader(r *Renderer, shaderType ShaderType, source string) (uint32, error)
	FreeShader(r *Renderer, shader uint32) error
	AttachShader(r *Renderer, program, shader uint32) error
	DetachShader(r *Renderer, program, shader uint32) error
	LinkShaderProgram(r *Renderer, program uint32) error
	ActivateShaderProgram(r *Renderer, program uint32, block *ShaderBlock) error
	DeactivateShaderProgram(r *Renderer) error
	GetShaderMessage(r *Renderer) string
	GetAttributeLocation(r *Renderer, program uint32, name string) (int, error)
	GetUniformLocation(r *Renderer, program uint32, name string) (int, error)
	LoadShaderBlock(r *Renderer, program uint32, positionName, texcoordName, colorName, modelViewMatrixName string) (ShaderBlock, error)
	SetShaderBlock(r *Renderer, block ShaderBlock) error
	SetShaderImage(r *Renderer, img *Image, location, imageUnit int) error
	GetUniformiv(r *Renderer, program uint32, location int, values []int32) error
	SetUniformi(r *Renderer, location int, value int32) error
	SetUniformiv(r *Renderer, location, elementsPerValue int, values []int32) error
	GetUniformuiv(r *Renderer, program uint32, location int, values []uint32) error
	SetUniformui(r *Renderer, location int, value uint32) error
	SetUniformuiv(r *Renderer, location, elementsPerValue int, values []uint32) error
	GetUniformfv(r *Renderer, program uint32, location int, values []float32) error
	SetUniformf(r *Renderer, location int, value float32) error
	SetUniformfv(r *Renderer, location, elementsPerValue int, values []float32) error
	SetUniformMatrixfv(r *Renderer, location, numMatrices, numRows, numColumns int, transpose bool, values []float32) error
	SetAttributef(r *Renderer, location int, value float32) error
	SetAttributei(r *Renderer, location int, value int32) error
	SetAttributeui(r *Renderer, location int, value uint32) error
	SetAttributefv(r *Renderer, location int, values []float32) error
	SetAttributeiv(r *Renderer, location int, values []int32) error
	SetAttributeuiv(r *Renderer, location int, values []uint32) error
	SetAttributeSource(r *Renderer, numValues int, source Attribute) error
}
