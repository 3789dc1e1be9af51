package accel

import (
	"image"
	"image/color"
)

// Unsupported implements every Impl operation by queueing a KindUnsupported
// error on the Renderer and returning a sentinel value. Backends embed it and
// override only the operations they support.
type Unsupported struct{}

var _ Impl = Unsupported{}

// --- lifecycle ---

func (Unsupported) Init(r *Renderer, windowID uint32, w, h uint16, flags WindowFlags) (*Target, error) {
	return nil, r.Unsupported("Init")
}

func (Unsupported) CreateTargetFromWindow(r *Renderer, windowID uint32, existing *Target) (*Target, error) {
	return nil, r.Unsupported("CreateTargetFromWindow")
}

func (Unsupported) CreateAliasTarget(r *Renderer, t *Target) (*Target, error) {
	return nil, r.Unsupported("CreateAliasTarget")
}

func (Unsupported) MakeCurrent(r *Renderer, target *Target, windowID uint32) {
	r.Unsupported("MakeCurrent")
}

func (Unsupported) SetAsCurrent(r *Renderer)       { r.Unsupported("SetAsCurrent") }
func (Unsupported) ResetRendererState(r *Renderer) { r.Unsupported("ResetRendererState") }

func (Unsupported) SetWindowResolution(r *Renderer, w, h uint16) error {
	return r.Unsupported("SetWindowResolution")
}

func (Unsupported) SetVirtualResolution(r *Renderer, t *Target, w, h uint16) error {
	return r.Unsupported("SetVirtualResolution")
}

func (Unsupported) UnsetVirtualResolution(r *Renderer, t *Target) error {
	return r.Unsupported("UnsetVirtualResolution")
}

func (Unsupported) Quit(r *Renderer) { r.Unsupported("Quit") }

func (Unsupported) SetFullscreen(r *Renderer, enable, useDesktopResolution bool) error {
	return r.Unsupported("SetFullscreen")
}

func (Unsupported) SetCamera(r *Renderer, t *Target, cam *Camera) (Camera, error) {
	return Camera{}, r.Unsupported("SetCamera")
}

// --- image management ---

func (Unsupported) CreateImage(r *Renderer, w, h uint16, format Format) (*Image, error) {
	return nil, r.Unsupported("CreateImage")
}

func (Unsupported) CreateImageUsingTexture(r *Renderer, handle any, takeOwnership bool) (*Image, error) {
	return nil, r.Unsupported("CreateImageUsingTexture")
}

func (Unsupported) CreateAliasImage(r *Renderer, img *Image) *Image {
	r.Unsupported("CreateAliasImage")
	return nil
}

func (Unsupported) SaveImage(r *Renderer, img *Image, filename string, format FileFormat) error {
	return r.Unsupported("SaveImage")
}

func (Unsupported) CopyImage(r *Renderer, img *Image) (*Image, error) {
	return nil, r.Unsupported("CopyImage")
}

func (Unsupported) UpdateImage(r *Renderer, img *Image, imageRect *Rect, surface image.Image, surfaceRect *Rect) error {
	return r.Unsupported("UpdateImage")
}

func (Unsupported) UpdateImageBytes(r *Renderer, img *Image, imageRect *Rect, bytes []byte, bytesPerRow int) error {
	return r.Unsupported("UpdateImageBytes")
}

func (Unsupported) ReplaceImage(r *Renderer, img *Image, surface image.Image, surfaceRect *Rect) error {
	return r.Unsupported("ReplaceImage")
}

func (Unsupported) CopyImageFromSurface(r *Renderer, surface image.Image) (*Image, error) {
	return nil, r.Unsupported("CopyImageFromSurface")
}

func (Unsupported) CopyImageFromTarget(r *Renderer, t *Target) (*Image, error) {
	return nil, r.Unsupported("CopyImageFromTarget")
}

func (Unsupported) CopySurfaceFromTarget(r *Renderer, t *Target) (image.Image, error) {
	return nil, r.Unsupported("CopySurfaceFromTarget")
}

func (Unsupported) CopySurfaceFromImage(r *Renderer, img *Image) (image.Image, error) {
	return nil, r.Unsupported("CopySurfaceFromImage")
}

func (Unsupported) FreeImage(r *Renderer, img *Image) { r.Unsupported("FreeImage") }

// --- target management ---

func (Unsupported) LoadTarget(r *Renderer, img *Image) (*Target, error) {
	return nil, r.Unsupported("LoadTarget")
}

func (Unsupported) FreeTarget(r *Renderer, t *Target) { r.Unsupported("FreeTarget") }

// --- blitting ---

func (Unsupported) Blit(r *Renderer, img *Image, srcRect *Rect, target *Target, x, y float32) error {
	return r.Unsupported("Blit")
}

func (Unsupported) BlitRotate(r *Renderer, img *Image, srcRect *Rect, target *Target, x, y, degrees float32) error {
	return r.Unsupported("BlitRotate")
}

func (Unsupported) BlitScale(r *Renderer, img *Image, srcRect *Rect, target *Target, x, y, scaleX, scaleY float32) error {
	return r.Unsupported("BlitScale")
}

func (Unsupported) BlitTransform(r *Renderer, img *Image, srcRect *Rect, target *Target, x, y, degrees, scaleX, scaleY float32) error {
	return r.Unsupported("BlitTransform")
}

func (Unsupported) BlitTransformX(r *Renderer, img *Image, srcRect *Rect, target *Target, x, y, pivotX, pivotY, degrees, scaleX, scaleY float32) error {
	return r.Unsupported("BlitTransformX")
}

func (Unsupported) TriangleBatch(r *Renderer, img *Image, target *Target, vertices []float32, indices []uint16, flags BatchFlags) error {
	return r.Unsupported("TriangleBatch")
}

func (Unsupported) GenerateMipmaps(r *Renderer, img *Image) error {
	return r.Unsupported("GenerateMipmaps")
}

// --- target state and drawing ---

func (Unsupported) SetClip(r *Renderer, target *Target, x, y int16, w, h uint16) Rect {
	r.Unsupported("SetClip")
	return Rect{}
}

func (Unsupported) UnsetClip(r *Renderer, target *Target) { r.Unsupported("UnsetClip") }

func (Unsupported) GetPixel(r *Renderer, target *Target, x, y int16) (color.RGBA, error) {
	return color.RGBA{}, r.Unsupported("GetPixel")
}

func (Unsupported) SetImageFilter(r *Renderer, img *Image, filter Filter) {
	r.Unsupported("SetImageFilter")
}

func (Unsupported) SetWrapMode(r *Renderer, img *Image, wrapX, wrapY Wrap) {
	r.Unsupported("SetWrapMode")
}

func (Unsupported) ClearRGBA(r *Renderer, target *Target, cr, cg, cb, ca uint8) error {
	return r.Unsupported("ClearRGBA")
}

func (Unsupported) FlushBlitBuffer(r *Renderer) { r.Unsupported("FlushBlitBuffer") }

func (Unsupported) Flip(r *Renderer, target *Target) error {
	return r.Unsupported("Flip")
}

func (Unsupported) SetLineThickness(r *Renderer, thickness float32) (float32, error) {
	return 0, r.Unsupported("SetLineThickness")
}

func (Unsupported) GetLineThickness(r *Renderer) (float32, error) {
	return 0, r.Unsupported("GetLineThickness")
}

func (Unsupported) Pixel(r *Renderer, target *Target, x, y float32, c color.RGBA) error {
	return r.Unsupported("Pixel")
}

func (Unsupported) Line(r *Renderer, target *Target, x1, y1, x2, y2 float32, c color.RGBA) error {
	return r.Unsupported("Line")
}

func (Unsupported) Arc(r *Renderer, target *Target, x, y, radius, startAngle, endAngle float32, c color.RGBA) error {
	return r.Unsupported("Arc")
}

func (Unsupported) ArcFilled(r *Renderer, target *Target, x, y, radius, startAngle, endAngle float32, c color.RGBA) error {
	return r.Unsupported("ArcFilled")
}

func (Unsupported) Circle(r *Renderer, target *Target, x, y, radius float32, c color.RGBA) error {
	return r.Unsupported("Circle")
}

func (Unsupported) CircleFilled(r *Renderer, target *Target, x, y, radius float32, c color.RGBA) error {
	return r.Unsupported("CircleFilled")
}

func (Unsupported) Ellipse(r *Renderer, target *Target, x, y, rx, ry, degrees float32, c color.RGBA) error {
	return r.Unsupported("Ellipse")
}

func (Unsupported) EllipseFilled(r *Renderer, target *Target, x, y, rx, ry, degrees float32, c color.RGBA) error {
	return r.Unsupported("EllipseFilled")
}

func (Unsupported) Sector(r *Renderer, target *Target, x, y, innerRadius, outerRadius, startAngle, endAngle float32, c color.RGBA) error {
	return r.Unsupported("Sector")
}

func (Unsupported) SectorFilled(r *Renderer, target *Target, x, y, innerRadius, outerRadius, startAngle, endAngle float32, c color.RGBA) error {
	return r.Unsupported("SectorFilled")
}

func (Unsupported) Tri(r *Renderer, target *Target, x1, y1, x2, y2, x3, y3 float32, c color.RGBA) error {
	return r.Unsupported("Tri")
}

func (Unsupported) TriFilled(r *Renderer, target *Target, x1, y1, x2, y2, x3, y3 float32, c color.RGBA) error {
	return r.Unsupported("TriFilled")
}

func (Unsupported) Rectangle(r *Renderer, target *Target, x1, y1, x2, y2 float32, c color.RGBA) error {
	return r.Unsupported("Rectangle")
}

func (Unsupported) RectangleFilled(r *Renderer, target *Target, x1, y1, x2, y2 float32, c color.RGBA) error {
	return r.Unsupported("RectangleFilled")
}

func (Unsupported) RectangleRound(r *Renderer, target *Target, x1, y1, x2, y2, radius float32, c color.RGBA) error {
	return r.Unsupported("RectangleRound")
}

func (Unsupported) RectangleRoundFilled(r *Renderer, target *Target, x1, y1, x2, y2, radius float32, c color.RGBA) error {
	return r.Unsupported("RectangleRoundFilled")
}

func (Unsupported) Polygon(r *Renderer, target *Target, vertices []float32, c color.RGBA) error {
	return r.Unsupported("Polygon")
}

func (Unsupported) PolygonFilled(r *Renderer, target *Target, vertices []float32, c color.RGBA) error {
	return r.Unsupported("PolygonFilled")
}

// --- shaders, uniforms, attributes ---

func (Unsupported) CreateShaderProgram(r *Renderer) (uint32, error) {
	return 0, r.Unsupported("CreateShaderProgram")
}

func (Unsupported) FreeShaderProgram(r *Renderer, program uint32) error {
	return r.Unsupported("FreeShaderProgram")
}

func (Unsupported) CompileShader(r *Renderer, shaderType ShaderType, source string) (uint32, error) {
	return 0, r.Unsupported("CompileShader")
}

func (Unsupported) FreeShader(r *Renderer, shader uint32) error {
	return r.Unsupported("FreeShader")
}

func (Unsupported) AttachShader(r *Renderer, program, shader uint32) error {
	return r.Unsupported("AttachShader")
}

func (Unsupported) DetachShader(r *Renderer, program, shader uint32) error {
	return r.Unsupported("DetachShader")
}

func (Unsupported) LinkShaderProgram(r *Renderer, program uint32) error {
	return r.Unsupported("LinkShaderProgram")
}

func (Unsupported) ActivateShaderProgram(r *Renderer, program uint32, block *ShaderBlock) error {
	return r.Unsupported("ActivateShaderProgram")
}

func (Unsupported) DeactivateShaderProgram(r *Renderer) error {
	return r.Unsupported("DeactivateShaderProgram")
}

func (Unsupported) GetShaderMessage(r *Renderer) string {
	r.Unsupported("GetShaderMessage")
	return ""
}

func (Unsupported) GetAttributeLocation(r *Renderer, program uint32, name string) (int, error) {
	return -1, r.Unsupported("GetAttributeLocation")
}

func (Unsupported) GetUniformLocation(r *Renderer, program uint32, name string) (int, error) {
	return -1, r.Unsupported("GetUniformLocation")
}

func (Unsupported) LoadShaderBlock(r *Renderer, program uint32, positionName, texcoordName, colorName, modelViewMatrixName string) (ShaderBlock, error) {
	return ShaderBlock{}, r.Unsupported("LoadShaderBlock")
}

func (Unsupported) SetShaderBlock(r *Renderer, block ShaderBlock) error {
	return r.Unsupported("SetShaderBlock")
}

func (Unsupported) SetShaderImage(r *Renderer, img *Image, location, imageUnit int) error {
	return r.Unsupported("SetShaderImage")
}

func (Unsupported) GetUniformiv(r *Renderer, program uint32, location int, values []int32) error {
	return r.Unsupported("GetUniformiv")
}

func (Unsupported) SetUniformi(r *Renderer, location int, value int32) error {
	return r.Unsupported("SetUniformi")
}

func (Unsupported) SetUniformiv(r *Renderer, location, elementsPerValue int, values []int32) error {
	return r.Unsupported("SetUniformiv")
}

func (Unsupported) GetUniformuiv(r *Renderer, program uint32, location int, values []uint32) error {
	return r.Unsupported("GetUniformuiv")
}

func (Unsupported) SetUniformui(r *Renderer, location int, value uint32) error {
	return r.Unsupported("SetUniformui")
}

func (Unsupported) SetUniformuiv(r *Renderer, location, elementsPerValue int, values []uint32) error {
	return r.Unsupported("SetUniformuiv")
}

func (Unsupported) GetUniformfv(r *Renderer, program uint32, location int, values []float32) error {
	return r.Unsupported("GetUniformfv")
}

func (Unsupported) SetUniformf(r *Renderer, location int, value float32) error {
	return r.Unsupported("SetUniformf")
}

func (Unsupported) SetUniformfv(r *Renderer, location, elementsPerValue int, values []float32) error {
	return r.Unsupported("SetUniformfv")
}

func (Unsupported) SetUniformMatrixfv(r *Renderer, location, numMatrices, numRows, numColumns int, transpose bool, values []float32) error {
	return r.Unsupported("SetUniformMatrixfv")
}

func (Unsupported) SetAttributef(r *Renderer, location int, value float32) error {
	return r.Unsupported("SetAttributef")
}

func (Unsupported) SetAttributei(r *Renderer, location int, value int32) error {
	return r.Unsupported("SetAttributei")
}

func (Unsupported) SetAttributeui(r *Renderer, location int, value uint32) error {
	return r.Unsupported("SetAttributeui")
}

func (Unsupported) SetAttributefv(r *Renderer, location int, values []float32) error {
	return r.Unsupported("SetAttributefv")
}

func (Unsupported) SetAttributeiv(r *Renderer, location int, values []int32) error {
	return r.Unsupported("SetAttributeiv")
}

func (Unsupported) SetAttributeuiv(r *Renderer, location int, values []uint32) error {
	return r.Unsupported("SetAttributeuiv")
}

func (Unsupported) SetAttributeSource(r *Renderer, numValues int, source Attribute) error {
	return r.Unsupported("SetAttributeSource")
}
