package accel

// Rect is an axis-aligned rectangle in float32 coordinates, the unit used by
// blit source/destination rectangles and clip rectangles.
type Rect struct {
	X, Y float32
	W, H float32
}

// Format identifies the logical pixel format of an Image.
type Format uint32

// Image pixel formats.
const (
	// FormatRGB is 3 logical channels stored padded to 4 bytes per pixel.
	// The alpha byte is present in storage but ignored.
	FormatRGB Format = iota + 1

	// FormatRGBA is 4 channels, 4 bytes per pixel.
	FormatRGBA
)

// Filter selects how an image is sampled when scaled.
type Filter uint32

// Image filter modes.
const (
	FilterNearest Filter = iota
	FilterLinear
	FilterLinearMipmap
)

// Snap controls how blit coordinates are snapped to the pixel grid.
type Snap uint32

// Snap modes.
const (
	SnapNone Snap = iota
	SnapPosition
	SnapDimensions
	SnapPositionAndDimensions
)

// Wrap selects texture wrap behavior outside [0,1) coordinates.
type Wrap uint32

// Wrap modes.
const (
	WrapNone Wrap = iota
	WrapRepeat
	WrapMirrored
)

// BlendPreset names a predefined blend mode.
type BlendPreset uint32

// Blend presets.
const (
	// BlendNormal is standard source-over alpha blending.
	BlendNormal BlendPreset = iota
	BlendPremultipliedAlpha
	BlendMultiply
	BlendAdd
	BlendSubtract
	BlendModAlpha
	BlendSetAlpha
	BlendSet
	BlendNormalKeepAlpha
	BlendNormalAddAlpha
	BlendNormalFactorAlpha
)

// WindowFlags are passed through to the windowing collaborator on Init.
// The software backend does not interpret them.
type WindowFlags uint32

// Camera describes a 2D camera. The software backend does not support
// cameras; the type exists so SetCamera has a complete signature.
type Camera struct {
	X, Y, Z float32
	Angle   float32
	Zoom    float32
}

// ShaderType identifies a shader stage.
type ShaderType uint32

// Shader stages.
const (
	ShaderVertex ShaderType = iota
	ShaderFragment
	ShaderGeometry
)

// ShaderBlock holds the attribute locations of the standard shader inputs.
type ShaderBlock struct {
	PositionLoc            int32
	TexcoordLoc            int32
	ColorLoc               int32
	ModelViewProjectionLoc int32
}

// Attribute describes a custom vertex attribute source.
type Attribute struct {
	Location  int32
	Values    []float32
	PerVertex int
}

// BatchFlags describe the vertex layout of a triangle batch.
type BatchFlags uint32

// FileFormat identifies an image file format for SaveImage.
type FileFormat uint32

// Image file formats.
const (
	FileAuto FileFormat = iota
	FilePNG
	FileBMP
	FileTGA
)
