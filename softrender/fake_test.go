package softrender

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/accel"
	"github.com/gogpu/accel/canvas"
	"github.com/gogpu/gputypes"
)

// The fakes record every canvas call so tests can assert on binding,
// upload and copy behavior without a real rasterizer.

type fakeDriver struct {
	windows map[uint32]*fakeWindow
	canvas  *fakeCanvas

	newRendererErr error
}

func newFakeDriver(id uint32, w, h int) *fakeDriver {
	return &fakeDriver{
		windows: map[uint32]*fakeWindow{id: {id: id, w: w, h: h}},
	}
}

func (d *fakeDriver) WindowByID(id uint32) (canvas.Window, error) {
	win, ok := d.windows[id]
	if !ok {
		return nil, fmt.Errorf("unknown window %d", id)
	}
	return win, nil
}

func (d *fakeDriver) NewRenderer(win canvas.Window) (canvas.Renderer, error) {
	if d.newRendererErr != nil {
		return nil, d.newRendererErr
	}
	d.canvas = &fakeCanvas{win: win.(*fakeWindow)}
	return d.canvas, nil
}

type fakeWindow struct {
	id   uint32
	w, h int
}

func (w *fakeWindow) ID() uint32               { return w.id }
func (w *fakeWindow) DrawableSize() (int, int) { return w.w, w.h }

type updateCall struct {
	rect   image.Rectangle
	pix    []byte
	stride int
}

type copyCall struct {
	tex      canvas.Texture
	src, dst image.Rectangle
}

type copyExCall struct {
	tex      canvas.Texture
	src, dst image.Rectangle
	degrees  float64
	center   image.Point
	flip     canvas.Flip
}

type fakeTexture struct {
	w, h   int
	format gputypes.TextureFormat
	blend  canvas.BlendMode

	updates      []updateCall
	destroyCount int
	updateErr    error
}

func (t *fakeTexture) Size() (int, int)                { return t.w, t.h }
func (t *fakeTexture) Format() gputypes.TextureFormat  { return t.format }
func (t *fakeTexture) SetBlendMode(m canvas.BlendMode) { t.blend = m }
func (t *fakeTexture) Destroy()                        { t.destroyCount++ }

func (t *fakeTexture) Update(rect image.Rectangle, pix []byte, stride int) error {
	if t.updateErr != nil {
		return t.updateErr
	}
	// Snapshot the rows actually covered by rect so later mutation of the
	// caller's buffer cannot confuse assertions.
	n := (rect.Dy()-1)*stride + rect.Dx()*4
	snap := make([]byte, n)
	copy(snap, pix[:n])
	t.updates = append(t.updates, updateCall{rect: rect, pix: snap, stride: stride})
	return nil
}

type fakeCanvas struct {
	win *fakeWindow

	setTargetCalls []canvas.Texture
	clears         []color.RGBA
	copies         []copyCall
	copyExes       []copyExCall
	points         []image.Point
	fills          []image.Rectangle
	clip           *image.Rectangle
	drawColor      color.RGBA
	presents       int
	destroyed      bool

	createTextureErr error
	copyErr          error
	presentErr       error
}

func (c *fakeCanvas) CreateTexture(format gputypes.TextureFormat, w, h int) (canvas.Texture, error) {
	if c.createTextureErr != nil {
		return nil, c.createTextureErr
	}
	return &fakeTexture{w: w, h: h, format: format}, nil
}

func (c *fakeCanvas) SetTarget(t canvas.Texture) error {
	c.setTargetCalls = append(c.setTargetCalls, t)
	return nil
}

func (c *fakeCanvas) SetClip(rect image.Rectangle) { c.clip = &rect }
func (c *fakeCanvas) ResetClip()                   { c.clip = nil }
func (c *fakeCanvas) SetDrawColor(col color.RGBA)  { c.drawColor = col }

func (c *fakeCanvas) Clear() error {
	c.clears = append(c.clears, c.drawColor)
	return nil
}

func (c *fakeCanvas) DrawPoint(x, y int) error {
	c.points = append(c.points, image.Pt(x, y))
	return nil
}

func (c *fakeCanvas) DrawLine(x1, y1, x2, y2 int) error { return nil }
func (c *fakeCanvas) DrawRect(rect image.Rectangle) error {
	return nil
}

func (c *fakeCanvas) FillRect(rect image.Rectangle) error {
	c.fills = append(c.fills, rect)
	return nil
}

func (c *fakeCanvas) Copy(tex canvas.Texture, src, dst image.Rectangle) error {
	if c.copyErr != nil {
		return c.copyErr
	}
	c.copies = append(c.copies, copyCall{tex: tex, src: src, dst: dst})
	return nil
}

func (c *fakeCanvas) CopyEx(tex canvas.Texture, src, dst image.Rectangle, degrees float64, center image.Point, flip canvas.Flip) error {
	if c.copyErr != nil {
		return c.copyErr
	}
	c.copyExes = append(c.copyExes, copyExCall{
		tex: tex, src: src, dst: dst,
		degrees: degrees, center: center, flip: flip,
	})
	return nil
}

func (c *fakeCanvas) Present() error {
	if c.presentErr != nil {
		return c.presentErr
	}
	c.presents++
	return nil
}

func (c *fakeCanvas) Destroy() { c.destroyed = true }

var (
	_ canvas.Driver   = (*fakeDriver)(nil)
	_ canvas.Window   = (*fakeWindow)(nil)
	_ canvas.Renderer = (*fakeCanvas)(nil)
	_ canvas.Texture  = (*fakeTexture)(nil)
)

var errFake = errors.New("fake failure")

var colorWhite = color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}

// newTestRenderer builds a renderer over a 64x48 fake window and initializes
// its window target.
func newTestRenderer(t *testing.T) (*accel.Renderer, *fakeDriver, *accel.Target) {
	t.Helper()
	drv := newFakeDriver(1, 64, 48)
	r, err := New(drv)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	target, err := r.Impl().Init(r, 1, 0, 0, 0)
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	return r, drv, target
}

// mustCreateImage allocates an image or fails the test.
func mustCreateImage(t *testing.T, r *accel.Renderer, w, h uint16, format accel.Format) *accel.Image {
	t.Helper()
	img, err := r.Impl().CreateImage(r, w, h, format)
	if err != nil {
		t.Fatalf("CreateImage: %v", err)
	}
	return img
}
