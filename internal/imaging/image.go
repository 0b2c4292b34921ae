package imaging

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strings"
)

// Mode is the pixel format of a buffer.
type Mode string

// Pixel modes.
const (
	ModeGray    Mode = "L"
	ModeRGB     Mode = "RGB"
	ModeRGBA    Mode = "RGBA"
	ModePalette Mode = "P"
)

// Modes lists every supported mode.
var Modes = []Mode{ModeGray, ModeRGB, ModeRGBA, ModePalette}

// ParseMode accepts a mode name case-insensitively. "gray" and "grayscale"
// are accepted for L.
func ParseMode(s string) (Mode, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "L", "GRAY", "GRAYSCALE":
		return ModeGray, nil
	case "RGB":
		return ModeRGB, nil
	case "RGBA":
		return ModeRGBA, nil
	case "P", "PALETTE":
		return ModePalette, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedMode, s)
}

// HasAlpha reports whether the mode keeps an alpha channel.
func (m Mode) HasAlpha() bool {
	return m == ModeRGBA
}

// MaxPixels caps the area of a buffer created by scaling or from scratch.
const MaxPixels = 1 << 27

// CheckSize rejects dimensions that are not positive or whose area exceeds
// MaxPixels.
func CheckSize(width, height int) error {
	if width < 1 || height < 1 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	if width > MaxPixels || height > MaxPixels || int64(width)*int64(height) > MaxPixels {
		return fmt.Errorf("%w: %dx%d", ErrTooLarge, width, height)
	}
	return nil
}

// Image is an editable raster buffer.
type Image struct {
	Pix     *image.NRGBA // bounds always start at (0, 0)
	Mode    Mode
	Palette color.Palette // ModePalette only
}

// New returns a width x height buffer in the given mode filled with c.
func New(width, height int, mode Mode, c color.Color) *Image {
	pix := image.NewNRGBA(image.Rect(0, 0, width, height))
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	for i := 0; i < len(pix.Pix); i += 4 {
		pix.Pix[i], pix.Pix[i+1], pix.Pix[i+2], pix.Pix[i+3] = n.R, n.G, n.B, n.A
	}
	return &Image{Pix: pix, Mode: mode}
}

// FromImage copies img into a new buffer and detects its mode.
func FromImage(img image.Image) *Image {
	out := &Image{Pix: toNRGBA(img), Mode: detectMode(img)}
	if p, ok := img.(*image.Paletted); ok {
		out.Palette = append(color.Palette(nil), p.Palette...)
	}
	return out
}

func detectMode(img image.Image) Mode {
	switch m := img.(type) {
	case *image.Gray, *image.Gray16:
		return ModeGray
	case *image.Paletted:
		return ModePalette
	case *image.YCbCr, *image.CMYK:
		return ModeRGB
	case interface{ Opaque() bool }:
		if m.Opaque() {
			return ModeRGB
		}
	}
	return ModeRGBA
}

// toNRGBA returns a copy of img as NRGBA anchored at the origin.
func toNRGBA(img image.Image) *image.NRGBA {
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	if src, ok := img.(*image.NRGBA); ok {
		for y := 0; y < b.Dy(); y++ {
			so := src.PixOffset(b.Min.X, b.Min.Y+y)
			copy(dst.Pix[y*dst.Stride:y*dst.Stride+b.Dx()*4], src.Pix[so:so+b.Dx()*4])
		}
		return dst
	}
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

// Width returns the buffer width in pixels.
func (im *Image) Width() int { return im.Pix.Rect.Dx() }

// Height returns the buffer height in pixels.
func (im *Image) Height() int { return im.Pix.Rect.Dy() }

// Bounds returns the buffer rectangle.
func (im *Image) Bounds() image.Rectangle { return im.Pix.Rect }

// Clone returns a deep copy.
func (im *Image) Clone() *Image {
	return im.derive(toNRGBA(im.Pix))
}

// derive wraps pix with the receiver's mode and palette. Palette buffers are
// snapped back onto their palette so the pixels match what gets written.
func (im *Image) derive(pix *image.NRGBA) *Image {
	out := &Image{Pix: pix, Mode: im.Mode}
	if im.Palette != nil {
		out.Palette = append(color.Palette(nil), im.Palette...)
		if im.Mode == ModePalette {
			quantize(pix, out.Palette)
		}
	}
	return out
}

// quantize replaces every pixel with its nearest palette entry. The nearest
// match uses the same metric image/draw applies when drawing into a
// *image.Paletted, so Materialize picks the same entries again.
func quantize(pix *image.NRGBA, p color.Palette) {
	if len(p) == 0 {
		return
	}
	seen := make(map[color.NRGBA]color.NRGBA)
	w := pix.Rect.Dx() * 4
	for y := 0; y < pix.Rect.Dy(); y++ {
		row := pix.Pix[y*pix.Stride : y*pix.Stride+w]
		for i := 0; i < len(row); i += 4 {
			c := color.NRGBA{R: row[i], G: row[i+1], B: row[i+2], A: row[i+3]}
			n, ok := seen[c]
			if !ok {
				n = color.NRGBAModel.Convert(p.Convert(c)).(color.NRGBA)
				seen[c] = n
			}
			row[i], row[i+1], row[i+2], row[i+3] = n.R, n.G, n.B, n.A
		}
	}
}

// Background is the fill used for canvas area not covered by source pixels.
func (im *Image) Background() color.NRGBA {
	if im.Mode.HasAlpha() {
		return color.NRGBA{}
	}
	return color.NRGBA{A: 0xff}
}

// Materialize converts the buffer into the concrete image type for its mode.
func (im *Image) Materialize() image.Image {
	r := im.Bounds()
	switch im.Mode {
	case ModeGray:
		g := image.NewGray(r)
		draw.Draw(g, r, im.Pix, image.Point{}, draw.Src)
		return g
	case ModeRGB:
		out := toNRGBA(im.Pix)
		opaque(out)
		return out
	case ModePalette:
		p := image.NewPaletted(r, im.Palette)
		draw.Draw(p, r, im.Pix, image.Point{}, draw.Src)
		return p
	default:
		return toNRGBA(im.Pix)
	}
}

// Equal reports whether two buffers have the same mode, size and pixels.
func Equal(a, b *Image) bool {
	if a.Mode != b.Mode || a.Bounds() != b.Bounds() {
		return false
	}
	w := a.Width() * 4
	for y := 0; y < a.Height(); y++ {
		ra := a.Pix.Pix[y*a.Pix.Stride : y*a.Pix.Stride+w]
		rb := b.Pix.Pix[y*b.Pix.Stride : y*b.Pix.Stride+w]
		if string(ra) != string(rb) {
			return false
		}
	}
	return true
}
