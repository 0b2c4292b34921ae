package imaging

import (
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/draw"
)

// Convert re-expresses im in the target mode.
//
// L keeps only luma, RGB drops alpha, RGBA adds an opaque alpha channel and
// P quantizes onto the web-safe palette with Floyd-Steinberg dithering.
// A palette image without a palette table cannot be converted.
func Convert(im *Image, mode Mode) (*Image, error) {
	switch mode {
	case ModeGray, ModeRGB, ModeRGBA, ModePalette:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedMode, mode)
	}
	if im.Mode == ModePalette && len(im.Palette) == 0 {
		return nil, ErrMissingPalette
	}
	if im.Mode == mode {
		return im.Clone(), nil
	}

	src := im.Pix
	switch mode {
	case ModeGray:
		dst := grayscale(src)
		opaque(dst)
		return &Image{Pix: dst, Mode: ModeGray}, nil
	case ModeRGB:
		dst := toNRGBA(src)
		opaque(dst)
		return &Image{Pix: dst, Mode: ModeRGB}, nil
	case ModeRGBA:
		return &Image{Pix: toNRGBA(src), Mode: ModeRGBA}, nil
	default:
		flat := toNRGBA(src)
		opaque(flat)
		pal := append(color.Palette(nil), palette.WebSafe...)
		p := image.NewPaletted(flat.Rect, pal)
		draw.FloydSteinberg.Draw(p, p.Rect, flat, image.Point{})
		return &Image{Pix: toNRGBA(p), Mode: ModePalette, Palette: pal}, nil
	}
}

func opaque(img *image.NRGBA) {
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 0xff
	}
}
