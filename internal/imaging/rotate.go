package imaging

import (
	"image"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// Rotate turns im counter-clockwise by degrees about its center.
//
// Quarter turns are exact pixel permutations. Any other angle expands the
// canvas to the rotated bounds; uncovered area takes the mode's background
// (transparent for RGBA, black otherwise).
func Rotate(im *Image, degrees int, interp Interpolation) *Image {
	switch d := ((degrees % 360) + 360) % 360; d {
	case 0:
		return im.Clone()
	case 90:
		return im.derive(rotate90(im.Pix))
	case 180:
		return im.derive(rotate180(im.Pix))
	case 270:
		return im.derive(rotate270(im.Pix))
	default:
		return im.derive(rotateFree(im, float64(d), interp))
	}
}

func rotate90(src *image.NRGBA) *image.NRGBA {
	w, h := src.Rect.Dx(), src.Rect.Dy()
	dst := image.NewNRGBA(image.Rect(0, 0, h, w))
	for y := 0; y < w; y++ {
		for x := 0; x < h; x++ {
			copyPixel(dst, x, y, src, w-1-y, x)
		}
	}
	return dst
}

func rotate180(src *image.NRGBA) *image.NRGBA {
	w, h := src.Rect.Dx(), src.Rect.Dy()
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			copyPixel(dst, x, y, src, w-1-x, h-1-y)
		}
	}
	return dst
}

func rotate270(src *image.NRGBA) *image.NRGBA {
	w, h := src.Rect.Dx(), src.Rect.Dy()
	dst := image.NewNRGBA(image.Rect(0, 0, h, w))
	for y := 0; y < w; y++ {
		for x := 0; x < h; x++ {
			copyPixel(dst, x, y, src, y, h-1-x)
		}
	}
	return dst
}

func rotateFree(im *Image, degrees float64, interp Interpolation) *image.NRGBA {
	sin, cos := math.Sincos(degrees * math.Pi / 180)
	w, h := float64(im.Width()), float64(im.Height())

	nw := expandedSide(w*cos, h*sin)
	nh := expandedSide(w*sin, h*cos)
	dst := image.NewNRGBA(image.Rect(0, 0, nw, nh))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(im.Background()), image.Point{}, draw.Src)

	// Source-to-destination map: rotate about the source center, then move
	// that center onto the center of the expanded canvas.
	cx, cy := w/2, h/2
	ncx, ncy := float64(nw)/2, float64(nh)/2
	m := f64.Aff3{
		cos, sin, ncx - cx*cos - cy*sin,
		-sin, cos, ncy + cx*sin - cy*cos,
	}
	interp.interpolator().Transform(dst, m, im.Pix, im.Pix.Bounds(), xdraw.Over, nil)
	return dst
}

func expandedSide(a, b float64) int {
	v := math.Abs(a) + math.Abs(b)
	// Trim float noise so 45° on a 10px square does not grow by a pixel.
	v = math.Round(v*1e6) / 1e6
	n := int(math.Ceil(v))
	if n < 1 {
		n = 1
	}
	return n
}

func copyPixel(dst *image.NRGBA, dx, dy int, src *image.NRGBA, sx, sy int) {
	di := dst.PixOffset(dx, dy)
	si := src.PixOffset(sx, sy)
	copy(dst.Pix[di:di+4], src.Pix[si:si+4])
}
