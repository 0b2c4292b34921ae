package imaging

import (
	"fmt"
	"image"
	"math"

	xdraw "golang.org/x/image/draw"
)

// ScaledSize returns the dimensions after scaling by percent, rounded to the
// nearest integer and never below 1.
func ScaledSize(width, height int, percent float64) (int, int) {
	scale := func(v int) int {
		n := int(math.Round(float64(v) * percent / 100))
		if n < 1 {
			n = 1
		}
		return n
	}
	return scale(width), scale(height)
}

// Resize scales both dimensions by percent/100.
func Resize(im *Image, percent float64, interp Interpolation) (*Image, error) {
	if !(percent > 0) || math.IsInf(percent, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPercent, percent)
	}
	fw := math.Round(float64(im.Width()) * percent / 100)
	fh := math.Round(float64(im.Height()) * percent / 100)
	if fw*fh > MaxPixels {
		return nil, fmt.Errorf("%w: %v: %w", ErrInvalidPercent, percent, ErrTooLarge)
	}
	nw, nh := ScaledSize(im.Width(), im.Height(), percent)
	if nw == im.Width() && nh == im.Height() {
		return im.Clone(), nil
	}

	dst := image.NewNRGBA(image.Rect(0, 0, nw, nh))
	interp.interpolator().Scale(dst, dst.Bounds(), im.Pix, im.Pix.Bounds(), xdraw.Src, nil)
	return im.derive(dst), nil
}
