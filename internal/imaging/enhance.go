package imaging

import (
	"fmt"
	"image"
	"math"
	"strings"
)

// EnhanceKind names an enhancement axis.
type EnhanceKind string

// Enhancements.
const (
	EnhanceColor      EnhanceKind = "color"
	EnhanceContrast   EnhanceKind = "contrast"
	EnhanceBrightness EnhanceKind = "brightness"
	EnhanceSharpness  EnhanceKind = "sharpness"
)

// Enhancements lists every enhancement in menu order.
var Enhancements = []EnhanceKind{EnhanceColor, EnhanceContrast, EnhanceBrightness, EnhanceSharpness}

// ParseEnhance accepts an enhancement name case-insensitively.
func ParseEnhance(s string) (EnhanceKind, error) {
	k := EnhanceKind(strings.ToLower(strings.TrimSpace(s)))
	for _, e := range Enhancements {
		if e == k {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownEnhance, s)
}

// Enhance blends im with a degenerate version of itself:
//
//	out = degenerate + factor*(in - degenerate)
//
// so factor 1 leaves the image unchanged and 0 yields the degenerate image.
// Results are clamped per channel; alpha is preserved.
func Enhance(im *Image, kind EnhanceKind, factor float64) (*Image, error) {
	if math.IsNaN(factor) || math.IsInf(factor, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFactor, factor)
	}
	deg, err := degenerate(im.Pix, kind)
	if err != nil {
		return nil, err
	}

	src := im.Pix
	dst := image.NewNRGBA(src.Rect)
	for i := 0; i < len(src.Pix); i += 4 {
		for c := 0; c < 3; c++ {
			d := float64(deg.Pix[i+c])
			dst.Pix[i+c] = clampByte(d + factor*(float64(src.Pix[i+c])-d))
		}
		dst.Pix[i+3] = src.Pix[i+3]
	}
	return im.derive(dst), nil
}

func degenerate(src *image.NRGBA, kind EnhanceKind) (*image.NRGBA, error) {
	switch kind {
	case EnhanceColor:
		return grayscale(src), nil
	case EnhanceContrast:
		m := meanLuma(src)
		return fill(src.Rect, m, m, m), nil
	case EnhanceBrightness:
		return fill(src.Rect, 0, 0, 0), nil
	case EnhanceSharpness:
		return convolve(src, kernels[FilterSmooth]), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownEnhance, kind)
}

// luma uses the ITU-R 601-2 weights.
func luma(r, g, b uint8) uint8 {
	return uint8((int(r)*299 + int(g)*587 + int(b)*114 + 500) / 1000)
}

func grayscale(src *image.NRGBA) *image.NRGBA {
	dst := image.NewNRGBA(src.Rect)
	for i := 0; i < len(src.Pix); i += 4 {
		l := luma(src.Pix[i], src.Pix[i+1], src.Pix[i+2])
		dst.Pix[i], dst.Pix[i+1], dst.Pix[i+2] = l, l, l
		dst.Pix[i+3] = src.Pix[i+3]
	}
	return dst
}

func meanLuma(src *image.NRGBA) uint8 {
	n := len(src.Pix) / 4
	if n == 0 {
		return 0
	}
	var sum int
	for i := 0; i < len(src.Pix); i += 4 {
		sum += int(luma(src.Pix[i], src.Pix[i+1], src.Pix[i+2]))
	}
	return uint8(float64(sum)/float64(n) + 0.5)
}

func fill(r image.Rectangle, red, green, blue uint8) *image.NRGBA {
	dst := image.NewNRGBA(r)
	for i := 0; i < len(dst.Pix); i += 4 {
		dst.Pix[i], dst.Pix[i+1], dst.Pix[i+2], dst.Pix[i+3] = red, green, blue, 0xff
	}
	return dst
}
