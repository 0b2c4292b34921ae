package imaging

import (
	"fmt"
	"image"
	"strings"
)

// FilterKind names a convolution filter.
type FilterKind string

// Filters.
const (
	FilterBlur    FilterKind = "blur"
	FilterSharpen FilterKind = "sharpen"
	FilterContour FilterKind = "contour"
	FilterDetail  FilterKind = "detail"
	FilterSmooth  FilterKind = "smooth"
)

// Filters lists every filter in menu order.
var Filters = []FilterKind{FilterBlur, FilterSharpen, FilterContour, FilterDetail, FilterSmooth}

type kernel struct {
	size   int
	scale  float64
	offset float64
	k      []int
}

var kernels = map[FilterKind]kernel{
	FilterBlur: {5, 16, 0, []int{
		1, 1, 1, 1, 1,
		1, 0, 0, 0, 1,
		1, 0, 0, 0, 1,
		1, 0, 0, 0, 1,
		1, 1, 1, 1, 1,
	}},
	FilterSharpen: {3, 16, 0, []int{
		-2, -2, -2,
		-2, 32, -2,
		-2, -2, -2,
	}},
	FilterContour: {3, 1, 255, []int{
		-1, -1, -1,
		-1, 8, -1,
		-1, -1, -1,
	}},
	FilterDetail: {3, 6, 0, []int{
		0, -1, 0,
		-1, 10, -1,
		0, -1, 0,
	}},
	FilterSmooth: {3, 13, 0, []int{
		1, 1, 1,
		1, 5, 1,
		1, 1, 1,
	}},
}

// ParseFilter accepts a filter name case-insensitively.
func ParseFilter(s string) (FilterKind, error) {
	k := FilterKind(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := kernels[k]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownFilter, s)
	}
	return k, nil
}

// Filter convolves the color channels of im with the named kernel. Pixels
// past the edge repeat the nearest edge pixel; alpha is left as is.
func Filter(im *Image, kind FilterKind) (*Image, error) {
	k, ok := kernels[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFilter, kind)
	}
	return im.derive(convolve(im.Pix, k)), nil
}

func convolve(src *image.NRGBA, k kernel) *image.NRGBA {
	w, h := src.Rect.Dx(), src.Rect.Dy()
	dst := image.NewNRGBA(src.Rect)
	half := k.size / 2

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var acc [3]int
			for ky := 0; ky < k.size; ky++ {
				sy := clampInt(y+ky-half, 0, h-1)
				for kx := 0; kx < k.size; kx++ {
					wt := k.k[ky*k.size+kx]
					if wt == 0 {
						continue
					}
					sx := clampInt(x+kx-half, 0, w-1)
					si := src.PixOffset(sx, sy)
					acc[0] += wt * int(src.Pix[si])
					acc[1] += wt * int(src.Pix[si+1])
					acc[2] += wt * int(src.Pix[si+2])
				}
			}
			di := dst.PixOffset(x, y)
			for c := 0; c < 3; c++ {
				dst.Pix[di+c] = clampByte(float64(acc[c])/k.scale + k.offset)
			}
			dst.Pix[di+3] = src.Pix[src.PixOffset(x, y)+3]
		}
	}
	return dst
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}
