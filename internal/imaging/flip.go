package imaging

import (
	"fmt"
	"image"
	"strings"
)

// Axis is a mirror direction.
type Axis string

// Flip axes.
const (
	FlipHorizontal Axis = "horizontal" // mirror left/right
	FlipVertical   Axis = "vertical"   // mirror top/bottom
)

// ParseAxis accepts "horizontal"/"h" and "vertical"/"v".
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "h", "horizontal", "x":
		return FlipHorizontal, nil
	case "v", "vertical", "y":
		return FlipVertical, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAxis, s)
}

// Flip mirrors im along axis.
func Flip(im *Image, axis Axis) (*Image, error) {
	src := im.Pix
	w, h := src.Rect.Dx(), src.Rect.Dy()
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))

	switch axis {
	case FlipHorizontal:
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				copyPixel(dst, x, y, src, w-1-x, y)
			}
		}
	case FlipVertical:
		for y := 0; y < h; y++ {
			copy(dst.Pix[y*dst.Stride:y*dst.Stride+w*4], src.Pix[(h-1-y)*src.Stride:(h-1-y)*src.Stride+w*4])
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAxis, axis)
	}
	return im.derive(dst), nil
}
