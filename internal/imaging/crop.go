package imaging

import (
	"fmt"
	"image"
)

// Crop returns the pixels inside r. r must be non-empty and lie within the
// image bounds.
func Crop(im *Image, r image.Rectangle) (*Image, error) {
	r = r.Canon()
	if r.Empty() || !r.In(im.Bounds()) {
		return nil, fmt.Errorf("%w: %v in %v", ErrInvalidRect, r, im.Bounds())
	}
	return im.derive(toNRGBA(im.Pix.SubImage(r))), nil
}
