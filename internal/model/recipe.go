package model

import "image"

// Step is one transformation in a recipe. Only the fields relevant to Op are
// read; the rest stay zero.
type Step struct {
	Op      string  `yaml:"op"`
	Degrees int     `yaml:"degrees,omitempty"`
	Axis    string  `yaml:"axis,omitempty"`
	Percent float64 `yaml:"percent,omitempty"`
	Kind    string  `yaml:"kind,omitempty"`
	Factor  float64 `yaml:"factor,omitempty"`
	Mode    string  `yaml:"mode,omitempty"`
	Rect    []int   `yaml:"rect,omitempty"` // x0, y0, x1, y1
}

// Step ops.
const (
	OpRotate  = "rotate"
	OpFlip    = "flip"
	OpResize  = "resize"
	OpFilter  = "filter"
	OpEnhance = "enhance"
	OpConvert = "convert"
	OpCrop    = "crop"
)

// Rectangle returns the crop rectangle, or the empty rectangle if Rect is
// malformed.
func (s Step) Rectangle() image.Rectangle {
	if len(s.Rect) != 4 {
		return image.Rectangle{}
	}
	return image.Rect(s.Rect[0], s.Rect[1], s.Rect[2], s.Rect[3])
}
