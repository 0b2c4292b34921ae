package document

import "image"

// CropState is the phase of an interactive crop selection.
type CropState int

const (
	CropIdle CropState = iota
	CropSelecting
)

func (s CropState) String() string {
	if s == CropSelecting {
		return "selecting"
	}
	return "idle"
}

// Selection is the crop selection of one document. While selecting, every
// update replaces the candidate rectangle; there is no separate "selected"
// resting state.
type Selection struct {
	State  CropState
	Anchor image.Point
	Rect   image.Rectangle // candidate, clamped to the image; may be empty
}

// Valid reports whether the selection holds a non-empty rectangle.
func (s Selection) Valid() bool {
	return s.State == CropSelecting && !s.Rect.Empty()
}

func clampPoint(p image.Point, bounds image.Rectangle) image.Point {
	if p.X < bounds.Min.X {
		p.X = bounds.Min.X
	}
	if p.X > bounds.Max.X {
		p.X = bounds.Max.X
	}
	if p.Y < bounds.Min.Y {
		p.Y = bounds.Min.Y
	}
	if p.Y > bounds.Max.Y {
		p.Y = bounds.Max.Y
	}
	return p
}
