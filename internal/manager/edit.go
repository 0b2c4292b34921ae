package manager

import (
	"image"

	"github.com/cwel/imgtab/internal/imaging"
	"github.com/cwel/imgtab/internal/model"
)

// The edit operations below act on the selected document and do nothing when
// no document is selected.

// Rotate turns the selected image counter-clockwise by degrees.
func (m *Manager) Rotate(degrees int) error {
	if d := m.Selected(); d != nil {
		d.Rotate(degrees)
	}
	return nil
}

// Flip mirrors the selected image.
func (m *Manager) Flip(axis imaging.Axis) error {
	if d := m.Selected(); d != nil {
		return d.Flip(axis)
	}
	return nil
}

// Resize scales the selected image by percent.
func (m *Manager) Resize(percent float64) error {
	if d := m.Selected(); d != nil {
		return d.Resize(percent)
	}
	return nil
}

// ApplyFilter convolves the selected image with a named kernel.
func (m *Manager) ApplyFilter(kind imaging.FilterKind) error {
	if d := m.Selected(); d != nil {
		return d.ApplyFilter(kind)
	}
	return nil
}

// Enhance adjusts color, contrast, brightness or sharpness of the selected image.
func (m *Manager) Enhance(kind imaging.EnhanceKind, factor float64) error {
	if d := m.Selected(); d != nil {
		return d.Enhance(kind, factor)
	}
	return nil
}

// Convert changes the selected image's color mode.
func (m *Manager) Convert(mode imaging.Mode) error {
	if d := m.Selected(); d != nil {
		return d.Convert(mode)
	}
	return nil
}

// StartCropSelection anchors a new crop selection at anchor.
func (m *Manager) StartCropSelection(anchor image.Point) {
	if d := m.Selected(); d != nil {
		d.StartCropSelection(anchor)
	}
}

// UpdateCropSelection stretches the selection to p.
func (m *Manager) UpdateCropSelection(p image.Point) {
	if d := m.Selected(); d != nil {
		d.UpdateCropSelection(p)
	}
}

// CommitCropSelection crops the selected image to its selection.
func (m *Manager) CommitCropSelection() error {
	if d := m.Selected(); d != nil {
		return d.CommitCropSelection()
	}
	return nil
}

// CancelCropSelection drops the selection, leaving the image as is.
func (m *Manager) CancelCropSelection() {
	if d := m.Selected(); d != nil {
		d.CancelCropSelection()
	}
}

// ApplyRecipe runs steps against the selected image, all or nothing.
func (m *Manager) ApplyRecipe(steps []model.Step) error {
	if d := m.Selected(); d != nil {
		return d.Apply(steps)
	}
	return nil
}
