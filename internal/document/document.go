// Package document holds one open image: its pixel buffer, where it lives on
// disk, whether it has unsaved edits, and its crop selection.
package document

import (
	"image"
	"image/color"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/cwel/imgtab/internal/imaging"
	"github.com/cwel/imgtab/internal/model"
)

// UnsavedMarker is appended to the title of a dirty document.
const UnsavedMarker = "*"

// Options tune transformations and encoding.
type Options struct {
	Interpolation imaging.Interpolation
	Encode        imaging.EncodeOptions
}

// Document is one open image.
type Document struct {
	id    uuid.UUID
	path  string // empty until first saved
	buf   *imaging.Image
	dirty bool
	crop  Selection
	opts  Options
}

// Open decodes the image at path. The path is made absolute.
func Open(path string, opts Options) (*Document, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, &model.LoadError{Path: path, Err: err}
	}
	buf, _, err := imaging.Decode(abs)
	if err != nil {
		return nil, &model.LoadError{Path: abs, Err: err}
	}
	return &Document{id: uuid.New(), path: abs, buf: buf, opts: opts}, nil
}

// NewBlank creates a white, never-saved RGB document. It starts dirty because
// its content exists nowhere on disk.
func NewBlank(width, height int, opts Options) (*Document, error) {
	if err := imaging.CheckSize(width, height); err != nil {
		return nil, &model.ValidationError{Op: "new", Reason: "invalid dimensions", Err: err}
	}
	buf := imaging.New(width, height, imaging.ModeRGB, color.White)
	return &Document{id: uuid.New(), buf: buf, dirty: true, opts: opts}, nil
}

// ID identifies the document for the lifetime of the process.
func (d *Document) ID() uuid.UUID { return d.id }

// Path returns the absolute backing path, or "" if never saved.
func (d *Document) Path() string { return d.path }

// HasPath reports whether the document has been saved to disk.
func (d *Document) HasPath() bool { return d.path != "" }

// Dirty reports unsaved changes.
func (d *Document) Dirty() bool { return d.dirty }

// Image returns the current buffer. Callers must not modify it.
func (d *Document) Image() *imaging.Image { return d.buf }

// Crop returns the current crop selection.
func (d *Document) Crop() Selection { return d.crop }

// Filename returns the base name of the backing file.
func (d *Document) Filename() string {
	if d.path == "" {
		return "untitled"
	}
	return filepath.Base(d.path)
}

// Directory returns the directory of the backing file.
func (d *Document) Directory() string {
	if d.path == "" {
		return ""
	}
	return filepath.Dir(d.path)
}

// FullPath returns the backing path.
func (d *Document) FullPath() string { return d.path }

// Title is the filename, marked when there are unsaved changes.
func (d *Document) Title() string {
	if d.dirty {
		return d.Filename() + UnsavedMarker
	}
	return d.Filename()
}

// replace installs a transformed buffer. The old crop rectangle refers to
// the previous geometry, so the selection is dropped.
func (d *Document) replace(buf *imaging.Image) {
	d.buf = buf
	d.dirty = true
	d.crop = Selection{}
}

func invalid(op string, err error) error {
	return &model.ValidationError{Op: op, Reason: "invalid parameters", Err: err}
}

// Rotate turns the image counter-clockwise by degrees.
func (d *Document) Rotate(degrees int) {
	d.replace(imaging.Rotate(d.buf, degrees, d.opts.Interpolation))
}

// Flip mirrors the image.
func (d *Document) Flip(axis imaging.Axis) error {
	out, err := imaging.Flip(d.buf, axis)
	if err != nil {
		return invalid("flip", err)
	}
	d.replace(out)
	return nil
}

// Resize scales the image by percent.
func (d *Document) Resize(percent float64) error {
	out, err := imaging.Resize(d.buf, percent, d.opts.Interpolation)
	if err != nil {
		return invalid("resize", err)
	}
	d.replace(out)
	return nil
}

// ApplyFilter runs a convolution filter over the image.
func (d *Document) ApplyFilter(kind imaging.FilterKind) error {
	out, err := imaging.Filter(d.buf, kind)
	if err != nil {
		return invalid("filter", err)
	}
	d.replace(out)
	return nil
}

// Enhance adjusts color, contrast, brightness or sharpness by factor.
func (d *Document) Enhance(kind imaging.EnhanceKind, factor float64) error {
	out, err := imaging.Enhance(d.buf, kind, factor)
	if err != nil {
		return invalid("enhance", err)
	}
	d.replace(out)
	return nil
}

// Convert changes the pixel mode.
func (d *Document) Convert(mode imaging.Mode) error {
	out, err := imaging.Convert(d.buf, mode)
	if err != nil {
		return &model.ValidationError{Op: "convert", Reason: "cannot convert " + string(d.buf.Mode) + " to " + string(mode), Err: err}
	}
	d.replace(out)
	return nil
}

// StartCropSelection begins a selection anchored at p.
func (d *Document) StartCropSelection(anchor image.Point) {
	anchor = clampPoint(anchor, d.buf.Bounds())
	d.crop = Selection{State: CropSelecting, Anchor: anchor, Rect: image.Rectangle{Min: anchor, Max: anchor}}
}

// UpdateCropSelection stretches the candidate rectangle from the anchor to p.
// It does nothing unless a selection is in progress.
func (d *Document) UpdateCropSelection(p image.Point) {
	if d.crop.State != CropSelecting {
		return
	}
	p = clampPoint(p, d.buf.Bounds())
	d.crop.Rect = image.Rectangle{Min: d.crop.Anchor, Max: p}.Canon().Intersect(d.buf.Bounds())
}

// CommitCropSelection crops to the selected rectangle and ends the selection.
func (d *Document) CommitCropSelection() error {
	if !d.crop.Valid() {
		return &model.ValidationError{Op: "crop", Reason: "no valid selection"}
	}
	out, err := imaging.Crop(d.buf, d.crop.Rect)
	if err != nil {
		return &model.ValidationError{Op: "crop", Reason: "no valid selection", Err: err}
	}
	d.replace(out)
	return nil
}

// CancelCropSelection abandons the selection without touching the image.
func (d *Document) CancelCropSelection() {
	d.crop = Selection{}
}

// Save writes the buffer to its path. It is a no-op when nothing changed.
func (d *Document) Save() error {
	if !d.dirty {
		return nil
	}
	if d.path == "" {
		return &model.ValidationError{Op: "save", Reason: "document has never been saved; use save as"}
	}
	if err := d.write(d.path, "save"); err != nil {
		return err
	}
	d.dirty = false
	return nil
}

// SaveAs writes the buffer to path and makes it the document's path.
func (d *Document) SaveAs(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return &model.ValidationError{Op: "save as", Reason: "invalid path", Err: err}
	}
	if err := d.write(abs, "save as"); err != nil {
		return err
	}
	d.path = abs
	d.dirty = false
	return nil
}

func (d *Document) write(path, op string) error {
	format, err := imaging.FormatForPath(path)
	if err != nil {
		return &model.ValidationError{Op: op, Reason: "unsupported extension", Err: err}
	}
	if err := imaging.CanWrite(format, d.buf.Mode); err != nil {
		return &model.ValidationError{Op: op, Reason: "convert to RGB or L first", Err: err}
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return &model.ValidationError{Op: op, Reason: "target is a directory"}
	}
	if err := imaging.Encode(path, d.buf, d.opts.Encode); err != nil {
		if op == "save" {
			return &model.IOError{Op: op, Path: path, Err: err}
		}
		return &model.ValidationError{Op: op, Reason: "write failed", Err: err}
	}
	return nil
}

// MoveTo renames the backing file to path.
func (d *Document) MoveTo(path string) error {
	if d.path == "" {
		return &model.ValidationError{Op: "move", Reason: "document has never been saved"}
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return &model.ValidationError{Op: "move", Reason: "invalid path", Err: err}
	}
	if !imaging.IsSupported(abs) {
		return &model.ValidationError{Op: "move", Reason: "unsupported extension", Err: imaging.ErrUnsupportedExtension}
	}
	if abs == d.path {
		return nil
	}
	if err := os.Rename(d.path, abs); err != nil {
		return &model.IOError{Op: "move", Path: d.path, Err: err}
	}
	d.path = abs
	return nil
}

// Remove deletes the backing file. The document itself is left intact so a
// failed delete can be retried.
func (d *Document) Remove() error {
	if d.path == "" {
		return nil
	}
	if err := os.Remove(d.path); err != nil {
		return &model.IOError{Op: "delete", Path: d.path, Err: err}
	}
	return nil
}
