package document

import (
	"fmt"

	"github.com/cwel/imgtab/internal/imaging"
	"github.com/cwel/imgtab/internal/model"
)

// Apply runs a recipe. The steps run against a working copy, and the document
// only changes if all of them succeed.
func (d *Document) Apply(steps []model.Step) error {
	if len(steps) == 0 {
		return nil
	}
	work := d.buf
	for i, s := range steps {
		out, err := applyStep(work, s, d.opts)
		if err != nil {
			return &model.ValidationError{Op: "apply", Reason: fmt.Sprintf("step %d (%s)", i+1, s.Op), Err: err}
		}
		work = out
	}
	d.replace(work)
	return nil
}

func applyStep(im *imaging.Image, s model.Step, opts Options) (*imaging.Image, error) {
	switch s.Op {
	case model.OpRotate:
		return imaging.Rotate(im, s.Degrees, opts.Interpolation), nil
	case model.OpFlip:
		axis, err := imaging.ParseAxis(s.Axis)
		if err != nil {
			return nil, err
		}
		return imaging.Flip(im, axis)
	case model.OpResize:
		return imaging.Resize(im, s.Percent, opts.Interpolation)
	case model.OpFilter:
		kind, err := imaging.ParseFilter(s.Kind)
		if err != nil {
			return nil, err
		}
		return imaging.Filter(im, kind)
	case model.OpEnhance:
		kind, err := imaging.ParseEnhance(s.Kind)
		if err != nil {
			return nil, err
		}
		return imaging.Enhance(im, kind, s.Factor)
	case model.OpConvert:
		mode, err := imaging.ParseMode(s.Mode)
		if err != nil {
			return nil, err
		}
		return imaging.Convert(im, mode)
	case model.OpCrop:
		return imaging.Crop(im, s.Rectangle())
	}
	return nil, fmt.Errorf("unknown op: %q", s.Op)
}
