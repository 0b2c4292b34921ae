package imaging

import "errors"

var (
	ErrUnsupportedFormat    = errors.New("unsupported image format")
	ErrUnsupportedExtension = errors.New("unsupported file extension")
	ErrUnsupportedMode      = errors.New("unsupported pixel mode")
	ErrModeNotWritable      = errors.New("pixel mode cannot be written in this format")
	ErrMissingPalette       = errors.New("palette image has no palette table")
	ErrInvalidPercent       = errors.New("resize percent must be a positive number")
	ErrInvalidSize          = errors.New("width and height must be positive")
	ErrTooLarge             = errors.New("image dimensions exceed the pixel limit")
	ErrInvalidFactor        = errors.New("enhance factor must be a finite number")
	ErrInvalidRect          = errors.New("crop rectangle is empty or outside the image")
	ErrUnknownFilter        = errors.New("unknown filter")
	ErrUnknownEnhance       = errors.New("unknown enhancement")
	ErrUnknownAxis          = errors.New("unknown flip axis")
)
