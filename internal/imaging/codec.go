package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// Format is an on-disk raster format.
type Format string

// Supported formats.
const (
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
)

// DefaultJPEGQuality is used when EncodeOptions leaves the quality unset.
const DefaultJPEGQuality = 90

// SupportedExtensions lists the file extensions that can be opened and saved.
var SupportedExtensions = []string{".jpeg", ".jpg", ".png"}

var extFormats = map[string]Format{
	".png":  FormatPNG,
	".jpg":  FormatJPEG,
	".jpeg": FormatJPEG,
}

var mimeFormats = map[string]Format{
	"image/png":  FormatPNG,
	"image/jpeg": FormatJPEG,
}

// FormatForPath picks the format from the file extension.
func FormatForPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	f, ok := extFormats[ext]
	if !ok {
		return "", fmt.Errorf("%w: %q (supported: %s)", ErrUnsupportedExtension, ext, strings.Join(SupportedExtensions, ", "))
	}
	return f, nil
}

// IsSupported reports whether path has a supported extension.
func IsSupported(path string) bool {
	_, err := FormatForPath(path)
	return err == nil
}

// CanWrite reports whether a buffer in mode m can be stored as format f.
// JPEG carries neither alpha nor a palette.
func CanWrite(f Format, m Mode) error {
	if f == FormatJPEG && m != ModeGray && m != ModeRGB {
		return fmt.Errorf("%w: cannot write mode %s as JPEG", ErrModeNotWritable, m)
	}
	return nil
}

// Decode reads and decodes the image at path. The content is sniffed, so a
// PNG named .jpg still opens; anything that is not PNG or JPEG is rejected.
func Decode(path string) (*Image, Format, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", err
	}
	return DecodeBytes(data)
}

// DecodeBytes decodes an in-memory PNG or JPEG.
func DecodeBytes(data []byte) (*Image, Format, error) {
	mt := mimetype.Detect(data)
	format, ok := mimeFormats[mt.String()]
	if !ok {
		return nil, "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, mt.String())
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("decode %s: %w", format, err)
	}
	return FromImage(img), format, nil
}

// EncodeOptions controls encoding.
type EncodeOptions struct {
	JPEGQuality int
}

func (o EncodeOptions) jpegQuality() int {
	if o.JPEGQuality < 1 || o.JPEGQuality > 100 {
		return DefaultJPEGQuality
	}
	return o.JPEGQuality
}

// EncodeTo writes im to w in the given format.
func EncodeTo(w io.Writer, im *Image, f Format, opts EncodeOptions) error {
	if err := CanWrite(f, im.Mode); err != nil {
		return err
	}
	switch f {
	case FormatPNG:
		return png.Encode(w, im.Materialize())
	case FormatJPEG:
		return jpeg.Encode(w, im.Materialize(), &jpeg.Options{Quality: opts.jpegQuality()})
	}
	return fmt.Errorf("%w: %s", ErrUnsupportedFormat, f)
}

// Encode writes im to path, choosing the format from the extension. The file
// is written to a temp sibling and renamed into place, so a failed encode
// never leaves a truncated file behind.
func Encode(path string, im *Image, opts EncodeOptions) error {
	f, err := FormatForPath(path)
	if err != nil {
		return err
	}
	if err := CanWrite(f, im.Mode); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := EncodeTo(&buf, im, f, opts); err != nil {
		return fmt.Errorf("encode %s: %w", f, err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename image file: %w", err)
	}
	return nil
}
