package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gradient returns a w x h RGBA-mode buffer whose pixels are all distinct
// enough to catch misplaced copies.
func gradient(w, h int) *Image {
	pix := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			pix.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 7), G: uint8(y * 11), B: uint8(x + y), A: 0xff})
		}
	}
	return &Image{Pix: pix, Mode: ModeRGB}
}

func TestRotateQuarterTurns(t *testing.T) {
	im := gradient(4, 3)

	r90 := Rotate(im, 90, DefaultInterpolation)
	require.Equal(t, 3, r90.Width())
	require.Equal(t, 4, r90.Height())
	// Counter-clockwise: the top-right source pixel lands top-left.
	assert.Equal(t, im.Pix.NRGBAAt(3, 0), r90.Pix.NRGBAAt(0, 0))
	assert.Equal(t, im.Pix.NRGBAAt(0, 0), r90.Pix.NRGBAAt(0, 3))

	r270 := Rotate(im, -90, DefaultInterpolation)
	assert.Equal(t, im.Pix.NRGBAAt(0, 2), r270.Pix.NRGBAAt(0, 0))

	r180 := Rotate(im, 180, DefaultInterpolation)
	assert.Equal(t, im.Pix.NRGBAAt(3, 2), r180.Pix.NRGBAAt(0, 0))

	assert.True(t, Equal(Rotate(r90, 270, DefaultInterpolation), im))
}

func TestRotateFullTurnIsIdentity(t *testing.T) {
	im := gradient(5, 7)
	for _, deg := range []int{0, 360, -360, 720} {
		assert.True(t, Equal(Rotate(im, deg, DefaultInterpolation), im), "rotate %d", deg)
	}
}

func TestRotateFreeExpandsCanvas(t *testing.T) {
	im := gradient(10, 10)
	out := Rotate(im, 45, InterpBilinear)

	assert.Equal(t, 15, out.Width())
	assert.Equal(t, 15, out.Height())
	assert.Equal(t, ModeRGB, out.Mode)
	// Corners fall outside the rotated square and keep the black background.
	assert.Equal(t, color.NRGBA{A: 0xff}, out.Pix.NRGBAAt(0, 0))

	rgba := &Image{Pix: im.Pix, Mode: ModeRGBA}
	assert.Equal(t, color.NRGBA{}, Rotate(rgba, 45, InterpBilinear).Pix.NRGBAAt(0, 0))
}

func TestRotateDoesNotMutateInput(t *testing.T) {
	im := gradient(3, 2)
	before := im.Clone()
	Rotate(im, 90, DefaultInterpolation)
	Rotate(im, 30, DefaultInterpolation)
	assert.True(t, Equal(im, before))
}

func TestFlip(t *testing.T) {
	im := gradient(4, 3)

	h, err := Flip(im, FlipHorizontal)
	require.NoError(t, err)
	assert.Equal(t, im.Pix.NRGBAAt(3, 1), h.Pix.NRGBAAt(0, 1))

	v, err := Flip(im, FlipVertical)
	require.NoError(t, err)
	assert.Equal(t, im.Pix.NRGBAAt(2, 2), v.Pix.NRGBAAt(2, 0))

	twice, err := Flip(h, FlipHorizontal)
	require.NoError(t, err)
	assert.True(t, Equal(twice, im))

	_, err = Flip(im, Axis("diagonal"))
	assert.ErrorIs(t, err, ErrUnknownAxis)
}

func TestResize(t *testing.T) {
	im := gradient(200, 100)

	half, err := Resize(im, 50, DefaultInterpolation)
	require.NoError(t, err)
	assert.Equal(t, 100, half.Width())
	assert.Equal(t, 50, half.Height())

	same, err := Resize(im, 100, DefaultInterpolation)
	require.NoError(t, err)
	assert.True(t, Equal(same, im))

	tiny, err := Resize(im, 0.01, InterpNearest)
	require.NoError(t, err)
	assert.Equal(t, 1, tiny.Width())
	assert.Equal(t, 1, tiny.Height())

	for _, bad := range []float64{0, -10} {
		_, err := Resize(im, bad, DefaultInterpolation)
		assert.ErrorIs(t, err, ErrInvalidPercent)
	}
}

func TestResizeRejectsOversizedResult(t *testing.T) {
	im := gradient(200, 100)
	for _, huge := range []float64{1e9, 1e300} {
		_, err := Resize(im, huge, DefaultInterpolation)
		assert.ErrorIs(t, err, ErrInvalidPercent)
		assert.ErrorIs(t, err, ErrTooLarge)
	}
}

func TestCheckSize(t *testing.T) {
	assert.NoError(t, CheckSize(1, 1))
	assert.NoError(t, CheckSize(1<<13, 1<<13))
	assert.ErrorIs(t, CheckSize(0, 10), ErrInvalidSize)
	assert.ErrorIs(t, CheckSize(10, -1), ErrInvalidSize)
	assert.ErrorIs(t, CheckSize(1<<20, 1<<20), ErrTooLarge)
	assert.ErrorIs(t, CheckSize(MaxPixels+1, 1), ErrTooLarge)
}

func TestPaletteBufferStaysOnPalette(t *testing.T) {
	src := image.NewPaletted(image.Rect(0, 0, 6, 6), color.Palette{color.Black, color.White})
	for i := range src.Pix {
		src.Pix[i] = uint8(i % 2)
	}
	im := FromImage(src)
	require.Equal(t, ModePalette, im.Mode)

	rotated := Rotate(im, 30, InterpBilinear)
	resized, err := Resize(im, 150, DefaultInterpolation)
	require.NoError(t, err)
	blurred, err := Filter(im, FilterBlur)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "pal.png")
	for _, out := range []*Image{rotated, resized, blurred} {
		assert.Equal(t, ModePalette, out.Mode)
		require.NoError(t, Encode(path, out, EncodeOptions{}))
		got, _, err := Decode(path)
		require.NoError(t, err)
		assert.True(t, Equal(out, got), "written file differs from the buffer")
	}
}

func TestScaledSizeRounds(t *testing.T) {
	w, h := ScaledSize(3, 5, 50)
	assert.Equal(t, 2, w) // 1.5 rounds away from zero
	assert.Equal(t, 3, h) // 2.5 rounds away from zero
}

func TestCrop(t *testing.T) {
	im := gradient(10, 8)

	out, err := Crop(im, image.Rect(2, 3, 6, 8))
	require.NoError(t, err)
	assert.Equal(t, 4, out.Width())
	assert.Equal(t, 5, out.Height())
	assert.Equal(t, image.Point{}, out.Bounds().Min)
	assert.Equal(t, im.Pix.NRGBAAt(2, 3), out.Pix.NRGBAAt(0, 0))

	_, err = Crop(im, image.Rect(2, 2, 2, 5))
	assert.ErrorIs(t, err, ErrInvalidRect)
	_, err = Crop(im, image.Rect(5, 5, 11, 7))
	assert.ErrorIs(t, err, ErrInvalidRect)
}

func TestFilterUniformImage(t *testing.T) {
	c := color.NRGBA{R: 100, G: 150, B: 200, A: 0xff}
	im := New(6, 6, ModeRGB, c)

	// Normalized kernels leave a flat image untouched.
	for _, k := range []FilterKind{FilterBlur, FilterSharpen, FilterDetail, FilterSmooth} {
		out, err := Filter(im, k)
		require.NoError(t, err)
		assert.Equal(t, c, out.Pix.NRGBAAt(3, 3), "filter %s", k)
	}

	// Contour of a flat area is offset-white.
	out, err := Filter(im, FilterContour)
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, out.Pix.NRGBAAt(2, 2))

	_, err = Filter(im, FilterKind("emboss"))
	assert.ErrorIs(t, err, ErrUnknownFilter)
}

func TestFilterPreservesAlpha(t *testing.T) {
	im := New(3, 3, ModeRGBA, color.NRGBA{R: 10, A: 40})
	out, err := Filter(im, FilterBlur)
	require.NoError(t, err)
	assert.Equal(t, uint8(40), out.Pix.NRGBAAt(1, 1).A)
}

func TestEnhance(t *testing.T) {
	im := gradient(8, 8)

	same, err := Enhance(im, EnhanceContrast, 1.0)
	require.NoError(t, err)
	assert.True(t, Equal(same, im))

	black, err := Enhance(im, EnhanceBrightness, 0)
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{A: 0xff}, black.Pix.NRGBAAt(5, 5))

	gray, err := Enhance(im, EnhanceColor, 0)
	require.NoError(t, err)
	p := gray.Pix.NRGBAAt(3, 4)
	assert.Equal(t, p.R, p.G)
	assert.Equal(t, p.G, p.B)

	bright, err := Enhance(New(2, 2, ModeRGB, color.NRGBA{R: 200, G: 200, B: 200, A: 255}), EnhanceBrightness, 2)
	require.NoError(t, err)
	assert.Equal(t, uint8(255), bright.Pix.NRGBAAt(0, 0).R, "results clamp at 255")

	_, err = Enhance(im, EnhanceSharpness, 1.5)
	require.NoError(t, err)

	_, err = Enhance(im, EnhanceKind("saturation"), 1)
	assert.ErrorIs(t, err, ErrUnknownEnhance)
}

func TestConvert(t *testing.T) {
	im := gradient(4, 4)

	gray, err := Convert(im, ModeGray)
	require.NoError(t, err)
	assert.Equal(t, ModeGray, gray.Mode)
	_, ok := gray.Materialize().(*image.Gray)
	assert.True(t, ok)

	rgba, err := Convert(gray, ModeRGBA)
	require.NoError(t, err)
	assert.Equal(t, ModeRGBA, rgba.Mode)

	pal, err := Convert(im, ModePalette)
	require.NoError(t, err)
	assert.Equal(t, ModePalette, pal.Mode)
	assert.NotEmpty(t, pal.Palette)
	_, ok = pal.Materialize().(*image.Paletted)
	assert.True(t, ok)

	_, err = Convert(im, Mode("CMYK"))
	assert.ErrorIs(t, err, ErrUnsupportedMode)

	broken := &Image{Pix: im.Pix, Mode: ModePalette}
	_, err = Convert(broken, ModeRGB)
	assert.ErrorIs(t, err, ErrMissingPalette)
}

func TestConvertRGBDropsAlpha(t *testing.T) {
	im := New(2, 2, ModeRGBA, color.NRGBA{R: 9, G: 8, B: 7, A: 3})
	out, err := Convert(im, ModeRGB)
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 9, G: 8, B: 7, A: 255}, out.Pix.NRGBAAt(1, 1))
}

func TestParsers(t *testing.T) {
	m, err := ParseMode("grayscale")
	require.NoError(t, err)
	assert.Equal(t, ModeGray, m)

	f, err := ParseFilter("Blur")
	require.NoError(t, err)
	assert.Equal(t, FilterBlur, f)

	e, err := ParseEnhance("CONTRAST")
	require.NoError(t, err)
	assert.Equal(t, EnhanceContrast, e)

	a, err := ParseAxis("v")
	require.NoError(t, err)
	assert.Equal(t, FlipVertical, a)

	i, err := ParseInterpolation("")
	require.NoError(t, err)
	assert.Equal(t, DefaultInterpolation, i)

	_, err = ParseInterpolation("lanczos")
	assert.Error(t, err)
}

func TestPNGRoundTripIsLossless(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.png")

	im := gradient(9, 6)
	im.Mode = ModeRGBA
	im.Pix.SetNRGBA(1, 1, color.NRGBA{R: 200, G: 100, B: 50, A: 7})

	require.NoError(t, Encode(path, im, EncodeOptions{}))
	got, format, err := Decode(path)
	require.NoError(t, err)
	assert.Equal(t, FormatPNG, format)
	assert.Equal(t, im.Pix.Pix, got.Pix.Pix)

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "temp file should be renamed away")
}

func TestJPEGRoundTripKeepsDimensions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.jpg")
	im := gradient(33, 17)

	require.NoError(t, Encode(path, im, EncodeOptions{JPEGQuality: 80}))
	got, format, err := Decode(path)
	require.NoError(t, err)
	assert.Equal(t, FormatJPEG, format)
	assert.Equal(t, ModeRGB, got.Mode)
	assert.Equal(t, 33, got.Width())
	assert.Equal(t, 17, got.Height())
}

func TestEncodeRejectsAlphaAsJPEG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.jpg")
	im := New(2, 2, ModeRGBA, color.NRGBA{A: 10})

	err := Encode(path, im, EncodeOptions{})
	assert.ErrorIs(t, err, ErrModeNotWritable)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestDecodeSniffsContent(t *testing.T) {
	dir := t.TempDir()

	// PNG bytes behind a .jpg name still decode as PNG.
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewGray(image.Rect(0, 0, 3, 3))))
	misnamed := filepath.Join(dir, "really-png.jpg")
	require.NoError(t, os.WriteFile(misnamed, buf.Bytes(), 0644))
	got, format, err := Decode(misnamed)
	require.NoError(t, err)
	assert.Equal(t, FormatPNG, format)
	assert.Equal(t, ModeGray, got.Mode)

	text := filepath.Join(dir, "notes.png")
	require.NoError(t, os.WriteFile(text, []byte("hello, not an image"), 0644))
	_, _, err = Decode(text)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestFormatForPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
		ok   bool
	}{
		{"a.png", FormatPNG, true},
		{"a.PNG", FormatPNG, true},
		{"a.jpg", FormatJPEG, true},
		{"a.jpeg", FormatJPEG, true},
		{"a.gif", "", false},
		{"noext", "", false},
	}
	for _, tt := range tests {
		got, err := FormatForPath(tt.path)
		if tt.ok {
			assert.NoError(t, err, tt.path)
			assert.Equal(t, tt.want, got, tt.path)
		} else {
			assert.ErrorIs(t, err, ErrUnsupportedExtension, tt.path)
		}
	}
}
