package imaging

import (
	"fmt"
	"strings"

	xdraw "golang.org/x/image/draw"
)

// Interpolation selects the resampling kernel for resize and free rotation.
type Interpolation string

// Interpolation modes.
const (
	InterpNearest    Interpolation = "nearest"
	InterpBilinear   Interpolation = "bilinear"
	InterpCatmullRom Interpolation = "catmullrom"
)

// DefaultInterpolation is used when none is configured.
const DefaultInterpolation = InterpCatmullRom

// ParseInterpolation accepts an interpolation name case-insensitively.
// The empty string selects DefaultInterpolation.
func ParseInterpolation(s string) (Interpolation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return DefaultInterpolation, nil
	case "nearest":
		return InterpNearest, nil
	case "bilinear":
		return InterpBilinear, nil
	case "catmullrom", "bicubic":
		return InterpCatmullRom, nil
	}
	return "", fmt.Errorf("unknown interpolation: %q (valid: nearest, bilinear, catmullrom)", s)
}

func (i Interpolation) interpolator() xdraw.Interpolator {
	switch i {
	case InterpNearest:
		return xdraw.NearestNeighbor
	case InterpBilinear:
		return xdraw.BiLinear
	default:
		return xdraw.CatmullRom
	}
}
