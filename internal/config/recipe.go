package config

import (
	"fmt"
	"math"

	"gopkg.in/yaml.v3"

	"github.com/cwel/imgtab/internal/imaging"
	"github.com/cwel/imgtab/internal/model"
)

// Recipe is a named sequence of transformations.
type Recipe struct {
	Name        string       `yaml:"name"`
	Description string       `yaml:"description"`
	Steps       []model.Step `yaml:"steps"`
}

// ParseRecipe parses a YAML recipe definition.
func ParseRecipe(data []byte) (*Recipe, error) {
	var r Recipe
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parse recipe: %w", err)
	}
	return &r, nil
}

// ValidateStep checks that a step names a known op and carries usable
// parameters. Geometry-dependent checks (crop bounds) happen when applied.
func ValidateStep(s model.Step) error {
	switch s.Op {
	case model.OpRotate:
		return nil
	case model.OpFlip:
		_, err := imaging.ParseAxis(s.Axis)
		return err
	case model.OpResize:
		if s.Percent <= 0 || math.IsInf(s.Percent, 0) || math.IsNaN(s.Percent) {
			return fmt.Errorf("percent must be positive (got %v)", s.Percent)
		}
		return nil
	case model.OpFilter:
		_, err := imaging.ParseFilter(s.Kind)
		return err
	case model.OpEnhance:
		if _, err := imaging.ParseEnhance(s.Kind); err != nil {
			return err
		}
		if math.IsInf(s.Factor, 0) || math.IsNaN(s.Factor) {
			return fmt.Errorf("factor must be finite")
		}
		return nil
	case model.OpConvert:
		_, err := imaging.ParseMode(s.Mode)
		return err
	case model.OpCrop:
		if len(s.Rect) != 4 {
			return fmt.Errorf("rect needs 4 values: x0, y0, x1, y1")
		}
		if s.Rectangle().Empty() {
			return fmt.Errorf("rect is empty")
		}
		return nil
	case "":
		return fmt.Errorf("op required")
	default:
		return fmt.Errorf("invalid op: %q (valid: rotate, flip, resize, filter, enhance, convert, crop)", s.Op)
	}
}

// Validate checks the entire recipe.
func (r *Recipe) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("recipe name required")
	}
	if len(r.Steps) == 0 {
		return fmt.Errorf("at least one step required")
	}
	for i, s := range r.Steps {
		if err := ValidateStep(s); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
	}
	return nil
}
