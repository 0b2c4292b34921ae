package config

import (
	"testing"

	"github.com/cwel/imgtab/internal/model"
)

func TestParseRecipe(t *testing.T) {
	yaml := `
name: thumbnail
description: Half size, sharpened

steps:
  - op: resize
    percent: 50
  - op: filter
    kind: sharpen
  - op: crop
    rect: [0, 0, 64, 64]
`

	recipe, err := ParseRecipe([]byte(yaml))
	if err != nil {
		t.Fatalf("ParseRecipe() error = %v", err)
	}

	if recipe.Name != "thumbnail" {
		t.Errorf("Name = %q, want %q", recipe.Name, "thumbnail")
	}
	if len(recipe.Steps) != 3 {
		t.Fatalf("len(Steps) = %d, want 3", len(recipe.Steps))
	}
	if recipe.Steps[0].Percent != 50 {
		t.Errorf("Steps[0].Percent = %v, want 50", recipe.Steps[0].Percent)
	}
	if recipe.Steps[1].Kind != "sharpen" {
		t.Errorf("Steps[1].Kind = %q, want sharpen", recipe.Steps[1].Kind)
	}
	if got := recipe.Steps[2].Rectangle().Dx(); got != 64 {
		t.Errorf("crop width = %d, want 64", got)
	}
	if err := recipe.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestParseRecipeInvalidYAML(t *testing.T) {
	if _, err := ParseRecipe([]byte("steps: [")); err == nil {
		t.Error("expected parse error")
	}
}

func TestValidateStep(t *testing.T) {
	tests := []struct {
		name    string
		step    model.Step
		wantErr bool
	}{
		{"rotate", model.Step{Op: "rotate", Degrees: 45}, false},
		{"flip", model.Step{Op: "flip", Axis: "h"}, false},
		{"flip bad axis", model.Step{Op: "flip", Axis: "z"}, true},
		{"resize", model.Step{Op: "resize", Percent: 25}, false},
		{"resize zero", model.Step{Op: "resize"}, true},
		{"filter", model.Step{Op: "filter", Kind: "contour"}, false},
		{"filter unknown", model.Step{Op: "filter", Kind: "emboss"}, true},
		{"enhance", model.Step{Op: "enhance", Kind: "color", Factor: 0}, false},
		{"enhance unknown", model.Step{Op: "enhance", Kind: "hue", Factor: 1}, true},
		{"convert", model.Step{Op: "convert", Mode: "L"}, false},
		{"convert unknown", model.Step{Op: "convert", Mode: "CMYK"}, true},
		{"crop", model.Step{Op: "crop", Rect: []int{0, 0, 2, 2}}, false},
		{"crop short", model.Step{Op: "crop", Rect: []int{0, 0, 2}}, true},
		{"crop empty", model.Step{Op: "crop", Rect: []int{3, 3, 3, 9}}, true},
		{"missing op", model.Step{}, true},
		{"unknown op", model.Step{Op: "posterize"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStep(tt.step)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateStep() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRecipeValidate(t *testing.T) {
	tests := []struct {
		name    string
		recipe  Recipe
		wantErr bool
	}{
		{"valid", Recipe{Name: "gray", Steps: []model.Step{{Op: "convert", Mode: "L"}}}, false},
		{"no name", Recipe{Steps: []model.Step{{Op: "convert", Mode: "L"}}}, true},
		{"no steps", Recipe{Name: "empty"}, true},
		{"bad step", Recipe{Name: "bad", Steps: []model.Step{{Op: "resize", Percent: -1}}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.recipe.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
