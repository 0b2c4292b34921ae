package store

// BundledRecipes contains default recipes.
var BundledRecipes = map[string]string{
	"thumbnail": `name: thumbnail
description: Half size, sharpened

steps:
  - op: resize
    percent: 50
  - op: filter
    kind: sharpen
`,
	"grayscale": `name: grayscale
description: Convert to grayscale with a contrast boost

steps:
  - op: convert
    mode: L
  - op: enhance
    kind: contrast
    factor: 1.2
`,
	"web": `name: web
description: Quarter size RGB, ready to save as JPEG

steps:
  - op: convert
    mode: RGB
  - op: resize
    percent: 25
  - op: enhance
    kind: sharpness
    factor: 1.5
`,
}
