package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/cwel/imgtab/internal/config"
)

// RecipeDirs returns the recipe search order: user recipes, then the data
// dir where bundled recipes are installed.
func RecipeDirs() []string {
	return []string{
		filepath.Join(config.ConfigDir(), "recipes"),
		filepath.Join(config.DataDir(), "recipes"),
	}
}

// LoadRecipe loads a recipe by name, searching user recipes first, then bundled.
func LoadRecipe(name string) (*config.Recipe, error) {
	for _, dir := range RecipeDirs() {
		path := filepath.Join(dir, name+".yaml")
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("read recipe %s: %w", path, err)
		}

		recipe, err := config.ParseRecipe(data)
		if err != nil {
			return nil, fmt.Errorf("parse recipe %s: %w", path, err)
		}

		if err := recipe.Validate(); err != nil {
			return nil, fmt.Errorf("validate recipe %s: %w", path, err)
		}

		return recipe, nil
	}

	return nil, fmt.Errorf("recipe not found: %s", name)
}

// ListRecipes returns available recipe names, sorted.
func ListRecipes() ([]string, error) {
	seen := make(map[string]bool)
	var recipes []string

	for _, dir := range RecipeDirs() {
		entries, err := os.ReadDir(dir)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}

		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			name := entry.Name()
			if filepath.Ext(name) != ".yaml" {
				continue
			}
			baseName := name[:len(name)-5] // remove .yaml
			if !seen[baseName] {
				seen[baseName] = true
				recipes = append(recipes, baseName)
			}
		}
	}

	sort.Strings(recipes)
	return recipes, nil
}

// InstallBundledRecipes writes BundledRecipes into the data dir. Existing
// files are left alone unless overwrite is set. It returns the names written.
func InstallBundledRecipes(overwrite bool) ([]string, error) {
	dir := filepath.Join(config.DataDir(), "recipes")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create recipes dir: %w", err)
	}

	names := make([]string, 0, len(BundledRecipes))
	for name := range BundledRecipes {
		names = append(names, name)
	}
	sort.Strings(names)

	var written []string
	for _, name := range names {
		path := filepath.Join(dir, name+".yaml")
		if !overwrite {
			if _, err := os.Stat(path); err == nil {
				continue
			}
		}
		if err := os.WriteFile(path, []byte(BundledRecipes[name]), 0644); err != nil {
			return written, fmt.Errorf("write recipe %s: %w", name, err)
		}
		written = append(written, name)
	}
	return written, nil
}
