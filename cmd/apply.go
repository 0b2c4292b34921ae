package cmd

import (
	"github.com/cwel/imgtab/internal/manager"
	"github.com/cwel/imgtab/internal/store"
)

var applyCmd = newEditCommand("apply <path> <recipe>", "Run a recipe against an image", 1,
	func(m *manager.Manager, args []string) error {
		recipe, err := store.LoadRecipe(args[0])
		if err != nil {
			return err
		}
		return m.ApplyRecipe(recipe.Steps)
	})

func init() {
	rootCmd.AddCommand(applyCmd)
}
