package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cwel/imgtab/internal/model"
	"github.com/cwel/imgtab/internal/picker"
	"github.com/cwel/imgtab/internal/store"
	"github.com/cwel/imgtab/internal/tui"
)

func runTUI(args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.log.Sync()

	if len(args) > 0 {
		paths, err := picker.Expand(args)
		if err != nil {
			return err
		}
		if err := a.mgr.OpenPaths(paths); err != nil {
			warn(err)
		}
	}

	m := tui.New(tui.Options{
		Manager: a.mgr,
		Scanner: picker.NewScanner(a.cfg),
		Recipes: loadRecipeSteps,
		Logger:  a.log,
	})
	p := tea.NewProgram(m, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("run TUI: %w", err)
	}

	// Quitting through the TUI already persisted; an interrupted program did not.
	if result, ok := finalModel.(tui.Model); !ok || !result.Quitting() {
		return a.mgr.Persist()
	}
	return nil
}

func loadRecipeSteps(name string) ([]model.Step, error) {
	recipe, err := store.LoadRecipe(name)
	if err != nil {
		return nil, err
	}
	return recipe.Steps, nil
}
