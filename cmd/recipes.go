package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/cwel/imgtab/internal/store"
)

var recipesForce bool

var recipesCmd = &cobra.Command{
	Use:   "recipes",
	Short: "Manage edit recipes",
	RunE: func(cmd *cobra.Command, args []string) error {
		return recipesListCmd.RunE(cmd, args)
	},
}

var recipesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available recipes",
	RunE: func(cmd *cobra.Command, args []string) error {
		names, err := store.ListRecipes()
		if err != nil {
			return err
		}
		if len(names) == 0 {
			fmt.Println("No recipes. Run 'imgtab recipes init' to install the bundled ones.")
			return nil
		}
		for _, name := range names {
			recipe, err := store.LoadRecipe(name)
			if err != nil {
				fmt.Printf("%s\t(invalid: %v)\n", name, err)
				continue
			}
			fmt.Printf("%s\t%s\n", name, recipe.Description)
		}
		return nil
	},
}

var recipesShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print a recipe",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		recipe, err := store.LoadRecipe(args[0])
		if err != nil {
			return err
		}
		data, err := yaml.Marshal(recipe)
		if err != nil {
			return fmt.Errorf("marshal recipe: %w", err)
		}
		fmt.Print(string(data))
		return nil
	},
}

var recipesInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Install the bundled recipes",
	RunE: func(cmd *cobra.Command, args []string) error {
		written, err := store.InstallBundledRecipes(recipesForce)
		if err != nil {
			return err
		}
		if len(written) == 0 {
			fmt.Println("Bundled recipes already installed (use --force to overwrite)")
			return nil
		}
		for _, name := range written {
			fmt.Printf("Installed %s\n", name)
		}
		return nil
	},
}

func init() {
	recipesInitCmd.Flags().BoolVarP(&recipesForce, "force", "f", false, "Overwrite existing bundled recipes")
	recipesCmd.AddCommand(recipesListCmd)
	recipesCmd.AddCommand(recipesShowCmd)
	recipesCmd.AddCommand(recipesInitCmd)
	rootCmd.AddCommand(recipesCmd)
}
