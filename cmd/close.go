package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var closeCmd = &cobra.Command{
	Use:   "close <path>",
	Short: "Remove an image from the session",
	Long: `Remove an image from the session. The file on disk is not touched.

Edits made through the CLI are saved immediately, so a closed image never
has unsaved changes here.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		if err := a.requireOpen(args[0]); err != nil {
			return err
		}
		name := a.mgr.Selected().Filename()
		if err := a.mgr.CloseSelected(true); err != nil {
			return err
		}
		fmt.Printf("Closed %s\n", name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(closeCmd)
}
