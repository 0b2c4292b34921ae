package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rmYes bool

var rmCmd = &cobra.Command{
	Use:   "rm <path>",
	Short: "Delete an image file",
	Long:  "Delete an image from disk and drop it from the session. Asks for confirmation unless --yes is given.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		if err := a.selectPath(args[0]); err != nil {
			return err
		}
		path := a.mgr.Selected().Path()
		if err := withConfirmation(a.mgr.DeleteSelected, rmYes); err != nil {
			return err
		}
		fmt.Printf("Deleted %s\n", path)
		return nil
	},
}

func init() {
	rmCmd.Flags().BoolVarP(&rmYes, "yes", "y", false, "Do not ask for confirmation")
	rootCmd.AddCommand(rmCmd)
}
