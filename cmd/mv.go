package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var mvCmd = &cobra.Command{
	Use:   "mv <src> <dst>",
	Short: "Move an image file",
	Long:  "Rename an image on disk and update the session. The destination must end in .png, .jpg or .jpeg.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		if err := a.selectPath(args[0]); err != nil {
			return err
		}
		if err := a.mgr.MoveSelected(args[1]); err != nil {
			return err
		}
		fmt.Printf("Moved to %s\n", a.mgr.Selected().Path())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mvCmd)
}
