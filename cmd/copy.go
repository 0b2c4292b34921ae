package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var copyCmd = &cobra.Command{
	Use:   "copy <name|dir|path> <image>",
	Short: "Copy an image's file name, directory or full path to the clipboard",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		if err := a.selectPath(args[1]); err != nil {
			return err
		}

		switch args[0] {
		case "name":
			err = a.mgr.CopyFilename()
		case "dir":
			err = a.mgr.CopyDirectory()
		case "path":
			err = a.mgr.CopyFullPath()
		default:
			return fmt.Errorf("invalid copy target: %q (valid: name, dir, path)", args[0])
		}
		if err != nil {
			return err
		}
		fmt.Printf("Copied %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(copyCmd)
}
