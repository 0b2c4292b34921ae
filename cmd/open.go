package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwel/imgtab/internal/picker"
)

var openRecent int

var openCmd = &cobra.Command{
	Use:   "open <path|glob>...",
	Short: "Add images to the session",
	Long: `Add images to the session. Globs are expanded (** included) and only
.png, .jpg and .jpeg matches are kept. Images already open stay as they are.

With --recent N, reopen the N-th entry of "imgtab ls --recent" instead.`,
	Example: `  imgtab open shots/*.png
  imgtab open --recent 1`,
	Args: func(cmd *cobra.Command, args []string) error {
		if openRecent != 0 && len(args) > 0 {
			return errors.New("--recent takes no path arguments")
		}
		if openRecent == 0 && len(args) == 0 {
			return errors.New("requires at least 1 path, or --recent")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if openRecent != 0 {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()
			if err := a.mgr.OpenRecent(openRecent); err != nil {
				return err
			}
			fmt.Printf("Opened %s\n", a.mgr.Selected().Path())
			return nil
		}

		paths, err := picker.Expand(args)
		if err != nil {
			return err
		}
		if len(paths) == 0 {
			fmt.Println("No images matched")
			return nil
		}

		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		before := len(a.mgr.Documents())
		openErr := a.mgr.OpenPaths(paths)
		if added := len(a.mgr.Documents()) - before; added > 0 {
			fmt.Printf("Opened %d image(s)\n", added)
		}
		return openErr
	},
}

func init() {
	openCmd.Flags().IntVarP(&openRecent, "recent", "r", 0, "Reopen the N-th most recent image (1 = latest)")
	_ = openCmd.RegisterFlagCompletionFunc("recent", completeRecentIndex)
	rootCmd.AddCommand(openCmd)
}
