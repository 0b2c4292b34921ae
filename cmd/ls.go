package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var lsRecent bool

var lsCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"l", "list"},
	Short:   "List open images",
	Long:    "List the images in the session. Use --recent for the recently viewed list.",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		if lsRecent {
			recent := a.mgr.Recent()
			// Most recent first, numbered for open --recent
			for i := len(recent) - 1; i >= 0; i-- {
				fmt.Printf("%2d  %s\n", len(recent)-i, recent[i])
			}
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "IMAGE\tSIZE\tMODE\tPATH")
		for _, d := range a.mgr.Documents() {
			img := d.Image()
			fmt.Fprintf(w, "%s\t%dx%d\t%s\t%s\n", d.Filename(), img.Width(), img.Height(), img.Mode, d.Path())
		}
		return w.Flush()
	},
}

func init() {
	lsCmd.Flags().BoolVarP(&lsRecent, "recent", "r", false, "Show recently viewed images instead")
	rootCmd.AddCommand(lsCmd)
}
