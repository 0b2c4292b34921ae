package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "imgtab [path|glob]...",
	Short: "Tabbed image editor for the terminal",
	Long:  "imgtab keeps a session of open images, edits them and remembers what you were working on.",
	Example: `imgtab ~/Pictures/*.png
imgtab rotate photo.jpg 90
imgtab resize photo.jpg 50 -o thumb.jpg
imgtab apply photo.png thumbnail`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(args)
	},
}

func init() {
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
	rootCmd.SetHelpFunc(styledHelp)
	rootCmd.SetHelpCommand(&cobra.Command{
		Use:    "help",
		Short:  "Print this help message",
		Hidden: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			styledHelp(rootCmd, nil)
			return nil
		},
	})
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
