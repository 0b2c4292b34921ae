package cmd

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cwel/imgtab/internal/imaging"
	"github.com/cwel/imgtab/internal/store"
)

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion script for imgtab.

Image arguments complete to .png/.jpg/.jpeg files, or to the images already
in the session for commands that act on it (close, rm, copy, mv). Recipe
names and the --recent entries complete as well.

For zsh, add this to your .zshrc:
  eval "$(imgtab completion zsh)"
`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		switch args[0] {
		case "zsh":
			var buf bytes.Buffer
			if err := rootCmd.GenZshCompletion(&buf); err != nil {
				return err
			}
			// The #compdef header is enough when the script lives in fpath
			for _, line := range strings.Split(buf.String(), "\n") {
				if line == "compdef _imgtab imgtab" {
					continue
				}
				fmt.Fprintln(out, line)
			}
			return nil
		case "bash":
			return rootCmd.GenBashCompletionV2(out, true)
		case "fish":
			return rootCmd.GenFishCompletion(out, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletionWithDesc(out)
		}
		return fmt.Errorf("unsupported shell %q", args[0])
	},
}

// imageExtensions is SupportedExtensions without the leading dots, the form
// ShellCompDirectiveFilterFileExt expects.
func imageExtensions() []string {
	exts := make([]string, len(imaging.SupportedExtensions))
	for i, e := range imaging.SupportedExtensions {
		exts[i] = strings.TrimPrefix(e, ".")
	}
	return exts
}

func completeImageFiles(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return imageExtensions(), cobra.ShellCompDirectiveFilterFileExt
}

// completeSessionImages offers the paths of the images in the stored session.
func completeSessionImages(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	rec, err := store.DefaultStore().LoadRecord()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	var paths []string
	for _, p := range rec.OpenedImages {
		if strings.HasPrefix(p, toComplete) {
			paths = append(paths, p)
		}
	}
	return paths, cobra.ShellCompDirectiveNoFileComp
}

func completeRecipes(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	names, err := store.ListRecipes()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

// completeRecentIndex offers "1", "2", ... described by the path they reopen.
func completeRecentIndex(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	rec, err := store.DefaultStore().LoadRecord()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	recent := rec.LastViewedImages
	out := make([]string, 0, len(recent))
	for i := len(recent) - 1; i >= 0; i-- {
		out = append(out, fmt.Sprintf("%d\t%s", len(recent)-i, recent[i]))
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}

type completeFunc = func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective)

func fixed(values ...string) completeFunc {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return values, cobra.ShellCompDirectiveNoFileComp
	}
}

// positional completes the i-th argument with fns[i] and nothing after.
func positional(fns ...completeFunc) completeFunc {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) >= len(fns) || fns[len(args)] == nil {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return fns[len(args)](cmd, args, toComplete)
	}
}

func init() {
	rootCmd.ValidArgsFunction = completeImageFiles
	openCmd.ValidArgsFunction = completeImageFiles
	closeCmd.ValidArgsFunction = positional(completeSessionImages)
	rmCmd.ValidArgsFunction = positional(completeSessionImages)
	mvCmd.ValidArgsFunction = positional(completeSessionImages, completeImageFiles)
	copyCmd.ValidArgsFunction = positional(fixed("name", "dir", "path"), completeSessionImages)
	applyCmd.ValidArgsFunction = positional(completeImageFiles, completeRecipes)
	recipesShowCmd.ValidArgsFunction = positional(completeRecipes)

	rootCmd.AddCommand(completionCmd)
}
