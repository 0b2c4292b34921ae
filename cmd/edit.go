package cmd

import (
	"fmt"
	"image"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cwel/imgtab/internal/imaging"
	"github.com/cwel/imgtab/internal/manager"
)

// editFunc applies one edit to the selected document. args excludes the
// leading path.
type editFunc func(m *manager.Manager, args []string) error

// newEditCommand builds a command of the form "<name> <path> <args...>" that
// opens path, applies edit and saves, either in place or to --output.
func newEditCommand(use, short string, nargs int, edit editFunc, validArgs ...string) *cobra.Command {
	var output string
	c := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(nargs + 1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) == 0 {
				return completeImageFiles(cmd, args, toComplete)
			}
			if len(args) == 1 && len(validArgs) > 0 {
				return validArgs, cobra.ShellCompDirectiveNoFileComp
			}
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			if err := a.selectPath(args[0]); err != nil {
				return err
			}
			if err := edit(a.mgr, args[1:]); err != nil {
				return err
			}
			if output != "" {
				if err := a.mgr.SaveSelectedAs(output); err != nil {
					return err
				}
			} else if err := a.mgr.SaveSelected(); err != nil {
				return err
			}

			d := a.mgr.Selected()
			img := d.Image()
			fmt.Printf("%s: %dx%d %s\n", d.Path(), img.Width(), img.Height(), img.Mode)
			return nil
		},
	}
	c.Flags().StringVarP(&output, "output", "o", "", "Save to this path instead of overwriting")
	return c
}

func parseInts(args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, s := range args {
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("invalid integer: %q", s)
		}
		out[i] = v
	}
	return out, nil
}

func parseFloat(name, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", name, s)
	}
	return v, nil
}

var rotateCmd = newEditCommand("rotate <path> <degrees>", "Rotate counter-clockwise", 1,
	func(m *manager.Manager, args []string) error {
		deg, err := parseInts(args)
		if err != nil {
			return err
		}
		return m.Rotate(deg[0])
	}, "90", "180", "270")

var flipCmd = newEditCommand("flip <path> <h|v>", "Mirror horizontally or vertically", 1,
	func(m *manager.Manager, args []string) error {
		axis, err := imaging.ParseAxis(args[0])
		if err != nil {
			return err
		}
		return m.Flip(axis)
	}, "h", "v")

var resizeCmd = newEditCommand("resize <path> <percent>", "Scale by a percentage", 1,
	func(m *manager.Manager, args []string) error {
		pct, err := parseFloat("percent", args[0])
		if err != nil {
			return err
		}
		return m.Resize(pct)
	})

var filterCmd = newEditCommand("filter <path> <kind>", "Apply blur, sharpen, contour, detail or smooth", 1,
	func(m *manager.Manager, args []string) error {
		kind, err := imaging.ParseFilter(args[0])
		if err != nil {
			return err
		}
		return m.ApplyFilter(kind)
	}, "blur", "sharpen", "contour", "detail", "smooth")

var enhanceCmd = newEditCommand("enhance <path> <kind> <factor>", "Adjust color, contrast, brightness or sharpness", 2,
	func(m *manager.Manager, args []string) error {
		kind, err := imaging.ParseEnhance(args[0])
		if err != nil {
			return err
		}
		factor, err := parseFloat("factor", args[1])
		if err != nil {
			return err
		}
		return m.Enhance(kind, factor)
	}, "color", "contrast", "brightness", "sharpness")

var convertCmd = newEditCommand("convert <path> <L|RGB|RGBA|P>", "Change color mode", 1,
	func(m *manager.Manager, args []string) error {
		mode, err := imaging.ParseMode(args[0])
		if err != nil {
			return err
		}
		return m.Convert(mode)
	}, "L", "RGB", "RGBA", "P")

var cropCmd = newEditCommand("crop <path> <x0> <y0> <x1> <y1>", "Crop to a rectangle", 4,
	func(m *manager.Manager, args []string) error {
		v, err := parseInts(args)
		if err != nil {
			return err
		}
		m.StartCropSelection(image.Pt(v[0], v[1]))
		m.UpdateCropSelection(image.Pt(v[2], v[3]))
		return m.CommitCropSelection()
	})

func init() {
	rootCmd.AddCommand(rotateCmd, flipCmd, resizeCmd, filterCmd, enhanceCmd, convertCmd, cropCmd)
}
