package tui

import (
	"fmt"
	"image"
	"strconv"
	"strings"

	"github.com/cwel/imgtab/internal/imaging"
	"github.com/cwel/imgtab/internal/picker"
)

// commandUsage lists the prompt commands, shown in help.
var commandUsage = []string{
	"rotate <deg>", "flip <h|v>", "resize <percent>", "filter <kind>",
	"enhance <kind> <factor>", "convert <L|RGB|RGBA|P>",
	"crop start <x> <y>", "crop to <x> <y>", "crop commit", "crop cancel",
	"save", "saveas <path>", "mv <path>", "open <path|glob>...", "recent <n>",
	"copy <name|dir|path>", "recipe <name>", "new <w> <h>",
}

// runCommand executes one prompt line and returns a status message.
func (m Model) runCommand(line string) (string, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	name, args := fields[0], fields[1:]

	switch name {
	case "rotate":
		if err := wantArgs(name, args, 1); err != nil {
			return "", err
		}
		deg, err := strconv.Atoi(args[0])
		if err != nil {
			return "", fmt.Errorf("rotate: invalid degrees: %q", args[0])
		}
		return fmt.Sprintf("rotated %d°", deg), m.mgr.Rotate(deg)

	case "flip":
		if err := wantArgs(name, args, 1); err != nil {
			return "", err
		}
		axis, err := imaging.ParseAxis(args[0])
		if err != nil {
			return "", err
		}
		return "flipped " + string(axis), m.mgr.Flip(axis)

	case "resize":
		if err := wantArgs(name, args, 1); err != nil {
			return "", err
		}
		pct, err := strconv.ParseFloat(strings.TrimSuffix(args[0], "%"), 64)
		if err != nil {
			return "", fmt.Errorf("resize: invalid percent: %q", args[0])
		}
		return fmt.Sprintf("resized to %g%%", pct), m.mgr.Resize(pct)

	case "filter":
		if err := wantArgs(name, args, 1); err != nil {
			return "", err
		}
		kind, err := imaging.ParseFilter(args[0])
		if err != nil {
			return "", err
		}
		return "applied " + string(kind), m.mgr.ApplyFilter(kind)

	case "enhance":
		if err := wantArgs(name, args, 2); err != nil {
			return "", err
		}
		kind, err := imaging.ParseEnhance(args[0])
		if err != nil {
			return "", err
		}
		factor, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return "", fmt.Errorf("enhance: invalid factor: %q", args[1])
		}
		return fmt.Sprintf("enhanced %s ×%g", kind, factor), m.mgr.Enhance(kind, factor)

	case "convert":
		if err := wantArgs(name, args, 1); err != nil {
			return "", err
		}
		mode, err := imaging.ParseMode(args[0])
		if err != nil {
			return "", err
		}
		return "converted to " + string(mode), m.mgr.Convert(mode)

	case "crop":
		return m.runCrop(args)

	case "save":
		return "saved", m.mgr.SaveSelected()

	case "saveas":
		if err := wantArgs(name, args, 1); err != nil {
			return "", err
		}
		return "saved as " + args[0], m.mgr.SaveSelectedAs(args[0])

	case "mv":
		if err := wantArgs(name, args, 1); err != nil {
			return "", err
		}
		return "moved to " + args[0], m.mgr.MoveSelected(args[0])

	case "open":
		if len(args) == 0 {
			return "", fmt.Errorf("open: path required")
		}
		paths, err := picker.Expand(args)
		if err != nil {
			return "", err
		}
		if len(paths) == 0 {
			return "nothing matched", nil
		}
		return fmt.Sprintf("opened %d file(s)", len(paths)), m.mgr.OpenPaths(paths)

	case "recent":
		if err := wantArgs(name, args, 1); err != nil {
			return "", err
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return "", fmt.Errorf("recent: invalid entry: %q", args[0])
		}
		return fmt.Sprintf("reopened recent #%d", n), m.mgr.OpenRecent(n)

	case "copy":
		if err := wantArgs(name, args, 1); err != nil {
			return "", err
		}
		switch args[0] {
		case "name":
			return "copied file name", m.mgr.CopyFilename()
		case "dir":
			return "copied directory", m.mgr.CopyDirectory()
		case "path":
			return "copied full path", m.mgr.CopyFullPath()
		}
		return "", fmt.Errorf("copy: want name, dir or path (got %q)", args[0])

	case "recipe":
		if err := wantArgs(name, args, 1); err != nil {
			return "", err
		}
		if m.recipes == nil {
			return "", fmt.Errorf("recipe: no recipe store configured")
		}
		steps, err := m.recipes(args[0])
		if err != nil {
			return "", err
		}
		return "applied recipe " + args[0], m.mgr.ApplyRecipe(steps)

	case "new":
		if err := wantArgs(name, args, 2); err != nil {
			return "", err
		}
		w, errW := strconv.Atoi(args[0])
		h, errH := strconv.Atoi(args[1])
		if errW != nil || errH != nil {
			return "", fmt.Errorf("new: invalid size %q x %q", args[0], args[1])
		}
		return fmt.Sprintf("new %dx%d image", w, h), m.mgr.NewDocument(w, h)
	}

	return "", fmt.Errorf("unknown command: %q", name)
}

func (m Model) runCrop(args []string) (string, error) {
	if len(args) == 0 {
		return "", fmt.Errorf("crop: want start, to, commit or cancel")
	}
	switch args[0] {
	case "start", "to":
		if len(args) != 3 {
			return "", fmt.Errorf("crop %s: want <x> <y>", args[0])
		}
		x, errX := strconv.Atoi(args[1])
		y, errY := strconv.Atoi(args[2])
		if errX != nil || errY != nil {
			return "", fmt.Errorf("crop %s: invalid point %q %q", args[0], args[1], args[2])
		}
		if args[0] == "start" {
			m.mgr.StartCropSelection(image.Pt(x, y))
			return fmt.Sprintf("crop anchored at %d,%d", x, y), nil
		}
		m.mgr.UpdateCropSelection(image.Pt(x, y))
		return "crop selection updated", nil
	case "commit":
		return "cropped", m.mgr.CommitCropSelection()
	case "cancel":
		m.mgr.CancelCropSelection()
		return "crop cancelled", nil
	}
	return "", fmt.Errorf("crop: unknown action %q", args[0])
}

func wantArgs(name string, args []string, n int) error {
	if len(args) != n {
		return fmt.Errorf("%s: want %d argument(s), got %d", name, n, len(args))
	}
	return nil
}
