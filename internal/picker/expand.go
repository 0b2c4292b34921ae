package picker

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/cwel/imgtab/internal/config"
	"github.com/cwel/imgtab/internal/imaging"
)

// Expand resolves arguments into paths. Glob patterns (including **) are
// expanded and only supported image files are kept; literal paths pass
// through untouched so that a missing or unsupported file is reported when it
// is opened.
func Expand(args []string) ([]string, error) {
	var paths []string
	seen := make(map[string]bool)
	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			paths = append(paths, p)
		}
	}

	for _, arg := range args {
		arg = config.ExpandPath(arg)
		if !isGlob(arg) {
			add(arg)
			continue
		}
		matches, err := doublestar.FilepathGlob(arg, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("expand %q: %w", arg, err)
		}
		for _, m := range matches {
			if imaging.IsSupported(m) {
				add(m)
			}
		}
	}
	return paths, nil
}

func isGlob(s string) bool {
	return strings.ContainsAny(s, "*?[{")
}
