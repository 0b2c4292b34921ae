// Package picker turns command-line arguments and configured directories
// into image paths to open.
package picker

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/cwel/imgtab/internal/config"
	"github.com/cwel/imgtab/internal/imaging"
)

// Entry is a discovered image file.
type Entry struct {
	Name string // path relative to the root it was found under
	Path string // absolute path
}

// Scanner discovers images under configured directories.
type Scanner struct {
	dirs     []string
	maxDepth int
	ignore   []string
}

// NewScanner creates a scanner from config.
func NewScanner(cfg *config.Config) *Scanner {
	return &Scanner{
		dirs:     cfg.BrowserRoots(),
		maxDepth: cfg.Browser.MaxDepth,
		ignore:   cfg.Browser.Ignore,
	}
}

// Scan finds all supported images in the configured directories.
func (s *Scanner) Scan() []Entry {
	seen := make(map[string]bool)
	var entries []Entry

	for _, dir := range s.dirs {
		abs, err := filepath.Abs(dir)
		if err != nil {
			continue
		}
		s.scanDir(abs, abs, 0, &entries, seen)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})

	return entries
}

// isIgnored checks if a path matches any ignore pattern, either in full or by
// base name.
func (s *Scanner) isIgnored(path string) bool {
	name := filepath.Base(path)
	for _, pattern := range s.ignore {
		expanded := config.ExpandPath(pattern)
		if matched, _ := doublestar.PathMatch(expanded, path); matched {
			return true
		}
		if matched, _ := doublestar.Match(pattern, name); matched {
			return true
		}
		if expanded == path || strings.HasPrefix(path, expanded+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

func (s *Scanner) scanDir(root, dir string, depth int, entries *[]Entry, seen map[string]bool) {
	if depth > s.maxDepth || s.isIgnored(dir) {
		return
	}

	items, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	for _, item := range items {
		// Skip hidden files and directories
		if strings.HasPrefix(item.Name(), ".") {
			continue
		}
		path := filepath.Join(dir, item.Name())
		if item.IsDir() {
			s.scanDir(root, path, depth+1, entries, seen)
			continue
		}
		if !imaging.IsSupported(path) || seen[path] || s.isIgnored(path) {
			continue
		}
		seen[path] = true
		rel, err := filepath.Rel(root, path)
		if err != nil {
			rel = item.Name()
		}
		*entries = append(*entries, Entry{Name: rel, Path: path})
	}
}

// Filter keeps entries whose name contains query, case-insensitively.
func Filter(entries []Entry, query string) []Entry {
	if query == "" {
		return entries
	}
	query = strings.ToLower(query)
	var filtered []Entry
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.Name), query) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}
