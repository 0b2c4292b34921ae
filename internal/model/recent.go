package model

// MaxRecentFiles caps the recently viewed list.
const MaxRecentFiles = 5

// RecentFiles is an ordered, duplicate-free list of paths, most recent last.
//
// Touch removes an existing occurrence before appending, so re-touching a path
// moves it to the end; once the list grows past MaxRecentFiles the oldest
// entries are dropped from the front.
type RecentFiles struct {
	entries []string
}

// NewRecentFiles creates a tracker seeded with paths (oldest first).
func NewRecentFiles(paths ...string) *RecentFiles {
	r := &RecentFiles{}
	r.Replace(paths)
	return r
}

// Touch marks path as the most recently viewed.
func (r *RecentFiles) Touch(path string) {
	if path == "" {
		return
	}
	r.remove(path)
	r.entries = append(r.entries, path)
	if over := len(r.entries) - MaxRecentFiles; over > 0 {
		r.entries = append([]string(nil), r.entries[over:]...)
	}
}

// Replace discards the current entries and touches each path in order.
func (r *RecentFiles) Replace(paths []string) {
	r.entries = nil
	for _, p := range paths {
		r.Touch(p)
	}
}

// Snapshot returns a copy of the entries, oldest first.
func (r *RecentFiles) Snapshot() []string {
	out := make([]string, len(r.entries))
	copy(out, r.entries)
	return out
}

// Len returns the number of entries.
func (r *RecentFiles) Len() int {
	return len(r.entries)
}

// Contains reports whether path is in the list.
func (r *RecentFiles) Contains(path string) bool {
	for _, e := range r.entries {
		if e == path {
			return true
		}
	}
	return false
}

func (r *RecentFiles) remove(path string) {
	for i, e := range r.entries {
		if e == path {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return
		}
	}
}
