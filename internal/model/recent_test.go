package model

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

func TestRecentFiles_TouchMovesExistingToEnd(t *testing.T) {
	r := NewRecentFiles("a", "b", "c", "d", "e")
	r.Touch("a")

	want := []string{"b", "c", "d", "e", "a"}
	if got := r.Snapshot(); !reflect.DeepEqual(got, want) {
		t.Errorf("Snapshot() = %v, want %v", got, want)
	}
}

func TestRecentFiles_EvictsOldest(t *testing.T) {
	r := NewRecentFiles()
	for _, p := range []string{"1", "2", "3", "4", "5", "6"} {
		r.Touch(p)
	}

	if r.Len() != MaxRecentFiles {
		t.Fatalf("Len() = %d, want %d", r.Len(), MaxRecentFiles)
	}
	if r.Contains("1") {
		t.Error("expected first inserted path to be evicted")
	}
	want := []string{"2", "3", "4", "5", "6"}
	if got := r.Snapshot(); !reflect.DeepEqual(got, want) {
		t.Errorf("Snapshot() = %v, want %v", got, want)
	}
}

func TestRecentFiles_Replace(t *testing.T) {
	tests := []struct {
		name  string
		paths []string
		want  []string
	}{
		{"empty", nil, []string{}},
		{"dedupes", []string{"a", "b", "a"}, []string{"b", "a"}},
		{"caps", []string{"a", "b", "c", "d", "e", "f", "g"}, []string{"c", "d", "e", "f", "g"}},
		{"skips blank", []string{"", "a"}, []string{"a"}},
	}

	for _, tt := range tests {
		r := NewRecentFiles("x", "y")
		r.Replace(tt.paths)
		if got := r.Snapshot(); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("%s: Snapshot() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestRecentFiles_SnapshotIsCopy(t *testing.T) {
	r := NewRecentFiles("a")
	snap := r.Snapshot()
	snap[0] = "mutated"

	if r.Snapshot()[0] != "a" {
		t.Error("Snapshot() must not alias internal state")
	}
}

func TestEmptyRecordMarshalsLists(t *testing.T) {
	data, err := json.Marshal(EmptyRecord())
	if err != nil {
		t.Fatal(err)
	}
	want := `{"opened_images":[],"last_viewed_images":[]}`
	if string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}
}

func TestErrorsUnwrap(t *testing.T) {
	cause := errors.New("boom")

	var le error = &LoadError{Path: "/x.png", Err: cause}
	if !errors.Is(le, cause) {
		t.Error("LoadError should unwrap to its cause")
	}
	var ve error = &ValidationError{Op: "save as", Reason: "bad extension", Err: cause}
	if !errors.Is(ve, cause) {
		t.Error("ValidationError should unwrap to its cause")
	}
	var ioe error = &IOError{Op: "delete", Path: "/x.png", Err: cause}
	if !errors.Is(ioe, cause) {
		t.Error("IOError should unwrap to its cause")
	}

	var vErr *ValidationError
	if !errors.As(ve, &vErr) || vErr.Reason != "bad extension" {
		t.Errorf("errors.As ValidationError failed: %v", ve)
	}
}

func TestStepRectangle(t *testing.T) {
	s := Step{Op: OpCrop, Rect: []int{1, 2, 11, 22}}
	r := s.Rectangle()
	if r.Dx() != 10 || r.Dy() != 20 {
		t.Errorf("Rectangle() = %v, want 10x20", r)
	}

	bad := Step{Op: OpCrop, Rect: []int{1, 2}}
	if !bad.Rectangle().Empty() {
		t.Error("malformed rect should be empty")
	}
}
