package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cwel/imgtab/internal/model"
)

func TestLoadRecordCreatesMissingFile(t *testing.T) {
	tmpDir := t.TempDir()
	store := New(filepath.Join(tmpDir, "imgtab"))

	rec, err := store.LoadRecord()
	if err != nil {
		t.Fatalf("LoadRecord failed: %v", err)
	}
	if len(rec.OpenedImages) != 0 || len(rec.LastViewedImages) != 0 {
		t.Errorf("expected empty record, got %+v", rec)
	}

	data, err := os.ReadFile(store.Path())
	if err != nil {
		t.Fatalf("session file not created at %s", store.Path())
	}
	if !strings.Contains(string(data), `"opened_images": []`) {
		t.Errorf("lists should serialize as [], got %s", data)
	}
}

func TestSaveAndLoadRecord(t *testing.T) {
	store := New(t.TempDir())

	rec := &model.Record{
		OpenedImages:     []string{"/img/a.png", "/img/b.jpg"},
		LastViewedImages: []string{"/img/b.jpg", "/img/a.png"},
	}
	if err := store.SaveRecord(rec); err != nil {
		t.Fatalf("SaveRecord failed: %v", err)
	}

	if _, err := os.Stat(store.Path() + ".tmp"); !os.IsNotExist(err) {
		t.Error("temp file left behind")
	}

	loaded, err := store.LoadRecord()
	if err != nil {
		t.Fatalf("LoadRecord failed: %v", err)
	}
	if len(loaded.OpenedImages) != 2 || loaded.OpenedImages[1] != "/img/b.jpg" {
		t.Errorf("OpenedImages = %v", loaded.OpenedImages)
	}
	if len(loaded.LastViewedImages) != 2 || loaded.LastViewedImages[0] != "/img/b.jpg" {
		t.Errorf("LastViewedImages = %v", loaded.LastViewedImages)
	}
}

func TestLoadRecordNullLists(t *testing.T) {
	store := New(t.TempDir())
	if err := os.WriteFile(store.Path(), []byte(`{"opened_images": null}`), 0644); err != nil {
		t.Fatal(err)
	}

	rec, err := store.LoadRecord()
	if err != nil {
		t.Fatal(err)
	}
	if rec.OpenedImages == nil || rec.LastViewedImages == nil {
		t.Errorf("lists should be normalized, got %+v", rec)
	}
}

func TestLoadRecordCorrupt(t *testing.T) {
	store := New(t.TempDir())
	if err := os.WriteFile(store.Path(), []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := store.LoadRecord(); err == nil {
		t.Error("expected unmarshal error")
	}
}

func TestDefaultStoreUsesDataDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("IMGTAB_DATA_DIR", dir)

	if got := DefaultStore().Path(); got != filepath.Join(dir, SessionFile) {
		t.Errorf("Path() = %q, want %q", got, filepath.Join(dir, SessionFile))
	}
}
