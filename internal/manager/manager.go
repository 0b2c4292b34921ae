// Package manager owns the set of open documents: tab order, selection,
// recently viewed files and the persisted session record.
package manager

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"

	"go.uber.org/zap"

	"github.com/cwel/imgtab/internal/clipboard"
	"github.com/cwel/imgtab/internal/document"
	"github.com/cwel/imgtab/internal/model"
)

// RecordStore loads and saves the session record.
type RecordStore interface {
	LoadRecord() (*model.Record, error)
	SaveRecord(rec *model.Record) error
}

// Options configures a Manager. Zero values are usable: no persistence, an
// in-memory clipboard, a no-op logger.
type Options struct {
	Store     RecordStore
	Clipboard clipboard.Sink
	Logger    *zap.Logger
	Document  document.Options
}

// Manager coordinates open documents, recency and session storage.
type Manager struct {
	docs     []*document.Document
	selected int // -1 when nothing is selected
	recent   *model.RecentFiles

	store RecordStore
	clip  clipboard.Sink
	log   *zap.Logger
	opts  document.Options
}

// New creates an empty Manager.
func New(opts Options) *Manager {
	m := &Manager{
		selected: -1,
		recent:   model.NewRecentFiles(),
		store:    opts.Store,
		clip:     opts.Clipboard,
		log:      opts.Logger,
		opts:     opts.Document,
	}
	if m.clip == nil {
		m.clip = &clipboard.Memory{}
	}
	if m.log == nil {
		m.log = zap.NewNop()
	}
	return m
}

// Documents returns the open documents in tab order. The slice is a copy.
func (m *Manager) Documents() []*document.Document {
	return slices.Clone(m.docs)
}

// Selected returns the selected document, or nil.
func (m *Manager) Selected() *document.Document {
	if m.selected < 0 {
		return nil
	}
	return m.docs[m.selected]
}

// SelectedIndex returns the selected tab index, or -1.
func (m *Manager) SelectedIndex() int {
	return m.selected
}

// Select makes the i-th document current.
func (m *Manager) Select(i int) error {
	if i < 0 || i >= len(m.docs) {
		return &model.ValidationError{Op: "select", Reason: fmt.Sprintf("no document at index %d", i)}
	}
	m.selected = i
	return nil
}

// SelectPath selects the document open at path. It reports whether one was
// found.
func (m *Manager) SelectPath(path string) bool {
	i := m.indexOf(resolve(path))
	if i < 0 {
		return false
	}
	m.selected = i
	return true
}

// Recent returns the recently viewed paths, oldest first.
func (m *Manager) Recent() []string {
	return m.recent.Snapshot()
}

// HasUnsavedChanges reports whether any open document is dirty.
func (m *Manager) HasUnsavedChanges() bool {
	for _, d := range m.docs {
		if d.Dirty() {
			return true
		}
	}
	return false
}

// OpenPaths opens each path as a new document, or selects it if it is
// already open. Failures do not stop the batch; they are returned joined as
// *model.LoadError values. The session record is persisted afterwards.
func (m *Manager) OpenPaths(paths []string) error {
	var errs []error
	for _, p := range paths {
		if err := m.open(p); err != nil {
			errs = append(errs, err)
		}
	}
	if len(paths) > 0 {
		// Persistence failures are logged by Persist; the open itself succeeded.
		_ = m.Persist()
	}
	return errors.Join(errs...)
}

// OpenRecent reopens the n-th most recently viewed path, counting from 1.
func (m *Manager) OpenRecent(n int) error {
	recent := m.recent.Snapshot()
	if n < 1 || n > len(recent) {
		return &model.ValidationError{Op: "open recent", Reason: fmt.Sprintf("no recent entry %d", n)}
	}
	return m.OpenPaths([]string{recent[len(recent)-n]})
}

func (m *Manager) open(path string) error {
	abs := resolve(path)
	if i := m.indexOf(abs); i >= 0 {
		m.selected = i
		m.recent.Touch(abs)
		return nil
	}

	d, err := document.Open(abs, m.opts)
	if err != nil {
		m.log.Warn("open failed", zap.String("path", abs), zap.Error(err))
		return err
	}
	m.docs = append(m.docs, d)
	m.selected = len(m.docs) - 1
	m.recent.Touch(abs)
	m.log.Info("opened", zap.String("path", abs), zap.String("mode", string(d.Image().Mode)))
	return nil
}

// NewDocument adds a blank, never-saved document and selects it.
func (m *Manager) NewDocument(width, height int) error {
	d, err := document.NewBlank(width, height, m.opts)
	if err != nil {
		return err
	}
	m.docs = append(m.docs, d)
	m.selected = len(m.docs) - 1
	m.log.Info("new document", zap.Int("width", width), zap.Int("height", height))
	return nil
}

// CloseSelected removes the selected document from the session without
// touching the disk. A dirty document needs confirmed.
func (m *Manager) CloseSelected(confirmed bool) error {
	d := m.Selected()
	if d == nil {
		return nil
	}
	if d.Dirty() && !confirmed {
		return &model.ConfirmationRequired{
			Op:     "close",
			Prompt: fmt.Sprintf("%s has unsaved changes. Close without saving?", d.Filename()),
		}
	}
	m.removeAt(m.selected)
	m.log.Info("closed", zap.String("path", d.Path()))
	return nil
}

// DeleteSelected deletes the selected document's file and closes it. It
// always needs confirmed. On failure the document stays open.
func (m *Manager) DeleteSelected(confirmed bool) error {
	d := m.Selected()
	if d == nil {
		return nil
	}
	if !confirmed {
		return &model.ConfirmationRequired{
			Op:     "delete",
			Prompt: fmt.Sprintf("Delete %s? This operation is unrecoverable!", d.Filename()),
		}
	}
	if err := d.Remove(); err != nil {
		m.log.Error("delete failed", zap.String("path", d.Path()), zap.Error(err))
		return err
	}
	m.removeAt(m.selected)
	m.log.Info("deleted", zap.String("path", d.Path()))
	return nil
}

// SaveSelected writes the selected document to its path. Clean documents are
// not written.
func (m *Manager) SaveSelected() error {
	d := m.Selected()
	if d == nil {
		return nil
	}
	wasDirty := d.Dirty()
	if err := d.Save(); err != nil {
		return err
	}
	if wasDirty {
		m.log.Info("saved", zap.String("path", d.Path()))
	}
	return nil
}

// SaveSelectedAs writes the selected document to path and adopts it. Another
// open document already at path is dropped from the session, since its file
// has just been replaced.
func (m *Manager) SaveSelectedAs(path string) error {
	d := m.Selected()
	if d == nil {
		return nil
	}
	abs := resolve(path)
	var replaced *document.Document
	if i := m.indexOf(abs); i >= 0 && m.docs[i] != d {
		replaced = m.docs[i]
	}
	if err := d.SaveAs(abs); err != nil {
		return err
	}
	if replaced != nil {
		m.log.Info("replaced open document", zap.String("path", abs))
		m.removeAt(slices.Index(m.docs, replaced))
	}
	m.log.Info("saved as", zap.String("path", abs))
	return nil
}

// SaveAll saves every dirty document in tab order. Documents that have never
// been saved are skipped and reported.
func (m *Manager) SaveAll() error {
	var errs []error
	for _, d := range m.docs {
		if !d.Dirty() {
			continue
		}
		if !d.HasPath() {
			errs = append(errs, &model.ValidationError{
				Op:     "save all",
				Reason: fmt.Sprintf("%s has never been saved; use save as", d.Filename()),
			})
			continue
		}
		if err := d.Save(); err != nil {
			errs = append(errs, err)
			continue
		}
		m.log.Info("saved", zap.String("path", d.Path()))
	}
	return errors.Join(errs...)
}

// MoveSelected renames the selected document's file. The dirty flag is left
// as is.
func (m *Manager) MoveSelected(path string) error {
	d := m.Selected()
	if d == nil {
		return nil
	}
	abs := resolve(path)
	if i := m.indexOf(abs); i >= 0 && m.docs[i] != d {
		return &model.ValidationError{Op: "move", Reason: "target is open in another document"}
	}
	old := d.Path()
	if err := d.MoveTo(abs); err != nil {
		return err
	}
	m.log.Info("moved", zap.String("from", old), zap.String("to", abs))
	return nil
}

// removeAt drops the i-th document. The selection stays on the same document
// when another one is removed; when the selected one goes, the same index is
// kept if still valid, else the last document, else none.
func (m *Manager) removeAt(i int) {
	m.docs = slices.Delete(m.docs, i, i+1)
	switch {
	case len(m.docs) == 0:
		m.selected = -1
	case m.selected > i:
		m.selected--
	case m.selected >= len(m.docs):
		m.selected = len(m.docs) - 1
	}
}

func (m *Manager) indexOf(abs string) int {
	for i, d := range m.docs {
		if d.Path() == abs {
			return i
		}
	}
	return -1
}

// resolve makes path absolute and clean. Abs only fails when the working
// directory is gone, in which case the cleaned input is the best key left.
func resolve(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}
