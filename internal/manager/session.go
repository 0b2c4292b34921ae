package manager

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/cwel/imgtab/internal/model"
)

// SerializeSession captures the open paths and the recent list. Documents
// that were never saved have no path and are not recorded.
func (m *Manager) SerializeSession() model.Record {
	rec := model.EmptyRecord()
	for _, d := range m.docs {
		if d.HasPath() {
			rec.OpenedImages = append(rec.OpenedImages, d.Path())
		}
	}
	rec.LastViewedImages = m.recent.Snapshot()
	return *rec
}

// RestoreSession reopens every recorded image and then adopts the recorded
// recent list. Images that fail to load are skipped and reported joined. The
// record is not persisted here.
func (m *Manager) RestoreSession(rec model.Record) error {
	var errs []error
	for _, p := range rec.OpenedImages {
		if err := m.open(p); err != nil {
			errs = append(errs, err)
		}
	}
	m.recent.Replace(rec.LastViewedImages)
	m.log.Info("session restored",
		zap.Int("documents", len(m.docs)),
		zap.Int("failed", len(errs)))
	return errors.Join(errs...)
}

// Restore loads the stored record and restores it.
func (m *Manager) Restore() error {
	if m.store == nil {
		return nil
	}
	rec, err := m.store.LoadRecord()
	if err != nil {
		m.log.Error("load session failed", zap.Error(err))
		return fmt.Errorf("load session: %w", err)
	}
	return m.RestoreSession(*rec)
}

// Persist writes the current session record to the store.
func (m *Manager) Persist() error {
	if m.store == nil {
		return nil
	}
	rec := m.SerializeSession()
	if err := m.store.SaveRecord(&rec); err != nil {
		m.log.Error("persist session failed", zap.Error(err))
		return fmt.Errorf("persist session: %w", err)
	}
	return nil
}

// Shutdown persists the session. With unsaved changes it needs confirmed.
func (m *Manager) Shutdown(confirmed bool) error {
	if m.HasUnsavedChanges() && !confirmed {
		return &model.ConfirmationRequired{
			Op:     "quit",
			Prompt: "Got unsaved changes! Exit anyway?",
		}
	}
	return m.Persist()
}
