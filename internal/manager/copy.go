package manager

import "go.uber.org/zap"

// CopyFilename puts the selected document's file name on the clipboard.
func (m *Manager) CopyFilename() error {
	if d := m.Selected(); d != nil {
		return m.copy(d.Filename())
	}
	return nil
}

// CopyDirectory puts the selected document's directory on the clipboard.
func (m *Manager) CopyDirectory() error {
	if d := m.Selected(); d != nil {
		return m.copy(d.Directory())
	}
	return nil
}

// CopyFullPath puts the selected document's absolute path on the clipboard.
func (m *Manager) CopyFullPath() error {
	if d := m.Selected(); d != nil {
		return m.copy(d.FullPath())
	}
	return nil
}

func (m *Manager) copy(text string) error {
	if err := m.clip.WriteText(text); err != nil {
		m.log.Warn("clipboard write failed", zap.Error(err))
		return err
	}
	return nil
}
