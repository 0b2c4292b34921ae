package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/cwel/imgtab/internal/imaging"
	"github.com/cwel/imgtab/internal/model"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case browserScannedMsg:
		m.scanning = false
		m.browser = msg.entries
		m.browserCursor = 0
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m.quit(false)
		}
		switch m.mode {
		case modeHelp:
			m.mode = modeNormal
			return m, nil
		case modeConfirm:
			return m.updateConfirm(msg)
		case modeCommand:
			return m.updateCommand(msg)
		case modeBrowser:
			return m.updateBrowser(msg)
		default:
			return m.updateNormal(msg)
		}
	}

	return m, nil
}

func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m.quit(false)
	case "j", "down", "tab":
		m.move(1)
	case "k", "up", "shift+tab":
		m.move(-1)
	case "r":
		m.report(m.mgr.Rotate(90), "rotated 90°")
	case "R":
		m.report(m.mgr.Rotate(-90), "rotated -90°")
	case "H":
		m.report(m.mgr.Flip(imaging.FlipHorizontal), "flipped horizontally")
	case "V":
		m.report(m.mgr.Flip(imaging.FlipVertical), "flipped vertically")
	case "s":
		m.report(m.mgr.SaveSelected(), "saved")
	case "S":
		m.report(m.mgr.SaveAll(), "saved all")
	case "x":
		m.report(m.mgr.CloseSelected(false), "closed")
	case "D":
		m.report(m.mgr.DeleteSelected(false), "deleted")
	case "o":
		if m.scanner == nil {
			m.report(errors.New("open browser is not configured"), "")
			return m, nil
		}
		m.mode = modeBrowser
		m.scanning = true
		m.filterInput.SetValue("")
		m.filterInput.Focus()
		return m, m.scanBrowser
	case ":":
		m.mode = modeCommand
		m.cmdInput.SetValue("")
		m.cmdInput.Focus()
	case "?":
		m.mode = modeHelp
	}
	return m, nil
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	pending := m.pending
	m.pending = nil
	m.mode = modeNormal

	switch msg.String() {
	case "y", "Y":
		if pending == nil {
			return m, nil
		}
	default:
		m.status = "cancelled"
		m.err = nil
		return m, nil
	}

	switch pending.Op {
	case "close":
		m.report(m.mgr.CloseSelected(true), "closed")
	case "delete":
		m.report(m.mgr.DeleteSelected(true), "deleted")
	case "quit":
		return m.quit(true)
	}
	return m, nil
}

func (m Model) updateCommand(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = modeNormal
		m.cmdInput.Blur()
		return m, nil
	case tea.KeyEnter:
		line := m.cmdInput.Value()
		m.mode = modeNormal
		m.cmdInput.Blur()
		status, err := m.runCommand(line)
		m.report(err, status)
		return m, nil
	}

	var cmd tea.Cmd
	m.cmdInput, cmd = m.cmdInput.Update(msg)
	return m, cmd
}

func (m Model) updateBrowser(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	entries := m.visibleEntries()
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = modeNormal
		m.filterInput.Blur()
		return m, nil
	case tea.KeyUp:
		if m.browserCursor > 0 {
			m.browserCursor--
		}
		return m, nil
	case tea.KeyDown:
		if m.browserCursor < len(entries)-1 {
			m.browserCursor++
		}
		return m, nil
	case tea.KeyEnter:
		m.mode = modeNormal
		m.filterInput.Blur()
		if m.browserCursor < len(entries) {
			path := entries[m.browserCursor].Path
			m.report(m.mgr.OpenPaths([]string{path}), "opened "+entries[m.browserCursor].Name)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	if n := len(m.visibleEntries()); m.browserCursor >= n {
		m.browserCursor = max(n-1, 0)
	}
	return m, cmd
}

// move shifts the selection, wrapping around the tab list.
func (m *Model) move(delta int) {
	n := len(m.mgr.Documents())
	if n == 0 {
		return
	}
	i := m.mgr.SelectedIndex()
	_ = m.mgr.Select(((i+delta)%n + n) % n)
}

// quit asks the manager to shut down; unsaved changes route through the
// confirmation overlay.
func (m Model) quit(confirmed bool) (tea.Model, tea.Cmd) {
	err := m.mgr.Shutdown(confirmed)
	var cr *model.ConfirmationRequired
	if errors.As(err, &cr) {
		m.pending = cr
		m.mode = modeConfirm
		return m, nil
	}
	if err != nil {
		m.log.Error("shutdown", zap.Error(err))
	}
	m.quitting = true
	return m, tea.Quit
}

// report records the outcome of an operation in the status line. A
// confirmation request opens the y/n overlay instead.
func (m *Model) report(err error, ok string) {
	var cr *model.ConfirmationRequired
	if errors.As(err, &cr) {
		m.pending = cr
		m.mode = modeConfirm
		return
	}
	if err != nil {
		m.err = err
		m.status = ""
		m.log.Warn("operation failed", zap.Error(err))
		return
	}
	m.err = nil
	m.status = ok
}
