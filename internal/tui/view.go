package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cwel/imgtab/internal/document"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.mode {
	case modeHelp:
		return m.viewHelp()
	case modeConfirm:
		return m.viewConfirm(m.width, m.height)
	}

	// Calculate pane widths
	listWidth := max(m.width/2-2, 20)
	previewWidth := max(m.width-listWidth-4, 20)
	contentHeight := max(m.height-5, 6) // borders, status and help bar

	var content string
	if m.mode == modeBrowser {
		content = m.viewBrowser(m.width-2, contentHeight)
	} else {
		listPane := m.viewDocumentList(listWidth, contentHeight)
		previewPane := m.viewPreview(previewWidth, contentHeight)
		content = lipgloss.JoinHorizontal(lipgloss.Top, listPane, previewPane)
	}

	title := titleStyle.Render("imgtab")
	return lipgloss.JoinVertical(lipgloss.Left, title, content, m.viewStatus(), m.viewHelpBar())
}

func (m Model) viewDocumentList(width, height int) string {
	var b strings.Builder

	b.WriteString(dimStyle.Render("Images") + "\n")
	b.WriteString(dimStyle.Render(strings.Repeat("─", max(width-4, 1))) + "\n")

	docs := m.mgr.Documents()
	if len(docs) == 0 {
		b.WriteString(dimStyle.Render("  No images open") + "\n")
	}

	selected := m.mgr.SelectedIndex()
	for i, d := range docs {
		indicator := cleanIndicator.String()
		if d.Dirty() {
			indicator = dirtyIndicator.String()
		}
		line := fmt.Sprintf("%s %s", indicator, d.Title())
		if i == selected {
			b.WriteString(selectedItemStyle.Render("> "+line) + "\n")
		} else {
			b.WriteString(itemStyle.Render(line) + "\n")
		}
	}

	if recent := m.mgr.Recent(); len(recent) > 0 {
		b.WriteString("\n" + dimStyle.Render("Recent") + "\n")
		// Most recent first, numbered for :recent <n>
		for i := len(recent) - 1; i >= 0; i-- {
			b.WriteString(dimStyle.Render(fmt.Sprintf("  %d %s", len(recent)-i, recent[i])) + "\n")
		}
	}

	style := borderStyle.Width(width).Height(height)
	return style.Render(b.String())
}

func (m Model) viewPreview(width, height int) string {
	var b strings.Builder

	d := m.mgr.Selected()
	if d == nil {
		b.WriteString(dimStyle.Render("No image selected"))
	} else {
		img := d.Image()
		b.WriteString(previewTitleStyle.Render(d.Title()) + "\n")
		path := d.Path()
		if path == "" {
			path = "(not saved yet)"
		}
		b.WriteString(previewInfoStyle.Render(path) + "\n\n")
		b.WriteString(fmt.Sprintf("size:  %dx%d\n", img.Width(), img.Height()))
		b.WriteString(fmt.Sprintf("mode:  %s\n", img.Mode))
		b.WriteString(fmt.Sprintf("dirty: %t\n", d.Dirty()))

		sel := d.Crop()
		crop := sel.State.String()
		if sel.State == document.CropSelecting {
			if sel.Valid() {
				r := sel.Rect
				crop += fmt.Sprintf(" %d,%d → %d,%d (%dx%d)", r.Min.X, r.Min.Y, r.Max.X, r.Max.Y, r.Dx(), r.Dy())
			} else {
				crop += fmt.Sprintf(" from %d,%d", sel.Anchor.X, sel.Anchor.Y)
			}
		}
		b.WriteString(fmt.Sprintf("crop:  %s\n", crop))
	}

	style := borderStyle.Width(width).Height(height)
	return style.Render(b.String())
}

func (m Model) viewBrowser(width, height int) string {
	var b strings.Builder

	b.WriteString(dimStyle.Render("Open image") + "\n")
	b.WriteString(m.filterInput.View() + "\n")
	b.WriteString(dimStyle.Render(strings.Repeat("─", max(width-4, 1))) + "\n")

	entries := m.visibleEntries()
	switch {
	case m.scanning:
		b.WriteString(dimStyle.Render("  Scanning..."))
	case len(entries) == 0:
		b.WriteString(dimStyle.Render("  No images found"))
	}

	// Keep the cursor in view.
	rows := max(height-4, 1)
	start := 0
	if m.browserCursor >= rows {
		start = m.browserCursor - rows + 1
	}
	for i := start; i < len(entries) && i < start+rows; i++ {
		if i == m.browserCursor {
			b.WriteString(selectedItemStyle.Render("> "+entries[i].Name) + "\n")
		} else {
			b.WriteString(itemStyle.Render(entries[i].Name) + "\n")
		}
	}

	style := borderStyle.Width(width).Height(height)
	return style.Render(b.String())
}

func (m Model) viewStatus() string {
	if m.err != nil {
		return errorStyle.Render("error: " + m.err.Error())
	}
	return statusStyle.Render(m.status)
}

func (m Model) viewHelpBar() string {
	switch m.mode {
	case modeCommand:
		return helpStyle.Render(m.cmdInput.View())
	case modeBrowser:
		return helpStyle.Render("[↑/↓] move  [enter] open  [esc] back")
	}
	return helpStyle.Render("[r/R] rotate  [H/V] flip  [s] save  [x] close  [o] open  [:] command  [?] help  [q] quit")
}

func (m Model) viewHelp() string {
	help := `
  imgtab - Image Editor

  Keys:
    ↑/k ↓/j   Select image
    r / R     Rotate 90° left / right
    H / V     Flip horizontal / vertical
    s / S     Save / save all
    x         Close image
    D         Delete image file
    o         Open browser
    :         Command prompt
    ?         Toggle help
    q/esc     Quit

  Commands:
`
	for _, c := range commandUsage {
		help += "    :" + c + "\n"
	}
	help += "\n  Press any key to close this help.\n"

	style := borderStyle.Width(50).Padding(1, 2)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, style.Render(help))
}

func (m Model) viewConfirm(width, height int) string {
	prompt := "Are you sure?"
	if m.pending != nil {
		prompt = m.pending.Prompt
	}
	msg := fmt.Sprintf("%s\n\n[y] yes  [n] no", prompt)
	style := borderStyle.Width(50).Padding(1, 2)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, style.Render(msg))
}
