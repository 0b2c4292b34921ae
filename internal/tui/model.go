package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/cwel/imgtab/internal/manager"
	"github.com/cwel/imgtab/internal/model"
	"github.com/cwel/imgtab/internal/picker"
)

type mode int

const (
	modeNormal mode = iota
	modeCommand
	modeConfirm
	modeBrowser
	modeHelp
)

// RecipeLoader resolves a recipe name to its steps.
type RecipeLoader func(name string) ([]model.Step, error)

// Options wires the TUI to its collaborators.
type Options struct {
	Manager *manager.Manager
	Scanner *picker.Scanner // nil disables the open browser
	Recipes RecipeLoader    // nil disables :recipe
	Logger  *zap.Logger
}

// Model is the bubbletea model for the TUI.
type Model struct {
	mgr     *manager.Manager
	scanner *picker.Scanner
	recipes RecipeLoader
	log     *zap.Logger

	mode        mode
	cmdInput    textinput.Model
	filterInput textinput.Model
	pending     *model.ConfirmationRequired

	browser       []picker.Entry
	browserCursor int
	scanning      bool

	status   string
	err      error
	width    int
	height   int
	quitting bool
}

// New creates a new TUI model.
func New(opts Options) Model {
	ci := textinput.New()
	ci.Prompt = ":"
	ci.Placeholder = "rotate 45"
	ci.CharLimit = 256

	fi := textinput.New()
	fi.Placeholder = "filter..."
	fi.CharLimit = 50

	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return Model{
		mgr:         opts.Manager,
		scanner:     opts.Scanner,
		recipes:     opts.Recipes,
		log:         log,
		cmdInput:    ci,
		filterInput: fi,
		width:       80,
		height:      24,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// scanBrowser walks the configured directories off the update loop.
func (m Model) scanBrowser() tea.Msg {
	return browserScannedMsg{m.scanner.Scan()}
}

// Message types
type browserScannedMsg struct{ entries []picker.Entry }

// Quitting reports whether the user left the program.
func (m Model) Quitting() bool {
	return m.quitting
}

// Status returns the last status line.
func (m Model) Status() string {
	if m.err != nil {
		return "error: " + m.err.Error()
	}
	return m.status
}

// visibleEntries applies the browser filter.
func (m Model) visibleEntries() []picker.Entry {
	return picker.Filter(m.browser, m.filterInput.Value())
}
