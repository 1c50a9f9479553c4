package ui

import (
	"context"
	"fmt"
	"log"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cardexdev/cardex/internal/browse"
	"github.com/cardexdev/cardex/internal/prefs"
	"github.com/cardexdev/cardex/internal/state"
)

// Options configure the UI runtime.
type Options struct {
	Context    context.Context
	Store      *state.Store
	Controller *browse.Controller
	ThemeName  string
	PrefsPath  string // empty uses the default prefs location
}

// Run boots the Bubble Tea program and blocks until the user quits or the
// context is cancelled.
func Run(opts Options) error {
	if opts.Store == nil {
		return fmt.Errorf("ui requires a state store")
	}
	if opts.Controller == nil {
		return fmt.Errorf("ui requires a browse controller")
	}
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	program := tea.NewProgram(NewModel(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		if ctx.Err() != nil {
			// Cancelled from outside; not a UI failure.
			return nil
		}
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

// storeUpdatedMsg signals that the snapshot changed since the last read.
type storeUpdatedMsg struct{}

// waitForUpdate re-arms the store subscription; the returned command blocks
// until the next coalesced change signal.
func waitForUpdate(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-ch
		return storeUpdatedMsg{}
	}
}

// Model is the Bubble Tea model for the card browser.
type Model struct {
	store      *state.Store
	controller *browse.Controller
	prefsPath  string

	input textinput.Model
	spin  spinner.Model

	snap   state.Snapshot
	cursor int
	width  int
	height int

	theme  Theme
	styles Styles
}

// NewModel builds the initial model from the current store snapshot.
func NewModel(opts Options) Model {
	theme := ThemeByName(opts.ThemeName)
	styles := theme.Styles()

	ti := textinput.New()
	ti.Placeholder = "Search cards by name..."
	ti.CharLimit = 80
	ti.Width = 48
	ti.Focus()

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent))

	return Model{
		store:      opts.Store,
		controller: opts.Controller,
		prefsPath:  opts.PrefsPath,
		input:      ti,
		spin:       sp,
		snap:       opts.Store.Snapshot(),
		theme:      theme,
		styles:     styles,
	}
}

// Init starts the cursor blink, the spinner, and the store subscription.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spin.Tick, waitForUpdate(m.store.Watch()))
}

// Update routes messages to the input, the spinner, and the controller.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = clampInt(msg.Width-12, 20, 64)
		return m, nil

	case storeUpdatedMsg:
		m.snap = m.store.Snapshot()
		// The controller clears the query on selection; keep the text
		// input in lockstep with the owned state.
		if m.input.Value() != m.snap.Query {
			m.input.SetValue(m.snap.Query)
			m.input.CursorEnd()
		}
		if n := len(m.snap.Results); n == 0 {
			m.cursor = 0
		} else if m.cursor >= n {
			m.cursor = n - 1
		}
		return m, waitForUpdate(m.store.Watch())

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		switch {
		case m.snap.Selected != nil:
			m.controller.ClearSelection()
			return m, nil
		case m.input.Value() != "":
			m.input.SetValue("")
			m.controller.SetQuery("")
			return m, nil
		default:
			return m, tea.Quit
		}

	case "up", "ctrl+p":
		return m.moveCursor(-1), nil

	case "down", "ctrl+n":
		return m.moveCursor(1), nil

	case "enter":
		if m.cursor < len(m.snap.Results) {
			m.controller.Select(m.snap.Results[m.cursor])
			m.cursor = 0
		}
		return m, nil

	case "ctrl+t":
		m.theme = NextTheme(m.theme.Name)
		m.styles = m.theme.Styles()
		m.spin.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Accent))
		if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
			log.Printf("save prefs: %v", err)
		}
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if value := m.input.Value(); value != before {
		m.cursor = 0
		m.controller.SetQuery(value)
	}
	return m, cmd
}

// moveCursor shifts the result cursor and marks the card under it as the
// hover preview.
func (m Model) moveCursor(delta int) Model {
	n := len(m.snap.Results)
	if n == 0 {
		return m
	}
	m.cursor = clampInt(m.cursor+delta, 0, n-1)
	m.controller.SetPreview(m.snap.Results[m.cursor])
	return m
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
