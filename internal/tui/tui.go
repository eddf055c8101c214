// Package tui provides a Bubble Tea terminal user interface for the
// AutoEq-to-FiiO converter.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/yoeljacobsen/AutoEQ-to-FIIO/internal/autoeq"
	"github.com/yoeljacobsen/AutoEQ-to-FIIO/internal/config"
	"github.com/yoeljacobsen/AutoEQ-to-FIIO/internal/convert"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500")).
			Bold(true)
)

// maxVisibleMatches limits how many search results are shown at once;
// the list scrolls around the cursor.
const maxVisibleMatches = 12

// State represents the current UI state.
type State int

const (
	StateLoading State = iota
	StateSearch
	StateSelect
	StateConverting
	StateComplete
	StateError
)

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state     State
	textInput textinput.Model
	spinner   spinner.Model
	settings  *config.Settings
	err       error

	// Conversion context
	ctx    context.Context
	cancel context.CancelFunc

	// Conversion manager reference
	manager *convert.Manager

	// Search state
	profileCount int
	matches      []autoeq.Entry
	cursor       int

	// Outcome of the last conversion
	result    *convert.Result
	savedPath string

	// Options
	suppressGain bool

	width  int
	height int
}

// NewModel creates a new TUI model.
func NewModel(settings *config.Settings) Model {
	ti := textinput.New()
	ti.Placeholder = "hd 650"
	ti.CharLimit = 200
	ti.Width = 40

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		state:        StateLoading,
		textInput:    ti,
		spinner:      sp,
		settings:     settings,
		suppressGain: settings.SuppressGain,
		ctx:          ctx,
		cancel:       cancel,
		manager:      convert.NewManager(settings, nil),
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadIndex())
}

// Message types
type (
	// IndexLoadedMsg is sent when the profile index has been loaded.
	IndexLoadedMsg struct {
		Count int
		Err   error
	}

	// ConvertDoneMsg is sent when a conversion (and save) finishes.
	ConvertDoneMsg struct {
		Result *convert.Result
		Path   string
		Err    error
	}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancel()
			return m, tea.Quit

		case "esc":
			switch m.state {
			case StateSearch:
				return m, tea.Quit
			case StateSelect:
				m.state = StateSearch
				m.textInput.Focus()
				return m, textinput.Blink
			case StateLoading, StateConverting:
				m.cancel()
				m.state = StateError
				m.err = fmt.Errorf("cancelled by user")
			}

		case "enter":
			switch m.state {
			case StateSearch:
				m.matches = m.manager.Search(strings.TrimSpace(m.textInput.Value()))
				m.cursor = 0
				if len(m.matches) > 0 {
					m.state = StateSelect
					m.textInput.Blur()
				}
			case StateSelect:
				if len(m.matches) > 0 {
					m.state = StateConverting
					m.settings.SuppressGain = m.suppressGain
					return m, tea.Batch(m.convertProfile(m.matches[m.cursor]), m.spinner.Tick)
				}
			}

		case "up", "k":
			if m.state == StateSelect && m.cursor > 0 {
				m.cursor--
			}

		case "down", "j":
			if m.state == StateSelect && m.cursor < len(m.matches)-1 {
				m.cursor++
			}

		case "ctrl+g":
			if m.state == StateSearch {
				m.suppressGain = !m.suppressGain
			}

		case "q":
			if m.state == StateComplete || m.state == StateError {
				return m, tea.Quit
			}

		case "r":
			if m.state == StateComplete || m.state == StateError {
				// Back to search for another conversion
				m.state = StateSearch
				m.err = nil
				m.result = nil
				m.savedPath = ""
				m.matches = nil
				m.cursor = 0
				m.ctx, m.cancel = context.WithCancel(context.Background())
				m.textInput.SetValue("")
				m.textInput.Focus()
				return m, textinput.Blink
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case IndexLoadedMsg:
		if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
		} else {
			m.profileCount = msg.Count
			m.state = StateSearch
			m.textInput.Focus()
			cmds = append(cmds, textinput.Blink)
		}

	case ConvertDoneMsg:
		if msg.Err != nil && m.ctx.Err() == nil {
			m.state = StateError
			m.err = msg.Err
		} else if m.ctx.Err() != nil {
			m.state = StateError
			m.err = fmt.Errorf("cancelled by user")
		} else {
			m.result = msg.Result
			m.savedPath = msg.Path
			m.state = StateComplete
		}
	}

	// Update text input
	if m.state == StateSearch {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("🎧 AutoEq → FiiO Converter"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Convert AutoEq profiles to FiiO Control presets"))
	b.WriteString("\n\n")

	switch m.state {
	case StateLoading:
		b.WriteString(m.viewLoading())
	case StateSearch:
		b.WriteString(m.viewSearch())
	case StateSelect:
		b.WriteString(m.viewSelect())
	case StateConverting:
		b.WriteString(m.viewConverting())
	case StateComplete:
		b.WriteString(m.viewComplete())
	case StateError:
		b.WriteString(m.viewError())
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewLoading() string {
	return m.spinner.View() + " " + subtitleStyle.Render("Fetching headphone index...") + "\n"
}

func (m Model) viewSearch() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render(fmt.Sprintf("Search %d headphone profiles:", m.profileCount)))
	b.WriteString("\n\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n\n")

	gainCheck := "[ ]"
	if m.suppressGain {
		gainCheck = "[×]"
	}
	b.WriteString(infoStyle.Render("Options:"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s Suppress preamp gain (ctrl+g)\n", gainCheck))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Target DSP: %s", m.settings.DSPModel)))
	b.WriteString("\n")

	if m.matches != nil && len(m.matches) == 0 {
		b.WriteString("\n")
		b.WriteString(warningStyle.Render("No matches, try another search term."))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) viewSelect() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render(fmt.Sprintf("%d matching profiles:", len(m.matches))))
	b.WriteString("\n\n")

	start := 0
	if m.cursor >= maxVisibleMatches {
		start = m.cursor - maxVisibleMatches + 1
	}
	end := start + maxVisibleMatches
	if end > len(m.matches) {
		end = len(m.matches)
	}

	if start > 0 {
		b.WriteString(dimStyle.Render("  ↑ more"))
		b.WriteString("\n")
	}
	for i := start; i < end; i++ {
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("▸ " + m.matches[i].Name))
		} else {
			b.WriteString("  " + m.matches[i].Name)
		}
		b.WriteString("\n")
	}
	if end < len(m.matches) {
		b.WriteString(dimStyle.Render("  ↓ more"))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) viewConverting() string {
	name := ""
	if m.cursor < len(m.matches) {
		name = m.matches[m.cursor].Name
	}
	return m.spinner.View() + " " + subtitleStyle.Render(fmt.Sprintf("Converting %s...", name)) + "\n"
}

func (m Model) viewComplete() string {
	var b strings.Builder

	summary := fmt.Sprintf(
		"✨ Preset saved!\n\n"+
			"Profile: %s\n"+
			"Bands: %d\n"+
			"Master gain: %.1f dB\n"+
			"File: %s",
		m.result.Entry.Name,
		m.result.FilterCount,
		m.result.Preset.MasterGain,
		m.savedPath,
	)
	b.WriteString(boxStyle.Render(summary))
	b.WriteString("\n")

	if m.result.Truncated {
		b.WriteString(warningStyle.Render("! Profile had more bands than the device supports; extra bands were dropped."))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("✗ Error occurred:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
	}
	b.WriteString("\n")

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateSearch:
		return "enter: search • ctrl+g: suppress gain • esc: quit"
	case StateSelect:
		return "↑/↓: move • enter: convert • esc: back"
	case StateLoading, StateConverting:
		return "esc: cancel"
	case StateComplete, StateError:
		return "r: convert another • q: quit"
	}
	return ""
}

// loadIndex fetches the profile index in the background.
func (m *Model) loadIndex() tea.Cmd {
	manager := m.manager
	ctx := m.ctx
	return func() tea.Msg {
		if err := manager.LoadIndex(ctx); err != nil {
			return IndexLoadedMsg{Err: err}
		}
		return IndexLoadedMsg{Count: len(manager.Entries())}
	}
}

// convertProfile converts and saves the selected profile in the background.
func (m *Model) convertProfile(entry autoeq.Entry) tea.Cmd {
	manager := m.manager
	ctx := m.ctx
	return func() tea.Msg {
		result, err := manager.Convert(ctx, entry)
		if err != nil {
			return ConvertDoneMsg{Err: err}
		}

		path, err := manager.Save(ctx, result)
		if err != nil {
			return ConvertDoneMsg{Err: err}
		}

		return ConvertDoneMsg{Result: result, Path: path}
	}
}

// Run starts the TUI application.
func Run(settings *config.Settings) error {
	p := tea.NewProgram(NewModel(settings), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
