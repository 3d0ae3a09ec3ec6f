package tui

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/nightshift/internal/mediafx"
)

const gaugeWidth = 24

// FilterKeyMap defines the key bindings of the filter lab.
type FilterKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Less      key.Binding
	More      key.Binding
	LessFast  key.Binding
	MoreFast  key.Binding
	Preset    key.Binding
	Mode      key.Binding
	Randomize key.Binding
	Reset     key.Binding
	Done      key.Binding
	Back      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k FilterKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Less, k.More, k.Preset, k.Mode, k.Randomize, k.Reset, k.Done, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k FilterKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Less, k.More, k.LessFast, k.MoreFast},
		{k.Preset, k.Mode, k.Randomize, k.Reset},
		{k.Done, k.Back, k.Quit},
	}
}

// DefaultFilterKeyMap returns default key bindings.
func DefaultFilterKeyMap() FilterKeyMap {
	return FilterKeyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up/k", "prev slider")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down/j", "next slider")),
		Less:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("left/h", "decrease")),
		More:      key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("right/l", "increase")),
		LessFast:  key.NewBinding(key.WithKeys("shift+left", "H"), key.WithHelp("H", "decrease x10")),
		MoreFast:  key.NewBinding(key.WithKeys("shift+right", "L"), key.WithHelp("L", "increase x10")),
		Preset:    key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "preset")),
		Mode:      key.NewBinding(key.WithKeys("tab", "m"), key.WithHelp("tab", "image/video")),
		Randomize: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "randomize")),
		Reset:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Done:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "done")),
		Back:      key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// FilterModel is an interactive slider editor over a mediafx.Editor.
type FilterModel struct {
	editors    map[mediafx.Mode]*mediafx.Editor
	mode       mediafx.Mode
	cursor     int
	rng        *rand.Rand
	keys       FilterKeyMap
	help       help.Model
	width      int
	height     int
	status     string
	done       bool
	quitting   bool
	backToMenu bool
}

// NewFilterModel creates a filter lab starting in the given mode.
// Custom presets are offered to the editor of the mode they declare.
func NewFilterModel(mode mediafx.Mode, seed int64, custom []mediafx.Preset) FilterModel {
	editors := map[mediafx.Mode]*mediafx.Editor{
		mediafx.ModeImage: mediafx.NewEditor(mediafx.ModeImage),
		mediafx.ModeVideo: mediafx.NewEditor(mediafx.ModeVideo),
	}
	for _, e := range editors {
		e.AddPresets(custom...)
	}

	return FilterModel{
		editors: editors,
		mode:    mode,
		rng:     rand.New(rand.NewSource(seed)),
		keys:    DefaultFilterKeyMap(),
		help:    help.New(),
	}
}

// Editor returns the editor of the active mode.
func (m FilterModel) Editor() *mediafx.Editor {
	return m.editors[m.mode]
}

// Init initializes the filter lab.
func (m FilterModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the filter lab.
func (m FilterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m FilterModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	e := m.Editor()
	params := mediafx.Params(m.mode)

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		m.backToMenu = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Done):
		m.done = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.cursor = (m.cursor + len(params) - 1) % len(params)

	case key.Matches(msg, m.keys.Down):
		m.cursor = (m.cursor + 1) % len(params)

	case key.Matches(msg, m.keys.Less):
		m.nudge(params[m.cursor], -1)

	case key.Matches(msg, m.keys.More):
		m.nudge(params[m.cursor], 1)

	case key.Matches(msg, m.keys.LessFast):
		m.nudge(params[m.cursor], -10)

	case key.Matches(msg, m.keys.MoreFast):
		m.nudge(params[m.cursor], 10)

	case key.Matches(msg, m.keys.Preset):
		presets := e.Presets()
		i := int(msg.String()[0] - '1')
		if i < len(presets) {
			if err := e.ApplyPreset(presets[i].Name, m.rng); err != nil {
				m.status = err.Error()
			} else {
				m.status = "Applied " + presets[i].Name
			}
		}

	case key.Matches(msg, m.keys.Mode):
		m.mode = 1 - m.mode
		m.cursor = min(m.cursor, len(mediafx.Params(m.mode))-1)
		m.status = "Mode: " + m.mode.String()

	case key.Matches(msg, m.keys.Randomize):
		e.Randomize(m.rng)
		m.status = "Randomized"

	case key.Matches(msg, m.keys.Reset):
		e.Reset()
		m.status = "Reset"
	}

	return m, nil
}

// nudge moves a slider by a number of steps.
func (m FilterModel) nudge(p mediafx.Param, steps float64) {
	e := m.Editor()
	v := math.Round((e.Value(p.Key)+steps*p.Step)*100) / 100
	//nolint:errcheck // p comes from the editor's own slider list
	e.Set(p.Key, v)
}

var (
	labTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	labActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	labGaugeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

// View renders the filter lab.
func (m FilterModel) View() string {
	if m.quitting || m.backToMenu || m.done {
		return ""
	}

	e := m.Editor()
	var b strings.Builder

	b.WriteString(labTitleStyle.Render(fmt.Sprintf("MEDIA FILTER LAB - %s", strings.ToUpper(m.mode.String()))))
	b.WriteString("\n\n")

	for i, pv := range e.Values() {
		line := fmt.Sprintf("%-15s %s %8s", pv.Label, labGaugeStyle.Render(gauge(pv, gaugeWidth)), mediafx.FormatValue(pv))
		if i == m.cursor {
			b.WriteString(labActiveStyle.Render("> ") + line)
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	b.WriteString("\nQuick effects: ")
	for i, p := range e.Presets() {
		if i >= 9 {
			break
		}
		fmt.Fprintf(&b, "[%d] %s  ", i+1, p.Name)
	}
	b.WriteString("\n\n")

	b.WriteString(boxStyle.Render(e.Filter()))
	b.WriteString("\n")
	switch m.mode {
	case mediafx.ModeImage:
		fmt.Fprintf(&b, "rotate: %gdeg\n", e.Rotation())
	case mediafx.ModeVideo:
		fmt.Fprintf(&b, "playback rate: %gx\n", e.PlaybackRate())
	}

	if m.status != "" {
		b.WriteString(menuHintStyle.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(menuHintStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// gauge draws a fixed-width bar for a slider value.
func gauge(pv mediafx.ParamValue, width int) string {
	span := pv.Max - pv.Min
	filled := 0
	if span > 0 {
		filled = int(math.Round((pv.Value - pv.Min) / span * float64(width)))
	}
	filled = max(0, min(filled, width))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// IsQuitting returns true if user requested to quit entirely.
func (m FilterModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back.
func (m FilterModel) BackToMenu() bool {
	return m.backToMenu || m.done
}

// Done returns true if the user confirmed the current values.
func (m FilterModel) Done() bool {
	return m.done
}

// RunFilterLab runs the filter lab and returns the editor of the mode
// active on exit, or nil if the user did not confirm.
func RunFilterLab(mode mediafx.Mode, seed int64, custom []mediafx.Preset) (*mediafx.Editor, error) {
	p := tea.NewProgram(
		NewFilterModel(mode, seed, custom),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(FilterModel)
	if !ok || !m.Done() {
		return nil, nil
	}
	return m.Editor(), nil
}
