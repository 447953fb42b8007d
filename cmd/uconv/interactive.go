package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/unicode-conv/codec"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// inspectModel shows the UTF-8 bytes and UTF-16 code units of the typed text
// live, updating on every keystroke.
type inspectModel struct {
	err   error
	input textinput.Model
	bytes []byte
	units []uint16
}

func newInspectModel() *inspectModel {
	ti := textinput.New()
	ti.Placeholder = "Type text to inspect"
	ti.Focus()
	return &inspectModel{input: ti}
}

func (m *inspectModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.refresh()
	return m, cmd
}

func (m *inspectModel) refresh() {
	m.bytes = []byte(m.input.Value())
	m.units, m.err = codec.ToUTF16(m.bytes)
}

func (m *inspectModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("uconv inspector"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render(fmt.Sprintf("UTF-8  (%d bytes): ", len(m.bytes))))
	b.WriteString(valueStyle.Render(hexBytes(m.bytes)))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
	} else {
		b.WriteString(labelStyle.Render(fmt.Sprintf("UTF-16 (%d units): ", len(m.units))))
		b.WriteString(valueStyle.Render(hexUnits(m.units)))
	}
	b.WriteString("\n\n")

	b.WriteString(helpStyle.Render("esc/ctrl+c: quit"))
	b.WriteString("\n")
	return b.String()
}

func hexBytes(data []byte) string {
	if len(data) == 0 {
		return "-"
	}
	return fmt.Sprintf("% X", data)
}

func hexUnits(units []uint16) string {
	if len(units) == 0 {
		return "-"
	}
	parts := make([]string, len(units))
	for i, u := range units {
		parts[i] = fmt.Sprintf("%04X", u)
	}
	return strings.Join(parts, " ")
}

func runInteractive() error {
	p := tea.NewProgram(newInspectModel())
	_, err := p.Run()
	return err
}
