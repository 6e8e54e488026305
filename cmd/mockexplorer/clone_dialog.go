package main

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// cloneDialog asks for the id of the record created from the candidate
type cloneDialog struct {
	input   textinput.Model
	message string // validation or host error shown under the input
}

func newCloneDialog() cloneDialog {
	ti := textinput.New()
	ti.Placeholder = "new-record-id"
	ti.CharLimit = 64
	ti.Width = 32
	ti.Prompt = "id: "
	return cloneDialog{input: ti}
}

// reset clears the input and focuses it
func (d *cloneDialog) reset() tea.Cmd {
	d.input.Reset()
	d.message = ""
	return d.input.Focus()
}

// Value returns the trimmed id typed so far
func (d *cloneDialog) Value() string {
	return strings.TrimSpace(d.input.Value())
}

// Init implements tea.Model
func (d *cloneDialog) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (d *cloneDialog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	return d, cmd
}

// View implements tea.Model
func (d *cloneDialog) View() string {
	var b strings.Builder
	b.WriteString(modalTitleStyle.Render("Create database record"))
	b.WriteString("\n")
	b.WriteString(d.input.View())
	b.WriteString("\n")
	if d.message != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(d.message))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(readOnlyStyle.Render("enter create · esc cancel"))
	return modalStyle.Render(b.String())
}
