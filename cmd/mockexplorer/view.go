package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/joshuapare/mockdiff/pkg/diffnode"
)

// View renders the entire UI
func (m Model) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}

	if m.showHelp {
		return m.renderHelpOverlay()
	}

	if m.ctrl.CloneOpen() {
		// Rebuilt every render so the background sees the latest model
		cloneOverlay := overlay.New(
			&m.clone,
			NewMainViewModel(&m),
			overlay.Center,
			overlay.Center,
			0,
			0,
		)
		return cloneOverlay.View()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(),
		m.renderContent(),
		m.renderStatus(),
	)
}

// renderHeader renders the title, the side being shown and the cursor path
func (m Model) renderHeader() string {
	side := sideStyle.Render(strings.ToUpper(m.side.String()))
	source := m.dbPath
	if m.side == CandidateSide {
		source = m.mockPath
	}

	parts := []string{
		headerStyle.Render("Mock Diff Explorer"),
		" ",
		side,
		"  ",
		pathStyle.Render(source),
	}
	if m.side == CandidateSide {
		parts = append(parts, "  ", readOnlyStyle.Render("read-only"))
	}
	if m.store.Staged() {
		parts = append(parts, "  ", readOnlyStyle.Render("staged"))
	}
	header := lipgloss.JoinHorizontal(lipgloss.Top, parts...)

	current := "Path: -"
	if n := m.currentNode(); n != nil {
		current = "Path: " + n.Path.String()
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, pathStyle.Render(current))
}

// renderContent renders the visible slice of the tree
func (m Model) renderContent() string {
	rows := m.rows()
	h := m.treeHeight()

	var body string
	switch {
	case len(rows) == 0 && len(m.nodes()) == 0:
		body = readOnlyStyle.Render(fmt.Sprintf("No %s record.", m.side))
		if m.side == DatabaseSide && m.ctrl.CanClone() {
			body += "\n" + readOnlyStyle.Render("Press n to create it from the candidate.")
		}
	case len(rows) == 0:
		body = readOnlyStyle.Render("No differences.")
	default:
		end := min(m.offset+h, len(rows))
		lines := make([]string, 0, end-m.offset)
		for i := m.offset; i < end; i++ {
			style := rowStyle(rows[i].Node)
			if i == m.cursor {
				style = selectedStyle
			}
			lines = append(lines, style.Render(rows[i].Text))
		}
		body = strings.Join(lines, "\n")
	}

	return paneStyle.
		Width(max(m.width-2, 10)).
		Height(h).
		Render(body)
}

// renderStatus renders the counts line and any transient message
func (m Model) renderStatus() string {
	summary := diffnode.Summarize(m.nodes())
	counts := fmt.Sprintf("%s modified  %s unmatched  %s staged",
		statusCountStyle.Render(fmt.Sprint(summary.Modified)),
		statusCountStyle.Render(fmt.Sprint(summary.Unmatched)),
		statusCountStyle.Render(fmt.Sprint(m.ctrl.Pending().Len())),
	)

	msg := m.statusMessage
	if msg == "" {
		msg = "? help  q quit"
	}
	return statusStyle.
		Width(m.width).
		Render(counts + "  │  " + msg)
}

// renderHelpOverlay renders the keyboard shortcut list
func (m Model) renderHelpOverlay() string {
	var b strings.Builder
	b.WriteString(helpTitleStyle.Render("Keyboard Shortcuts"))
	b.WriteString("\n\n")

	for _, section := range m.keys.helpSections() {
		b.WriteString(modalTitleStyle.Render(section.title))
		b.WriteString("\n")
		for _, binding := range section.bindings {
			h := binding.Help()
			b.WriteString(helpKeyStyle.Render(h.Key))
			b.WriteString("  ")
			b.WriteString(helpDescStyle.Render(h.Desc))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	b.WriteString(readOnlyStyle.Render("Press ? or esc to close"))

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modalStyle.Render(b.String()),
	)
}
