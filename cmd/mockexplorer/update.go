package main

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const statusTimeout = 3 * time.Second

// Update handles all messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.moveCursor(m.cursor)
		return m, nil

	case clearStatusMsg:
		m.statusMessage = ""
		return m, nil

	case tea.KeyMsg:
		if m.showHelp {
			if key.Matches(msg, m.keys.Esc) || key.Matches(msg, m.keys.Help) || key.Matches(msg, m.keys.Quit) {
				m.showHelp = false
			}
			return m, nil
		}

		if m.ctrl.CloneOpen() {
			return m.handleCloneInput(msg)
		}

		return m.handleKey(msg)
	}

	if m.ctrl.CloneOpen() {
		_, cmd := m.clone.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey dispatches a key in normal mode
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(m.cursor - 1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(m.cursor + 1)
	case key.Matches(msg, m.keys.PageUp):
		m.moveCursor(m.cursor - m.treeHeight())
	case key.Matches(msg, m.keys.PageDown):
		m.moveCursor(m.cursor + m.treeHeight())
	case key.Matches(msg, m.keys.Home):
		m.moveCursor(0)
	case key.Matches(msg, m.keys.End):
		m.moveCursor(len(m.rows()) - 1)

	case key.Matches(msg, m.keys.Enter):
		m.toggleCurrent()
	case key.Matches(msg, m.keys.Right):
		m.expandCurrent()
	case key.Matches(msg, m.keys.Left):
		m.collapseCurrent()
	case key.Matches(msg, m.keys.ExpandAll):
		m.expandAll()
	case key.Matches(msg, m.keys.CollapseAll):
		m.collapseAll()
	case key.Matches(msg, m.keys.SwitchSide):
		m.switchSide()
	case key.Matches(msg, m.keys.OnlyDiff):
		m.toggleOnlyDiff()

	case key.Matches(msg, m.keys.Transfer):
		return m.withStatus(m.transferCurrent())
	case key.Matches(msg, m.keys.Commit):
		return m.withStatus(m.commit())
	case key.Matches(msg, m.keys.Discard):
		return m.withStatus(m.discard())
	case key.Matches(msg, m.keys.Approve):
		return m.withStatus(m.approve())
	case key.Matches(msg, m.keys.Copy):
		return m.withStatus(m.copyPath())
	case key.Matches(msg, m.keys.Refresh):
		return m.withStatus(m.refresh())
	case key.Matches(msg, m.keys.Clone):
		return m.openClone()
	}
	return m, nil
}

// handleCloneInput routes keys while the clone dialog is open
func (m Model) handleCloneInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Esc):
		m.ctrl.CancelClone()
		m.clone.input.Blur()
		return m.withStatus("Clone cancelled")
	case key.Matches(msg, m.keys.Enter):
		return m.submitClone()
	}
	_, cmd := m.clone.Update(msg)
	return m, cmd
}

// withStatus shows a message and schedules its removal
func (m Model) withStatus(message string) (tea.Model, tea.Cmd) {
	m.statusMessage = message
	if message == "" {
		return m, nil
	}
	return m, tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
