package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/joshuapare/mockdiff/internal/logger"
	"github.com/joshuapare/mockdiff/pkg/compare"
	"github.com/joshuapare/mockdiff/pkg/pathset"
	"github.com/joshuapare/mockdiff/pkg/tree"
)

func (m *Model) toggleCurrent() {
	n := m.currentNode()
	if n == nil || !n.Expandable {
		return
	}
	path := n.Path.String()
	m.ctrl.Toggle(path)
	m.followPath(path)
}

func (m *Model) expandCurrent() {
	n := m.currentNode()
	if n == nil || !n.Expandable || n.Expanded {
		return
	}
	m.toggleCurrent()
}

// collapseCurrent collapses an expanded node, or moves to the parent row
func (m *Model) collapseCurrent() {
	n := m.currentNode()
	if n == nil {
		return
	}
	if n.Expanded {
		m.toggleCurrent()
		return
	}
	if n.Depth() > 0 {
		m.followPath(n.Path.Parent().String())
	}
}

// expandAll opens every object on either side
func (m *Model) expandAll() {
	path := m.cursorPath()
	m.ctrl.SetExpanded(pathset.Seed(m.ctrl.StoreName(), m.ctrl.Database(), m.ctrl.Candidate()))
	m.followPath(path)
}

// expandUnder adds the seeded paths at and below root, leaving the rest of
// the expansion state alone.
func (m *Model) expandUnder(root string) {
	seeded := pathset.Seed(m.ctrl.StoreName(), m.ctrl.Database())
	var add []string
	for _, p := range seeded.Paths() {
		if p == root || strings.HasPrefix(p, root+".") {
			add = append(add, p)
		}
	}
	m.ctrl.SetExpanded(m.ctrl.Expanded().With(add...))
}

// collapseAll closes everything below the store root
func (m *Model) collapseAll() {
	path := m.cursorPath()
	m.ctrl.SetExpanded(pathset.New(m.ctrl.StoreName()))
	m.followPath(path)
}

func (m *Model) switchSide() {
	path := m.cursorPath()
	if m.side == DatabaseSide {
		m.side = CandidateSide
	} else {
		m.side = DatabaseSide
	}
	m.followPath(path)
}

func (m *Model) toggleOnlyDiff() {
	path := m.cursorPath()
	m.onlyDiff = !m.onlyDiff
	m.followPath(path)
}

func (m Model) cursorPath() string {
	if n := m.currentNode(); n != nil {
		return n.Path.String()
	}
	return ""
}

// transferCurrent copies the candidate value under the cursor into the
// database, or stages it when the store is in staged mode
func (m *Model) transferCurrent() string {
	n := m.currentNode()
	if n == nil || !n.CanTransfer {
		return "Nothing to transfer here"
	}
	path := n.Path.String()
	if err := n.Transfer(context.Background(), m.ctrl); err != nil {
		logger.Warn("transfer failed", "path", path, "error", err)
		return fmt.Sprintf("Transfer failed: %v", err)
	}
	m.followPath(path)
	if m.store.Staged() {
		return fmt.Sprintf("Staged %s (w to write)", path)
	}
	return fmt.Sprintf("Transferred %s", path)
}

func (m *Model) commit() string {
	if m.ctrl.Pending().Len() == 0 {
		return "No staged updates"
	}
	path := m.cursorPath()
	n, err := m.store.Commit(context.Background())
	if err != nil {
		logger.Warn("commit failed", "error", err)
		return fmt.Sprintf("Commit failed: %v", err)
	}
	m.followPath(path)
	return fmt.Sprintf("Wrote %d staged update(s)", n)
}

func (m *Model) discard() string {
	count := m.ctrl.Pending().Len()
	if count == 0 {
		return "No staged updates"
	}
	m.store.Discard()
	m.moveCursor(m.cursor)
	return fmt.Sprintf("Discarded %d staged update(s)", count)
}

func (m *Model) approve() string {
	if !m.ctrl.CanApprove() {
		return "Nothing to approve: no database record"
	}
	path := m.cursorPath()
	if err := m.ctrl.Approve(context.Background()); err != nil {
		return fmt.Sprintf("Approve failed: %v", err)
	}
	m.followPath(path)
	return "Candidate approved"
}

func (m *Model) copyPath() string {
	path := m.cursorPath()
	if path == "" {
		return ""
	}
	if err := writeClipboard(path); err != nil {
		logger.Warn("clipboard write failed", "error", err)
		return fmt.Sprintf("Copy failed: %v", err)
	}
	return fmt.Sprintf("Copied %s", path)
}

func (m *Model) refresh() string {
	path := m.cursorPath()
	if err := m.store.DatabaseRecordChanged(context.Background(), m.ctrl.StoreName()); err != nil {
		return fmt.Sprintf("Reload failed: %v", err)
	}
	m.followPath(path)
	return "Reloaded " + m.dbPath
}

// openClone shows the clone dialog when there is no database record
func (m Model) openClone() (tea.Model, tea.Cmd) {
	if !m.ctrl.CanClone() {
		return m.withStatus("Clone needs a candidate and no database record")
	}
	m.ctrl.OpenClone()
	cmd := m.clone.reset()
	return m, cmd
}

// submitClone validates the typed id and asks the store to create it. The
// dialog stays open with the message on failure.
func (m Model) submitClone() (tea.Model, tea.Cmd) {
	id := m.clone.Value()
	err := m.ctrl.Clone(context.Background(), id)

	var verr *compare.ValidationError
	switch {
	case errors.As(err, &verr):
		m.clone.message = verr.Error()
		return m, nil
	case err != nil:
		m.clone.message = m.ctrl.CloneError()
		return m, nil
	}

	m.clone.input.Blur()
	m.side = DatabaseSide
	created := tree.NewPath(m.ctrl.StoreName(), id).String()
	m.expandUnder(created)
	m.followPath(created)
	return m.withStatus(fmt.Sprintf("Created %s.%s", m.ctrl.StoreName(), id))
}
