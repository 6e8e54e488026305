package main

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/joshuapare/mockdiff/internal/recordstore"
	"github.com/joshuapare/mockdiff/pkg/diffnode"
)

// TestHelper provides utilities for testing TUI components
type TestHelper struct {
	t      *testing.T
	model  Model
	dbPath string
}

// NewTestHelper writes the two documents to a temp dir and opens a model
// over them. An empty db leaves the database file absent.
func NewTestHelper(t *testing.T, db, mock string, staged bool) *TestHelper {
	t.Helper()
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "db.json")
	mockPath := filepath.Join(dir, "mock.json")
	if db != "" {
		if err := os.WriteFile(dbPath, []byte(db), 0644); err != nil {
			t.Fatalf("failed to write database: %v", err)
		}
	}
	if err := os.WriteFile(mockPath, []byte(mock), 0644); err != nil {
		t.Fatalf("failed to write mock: %v", err)
	}

	store, err := recordstore.Open(recordstore.Options{
		Store:     "orders",
		Database:  dbPath,
		Candidate: mockPath,
		Staged:    staged,
	})
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}

	h := &TestHelper{t: t, model: NewModel(store, dbPath, mockPath), dbPath: dbPath}
	return h.SendWindowSize(100, 30)
}

// SendKey simulates a key press; returned commands are not run
func (h *TestHelper) SendKey(keyType tea.KeyType) *TestHelper {
	updated, _ := h.model.Update(tea.KeyMsg{Type: keyType})
	h.model = updated.(Model)
	return h
}

// SendKeyRune simulates a character key press
func (h *TestHelper) SendKeyRune(r rune) *TestHelper {
	updated, _ := h.model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	h.model = updated.(Model)
	return h
}

// TypeString sends each rune of s
func (h *TestHelper) TypeString(s string) *TestHelper {
	for _, r := range s {
		h.SendKeyRune(r)
	}
	return h
}

// SendWindowSize simulates a window resize
func (h *TestHelper) SendWindowSize(width, height int) *TestHelper {
	updated, _ := h.model.Update(tea.WindowSizeMsg{Width: width, Height: height})
	h.model = updated.(Model)
	return h
}

// MoveTo puts the cursor on the row with the given path
func (h *TestHelper) MoveTo(path string) *TestHelper {
	h.t.Helper()
	for i, r := range h.model.rows() {
		if r.Node.Path.String() == path {
			h.model.moveCursor(i)
			return h
		}
	}
	h.t.Fatalf("no visible row %q in %v", path, h.RowPaths())
	return h
}

// GetModel returns the current model
func (h *TestHelper) GetModel() Model {
	return h.model
}

// GetView returns the rendered view
func (h *TestHelper) GetView() string {
	return h.model.View()
}

// RowPaths returns the canonical path of every visible row
func (h *TestHelper) RowPaths() []string {
	rows := h.model.rows()
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Node.Path.String()
	}
	return out
}

// CurrentNode returns the node under the cursor
func (h *TestHelper) CurrentNode() *diffnode.Node {
	return h.model.currentNode()
}
