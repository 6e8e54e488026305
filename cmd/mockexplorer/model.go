package main

import (
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joshuapare/mockdiff/internal/recordstore"
	"github.com/joshuapare/mockdiff/internal/textview"
	"github.com/joshuapare/mockdiff/pkg/compare"
	"github.com/joshuapare/mockdiff/pkg/diffnode"
)

// Side selects which document the tree shows
type Side int

const (
	DatabaseSide Side = iota
	CandidateSide
)

func (s Side) String() string {
	if s == CandidateSide {
		return "candidate"
	}
	return "database"
}

// Layout constants
const (
	headerHeight = 2
	statusHeight = 1
	paneChrome   = 2 // border top and bottom
	minTreeRows  = 3
)

// writeClipboard is replaced in tests
var writeClipboard = clipboard.WriteAll

// Model is the main application model
type Model struct {
	store *recordstore.Store
	ctrl  *compare.Controller
	keys  KeyMap

	dbPath   string
	mockPath string

	side     Side
	onlyDiff bool
	cursor   int
	offset   int
	width    int
	height   int

	clone    cloneDialog
	showHelp bool

	// Status message for temporary feedback
	statusMessage string

	err error
}

// NewModel creates a new TUI model over an opened store
func NewModel(store *recordstore.Store, dbPath, mockPath string) Model {
	return Model{
		store:    store,
		ctrl:     store.NewController(),
		keys:     DefaultKeyMap(),
		dbPath:   dbPath,
		mockPath: mockPath,
		clone:    newCloneDialog(),
		width:    80,
		height:   24,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Messages

type clearStatusMsg struct{}

// nodes renders the forest for the current side
func (m Model) nodes() []*diffnode.Node {
	if m.side == CandidateSide {
		return m.ctrl.RenderCandidate()
	}
	return m.ctrl.RenderDatabase()
}

// rows returns the visible lines in display order
func (m Model) rows() []textview.Line {
	return textview.Lines(m.nodes(), textview.Options{
		Width:       m.width - 4,
		OnlyDiff:    m.onlyDiff,
		ShowCompare: true,
	})
}

// currentNode returns the node under the cursor, or nil
func (m Model) currentNode() *diffnode.Node {
	rows := m.rows()
	if m.cursor < 0 || m.cursor >= len(rows) {
		return nil
	}
	return rows[m.cursor].Node
}

// treeHeight is the number of rows the tree pane can show
func (m Model) treeHeight() int {
	return max(m.height-headerHeight-statusHeight-paneChrome, minTreeRows)
}

// moveCursor sets the cursor and scrolls it into view
func (m *Model) moveCursor(to int) {
	n := len(m.rows())
	if n == 0 {
		m.cursor, m.offset = 0, 0
		return
	}
	m.cursor = min(max(to, 0), n-1)

	h := m.treeHeight()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+h {
		m.offset = m.cursor - h + 1
	}
	m.offset = min(m.offset, max(n-h, 0))
}

// followPath keeps the cursor on path after the rows changed, or on its
// nearest visible ancestor
func (m *Model) followPath(path string) {
	rows := m.rows()
	best := -1
	for i, r := range rows {
		p := r.Node.Path.String()
		if p == path {
			best = i
			break
		}
		if strings.HasPrefix(path, p+".") {
			best = i
		}
	}
	if best < 0 {
		best = m.cursor
	}
	m.moveCursor(best)
}
