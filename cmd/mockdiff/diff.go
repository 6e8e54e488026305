package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/mockdiff/internal/recordstore"
	"github.com/joshuapare/mockdiff/internal/textview"
	"github.com/joshuapare/mockdiff/pkg/diffnode"
	"github.com/joshuapare/mockdiff/pkg/tree"
)

var (
	diffFormat   string
	diffOnlyDiff bool
	diffSide     string
	diffWidth    int
)

func init() {
	cmd := newDiffCmd()
	cmd.Flags().StringVar(&diffFormat, "format", "text", "Output format (text, json, patch)")
	cmd.Flags().BoolVar(&diffOnlyDiff, "only-diff", false, "Show only differing nodes and their parents")
	cmd.Flags().StringVar(&diffSide, "side", "database", "Side to render (database, candidate)")
	cmd.Flags().IntVar(&diffWidth, "width", 0, "Truncate lines to this many cells (0 = no limit)")
	rootCmd.AddCommand(cmd)
}

func newDiffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff",
		Short: "Show differences between the candidate and the database",
		Long: `The diff command renders one side of the record pair as a tree with
every differing value flagged against the other side.

Markers:
  ~  value differs from the other side
  +  record has no counterpart on the other side

Example:
  mockdiff diff --db db.json --mock mock.json --store orders
  mockdiff diff --only-diff
  mockdiff diff --side candidate
  mockdiff diff --format patch`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff()
		},
	}
	return cmd
}

// DiffEntry is one node in JSON output.
type DiffEntry struct {
	Path    string `json:"path"`
	Status  string `json:"status"`
	Value   string `json:"value"`
	Compare string `json:"compare,omitempty"`
	Pending bool   `json:"pending,omitempty"`
}

// DiffReport is the JSON form of a diff run.
type DiffReport struct {
	Store     string      `json:"store"`
	Side      string      `json:"side"`
	Entries   []DiffEntry `json:"entries"`
	Modified  int         `json:"modified"`
	Unmatched int         `json:"unmatched"`
}

func runDiff() error {
	s, err := openSession()
	if err != nil {
		return err
	}

	format := diffFormat
	if jsonOut && format == "text" {
		format = "json"
	}

	if format == "patch" {
		ops, err := recordstore.Diff(s.store.Database(), s.store.Candidate())
		if err != nil {
			return err
		}
		return printJSON(ops)
	}

	var nodes []*diffnode.Node
	switch diffSide {
	case "database":
		nodes = s.ctrl.RenderDatabase()
	case "candidate":
		nodes = s.ctrl.RenderCandidate()
	default:
		return fmt.Errorf("unknown side: %s", diffSide)
	}
	summary := diffnode.Summarize(nodes)

	switch format {
	case "text":
		printDiffText(s.cfg.Store, nodes, summary)
		return nil
	case "json":
		return printJSON(buildReport(s.cfg.Store, nodes, summary))
	default:
		return fmt.Errorf("unknown format: %s", diffFormat)
	}
}

func printDiffText(store string, nodes []*diffnode.Node, summary diffnode.Summary) {
	if len(nodes) == 0 {
		printInfo("%s: no %s record\n", store, diffSide)
		return
	}

	out := textview.Render(nodes, textview.Options{
		Width:       diffWidth,
		OnlyDiff:    diffOnlyDiff,
		ShowCompare: true,
	})
	if !quiet {
		fmt.Fprint(os.Stdout, out)
	}

	if summary.Modified == 0 && summary.Unmatched == 0 {
		printInfo("\nNo differences\n")
		return
	}
	printInfo("\n%d modified, %d unmatched\n", summary.Modified, summary.Unmatched)
}

func buildReport(store string, nodes []*diffnode.Node, summary diffnode.Summary) DiffReport {
	report := DiffReport{
		Store:     store,
		Side:      diffSide,
		Entries:   make([]DiffEntry, 0),
		Modified:  summary.Modified,
		Unmatched: summary.Unmatched,
	}
	for _, n := range diffnode.Flatten(nodes) {
		if diffOnlyDiff && !n.Different() && !n.HasPending {
			continue
		}
		entry := DiffEntry{
			Path:    n.Path.String(),
			Status:  n.Status.String(),
			Value:   n.Display,
			Pending: n.HasPending,
		}
		if n.Status == diffnode.Modified {
			entry.Compare = tree.Display(n.Compare)
		}
		report.Entries = append(report.Entries, entry)
	}
	return report
}
