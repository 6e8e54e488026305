package diffnode

import (
	"context"
	"errors"
	"fmt"

	"github.com/joshuapare/mockdiff/pkg/pathset"
	"github.com/joshuapare/mockdiff/pkg/tree"
)

// ErrNotTransferable is returned by Node.Transfer when the node does not
// offer a transfer.
var ErrNotTransferable = errors.New("diffnode: node has no transfer")

// PendingLookup is a read-only view of staged values keyed by canonical path.
type PendingLookup interface {
	Get(path string) (any, bool)
}

// Transferer receives transfer requests from nodes.
type Transferer interface {
	RequestTransfer(ctx context.Context, path tree.Path, value any) error
}

// Options carries the externally owned state a render pass reads.
type Options struct {
	Expanded pathset.Set
	Pending  PendingLookup // may be nil
	ReadOnly bool          // suppresses transfers in the whole subtree
}

func (o Options) pending(path string) (any, bool) {
	if o.Pending == nil {
		return nil, false
	}
	return o.Pending.Get(path)
}

// Node is one rendered (key, value) position.
type Node struct {
	Key     string
	Path    tree.Path
	Value   any // primary value, or the pending value when one is staged
	Compare any // tree.Undefined when there is nothing to compare against
	Display string
	Status  Status

	HasPending  bool
	Expandable  bool
	Expanded    bool
	CanTransfer bool
	Children    []*Node
}

// Different reports whether the node is flagged against the other side.
func (n *Node) Different() bool {
	return n.Status != Unchanged
}

// Depth returns how far below the store root the node sits.
func (n *Node) Depth() int {
	if len(n.Path) < 2 {
		return 0
	}
	return len(n.Path) - 2
}

// Transfer sends the comparison value at this node's path to t.
func (n *Node) Transfer(ctx context.Context, t Transferer) error {
	if !n.CanTransfer {
		return fmt.Errorf("%w: %s", ErrNotTransferable, n.Path)
	}
	return t.RequestTransfer(ctx, n.Path, n.Compare)
}

// Render builds the node for value at path, comparing against compare.
// Pass tree.Undefined for compare when the other side has nothing there.
// Below a staged path the children come from the staged value and offer no
// transfer.
func Render(key string, path tree.Path, value, compare any, opts Options) *Node {
	return render(key, path, value, compare, opts, false)
}

func render(key string, path tree.Path, value, compare any, opts Options, underStaged bool) *Node {
	canonical := path.String()
	n := &Node{
		Key:     key,
		Path:    path,
		Value:   value,
		Compare: compare,
	}

	if tree.Differs(value, compare) {
		n.Status = Modified
	}

	if staged, ok := opts.pending(canonical); ok {
		n.HasPending = true
		n.Value = staged
	}
	n.Display = tree.Display(n.Value)

	staged := underStaged || n.HasPending
	n.CanTransfer = n.Status == Modified && !opts.ReadOnly && !staged

	obj, isObj := tree.AsObject(n.Value)
	n.Expandable = isObj && len(obj) > 0
	n.Expanded = n.Expandable && opts.Expanded.Contains(canonical)
	if !n.Expanded {
		return n
	}

	n.Children = make([]*Node, 0, len(obj))
	for _, k := range tree.SortedKeys(obj) {
		n.Children = append(n.Children, render(k, path.Child(k), obj[k], tree.Get(compare, k), opts, staged))
	}
	return n
}
