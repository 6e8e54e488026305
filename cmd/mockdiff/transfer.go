package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/mockdiff/pkg/diffnode"
	"github.com/joshuapare/mockdiff/pkg/tree"
)

func init() {
	rootCmd.AddCommand(newTransferCmd())
}

func newTransferCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transfer <path>...",
		Short: "Copy candidate values into the database",
		Long: `The transfer command writes the candidate value at each path into the
database document. Only paths flagged as modified can be transferred; the
rest of the record is left as is.

Paths are dot-separated and start with the store name. Records in an
array are addressed by their id.

With --staged every transfer is held as a pending update and all of them
are written in a single commit at the end.

Example:
  mockdiff transfer orders.o1.amount
  mockdiff transfer orders.o1.amount orders.o1.payment.card --staged`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransfer(cmd.Context(), args)
		},
	}
	return cmd
}

func runTransfer(ctx context.Context, args []string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	s, err := openSession()
	if err != nil {
		return err
	}

	for _, arg := range args {
		path := tree.ParsePath(arg)
		node := diffnode.Find(s.ctrl.RenderDatabase(), path)
		if node == nil {
			return fmt.Errorf("path not found: %s", arg)
		}
		if err := node.Transfer(ctx, s.ctrl); err != nil {
			return err
		}
		printVerbose("Transferred %s = %s\n", arg, tree.Display(node.Compare))
	}

	if s.cfg.Staged {
		n, err := s.store.Commit(ctx)
		if err != nil {
			return err
		}
		printInfo("Committed %d staged update(s) to %s\n", n, s.cfg.Database)
		return nil
	}

	printInfo("Transferred %d value(s) to %s\n", len(args), s.cfg.Database)
	return nil
}
