package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/joshuapare/mockdiff/internal/recordstore"
)

func init() {
	rootCmd.AddCommand(newCloneCmd())
}

func newCloneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clone [new-id]",
		Short: "Create the candidate record in the database",
		Long: `The clone command creates a database record from the candidate when the
database has no record yet. The new id may contain letters, digits, '_'
and '-'. When omitted a random id is generated.

Example:
  mockdiff clone order_42
  mockdiff clone`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := ""
			if len(args) == 1 {
				id = args[0]
			}
			return runClone(cmd.Context(), id)
		},
	}
	return cmd
}

func runClone(ctx context.Context, newID string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	s, err := openSession()
	if err != nil {
		return err
	}
	if !s.ctrl.CanClone() {
		return errors.New("clone needs a candidate and no database record")
	}

	if newID == "" {
		newID = recordstore.GenerateStableKey()
		printVerbose("Generated id %s\n", newID)
	}

	s.ctrl.OpenClone()
	if err := s.ctrl.Clone(ctx, newID); err != nil {
		return err
	}

	if jsonOut {
		return printJSON(map[string]string{"store": s.cfg.Store, "id": newID})
	}
	printInfo("Created %s.%s in %s\n", s.cfg.Store, newID, s.cfg.Database)
	return nil
}
