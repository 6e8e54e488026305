package main

import (
	"context"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newApproveCmd())
}

func newApproveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "approve",
		Short: "Make the candidate authoritative",
		Long: `The approve command writes the whole candidate into the database.
Records are matched by id: matching records are replaced and new ones are
appended. A database backup is written first unless disabled in config.

Example:
  mockdiff approve --db db.json --mock mock.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApprove(cmd.Context())
		},
	}
	return cmd
}

func runApprove(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	s, err := openSession()
	if err != nil {
		return err
	}
	if err := s.ctrl.Approve(ctx); err != nil {
		return err
	}
	printInfo("Approved candidate into %s\n", s.cfg.Database)
	return nil
}
