package main

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
)

var pathsDump bool

func init() {
	cmd := newPathsCmd()
	cmd.Flags().BoolVar(&pathsDump, "dump", false, "Dump the rendered node tree")
	rootCmd.AddCommand(cmd)
}

func newPathsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "paths",
		Short: "List the initially expanded paths",
		Long: `The paths command prints every path that starts expanded: the store
root, each record, and every nested object on either side.

Example:
  mockdiff paths
  mockdiff paths --dump`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPaths()
		},
	}
	return cmd
}

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

func runPaths() error {
	s, err := openSession()
	if err != nil {
		return err
	}

	paths := s.ctrl.Expanded().Paths()
	if jsonOut {
		return printJSON(paths)
	}
	for _, p := range paths {
		fmt.Fprintln(os.Stdout, p)
	}

	if pathsDump {
		dumpConfig.Fdump(os.Stdout, s.ctrl.RenderDatabase())
	}
	return nil
}
