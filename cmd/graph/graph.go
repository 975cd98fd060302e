package graph

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bjulian5/braid/internal/braid"
	"github.com/bjulian5/braid/internal/common"
	"github.com/bjulian5/braid/internal/git"
	"github.com/bjulian5/braid/internal/ui"
)

// Command renders the repository's branch graph
type Command struct {
	// Flags
	Refresh bool
	JSON    bool

	// Clients (can be mocked in tests)
	Git   *git.Client
	Braid *braid.Client
}

// Register registers the command with cobra
func (c *Command) Register(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Show the branch graph",
		Long: `Show how the repository's branches weave together.

Each branch is listed with its state and the merges that landed on it.
Use --json to dump the full graph (commits, memberships, links) for
other tools.

Example:
  braid graph
  braid graph --refresh
  braid graph --json | jq .merges`,
		Args: cobra.NoArgs,
		PreRunE: func(cobraCmd *cobra.Command, args []string) error {
			var err error
			c.Git, c.Braid, err = common.InitClients()
			return err
		},
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			return c.Run(cobraCmd.Context())
		},
	}

	cmd.Flags().BoolVar(&c.Refresh, "refresh", false, "Rebuild the graph instead of using the cached copy")
	cmd.Flags().BoolVar(&c.JSON, "json", false, "Print the graph as JSON")

	parent.AddCommand(cmd)
}

// Run executes the command
func (c *Command) Run(ctx context.Context) error {
	g, err := c.Braid.BuildBranchGraph(c.Refresh)
	if err != nil {
		return fmt.Errorf("failed to build branch graph: %w", err)
	}

	if c.JSON {
		data, err := json.MarshalIndent(g, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode graph: %w", err)
		}
		ui.Print(string(data))
		return nil
	}

	if len(g.Branches) == 0 {
		ui.Info("No branches yet")
		return nil
	}

	ui.Print(ui.RenderBranchTree(g))
	ui.Print("")
	ui.Print(ui.FormatBranchSummary(g))

	return nil
}
