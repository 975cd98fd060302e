package branches

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bjulian5/braid/internal/braid"
	"github.com/bjulian5/braid/internal/common"
	"github.com/bjulian5/braid/internal/git"
	"github.com/bjulian5/braid/internal/ui"
)

// Command lists branches with their graph-derived state
type Command struct {
	// Flags
	Refresh bool

	// Clients (can be mocked in tests)
	Git   *git.Client
	Braid *braid.Client
}

// Register registers the command with cobra
func (c *Command) Register(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "branches",
		Short: "List branches and their states",
		Long: `List every branch with its state, head commit, and commit count.

States come from the graph: the checked-out branch is current, a branch
that was merged somewhere is merged, everything else is active.

Example:
  braid branches`,
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

	parent.AddCommand(cmd)
}

// Run executes the command
func (c *Command) Run(ctx context.Context) error {
	g, err := c.Braid.BuildBranchGraph(c.Refresh)
	if err != nil {
		return fmt.Errorf("failed to build branch graph: %w", err)
	}

	if len(g.Branches) == 0 {
		ui.Info("No branches yet")
		return nil
	}

	t := ui.NewBraidTable()
	t.Headers("BRANCH", "STATE", "HEAD", "COMMITS")
	for _, name := range g.Branches {
		status := ui.GetBranchStatus(name, g)
		t.Row(
			ui.Truncate(name, ui.Display.MaxBranchNameLength),
			status.Render(),
			ui.ShortHash(g.BranchHead(name)),
			strconv.Itoa(g.BranchCommits(name)),
		)
	}

	ui.Print(t.Render())
	return nil
}
