package show

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bjulian5/braid/internal/braid"
	"github.com/bjulian5/braid/internal/common"
	"github.com/bjulian5/braid/internal/git"
	"github.com/bjulian5/braid/internal/ui"
)

// Command shows details of a branch
type Command struct {
	// Arguments
	BranchName string

	// Flags
	Refresh bool

	// Clients (can be mocked in tests)
	Git   *git.Client
	Braid *braid.Client
}

// Register registers the command with cobra
func (c *Command) Register(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "show [branch]",
		Short: "Show details of a branch",
		Long: `Show a branch's state, head commit, and every merge involving it.

With no argument, opens a fuzzy finder over all branches.

Example:
  braid show
  braid show feature/auth`,
		Args: cobra.MaximumNArgs(1),
		PreRunE: func(cobraCmd *cobra.Command, args []string) error {
			var err error
			c.Git, c.Braid, err = common.InitClients()
			return err
		},
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				c.BranchName = args[0]
			}
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

	name := c.BranchName
	if name == "" {
		name, err = ui.SelectBranch(g)
		if err != nil {
			return fmt.Errorf("failed to select branch: %w", err)
		}
		if name == "" {
			// Finder cancelled.
			return nil
		}
	}

	found := false
	for _, branch := range g.Branches {
		if branch == name {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("branch %q not found", name)
	}

	ui.Print(ui.RenderBox(name, ui.FormatBranchPreview(name, g)))
	return nil
}
