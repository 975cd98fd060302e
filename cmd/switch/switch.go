package switchcmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bjulian5/braid/internal/braid"
	"github.com/bjulian5/braid/internal/common"
	"github.com/bjulian5/braid/internal/git"
	"github.com/bjulian5/braid/internal/ui"
)

// Command switches to a different branch
type Command struct {
	// Arguments
	BranchName string

	// Clients (can be mocked in tests)
	Git   *git.Client
	Braid *braid.Client
}

// Register registers the command with cobra
func (c *Command) Register(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "switch [branch]",
		Short: "Switch to a different branch",
		Long: `Switch to a different branch. If no branch name is provided, opens
an interactive fuzzy finder with a graph preview per branch.

Example:
  braid switch                # Interactive fuzzy finder
  braid switch feature/auth   # Direct switch`,
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

	parent.AddCommand(cmd)
}

// Run executes the command
func (c *Command) Run(ctx context.Context) error {
	// Check for uncommitted changes before switching
	hasUncommitted, err := c.Git.HasUncommittedChanges()
	if err != nil {
		return fmt.Errorf("failed to check working directory: %w", err)
	}
	if hasUncommitted {
		return fmt.Errorf("uncommitted changes detected: commit or stash your changes before switching branches")
	}

	g, err := c.Braid.BuildBranchGraph(false)
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

	if name == g.CurrentBranch {
		ui.Infof("Already on %s", name)
		return nil
	}

	if err := c.Braid.CheckoutBranch(name); err != nil {
		return err
	}

	ui.Successf("Switched to %s", name)
	return nil
}
