package merge

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bjulian5/braid/internal/braid"
	"github.com/bjulian5/braid/internal/common"
	"github.com/bjulian5/braid/internal/git"
	"github.com/bjulian5/braid/internal/ui"
)

// Command merges a branch into the current branch and records it
type Command struct {
	// Arguments
	BranchName string

	// Flags
	NoFF bool

	// Clients (can be mocked in tests)
	Git   *git.Client
	Braid *braid.Client
}

// Register registers the command with cobra
func (c *Command) Register(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "merge <branch>",
		Short: "Merge a branch into the current branch",
		Long: `Merge a branch into the current branch and record the merge in
braid's ledger.

The ledger keeps the relationship visible even after the source branch
is rebased or its tip moves on.

Example:
  braid merge feature/auth
  braid merge feature/auth --no-ff`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cobraCmd *cobra.Command, args []string) error {
			var err error
			c.Git, c.Braid, err = common.InitClients()
			return err
		},
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			c.BranchName = args[0]
			if !cobraCmd.Flags().Changed("no-ff") {
				cfg, err := c.Braid.LoadConfig()
				if err != nil {
					ui.Warningf("ignoring unreadable config: %v", err)
				} else {
					c.NoFF = cfg.NoFastForward
				}
			}
			return c.Run(cobraCmd.Context())
		},
	}

	cmd.Flags().BoolVar(&c.NoFF, "no-ff", false, "Create a merge commit even when fast-forward is possible")

	parent.AddCommand(cmd)
}

// Run executes the command
func (c *Command) Run(ctx context.Context) error {
	// Merging over a dirty tree leaves conflicts tangled with unrelated
	// edits.
	hasUncommitted, err := c.Git.HasUncommittedChanges()
	if err != nil {
		return fmt.Errorf("failed to check working directory: %w", err)
	}
	if hasUncommitted {
		return fmt.Errorf("uncommitted changes detected: commit or stash your changes before merging")
	}

	if g, err := c.Braid.BuildBranchGraph(false); err == nil {
		current := g.CurrentBranch
		for _, m := range g.Merges {
			if m.From == c.BranchName && m.To == current {
				prompt := fmt.Sprintf("%s was already merged into %s. Merge again?", c.BranchName, current)
				if !ui.Confirm(prompt) {
					ui.Info("Merge cancelled")
					return nil
				}
				break
			}
		}
	}

	result, err := c.Braid.MergeBranch(c.BranchName, c.NoFF)
	if err != nil {
		return err
	}

	current, _ := c.Braid.CurrentBranch()
	switch {
	case result.AlreadyUpToDate:
		ui.Infof("%s is already up to date with %s", current, c.BranchName)
	case result.FastForward:
		ui.Successf("Fast-forwarded %s to %s", current, ui.ShortHash(result.Commit))
	default:
		ui.Successf("Merged %s into %s at %s", c.BranchName, current, ui.ShortHash(result.Commit))
	}

	return nil
}
