package cleanup

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bjulian5/braid/internal/braid"
	"github.com/bjulian5/braid/internal/common"
	"github.com/bjulian5/braid/internal/git"
	"github.com/bjulian5/braid/internal/model"
	"github.com/bjulian5/braid/internal/ui"
)

// Command deletes branches whose work already landed somewhere else
type Command struct {
	// Flags
	Force  bool
	DryRun bool

	// Clients (can be mocked in tests)
	Git   *git.Client
	Braid *braid.Client
}

// Register registers the command with cobra
func (c *Command) Register(parent *cobra.Command) {
	command := &cobra.Command{
		Use:   "cleanup",
		Short: "Delete branches that were already merged",
		Long: `Delete local branches the graph shows as merged into another
branch. The checked-out branch is never touched, and nothing is deleted
without confirmation.

The merge record in the ledger survives the deletion, so braid still
knows where the branch went.

Example:
  braid cleanup
  braid cleanup --dry-run
  braid cleanup --force`,
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

	command.Flags().BoolVar(&c.Force, "force", false, "Delete even if git considers the branch unmerged")
	command.Flags().BoolVar(&c.DryRun, "dry-run", false, "Only show what would be deleted")

	parent.AddCommand(command)
}

// Run executes the command
func (c *Command) Run(ctx context.Context) error {
	g, err := c.Braid.BuildBranchGraph(true)
	if err != nil {
		return fmt.Errorf("failed to build branch graph: %w", err)
	}

	candidates := mergedBranches(g.CurrentBranch, g)
	if len(candidates) == 0 {
		ui.Success("No merged branches to clean up")
		return nil
	}

	ui.Printf("Found %d merged branch(es):\n", len(candidates))
	for _, m := range candidates {
		ui.Printf("  %s %s\n", ui.Bold(m.From), ui.Dim(fmt.Sprintf("merged into %s (%s)", m.To, ui.ShortHash(m.Commit))))
	}

	if c.DryRun {
		return nil
	}

	if !ui.Confirm(fmt.Sprintf("Delete %d branch(es)?", len(candidates))) {
		ui.Info("Cleanup cancelled")
		return nil
	}

	deleted := 0
	for _, m := range candidates {
		if err := c.Braid.DeleteBranch(m.From, c.Force); err != nil {
			ui.Warningf("failed to delete %s: %v", m.From, err)
			continue
		}
		ui.Successf("Deleted %s", m.From)
		deleted++
	}

	if deleted < len(candidates) {
		ui.Warningf("Deleted %d of %d branches", deleted, len(candidates))
	}
	return nil
}

// mergedBranches collects one merge per branch that was merged
// somewhere, skipping the checked-out branch.
func mergedBranches(current string, g *model.BranchGraph) []model.MergeRelationship {
	seen := make(map[string]bool)
	var out []model.MergeRelationship
	for _, m := range g.Merges {
		if m.From == current || seen[m.From] {
			continue
		}
		seen[m.From] = true
		out = append(out, m)
	}
	return out
}
