package status

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bjulian5/braid/internal/braid"
	"github.com/bjulian5/braid/internal/common"
	"github.com/bjulian5/braid/internal/git"
	"github.com/bjulian5/braid/internal/ui"
)

// Command shows the working tree status and a branch summary
type Command struct {
	// Clients (can be mocked in tests)
	Git   *git.Client
	Braid *braid.Client
}

// Register registers the command with cobra
func (c *Command) Register(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show working tree and branch status",
		Long: `Show the working tree status together with a one-line summary of
the branch graph.

Example:
  braid status`,
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

	parent.AddCommand(cmd)
}

// Run executes the command
func (c *Command) Run(ctx context.Context) error {
	status, err := c.Braid.Status()
	if err != nil {
		return fmt.Errorf("failed to get status: %w", err)
	}

	if status.Branch == "" || status.Branch == "HEAD" {
		ui.Print(ui.Dim("Detached HEAD"))
	} else {
		ui.Printf("On branch %s\n", ui.Highlight(status.Branch))
	}

	if status.Clean() {
		ui.Success("Working tree clean")
	} else {
		if status.Staged > 0 {
			ui.Printf("  %s\n", ui.Bold(fmt.Sprintf("%d staged", status.Staged)))
		}
		if status.Unstaged > 0 {
			ui.Printf("  %d unstaged\n", status.Unstaged)
		}
		if status.Untracked > 0 {
			ui.Printf("  %s\n", ui.Dim(fmt.Sprintf("%d untracked", status.Untracked)))
		}
	}

	g, err := c.Braid.BuildBranchGraph(false)
	if err != nil {
		// Status is still useful without the graph.
		return nil
	}

	ui.Print("")
	ui.Print(ui.FormatBranchSummary(g))

	remotes, err := c.Braid.Remotes()
	if err != nil {
		return nil
	}
	tags, err := c.Braid.Tags()
	if err != nil {
		return nil
	}
	if len(remotes) > 0 || len(tags) > 0 {
		ui.Print(ui.Dim(fmt.Sprintf("%d remote(s), %d tag(s)", len(remotes), len(tags))))
	}
	return nil
}
