package merges

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

// Command lists the merges braid inferred from history
type Command struct {
	// Flags
	Table   bool
	JSON    bool
	Refresh bool

	// Clients (can be mocked in tests)
	Git   *git.Client
	Braid *braid.Client
}

// Register registers the command with cobra
func (c *Command) Register(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "merges",
		Short: "List inferred merges",
		Long: `List every merge braid found, newest context first.

Merges are inferred from the commit graph, so merges made with plain
git show up too. Ledger entries fill in what history alone cannot
prove.

Example:
  braid merges
  braid merges --table`,
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

	cmd.Flags().BoolVar(&c.Table, "table", false, "Display as table instead of a list")
	cmd.Flags().BoolVar(&c.JSON, "json", false, "Print merges as JSON")
	cmd.Flags().BoolVar(&c.Refresh, "refresh", false, "Rebuild the graph instead of using the cached copy")

	parent.AddCommand(cmd)
}

// Run executes the command
func (c *Command) Run(ctx context.Context) error {
	g, err := c.Braid.BuildBranchGraph(c.Refresh)
	if err != nil {
		return fmt.Errorf("failed to build branch graph: %w", err)
	}

	if c.JSON {
		data, err := json.MarshalIndent(g.Merges, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode merges: %w", err)
		}
		ui.Print(string(data))
		return nil
	}

	if len(g.Merges) == 0 {
		ui.Info("No merges found")
		return nil
	}

	if c.Table {
		t := ui.NewBraidTable()
		t.Headers("FROM", "TO", "COMMIT", "KIND", "WHEN")
		for _, m := range g.Merges {
			t.Row(
				ui.Truncate(m.From, ui.Display.MaxBranchNameLength),
				ui.Truncate(m.To, ui.Display.MaxBranchNameLength),
				ui.ShortHash(m.Commit),
				string(m.Kind),
				ui.FormatRelativeTime(m.Timestamp),
			)
		}
		ui.Print(t.Render())
		return nil
	}

	ui.Print(ui.RenderMergeList(g))
	return nil
}
