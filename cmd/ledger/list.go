package ledger

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bjulian5/braid/internal/ui"
)

// ListCommand lists every recorded merge event
type ListCommand struct {
	// Flags
	JSON bool

	parent *Command
}

// Register registers the command with cobra
func (c *ListCommand) Register(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded merge events",
		Long: `List every ledger entry in the order it was recorded, including
fast-forwards and entries whose branches no longer exist.

Example:
  braid ledger list
  braid ledger list --json`,
		Args: cobra.NoArgs,
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			return c.Run(cobraCmd.Context())
		},
	}

	cmd.Flags().BoolVar(&c.JSON, "json", false, "Print entries as JSON")

	parent.AddCommand(cmd)
}

// Run executes the command
func (c *ListCommand) Run(ctx context.Context) error {
	entries, err := c.parent.Braid.LedgerEntries()
	if err != nil {
		return fmt.Errorf("failed to read ledger: %w", err)
	}

	if c.JSON {
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode entries: %w", err)
		}
		ui.Print(string(data))
		return nil
	}

	if len(entries) == 0 {
		ui.Info("Ledger is empty")
		return nil
	}

	t := ui.NewBraidTable()
	t.Headers("ID", "FROM", "TO", "COMMIT", "KIND", "WHEN")
	for _, e := range entries {
		t.Row(
			e.ID,
			ui.Truncate(e.From, ui.Display.MaxBranchNameLength),
			ui.Truncate(e.To, ui.Display.MaxBranchNameLength),
			ui.ShortHash(e.Commit),
			string(e.Kind),
			ui.FormatRelativeTime(e.Timestamp),
		)
	}
	ui.Print(t.Render())

	return nil
}
