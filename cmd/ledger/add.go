package ledger

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bjulian5/braid/internal/ui"
)

// AddCommand records a merge event by hand
type AddCommand struct {
	// Arguments
	From string
	To   string

	// Flags
	Commit      string
	Description string

	parent *Command
}

// Register registers the command with cobra
func (c *AddCommand) Register(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "add <from> <to>",
		Short: "Record a merge event",
		Long: `Record that one branch was merged into another.

Use this for merges braid cannot infer anymore, like a squash merge or
a merge whose source branch was rebased afterwards. The commit hash is
optional.

Example:
  braid ledger add feature/auth main
  braid ledger add feature/auth main --commit 4f2b91c -m "squash-merged via PR #12"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			c.From = args[0]
			c.To = args[1]
			return c.Run(cobraCmd.Context())
		},
	}

	cmd.Flags().StringVar(&c.Commit, "commit", "", "Merge commit hash, if known")
	cmd.Flags().StringVarP(&c.Description, "message", "m", "", "Description of the merge")

	parent.AddCommand(cmd)
}

// Run executes the command
func (c *AddCommand) Run(ctx context.Context) error {
	entry, err := c.parent.Braid.AddLedgerEntry(c.From, c.To, c.Commit, c.Description)
	if err != nil {
		return fmt.Errorf("failed to add ledger entry: %w", err)
	}

	ui.Successf("Recorded %s → %s (%s)", entry.From, entry.To, entry.ID)
	return nil
}
