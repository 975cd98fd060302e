package ledger

import (
	"github.com/spf13/cobra"

	"github.com/bjulian5/braid/internal/braid"
	"github.com/bjulian5/braid/internal/common"
	"github.com/bjulian5/braid/internal/git"
)

// Command is the parent command for all ledger subcommands
type Command struct {
	// Clients (shared by subcommands)
	Git   *git.Client
	Braid *braid.Client
}

// Register registers the ledger command and all subcommands
func (c *Command) Register(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Work with the merge ledger",
		Long: `The ledger is braid's durable record of merge events. Inference
reads history; the ledger remembers merges history can no longer show,
like a merge whose source branch was rebased away.`,
		PersistentPreRunE: func(cobraCmd *cobra.Command, args []string) error {
			var err error
			c.Git, c.Braid, err = common.InitClients()
			return err
		},
	}

	// Register subcommands
	listCmd := &ListCommand{parent: c}
	listCmd.Register(cmd)

	addCmd := &AddCommand{parent: c}
	addCmd.Register(cmd)

	parent.AddCommand(cmd)
}
