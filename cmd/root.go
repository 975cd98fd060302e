package cmd

import (
	"context"
	"log"

	"github.com/spf13/cobra"

	"github.com/bjulian5/braid/cmd/branches"
	"github.com/bjulian5/braid/cmd/cleanup"
	"github.com/bjulian5/braid/cmd/config"
	"github.com/bjulian5/braid/cmd/graph"
	"github.com/bjulian5/braid/cmd/ledger"
	"github.com/bjulian5/braid/cmd/merge"
	"github.com/bjulian5/braid/cmd/merges"
	"github.com/bjulian5/braid/cmd/serve"
	"github.com/bjulian5/braid/cmd/show"
	"github.com/bjulian5/braid/cmd/status"
	switchcmd "github.com/bjulian5/braid/cmd/switch"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "braid",
	Short: "See how your branches weave together",
	Long: `Braid reads your repository's history and reconstructs the branch
graph: which commits belong to which branches, and which branches were
merged into which.

It works from git log alone, so it understands merges made outside of
braid too.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute(ctx context.Context) {
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		log.Fatal(err)
	}
}

func init() {
	// Register all commands
	commands := []Command{
		&graph.Command{},
		&branches.Command{},
		&merges.Command{},
		&status.Command{},
		&show.Command{},
		&switchcmd.Command{},
		&merge.Command{},
		&cleanup.Command{},
		&ledger.Command{},
		&config.Command{},
		&serve.Command{},
	}

	for _, cmd := range commands {
		cmd.Register(rootCmd)
	}
}
