package serve

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bjulian5/braid/internal/braid"
	"github.com/bjulian5/braid/internal/common"
	"github.com/bjulian5/braid/internal/git"
	"github.com/bjulian5/braid/internal/server"
	"github.com/bjulian5/braid/internal/ui"
)

// Command serves the branch graph over HTTP and websockets
type Command struct {
	// Flags
	Addr string

	// Clients (can be mocked in tests)
	Git   *git.Client
	Braid *braid.Client
}

// Register registers the command with cobra
func (c *Command) Register(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the branch graph over HTTP",
		Long: `Serve the branch graph for frontends and other tools.

GET /api/graph returns the current graph (add ?refresh=1 to rebuild),
/api/status, /api/branches and /api/ledger mirror the CLI views, and
/api/ws pushes a fresh graph whenever the repository changes.

The listen address comes from the config file; --addr overrides it.

Example:
  braid serve
  braid serve --addr 127.0.0.1:8080`,
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

	cmd.Flags().StringVar(&c.Addr, "addr", "", "Listen address (host:port)")

	parent.AddCommand(cmd)
}

// Run executes the command
func (c *Command) Run(ctx context.Context) error {
	addr := c.Addr
	if addr == "" {
		cfg, err := c.Braid.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		addr = cfg.ServeAddr
	}

	ui.Infof("Watching %s", c.Git.GitRoot())
	return server.New(c.Braid, addr).Run(ctx)
}
