package config

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bjulian5/braid/internal/braid"
	"github.com/bjulian5/braid/internal/common"
	"github.com/bjulian5/braid/internal/git"
	"github.com/bjulian5/braid/internal/ui"
)

// Command shows or updates the repository's braid settings
type Command struct {
	// Flags
	NoFF bool
	Addr string

	// SetNoFF and SetAddr record which flags were given, so an omitted
	// flag leaves the stored value alone
	SetNoFF bool
	SetAddr bool

	// Clients (can be mocked in tests)
	Git   *git.Client
	Braid *braid.Client
}

// Register registers the command with cobra
func (c *Command) Register(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change repository settings",
		Long: `Show braid's settings for this repository, or change them with flags.

Settings live in .git/braid/config.json and apply to this repository
only.

Example:
  braid config
  braid config --no-ff
  braid config --addr 127.0.0.1:9000`,
		Args: cobra.NoArgs,
		PreRunE: func(cobraCmd *cobra.Command, args []string) error {
			var err error
			c.Git, c.Braid, err = common.InitClients()
			return err
		},
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			c.SetNoFF = cobraCmd.Flags().Changed("no-ff")
			c.SetAddr = cobraCmd.Flags().Changed("addr")
			return c.Run(cobraCmd.Context())
		},
	}

	cmd.Flags().BoolVar(&c.NoFF, "no-ff", false, "Always create a merge commit when merging")
	cmd.Flags().StringVar(&c.Addr, "addr", "", "Listen address for braid serve")

	parent.AddCommand(cmd)
}

// Run executes the command
func (c *Command) Run(ctx context.Context) error {
	cfg, err := c.Braid.LoadConfig()
	if err != nil {
		if !c.SetNoFF && !c.SetAddr {
			return err
		}
		// A corrupt file should not lock the settings forever.
		ui.Warningf("replacing unreadable config: %v", err)
		cfg = braid.DefaultConfig()
	}

	if !c.SetNoFF && !c.SetAddr {
		ui.Print(ui.Rows(
			ui.RenderKeyValue("no-ff", strconv.FormatBool(cfg.NoFastForward)),
			ui.RenderKeyValue("addr", cfg.ServeAddr),
		))
		return nil
	}

	if c.SetNoFF {
		cfg.NoFastForward = c.NoFF
	}
	if c.SetAddr {
		cfg.ServeAddr = c.Addr
	}

	if err := c.Braid.SaveConfig(cfg); err != nil {
		return err
	}

	ui.Success("Settings saved")
	return nil
}
