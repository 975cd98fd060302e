package common

import (
	"fmt"

	"github.com/bjulian5/braid/internal/braid"
	"github.com/bjulian5/braid/internal/git"
	"github.com/bjulian5/braid/internal/ui"
)

// InitClients initializes the git and braid clients
// Returns an error that is suitable for use in PreRunE hooks
func InitClients() (*git.Client, *braid.Client, error) {
	gitClient, err := git.NewClient()
	if err != nil {
		ui.Error("Not in a git repository")
		return nil, nil, fmt.Errorf("git client initialization failed: %w", err)
	}
	return gitClient, braid.NewClient(gitClient), nil
}
