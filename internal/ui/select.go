package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/ktr0731/go-fuzzyfinder"

	"github.com/bjulian5/braid/internal/model"
)

func init() {
	// Force lipgloss to initialize and detect terminal before fuzzy finder starts
	// This prevents ANSI escape sequences from leaking into the finder input
	_ = lipgloss.NewStyle().Render("")
	_ = lipgloss.HasDarkBackground()
}

// SelectBranch presents a fuzzy finder over the graph's branches.
// Returns the selected branch name, or "" if the user cancelled.
// Returns an error only if the fuzzy finder encounters an unexpected error.
func SelectBranch(g *model.BranchGraph) (string, error) {
	// Flush stdout/stderr before starting fuzzy finder to clear any ANSI sequences
	os.Stdout.Sync()
	os.Stderr.Sync()

	branches := g.Branches
	idx, err := fuzzyfinder.Find(
		branches,
		func(i int) string {
			return FormatBranchFinderLine(branches[i], g)
		},
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			return FormatBranchPreview(branches[i], g)
		}),
	)

	if err != nil {
		// User cancelled (Ctrl+C or ESC)
		return "", nil
	}

	return branches[idx], nil
}
