package git

import (
	"fmt"
	"os/exec"
	"strings"
)

// StatusSummary condenses porcelain status output into the counts the
// rest of the tool cares about
type StatusSummary struct {
	Branch    string `json:"branch"`
	Staged    int    `json:"staged"`
	Unstaged  int    `json:"unstaged"`
	Untracked int    `json:"untracked"`
}

// Clean reports whether the working tree has no pending changes
func (s *StatusSummary) Clean() bool {
	return s.Staged == 0 && s.Unstaged == 0 && s.Untracked == 0
}

// Status returns a summary of the working tree state
func (c *Client) Status() (*StatusSummary, error) {
	cmd := exec.Command("git", "status", "--porcelain", "-b")
	cmd.Dir = c.gitRoot
	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("failed to get status: %w", err)
	}
	return parseStatus(string(output)), nil
}

// parseStatus parses `git status --porcelain -b` output. The first line
// carries the branch header, every following line one path with its
// two-letter XY state.
func parseStatus(output string) *StatusSummary {
	summary := &StatusSummary{}

	for i, line := range strings.Split(output, "\n") {
		if i == 0 && strings.HasPrefix(line, "## ") {
			summary.Branch = parseBranchHeader(strings.TrimPrefix(line, "## "))
			continue
		}
		if len(line) < 2 {
			continue
		}

		x, y := line[0], line[1]
		if x == '?' {
			summary.Untracked++
			continue
		}
		if x != ' ' {
			summary.Staged++
		}
		if y != ' ' {
			summary.Unstaged++
		}
	}

	return summary
}

// parseBranchHeader extracts the branch name from headers like
// "main...origin/main [ahead 1]", "HEAD (no branch)" or
// "No commits yet on main".
func parseBranchHeader(header string) string {
	header = strings.TrimPrefix(header, "No commits yet on ")

	if idx := strings.Index(header, "..."); idx >= 0 {
		return header[:idx]
	}
	if idx := strings.Index(header, " "); idx >= 0 {
		return header[:idx]
	}
	return header
}
