package git

import (
	"fmt"
	"os/exec"
)

// MergeResult reports what a merge actually did. Callers need the
// distinction because only a real merge commit is recoverable from
// history later; a fast-forward leaves no trace.
type MergeResult struct {
	// Commit is HEAD after the merge
	Commit string

	// FastForward is true when the branch pointer advanced without
	// creating a merge commit
	FastForward bool

	// AlreadyUpToDate is true when there was nothing to merge
	AlreadyUpToDate bool
}

// Merge merges the named branch into the current branch
func (c *Client) Merge(branch string, noFF bool) (*MergeResult, error) {
	pre, err := c.GetCommitHash("HEAD")
	if err != nil {
		return nil, err
	}
	tip, err := c.GetCommitHash("refs/heads/" + branch)
	if err != nil {
		return nil, err
	}

	args := []string{"merge", "--no-edit"}
	if noFF {
		args = append(args, "--no-ff")
	}
	args = append(args, branch)

	cmd := exec.Command("git", args...)
	cmd.Dir = c.gitRoot
	output, err := cmd.CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("failed to merge %s: %w\nOutput: %s", branch, err, string(output))
	}

	post, err := c.GetCommitHash("HEAD")
	if err != nil {
		return nil, err
	}

	res := &MergeResult{Commit: post}
	switch post {
	case pre:
		res.AlreadyUpToDate = true
	case tip:
		// HEAD landed exactly on the merged branch's old tip, so the
		// pointer moved without a new commit
		res.FastForward = true
	}
	return res, nil
}
