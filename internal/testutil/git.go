package testutil

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bjulian5/braid/internal/git"
)

// NewTestGitClient creates a git client in a temporary repository with
// an initial commit on main.
func NewTestGitClient(t *testing.T) *git.Client {
	t.Helper()
	tempDir := t.TempDir()

	run(t, tempDir, "init", "--initial-branch=main")
	run(t, tempDir, "config", "user.email", "test@example.com")
	run(t, tempDir, "config", "user.name", "test")

	client, err := git.NewClientAt(tempDir)
	require.NoError(t, err)

	Commit(t, client, "initial commit")
	return client
}

// Commit writes a file named after the message and commits it,
// returning the commit hash. Dates are pinned so timestamps are
// reproducible across runs.
func Commit(t *testing.T, client *git.Client, message string) string {
	t.Helper()
	root := client.GitRoot()

	name := strings.ReplaceAll(message, " ", "-")
	file := filepath.Join(root, fmt.Sprintf("file-%s.txt", name))
	require.NoError(t, os.WriteFile(file, []byte(message+"\n"), 0o644))

	run(t, root, "add", ".")
	runPinned(t, root, "commit", "-m", message)

	return strings.TrimSpace(run(t, root, "rev-parse", "HEAD"))
}

// CreateBranch creates and checks out a new branch at HEAD.
func CreateBranch(t *testing.T, client *git.Client, name string) {
	t.Helper()
	run(t, client.GitRoot(), "checkout", "-b", name)
}

// Checkout switches to an existing branch.
func Checkout(t *testing.T, client *git.Client, name string) {
	t.Helper()
	run(t, client.GitRoot(), "checkout", name)
}

// Detach detaches HEAD from the current branch.
func Detach(t *testing.T, client *git.Client) {
	t.Helper()
	run(t, client.GitRoot(), "checkout", "--detach")
}

// MergeNoFF merges branch into the current branch, always creating a
// merge commit, and returns its hash.
func MergeNoFF(t *testing.T, client *git.Client, branch string) string {
	t.Helper()
	root := client.GitRoot()
	runPinned(t, root, "merge", "--no-ff", "--no-edit", branch)
	return strings.TrimSpace(run(t, root, "rev-parse", "HEAD"))
}

// run executes a git command in dir and fails the test on error.
func run(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %s failed: %s", strings.Join(args, " "), string(output))
	return string(output)
}

// runPinned is run with commit dates pinned to a fixed instant.
func runPinned(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		"GIT_AUTHOR_DATE=2024-01-01T00:00:00Z",
		"GIT_COMMITTER_DATE=2024-01-01T00:00:00Z",
	)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %s failed: %s", strings.Join(args, " "), string(output))
	return string(output)
}
