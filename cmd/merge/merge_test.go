package merge

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjulian5/braid/internal/braid"
	"github.com/bjulian5/braid/internal/git"
	"github.com/bjulian5/braid/internal/model"
	"github.com/bjulian5/braid/internal/testutil"
)

func TestMerge(t *testing.T) {
	testCases := []struct {
		desc        string
		branch      string
		noFF        bool
		setup       func(t *testing.T, gitClient *git.Client)
		verify      func(t *testing.T, gitClient *git.Client, braidClient *braid.Client)
		expectError string
	}{
		{
			desc:        "unknown branch returns error",
			branch:      "ghost",
			expectError: "does not exist",
		},
		{
			desc:        "merging checked-out branch returns error",
			branch:      "main",
			expectError: "already checked out",
		},
		{
			desc:   "uncommitted changes returns error",
			branch: "feature",
			setup: func(t *testing.T, gitClient *git.Client) {
				testutil.CreateBranch(t, gitClient, "feature")
				testutil.Commit(t, gitClient, "feature work")
				testutil.Checkout(t, gitClient, "main")

				path := filepath.Join(gitClient.GitRoot(), "scratch.txt")
				require.NoError(t, os.WriteFile(path, []byte("wip\n"), 0o644))
			},
			expectError: "uncommitted changes",
		},
		{
			desc:   "no-ff merge records a three-way entry",
			branch: "feature",
			noFF:   true,
			setup: func(t *testing.T, gitClient *git.Client) {
				testutil.CreateBranch(t, gitClient, "feature")
				testutil.Commit(t, gitClient, "feature work")
				testutil.Checkout(t, gitClient, "main")
			},
			verify: func(t *testing.T, gitClient *git.Client, braidClient *braid.Client) {
				entries, err := braidClient.LedgerEntries()
				require.NoError(t, err)
				require.Len(t, entries, 1)
				assert.Equal(t, "feature", entries[0].From)
				assert.Equal(t, "main", entries[0].To)
				assert.Equal(t, model.MergeThreeWay, entries[0].Kind)

				head, err := gitClient.GetCommitHash("HEAD")
				require.NoError(t, err)
				assert.Equal(t, head, entries[0].Commit)

				g, err := braidClient.BuildBranchGraph(true)
				require.NoError(t, err)
				require.Len(t, g.Merges, 1)
				assert.Equal(t, "feature", g.Merges[0].From)
			},
		},
		{
			desc:   "fast-forward merge records a fast-forward entry",
			branch: "feature",
			setup: func(t *testing.T, gitClient *git.Client) {
				testutil.CreateBranch(t, gitClient, "feature")
				testutil.Commit(t, gitClient, "feature work")
				testutil.Checkout(t, gitClient, "main")
			},
			verify: func(t *testing.T, gitClient *git.Client, braidClient *braid.Client) {
				entries, err := braidClient.LedgerEntries()
				require.NoError(t, err)
				require.Len(t, entries, 1)
				assert.Equal(t, model.MergeFastForward, entries[0].Kind)

				// The branch tips are equal after a fast-forward.
				head, err := gitClient.GetCommitHash("HEAD")
				require.NoError(t, err)
				tip, err := gitClient.GetCommitHash("feature")
				require.NoError(t, err)
				assert.Equal(t, tip, head)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			gitClient := testutil.NewTestGitClient(t)
			braidClient := braid.NewClient(gitClient)

			if tc.setup != nil {
				tc.setup(t, gitClient)
			}

			c := &Command{
				BranchName: tc.branch,
				NoFF:       tc.noFF,
				Git:        gitClient,
				Braid:      braidClient,
			}
			err := c.Run(context.Background())

			if tc.expectError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectError)
				return
			}
			require.NoError(t, err)
			if tc.verify != nil {
				tc.verify(t, gitClient, braidClient)
			}
		})
	}
}
