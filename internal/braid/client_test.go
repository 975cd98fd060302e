package braid

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjulian5/braid/internal/git"
	"github.com/bjulian5/braid/internal/model"
)

func newTestClient(t *testing.T) (*Client, *MockGitClient) {
	t.Helper()
	mockGit := &MockGitClient{}
	mockGit.On("GitRoot").Return(t.TempDir())
	return NewClient(mockGit), mockGit
}

func logLine(hash, parents, decorations string, ts int64) string {
	return strings.Join([]string{
		hash, parents, decorations, strconv.FormatInt(ts, 10),
	}, "\x00")
}

// mergedHistory is a repository where feature branched off main and
// was merged back with a merge commit.
func mergedHistory() string {
	return strings.Join([]string{
		logLine("c3", "c1 c2", "HEAD -> refs/heads/main", 300),
		logLine("c2", "c1", "refs/heads/feature", 200),
		logLine("c1", "", "", 100),
	}, "\n")
}

func TestBuildBranchGraph(t *testing.T) {
	client, mockGit := newTestClient(t)
	mockGit.On("GetCurrentBranch").Return("main", nil)
	mockGit.On("LogAll").Return(mergedHistory(), nil)

	graph, err := client.BuildBranchGraph(false)
	require.NoError(t, err)

	assert.Equal(t, []string{"main", "feature"}, graph.Branches)
	assert.Equal(t, "main", graph.CurrentBranch)

	require.Len(t, graph.Nodes, 3)
	assert.Equal(t, "c3", graph.Nodes[0].Hash)
	assert.Equal(t, []string{"c1", "c2"}, graph.Nodes[0].Parents)
	assert.True(t, graph.Nodes[0].IsMerge)
	assert.Equal(t, []string{"main", "feature"}, graph.Nodes[1].Branches)

	assert.Equal(t, []model.GraphLink{
		{Source: "c3", Target: "c1"},
		{Source: "c3", Target: "c2"},
		{Source: "c2", Target: "c1"},
	}, graph.Links)

	require.Len(t, graph.Merges, 1)
	assert.Equal(t, "feature", graph.Merges[0].From)
	assert.Equal(t, "main", graph.Merges[0].To)
	assert.Equal(t, "c3", graph.Merges[0].Commit)
	assert.Equal(t, model.MergeThreeWay, graph.Merges[0].Kind)

	mockGit.AssertExpectations(t)
}

func TestBuildBranchGraph_ServesCachedResult(t *testing.T) {
	client, mockGit := newTestClient(t)
	mockGit.On("GetCurrentBranch").Return("main", nil).Once()
	mockGit.On("LogAll").Return(mergedHistory(), nil).Once()

	first, err := client.BuildBranchGraph(false)
	require.NoError(t, err)

	second, err := client.BuildBranchGraph(false)
	require.NoError(t, err)

	assert.Same(t, first, second)
	mockGit.AssertExpectations(t)
}

func TestBuildBranchGraph_ForceRefreshRebuilds(t *testing.T) {
	client, mockGit := newTestClient(t)
	mockGit.On("GetCurrentBranch").Return("main", nil).Twice()
	mockGit.On("LogAll").Return(mergedHistory(), nil).Twice()

	_, err := client.BuildBranchGraph(false)
	require.NoError(t, err)

	_, err = client.BuildBranchGraph(true)
	require.NoError(t, err)

	mockGit.AssertExpectations(t)
}

func TestBuildBranchGraph_QueryFailure(t *testing.T) {
	client, mockGit := newTestClient(t)
	mockGit.On("GetCurrentBranch").Return("", errors.New("boom"))
	mockGit.On("LogAll").Return("", errors.New("fatal: not a git repository"))

	_, err := client.BuildBranchGraph(false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to build branch graph")
}

func TestBuildBranchGraph_DetachedHead(t *testing.T) {
	client, mockGit := newTestClient(t)
	mockGit.On("GetCurrentBranch").Return("HEAD", nil)
	mockGit.On("LogAll").Return(mergedHistory(), nil)

	graph, err := client.BuildBranchGraph(false)
	require.NoError(t, err)

	assert.Empty(t, graph.CurrentBranch)
	// Inference still runs; it just cannot prefer a checked-out branch.
	require.Len(t, graph.Merges, 1)
	assert.Equal(t, "main", graph.Merges[0].To)
}

func TestBuildBranchGraph_FoldsInRecordedMerges(t *testing.T) {
	client, mockGit := newTestClient(t)
	mockGit.On("GetCurrentBranch").Return("main", nil)
	mockGit.On("LogAll").Return(mergedHistory(), nil)

	// Recorded by hand: one pair inference already proves, one pair it
	// cannot see, one pair naming a branch that no longer exists.
	_, err := client.AddLedgerEntry("feature", "main", "c9", "")
	require.NoError(t, err)
	_, err = client.AddLedgerEntry("main", "feature", "c4", "back-merge")
	require.NoError(t, err)
	_, err = client.AddLedgerEntry("deleted", "main", "c5", "")
	require.NoError(t, err)

	graph, err := client.BuildBranchGraph(false)
	require.NoError(t, err)

	require.Len(t, graph.Merges, 2)

	// The structural finding wins over its recorded duplicate.
	assert.Equal(t, "feature", graph.Merges[0].From)
	assert.Equal(t, "main", graph.Merges[0].To)
	assert.Equal(t, "c3", graph.Merges[0].Commit)

	assert.Equal(t, "main", graph.Merges[1].From)
	assert.Equal(t, "feature", graph.Merges[1].To)
	assert.Equal(t, "c4", graph.Merges[1].Commit)
}

func TestEmptyGraph(t *testing.T) {
	client, mockGit := newTestClient(t)
	mockGit.On("ListBranches").Return([]string{"main", "feature"}, nil)

	graph := client.EmptyGraph()

	assert.Equal(t, []string{"main", "feature"}, graph.Branches)
	assert.NotNil(t, graph.Nodes)
	assert.NotNil(t, graph.Links)
	assert.NotNil(t, graph.Merges)
	assert.Empty(t, graph.Nodes)
}

func TestEmptyGraph_BranchesUnavailable(t *testing.T) {
	client, mockGit := newTestClient(t)
	mockGit.On("ListBranches").Return(nil, errors.New("boom"))

	graph := client.EmptyGraph()

	assert.NotNil(t, graph.Branches)
	assert.Empty(t, graph.Branches)
}

func TestCachedQueries_SingleFetchWithinTTL(t *testing.T) {
	client, mockGit := newTestClient(t)
	mockGit.On("ListBranches").Return([]string{"main"}, nil).Once()
	mockGit.On("Status").Return(&git.StatusSummary{Branch: "main"}, nil).Once()
	mockGit.On("ListRemotes").Return([]string{"origin"}, nil).Once()
	mockGit.On("ListTags").Return([]string{"v0.1.0", "v0.2.0"}, nil).Once()

	for range 3 {
		branches, err := client.Branches()
		require.NoError(t, err)
		assert.Equal(t, []string{"main"}, branches)

		status, err := client.Status()
		require.NoError(t, err)
		assert.Equal(t, "main", status.Branch)

		remotes, err := client.Remotes()
		require.NoError(t, err)
		assert.Equal(t, []string{"origin"}, remotes)

		tags, err := client.Tags()
		require.NoError(t, err)
		assert.Len(t, tags, 2)
	}

	mockGit.AssertExpectations(t)
}

func TestCurrentBranch_DetachedHeadIsEmpty(t *testing.T) {
	client, mockGit := newTestClient(t)
	mockGit.On("GetCurrentBranch").Return("HEAD", nil)

	name, err := client.CurrentBranch()
	require.NoError(t, err)
	assert.Empty(t, name)
}
