package merge

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjulian5/braid/internal/graph"
	"github.com/bjulian5/braid/internal/model"
)

func node(hash string, parents, branches []string, ts int64) *model.CommitNode {
	return &model.CommitNode{
		Hash:      hash,
		Parents:   parents,
		Branches:  branches,
		Timestamp: time.Unix(ts, 0),
		IsMerge:   len(parents) >= 2,
	}
}

// result assembles a graph result by hand so the classifier is
// exercised without the builder or a repository.
func result(nodes ...*model.CommitNode) *graph.Result {
	res := &graph.Result{Nodes: make(map[string]*model.CommitNode, len(nodes))}
	for _, n := range nodes {
		res.Nodes[n.Hash] = n
		res.Order = append(res.Order, n.Hash)
	}
	return res
}

func TestSetClassifier_FeatureMergedIntoMain(t *testing.T) {
	res := result(
		node("c3", []string{"c1", "c2"}, []string{"main"}, 300),
		node("c2", []string{"c1"}, []string{"main", "feature"}, 200),
		node("c1", nil, []string{"main"}, 100),
	)

	got := SetClassifier{}.Classify(res, "main")

	require.Len(t, got, 1)
	assert.Equal(t, "feature", got[0].From)
	assert.Equal(t, "main", got[0].To)
	assert.Equal(t, "c3", got[0].Commit)
	assert.Equal(t, model.MergeThreeWay, got[0].Kind)
	assert.Equal(t, "Merge branch 'feature' into main", got[0].Description)
	assert.True(t, time.Unix(300, 0).Equal(got[0].Timestamp))
}

func TestSetClassifier_MainMergedIntoFeature(t *testing.T) {
	// Updating feature from main: the merge commit sits on feature and
	// its incoming parent is main's tip.
	res := result(
		node("m", []string{"f1", "m1"}, []string{"feature"}, 400),
		node("m1", []string{"c1"}, []string{"feature", "main"}, 300),
		node("f1", []string{"c1"}, []string{"feature"}, 200),
		node("c1", nil, []string{"feature"}, 100),
	)

	got := SetClassifier{}.Classify(res, "feature")

	require.Len(t, got, 1)
	assert.Equal(t, "main", got[0].From)
	assert.Equal(t, "feature", got[0].To)
	assert.Equal(t, "m", got[0].Commit)
}

func TestSetClassifier_SharedMembershipFallback(t *testing.T) {
	// After merging, dev was moved up to the merge commit, so no branch
	// is exclusive to the incoming parent anymore. The shared branches
	// minus the chosen target still identify the source.
	res := result(
		node("c3", []string{"c1", "c2"}, []string{"main", "dev"}, 300),
		node("c2", []string{"c1"}, []string{"main", "dev"}, 200),
		node("c1", nil, []string{"main", "dev"}, 100),
	)

	got := SetClassifier{}.Classify(res, "main")

	require.Len(t, got, 1)
	assert.Equal(t, "dev", got[0].From)
	assert.Equal(t, "main", got[0].To)
}

func TestSetClassifier_PrefersCheckedOutBranchAsTarget(t *testing.T) {
	build := func() *graph.Result {
		return result(
			node("m", []string{"p0", "p1"}, []string{"main", "dev"}, 300),
			node("p0", nil, []string{"main", "dev"}, 100),
			node("p1", nil, []string{"main", "dev", "feature"}, 200),
		)
	}

	checkedOut := SetClassifier{}.Classify(build(), "dev")
	require.Len(t, checkedOut, 1)
	assert.Equal(t, "dev", checkedOut[0].To)
	assert.Equal(t, "feature", checkedOut[0].From)

	// Detached or elsewhere: fall back to insertion order.
	detached := SetClassifier{}.Classify(build(), "")
	require.Len(t, detached, 1)
	assert.Equal(t, "main", detached[0].To)
}

func TestSetClassifier_SkipsMergeWithParentOutsideGraph(t *testing.T) {
	res := result(
		node("m", []string{"missing", "c2"}, []string{"main"}, 300),
		node("c2", []string{"c1"}, []string{"main", "feature"}, 200),
	)

	assert.Empty(t, SetClassifier{}.Classify(res, "main"))
}

func TestSetClassifier_OctopusUsesFirstTwoParents(t *testing.T) {
	// The third parent is outside the graph, which must not disable
	// inference over the first two.
	res := result(
		node("m", []string{"c1", "c2", "gone"}, []string{"main"}, 300),
		node("c2", []string{"c1"}, []string{"main", "feature"}, 200),
		node("c1", nil, []string{"main"}, 100),
	)

	got := SetClassifier{}.Classify(res, "main")

	require.Len(t, got, 1)
	assert.Equal(t, "feature", got[0].From)
	assert.Equal(t, "main", got[0].To)
}

func TestSetClassifier_FirstMergeWinsPerPair(t *testing.T) {
	// feature was merged into main twice; only the first merge commit
	// in graph order claims the pair.
	res := result(
		node("m2", []string{"a2", "b2"}, []string{"main"}, 500),
		node("b2", []string{"b1"}, []string{"main", "feature"}, 400),
		node("a2", []string{"m1"}, []string{"main"}, 300),
		node("m1", []string{"a1", "b1"}, []string{"main"}, 250),
		node("b1", []string{"a1"}, []string{"main", "feature"}, 200),
		node("a1", nil, []string{"main"}, 100),
	)

	got := SetClassifier{}.Classify(res, "main")

	require.Len(t, got, 1)
	assert.Equal(t, "m2", got[0].Commit)
}

func TestSetClassifier_IgnoresNonMergeCommits(t *testing.T) {
	res := result(
		node("c2", []string{"c1"}, []string{"main"}, 200),
		node("c1", nil, []string{"main"}, 100),
	)

	assert.Empty(t, SetClassifier{}.Classify(res, "main"))
}

func TestSetClassifier_Deterministic(t *testing.T) {
	build := func() *graph.Result {
		return result(
			node("m2", []string{"m1", "d1"}, []string{"main"}, 500),
			node("d1", []string{"c1"}, []string{"main", "dev"}, 400),
			node("m1", []string{"a1", "b1"}, []string{"main"}, 300),
			node("b1", []string{"a1"}, []string{"main", "feature"}, 200),
			node("a1", nil, []string{"main"}, 100),
			node("c1", nil, []string{"main"}, 50),
		)
	}

	first := SetClassifier{}.Classify(build(), "main")
	second := SetClassifier{}.Classify(build(), "main")

	assert.Equal(t, first, second)
	require.Len(t, first, 2)
}

func TestSetClassifier_EndToEndFromLogRecords(t *testing.T) {
	// Full pipeline: parsed records through the builder into the
	// classifier, with only the tips decorated as git reports them.
	records := []graph.Record{
		{Hash: "c3", Parents: []string{"c1", "c2"}, Branches: []string{"main"}, Timestamp: time.Unix(300, 0)},
		{Hash: "c2", Parents: []string{"c1"}, Branches: []string{"feature"}, Timestamp: time.Unix(200, 0)},
		{Hash: "c1", Parents: nil, Branches: nil, Timestamp: time.Unix(100, 0)},
	}

	got := SetClassifier{}.Classify(graph.Build(records), "main")

	require.Len(t, got, 1)
	assert.Equal(t, "feature", got[0].From)
	assert.Equal(t, "main", got[0].To)
	assert.Equal(t, "c3", got[0].Commit)
}
