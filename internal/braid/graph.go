package braid

import (
	"fmt"
	"log"

	"github.com/bjulian5/braid/internal/cache"
	"github.com/bjulian5/braid/internal/graph"
	"github.com/bjulian5/braid/internal/ledger"
	"github.com/bjulian5/braid/internal/merge"
	"github.com/bjulian5/braid/internal/model"
)

// BuildBranchGraph assembles the branch graph for the repository.
// Within the graph lifetime repeated calls serve the cached result;
// forceRefresh drops the cached graph and its underlying log first.
func (c *Client) BuildBranchGraph(forceRefresh bool) (*model.BranchGraph, error) {
	if forceRefresh {
		c.cache.Invalidate(keyBranchGraph)
		c.cache.Invalidate(keyLog)
	}
	return cache.Do(c.flight, keyBranchGraph, cache.TTLBranchGraph, c.assembleGraph)
}

func (c *Client) assembleGraph() (*model.BranchGraph, error) {
	// A detached HEAD reports cleanly as no current branch. A real
	// failure here means the repository is unreadable, and the history
	// query below will surface that.
	current, err := c.CurrentBranch()
	if err != nil {
		current = ""
	}

	raw, err := cached(c, keyLog, cache.TTLLog, c.git.LogAll)
	if err != nil {
		return nil, fmt.Errorf("failed to build branch graph: %w", err)
	}

	res := graph.Build(graph.ParseLog(raw))
	merges := merge.Reconcile(
		c.classifier.Classify(res, current),
		c.recordedMerges(res),
	)

	nodes := make([]model.CommitNode, 0, len(res.Order))
	for _, hash := range res.Order {
		nodes = append(nodes, *res.Node(hash))
	}

	return &model.BranchGraph{
		Branches:      res.BranchNames(),
		Merges:        merges,
		CurrentBranch: current,
		Nodes:         nodes,
		Links:         res.Links(),
	}, nil
}

// recordedMerges reads the ledger and reduces it against the current
// snapshot. The ledger is advisory: failing to read it degrades to
// recorded-nothing instead of failing the graph.
func (c *Client) recordedMerges(res *graph.Result) []model.MergeRelationship {
	var entries []model.LedgerEntry
	err := c.withLedger(func(store *ledger.Store) error {
		var err error
		entries, err = store.All()
		return err
	})
	if err != nil {
		log.Printf("skipping recorded merges: %v", err)
		return nil
	}

	return ledger.Consolidate(entries, func(name string) bool {
		_, ok := res.Heads[name]
		return ok
	})
}

// EmptyGraph is the degraded result for an unqueryable repository:
// branch names when those are still answerable, nothing else. Callers
// that must keep rendering use it in place of a failed build.
func (c *Client) EmptyGraph() *model.BranchGraph {
	names, err := c.Branches()
	if err != nil {
		names = []string{}
	}
	return model.EmptyBranchGraph(names)
}
