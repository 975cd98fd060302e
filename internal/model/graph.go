package model

import "time"

// CommitNode is a single commit in the branch graph.
// Parents preserves the order reported by git: index 0 is the mainline
// parent, index 1 the incoming parent for a two-parent merge. Inference
// depends on that order and never reorders it.
type CommitNode struct {
	// Hash is the full commit hash
	Hash string `json:"hash"`

	// Parents lists parent hashes in git's order (empty for a root commit)
	Parents []string `json:"parents"`

	// Branches is the set of local branches whose tip resolves to this
	// commit or propagates to it through ancestry, in first-seen order
	Branches []string `json:"branches"`

	// Timestamp is the commit time
	Timestamp time.Time `json:"timestamp"`

	// IsMerge is derived by the builder: true when the commit has two or
	// more parents
	IsMerge bool `json:"isMerge"`
}

// HasBranch reports whether the node's branch set contains name.
func (n *CommitNode) HasBranch(name string) bool {
	for _, b := range n.Branches {
		if b == name {
			return true
		}
	}
	return false
}

// AddBranch appends name to the branch set if not already present.
// Branch sets only ever grow during a build pass.
func (n *CommitNode) AddBranch(name string) {
	if !n.HasBranch(name) {
		n.Branches = append(n.Branches, name)
	}
}

// GraphLink is a derived child→parent edge. Links are always recomputed
// from the nodes that imply them, never stored independently.
type GraphLink struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// BranchGraph is the consolidated result handed to callers: the current
// branch list, the merge relationships between them, and the DAG
// projection of the commit history.
type BranchGraph struct {
	Branches      []string            `json:"branches"`
	Merges        []MergeRelationship `json:"merges"`
	CurrentBranch string              `json:"currentBranch"`
	Nodes         []CommitNode        `json:"nodes"`
	Links         []GraphLink         `json:"links"`
}

// BranchHead returns the tip hash for branch, or "" when the branch is
// not in the graph. Nodes are ordered tips-first, so the first carrier
// of a name is its tip.
func (g *BranchGraph) BranchHead(name string) string {
	for i := range g.Nodes {
		if g.Nodes[i].HasBranch(name) {
			return g.Nodes[i].Hash
		}
	}
	return ""
}

// BranchCommits counts the commits carrying branch.
func (g *BranchGraph) BranchCommits(name string) int {
	count := 0
	for i := range g.Nodes {
		if g.Nodes[i].HasBranch(name) {
			count++
		}
	}
	return count
}

// EmptyBranchGraph returns the degraded result used when the history
// query fails: the known branch list with no merges and an empty DAG.
// Callers must treat it as "unknown", not as proof that no merges exist.
func EmptyBranchGraph(branches []string) *BranchGraph {
	if branches == nil {
		branches = []string{}
	}
	return &BranchGraph{
		Branches: branches,
		Merges:   []MergeRelationship{},
		Nodes:    []CommitNode{},
		Links:    []GraphLink{},
	}
}
