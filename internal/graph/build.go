package graph

import (
	"github.com/bjulian5/braid/internal/model"
)

// Result is the product of one build pass over a history snapshot.
// Callers treat it as read-only; a fresh pass produces a fresh Result.
type Result struct {
	// Nodes maps commit hash to its node.
	Nodes map[string]*model.CommitNode

	// Heads maps each branch name to its tip hash.
	Heads map[string]string

	// Order holds hashes in input order, which upstream guarantees is
	// topological from the tips.
	Order []string

	branchOrder []string
}

// Has reports whether hash is part of this snapshot.
func (r *Result) Has(hash string) bool {
	_, ok := r.Nodes[hash]
	return ok
}

// Node returns the node for hash, or nil when the hash is outside the
// snapshot (truncated or shallow history).
func (r *Result) Node(hash string) *model.CommitNode {
	return r.Nodes[hash]
}

// BranchNames returns branch names in the order their tips were first
// seen, which keeps downstream output deterministic across rebuilds.
func (r *Result) BranchNames() []string {
	names := make([]string, len(r.branchOrder))
	copy(names, r.branchOrder)
	return names
}

// Links derives one parent edge per parent reference, in input order.
// A parent hash outside the snapshot still yields an edge; consumers
// treat an unresolvable target as the truncation boundary.
func (r *Result) Links() []model.GraphLink {
	links := make([]model.GraphLink, 0, len(r.Order))
	for _, hash := range r.Order {
		for _, parent := range r.Nodes[hash].Parents {
			links = append(links, model.GraphLink{Source: hash, Target: parent})
		}
	}
	return links
}

// builder accumulates nodes for a single pass. It is created by Build
// and discarded when the pass ends, so no state leaks between builds.
type builder struct {
	nodes       map[string]*model.CommitNode
	heads       map[string]string
	order       []string
	branchOrder []string

	// inherited holds branch sets propagated from children to parents
	// whose own records have not arrived yet.
	inherited map[string][]string
}

// Build walks parsed records in input order and assembles the commit
// DAG. Branch membership starts at tip decorations and flows to
// ancestors: each commit passes its full set to its parents, and a
// parent keeps the first set that reaches it before adding its own
// decorations. Sets only ever grow within a pass.
func Build(records []Record) *Result {
	b := &builder{
		nodes:     make(map[string]*model.CommitNode),
		heads:     make(map[string]string),
		inherited: make(map[string][]string),
	}
	for _, rec := range records {
		b.add(rec)
	}
	return &Result{
		Nodes:       b.nodes,
		Heads:       b.heads,
		Order:       b.order,
		branchOrder: b.branchOrder,
	}
}

// add upserts one record into the graph. A repeat sighting of a hash
// unions decorations instead of clobbering the node.
func (b *builder) add(rec Record) {
	node, seen := b.nodes[rec.Hash]
	if !seen {
		node = &model.CommitNode{
			Hash:      rec.Hash,
			Parents:   rec.Parents,
			Timestamp: rec.Timestamp,
			IsMerge:   len(rec.Parents) >= 2,
		}
		for _, name := range b.inherited[rec.Hash] {
			node.AddBranch(name)
		}
		delete(b.inherited, rec.Hash)
		b.nodes[rec.Hash] = node
		b.order = append(b.order, rec.Hash)
	}

	for _, name := range rec.Branches {
		node.AddBranch(name)
		// Tips arrive first in a topological walk, so the first
		// decoration sighting of a name is that branch's head.
		if _, ok := b.heads[name]; !ok {
			b.heads[name] = rec.Hash
			b.branchOrder = append(b.branchOrder, name)
		}
	}

	if !seen {
		b.propagate(node)
	}
}

// propagate offers node's branch set to each of its parents. Only the
// first offer a parent receives sticks; later children find the parent
// claimed and leave it alone. The parent's own decorations are added on
// top when its record arrives.
func (b *builder) propagate(node *model.CommitNode) {
	if len(node.Branches) == 0 {
		return
	}
	for _, parent := range node.Parents {
		if existing, ok := b.nodes[parent]; ok {
			if len(existing.Branches) == 0 {
				for _, name := range node.Branches {
					existing.AddBranch(name)
				}
			}
			continue
		}
		if _, claimed := b.inherited[parent]; claimed {
			continue
		}
		set := make([]string, len(node.Branches))
		copy(set, node.Branches)
		b.inherited[parent] = set
	}
}
