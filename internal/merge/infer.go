package merge

import (
	"fmt"

	"github.com/bjulian5/braid/internal/graph"
	"github.com/bjulian5/braid/internal/model"
)

// Classifier turns a built commit graph into merge relationships. It is
// a seam between graph construction and inference: the builder is
// testable without a classifier, and a classifier without a repository.
type Classifier interface {
	Classify(res *graph.Result, currentBranch string) []model.MergeRelationship
}

// SetClassifier infers merge relationships from branch-membership sets
// alone, without reading any commit content. For each merge commit it
// compares the membership of the commit, its mainline parent, and its
// incoming parent, and derives which branch merged into which.
type SetClassifier struct{}

var _ Classifier = SetClassifier{}

type pair struct {
	from, to string
}

// Classify walks merge commits in graph order and emits at most one
// relationship per (from, to) pair: the first merge commit to claim a
// pair wins within a pass. Merge commits whose parents fall outside the
// graph are skipped, as truncated history cannot support inference.
func (SetClassifier) Classify(res *graph.Result, currentBranch string) []model.MergeRelationship {
	var merges []model.MergeRelationship
	seen := make(map[pair]bool)

	for _, hash := range res.Order {
		node := res.Node(hash)
		if !node.IsMerge {
			continue
		}

		// Octopus merges contribute only their first two parents.
		mainline := res.Node(node.Parents[0])
		incoming := res.Node(node.Parents[1])
		if mainline == nil || incoming == nil {
			continue
		}

		from, to, ok := classifyOne(node, mainline, incoming, currentBranch)
		if !ok {
			continue
		}

		key := pair{from: from, to: to}
		if seen[key] {
			continue
		}
		seen[key] = true

		merges = append(merges, model.MergeRelationship{
			From:        from,
			To:          to,
			Commit:      node.Hash,
			Kind:        model.MergeThreeWay,
			Description: fmt.Sprintf("Merge branch '%s' into %s", from, to),
			Timestamp:   node.Timestamp,
		})
	}

	return merges
}

// classifyOne derives the (from, to) branch pair for a single merge
// commit from three membership sets.
//
// The to branch contains the merge commit and its mainline parent but
// is not exclusive to the incoming side. The from branch is one the
// incoming parent carries and the mainline parent does not; when the
// merge itself made the incoming branch reach the mainline, every
// shared branch except the chosen to remains a from candidate.
func classifyOne(node, mainline, incoming *model.CommitNode, currentBranch string) (from, to string, ok bool) {
	inMainline := memberSet(mainline.Branches)

	exclusive := make(map[string]bool)
	for _, name := range incoming.Branches {
		if !inMainline[name] {
			exclusive[name] = true
		}
	}

	var toCandidates []string
	for _, name := range node.Branches {
		if inMainline[name] && !exclusive[name] {
			toCandidates = append(toCandidates, name)
		}
	}
	if len(toCandidates) == 0 {
		return "", "", false
	}

	to = toCandidates[0]
	for _, name := range toCandidates {
		if name == currentBranch {
			to = name
			break
		}
	}

	// Branches exclusive to the incoming side are the strongest source
	// signal and outrank the shared fallback.
	inNode := memberSet(node.Branches)
	var fromCandidates []string
	for _, name := range incoming.Branches {
		if exclusive[name] {
			fromCandidates = append(fromCandidates, name)
		}
	}
	for _, name := range incoming.Branches {
		if exclusive[name] {
			continue
		}
		if inMainline[name] && inNode[name] && name != to {
			fromCandidates = append(fromCandidates, name)
		}
	}
	if len(fromCandidates) == 0 {
		return "", "", false
	}

	from = fromCandidates[0]
	if from == to {
		return "", "", false
	}
	return from, to, true
}

func memberSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, name := range names {
		set[name] = true
	}
	return set
}
