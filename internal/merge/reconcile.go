package merge

import (
	"github.com/bjulian5/braid/internal/model"
)

// Reconcile folds recorded relationships into the structural findings.
// Structural inference wins: a recorded pair the graph already proved
// is dropped, and duplicate recorded pairs collapse to their first
// occurrence. Callers pass recorded entries already filtered down to
// the consolidation rules.
func Reconcile(structural, recorded []model.MergeRelationship) []model.MergeRelationship {
	merges := make([]model.MergeRelationship, 0, len(structural)+len(recorded))
	seen := make(map[pair]bool, len(structural))

	for _, rel := range structural {
		merges = append(merges, rel)
		seen[pair{from: rel.From, to: rel.To}] = true
	}

	for _, rel := range recorded {
		key := pair{from: rel.From, to: rel.To}
		if seen[key] {
			continue
		}
		seen[key] = true
		merges = append(merges, rel)
	}

	return merges
}
