package model

import "time"

// MergeKind classifies how two branches were joined.
type MergeKind string

const (
	// MergeThreeWay is a genuine merge commit joining two lineages
	MergeThreeWay MergeKind = "three-way"

	// MergeFastForward is a pointer advance with no merge commit.
	// Fast-forwards are recorded for audit but excluded from consolidated
	// output because nothing in history distinguishes them afterwards.
	MergeFastForward MergeKind = "fast-forward"
)

// MergeRelationship describes one merge between two branches. It is only
// meaningful while both branch names still exist.
type MergeRelationship struct {
	From        string    `json:"from"`
	To          string    `json:"to"`
	Commit      string    `json:"commit"`
	Kind        MergeKind `json:"type"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
}

// LedgerEntry is a MergeRelationship persisted outside a single build
// pass. Entries are written when a surrounding operation performs an
// explicit merge, because structural inference cannot always recover
// branch identity after a branch is deleted or a commit becomes shared.
type LedgerEntry struct {
	ID string `json:"id"`
	MergeRelationship
}
