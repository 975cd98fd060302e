package braid

import (
	"fmt"
	"log"
	"time"

	"github.com/bjulian5/braid/internal/git"
	"github.com/bjulian5/braid/internal/ledger"
	"github.com/bjulian5/braid/internal/model"
)

// MergeBranch merges branch into the checked-out branch and records
// the event. Recording is best-effort: a ledger problem never turns a
// completed merge into a failure.
func (c *Client) MergeBranch(branch string, noFF bool) (*git.MergeResult, error) {
	if !c.git.BranchExists(branch) {
		return nil, fmt.Errorf("branch %s does not exist", branch)
	}

	target, err := c.CurrentBranch()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve current branch: %w", err)
	}
	if target == "" {
		return nil, fmt.Errorf("cannot merge onto a detached HEAD")
	}
	if target == branch {
		return nil, fmt.Errorf("branch %s is already checked out", branch)
	}

	result, err := c.git.Merge(branch, noFF)
	if err != nil {
		return nil, err
	}

	// Everything derived from history is stale now.
	c.cache.Invalidate("")

	if result.AlreadyUpToDate {
		return result, nil
	}

	kind := model.MergeThreeWay
	description := fmt.Sprintf("Merge branch '%s' into %s", branch, target)
	if result.FastForward {
		kind = model.MergeFastForward
		description = fmt.Sprintf("Fast-forward %s to %s", target, branch)
	}

	c.record(model.LedgerEntry{
		ID: newEntryID(),
		MergeRelationship: model.MergeRelationship{
			From:        branch,
			To:          target,
			Commit:      result.Commit,
			Kind:        kind,
			Description: description,
			Timestamp:   time.Now(),
		},
	})
	return result, nil
}

// AddLedgerEntry records a manual merge event, for merges performed
// outside braid that inference can no longer see. The branches do not
// have to exist anymore; consolidation filters at read time.
func (c *Client) AddLedgerEntry(from, to, commit, description string) (model.LedgerEntry, error) {
	if from == "" || to == "" {
		return model.LedgerEntry{}, fmt.Errorf("both a source and a target branch are required")
	}
	if from == to {
		return model.LedgerEntry{}, fmt.Errorf("a branch cannot merge into itself")
	}
	if description == "" {
		description = fmt.Sprintf("Merge branch '%s' into %s", from, to)
	}

	entry := model.LedgerEntry{
		ID: newEntryID(),
		MergeRelationship: model.MergeRelationship{
			From:        from,
			To:          to,
			Commit:      commit,
			Kind:        model.MergeThreeWay,
			Description: description,
			Timestamp:   time.Now(),
		},
	}

	err := c.withLedger(func(store *ledger.Store) error {
		return store.Append(entry)
	})
	if err != nil {
		return model.LedgerEntry{}, fmt.Errorf("failed to record merge: %w", err)
	}

	c.cache.Invalidate(keyBranchGraph)
	return entry, nil
}

// LedgerEntries returns every recorded event in insertion order,
// including fast-forwards and entries for branches long deleted.
func (c *Client) LedgerEntries() ([]model.LedgerEntry, error) {
	var entries []model.LedgerEntry
	err := c.withLedger(func(store *ledger.Store) error {
		var err error
		entries, err = store.All()
		return err
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// record appends entry, logging instead of failing.
func (c *Client) record(entry model.LedgerEntry) {
	err := c.withLedger(func(store *ledger.Store) error {
		return store.Append(entry)
	})
	if err != nil {
		log.Printf("failed to record merge of %s into %s: %v", entry.From, entry.To, err)
	}
}

// withLedger opens the store for one operation. Holding the file only
// briefly lets a serve process and the CLI take turns on it.
func (c *Client) withLedger(fn func(*ledger.Store) error) error {
	store, err := ledger.Open(c.stateDir)
	if err != nil {
		return err
	}
	defer store.Close()
	return fn(store)
}
