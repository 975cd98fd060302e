// Package braid assembles repository history into a branch graph:
// every commit with its branch memberships, the links between them,
// and the inferred record of which branches merged into which.
package braid

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/bjulian5/braid/internal/cache"
	"github.com/bjulian5/braid/internal/git"
	"github.com/bjulian5/braid/internal/merge"
)

// stateDirName is braid's directory under .git, holding the ledger
// database and the repository config.
const stateDirName = "braid"

// Cache keys for the repository queries. The merge path invalidates by
// substring, so related keys share a stem.
const (
	keyStatus      = "status"
	keyLog         = "log"
	keyBranches    = "branches"
	keyTags        = "tags"
	keyRemotes     = "remotes"
	keyBranchGraph = "branch-graph"
)

// GitClient is the repository surface the client consumes. *git.Client
// implements it; tests substitute a mock.
type GitClient interface {
	GitRoot() string
	GetCurrentBranch() (string, error)
	ListBranches() ([]string, error)
	BranchExists(name string) bool
	ListRemotes() ([]string, error)
	ListTags() ([]string, error)
	HasUncommittedChanges() (bool, error)
	LogAll() (string, error)
	Merge(branch string, noFF bool) (*git.MergeResult, error)
	Status() (*git.StatusSummary, error)
	CheckoutBranch(name string) error
	DeleteBranch(name string, force bool) error
}

var _ GitClient = (*git.Client)(nil)

// Client answers repository questions for interactive callers. Every
// query is cached with a short per-query lifetime, so a burst of calls
// costs one git invocation instead of dozens, and concurrent graph
// builds coalesce into a single pass.
type Client struct {
	git        GitClient
	cache      *cache.Cache
	flight     *cache.Group
	classifier merge.Classifier
	stateDir   string
}

// NewClient creates a client over gitClient. State lives under the
// repository's .git directory, so clones do not carry it.
func NewClient(gitClient GitClient) *Client {
	c := cache.New()
	return &Client{
		git:        gitClient,
		cache:      c,
		flight:     cache.NewGroup(c),
		classifier: merge.SetClassifier{},
		stateDir:   filepath.Join(gitClient.GitRoot(), ".git", stateDirName),
	}
}

// GitRoot returns the repository's top-level directory.
func (c *Client) GitRoot() string {
	return c.git.GitRoot()
}

// newEntryID returns a 16-character hex identifier for ledger entries,
// short enough to read next to commit hashes.
func newEntryID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:16]
}
