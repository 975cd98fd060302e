package braid

import (
	"time"

	"github.com/bjulian5/braid/internal/cache"
	"github.com/bjulian5/braid/internal/git"
)

// cached serves key from the cache or fetches and stores it for ttl.
// Fetch errors are returned as-is and never cached.
func cached[V any](c *Client, key string, ttl time.Duration, fetch func() (V, error)) (V, error) {
	if value, ok := cache.Get[V](c.cache, key); ok {
		return value, nil
	}

	value, err := fetch()
	if err != nil {
		var zero V
		return zero, err
	}
	c.cache.Set(key, value, ttl)
	return value, nil
}

// Branches lists local branch names.
func (c *Client) Branches() ([]string, error) {
	return cached(c, keyBranches, cache.TTLBranches, c.git.ListBranches)
}

// Remotes lists configured remote names.
func (c *Client) Remotes() ([]string, error) {
	return cached(c, keyRemotes, cache.TTLRemotes, c.git.ListRemotes)
}

// Tags lists tag names.
func (c *Client) Tags() ([]string, error) {
	return cached(c, keyTags, cache.TTLTags, c.git.ListTags)
}

// Status summarizes the working tree.
func (c *Client) Status() (*git.StatusSummary, error) {
	return cached(c, keyStatus, cache.TTLStatus, c.git.Status)
}

// CurrentBranch returns the checked-out branch name, or the empty
// string on a detached HEAD.
func (c *Client) CurrentBranch() (string, error) {
	name, err := c.git.GetCurrentBranch()
	if err != nil {
		return "", err
	}
	if name == "HEAD" {
		return "", nil
	}
	return name, nil
}

// BranchExists reports whether a local branch by that name exists.
func (c *Client) BranchExists(name string) bool {
	return c.git.BranchExists(name)
}
