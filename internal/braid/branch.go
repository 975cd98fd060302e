package braid

import "fmt"

// CheckoutBranch switches the working tree to branch and drops every
// cached answer that depends on HEAD.
func (c *Client) CheckoutBranch(name string) error {
	if !c.git.BranchExists(name) {
		return fmt.Errorf("branch %s does not exist", name)
	}
	if err := c.git.CheckoutBranch(name); err != nil {
		return err
	}
	c.cache.Invalidate("")
	return nil
}

// DeleteBranch deletes a local branch. The checked-out branch cannot be
// deleted.
func (c *Client) DeleteBranch(name string, force bool) error {
	current, err := c.CurrentBranch()
	if err != nil {
		return fmt.Errorf("failed to resolve current branch: %w", err)
	}
	if name == current {
		return fmt.Errorf("branch %s is checked out", name)
	}
	if err := c.git.DeleteBranch(name, force); err != nil {
		return err
	}
	c.cache.Invalidate("")
	return nil
}
