package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss/tree"

	"github.com/bjulian5/braid/internal/model"
)

// RenderBranchTree renders the branch graph as a tree, one node per
// branch with its merge relationships as children.
// Example output:
//
//	Branches (3 total)
//	├─► main (current)
//	│  ├─ 42 commits, head a1b2c3d
//	│  ╰─ ◆ feature → main (d4e5f6a, 2h ago)
//	├─ feature
//	│  ╰─ 17 commits, head d4e5f6a
//	╰─ wip
//	   ╰─ 3 commits, head b2c3d4e
func RenderBranchTree(g *model.BranchGraph) string {
	if len(g.Branches) == 0 {
		return Dim("No branches yet. Make a commit first.")
	}

	title := fmt.Sprintf("Branches (%d total)", len(g.Branches))
	t := tree.Root(HeaderStyle.Render(title))

	for _, name := range g.Branches {
		branchNode := tree.Root(formatBranchNameForTree(name, g.CurrentBranch))

		summary := fmt.Sprintf("%d commits", g.BranchCommits(name))
		if head := g.BranchHead(name); head != "" {
			summary += ", head " + ShortHash(head)
		}
		branchNode.Child(Dim(summary))

		for _, m := range g.Merges {
			if m.To == name {
				branchNode.Child(FormatMergeLine(m))
			}
		}

		t.Child(branchNode)
	}

	t.Enumerator(roundedEnumerator()).
		EnumeratorStyle(TreeEnumeratorStyle).
		Indenter(treeIndenter())

	return t.String()
}

// RenderMergeList renders the consolidated merges as a flat tree.
// Example output:
//
//	Merges (2 total)
//	├─ ◆ feature → main (a1b2c3d, 2h ago)
//	╰─ ◆ hotfix → main (b2c3d4e, 5d ago)
func RenderMergeList(g *model.BranchGraph) string {
	if len(g.Merges) == 0 {
		return Dim("No merges between current branches.")
	}

	title := fmt.Sprintf("Merges (%d total)", len(g.Merges))
	t := tree.Root(HeaderStyle.Render(title))

	for _, m := range g.Merges {
		t.Child(FormatMergeLine(m))
	}

	t.Enumerator(roundedEnumerator()).
		EnumeratorStyle(TreeEnumeratorStyle).
		Indenter(treeIndenter())

	return t.String()
}

// formatBranchNameForTree formats a branch name with current marker
func formatBranchNameForTree(name string, currentBranch string) string {
	if name == currentBranch {
		return TreeCurrentMarkerStyle.Render("► ") + TreeRootStyle.Render(name) + TreeCurrentMarkerStyle.Render(" (current)")
	}
	return TreeItemStyle.Render(name)
}

// roundedEnumerator returns a custom rounded enumerator for trees
func roundedEnumerator() tree.Enumerator {
	return func(children tree.Children, i int) string {
		if children.Length() == 0 {
			return ""
		}

		if i == children.Length()-1 {
			return "╰─ "
		}
		return "├─ "
	}
}

// treeIndenter returns an indenter function for trees
func treeIndenter() tree.Indenter {
	return func(children tree.Children, i int) string {
		if children.Length() == 0 {
			return ""
		}

		if i == children.Length()-1 {
			return "   " // No vertical line after last child
		}
		return "│  " // Vertical line for non-last children
	}
}
