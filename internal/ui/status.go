package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bjulian5/braid/internal/model"
)

// Branch state icons
const (
	IconCurrent = "●"
	IconMerged  = "◆"
	IconActive  = "○"
	IconStale   = "◌"
)

// Status represents a branch state with rendering capabilities
type Status struct {
	Icon  string
	Label string
	State string // "current", "merged", "active", "stale"
	Style lipgloss.Style
}

// GetStatus returns a Status object for the given branch state
func GetStatus(state string) Status {
	switch state {
	case "current":
		return Status{
			Icon:  IconCurrent,
			Label: "Current",
			State: state,
			Style: StatusCurrentStyle,
		}
	case "merged":
		return Status{
			Icon:  IconMerged,
			Label: "Merged",
			State: state,
			Style: StatusMergedStyle,
		}
	case "active":
		return Status{
			Icon:  IconActive,
			Label: "Active",
			State: state,
			Style: StatusActiveStyle,
		}
	default: // "stale" or unknown
		return Status{
			Icon:  IconStale,
			Label: "Stale",
			State: "stale",
			Style: StatusStaleStyle,
		}
	}
}

// GetBranchStatus derives a branch's state from the graph: the
// checked-out branch is current, a branch that merged into another is
// merged, everything else is active.
func GetBranchStatus(name string, g *model.BranchGraph) Status {
	return GetStatus(BranchState(name, g))
}

// BranchState returns the raw state string for a branch.
func BranchState(name string, g *model.BranchGraph) string {
	if name == g.CurrentBranch {
		return "current"
	}
	for _, m := range g.Merges {
		if m.From == name {
			return "merged"
		}
	}
	return "active"
}

// Render returns the full status with icon and label (e.g., "● Current")
func (s Status) Render() string {
	return s.Style.Render(s.Icon + " " + s.Label)
}

// RenderCompact returns just the styled icon
func (s Status) RenderCompact() string {
	return s.Style.Render(s.Icon)
}

// RenderWithCount returns status with count (e.g., "◆ 3 merged")
func (s Status) RenderWithCount(count int) string {
	if count == 0 {
		return ""
	}
	text := fmt.Sprintf("%s %d %s", s.Icon, count, strings.ToLower(s.Label))
	return s.Style.Render(text)
}

// FormatBranchSummary formats branch counts by state
// e.g., "● 1 current  ◆ 2 merged  ○ 3 active"
func FormatBranchSummary(g *model.BranchGraph) string {
	var current, merged, active int
	for _, name := range g.Branches {
		switch BranchState(name, g) {
		case "current":
			current++
		case "merged":
			merged++
		default:
			active++
		}
	}

	var parts []string
	if current > 0 {
		parts = append(parts, GetStatus("current").RenderWithCount(current))
	}
	if merged > 0 {
		parts = append(parts, GetStatus("merged").RenderWithCount(merged))
	}
	if active > 0 {
		parts = append(parts, GetStatus("active").RenderWithCount(active))
	}

	if len(parts) == 0 {
		return Dim("no branches")
	}
	return strings.Join(parts, "  ")
}
