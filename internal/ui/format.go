package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/bjulian5/braid/internal/model"
)

// Truncate truncates text to maxLen with an ellipsis if needed
// Uses lipgloss for proper ANSI-aware width handling
func Truncate(text string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= maxLen {
		return text
	}

	if maxLen <= 3 {
		return lipgloss.NewStyle().MaxWidth(maxLen).Render(text)
	}
	return lipgloss.NewStyle().MaxWidth(maxLen-3).Render(text) + "..."
}

// ShortHash shortens a commit hash for display.
func ShortHash(hash string) string {
	if len(hash) > Display.CommitHashDisplayLength {
		return hash[:Display.CommitHashDisplayLength]
	}
	return hash
}

// RenderBox renders content inside a rounded box, optionally titled.
func RenderBox(title string, content string) string {
	style := BoxStyle
	if title != "" {
		style = style.BorderForeground(ColorPrimary)
		titleStyled := lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true).
			Render(title)

		combined := lipgloss.JoinVertical(lipgloss.Left, titleStyled, "", content)
		return style.Render(combined)
	}
	return style.Render(content)
}

// RenderSeparator renders a horizontal separator line
func RenderSeparator(width int) string {
	if width <= 0 {
		width = GetTerminalWidth()
		if width <= 0 {
			width = Display.DefaultTerminalWidth
		}
	}
	return DimStyle.Render(strings.Repeat("─", width))
}

func RenderKeyValue(key string, value string) string {
	keyStyled := DimStyle.Render(key + ":")
	return fmt.Sprintf("%s %s", keyStyled, value)
}

// Rows joins multiple strings vertically with newlines
func Rows(items ...string) string {
	return lipgloss.JoinVertical(lipgloss.Left, items...)
}

// FormatRelativeTime renders t relative to now, coarsely: "just now",
// "12m ago", "3h ago", "5d ago", falling back to a date.
func FormatRelativeTime(t time.Time) string {
	if t.IsZero() {
		return "unknown"
	}

	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 30*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	default:
		return t.Format("2006-01-02")
	}
}

// FormatMergeLine formats one merge relationship for display.
// e.g., "◆ feature → main (a1b2c3d, 2h ago)"
func FormatMergeLine(m model.MergeRelationship) string {
	detail := ShortHash(m.Commit)
	if detail == "" {
		detail = "recorded"
	}
	return fmt.Sprintf("%s %s %s %s %s",
		StatusMergedStyle.Render(IconMerged),
		Bold(m.From),
		Dim("→"),
		Bold(m.To),
		Dim(fmt.Sprintf("(%s, %s)", detail, FormatRelativeTime(m.Timestamp))),
	)
}

// FormatBranchFinderLine formats a branch for fuzzy finder display.
// Fuzzy finder doesn't support ANSI codes, so we use plain text.
func FormatBranchFinderLine(name string, g *model.BranchGraph) string {
	displayName := name
	if len(displayName) > Display.MaxBranchNameLength {
		if Display.MaxBranchNameLength > 3 {
			displayName = displayName[:Display.MaxBranchNameLength-3] + "..."
		} else {
			displayName = displayName[:Display.MaxBranchNameLength]
		}
	}

	line := fmt.Sprintf("%-*s", Display.MaxBranchNameLength, displayName)

	commits := g.BranchCommits(name)
	line += fmt.Sprintf("  %d commit", commits)
	if commits != 1 {
		line += "s"
	}

	var in, out int
	for _, m := range g.Merges {
		switch name {
		case m.To:
			in++
		case m.From:
			out++
		}
	}
	if in > 0 {
		line += fmt.Sprintf("  │  %d merged in", in)
	}
	if out > 0 {
		line += fmt.Sprintf("  │  merged into %d", out)
	}

	if name == g.CurrentBranch {
		line += "  ← current"
	}
	return line
}

// FormatBranchPreview formats a branch for the fuzzy finder preview
// window. The preview pane supports ANSI codes, so styling is fine.
func FormatBranchPreview(name string, g *model.BranchGraph) string {
	status := GetBranchStatus(name, g)

	lines := []string{
		RenderKeyValue("Branch", Bold(name)),
		RenderKeyValue("State", status.Render()),
		RenderKeyValue("Head", Muted(ShortHash(g.BranchHead(name)))),
		RenderKeyValue("Commits", fmt.Sprintf("%d", g.BranchCommits(name))),
	}

	var related []model.MergeRelationship
	for _, m := range g.Merges {
		if m.From == name || m.To == name {
			related = append(related, m)
		}
	}

	if len(related) > 0 {
		lines = append(lines, "", Bold("Merges:"))

		maxPreview := Display.MaxPreviewMerges
		if len(related) < maxPreview {
			maxPreview = len(related)
		}
		for i := 0; i < maxPreview; i++ {
			lines = append(lines, "  "+FormatMergeLine(related[i]))
		}
		if len(related) > maxPreview {
			lines = append(lines, Dim(fmt.Sprintf("  ... and %d more", len(related)-maxPreview)))
		}
	} else {
		lines = append(lines, "", Dim("No merges involve this branch"))
	}

	return strings.Join(lines, "\n")
}
