package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// NewBraidTable creates a bordered table in braid's house style:
// rounded corners to match RenderBox, column rules, and alternating
// row shading.
func NewBraidTable() *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(TableBorderStyle).
		BorderColumn(true).
		StyleFunc(braidTableStyleFunc)
}

func braidTableStyleFunc(row, col int) lipgloss.Style {
	switch {
	case row == table.HeaderRow:
		return TableHeaderStyle
	case row%2 == 0:
		return TableCellStyle
	default:
		return TableRowAltStyle
	}
}
