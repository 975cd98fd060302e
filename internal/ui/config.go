package ui

// DisplayConfig holds configuration for UI rendering
type DisplayConfig struct {
	// Truncation limits
	MaxBranchNameLength  int
	MaxDescriptionLength int
	MaxPreviewMerges     int
	MaxPreviewCommits    int

	// Display lengths
	CommitHashDisplayLength int
	DefaultTerminalWidth    int
}

// DefaultDisplayConfig returns the default display configuration
func DefaultDisplayConfig() DisplayConfig {
	return DisplayConfig{
		MaxBranchNameLength:  24,
		MaxDescriptionLength: 48,
		MaxPreviewMerges:     5,
		MaxPreviewCommits:    5,

		CommitHashDisplayLength: 7,
		DefaultTerminalWidth:    120,
	}
}

// Global display configuration (can be overridden)
var Display = DefaultDisplayConfig()
