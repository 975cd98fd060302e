package ui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Message icons, paired with the matching styles in styles.go.
const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "⚠"
	iconInfo    = "ℹ"
)

// message renders one status line. Results go to stdout; diagnostics
// go to stderr so scripted callers can pipe braid's output without the
// commentary mixed in.
func message(w *os.File, style lipgloss.Style, icon, msg string) {
	fmt.Fprintln(w, style.Render(icon+" "+msg))
}

// Success reports a completed action.
func Success(msg string) {
	message(os.Stdout, SuccessStyle, iconSuccess, msg)
}

func Successf(format string, args ...any) {
	Success(fmt.Sprintf(format, args...))
}

// Error reports a failure.
func Error(msg string) {
	message(os.Stderr, ErrorStyle, iconError, msg)
}

func Errorf(format string, args ...any) {
	Error(fmt.Sprintf(format, args...))
}

// Warning reports something off that did not stop the operation.
func Warning(msg string) {
	message(os.Stderr, WarningStyle, iconWarning, msg)
}

func Warningf(format string, args ...any) {
	Warning(fmt.Sprintf(format, args...))
}

// Info reports neutral progress or context.
func Info(msg string) {
	message(os.Stdout, InfoStyle, iconInfo, msg)
}

func Infof(format string, args ...any) {
	Info(fmt.Sprintf(format, args...))
}

// Print writes msg and a newline to stdout, unstyled.
func Print(msg string) {
	fmt.Fprintln(os.Stdout, msg)
}

// Printf writes formatted output to stdout, unstyled. It appends no
// newline; formats carry their own.
func Printf(format string, args ...any) {
	fmt.Fprintf(os.Stdout, format, args...)
}

// Dim returns dimmed/muted text
func Dim(text string) string {
	return DimStyle.Render(text)
}

// Bold returns bold text
func Bold(text string) string {
	return BoldStyle.Render(text)
}

// Highlight returns highlighted text (primary color, bold)
func Highlight(text string) string {
	return HighlightStyle.Render(text)
}

// Muted returns muted text
func Muted(text string) string {
	return MutedStyle.Render(text)
}
