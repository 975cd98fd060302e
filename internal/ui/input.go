package ui

import (
	"bufio"
	"os"
	"strings"
)

// Confirm prompts the user and reports whether they answered yes.
// Anything other than "y" or "yes" (case-insensitive) declines.
func Confirm(prompt string) bool {
	reader := bufio.NewReader(os.Stdin)
	os.Stdout.WriteString(prompt + " [y/N] ")
	input, _ := reader.ReadString('\n')
	answer := strings.ToLower(strings.TrimSpace(input))
	return answer == "y" || answer == "yes"
}
