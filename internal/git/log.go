package git

import (
	"fmt"
	"os/exec"
)

// logFormat emits one record per commit with fields joined by a NUL
// byte, which git guarantees absent from hashes, ref names, and epoch
// timestamps: full hash, space-separated parent hashes, comma-separated
// full ref decorations, commit timestamp in seconds.
const logFormat = "--format=%H%x00%P%x00%D%x00%ct"

// LogAll returns the raw history of every branch, one record per line,
// topologically ordered with commit date as tiebreak. The output is the
// input contract of the graph builder; parsing happens there so this
// client stays a thin subprocess wrapper.
func (c *Client) LogAll() (string, error) {
	cmd := exec.Command("git", "log", "--all", "--topo-order", "--date-order",
		"--decorate=full", logFormat)
	cmd.Dir = c.gitRoot
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("failed to query history: %w", err)
	}
	return string(output), nil
}
