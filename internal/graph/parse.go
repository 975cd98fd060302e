package graph

import (
	"strconv"
	"strings"
	"time"
)

const (
	// fieldSep joins the four record fields; git guarantees it never
	// appears inside a hash, ref name, or timestamp
	fieldSep = "\x00"

	// branchRefPrefix is the local-branch ref namespace. Remote refs and
	// tags are filtered out by it.
	branchRefPrefix = "refs/heads/"

	// headMarker prefixes the checked-out ref in decorations
	headMarker = "HEAD -> "
)

// Record is one parsed history record: a commit hash, its parents in
// git's order, the local branches decorating it, and its commit time.
type Record struct {
	Hash      string
	Parents   []string
	Branches  []string
	Timestamp time.Time
}

// ParseLog splits raw history output into records. Malformed lines are
// skipped, never fatal: truncated or shallow history is expected input,
// not an error.
func ParseLog(raw string) []Record {
	var records []Record
	for _, line := range strings.Split(raw, "\n") {
		if rec, ok := parseRecord(line); ok {
			records = append(records, rec)
		}
	}
	return records
}

// parseRecord parses a single "<hash>NUL<parents>NUL<decorations>NUL<epoch>"
// line. Reports ok=false for records that don't carry all four fields.
func parseRecord(line string) (Record, bool) {
	fields := strings.Split(line, fieldSep)
	if len(fields) < 4 {
		return Record{}, false
	}

	hash := strings.TrimSpace(fields[0])
	if hash == "" {
		return Record{}, false
	}

	rec := Record{
		Hash:      hash,
		Branches:  parseDecorations(fields[2]),
		Timestamp: parseTimestamp(fields[3]),
	}
	// A root commit has an empty parent field; keep Parents nil for it.
	if parents := strings.Fields(fields[1]); len(parents) > 0 {
		rec.Parents = parents
	}
	return rec, true
}

// parseDecorations extracts bare local branch names from a decoration
// list like "HEAD -> refs/heads/main, refs/heads/dev, tag: refs/tags/v1,
// refs/remotes/origin/main".
func parseDecorations(field string) []string {
	var branches []string
	for _, deco := range strings.Split(field, ",") {
		deco = strings.TrimSpace(deco)
		deco = strings.TrimPrefix(deco, headMarker)
		if !strings.HasPrefix(deco, branchRefPrefix) {
			continue
		}
		name := strings.TrimPrefix(deco, branchRefPrefix)
		if name == "" {
			continue
		}
		branches = append(branches, name)
	}
	return branches
}

// parseTimestamp parses epoch seconds. An unparseable timestamp falls
// back to the current instant rather than aborting the build.
func parseTimestamp(field string) time.Time {
	secs, err := strconv.ParseInt(strings.TrimSpace(field), 10, 64)
	if err != nil {
		return time.Now()
	}
	return time.Unix(secs, 0)
}
