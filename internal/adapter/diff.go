package adapter

import (
	"fmt"
	"strings"

	"github.com/sourcegraph/go-diff/diff"

	m "github.com/mouse-blink/splicer/internal/model"
)

const diffContextLines = 3

// DiffRenderer turns session changes into unified diff text.
type DiffRenderer interface {
	Render(root m.Path, changes []m.FileChange) (string, error)
}

type unifiedDiffRenderer struct {
	fs TargetFSAdapter
}

// NewDiffRenderer constructs a DiffRenderer that labels files relative to the
// project root.
func NewDiffRenderer(fs TargetFSAdapter) DiffRenderer {
	return &unifiedDiffRenderer{fs: fs}
}

// Render emits one hunk per file spanning the first to the last changed line.
func (r *unifiedDiffRenderer) Render(root m.Path, changes []m.FileChange) (string, error) {
	fileDiffs := make([]*diff.FileDiff, 0, len(changes))

	for _, change := range changes {
		if change.Before == change.After {
			continue
		}

		name := string(change.Path)
		if root != "" {
			if rel, err := r.fs.RelPath(root, change.Path); err == nil {
				name = string(rel)
			}
		}

		fileDiffs = append(fileDiffs, &diff.FileDiff{
			OrigName: "a/" + name,
			NewName:  "b/" + name,
			Hunks:    []*diff.Hunk{buildHunk(change.Before, change.After)},
		})
	}

	if len(fileDiffs) == 0 {
		return "", nil
	}

	out, err := diff.PrintMultiFileDiff(fileDiffs)
	if err != nil {
		return "", fmt.Errorf("failed to print diff: %w", err)
	}

	return string(out), nil
}

func buildHunk(before, after string) *diff.Hunk {
	oldLines := splitLines(before)
	newLines := splitLines(after)

	prefix := 0
	for prefix < len(oldLines) && prefix < len(newLines) && oldLines[prefix] == newLines[prefix] {
		prefix++
	}

	suffix := 0
	for suffix < len(oldLines)-prefix && suffix < len(newLines)-prefix &&
		oldLines[len(oldLines)-1-suffix] == newLines[len(newLines)-1-suffix] {
		suffix++
	}

	start := max(prefix-diffContextLines, 0)
	trailing := min(suffix, diffContextLines)

	oldEnd := len(oldLines) - suffix + trailing
	newEnd := len(newLines) - suffix + trailing

	var body strings.Builder

	for _, line := range oldLines[start:prefix] {
		writeDiffLine(&body, ' ', line)
	}

	for _, line := range oldLines[prefix : len(oldLines)-suffix] {
		writeDiffLine(&body, '-', line)
	}

	for _, line := range newLines[prefix : len(newLines)-suffix] {
		writeDiffLine(&body, '+', line)
	}

	for _, line := range oldLines[len(oldLines)-suffix : oldEnd] {
		writeDiffLine(&body, ' ', line)
	}

	hunk := &diff.Hunk{
		OrigStartLine: int32(start + 1),
		OrigLines:     int32(oldEnd - start),
		NewStartLine:  int32(start + 1),
		NewLines:      int32(newEnd - start),
		Body:          []byte(body.String()),
	}

	// Unified diff convention: an empty range starts at the line before it.
	if hunk.OrigLines == 0 {
		hunk.OrigStartLine = int32(start)
	}

	if hunk.NewLines == 0 {
		hunk.NewStartLine = int32(start)
	}

	return hunk
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}

	return strings.SplitAfter(strings.TrimSuffix(s, "\n"), "\n")
}

func writeDiffLine(b *strings.Builder, prefix byte, line string) {
	b.WriteByte(prefix)
	b.WriteString(strings.TrimSuffix(line, "\n"))
	b.WriteByte('\n')
}
