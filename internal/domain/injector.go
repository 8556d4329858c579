package domain

import (
	"fmt"
	"strings"

	m "github.com/mouse-blink/splicer/internal/model"
)

// Apply splices content into buffer at anchor and returns the new buffer.
//
// Offsets in anchor are only valid for the buffer they were located in. Callers
// applying several transformations to one buffer must locate again after each
// Apply; a stale anchor that falls outside the buffer yields ErrInvalidAnchor.
func Apply(buffer string, anchor m.Anchor, content string) (string, error) {
	switch anchor.Mode {
	case m.ModeAppendEnd:
		return appendEnd(buffer, content), nil
	case m.ModeInsertAfter:
		if err := checkSpan(buffer, anchor); err != nil {
			return "", err
		}

		return buffer[:anchor.End] + content + buffer[anchor.End:], nil
	case m.ModeReplaceSpan:
		if err := checkSpan(buffer, anchor); err != nil {
			return "", err
		}

		return buffer[:anchor.Start] + content + buffer[anchor.End:], nil
	default:
		return "", fmt.Errorf("unsupported injection mode %q", anchor.Mode)
	}
}

func checkSpan(buffer string, anchor m.Anchor) error {
	if anchor.Start < 0 || anchor.End < anchor.Start || anchor.End > len(buffer) {
		return fmt.Errorf("%w: [%d,%d) in %d bytes", ErrInvalidAnchor, anchor.Start, anchor.End, len(buffer))
	}

	return nil
}

// appendEnd trims trailing whitespace from buffer, separates the content with
// one newline and terminates the result with exactly one newline.
func appendEnd(buffer, content string) string {
	trimmed := strings.TrimRight(buffer, " \t\r\n")

	var b strings.Builder

	b.Grow(len(trimmed) + len(content) + 2)
	b.WriteString(trimmed)

	if trimmed != "" {
		b.WriteByte('\n')
	}

	b.WriteString(strings.TrimRight(content, "\n"))
	b.WriteByte('\n')

	return b.String()
}
