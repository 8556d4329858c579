package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/splicer/internal/model"
)

func TestApply_Modes(t *testing.T) {
	tests := []struct {
		name    string
		buffer  string
		anchor  m.Anchor
		content string
		want    string
	}{
		{
			name:    "insert after match",
			buffer:  "A\nB\n",
			anchor:  m.Anchor{Start: 0, End: 2, Mode: m.ModeInsertAfter},
			content: "X\n",
			want:    "A\nX\nB\n",
		},
		{
			name:    "insert at end of buffer",
			buffer:  "A\n",
			anchor:  m.Anchor{Start: 0, End: 2, Mode: m.ModeInsertAfter},
			content: "B\n",
			want:    "A\nB\n",
		},
		{
			name:    "replace span",
			buffer:  "foo bar baz",
			anchor:  m.Anchor{Start: 4, End: 7, Mode: m.ModeReplaceSpan},
			content: "qux",
			want:    "foo qux baz",
		},
		{
			name:    "replace empty span inserts",
			buffer:  "ab",
			anchor:  m.Anchor{Start: 1, End: 1, Mode: m.ModeReplaceSpan},
			content: "-",
			want:    "a-b",
		},
		{
			name:    "append trims trailing whitespace",
			buffer:  "a\n\n  \t\n",
			anchor:  m.Anchor{Mode: m.ModeAppendEnd},
			content: "b\n\n",
			want:    "a\nb\n",
		},
		{
			name:    "append without trailing newline",
			buffer:  "a",
			anchor:  m.Anchor{Mode: m.ModeAppendEnd},
			content: "b",
			want:    "a\nb\n",
		},
		{
			name:    "append to empty buffer",
			buffer:  "",
			anchor:  m.Anchor{Mode: m.ModeAppendEnd},
			content: "b",
			want:    "b\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Apply(tt.buffer, tt.anchor, tt.content)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestApply_StaleAnchor(t *testing.T) {
	anchors := []m.Anchor{
		{Start: 0, End: 10, Mode: m.ModeInsertAfter},
		{Start: -1, End: 1, Mode: m.ModeReplaceSpan},
		{Start: 3, End: 2, Mode: m.ModeReplaceSpan},
	}

	for _, anchor := range anchors {
		_, err := Apply("abc", anchor, "x")
		require.ErrorIs(t, err, ErrInvalidAnchor)
		assert.Equal(t, m.OutcomeNoAnchor, outcomeKindFor(err))
	}
}

func TestApply_UnknownMode(t *testing.T) {
	_, err := Apply("abc", m.Anchor{Mode: "prepend"}, "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported injection mode")
}

// Offsets located before an edit are never reused: each transformation is
// located again against the buffer the previous one produced.
func TestApply_RelocateAfterEachEdit(t *testing.T) {
	buffer := "A\nB\n"

	steps := []struct {
		after   string
		content string
	}{
		{"A\n", "X\n"},
		{"B\n", "Y\n"},
	}

	for _, step := range steps {
		anchor, ok := Locate(buffer, []m.LocatorStrategy{{Primary: m.LiteralPattern(step.after), Mode: m.ModeInsertAfter}})
		require.True(t, ok)

		var err error
		buffer, err = Apply(buffer, anchor, step.content)
		require.NoError(t, err)
	}

	assert.Equal(t, "A\nX\nB\nY\n", buffer)
}
