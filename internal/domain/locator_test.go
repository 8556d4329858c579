package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/splicer/internal/model"
)

func TestLocate_FallbackOrdering(t *testing.T) {
	buffer := "A\nB\n"

	t.Run("earlier strategy fallback beats later strategy primary", func(t *testing.T) {
		strategies := []m.LocatorStrategy{
			{
				Name:      "s1",
				Primary:   m.LiteralPattern("missing"),
				Fallbacks: []m.Pattern{m.LiteralPattern("B\n")},
				Mode:      m.ModeInsertAfter,
			},
			{Name: "s2", Primary: m.LiteralPattern("A\n"), Mode: m.ModeInsertAfter},
		}

		anchor, ok := Locate(buffer, strategies)
		require.True(t, ok)
		assert.Equal(t, 2, anchor.Start)
		assert.Equal(t, 4, anchor.End)
		assert.Equal(t, "s1", anchor.Context.Strategy)
		assert.Equal(t, "B\n", anchor.Context.Match)
		assert.Equal(t, []string{"B\n"}, anchor.Context.Groups)
	})

	t.Run("primary beats fallback within a strategy", func(t *testing.T) {
		strategies := []m.LocatorStrategy{{
			Name:      "s1",
			Primary:   m.LiteralPattern("B"),
			Fallbacks: []m.Pattern{m.LiteralPattern("A")},
			Mode:      m.ModeInsertAfter,
		}}

		anchor, ok := Locate(buffer, strategies)
		require.True(t, ok)
		assert.Equal(t, 2, anchor.Start)
	})

	t.Run("nothing matches", func(t *testing.T) {
		strategies := []m.LocatorStrategy{
			{Name: "s1", Primary: m.LiteralPattern("C"), Mode: m.ModeInsertAfter},
			{Name: "s2", Primary: m.RegexPattern(`^Z`), Mode: m.ModeReplaceSpan},
		}

		_, ok := Locate(buffer, strategies)
		assert.False(t, ok)
	})

	t.Run("no strategies", func(t *testing.T) {
		_, ok := Locate(buffer, nil)
		assert.False(t, ok)
	})
}

func TestLocate_Occurrence(t *testing.T) {
	buffer := "x;x;"

	tests := []struct {
		name      string
		strategy  m.LocatorStrategy
		wantStart int
		wantEnd   int
	}{
		{
			name:      "insert defaults to first",
			strategy:  m.LocatorStrategy{Primary: m.LiteralPattern("x"), Mode: m.ModeInsertAfter},
			wantStart: 0,
			wantEnd:   1,
		},
		{
			name:      "explicit last literal",
			strategy:  m.LocatorStrategy{Primary: m.LiteralPattern("x"), Mode: m.ModeInsertAfter, Occurrence: m.OccurrenceLast},
			wantStart: 2,
			wantEnd:   3,
		},
		{
			name:      "explicit last regex",
			strategy:  m.LocatorStrategy{Primary: m.RegexPattern(`x;`), Mode: m.ModeReplaceSpan, Occurrence: m.OccurrenceLast},
			wantStart: 2,
			wantEnd:   4,
		},
		{
			name:      "append-end resolves to end of buffer",
			strategy:  m.LocatorStrategy{Primary: m.LiteralPattern("x"), Mode: m.ModeAppendEnd},
			wantStart: 4,
			wantEnd:   4,
		},
		{
			name:      "append-end with first occurrence still anchors at end",
			strategy:  m.LocatorStrategy{Primary: m.LiteralPattern("x"), Mode: m.ModeAppendEnd, Occurrence: m.OccurrenceFirst},
			wantStart: 4,
			wantEnd:   4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			anchor, ok := Locate(buffer, []m.LocatorStrategy{tt.strategy})
			require.True(t, ok)
			assert.Equal(t, tt.wantStart, anchor.Start)
			assert.Equal(t, tt.wantEnd, anchor.End)
			assert.Equal(t, tt.strategy.Mode, anchor.Mode)
		})
	}
}

func TestLocate_AppendEndGate(t *testing.T) {
	t.Run("gate miss fails the strategy", func(t *testing.T) {
		strategies := []m.LocatorStrategy{{Name: "gate", Primary: m.LiteralPattern("add_executable"), Mode: m.ModeAppendEnd}}

		_, ok := Locate("project( selaco )\n", strategies)
		assert.False(t, ok)
	})

	t.Run("append-end without patterns always matches", func(t *testing.T) {
		strategies := []m.LocatorStrategy{
			{Name: "nothing", Mode: m.ModeInsertAfter},
			{Name: "end-of-file", Mode: m.ModeAppendEnd},
		}

		anchor, ok := Locate("abc", strategies)
		require.True(t, ok)
		assert.Equal(t, "end-of-file", anchor.Context.Strategy)
		assert.Equal(t, 3, anchor.Start)
		assert.Equal(t, 3, anchor.End)
	})
}

func TestLocate_CaptureGroups(t *testing.T) {
	buffer := "void D_Cleanup()\n{\n\tDeleteScreenJob();\n\tS_StopMusic(true);\n}\n"

	t.Run("group span becomes the anchor", func(t *testing.T) {
		pattern := m.RegexPattern(`(?s)(void\s+D_Cleanup\s*\([^)]*\)\s*\{[^}]*?)S_StopMusic`).WithGroup(1)

		anchor, ok := Locate(buffer, []m.LocatorStrategy{{Name: "cleanup", Primary: pattern, Mode: m.ModeInsertAfter}})
		require.True(t, ok)

		stop := strings.Index(buffer, "S_StopMusic")
		assert.Equal(t, 0, anchor.Start)
		assert.Equal(t, stop, anchor.End)
		assert.Equal(t, buffer[:stop+len("S_StopMusic")], anchor.Context.Match)
		require.Len(t, anchor.Context.Groups, 2)
		assert.Equal(t, buffer[:stop], anchor.Context.Groups[1])
	})

	t.Run("named groups are exposed", func(t *testing.T) {
		pattern := m.RegexPattern(`(?P<fn>\w+)\(\);`)

		anchor, ok := Locate(buffer, []m.LocatorStrategy{{Primary: pattern, Mode: m.ModeInsertAfter}})
		require.True(t, ok)
		assert.Equal(t, "DeleteScreenJob", anchor.Context.Named["fn"])
		assert.Equal(t, "DeleteScreenJob();", anchor.Context.Match)
	})

	t.Run("group out of range never matches", func(t *testing.T) {
		pattern := m.RegexPattern(`(Delete)ScreenJob`).WithGroup(2)

		_, ok := Locate(buffer, []m.LocatorStrategy{{Primary: pattern, Mode: m.ModeInsertAfter}})
		assert.False(t, ok)
	})

	t.Run("non-participating group is skipped", func(t *testing.T) {
		pattern := m.RegexPattern(`x(y)?`).WithGroup(1)

		_, ok := Locate("x", []m.LocatorStrategy{{Primary: pattern, Mode: m.ModeInsertAfter}})
		assert.False(t, ok)

		anchor, ok := Locate("xy x", []m.LocatorStrategy{{Primary: pattern, Mode: m.ModeInsertAfter, Occurrence: m.OccurrenceLast}})
		require.True(t, ok)
		assert.Equal(t, 1, anchor.Start)
		assert.Equal(t, 2, anchor.End)
	})
}
