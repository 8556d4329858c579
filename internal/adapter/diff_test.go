package adapter

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/sourcegraph/go-diff/diff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/splicer/internal/model"
)

func TestDiffRenderer_Render(t *testing.T) {
	renderer := NewDiffRenderer(NewLocalTargetFSAdapter())
	root := m.Path(t.TempDir())

	t.Run("insertion in the middle", func(t *testing.T) {
		change := m.FileChange{
			Path:   m.Path(filepath.Join(string(root), "src", "d_main.cpp")),
			Before: "a\nb\nc\nd\ne\nf\ng\nh\n",
			After:  "a\nb\nc\nd\nX\ne\nf\ng\nh\n",
		}

		out, err := renderer.Render(root, []m.FileChange{change})
		require.NoError(t, err)

		assert.Contains(t, out, "--- a/src/d_main.cpp")
		assert.Contains(t, out, "+++ b/src/d_main.cpp")
		assert.Contains(t, out, "@@ -2,6 +2,7 @@")
		assert.Contains(t, out, "\n+X\n")
		assert.NotContains(t, out, " a\n", "context is limited to three lines")

		parsed, err := diff.ParseMultiFileDiff([]byte(out))
		require.NoError(t, err)
		require.Len(t, parsed, 1)
		require.Len(t, parsed[0].Hunks, 1)
		assert.Equal(t, int32(7), parsed[0].Hunks[0].NewLines)
	})

	t.Run("append to end", func(t *testing.T) {
		change := m.FileChange{
			Path:   m.Path(filepath.Join(string(root), "CMakeLists.txt")),
			Before: "project(demo)\n",
			After:  "project(demo)\ntarget_link_libraries(demo ws2_32)\n",
		}

		out, err := renderer.Render(root, []m.FileChange{change})
		require.NoError(t, err)

		assert.Contains(t, out, "@@ -1,1 +1,2 @@")
		assert.Contains(t, out, " project(demo)\n+target_link_libraries(demo ws2_32)\n")
	})

	t.Run("replacement", func(t *testing.T) {
		change := m.FileChange{
			Path:   "notes.txt",
			Before: "one\ntwo\nthree\n",
			After:  "one\n2\nthree\n",
		}

		out, err := renderer.Render("", []m.FileChange{change})
		require.NoError(t, err)

		assert.Contains(t, out, "--- a/notes.txt")
		assert.Contains(t, out, "-two\n+2\n")
	})

	t.Run("new content in empty file", func(t *testing.T) {
		change := m.FileChange{Path: "empty.txt", After: "line\n"}

		out, err := renderer.Render("", []m.FileChange{change})
		require.NoError(t, err)

		assert.Contains(t, out, "@@ -0,0 +1,1 @@")
	})

	t.Run("unchanged files are omitted", func(t *testing.T) {
		out, err := renderer.Render(root, []m.FileChange{{Path: "same.txt", Before: "x\n", After: "x\n"}})
		require.NoError(t, err)
		assert.Empty(t, out)
	})

	t.Run("multiple files keep order", func(t *testing.T) {
		out, err := renderer.Render("", []m.FileChange{
			{Path: "first.txt", Before: "a\n", After: "b\n"},
			{Path: "second.txt", Before: "c\n", After: "d\n"},
		})
		require.NoError(t, err)

		assert.Less(t, strings.Index(out, "first.txt"), strings.Index(out, "second.txt"))
	})
}
