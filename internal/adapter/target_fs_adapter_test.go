package adapter

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	m "github.com/mouse-blink/splicer/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalTargetFSAdapter_ReadFile(t *testing.T) {
	adapter := NewLocalTargetFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "CMakeLists.txt")
	content := "cmake_minimum_required(VERSION 3.16)\nproject(demo)\n"
	writeTestFile(t, path, content)

	got, err := adapter.ReadFile(m.Path(path))
	require.NoError(t, err)

	assert.Equal(t, content, string(got))
}

func TestLocalTargetFSAdapter_FileInfo(t *testing.T) {
	adapter := NewLocalTargetFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "d_main.cpp")
	writeTestFile(t, path, "int main() {}\n")

	info, err := adapter.FileInfo(m.Path(path))
	require.NoError(t, err)
	assert.False(t, info.IsDir(), "FileInfo() reported file as directory")

	dirInfo, err := adapter.FileInfo(m.Path(root))
	require.NoError(t, err)
	assert.True(t, dirInfo.IsDir(), "FileInfo() reported directory as file")

	_, err = adapter.FileInfo(m.Path(filepath.Join(root, "missing.cpp")))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLocalTargetFSAdapter_WriteFileAtomic(t *testing.T) {
	adapter := NewLocalTargetFSAdapter()

	t.Run("replaces content and keeps mode", func(t *testing.T) {
		root := t.TempDir()
		path := filepath.Join(root, "build.sh")
		writeTestFile(t, path, "old\n")

		err := adapter.WriteFileAtomic(m.Path(path), []byte("new\n"), 0o755)
		require.NoError(t, err)

		assert.Equal(t, "new\n", string(readFileBytes(t, path)))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())
	})

	t.Run("leaves no temporary files behind", func(t *testing.T) {
		root := t.TempDir()
		path := filepath.Join(root, "CMakeLists.txt")
		writeTestFile(t, path, "old\n")

		require.NoError(t, adapter.WriteFileAtomic(m.Path(path), []byte("new\n"), 0o644))

		entries, err := os.ReadDir(root)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "CMakeLists.txt", entries[0].Name())
	})

	t.Run("fails for missing directory", func(t *testing.T) {
		root := t.TempDir()
		path := filepath.Join(root, "nope", "file.txt")

		err := adapter.WriteFileAtomic(m.Path(path), []byte("x"), 0o644)
		assert.Error(t, err)
	})
}

func TestLocalTargetFSAdapter_CopyFile(t *testing.T) {
	adapter := NewLocalTargetFSAdapter()

	t.Run("copies content and mode into new directories", func(t *testing.T) {
		root := t.TempDir()
		src := filepath.Join(root, "src", "d_main.cpp")
		require.NoError(t, os.MkdirAll(filepath.Dir(src), 0o755))
		writeTestFile(t, src, "void D_Cleanup() {}\n")
		require.NoError(t, os.Chmod(src, 0o640))

		dst := filepath.Join(root, ".splicer", "backups", "20261019_101500", "src", "d_main.cpp")

		require.NoError(t, adapter.CopyFile(m.Path(src), m.Path(dst), true))

		assert.Equal(t, "void D_Cleanup() {}\n", string(readFileBytes(t, dst)))

		info, err := os.Stat(dst)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o640), info.Mode().Perm())
	})

	t.Run("exclusive refuses to overwrite", func(t *testing.T) {
		root := t.TempDir()
		src := filepath.Join(root, "a.txt")
		dst := filepath.Join(root, "a.txt.backup_20261019_101500")
		writeTestFile(t, src, "new")
		writeTestFile(t, dst, "old")

		err := adapter.CopyFile(m.Path(src), m.Path(dst), true)
		require.Error(t, err)
		assert.True(t, errors.Is(err, os.ErrExist))
		assert.Equal(t, "old", string(readFileBytes(t, dst)))
	})

	t.Run("non exclusive overwrites", func(t *testing.T) {
		root := t.TempDir()
		src := filepath.Join(root, "a.txt.backup")
		dst := filepath.Join(root, "a.txt")
		writeTestFile(t, src, "original")
		writeTestFile(t, dst, "patched and longer")

		require.NoError(t, adapter.CopyFile(m.Path(src), m.Path(dst), false))
		assert.Equal(t, "original", string(readFileBytes(t, dst)))
	})
}

func TestLocalTargetFSAdapter_FindProjectRoot(t *testing.T) {
	adapter := NewLocalTargetFSAdapter()

	root := t.TempDir()
	projectDir := filepath.Join(root, "project")
	mustMkdir(t, projectDir)
	writeTestFile(t, filepath.Join(projectDir, "splicer.toml"), "plan = []\n")

	subDir := filepath.Join(projectDir, "src", "archipelago")
	require.NoError(t, os.MkdirAll(subDir, 0o755))

	got, err := adapter.FindProjectRoot(m.Path(subDir), "splicer.toml")
	require.NoError(t, err)
	assert.Equal(t, m.Path(projectDir), got)

	_, err = adapter.FindProjectRoot(m.Path(subDir), "does-not-exist.toml")
	assert.True(t, errors.Is(err, ErrProjectRootNotFound))
}

func TestLocalTargetFSAdapter_PathHelpers(t *testing.T) {
	adapter := NewLocalTargetFSAdapter()

	base := m.Path("/tmp/project")
	target := m.Path("/tmp/project/src/archipelago/CMakeLists.txt")

	rel, err := adapter.RelPath(base, target)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("src", "archipelago", "CMakeLists.txt"), string(rel))

	joined := adapter.JoinPath("/tmp", "project", "src", "d_main.cpp")
	assert.Equal(t, filepath.Join("/tmp", "project", "src", "d_main.cpp"), string(joined))
}

func TestLocalTargetFSAdapter_WriteFileSetsMode(t *testing.T) {
	adapter := NewLocalTargetFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "rollback.sh")
	writeTestFile(t, path, "#!/bin/sh\n")

	require.NoError(t, adapter.WriteFile(m.Path(path), []byte("#!/bin/sh\necho hi\n"), 0o755))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())
}

func writeTestFile(t *testing.T, path, contents string) {
	t.Helper()
	writeTestBytes(t, path, []byte(contents))
}

func writeTestBytes(t *testing.T, path string, contents []byte) {
	t.Helper()
	if err := os.WriteFile(path, contents, 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func mustMkdir(t *testing.T, path string) {
	t.Helper()
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatalf("failed to create dir %s: %v", path, err)
	}
}

func examplePath(t *testing.T, elem ...string) string {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)

	repoRoot := filepath.Clean(filepath.Join(wd, "..", ".."))
	parts := append([]string{repoRoot, "examples"}, elem...)

	return filepath.Join(parts...)
}

func copyExampleFile(t *testing.T, src, dst string) {
	t.Helper()
	content := readFileBytes(t, src)
	require.NoError(t, os.MkdirAll(filepath.Dir(dst), 0o755))
	require.NoError(t, os.WriteFile(dst, content, 0o644))
}

func readFileBytes(t *testing.T, path string) []byte {
	t.Helper()
	content, err := os.ReadFile(path)
	require.NoError(t, err)

	return content
}
