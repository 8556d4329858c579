package domain

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/splicer/internal/adapter"
	m "github.com/mouse-blink/splicer/internal/model"
)

func TestGenerateRollback_NoRecords(t *testing.T) {
	script := GenerateRollback(nil)

	assert.True(t, strings.HasPrefix(script, "#!/bin/sh\n"))
	assert.Contains(t, script, "echo 'Rollback complete'")
	assert.NotContains(t, script, "cp -p")
	assert.NotContains(t, script, "# Backups taken")
}

func TestGenerateRollback_Records(t *testing.T) {
	records := []m.BackupRecord{
		{Original: "/work/CMakeLists.txt", Backup: "/work/CMakeLists.txt.backup_20240301_120000", CreatedAt: sessionStart},
		{Original: "/work/it's.cpp", Backup: "/work/it's.cpp.backup_20240301_120000", CreatedAt: sessionStart},
	}

	script := GenerateRollback(records)

	assert.Contains(t, script, "# Backups taken 2024-03-01 12:00:00\n")
	assert.Contains(t, script, "if [ -f '/work/CMakeLists.txt.backup_20240301_120000' ]; then\n")
	assert.Contains(t, script, "    cp -p '/work/CMakeLists.txt.backup_20240301_120000' '/work/CMakeLists.txt'\n")
	assert.Contains(t, script, `'/work/it'\''s.cpp'`)
	assert.Contains(t, script, "echo 'Backup not found:'")
	assert.Equal(t, 2, strings.Count(script, "cp -p"))
	assert.True(t, strings.HasSuffix(script, "echo 'Rollback complete'\n"))

	// first record is restored first
	assert.Less(t, strings.Index(script, "CMakeLists.txt"), strings.Index(script, "it'\\''s.cpp"))
}

func TestRestore(t *testing.T) {
	root := t.TempDir()
	original := writeFile(t, root, "a.txt", "patched")
	backup := writeFile(t, root, "a.txt.backup_20240301_120000", "pristine")

	records := []m.BackupRecord{
		{Original: m.Path(original), Backup: m.Path(backup)},
		{Original: m.Path(filepath.Join(root, "b.txt")), Backup: m.Path(filepath.Join(root, "b.txt.backup_20240301_120000"))},
	}

	results, err := Restore(adapter.NewLocalTargetFSAdapter(), records)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.True(t, results[0].Restored)
	assert.NoError(t, results[0].Err)
	assert.Equal(t, "pristine", readFile(t, original))

	assert.False(t, results[1].Restored)
	require.Error(t, results[1].Err)
	assert.Contains(t, results[1].Err.Error(), "backup not found")
}

// Running the generated script restores every touched file byte for byte.
func TestRollbackScript_RestoresOriginals(t *testing.T) {
	sh, err := exec.LookPath("sh")
	if err != nil {
		t.Skip("sh not available")
	}

	root := t.TempDir()
	cmake := writeFile(t, root, "CMakeLists.txt", "project( selaco )\n\nadd_executable( selaco main.cpp )\n")
	source := writeFile(t, root, "src/d_main.cpp", "void D_Cleanup()\n{\n\tDeleteScreenJob();\n}\n")

	originals := map[string]string{
		cmake:  readFile(t, cmake),
		source: readFile(t, source),
	}

	entries := []m.Entry{
		{Target: "CMakeLists.txt", Transformation: literalInsert("link", "selaco main.cpp )\n", "target_link_libraries( selaco archipelago )\n")},
		{Target: "src/d_main.cpp", Transformation: literalInsert("shutdown", "DeleteScreenJob();\n", "\tArchipelago_Shutdown();\n")},
	}

	report, err := NewOrchestrator(adapter.NewLocalTargetFSAdapter()).Run(context.Background(), entries, SessionOptions{
		Root: m.Path(root),
		Now:  fixedClock,
	})
	require.NoError(t, err)
	require.True(t, report.Success())
	require.Len(t, report.Backups, 2)

	for path, content := range originals {
		require.NotEqual(t, content, readFile(t, path))
	}

	script := filepath.Join(root, "rollback.sh")
	require.NoError(t, os.WriteFile(script, []byte(report.Rollback), 0o600))

	out, err := exec.Command(sh, script).CombinedOutput()
	require.NoError(t, err, string(out))
	assert.Contains(t, string(out), "Rollback complete")

	for path, content := range originals {
		assert.Equal(t, content, readFile(t, path))
	}
}
