package domain

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/splicer/internal/adapter"
	m "github.com/mouse-blink/splicer/internal/model"
)

var sessionStart = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time {
	return sessionStart
}

func TestBackupManager_SnapshotNextToOriginal(t *testing.T) {
	root := t.TempDir()
	path := writeFile(t, root, "CMakeLists.txt", "project( selaco )\n")
	require.NoError(t, os.Chmod(path, 0o640))

	bm := NewBackupManager(adapter.NewLocalTargetFSAdapter(), BackupOptions{Started: sessionStart, Now: fixedClock})
	assert.Equal(t, "20240301_120000", bm.Token())

	record, err := bm.Snapshot(m.Path(path))
	require.NoError(t, err)

	assert.Equal(t, m.Path(path), record.Original)
	assert.Equal(t, m.Path(path+".backup_20240301_120000"), record.Backup)
	assert.Equal(t, sessionStart, record.CreatedAt)

	assert.Equal(t, "project( selaco )\n", readFile(t, string(record.Backup)))

	info, err := os.Stat(string(record.Backup))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o640), info.Mode().Perm())
}

func TestBackupManager_SnapshotOncePerPath(t *testing.T) {
	root := t.TempDir()
	first := writeFile(t, root, "a.txt", "a")
	second := writeFile(t, root, "b.txt", "b")

	bm := NewBackupManager(adapter.NewLocalTargetFSAdapter(), BackupOptions{Started: sessionStart, Now: fixedClock})

	r1, err := bm.Snapshot(m.Path(first))
	require.NoError(t, err)

	// the original changes after the snapshot; the backup must keep the old bytes
	writeFile(t, root, "a.txt", "changed")

	r2, err := bm.Snapshot(m.Path(second))
	require.NoError(t, err)

	again, err := bm.Snapshot(m.Path(first))
	require.NoError(t, err)
	assert.Equal(t, r1, again)
	assert.Equal(t, "a", readFile(t, string(r1.Backup)))

	assert.Equal(t, []m.BackupRecord{r1, r2}, bm.Records())
}

func TestBackupManager_BackupDirLayout(t *testing.T) {
	root := t.TempDir()
	path := writeFile(t, root, "src/d_main.cpp", "int main() {}\n")
	backupDir := filepath.Join(root, ".splicer", "backups")

	bm := NewBackupManager(adapter.NewLocalTargetFSAdapter(), BackupOptions{
		Started: sessionStart,
		Root:    m.Path(root),
		Dir:     m.Path(backupDir),
	})

	record, err := bm.Snapshot(m.Path(path))
	require.NoError(t, err)

	want := filepath.Join(backupDir, "20240301_120000", "src", "d_main.cpp")
	assert.Equal(t, m.Path(want), record.Backup)
	assert.Equal(t, "int main() {}\n", readFile(t, want))
}

func TestBackupManager_ExistingBackupIsNeverOverwritten(t *testing.T) {
	root := t.TempDir()
	path := writeFile(t, root, "a.txt", "new")
	writeFile(t, root, "a.txt.backup_20240301_120000", "old")

	bm := NewBackupManager(adapter.NewLocalTargetFSAdapter(), BackupOptions{Started: sessionStart})

	_, err := bm.Snapshot(m.Path(path))
	require.ErrorIs(t, err, ErrIOFailure)
	assert.Contains(t, err.Error(), "already exists")
	assert.Equal(t, "old", readFile(t, path+".backup_20240301_120000"))
	assert.Empty(t, bm.Records())
}

func TestBackupManager_DryRunCopiesNothing(t *testing.T) {
	root := t.TempDir()
	path := writeFile(t, root, "a.txt", "a")

	bm := NewBackupManager(adapter.NewLocalTargetFSAdapter(), BackupOptions{Started: sessionStart, DryRun: true})

	record, err := bm.Snapshot(m.Path(path))
	require.NoError(t, err)

	_, err = os.Stat(string(record.Backup))
	assert.True(t, os.IsNotExist(err))
	assert.Len(t, bm.Records(), 1)
}

func TestBackupPath(t *testing.T) {
	tests := []struct {
		name     string
		original m.Path
		root     m.Path
		dir      m.Path
		want     m.Path
		wantErr  bool
	}{
		{
			name:     "suffix layout",
			original: "/work/src/d_main.cpp",
			want:     "/work/src/d_main.cpp.backup_20240301_120000",
		},
		{
			name:     "backup root layout",
			original: "/work/src/d_main.cpp",
			root:     "/work",
			dir:      "/work/.splicer/backups",
			want:     "/work/.splicer/backups/20240301_120000/src/d_main.cpp",
		},
		{
			name:     "outside project root",
			original: "/elsewhere/file.txt",
			root:     "/work",
			dir:      "/work/.splicer/backups",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BackupPath(tt.original, "20240301_120000", tt.root, tt.dir)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
