package domain

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mouse-blink/splicer/internal/adapter"
	m "github.com/mouse-blink/splicer/internal/model"
)

// TimestampLayout formats the per-session backup token (YYYYMMDD_HHMMSS).
const TimestampLayout = "20060102_150405"

// BackupManager snapshots files before their first mutation in a session.
type BackupManager interface {
	// Snapshot copies path to its backup location. A second call for the same
	// path returns the existing record without copying again.
	Snapshot(path m.Path) (m.BackupRecord, error)
	// Records returns the snapshots taken so far, in creation order.
	Records() []m.BackupRecord
	// Token is the timestamp shared by every backup of the session.
	Token() string
}

// BackupOptions configures where a BackupManager places its snapshots.
type BackupOptions struct {
	// Started is the session start; the backup token is derived from it once.
	Started time.Time
	// Root is the project root that relative backup paths are computed from.
	Root m.Path
	// Dir, when set, collects backups under Dir/<token>/<path relative to Root>
	// instead of next to the original as <path>.backup_<token>.
	Dir m.Path
	// DryRun records snapshots without copying anything.
	DryRun bool
	// Now stamps records; defaults to time.Now.
	Now func() time.Time
}

type backupManager struct {
	fs      adapter.TargetFSAdapter
	opts    BackupOptions
	token   string
	records []m.BackupRecord
	byPath  map[m.Path]int
}

// NewBackupManager constructs a BackupManager for one session.
func NewBackupManager(fs adapter.TargetFSAdapter, opts BackupOptions) BackupManager {
	if opts.Now == nil {
		opts.Now = time.Now
	}

	if opts.Started.IsZero() {
		opts.Started = opts.Now()
	}

	return &backupManager{
		fs:     fs,
		opts:   opts,
		token:  opts.Started.Format(TimestampLayout),
		byPath: make(map[m.Path]int),
	}
}

func (bm *backupManager) Token() string {
	return bm.token
}

func (bm *backupManager) Records() []m.BackupRecord {
	records := make([]m.BackupRecord, len(bm.records))
	copy(records, bm.records)

	return records
}

func (bm *backupManager) Snapshot(path m.Path) (m.BackupRecord, error) {
	if i, ok := bm.byPath[path]; ok {
		return bm.records[i], nil
	}

	backupPath, err := BackupPath(path, bm.token, bm.opts.Root, bm.opts.Dir)
	if err != nil {
		return m.BackupRecord{}, fmt.Errorf("%w: %w", ErrIOFailure, err)
	}

	if !bm.opts.DryRun {
		if err := bm.fs.CopyFile(path, backupPath, true); err != nil {
			if errors.Is(err, os.ErrExist) {
				return m.BackupRecord{}, fmt.Errorf("%w: backup %s already exists", ErrIOFailure, backupPath)
			}

			return m.BackupRecord{}, fmt.Errorf("%w: failed to back up %s: %w", ErrIOFailure, path, err)
		}
	}

	record := m.BackupRecord{
		Original:  path,
		Backup:    backupPath,
		CreatedAt: bm.opts.Now(),
	}

	bm.byPath[path] = len(bm.records)
	bm.records = append(bm.records, record)

	return record, nil
}

// BackupPath derives the backup location of original for a session token.
// Without dir the backup sits next to the original; with dir it mirrors the
// path relative to root under dir/token. Files outside root are rejected in
// that layout since their relative path would escape the backup directory.
func BackupPath(original m.Path, token string, root, dir m.Path) (m.Path, error) {
	if dir == "" {
		return m.Path(string(original) + ".backup_" + token), nil
	}

	rel, err := filepath.Rel(string(root), string(original))
	if err != nil {
		return "", fmt.Errorf("failed to get relative path of %s: %w", original, err)
	}

	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%s is outside project root %s", original, root)
	}

	return m.Path(filepath.Join(string(dir), token, rel)), nil
}
