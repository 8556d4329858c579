package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/splicer/internal/model"
)

const sessionsDir = "sessions"

// ErrNoSessions is returned when a state directory holds no session manifest
// with backups.
var ErrNoSessions = errors.New("no recorded sessions with backups")

// ReportStore persists and retrieves session manifests.
type ReportStore interface {
	// SaveReport writes manifest under dir/sessions and returns the file path.
	SaveReport(dir m.Path, manifest m.SessionManifest) (m.Path, error)
	// LoadReport reads a manifest written by SaveReport.
	LoadReport(path m.Path) (m.SessionManifest, error)
	// LatestReport returns the newest manifest under dir that recorded backups.
	LatestReport(dir m.Path) (m.SessionManifest, m.Path, error)
}

// LocalReportStore stores manifests as YAML files named <token>_<id>.yaml so
// lexical order is chronological.
type LocalReportStore struct{}

// NewReportStore constructs a ReportStore implementation.
func NewReportStore() ReportStore {
	return &LocalReportStore{}
}

// SaveReport marshals manifest to YAML.
func (rs *LocalReportStore) SaveReport(dir m.Path, manifest m.SessionManifest) (m.Path, error) {
	if manifest.Token == "" || manifest.ID == "" {
		return "", fmt.Errorf("manifest requires token and id")
	}

	target := filepath.Join(string(dir), sessionsDir)
	if err := os.MkdirAll(target, 0o750); err != nil {
		return "", fmt.Errorf("failed to create sessions dir: %w", err)
	}

	data, err := yaml.Marshal(manifest)
	if err != nil {
		return "", fmt.Errorf("failed to marshal manifest: %w", err)
	}

	path := filepath.Join(target, manifest.Token+"_"+manifest.ID+".yaml")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("failed to write manifest: %w", err)
	}

	return m.Path(path), nil
}

// LoadReport unmarshals a manifest file.
func (rs *LocalReportStore) LoadReport(path m.Path) (m.SessionManifest, error) {
	// #nosec G304 - path is a manifest chosen by the user or found by LatestReport
	data, err := os.ReadFile(string(path))
	if err != nil {
		return m.SessionManifest{}, fmt.Errorf("failed to read manifest: %w", err)
	}

	var manifest m.SessionManifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return m.SessionManifest{}, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}

	return manifest, nil
}

// LatestReport scans dir/sessions newest first.
func (rs *LocalReportStore) LatestReport(dir m.Path) (m.SessionManifest, m.Path, error) {
	entries, err := os.ReadDir(filepath.Join(string(dir), sessionsDir))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return m.SessionManifest{}, "", ErrNoSessions
		}

		return m.SessionManifest{}, "", fmt.Errorf("failed to list sessions: %w", err)
	}

	names := make([]string, 0, len(entries))

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}

		names = append(names, entry.Name())
	}

	sort.Sort(sort.Reverse(sort.StringSlice(names)))

	for _, name := range names {
		path := m.Path(filepath.Join(string(dir), sessionsDir, name))

		manifest, err := rs.LoadReport(path)
		if err != nil {
			return m.SessionManifest{}, "", err
		}

		if len(manifest.Backups) > 0 {
			return manifest, path, nil
		}
	}

	return m.SessionManifest{}, "", ErrNoSessions
}
