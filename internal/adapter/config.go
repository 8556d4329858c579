package adapter

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	m "github.com/mouse-blink/splicer/internal/model"
)

// ConfigFileName marks a project root.
const ConfigFileName = "splicer.toml"

// Defaults applied when splicer.toml is absent or leaves a key unset.
const (
	DefaultPlanFile = "splicer.yaml"
	DefaultStateDir = ".splicer"
)

// ProjectConfig holds the resolved project settings. Relative paths in the
// file are resolved against Root.
type ProjectConfig struct {
	// Path is the config file that was loaded; empty when none was found.
	Path           m.Path
	Root           m.Path
	Plan           m.Path
	BackupDir      m.Path
	StateDir       m.Path
	RollbackScript m.Path
	MetricsFile    m.Path
}

type configDocument struct {
	Plan           string `toml:"plan"`
	BackupDir      string `toml:"backup_dir"`
	StateDir       string `toml:"state_dir"`
	RollbackScript string `toml:"rollback_script"`
	MetricsFile    string `toml:"metrics_file"`
}

// ConfigLoader discovers and reads splicer.toml.
type ConfigLoader interface {
	// Load walks up from startDir to the first directory holding splicer.toml.
	// Without one, startDir becomes the root and defaults apply.
	Load(startDir m.Path) (ProjectConfig, error)
}

type tomlConfigLoader struct {
	fs TargetFSAdapter
}

// NewConfigLoader constructs a ConfigLoader reading through fs.
func NewConfigLoader(fs TargetFSAdapter) ConfigLoader {
	return &tomlConfigLoader{fs: fs}
}

func (l *tomlConfigLoader) Load(startDir m.Path) (ProjectConfig, error) {
	root, err := l.fs.FindProjectRoot(startDir, ConfigFileName)
	if err != nil {
		if !errors.Is(err, ErrProjectRootNotFound) {
			return ProjectConfig{}, err
		}

		abs, absErr := filepath.Abs(string(startDir))
		if absErr != nil {
			return ProjectConfig{}, fmt.Errorf("failed to resolve %s: %w", startDir, absErr)
		}

		return l.resolve(m.Path(abs), "", configDocument{}), nil
	}

	path := l.fs.JoinPath(string(root), ConfigFileName)

	data, err := l.fs.ReadFile(path)
	if err != nil {
		return ProjectConfig{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var doc configDocument

	meta, err := toml.Decode(string(data), &doc)
	if err != nil {
		return ProjectConfig{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}

		sort.Strings(keys)

		return ProjectConfig{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	if meta.IsDefined("plan") && strings.TrimSpace(doc.Plan) == "" {
		return ProjectConfig{}, fmt.Errorf("%s: plan must not be empty", path)
	}

	return l.resolve(root, path, doc), nil
}

func (l *tomlConfigLoader) resolve(root, path m.Path, doc configDocument) ProjectConfig {
	if doc.Plan == "" {
		doc.Plan = DefaultPlanFile
	}

	if doc.StateDir == "" {
		doc.StateDir = DefaultStateDir
	}

	return ProjectConfig{
		Path:           path,
		Root:           root,
		Plan:           l.under(root, doc.Plan),
		BackupDir:      l.under(root, doc.BackupDir),
		StateDir:       l.under(root, doc.StateDir),
		RollbackScript: l.under(root, doc.RollbackScript),
		MetricsFile:    l.under(root, doc.MetricsFile),
	}
}

func (l *tomlConfigLoader) under(root m.Path, value string) m.Path {
	if value == "" {
		return ""
	}

	if filepath.IsAbs(value) {
		return m.Path(filepath.Clean(value))
	}

	return l.fs.JoinPath(string(root), filepath.FromSlash(value))
}

// RollbackScriptPath returns the configured script path, or rollback_<name>.sh
// (rollback.sh for an unnamed session) in the project root.
func (c ProjectConfig) RollbackScriptPath(name string) m.Path {
	if c.RollbackScript != "" {
		return c.RollbackScript
	}

	file := "rollback.sh"
	if name != "" {
		file = "rollback_" + name + ".sh"
	}

	return m.Path(filepath.Join(string(c.Root), file))
}
