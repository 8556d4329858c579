package adapter

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"text/template"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/splicer/internal/model"
)

// PlanStore loads declared patch sessions from plan files.
type PlanStore interface {
	// Load decodes the plan at path. The format follows the extension:
	// .yaml/.yml or .toml.
	Load(path m.Path) (m.Plan, error)
}

// ErrUnsupportedPlanFormat is returned for plan files with an unknown extension.
var ErrUnsupportedPlanFormat = errors.New("unsupported plan format")

type planDocument struct {
	Name       string          `yaml:"name" toml:"name"`
	Requires   []string        `yaml:"requires" toml:"requires" validate:"dive,required"`
	EnsureDirs []string        `yaml:"ensure_dirs" toml:"ensure_dirs" validate:"dive,required"`
	Notes      []string        `yaml:"notes" toml:"notes"`
	Patches    []patchDocument `yaml:"patches" toml:"patches" validate:"required,min=1,dive"`
}

type patchDocument struct {
	File            string                   `yaml:"file" toml:"file" validate:"required"`
	Transformations []transformationDocument `yaml:"transformations" toml:"transformations" validate:"required,min=1,dive"`
}

type transformationDocument struct {
	Name        string             `yaml:"name" toml:"name" validate:"required"`
	Marker      string             `yaml:"marker" toml:"marker" validate:"required_without=MarkerRegex"`
	MarkerRegex string             `yaml:"marker_regex" toml:"marker_regex"`
	Strategies  []strategyDocument `yaml:"strategies" toml:"strategies" validate:"required,min=1,dive"`
	Content     string             `yaml:"content" toml:"content"`
	ContentFile string             `yaml:"content_file" toml:"content_file"`
	Raw         bool               `yaml:"raw" toml:"raw"`
}

type strategyDocument struct {
	Name       string            `yaml:"name" toml:"name"`
	Mode       string            `yaml:"mode" toml:"mode" validate:"required,oneof=insert-after-match replace-span append-end"`
	Occurrence string            `yaml:"occurrence" toml:"occurrence" validate:"omitempty,oneof=first last"`
	Pattern    *patternDocument  `yaml:"pattern" toml:"pattern" validate:"required_unless=Mode append-end"`
	Fallbacks  []patternDocument `yaml:"fallbacks" toml:"fallbacks" validate:"dive"`
}

type patternDocument struct {
	Literal string `yaml:"literal" toml:"literal" validate:"required_without=Regex"`
	Regex   string `yaml:"regex" toml:"regex"`
	Group   int    `yaml:"group" toml:"group" validate:"min=0"`
}

type planStore struct {
	fs       TargetFSAdapter
	validate *validator.Validate
}

// NewPlanStore constructs a PlanStore reading through fs.
func NewPlanStore(fs TargetFSAdapter) PlanStore {
	return &planStore{
		fs:       fs,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (ps *planStore) Load(path m.Path) (m.Plan, error) {
	data, err := ps.fs.ReadFile(path)
	if err != nil {
		return m.Plan{}, fmt.Errorf("failed to read plan %s: %w", path, err)
	}

	doc, err := decodePlan(path, data)
	if err != nil {
		return m.Plan{}, err
	}

	if err := ps.validate.Struct(doc); err != nil {
		return m.Plan{}, fmt.Errorf("%s: invalid plan: %w", path, err)
	}

	return ps.compile(path, doc)
}

func decodePlan(path m.Path, data []byte) (planDocument, error) {
	var doc planDocument

	switch strings.ToLower(filepath.Ext(string(path))) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)

		if err := dec.Decode(&doc); err != nil {
			return planDocument{}, fmt.Errorf("%s: failed to parse YAML: %w", path, err)
		}
	case ".toml":
		meta, err := toml.Decode(string(data), &doc)
		if err != nil {
			return planDocument{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
		}

		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, 0, len(undecoded))
			for _, key := range undecoded {
				keys = append(keys, key.String())
			}

			sort.Strings(keys)

			return planDocument{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
		}
	default:
		return planDocument{}, fmt.Errorf("%w: %s", ErrUnsupportedPlanFormat, path)
	}

	return doc, nil
}

func (ps *planStore) compile(path m.Path, doc planDocument) (m.Plan, error) {
	plan := m.Plan{
		Name:   doc.Name,
		Source: path,
		Notes:  doc.Notes,
	}

	if plan.Name == "" {
		plan.Name = strings.TrimSuffix(filepath.Base(string(path)), filepath.Ext(string(path)))
	}

	for _, req := range doc.Requires {
		plan.Requires = append(plan.Requires, m.Path(req))
	}

	for _, dir := range doc.EnsureDirs {
		plan.EnsureDirs = append(plan.EnsureDirs, m.Path(dir))
	}

	for _, patch := range doc.Patches {
		for _, trDoc := range patch.Transformations {
			tr, err := ps.compileTransformation(path, trDoc)
			if err != nil {
				return m.Plan{}, fmt.Errorf("%s: %s/%s: %w", path, patch.File, trDoc.Name, err)
			}

			plan.Entries = append(plan.Entries, m.Entry{
				Target:         m.Path(patch.File),
				Transformation: tr,
			})
		}
	}

	return plan, nil
}

func (ps *planStore) compileTransformation(planPath m.Path, doc transformationDocument) (m.Transformation, error) {
	tr := m.Transformation{Name: doc.Name}

	if doc.MarkerRegex != "" {
		re, err := regexp.Compile(doc.MarkerRegex)
		if err != nil {
			return m.Transformation{}, fmt.Errorf("invalid marker_regex: %w", err)
		}

		tr.Marker = m.Marker{Regex: re}
	} else {
		tr.Marker = m.LiteralMarker(doc.Marker)
	}

	for i, sDoc := range doc.Strategies {
		strategy, err := compileStrategy(sDoc)
		if err != nil {
			return m.Transformation{}, fmt.Errorf("strategy %d: %w", i+1, err)
		}

		tr.Strategies = append(tr.Strategies, strategy)
	}

	text := doc.Content
	if doc.ContentFile != "" {
		if doc.Content != "" {
			return m.Transformation{}, fmt.Errorf("content and content_file are mutually exclusive")
		}

		contentPath := doc.ContentFile
		if !filepath.IsAbs(contentPath) {
			contentPath = filepath.Join(filepath.Dir(string(planPath)), contentPath)
		}

		data, err := ps.fs.ReadFile(m.Path(contentPath))
		if err != nil {
			return m.Transformation{}, fmt.Errorf("failed to read content_file: %w", err)
		}

		text = string(data)
	}

	if doc.Raw {
		tr.Content = m.StaticContent(text)
		return tr, nil
	}

	content, err := TemplateContent(doc.Name, text)
	if err != nil {
		return m.Transformation{}, err
	}

	tr.Content = content

	return tr, nil
}

func compileStrategy(doc strategyDocument) (m.LocatorStrategy, error) {
	strategy := m.LocatorStrategy{
		Name:       doc.Name,
		Mode:       m.InjectionMode(doc.Mode),
		Occurrence: m.Occurrence(doc.Occurrence),
	}

	if doc.Pattern != nil {
		primary, err := compilePattern(*doc.Pattern)
		if err != nil {
			return m.LocatorStrategy{}, fmt.Errorf("pattern: %w", err)
		}

		strategy.Primary = primary
	}

	for i, fDoc := range doc.Fallbacks {
		fallback, err := compilePattern(fDoc)
		if err != nil {
			return m.LocatorStrategy{}, fmt.Errorf("fallback %d: %w", i+1, err)
		}

		strategy.Fallbacks = append(strategy.Fallbacks, fallback)
	}

	if strategy.Name == "" {
		strategy.Name = describeStrategy(strategy)
	}

	return strategy, nil
}

func compilePattern(doc patternDocument) (m.Pattern, error) {
	if doc.Regex == "" {
		if doc.Group != 0 {
			return m.Pattern{}, fmt.Errorf("group %d requires a regex pattern", doc.Group)
		}

		return m.LiteralPattern(doc.Literal), nil
	}

	if doc.Literal != "" {
		return m.Pattern{}, fmt.Errorf("literal and regex are mutually exclusive")
	}

	re, err := regexp.Compile(doc.Regex)
	if err != nil {
		return m.Pattern{}, fmt.Errorf("invalid regex: %w", err)
	}

	if doc.Group > re.NumSubexp() {
		return m.Pattern{}, fmt.Errorf("group %d out of range, regex has %d groups", doc.Group, re.NumSubexp())
	}

	return m.Pattern{Regex: re, Group: doc.Group}, nil
}

func describeStrategy(strategy m.LocatorStrategy) string {
	if strategy.Primary.IsZero() {
		return string(strategy.Mode)
	}

	return fmt.Sprintf("%s %s", strategy.Mode, strategy.Primary)
}

// TemplateContent parses text as a text/template rendered against the anchor
// context ({{.Match}}, {{index .Groups 1}}, {{.Named.name}}, {{.Path}}).
func TemplateContent(name, text string) (m.ContentFunc, error) {
	tmpl, err := template.New(name).Option("missingkey=error").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("invalid content template: %w", err)
	}

	return func(ctx m.AnchorContext) (string, error) {
		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, ctx); err != nil {
			return "", err
		}

		return buf.String(), nil
	}, nil
}
