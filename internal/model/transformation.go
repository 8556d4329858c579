package model

import (
	"fmt"
	"regexp"
)

// InjectionMode selects how content is spliced at an anchor.
type InjectionMode string

const (
	// ModeInsertAfter splices content immediately after the matched span.
	ModeInsertAfter InjectionMode = "insert-after-match"
	// ModeReplaceSpan replaces the matched span with content.
	ModeReplaceSpan InjectionMode = "replace-span"
	// ModeAppendEnd appends content to the end of the buffer.
	ModeAppendEnd InjectionMode = "append-end"
)

// Valid reports whether the mode is one of the known injection modes.
func (im InjectionMode) Valid() bool {
	switch im {
	case ModeInsertAfter, ModeReplaceSpan, ModeAppendEnd:
		return true
	}

	return false
}

// Occurrence picks which match wins when a pattern matches more than once.
type Occurrence string

// Available Occurrence values. The zero value lets the injection mode decide.
const (
	OccurrenceDefault Occurrence = ""
	OccurrenceFirst   Occurrence = "first"
	OccurrenceLast    Occurrence = "last"
)

// Pattern is a literal substring or a compiled regular expression. When Group
// is non-zero the span of that capture group becomes the anchor span.
type Pattern struct {
	Literal string
	Regex   *regexp.Regexp
	Group   int
}

// LiteralPattern builds a Pattern matching s verbatim.
func LiteralPattern(s string) Pattern {
	return Pattern{Literal: s}
}

// RegexPattern compiles expr into a Pattern. It panics on invalid input and is
// meant for patterns known at compile time.
func RegexPattern(expr string) Pattern {
	return Pattern{Regex: regexp.MustCompile(expr)}
}

// WithGroup returns a copy of p anchored on capture group n.
func (p Pattern) WithGroup(n int) Pattern {
	p.Group = n
	return p
}

// IsZero reports whether the pattern matches nothing by construction.
func (p Pattern) IsZero() bool {
	return p.Regex == nil && p.Literal == ""
}

func (p Pattern) String() string {
	if p.Regex != nil {
		if p.Group > 0 {
			return fmt.Sprintf("/%s/#%d", p.Regex.String(), p.Group)
		}

		return "/" + p.Regex.String() + "/"
	}

	return fmt.Sprintf("%q", p.Literal)
}

// Marker proves a transformation was already applied when found in a buffer.
type Marker struct {
	Literal string
	Regex   *regexp.Regexp
}

// LiteralMarker builds a Marker matching s verbatim.
func LiteralMarker(s string) Marker {
	return Marker{Literal: s}
}

// RegexMarker compiles expr into a Marker. It panics on invalid input.
func RegexMarker(expr string) Marker {
	return Marker{Regex: regexp.MustCompile(expr)}
}

// IsZero reports whether the marker is unset.
func (mk Marker) IsZero() bool {
	return mk.Regex == nil && mk.Literal == ""
}

func (mk Marker) String() string {
	if mk.Regex != nil {
		return "/" + mk.Regex.String() + "/"
	}

	return fmt.Sprintf("%q", mk.Literal)
}

// LocatorStrategy is a primary pattern plus ordered fallbacks sharing one
// injection mode.
type LocatorStrategy struct {
	Name       string
	Primary    Pattern
	Fallbacks  []Pattern
	Mode       InjectionMode
	Occurrence Occurrence
}

// Patterns returns the primary pattern followed by the fallbacks, skipping
// zero patterns.
func (s LocatorStrategy) Patterns() []Pattern {
	patterns := make([]Pattern, 0, 1+len(s.Fallbacks))
	if !s.Primary.IsZero() {
		patterns = append(patterns, s.Primary)
	}

	for _, fallback := range s.Fallbacks {
		if !fallback.IsZero() {
			patterns = append(patterns, fallback)
		}
	}

	return patterns
}

// AnchorContext is what a content generator sees about the winning match.
type AnchorContext struct {
	Path     Path
	Strategy string
	Match    string
	Groups   []string
	Named    map[string]string
}

// Anchor is a located span in a buffer together with its injection mode.
type Anchor struct {
	Start   int
	End     int
	Mode    InjectionMode
	Context AnchorContext
}

// ContentFunc produces the text to inject for an anchor.
type ContentFunc func(ctx AnchorContext) (string, error)

// StaticContent returns a ContentFunc that always yields text.
func StaticContent(text string) ContentFunc {
	return func(AnchorContext) (string, error) {
		return text, nil
	}
}

// Transformation is a named, immutable unit of work.
type Transformation struct {
	Name       string
	Marker     Marker
	Strategies []LocatorStrategy
	Content    ContentFunc
}

// Entry pairs a target file with the transformation to run against it.
type Entry struct {
	Target         Path
	Transformation Transformation
}
