package domain

import (
	"strings"

	m "github.com/mouse-blink/splicer/internal/model"
)

// Locate walks the strategy chain in declaration order and returns the anchor
// of the first pattern that matches. For every strategy the primary pattern is
// tried before its fallbacks. There is no scoring: declaration order is the
// only tie-break. The bool result is false when every pattern in the chain
// missed.
func Locate(buffer string, strategies []m.LocatorStrategy) (m.Anchor, bool) {
	for _, strategy := range strategies {
		patterns := strategy.Patterns()

		if len(patterns) == 0 {
			if strategy.Mode == m.ModeAppendEnd {
				return anchorFor(buffer, strategy, span{}), true
			}

			continue
		}

		last := resolvesToLast(strategy)

		for _, pattern := range patterns {
			found, ok := find(buffer, pattern, last)
			if ok {
				return anchorFor(buffer, strategy, found), true
			}
		}
	}

	return m.Anchor{}, false
}

// resolvesToLast decides which occurrence wins when a pattern matches more than
// once. Appending strategies extend the last declaration in a block.
func resolvesToLast(strategy m.LocatorStrategy) bool {
	switch strategy.Occurrence {
	case m.OccurrenceLast:
		return true
	case m.OccurrenceFirst:
		return false
	default:
		return strategy.Mode == m.ModeAppendEnd
	}
}

type span struct {
	start  int
	end    int
	text   string
	groups []string
	named  map[string]string
}

func find(buffer string, pattern m.Pattern, last bool) (span, bool) {
	if pattern.Regex == nil {
		return findLiteral(buffer, pattern.Literal, last)
	}

	re := pattern.Regex
	group := pattern.Group

	if group < 0 || group > re.NumSubexp() {
		return span{}, false
	}

	var candidates [][]int

	if !last && group == 0 {
		if loc := re.FindStringSubmatchIndex(buffer); loc != nil {
			candidates = [][]int{loc}
		}
	} else {
		candidates = re.FindAllStringSubmatchIndex(buffer, -1)
	}

	for i := range candidates {
		loc := candidates[i]
		if last {
			loc = candidates[len(candidates)-1-i]
		}

		start, end := loc[2*group], loc[2*group+1]
		if start < 0 {
			continue
		}

		return span{
			start:  start,
			end:    end,
			text:   buffer[loc[0]:loc[1]],
			groups: submatches(buffer, loc),
			named:  namedSubmatches(re.SubexpNames(), buffer, loc),
		}, true
	}

	return span{}, false
}

func findLiteral(buffer, literal string, last bool) (span, bool) {
	if literal == "" {
		return span{}, false
	}

	index := strings.Index(buffer, literal)
	if last {
		index = strings.LastIndex(buffer, literal)
	}

	if index < 0 {
		return span{}, false
	}

	return span{
		start:  index,
		end:    index + len(literal),
		text:   literal,
		groups: []string{literal},
	}, true
}

func submatches(buffer string, loc []int) []string {
	groups := make([]string, len(loc)/2)

	for i := range groups {
		if loc[2*i] >= 0 {
			groups[i] = buffer[loc[2*i]:loc[2*i+1]]
		}
	}

	return groups
}

func namedSubmatches(names []string, buffer string, loc []int) map[string]string {
	var named map[string]string

	for i, name := range names {
		if name == "" || loc[2*i] < 0 {
			continue
		}

		if named == nil {
			named = make(map[string]string)
		}

		named[name] = buffer[loc[2*i]:loc[2*i+1]]
	}

	return named
}

func anchorFor(buffer string, strategy m.LocatorStrategy, found span) m.Anchor {
	anchor := m.Anchor{
		Start: found.start,
		End:   found.end,
		Mode:  strategy.Mode,
		Context: m.AnchorContext{
			Strategy: strategy.Name,
			Match:    found.text,
			Groups:   found.groups,
			Named:    found.named,
		},
	}

	if strategy.Mode == m.ModeAppendEnd {
		anchor.Start = len(buffer)
		anchor.End = len(buffer)
	}

	return anchor
}
