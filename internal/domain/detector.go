package domain

import (
	"strings"

	m "github.com/mouse-blink/splicer/internal/model"
)

// IsApplied reports whether marker occurs anywhere in buffer. An unset marker
// never matches.
func IsApplied(buffer string, marker m.Marker) bool {
	switch {
	case marker.Regex != nil:
		return marker.Regex.MatchString(buffer)
	case marker.Literal != "":
		return strings.Contains(buffer, marker.Literal)
	default:
		return false
	}
}
