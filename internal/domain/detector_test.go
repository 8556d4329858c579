package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	m "github.com/mouse-blink/splicer/internal/model"
)

func TestIsApplied(t *testing.T) {
	buffer := "set(ARCHIPELAGO_SOURCES\n\tarchipelago\n)\n"

	tests := []struct {
		name   string
		marker m.Marker
		want   bool
	}{
		{"literal present", m.LiteralMarker("ARCHIPELAGO_SOURCES"), true},
		{"literal absent", m.LiteralMarker("Archipelago_Shutdown"), false},
		{"regex present", m.RegexMarker(`(?m)^\s*archipelago$`), true},
		{"regex absent", m.RegexMarker(`(?m)^archipelago_net$`), false},
		{"unset marker", m.Marker{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsApplied(buffer, tt.marker))
		})
	}
}

func TestIsApplied_EmptyBuffer(t *testing.T) {
	assert.False(t, IsApplied("", m.LiteralMarker("x")))
	assert.True(t, IsApplied("", m.RegexMarker(`^$`)))
}
