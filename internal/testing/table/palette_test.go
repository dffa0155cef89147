package table

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestPalette_Plain(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	p := NewPalette()
	assert.False(t, p.enabled)

	tests := []struct {
		name string
		got  string
		want string
	}{
		{name: "passed", got: p.Status(true), want: "✓ PASS"},
		{name: "failed", got: p.Status(false), want: "✗ FAIL"},
		{name: "no reasons", got: p.Reasons(0), want: "0"},
		{name: "some reasons", got: p.Reasons(3), want: "3"},
		{name: "full pass rate", got: p.PassRate(100), want: "100.0%"},
		{name: "partial pass rate", got: p.PassRate(92.3), want: "92.3%"},
		{name: "low pass rate", got: p.PassRate(0), want: "0.0%"},
		{name: "structural", got: p.Reason("StructuralPrecondition: stash panel is not visible"), want: "StructuralPrecondition: stash panel is not visible"},
		{name: "mismatch", got: p.Reason("size_x 1024, expected 800"), want: "size_x 1024, expected 800"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestPalette_ReasonClasses(t *testing.T) {
	prev := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = prev }()

	p := NewPalette()
	a := assert.New(t)

	fatal := p.Reason("FixtureNotFound: fixture not found: fixtures/stash.json")
	absent := p.Reason("wisdom_scroll: stack_size: capability absent: stack component")
	lookup := p.Reason(`lookup cardinality: 2 live matches for "Metadata/Chest", expected exactly 1`)
	plain := "size_y 768, expected 600"

	a.NotEqual("FixtureNotFound: fixture not found: fixtures/stash.json", fatal)
	a.Contains(fatal, "FixtureNotFound")
	a.NotEqual(absent, p.Reason(plain))
	a.Equal(p.Warn(`lookup cardinality: 2 live matches for "Metadata/Chest", expected exactly 1`), lookup)
	a.Equal(plain, p.Reason(plain))
}
