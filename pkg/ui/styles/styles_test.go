package styles_test

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/codec/pkg/ui/styles"
)

func TestDefaultRegistry(t *testing.T) {
	expected := []string{
		"Error", "Warning", "Success", "Notice", "Muted", "Bold",
		"Template", "Path", "Variable", "Caret", "Gutter",
	}

	r := styles.Default()
	for _, name := range expected {
		t.Run(name, func(t *testing.T) {
			assert.True(t, r.Has(name), "style %s should be defined", name)
		})
	}
	assert.Same(t, r, styles.Default())

	assert.True(t, r.Get("Error").GetBold())
	assert.True(t, r.Get("Caret").GetBold())
}

func TestGetUnknownStyle(t *testing.T) {
	r := styles.Default()
	assert.False(t, r.Has("Nope"))
	assert.Equal(t, "plain", r.Get("Nope").Render("plain"))
}

func TestParse(t *testing.T) {
	r, err := styles.Parse([]byte(`
colors:
  accent:
    light: "#000000"
    dark: "#FFFFFF"
styles:
  Strong:
    bold: true
    foreground: accent
  Slanted:
    italic: true
    underline: true
`))
	require.NoError(t, err)

	strong := r.Get("Strong")
	assert.True(t, strong.GetBold())
	assert.Equal(t, lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"}, strong.GetForeground())

	merged := r.Merge("Strong", "Slanted")
	assert.True(t, merged.GetBold())
	assert.True(t, merged.GetItalic())
	assert.True(t, merged.GetUnderline())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed yaml", "styles: [unclosed"},
		{"unknown color", "styles:\n  X:\n    foreground: nowhere\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := styles.Parse([]byte(tt.data))
			assert.Error(t, err)
		})
	}

	assert.Panics(t, func() { styles.MustParse([]byte("styles: [unclosed")) })
}
