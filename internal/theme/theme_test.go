package theme

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	domain "github.com/pawmart/pawmart/pkg/types"
)

func TestPaletteFor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Light, PaletteFor(domain.ThemeLight))
	assert.Equal(t, Dark, PaletteFor(domain.ThemeDark))
	assert.Equal(t, Light, PaletteFor("sepia"))
}

func TestNewStyles_NoColourWithoutTerminal(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s := NewStyles(&buf, domain.ThemeDark)

	assert.Contains(t, s.Title.Render("Bella"), "Bella")
	assert.NotContains(t, s.Price.Render("$15"), "\x1b[38;2")
}
