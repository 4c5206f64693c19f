package component

import (
	"github.com/gdamore/tcell/v2"
)

// GlyphComponent is the character drawn at an entity's cell
type GlyphComponent struct {
	Rune  rune
	Style tcell.Style
}
