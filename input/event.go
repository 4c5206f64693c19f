package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

var arrowKeys = map[tcell.Key]Key{
	tcell.KeyUp:    KeyUp,
	tcell.KeyDown:  KeyDown,
	tcell.KeyLeft:  KeyLeft,
	tcell.KeyRight: KeyRight,
}

// KeyFromEvent translates a tcell key event into a Key
func KeyFromEvent(ev *tcell.EventKey) (Key, bool) {
	if ev == nil {
		return "", false
	}
	return KeyFromTcell(ev.Key(), ev.Rune())
}

// KeyFromTcell maps a tcell key code and rune to a Key
// Arrows map to their names, printable runes are case-folded so Shift+W still
// counts as "w"; everything else reports false
func KeyFromTcell(k tcell.Key, r rune) (Key, bool) {
	if name, ok := arrowKeys[k]; ok {
		return name, true
	}
	if k != tcell.KeyRune {
		return "", false
	}
	if !unicode.IsPrint(r) || unicode.IsSpace(r) {
		return "", false
	}
	return Key(string(unicode.ToLower(r))), true
}
