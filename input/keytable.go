package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, Esc)
	SpecialKeys map[tcell.Key]IntentType

	// Plain rune bindings
	Runes map[rune]IntentType
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]IntentType{
			tcell.KeyEscape: IntentQuit,
			tcell.KeyCtrlC:  IntentQuit,
		},
		Runes: map[rune]IntentType{
			'q': IntentQuit,
			' ': IntentTogglePause,
			'm': IntentToggleMute,
		},
	}
}

// Classify resolves a terminal event to an intent; mouse events are not intents
func (kt *KeyTable) Classify(ev tcell.Event) IntentType {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyRune {
			return kt.Runes[ev.Rune()]
		}
		return kt.SpecialKeys[ev.Key()]
	case *tcell.EventResize:
		return IntentResize
	}
	return IntentNone
}
