package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/engine"
)

// KeyTable maps keys to commands
type KeyTable struct {
	// Named keys (arrows, Esc, Ctrl+*)
	SpecialKeys map[tcell.Key]engine.Command

	// Printable runes, matched case-insensitively
	Runes map[rune]engine.Command
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]engine.Command{
			tcell.KeyUp:     engine.CmdUp,
			tcell.KeyDown:   engine.CmdDown,
			tcell.KeyLeft:   engine.CmdLeft,
			tcell.KeyRight:  engine.CmdRight,
			tcell.KeyEnter:  engine.CmdStart,
			tcell.KeyEscape: engine.CmdMenu,
			tcell.KeyCtrlC:  engine.CmdQuit,
			tcell.KeyCtrlQ:  engine.CmdQuit,
			tcell.KeyCtrlS:  engine.CmdMute,
		},
		Runes: map[rune]engine.Command{
			'w': engine.CmdUp,
			's': engine.CmdDown,
			'a': engine.CmdLeft,
			'd': engine.CmdRight,
			' ': engine.CmdStart,
			'r': engine.CmdReset,
			'p': engine.CmdPause,
			'q': engine.CmdQuit,
			'1': engine.CmdActivate1,
			'2': engine.CmdActivate2,
			'3': engine.CmdActivate3,
			'4': engine.CmdActivate4,
		},
	}
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	out := &KeyTable{
		SpecialKeys: make(map[tcell.Key]engine.Command, len(kt.SpecialKeys)),
		Runes:       make(map[rune]engine.Command, len(kt.Runes)),
	}
	for k, v := range kt.SpecialKeys {
		out.SpecialKeys[k] = v
	}
	for r, v := range kt.Runes {
		out.Runes[r] = v
	}
	return out
}

// Lookup returns the raw binding for a key event
func (kt *KeyTable) Lookup(ev *tcell.EventKey) engine.Command {
	if ev.Key() != tcell.KeyRune {
		return kt.SpecialKeys[ev.Key()]
	}
	r := ev.Rune()
	if cmd, ok := kt.Runes[r]; ok {
		return cmd
	}
	return kt.Runes[unicode.ToLower(r)]
}

// Resolve maps a key event to a command for the current state
// Confirm keys are shared: start in the menu, continue on game over
// The menu key quits when already in the menu
func (kt *KeyTable) Resolve(ev *tcell.EventKey, state engine.State) engine.Command {
	cmd := kt.Lookup(ev)
	switch cmd {
	case engine.CmdStart, engine.CmdContinue:
		if state == engine.StateGameOver {
			return engine.CmdContinue
		}
		return engine.CmdStart
	case engine.CmdMenu:
		if state == engine.StateMenu {
			return engine.CmdQuit
		}
	}
	return cmd
}
