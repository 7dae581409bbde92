package engine

// Command is an input event from the presentation layer
type Command uint8

const (
	CmdNone Command = iota
	CmdUp
	CmdDown
	CmdLeft
	CmdRight
	CmdStart    // Menu → Playing
	CmdContinue // GameOver → Menu
	CmdReset    // Restart the round immediately
	CmdMenu     // Abandon the round and return to the menu
	CmdQuit     // Terminate from any state
	CmdPause    // Toggle pause while playing
	CmdActivate1
	CmdActivate2
	CmdActivate3
	CmdActivate4
	CmdMute // Toggle audio; handled by the frame loop, ignored by the session
)

var commandNames = [...]string{
	CmdNone:      "none",
	CmdUp:        "up",
	CmdDown:      "down",
	CmdLeft:      "left",
	CmdRight:     "right",
	CmdStart:     "start",
	CmdContinue:  "continue",
	CmdReset:     "reset",
	CmdMenu:      "menu",
	CmdQuit:      "quit",
	CmdPause:     "pause",
	CmdActivate1: "powerup1",
	CmdActivate2: "powerup2",
	CmdActivate3: "powerup3",
	CmdActivate4: "powerup4",
	CmdMute:      "mute",
}

func (c Command) String() string {
	if int(c) >= len(commandNames) {
		return "unknown"
	}
	return commandNames[c]
}

// ParseCommand resolves a command by its String name
func ParseCommand(name string) (Command, bool) {
	for i, n := range commandNames {
		if n == name && Command(i) != CmdNone {
			return Command(i), true
		}
	}
	return CmdNone, false
}

// Direction returns the heading for a movement command
func (c Command) Direction() (Direction, bool) {
	switch c {
	case CmdUp:
		return DirUp, true
	case CmdDown:
		return DirDown, true
	case CmdLeft:
		return DirLeft, true
	case CmdRight:
		return DirRight, true
	}
	return 0, false
}

// PowerUp returns the kind targeted by an activation command
func (c Command) PowerUp() (PowerUpKind, bool) {
	if c < CmdActivate1 || c > CmdActivate4 {
		return 0, false
	}
	return PowerUpForSlot(int(c-CmdActivate1) + 1)
}
