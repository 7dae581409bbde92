package constants

// Board Layout
const (
	// CellWidth is the number of terminal columns used per grid cell
	CellWidth = 2

	// BoardOriginX is the left margin of the board border
	BoardOriginX = 1

	// BoardOriginY is the top margin of the board border
	BoardOriginY = 1

	// SidebarGap is the column gap between the board border and the sidebar
	SidebarGap = 3

	// SidebarWidth is the width reserved for the sidebar text
	SidebarWidth = 28

	// MenuHighScoreRows is how many high scores the menu lists
	MenuHighScoreRows = 5
)

// Glyphs
const (
	GlyphSnakeHead = '█'
	GlyphSnakeBody = '▓'
	GlyphFood      = '●'
	GlyphSpecial   = '◆'
	GlyphCoin      = '$'
	GlyphShield    = '○'
)

// Power-up labels indexed by activation slot (1..4)
var PowerUpNames = [...]string{"Slow Time", "Zoom", "Speed", "Shield"}
