package render

import (
	"github.com/gdamore/tcell/v2"
)

// RGB palette
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbBorder     = tcell.NewRGBColor(120, 120, 140) // Muted gray-blue
	RgbText       = tcell.NewRGBColor(220, 220, 220) // Light gray
	RgbDimText    = tcell.NewRGBColor(130, 130, 130) // Hints and held-but-idle slots
	RgbTitle      = tcell.NewRGBColor(255, 165, 0)   // Orange

	RgbSnakeHead   = tcell.NewRGBColor(50, 255, 50) // Bright green
	RgbSnakeBody   = tcell.NewRGBColor(0, 170, 0)   // Normal green
	RgbSnakeShield = tcell.NewRGBColor(140, 190, 255)

	RgbFood    = tcell.NewRGBColor(255, 80, 80)   // Red
	RgbSpecial = tcell.NewRGBColor(200, 120, 255) // Violet
	RgbCoin    = tcell.NewRGBColor(255, 215, 0)   // Gold
	RgbPowerUp = tcell.NewRGBColor(0, 200, 200)   // Cyan

	RgbActive    = tcell.NewRGBColor(144, 238, 144) // Light green for running effects
	RgbMiniGame  = tcell.NewRGBColor(255, 255, 0)   // Bright yellow banner
	RgbGameOver  = tcell.NewRGBColor(255, 0, 0)     // Red
	RgbHighScore = tcell.NewRGBColor(255, 192, 203) // Pink
)

// Color modes accepted by NewTheme
const (
	ColorModeTrue = "truecolor"
	ColorModeMono = "mono"
)

// Theme is the resolved set of styles for one color mode
type Theme struct {
	Base      tcell.Style
	Border    tcell.Style
	Text      tcell.Style
	Dim       tcell.Style
	Title     tcell.Style
	Head      tcell.Style
	Body      tcell.Style
	Shielded  tcell.Style
	Food      tcell.Style
	Special   tcell.Style
	Coin      tcell.Style
	PowerUp   tcell.Style
	Active    tcell.Style
	MiniGame  tcell.Style
	GameOver  tcell.Style
	HighScore tcell.Style
}

// NewTheme builds styles for mode; unknown modes fall back to truecolor
// tcell downsamples RGB on terminals with fewer colors
func NewTheme(mode string) Theme {
	if mode == ColorModeMono {
		base := tcell.StyleDefault
		return Theme{
			Base:      base,
			Border:    base,
			Text:      base,
			Dim:       base.Dim(true),
			Title:     base.Bold(true),
			Head:      base.Bold(true),
			Body:      base,
			Shielded:  base.Underline(true),
			Food:      base.Bold(true),
			Special:   base.Bold(true).Underline(true),
			Coin:      base.Bold(true),
			PowerUp:   base.Reverse(true),
			Active:    base.Bold(true),
			MiniGame:  base.Reverse(true).Bold(true),
			GameOver:  base.Bold(true),
			HighScore: base.Reverse(true),
		}
	}

	base := tcell.StyleDefault.Background(RgbBackground)
	return Theme{
		Base:      base,
		Border:    base.Foreground(RgbBorder),
		Text:      base.Foreground(RgbText),
		Dim:       base.Foreground(RgbDimText),
		Title:     base.Foreground(RgbTitle).Bold(true),
		Head:      base.Foreground(RgbSnakeHead),
		Body:      base.Foreground(RgbSnakeBody),
		Shielded:  base.Foreground(RgbSnakeShield),
		Food:      base.Foreground(RgbFood),
		Special:   base.Foreground(RgbSpecial),
		Coin:      base.Foreground(RgbCoin).Bold(true),
		PowerUp:   base.Foreground(RgbBackground).Background(RgbPowerUp),
		Active:    base.Foreground(RgbActive),
		MiniGame:  base.Foreground(RgbBackground).Background(RgbMiniGame).Bold(true),
		GameOver:  base.Foreground(RgbGameOver).Bold(true),
		HighScore: base.Foreground(RgbHighScore).Bold(true),
	}
}
