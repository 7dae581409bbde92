package render

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/engine"
)

// TerminalRenderer draws session snapshots onto a tcell screen
type TerminalRenderer struct {
	screen tcell.Screen
	theme  Theme
}

// NewTerminalRenderer creates a renderer for screen using theme
func NewTerminalRenderer(screen tcell.Screen, theme Theme) *TerminalRenderer {
	return &TerminalRenderer{screen: screen, theme: theme}
}

// Layout is the screen geometry derived from the grid size
type Layout struct {
	BoardX, BoardY int // Top-left of the border
	BoardW, BoardH int // Border-inclusive size in columns/rows
	SidebarX       int
	Width, Height  int // Minimum screen size
}

// LayoutFor computes the layout for grid
func LayoutFor(grid engine.Grid) Layout {
	l := Layout{
		BoardX: constants.BoardOriginX,
		BoardY: constants.BoardOriginY,
		BoardW: grid.Width*constants.CellWidth + 2,
		BoardH: grid.Height + 2,
	}
	l.SidebarX = l.BoardX + l.BoardW + constants.SidebarGap
	l.Width = l.SidebarX + constants.SidebarWidth
	l.Height = l.BoardY + l.BoardH + 1
	return l
}

// CellOrigin returns the screen position of grid cell c
func (l Layout) CellOrigin(c engine.Cell) (int, int) {
	return l.BoardX + 1 + c.X*constants.CellWidth, l.BoardY + 1 + c.Y
}

// RenderFrame draws the whole frame for snap
func (r *TerminalRenderer) RenderFrame(snap engine.Snapshot) {
	r.screen.SetStyle(r.theme.Base)
	r.screen.Clear()

	layout := LayoutFor(snap.Grid)
	w, h := r.screen.Size()
	if w < layout.Width || h < layout.Height {
		r.drawTooSmall(w, h, layout)
		r.screen.Show()
		return
	}

	r.drawBorder(layout, snap)
	switch snap.State {
	case engine.StateMenu:
		r.drawMenu(layout, snap)
	case engine.StatePlaying:
		r.drawField(layout, snap)
		r.drawSidebar(layout, snap)
		if snap.Paused {
			r.drawCentered(layout, layout.BoardY+layout.BoardH/2, " PAUSED ", r.theme.MiniGame)
		}
	case engine.StateGameOver:
		r.drawField(layout, snap)
		r.drawSidebar(layout, snap)
		r.drawGameOver(layout, snap)
	}

	r.screen.Show()
}

func (r *TerminalRenderer) drawTooSmall(w, h int, l Layout) {
	msg := fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d", l.Width, l.Height, w, h)
	r.drawText(0, 0, msg, r.theme.GameOver)
}

func (r *TerminalRenderer) drawBorder(l Layout, snap engine.Snapshot) {
	st := r.theme.Border
	right, bottom := l.BoardX+l.BoardW-1, l.BoardY+l.BoardH-1
	for x := l.BoardX + 1; x < right; x++ {
		r.screen.SetContent(x, l.BoardY, '─', nil, st)
		r.screen.SetContent(x, bottom, '─', nil, st)
	}
	for y := l.BoardY + 1; y < bottom; y++ {
		r.screen.SetContent(l.BoardX, y, '│', nil, st)
		r.screen.SetContent(right, y, '│', nil, st)
	}
	r.screen.SetContent(l.BoardX, l.BoardY, '┌', nil, st)
	r.screen.SetContent(right, l.BoardY, '┐', nil, st)
	r.screen.SetContent(l.BoardX, bottom, '└', nil, st)
	r.screen.SetContent(right, bottom, '┘', nil, st)

	title := " VI-SNAKE "
	if snap.EffectActive(engine.PowerUpZoom) {
		title = " VI-SNAKE [ZOOM] "
	}
	r.drawText(l.BoardX+2, l.BoardY, title, r.theme.Title)
}

// fillCell paints both terminal columns of grid cell c
func (r *TerminalRenderer) fillCell(l Layout, c engine.Cell, first, rest rune, st tcell.Style) {
	x, y := l.CellOrigin(c)
	r.screen.SetContent(x, y, first, nil, st)
	for i := 1; i < constants.CellWidth; i++ {
		r.screen.SetContent(x+i, y, rest, nil, st)
	}
}

func (r *TerminalRenderer) drawField(l Layout, snap engine.Snapshot) {
	if snap.HasFood {
		if snap.Food.Kind == engine.FoodSpecial {
			r.fillCell(l, snap.Food.Cell, constants.GlyphSpecial, ' ', r.theme.Special)
		} else {
			r.fillCell(l, snap.Food.Cell, constants.GlyphFood, ' ', r.theme.Food)
		}
	}
	if snap.HasCoin {
		r.fillCell(l, snap.Coin, constants.GlyphCoin, ' ', r.theme.Coin)
	}
	for _, p := range snap.PowerUps {
		r.fillCell(l, p.Cell, rune('0'+p.Kind.Slot()), ' ', r.theme.PowerUp)
	}

	bodyStyle := r.theme.Body
	headRest := rune(constants.GlyphSnakeHead)
	if snap.EffectActive(engine.PowerUpShield) {
		bodyStyle = r.theme.Shielded
		headRest = constants.GlyphShield
	}
	for i := len(snap.Snake) - 1; i >= 0; i-- {
		if i == 0 {
			r.fillCell(l, snap.Snake[i], constants.GlyphSnakeHead, headRest, r.theme.Head)
			continue
		}
		r.fillCell(l, snap.Snake[i], constants.GlyphSnakeBody, constants.GlyphSnakeBody, bodyStyle)
	}
}

func (r *TerminalRenderer) drawSidebar(l Layout, snap engine.Snapshot) {
	x, y := l.SidebarX, l.BoardY
	line := func(text string, st tcell.Style) {
		r.drawText(x, y, text, st)
		y++
	}

	line(fmt.Sprintf("Score   %d", snap.Score), r.theme.Text)
	best := 0
	if len(snap.HighScores) > 0 {
		best = snap.HighScores[0].Score
	}
	line(fmt.Sprintf("Best    %d", best), r.theme.Dim)
	if snap.Interval > 0 {
		line(fmt.Sprintf("Speed   %.1f/s", float64(time.Second)/float64(snap.Interval)), r.theme.Dim)
	}
	y++

	line("Power-ups", r.theme.Title)
	for _, k := range engine.AllPowerUpKinds {
		label := fmt.Sprintf(" %d %-10s", k.Slot(), k.Name())
		for _, e := range snap.Effects {
			if e.Kind == k {
				label += fmt.Sprintf(" %4.1fs", e.Remaining.Seconds())
			}
		}
		switch {
		case snap.EffectActive(k):
			line(label, r.theme.Active)
		case snap.Holds(k):
			line(label+" ready", r.theme.Text)
		default:
			line(label, r.theme.Dim)
		}
	}
	y++

	if snap.MiniGame.Active {
		line(fmt.Sprintf(" x%d BONUS %.1fs ", constants.MiniGameMultiplier, snap.MiniGame.Remaining.Seconds()), r.theme.MiniGame)
		line(fmt.Sprintf("Doubled +%d", snap.MiniGame.Gained), r.theme.Text)
		y++
	}

	line("arrows/wasd move  p pause", r.theme.Dim)
	line("1-4 power-up  r reset", r.theme.Dim)
	line("esc menu  q quit  ^S mute", r.theme.Dim)
}

func (r *TerminalRenderer) drawMenu(l Layout, snap engine.Snapshot) {
	y := l.BoardY + 2
	r.drawCentered(l, y, "VI-SNAKE", r.theme.Title)
	y += 2
	r.drawCentered(l, y, "space start   q quit", r.theme.Text)
	y += 2

	if snap.HasLatest {
		r.drawCentered(l, y, fmt.Sprintf("Latest %d", snap.LatestScore), r.theme.Text)
		y += 2
	}

	r.drawCentered(l, y, "High scores", r.theme.HighScore)
	y++
	if len(snap.HighScores) == 0 {
		r.drawCentered(l, y, "none yet", r.theme.Dim)
		return
	}
	for i, e := range snap.HighScores {
		if i >= constants.MenuHighScoreRows {
			break
		}
		row := fmt.Sprintf("%2d. %6d  %s", i+1, e.Score, e.RecordedAt.Local().Format("2006-01-02"))
		r.drawCentered(l, y, row, r.theme.Text)
		y++
	}
}

type textLine struct {
	text  string
	style tcell.Style
}

func (r *TerminalRenderer) drawGameOver(l Layout, snap engine.Snapshot) {
	res := snap.LastRound
	lines := []textLine{
		{" GAME OVER ", r.theme.GameOver},
		{fmt.Sprintf(" Score %d ", res.Score), r.theme.Text},
	}
	if res.NewHighScore {
		lines = append(lines, textLine{" NEW HIGH SCORE ", r.theme.HighScore})
	} else if res.Rank > 0 {
		lines = append(lines, textLine{fmt.Sprintf(" Rank #%d ", res.Rank), r.theme.Text})
	}
	if !res.Saved {
		lines = append(lines, textLine{" Score not saved ", r.theme.GameOver})
	}
	lines = append(lines, textLine{" space menu  r retry ", r.theme.Dim})

	y := l.BoardY + (l.BoardH-len(lines))/2
	for i, ln := range lines {
		r.drawCentered(l, y+i, ln.text, ln.style)
	}
}

// drawCentered writes text centered over the board interior
func (r *TerminalRenderer) drawCentered(l Layout, y int, text string, st tcell.Style) {
	n := len([]rune(text))
	x := l.BoardX + (l.BoardW-n)/2
	if x < l.BoardX+1 {
		x = l.BoardX + 1
	}
	r.drawText(x, y, text, st)
}

func (r *TerminalRenderer) drawText(x, y int, text string, st tcell.Style) {
	for _, ch := range text {
		r.screen.SetContent(x, y, ch, nil, st)
		x++
	}
}
