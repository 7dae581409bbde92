package main

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/vi-snake/audio"
	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/events"
	"github.com/lixenwraith/vi-snake/input"
	"github.com/lixenwraith/vi-snake/render"
)

// Game wires the session to the terminal: keys in, frames out
// All fields are owned by the Run goroutine
type Game struct {
	screen   tcell.Screen
	session  *engine.Session
	router   *events.Router
	renderer *render.TerminalRenderer
	keys     *input.KeyTable
	clock    *engine.TickClock
	sound    *audio.SoundManager // nil when audio is disabled
	muted    bool
	log      zerolog.Logger
}

// NewGame assembles the loop; sound may be nil
func NewGame(screen tcell.Screen, session *engine.Session, renderer *render.TerminalRenderer,
	keys *input.KeyTable, clock *engine.TickClock, sound *audio.SoundManager, logger zerolog.Logger) *Game {
	g := &Game{
		screen:   screen,
		session:  session,
		router:   events.NewRouter(session.Queue()),
		renderer: renderer,
		keys:     keys,
		clock:    clock,
		sound:    sound,
		log:      logger.With().Str("component", "loop").Logger(),
	}
	if sound != nil {
		g.router.Register(sound)
	}
	g.router.Register(eventLogger(g.log))
	return g
}

// Router exposes the event router for extra handlers
func (g *Game) Router() *events.Router {
	return g.router
}

// Run drives the frame loop until quit or ctx is cancelled
func (g *Game) Run(ctx context.Context) error {
	ticker := time.NewTicker(constants.FrameUpdateInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	goSafe(func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-done:
				return
			}
		}
	})

	g.clock.Reset()
	g.render()

	for {
		select {
		case <-ctx.Done():
			g.session.HandleInput(engine.CmdQuit)
			g.router.DispatchAll()
			g.log.Info().Msg("interrupted")
			return nil

		case ev := <-eventChan:
			if !g.handleEvent(ev) {
				g.router.DispatchAll()
				return nil
			}

		case <-ticker.C:
			g.frame()
		}
	}
}

// handleEvent applies one terminal event, returns false once the session terminated
func (g *Game) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		cmd := g.keys.Resolve(ev, g.session.State())
		switch cmd {
		case engine.CmdNone:
			return true
		case engine.CmdMute:
			g.toggleMute()
			return true
		}
		if g.session.HandleInput(cmd) {
			g.log.Debug().Stringer("cmd", cmd).Stringer("state", g.session.State()).Msg("input")
		}
		return g.session.State() != engine.StateTerminated

	case *tcell.EventResize:
		g.screen.Sync()
		g.render()
	}
	return true
}

// frame advances the game by the elapsed wall time, routes events and redraws
func (g *Game) frame() {
	if g.session.State() == engine.StatePlaying && !g.session.Paused() {
		g.clock.Run(g.session.Interval, g.session.Tick)
	} else {
		g.clock.Reset()
	}
	g.router.DispatchAll()
	g.render()
}

func (g *Game) render() {
	g.renderer.RenderFrame(g.session.Snapshot())
}

func (g *Game) toggleMute() {
	g.muted = !g.muted
	if g.sound != nil {
		g.sound.SetMuted(g.muted)
	}
	g.log.Debug().Bool("muted", g.muted).Msg("audio toggled")
}

// eventLogger records every game event at debug level
func eventLogger(logger zerolog.Logger) events.Handler {
	types := make([]events.EventType, 0, int(events.EventRoundAbandoned)+1)
	for t := events.EventRoundStart; t <= events.EventRoundAbandoned; t++ {
		types = append(types, t)
	}
	return events.HandlerFunc{
		Types: types,
		Fn: func(ev events.GameEvent) {
			logger.Debug().
				Stringer("event", ev.Type).
				Uint64("tick", ev.Tick).
				Interface("payload", ev.Payload).
				Msg("game event")
		},
	}
}
