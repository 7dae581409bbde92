package engine

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/events"
	"github.com/lixenwraith/vi-snake/score"
)

// State is the top-level session mode
type State uint8

const (
	StateMenu State = iota
	StatePlaying
	StateGameOver
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	default:
		return "terminated"
	}
}

// Options configures a Session
type Options struct {
	Grid          Grid
	InitialLength int
	Speed         SpeedModel
	Placer        Placer
	Logger        zerolog.Logger

	// NewRoundID names each round; defaults to random UUIDs
	NewRoundID func() string
}

// DefaultOptions returns the stock board and speed with a time-seeded placer
func DefaultOptions() Options {
	return Options{
		Grid:          Grid{Width: constants.DefaultGridWidth, Height: constants.DefaultGridHeight},
		InitialLength: constants.DefaultInitialLength,
		Speed:         DefaultSpeedModel(),
		Placer:        NewRandomPlacer(uint64(time.Now().UnixNano())),
		Logger:        zerolog.Nop(),
	}
}

// Session is the game state machine: menu, playing, game over
// It owns every per-round entity and recreates them on reset; the ledger outlives rounds
// Not safe for concurrent use, the frame loop is the single owner
type Session struct {
	opts   Options
	log    zerolog.Logger
	ledger *score.Ledger
	queue  *events.EventQueue

	state  State
	paused bool
	tick   uint64
	round  string

	snake     *Snake
	food      Food
	hasFood   bool
	coin      *Cell
	powerUps  []PowerUp
	inventory Inventory
	effects   Effects
	miniGame  MiniGame

	powerUpTimer time.Duration // Time since the last power-up spawn or pickup
	coinTimer    time.Duration // Time without a coin on the field

	lastRound score.RoundResult
}

// NewSession creates a session in the menu state
func NewSession(ledger *score.Ledger, opts Options) *Session {
	def := DefaultOptions()
	if opts.Grid.Width <= 0 || opts.Grid.Height <= 0 {
		opts.Grid = def.Grid
	}
	if opts.InitialLength <= 0 {
		opts.InitialLength = def.InitialLength
	}
	// The body trails left from the centre cell and must stay on the board
	if maxLen := opts.Grid.Width/2 + 1; opts.InitialLength > maxLen {
		opts.InitialLength = maxLen
	}
	if opts.Speed.BaseRate <= 0 || opts.Speed.MaxRate <= 0 {
		opts.Speed = def.Speed
	}
	if opts.Placer == nil {
		opts.Placer = def.Placer
	}
	if opts.NewRoundID == nil {
		opts.NewRoundID = uuid.NewString
	}

	return &Session{
		opts:   opts,
		log:    opts.Logger.With().Str("component", "session").Logger(),
		ledger: ledger,
		queue:  events.NewEventQueue(),
		state:  StateMenu,
	}
}

// State returns the current mode
func (s *Session) State() State {
	return s.state
}

// Paused reports whether play is suspended
func (s *Session) Paused() bool {
	return s.paused
}

// Queue exposes the event queue for routing
func (s *Session) Queue() *events.EventQueue {
	return s.queue
}

// DrainEvents returns the events emitted since the last drain
func (s *Session) DrainEvents() []events.GameEvent {
	return s.queue.Consume()
}

// Interval returns the current game tick interval
func (s *Session) Interval() time.Duration {
	return s.opts.Speed.Interval(s.ledger.Current(), &s.effects)
}

// HandleInput applies a command and reports whether it changed anything
// Commands that do not apply to the current state are ignored
func (s *Session) HandleInput(cmd Command) bool {
	if cmd == CmdQuit {
		if s.state == StateTerminated {
			return false
		}
		if s.state == StatePlaying {
			s.abandonRound()
		}
		s.state = StateTerminated
		s.log.Debug().Msg("quit")
		return true
	}

	switch s.state {
	case StateMenu:
		if cmd == CmdStart {
			s.startRound()
			return true
		}

	case StatePlaying:
		switch cmd {
		case CmdReset:
			s.abandonRound()
			s.startRound()
			return true
		case CmdMenu:
			s.abandonRound()
			s.paused = false
			s.state = StateMenu
			return true
		case CmdPause:
			s.paused = !s.paused
			return true
		}
		if s.paused {
			return false
		}
		if d, ok := cmd.Direction(); ok {
			return s.snake.Steer(d)
		}
		if k, ok := cmd.PowerUp(); ok {
			return s.activate(k)
		}

	case StateGameOver:
		switch cmd {
		case CmdContinue, CmdMenu:
			s.state = StateMenu
			return true
		case CmdReset:
			s.startRound()
			return true
		}
	}
	return false
}

// Tick advances one game step: movement, collision, scoring, timers, spawns
func (s *Session) Tick(elapsed time.Duration) {
	if s.state != StatePlaying || s.paused {
		return
	}
	s.tick++

	if !s.step() {
		return
	}
	s.advanceTimers(elapsed)
	s.spawn(elapsed)
}

// startRound recreates every per-round entity and enters play
func (s *Session) startRound() {
	grid := s.opts.Grid
	s.snake = NewSnake(grid.Center(), s.opts.InitialLength, DirRight)
	s.hasFood = false
	s.coin = nil
	s.powerUps = nil
	s.inventory.Clear()
	s.effects.Clear()
	s.miniGame.Cancel()
	s.powerUpTimer = 0
	s.coinTimer = 0
	s.paused = false
	s.tick = 0

	s.round = s.opts.NewRoundID()
	s.ledger.StartRound(s.round)
	s.placeFood()
	s.state = StatePlaying

	s.emit(events.EventRoundStart, &events.RoundPayload{Round: s.round})
	s.log.Debug().Str("round", s.round).Msg("round started")
}

// step moves the snake once; returns false when the round ended
func (s *Session) step() bool {
	next := s.snake.ApplyHeading()
	growing := s.hasFood && next == s.food.Cell

	kind, collided := events.CollisionWall, false
	if !s.opts.Grid.Contains(next) {
		collided = true
	} else if s.snake.HitsSelf(next, growing) {
		kind, collided = events.CollisionSelf, true
	}

	if collided {
		payload := &events.CollisionPayload{X: next.X, Y: next.Y, Kind: kind}
		if s.effects.Consume(PowerUpShield) {
			// Move cancelled: the snake holds its cells and heading this tick
			s.snake.CancelMove()
			s.emit(events.EventShieldAbsorbed, payload)
			s.log.Debug().Stringer("cell", next).Stringer("kind", kind).Msg("shield absorbed collision")
			return true
		}
		s.endRound(payload)
		return false
	}

	s.snake.Advance(next, growing)
	if growing {
		s.eatFood()
	}
	s.collectPickups(next)
	return true
}

func (s *Session) eatFood() {
	eaten := s.food
	points := s.miniGame.Credit(eaten.Kind.Points(), constants.MiniGameMultiplier)
	s.ledger.Add(points)
	s.hasFood = false

	s.emit(events.EventFoodEaten, &events.FoodEatenPayload{
		X: eaten.Cell.X, Y: eaten.Cell.Y,
		Special: eaten.Kind == FoodSpecial,
		Points:  points,
	})
	s.placeFood()
}

func (s *Session) collectPickups(head Cell) {
	if s.coin != nil && *s.coin == head {
		s.coin = nil
		restarted := s.miniGame.Start(constants.MiniGameDuration)
		s.emit(events.EventMiniGameStart, nil)
		s.log.Debug().Bool("restarted", restarted).Msg("mini-game started")
	}

	for i, p := range s.powerUps {
		if p.Cell != head {
			continue
		}
		s.powerUps = append(s.powerUps[:i], s.powerUps[i+1:]...)
		added := s.inventory.Add(p.Kind)
		s.powerUpTimer = 0
		s.emit(events.EventPowerUpCollected, powerUpPayload(p.Kind))
		s.log.Debug().Stringer("kind", p.Kind).Bool("added", added).Msg("power-up collected")
		break
	}
}

// activate turns a held power-up into an active effect, refreshing one already in force
func (s *Session) activate(k PowerUpKind) bool {
	if !s.inventory.Take(k) {
		return false
	}
	refreshed := s.effects.Activate(k, constants.EffectDuration)
	s.emit(events.EventPowerUpActivated, powerUpPayload(k))
	s.log.Debug().Stringer("kind", k).Bool("refreshed", refreshed).Msg("power-up activated")
	return true
}

func (s *Session) advanceTimers(elapsed time.Duration) {
	for _, k := range s.effects.Advance(elapsed) {
		s.emit(events.EventEffectExpired, powerUpPayload(k))
	}

	gained := s.miniGame.Gained()
	if s.miniGame.Advance(elapsed) {
		s.ledger.Add(constants.MiniGameBonus)
		s.emit(events.EventMiniGameEnd, &events.MiniGamePayload{
			Bonus:       constants.MiniGameBonus,
			DoubledGain: gained,
		})
	}
}

// spawn places missing food and due coins/power-ups; a full board retries next tick
func (s *Session) spawn(elapsed time.Duration) {
	if !s.hasFood {
		s.placeFood()
	}

	if len(s.powerUps) < constants.MaxFieldPowerUps {
		s.powerUpTimer += elapsed
		if s.powerUpTimer >= constants.PowerUpSpawnInterval {
			if c, ok := s.opts.Placer.Place(s.opts.Grid, s.occupied); ok {
				kind := AllPowerUpKinds[s.opts.Placer.Intn(len(AllPowerUpKinds))]
				s.powerUps = append(s.powerUps, PowerUp{Cell: c, Kind: kind})
				s.powerUpTimer = 0
			}
		}
	} else {
		s.powerUpTimer = 0
	}

	if s.coin == nil {
		s.coinTimer += elapsed
		if s.coinTimer >= constants.CoinSpawnInterval {
			if c, ok := s.opts.Placer.Place(s.opts.Grid, s.occupied); ok {
				s.coin = &c
				s.coinTimer = 0
			}
		}
	}
}

func (s *Session) placeFood() {
	c, ok := s.opts.Placer.Place(s.opts.Grid, s.occupied)
	if !ok {
		s.hasFood = false
		return
	}
	kind := FoodRegular
	if s.opts.Placer.Float64() < constants.SpecialFoodChance {
		kind = FoodSpecial
	}
	s.food = Food{Cell: c, Kind: kind}
	s.hasFood = true
}

// occupied reports whether c holds the snake or any item
func (s *Session) occupied(c Cell) bool {
	if s.snake != nil && s.snake.Occupies(c) {
		return true
	}
	if s.hasFood && s.food.Cell == c {
		return true
	}
	if s.coin != nil && *s.coin == c {
		return true
	}
	for _, p := range s.powerUps {
		if p.Cell == c {
			return true
		}
	}
	return false
}

// abandonRound drops the running round without recording it
func (s *Session) abandonRound() {
	s.miniGame.Cancel()
	payload := &events.RoundPayload{Round: s.round, Score: s.ledger.Current()}
	s.ledger.Discard()
	s.emit(events.EventRoundAbandoned, payload)
	s.log.Debug().Str("round", payload.Round).Int("score", payload.Score).Msg("round abandoned")
}

func (s *Session) endRound(collision *events.CollisionPayload) {
	s.emit(events.EventCollision, collision)
	s.miniGame.Cancel()
	s.lastRound = s.ledger.EndRound()
	s.state = StateGameOver
	s.emit(events.EventRoundEnd, &events.RoundPayload{
		Round:        s.lastRound.Round,
		Score:        s.lastRound.Score,
		NewHighScore: s.lastRound.NewHighScore,
	})
}

func (s *Session) emit(t events.EventType, payload any) {
	s.queue.Push(events.GameEvent{Type: t, Payload: payload, Tick: s.tick})
}

func powerUpPayload(k PowerUpKind) *events.PowerUpPayload {
	return &events.PowerUpPayload{Slot: k.Slot(), Name: k.Name()}
}
