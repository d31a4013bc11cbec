package game

import (
	"github.com/vovakirdan/flappy-dragon/internal/config"
	"github.com/vovakirdan/flappy-dragon/internal/core"
)

// DeathCause tells why a run ended.
type DeathCause int

const (
	CauseNone DeathCause = iota
	CauseFell
	CauseObstacle
)

// String returns a short name for the cause.
func (c DeathCause) String() string {
	switch c {
	case CauseFell:
		return "fell"
	case CauseObstacle:
		return "obstacle"
	default:
		return "none"
	}
}

// EventKind identifies an Event.
type EventKind int

const (
	EventScored       EventKind = iota // An obstacle was passed
	EventHordeSpawned                  // A baddie horde was rolled
	EventDied                          // The run ended
)

// Event is something noteworthy that happened during a step.
type Event struct {
	Kind  EventKind
	Score int        // EventScored: new score
	Horde int        // EventHordeSpawned: rolled horde size
	Cause DeathCause // EventDied
}

// StepResult is returned by Session.Step.
type StepResult struct {
	Dead   bool
	Cause  DeathCause
	Events []Event
}

// Session is one playing episode: the player, the live obstacle and baddie,
// the score and the physics time accumulator.
type Session struct {
	Player    Player
	Obstacle  Obstacle
	Baddie    Baddie
	Score     int
	FrameTime float64 // Milliseconds accumulated toward the next physics step

	cfg config.DragonConfig
	rng RNG
}

// NewSession starts a fresh episode.
func NewSession(cfg config.DragonConfig, rng RNG) *Session {
	return &Session{
		Player:   NewPlayer(cfg.Player.StartX, cfg.Player.StartY, cfg.Physics),
		Obstacle: NewObstacle(cfg.Field.Width, 0, cfg.Obstacles, rng),
		Baddie:   NewBaddie(cfg.Field.Width, 0),
		cfg:      cfg,
		rng:      rng,
	}
}

// Step advances the episode by one host tick.
// Order: input, physics gate, baddie spawn and hook, scoring, end check.
func (s *Session) Step(elapsedMs float64, action core.Action) StepResult {
	var res StepResult

	s.applyInput(action)

	s.FrameTime += elapsedMs
	if s.FrameTime > s.cfg.Physics.FrameDurationMs {
		s.FrameTime = 0
		s.Player.GravityAndMove()
	}

	if s.Player.X > s.Baddie.X {
		b, horde, ok := spawnHorde(s.Player, s.cfg.Field.Width, s.cfg.Adversaries, s.rng)
		if ok {
			s.Baddie = b
		}
		res.Events = append(res.Events, Event{Kind: EventHordeSpawned, Horde: horde})
	}
	if s.Baddie.Touches(s.Player) {
		s.Baddie.Hit(&s.Player)
	}

	if s.Player.X > s.Obstacle.X {
		s.Score++
		s.Obstacle = NewObstacle(s.Player.X+s.cfg.Field.Width, s.Score, s.cfg.Obstacles, s.rng)
		res.Events = append(res.Events, Event{Kind: EventScored, Score: s.Score})
	}

	switch {
	case s.Obstacle.HitObstacle(s.Player):
		res.Dead, res.Cause = true, CauseObstacle
	case s.Player.Y > s.cfg.Field.Height:
		res.Dead, res.Cause = true, CauseFell
	}
	if res.Dead {
		res.Events = append(res.Events, Event{Kind: EventDied, Cause: res.Cause, Score: s.Score})
	}

	return res
}

func (s *Session) applyInput(action core.Action) {
	switch action {
	case core.ActionThrust:
		s.Player.Flap()
	case core.ActionNudgeForward:
		s.Player.MoveForward() // no-op
	case core.ActionNudgeBackward:
		s.Player.MoveBackward()
	}
}
