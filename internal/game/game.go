// Package game implements the snake simulation: a tick-driven state machine
// over a fixed grid, with buffered direction input, growing obstacles and a
// board-full win condition. It contains pure logic with no platform
// dependencies; the presentation layer feeds it semantic input and consumes
// snapshots and events.
package game

import (
	"math/rand"

	"github.com/CuriAlexity/snake-arcade/internal/config"
	"github.com/CuriAlexity/snake-arcade/internal/core"
)

// Phase is the menu/pause/game-over state of the simulation.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhasePaused
	PhaseGameOver
	PhaseWin
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	case PhaseWin:
		return "win"
	default:
		return "unknown"
	}
}

// Event is an observable side effect of an input or a tick. The platform
// reacts to events (sounds, music fades, run-log records); the simulation
// itself performs no I/O.
type Event int

const (
	EventStarted Event = iota // A run began (from menu, game over or win)
	EventAte                  // Food was eaten this tick
	EventDied                 // Transitioned to game over
	EventWon                  // Board full, transitioned to win
	EventPaused               // Playing -> paused
	EventResumed              // Paused -> playing
)

// Death reasons, recorded in the run log.
const (
	ReasonWall     = "Hit wall"
	ReasonObstacle = "Hit obstacle"
	ReasonSelf     = "Hit self"
)

// Game owns the complete simulation state. It is advanced one discrete tick
// per Advance call and is never touched from more than one goroutine.
type Game struct {
	cfg config.Config
	rng *rand.Rand

	tick  uint64
	phase Phase

	snake      []core.Cell // Head at index 0
	direction  core.Direction
	pendingDir core.Direction // Buffered direction, applied at most once per tick
	food       core.Cell      // CellNone when the board is full
	obstacles  map[core.Cell]bool
	score      int
	speed      int // Ticks per second, clamped to [Speed.Min, Speed.Max]

	deathReason string

	// Presentation layout
	screenW     int
	screenH     int
	gridOffsetX int
	gridOffsetY int
	tooSmall    bool
}

// New creates a game with the given configuration. The game starts in the
// menu phase after Reset.
func New(cfg config.Config) *Game {
	return &Game{cfg: cfg}
}

// Reset seeds the RNG, computes the screen layout and returns the game to
// the menu phase.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.tick = 0
	g.phase = PhaseMenu
	g.snake = nil
	g.obstacles = make(map[core.Cell]bool)
	g.food = core.CellNone
	g.score = 0
	g.speed = g.cfg.Speed.Start()
	g.deathReason = ""
	g.SetScreenSize(rc.ScreenW, rc.ScreenH)
}

// SetScreenSize recomputes the layout for a new terminal size without
// disturbing the simulation.
func (g *Game) SetScreenSize(w, h int) {
	g.screenW = w
	g.screenH = h

	requiredW := g.cfg.Grid.Width + 2
	requiredH := g.cfg.Grid.Height + hudHeight + 2
	if w < requiredW || h < requiredH {
		g.tooSmall = true
		return
	}
	g.tooSmall = false

	g.gridOffsetX = (w - g.cfg.Grid.Width) / 2
	g.gridOffsetY = hudHeight + 1
}

// startRun resets the run state and enters the playing phase. The snake is
// a fixed 3-segment horizontal body centered on the grid, heading right.
func (g *Game) startRun() {
	center := core.Cell{X: g.cfg.Grid.Width / 2, Y: g.cfg.Grid.Height / 2}
	g.snake = []core.Cell{
		center,
		{X: center.X - 1, Y: center.Y},
		{X: center.X - 2, Y: center.Y},
	}
	g.direction = core.DirRight
	g.pendingDir = core.DirRight
	g.score = 0
	g.speed = g.cfg.Speed.Start()
	g.obstacles = make(map[core.Cell]bool)
	g.deathReason = ""
	g.tick = 0

	food, ok := RandomFreeCell(g.rng, g.cfg.Grid.Width, g.cfg.Grid.Height, g.cfg.Grid.Margin, g.occupied(nil))
	if !ok {
		food = core.CellNone
	}
	g.food = food

	g.phase = PhasePlaying
}

// occupied returns the snake body as an exclusion set, with extra cells
// merged in.
func (g *Game) occupied(extra map[core.Cell]bool) map[core.Cell]bool {
	set := make(map[core.Cell]bool, len(g.snake)+len(extra))
	for _, seg := range g.snake {
		set[seg] = true
	}
	for c := range extra {
		set[c] = true
	}
	return set
}

// HandleInput processes buffered player input. Direction reversal is
// rejected here, at input time, so an illegal request leaves the pending
// direction untouched. Returns the events the input produced.
func (g *Game) HandleInput(in core.InputFrame) []Event {
	var events []Event

	switch g.phase {
	case PhaseMenu:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionPause) || in.Has(core.ActionStart) {
			g.startRun()
			events = append(events, EventStarted)
		}

	case PhaseGameOver, PhaseWin:
		if in.Has(core.ActionRestart) {
			g.startRun()
			events = append(events, EventStarted)
		}

	case PhasePlaying, PhasePaused:
		if in.Has(core.ActionPause) {
			if g.phase == PhasePlaying {
				g.phase = PhasePaused
				events = append(events, EventPaused)
			} else {
				g.phase = PhasePlaying
				events = append(events, EventResumed)
			}
		}
		if in.Has(core.ActionSpeedUp) {
			g.speed = core.Clamp(g.speed+1, g.cfg.Speed.Min, g.cfg.Speed.Max)
		}
		if in.Has(core.ActionSpeedDown) {
			g.speed = core.Clamp(g.speed-1, g.cfg.Speed.Min, g.cfg.Speed.Max)
		}
		g.bufferDirection(in)
	}

	return events
}

// bufferDirection records the most recent directional request, ignoring any
// that would reverse the current movement.
func (g *Game) bufferDirection(in core.InputFrame) {
	requested := g.pendingDir
	switch {
	case in.Has(core.ActionUp):
		requested = core.DirUp
	case in.Has(core.ActionDown):
		requested = core.DirDown
	case in.Has(core.ActionLeft):
		requested = core.DirLeft
	case in.Has(core.ActionRight):
		requested = core.DirRight
	}

	if !requested.Opposite(g.direction) {
		g.pendingDir = requested
	}
}

// Advance runs one simulation tick. It is a no-op outside the playing
// phase. Returns the events the tick produced.
func (g *Game) Advance() []Event {
	if g.phase != PhasePlaying || g.tooSmall {
		return nil
	}
	g.tick++

	// The buffered direction is adopted at most once per tick.
	g.direction = g.pendingDir

	newHead := g.snake[0].Add(g.direction)

	if newHead.X < 0 || newHead.X >= g.cfg.Grid.Width ||
		newHead.Y < 0 || newHead.Y >= g.cfg.Grid.Height {
		return g.die(ReasonWall)
	}

	if g.obstacles[newHead] {
		return g.die(ReasonObstacle)
	}

	willEat := newHead == g.food

	// Self collision. The tail cell is vacated this tick unless the snake
	// eats, in which case the tail stays put and the full body counts.
	body := g.snake
	if !willEat {
		body = g.snake[:len(g.snake)-1]
	}
	for _, seg := range body {
		if seg == newHead {
			return g.die(ReasonSelf)
		}
	}

	g.snake = append([]core.Cell{newHead}, g.snake...)

	if !willEat {
		g.snake = g.snake[:len(g.snake)-1]
		return nil
	}

	events := []Event{EventAte}
	g.score++
	g.speed = core.Clamp(g.speed+1, g.cfg.Speed.Min, g.cfg.Speed.Max)

	next, ok := RandomFreeCell(g.rng, g.cfg.Grid.Width, g.cfg.Grid.Height, g.cfg.Grid.Margin,
		g.occupied(g.obstacles))
	if !ok {
		g.phase = PhaseWin
		g.food = core.CellNone
		events = append(events, EventWon)
	} else {
		g.food = next
	}

	// Obstacles are re-rolled on every meal, avoiding the grown snake and
	// the fresh food.
	g.obstacles = RandomObstacleSet(g.rng, g.cfg.Grid.Width, g.cfg.Grid.Height, g.cfg.Grid.Margin,
		g.cfg.Obstacles.PerFood, g.occupied(map[core.Cell]bool{g.food: true}))

	return events
}

// die transitions to game over, leaving snake, food and obstacles frozen
// for the final frame.
func (g *Game) die(reason string) []Event {
	g.phase = PhaseGameOver
	g.deathReason = reason
	return []Event{EventDied}
}

// Speed returns the current tick rate in ticks per second. The host loop
// re-arms its timer from this after every tick.
func (g *Game) Speed() int {
	return g.speed
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// Length returns the current snake length.
func (g *Game) Length() int {
	return len(g.snake)
}

// DeathReason returns the reason for the last game over, or "".
func (g *Game) DeathReason() string {
	return g.deathReason
}
