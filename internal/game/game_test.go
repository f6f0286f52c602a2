package game

import (
	"strings"
	"testing"

	"github.com/CuriAlexity/snake-arcade/internal/config"
	"github.com/CuriAlexity/snake-arcade/internal/core"
)

func testConfig() config.Config {
	return config.Config{
		Grid:      config.GridConfig{Width: 30, Height: 20, Margin: 1},
		Speed:     config.SpeedConfig{Base: 12, Min: 2, Max: 24},
		Obstacles: config.ObstaclesConfig{PerFood: 3},
	}
}

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: seed}
}

func newStarted(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New(testConfig())
	g.Reset(testRuntime(seed))

	frame := core.NewInputFrame()
	frame.Set(core.ActionConfirm)
	events := g.HandleInput(frame)

	if len(events) != 1 || events[0] != EventStarted {
		t.Fatalf("Expected [EventStarted] from menu confirm, got %v", events)
	}
	return g
}

func press(g *Game, a core.Action) []Event {
	frame := core.NewInputFrame()
	frame.Set(a)
	return g.HandleInput(frame)
}

func TestResetEntersMenu(t *testing.T) {
	g := New(testConfig())
	g.Reset(testRuntime(1))

	if g.Phase() != PhaseMenu {
		t.Errorf("Expected menu phase after reset, got %v", g.Phase())
	}
	if events := g.Advance(); events != nil {
		t.Errorf("Advance in menu should be a no-op, got events %v", events)
	}
}

func TestStartRunInitialState(t *testing.T) {
	g := newStarted(t, 42)

	if g.Phase() != PhasePlaying {
		t.Fatalf("Expected playing phase, got %v", g.Phase())
	}
	if len(g.snake) != 3 {
		t.Errorf("Expected snake length 3, got %d", len(g.snake))
	}
	if head := g.snake[0]; head != (core.Cell{X: 15, Y: 10}) {
		t.Errorf("Expected head at grid center (15, 10), got (%d, %d)", head.X, head.Y)
	}
	if g.direction != core.DirRight {
		t.Errorf("Expected initial direction right, got %v", g.direction)
	}
	if g.Speed() != 2 {
		t.Errorf("Expected start speed 2 (base 12 / 5 clamped to min 2), got %d", g.Speed())
	}
	if g.Score() != 0 {
		t.Errorf("Expected score 0, got %d", g.Score())
	}
	if len(g.obstacles) != 0 {
		t.Errorf("Expected no obstacles before the first meal, got %d", len(g.obstacles))
	}

	// Food spawns inside the margin-adjusted bounds, off the snake
	if g.food.X < 1 || g.food.X >= 29 || g.food.Y < 1 || g.food.Y >= 19 {
		t.Errorf("Food spawned outside bounds at (%d, %d)", g.food.X, g.food.Y)
	}
	for _, seg := range g.snake {
		if seg == g.food {
			t.Errorf("Food spawned on snake at (%d, %d)", g.food.X, g.food.Y)
		}
	}
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed and inputs produce identical snapshots
	g1 := newStarted(t, 12345)
	g2 := newStarted(t, 12345)

	actions := map[int]core.Action{
		5:  core.ActionDown,
		20: core.ActionLeft,
		40: core.ActionUp,
	}

	for i := 0; i < 100; i++ {
		if a, ok := actions[i]; ok {
			press(g1, a)
			press(g2, a)
		}
		g1.Advance()
		g2.Advance()
	}

	snap1 := g1.Snapshot()
	snap2 := g2.Snapshot()

	if snap1.Tick != snap2.Tick {
		t.Errorf("Tick mismatch: %d vs %d", snap1.Tick, snap2.Tick)
	}
	if snap1.Phase != snap2.Phase {
		t.Errorf("Phase mismatch: %v vs %v", snap1.Phase, snap2.Phase)
	}
	if snap1.Score != snap2.Score {
		t.Errorf("Score mismatch: %d vs %d", snap1.Score, snap2.Score)
	}
	if snap1.Head() != snap2.Head() {
		t.Errorf("Head mismatch: %v vs %v", snap1.Head(), snap2.Head())
	}
	if snap1.Food != snap2.Food {
		t.Errorf("Food mismatch: %v vs %v", snap1.Food, snap2.Food)
	}
	if len(snap1.Obstacles) != len(snap2.Obstacles) {
		t.Fatalf("Obstacle count mismatch: %d vs %d", len(snap1.Obstacles), len(snap2.Obstacles))
	}
	for i := range snap1.Obstacles {
		if snap1.Obstacles[i] != snap2.Obstacles[i] {
			t.Errorf("Obstacle %d mismatch: %v vs %v", i, snap1.Obstacles[i], snap2.Obstacles[i])
		}
	}
}

func TestNoImmediateReversal(t *testing.T) {
	g := newStarted(t, 42)

	// Moving right; a left request must be dropped at input time
	press(g, core.ActionLeft)
	if g.pendingDir == core.DirLeft {
		t.Error("Should not buffer a reversal from right to left")
	}

	press(g, core.ActionDown)
	if g.pendingDir != core.DirDown {
		t.Errorf("Expected pending direction down, got %v", g.pendingDir)
	}

	// After turning down, up becomes the forbidden reversal
	g.Advance()
	press(g, core.ActionUp)
	if g.pendingDir == core.DirUp {
		t.Error("Should not buffer a reversal from down to up")
	}
}

func TestOnlyLastBufferedDirectionApplies(t *testing.T) {
	g := newStarted(t, 42)

	// Two turns between ticks; only the latest buffered one is adopted.
	// Up is legal here because the snake is still moving right on screen.
	press(g, core.ActionDown)
	press(g, core.ActionUp)
	if g.pendingDir != core.DirUp {
		t.Fatalf("Expected pending direction up, got %v", g.pendingDir)
	}

	head := g.snake[0]
	g.Advance()
	if g.snake[0] != head.Add(core.DirUp) {
		t.Errorf("Expected head to move up, got %v", g.snake[0])
	}
}

func TestPlainMoveDropsTail(t *testing.T) {
	g := newStarted(t, 42)

	// Keep the food out of the snake's path
	g.food = core.Cell{X: 1, Y: 1}

	g.Advance()

	expected := []core.Cell{{X: 16, Y: 10}, {X: 15, Y: 10}, {X: 14, Y: 10}}
	if len(g.snake) != len(expected) {
		t.Fatalf("Snake length = %d, expected %d", len(g.snake), len(expected))
	}
	for i, seg := range expected {
		if g.snake[i] != seg {
			t.Errorf("Segment %d = %v, expected %v", i, g.snake[i], seg)
		}
	}
	if g.Score() != 0 {
		t.Errorf("Score = %d, expected 0 on a plain move", g.Score())
	}
}

func TestEatKeepsTail(t *testing.T) {
	g := newStarted(t, 42)

	g.food = core.Cell{X: 16, Y: 10}

	g.Advance()

	expected := []core.Cell{{X: 16, Y: 10}, {X: 15, Y: 10}, {X: 14, Y: 10}, {X: 13, Y: 10}}
	if len(g.snake) != len(expected) {
		t.Fatalf("Snake length = %d, expected %d", len(g.snake), len(expected))
	}
	for i, seg := range expected {
		if g.snake[i] != seg {
			t.Errorf("Segment %d = %v, expected %v", i, g.snake[i], seg)
		}
	}
}

func TestNoDuplicateCellsInvariant(t *testing.T) {
	// Random-ish play for many ticks: the snake body must stay duplicate-free
	// after every tick.
	g := newStarted(t, 987)

	turns := []core.Action{core.ActionDown, core.ActionLeft, core.ActionUp, core.ActionRight}
	for i := 0; i < 500 && g.Phase() == PhasePlaying; i++ {
		if i%3 == 0 {
			press(g, turns[(i/3)%len(turns)])
		}
		g.Advance()

		seen := make(map[core.Cell]bool, len(g.snake))
		for _, seg := range g.snake {
			if seen[seg] {
				t.Fatalf("Tick %d: duplicate cell (%d, %d) in snake", i, seg.X, seg.Y)
			}
			seen[seg] = true
		}
	}
}

func TestWallCollision(t *testing.T) {
	g := newStarted(t, 42)

	g.snake = []core.Cell{{X: 5, Y: 0}, {X: 5, Y: 1}, {X: 5, Y: 2}}
	g.direction = core.DirUp
	g.pendingDir = core.DirUp

	food := g.food
	events := g.Advance()

	if g.Phase() != PhaseGameOver {
		t.Fatalf("Expected game over after hitting wall, got %v", g.Phase())
	}
	if g.DeathReason() != ReasonWall {
		t.Errorf("Expected reason %q, got %q", ReasonWall, g.DeathReason())
	}
	if len(events) != 1 || events[0] != EventDied {
		t.Errorf("Expected [EventDied], got %v", events)
	}

	// Death freezes the board for the final frame
	if g.snake[0] != (core.Cell{X: 5, Y: 0}) || len(g.snake) != 3 {
		t.Errorf("Snake mutated on death: %v", g.snake)
	}
	if g.food != food {
		t.Errorf("Food mutated on death: %v vs %v", g.food, food)
	}
}

func TestSelfCollisionUnreachableAtLengthThree(t *testing.T) {
	g := newStarted(t, 42)

	// A 3-segment snake making the tightest possible loop can never reach
	// its own body; only length 4 and up can close on itself.
	g.food = core.Cell{X: 1, Y: 1}
	g.obstacles = map[core.Cell]bool{}

	turns := []core.Action{core.ActionDown, core.ActionLeft, core.ActionUp, core.ActionRight}
	for i := 0; i < 8; i++ {
		press(g, turns[i%len(turns)])
		if g.food == g.snake[0].Add(g.pendingDir) {
			g.food = core.Cell{X: 1, Y: 1}
		}
		g.Advance()
		if g.Phase() != PhasePlaying {
			t.Fatalf("Tick %d: length-3 snake died (%s) in a tight loop", i, g.DeathReason())
		}
	}
}

func TestObstacleCollision(t *testing.T) {
	g := newStarted(t, 42)

	head := g.snake[0]
	blocked := head.Add(core.DirRight)
	g.obstacles = map[core.Cell]bool{blocked: true}
	if g.food == blocked {
		g.food = core.Cell{X: 1, Y: 1}
	}

	g.Advance()

	if g.Phase() != PhaseGameOver {
		t.Fatalf("Expected game over after hitting obstacle, got %v", g.Phase())
	}
	if g.DeathReason() != ReasonObstacle {
		t.Errorf("Expected reason %q, got %q", ReasonObstacle, g.DeathReason())
	}
}

func TestSelfCollision(t *testing.T) {
	g := newStarted(t, 111)

	// Spiral that closes on itself when the head moves right
	g.snake = []core.Cell{
		{X: 5, Y: 5}, // Head
		{X: 5, Y: 6},
		{X: 6, Y: 6},
		{X: 6, Y: 5},
		{X: 6, Y: 4},
	}
	g.direction = core.DirRight
	g.pendingDir = core.DirRight
	g.food = core.Cell{X: 20, Y: 15}

	g.Advance()

	if g.Phase() != PhaseGameOver {
		t.Fatalf("Expected game over after self collision, got %v", g.Phase())
	}
	if g.DeathReason() != ReasonSelf {
		t.Errorf("Expected reason %q, got %q", ReasonSelf, g.DeathReason())
	}
}

func TestTailCellVacatedIsNotCollision(t *testing.T) {
	g := newStarted(t, 42)

	// Closed square: the head moves into the tail's cell, but the tail
	// vacates it on the same tick, so the snake survives.
	g.snake = []core.Cell{
		{X: 5, Y: 5}, // Head
		{X: 4, Y: 5},
		{X: 4, Y: 4},
		{X: 5, Y: 4}, // Tail
	}
	g.direction = core.DirUp
	g.pendingDir = core.DirUp
	g.food = core.Cell{X: 20, Y: 15}

	g.Advance()

	if g.Phase() != PhasePlaying {
		t.Fatalf("Expected snake to survive moving into the vacating tail cell, got %v (%s)",
			g.Phase(), g.DeathReason())
	}
	if g.snake[0] != (core.Cell{X: 5, Y: 4}) {
		t.Errorf("Expected head at (5, 4), got %v", g.snake[0])
	}
}

func TestTailCellCountsWhenEating(t *testing.T) {
	g := newStarted(t, 42)

	// Same square, but the tail cell holds food. Eating keeps the tail in
	// place, so the move is a self collision.
	g.snake = []core.Cell{
		{X: 5, Y: 5}, // Head
		{X: 4, Y: 5},
		{X: 4, Y: 4},
		{X: 5, Y: 4}, // Tail
	}
	g.direction = core.DirUp
	g.pendingDir = core.DirUp
	g.food = core.Cell{X: 5, Y: 4}

	g.Advance()

	if g.Phase() != PhaseGameOver {
		t.Fatalf("Expected self collision when eating on the tail cell, got %v", g.Phase())
	}
	if g.DeathReason() != ReasonSelf {
		t.Errorf("Expected reason %q, got %q", ReasonSelf, g.DeathReason())
	}
}

func TestEatGrowsScoresAndSpeeds(t *testing.T) {
	g := newStarted(t, 42)

	initialLen := len(g.snake)
	initialSpeed := g.Speed()
	g.food = g.snake[0].Add(core.DirRight)

	events := g.Advance()

	if g.Score() != 1 {
		t.Errorf("Expected score 1 after eating, got %d", g.Score())
	}
	if len(g.snake) != initialLen+1 {
		t.Errorf("Expected snake to grow to %d, got %d", initialLen+1, len(g.snake))
	}
	if g.Speed() != initialSpeed+1 {
		t.Errorf("Expected speed %d after eating, got %d", initialSpeed+1, g.Speed())
	}
	if len(events) != 1 || events[0] != EventAte {
		t.Errorf("Expected [EventAte], got %v", events)
	}

	// Obstacles are re-rolled on every meal, avoiding snake and food
	if len(g.obstacles) != 3 {
		t.Errorf("Expected 3 obstacles after eating, got %d", len(g.obstacles))
	}
	for c := range g.obstacles {
		if c == g.food {
			t.Errorf("Obstacle on food at (%d, %d)", c.X, c.Y)
		}
		for _, seg := range g.snake {
			if c == seg {
				t.Errorf("Obstacle on snake at (%d, %d)", c.X, c.Y)
			}
		}
	}

	// New food avoids the grown snake
	for _, seg := range g.snake {
		if seg == g.food {
			t.Errorf("Food respawned on snake at (%d, %d)", g.food.X, g.food.Y)
		}
	}
}

func TestPauseAndResume(t *testing.T) {
	g := newStarted(t, 42)

	events := press(g, core.ActionPause)
	if g.Phase() != PhasePaused {
		t.Fatalf("Expected paused phase, got %v", g.Phase())
	}
	if len(events) != 1 || events[0] != EventPaused {
		t.Errorf("Expected [EventPaused], got %v", events)
	}

	tick := g.tick
	if got := g.Advance(); got != nil {
		t.Errorf("Advance while paused should be a no-op, got %v", got)
	}
	if g.tick != tick {
		t.Errorf("Tick advanced while paused: %d vs %d", g.tick, tick)
	}

	events = press(g, core.ActionPause)
	if g.Phase() != PhasePlaying {
		t.Fatalf("Expected playing phase after resume, got %v", g.Phase())
	}
	if len(events) != 1 || events[0] != EventResumed {
		t.Errorf("Expected [EventResumed], got %v", events)
	}
}

func TestSpeedAdjustClamped(t *testing.T) {
	g := newStarted(t, 42)

	for i := 0; i < 50; i++ {
		press(g, core.ActionSpeedUp)
	}
	if g.Speed() != 24 {
		t.Errorf("Expected speed clamped to max 24, got %d", g.Speed())
	}

	for i := 0; i < 50; i++ {
		press(g, core.ActionSpeedDown)
	}
	if g.Speed() != 2 {
		t.Errorf("Expected speed clamped to min 2, got %d", g.Speed())
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g := newStarted(t, 42)

	g.snake = []core.Cell{{X: 5, Y: 0}, {X: 5, Y: 1}, {X: 5, Y: 2}}
	g.direction = core.DirUp
	g.pendingDir = core.DirUp
	g.score = 7
	g.Advance()

	if g.Phase() != PhaseGameOver {
		t.Fatal("Setup failed: expected game over")
	}

	// Directional and pause input is ignored on the game over screen
	press(g, core.ActionPause)
	if g.Phase() != PhaseGameOver {
		t.Errorf("Pause should be ignored at game over, got %v", g.Phase())
	}

	events := press(g, core.ActionRestart)
	if g.Phase() != PhasePlaying {
		t.Fatalf("Expected playing phase after restart, got %v", g.Phase())
	}
	if len(events) != 1 || events[0] != EventStarted {
		t.Errorf("Expected [EventStarted], got %v", events)
	}
	if g.Score() != 0 || len(g.snake) != 3 {
		t.Errorf("Expected fresh run after restart, got score %d length %d", g.Score(), len(g.snake))
	}
	if g.Speed() != 2 {
		t.Errorf("Expected speed reset to 2, got %d", g.Speed())
	}
	if len(g.obstacles) != 0 {
		t.Errorf("Expected obstacles cleared, got %d", len(g.obstacles))
	}
	if g.DeathReason() != "" {
		t.Errorf("Expected death reason cleared, got %q", g.DeathReason())
	}
}

func TestWinWhenBoardFull(t *testing.T) {
	cfg := testConfig()
	cfg.Grid = config.GridConfig{Width: 4, Height: 4, Margin: 1}

	g := New(cfg)
	g.Reset(testRuntime(1))
	press(g, core.ActionConfirm)

	// 4x4 grid with margin 1 has a 2x2 interior. Occupy three cells and
	// put food on the last one; eating fills the board.
	g.snake = []core.Cell{
		{X: 1, Y: 2}, // Head
		{X: 1, Y: 1},
		{X: 2, Y: 1},
	}
	g.direction = core.DirRight
	g.pendingDir = core.DirRight
	g.obstacles = map[core.Cell]bool{}
	g.food = core.Cell{X: 2, Y: 2}

	events := g.Advance()

	if g.Phase() != PhaseWin {
		t.Fatalf("Expected win phase when the board fills, got %v", g.Phase())
	}
	if g.food != core.CellNone {
		t.Errorf("Expected food sentinel CellNone on win, got %v", g.food)
	}

	var won bool
	for _, ev := range events {
		if ev == EventWon {
			won = true
		}
	}
	if !won {
		t.Errorf("Expected EventWon in %v", events)
	}

	// R starts a fresh run from the win screen too
	press(g, core.ActionRestart)
	if g.Phase() != PhasePlaying {
		t.Errorf("Expected playing phase after restart from win, got %v", g.Phase())
	}
}

func TestWindowTooSmallBlocksTicks(t *testing.T) {
	g := newStarted(t, 42)

	g.SetScreenSize(10, 5)
	if !g.tooSmall {
		t.Fatal("Expected too-small flag for a 10x5 screen")
	}

	tick := g.tick
	if events := g.Advance(); events != nil {
		t.Errorf("Advance should be a no-op while the window is too small, got %v", events)
	}
	if g.tick != tick {
		t.Error("Tick advanced while the window was too small")
	}

	// The run resumes untouched once the window is usable again
	g.SetScreenSize(80, 24)
	if g.tooSmall {
		t.Fatal("Expected too-small flag cleared")
	}
	g.Advance()
	if g.tick != tick+1 {
		t.Errorf("Expected tick %d after resize, got %d", tick+1, g.tick)
	}
}

func TestRenderMenu(t *testing.T) {
	g := New(testConfig())
	g.Reset(testRuntime(444))

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	content := screen.String()
	if !strings.Contains(content, "S N A K E") {
		t.Error("Menu should contain the title")
	}
	if !strings.Contains(content, "Start") {
		t.Error("Menu should contain the Start button")
	}
}

func TestRenderPlaying(t *testing.T) {
	g := newStarted(t, 444)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	content := screen.String()
	if !strings.Contains(content, "Score: 0") {
		t.Error("HUD should contain the score")
	}
	if !strings.Contains(content, "O") {
		t.Error("Playfield should contain the snake head")
	}
	if !strings.Contains(content, "●") {
		t.Error("Playfield should contain the food")
	}
}

func TestRenderGameOverOverlay(t *testing.T) {
	g := newStarted(t, 444)

	g.snake = []core.Cell{{X: 5, Y: 0}, {X: 5, Y: 1}, {X: 5, Y: 2}}
	g.direction = core.DirUp
	g.pendingDir = core.DirUp
	g.Advance()

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	content := screen.String()
	if !strings.Contains(content, "Game Over (Hit wall)") {
		t.Error("Overlay should name the death reason")
	}
}

func TestStartButtonCentered(t *testing.T) {
	g := New(testConfig())
	g.Reset(testRuntime(1))

	btn := g.StartButton()
	cx, cy := btn.Center()
	if !btn.Contains(cx, cy) {
		t.Error("Start button should contain its own center")
	}
	if btn.W != 16 || btn.H != 3 {
		t.Errorf("Expected 16x3 button, got %dx%d", btn.W, btn.H)
	}
}
