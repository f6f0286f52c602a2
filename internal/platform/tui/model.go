package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/CuriAlexity/snake-arcade/internal/audio"
	"github.com/CuriAlexity/snake-arcade/internal/core"
	"github.com/CuriAlexity/snake-arcade/internal/eventlog"
	"github.com/CuriAlexity/snake-arcade/internal/game"
)

// Model is the Bubble Tea model that drives a run of the game. It owns the
// screen buffer, translates terminal input to semantic actions and reacts to
// simulation events with sounds and run-log records.
type Model struct {
	game     *game.Game
	screen   *core.Screen
	player   audio.Player
	runlog   *eventlog.Logger
	config   core.RuntimeConfig
	keymap   *KeyMapper
	quitting bool
}

// NewModel creates a model around an already-constructed game.
func NewModel(g *game.Game, player audio.Player, runlog *eventlog.Logger, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	g.Reset(cfg)

	return Model{
		game:   g,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		player: player,
		runlog: runlog,
		config: cfg,
		keymap: NewKeyMapper(),
	}
}

// Init starts the tick loop. The game sits in the menu phase until the
// player starts a run, but the loop runs from the first frame so the menu
// stays responsive to resizes and repaints.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.game.Speed())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Actions are applied immediately, not
// deferred to the next tick, so direction changes and reversal rejection see
// the key order the player actually typed.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keymap.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if action == core.ActionNone {
		return m, nil
	}

	frame := core.NewInputFrame()
	frame.Set(action)
	m.handleEvents(m.game.HandleInput(frame))

	return m, nil
}

// handleMouse starts a run when the menu's Start button is clicked.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if m.game.Phase() != game.PhaseMenu {
		return m, nil
	}
	if !m.game.StartButton().Contains(msg.X, msg.Y) {
		return m, nil
	}

	frame := core.NewInputFrame()
	frame.Set(core.ActionStart)
	m.handleEvents(m.game.HandleInput(frame))

	return m, nil
}

// handleResize recomputes the layout. The run itself is untouched; only the
// grid placement and the too-small check change.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.SetScreenSize(msg.Width, msg.Height)

	return m, nil
}

// handleTick advances the simulation one step and re-arms the timer at the
// game's current speed, so eating food takes effect on the very next tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.handleEvents(m.game.Advance())

	return m, tickCmd(m.game.Speed())
}

// handleEvents reacts to simulation events with audio and run-log records.
func (m Model) handleEvents(events []game.Event) {
	for _, ev := range events {
		switch ev {
		case game.EventStarted:
			m.player.StartMusic()
		case game.EventAte:
			m.player.PlayEat()
		case game.EventPaused:
			m.player.PauseMusic()
		case game.EventResumed:
			m.player.ResumeMusic()
		case game.EventDied:
			m.player.FadeOutMusic()
			m.player.PlayGameOver()
			m.runlog.Append(eventlog.Record{
				TS:     time.Now().Unix(),
				Event:  eventlog.EventGameOver,
				Reason: m.game.DeathReason(),
				Score:  m.game.Score(),
				Length: m.game.Length(),
				Speed:  m.game.Speed(),
			})
		case game.EventWon:
			m.player.FadeOutMusic()
			m.runlog.Append(eventlog.Record{
				TS:     time.Now().Unix(),
				Event:  eventlog.EventWin,
				Score:  m.game.Score(),
				Length: m.game.Length(),
				Speed:  m.game.Speed(),
			})
		}
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(g *game.Game, player audio.Player, runlog *eventlog.Logger, cfg core.RuntimeConfig) error {
	model := NewModel(g, player, runlog, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Enable mouse for the Start button
	)

	_, err := p.Run()
	return err
}
