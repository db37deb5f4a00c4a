package game

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/samdwyer/warrens/internal/telemetry"
	"github.com/samdwyer/warrens/internal/ui"
)

// Result is the outcome of a completed run.
type Result struct {
	State State
	Quit  bool // Player quit before reaching a terminal state
	Kills int
}

// Game drives a Sim with terminal input and rendering.
type Game struct {
	sim      *Sim
	screen   *ui.Screen
	renderer *ui.Renderer
	logger   *zap.Logger
	runID    string
}

// New creates a game around an initialized simulation, opening the terminal
// screen.
func New(sim *Sim, logger *zap.Logger) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Game{
		sim:      sim,
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		logger:   logger,
		runID:    uuid.NewString(),
	}, nil
}

// Run executes the main loop: render, check terminal states, read one
// command, advance one turn. It blocks until the run ends or the player
// quits.
func (g *Game) Run(ctx context.Context) (Result, error) {
	tracer := telemetry.Tracer("game")
	ctx, runSpan := tracer.Start(ctx, "game.run")
	runSpan.SetAttributes(
		attribute.String("run.id", g.runID),
		attribute.Int("level.width", g.sim.Level().Width),
		attribute.Int("level.height", g.sim.Level().Height),
		attribute.Int("level.enemies", len(g.sim.Level().Enemies)),
	)
	defer runSpan.End()

	g.logger.Info("run started",
		zap.String("run_id", g.runID),
		zap.Int("enemies", len(g.sim.Level().Enemies)),
	)

	for {
		g.sim.Observe()
		g.renderer.Render(g.sim.Frame())

		if state := g.sim.CheckEnd(); state.Terminal() {
			runSpan.SetAttributes(
				attribute.String("run.outcome", state.String()),
				attribute.Int("run.kills", g.sim.Kills()),
			)
			g.renderer.RenderEnd(state == StateAllCleared, g.sim.Kills())
			g.waitForKey()
			return Result{State: state, Kills: g.sim.Kills()}, nil
		}

		cmd := g.readCommand()
		if cmd == CommandQuit {
			runSpan.SetAttributes(attribute.String("run.outcome", "quit"))
			g.logger.Info("run quit", zap.String("run_id", g.runID))
			return Result{State: g.sim.State(), Quit: true, Kills: g.sim.Kills()}, nil
		}

		_, turnSpan := tracer.Start(ctx, "game.turn")
		turnSpan.SetAttributes(attribute.String("command", cmd.String()))
		g.sim.Step(cmd)
		turnSpan.End()
	}
}

// readCommand blocks until a key event and maps it to a Command. Any
// unrecognized key passes the turn.
func (g *Game) readCommand() Command {
	for {
		switch ev := g.screen.PollEvent().(type) {
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyUp:
				return CommandUp
			case tcell.KeyDown:
				return CommandDown
			case tcell.KeyLeft:
				return CommandLeft
			case tcell.KeyRight:
				return CommandRight
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return CommandQuit
			case tcell.KeyRune:
				if ev.Rune() == 'q' || ev.Rune() == 'Q' {
					return CommandQuit
				}
				return CommandNone
			default:
				return CommandNone
			}
		case *tcell.EventResize:
			g.screen.Sync()
		}
	}
}

// waitForKey blocks until any key press, so end screens stay visible.
func (g *Game) waitForKey() {
	for {
		if _, ok := g.screen.PollEvent().(*tcell.EventKey); ok {
			return
		}
	}
}

// Close restores the terminal.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}
