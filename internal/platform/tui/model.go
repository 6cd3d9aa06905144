package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/barista/internal/core"
	"github.com/vovakirdan/barista/internal/fortune"
	"github.com/vovakirdan/barista/internal/pour"
	"github.com/vovakirdan/barista/internal/scene"
	"github.com/vovakirdan/barista/internal/storage"
)

// helpRows is the height of the help bar below the scene.
const helpRows = 1

// FortuneMsg delivers the result of a fortune request to the update loop.
type FortuneMsg struct {
	Result fortune.Result
}

// Options wires the model to its collaborators. Store and Logger may be nil.
type Options struct {
	Params    pour.Params
	Generator *fortune.Generator
	Store     *storage.Store
	Logger    *log.Logger
	Player    string
	Config    core.RuntimeConfig
	Context   context.Context
}

// Model is the Bubble Tea model for one pour session.
type Model struct {
	ctx       context.Context
	machine   *pour.Machine
	generator *fortune.Generator
	store     *storage.Store
	logger    *log.Logger
	player    string
	screen    *core.Screen
	config    core.RuntimeConfig
	keys      KeyMap
	help      help.Model
	spinner   spinner.Model
	lastTick  time.Time
	source    fortune.Source
	quitting  bool
}

// NewModel creates a new Bubble Tea model in the menu state.
func NewModel(opts Options) Model {
	cfg := opts.Config
	if cfg.ScreenW <= 0 || cfg.ScreenH <= 0 || cfg.TickRate <= 0 {
		def := core.DefaultConfig()
		if cfg.ScreenW <= 0 {
			cfg.ScreenW = def.ScreenW
		}
		if cfg.ScreenH <= 0 {
			cfg.ScreenH = def.ScreenH
		}
		if cfg.TickRate <= 0 {
			cfg.TickRate = def.TickRate
		}
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	gen := opts.Generator
	if gen == nil {
		gen = fortune.NewGenerator(nil, fortune.WithLogger(logger))
	}
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorGold)

	h := help.New()
	h.Width = cfg.ScreenW

	m := Model{
		ctx:       ctx,
		machine:   pour.NewMachine(opts.Params),
		generator: gen,
		store:     opts.Store,
		logger:    logger,
		player:    opts.Player,
		screen:    core.NewScreen(cfg.ScreenW, sceneHeight(cfg.ScreenH)),
		config:    cfg,
		keys:      DefaultKeyMap(),
		help:      h,
		spinner:   sp,
	}
	m.machine.Subscribe(m.logEvent)
	return m
}

func sceneHeight(h int) int {
	return core.Max(h-helpRows, 1)
}

// logEvent reports machine events. Fill updates arrive every frame and are
// left out.
func (m Model) logEvent(e pour.Event) {
	switch ev := e.(type) {
	case pour.StateChanged:
		m.logger.Debug("state changed", "player", m.player, "from", ev.From, "to", ev.To)
	case pour.Spilled:
		m.logger.Info("cup overflowed", "player", m.player, "fill", ev.Fill)
	}
}

// Machine exposes the underlying state machine.
func (m Model) Machine() *pour.Machine {
	return m.machine
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.BlurMsg:
		m.machine.PointerLeave()
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case FortuneMsg:
		return m.handleFortune(msg)

	case spinner.TickMsg:
		if m.machine.State() != pour.StateAnalyzing {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys.forState(m.machine.Snapshot())

	switch {
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case msg.String() == "ctrl+s":
		m.saveScreenshot()
		return m, nil

	case key.Matches(msg, keys.Start):
		m.machine.StartGame()
		return m, nil

	// Terminals do not report key release, so space toggles the pour
	case key.Matches(msg, keys.Pour):
		if m.machine.Session().Pouring {
			m.machine.PointerUp()
		} else {
			m.machine.PointerDown()
		}
		return m, nil

	case key.Matches(msg, keys.Serve):
		return m.serve()

	case key.Matches(msg, keys.Again):
		m.machine.ResetGame()
		return m, nil
	}

	return m, nil
}

// handleMouse maps mouse buttons onto the pointer contract.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	area := scene.NewLayout(m.screen.Width(), m.screen.Height()).Area()
	inside := area.Contains(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !inside {
			return m, nil
		}
		switch m.machine.State() {
		case pour.StateMenu:
			m.machine.StartGame()
		case pour.StatePlaying:
			m.machine.PointerDown()
		}

	case tea.MouseActionRelease:
		m.machine.PointerUp()

	case tea.MouseActionMotion:
		if !inside {
			m.machine.PointerLeave()
		}
	}
	return m, nil
}

// serve finishes the pour and requests the fortune off the update loop.
func (m Model) serve() (tea.Model, tea.Cmd) {
	stats, ok := m.machine.FinishPour()
	if !ok {
		return m, nil
	}
	m.logger.Info("pour served",
		"player", m.player,
		"fill", fmt.Sprintf("%.1f", stats.FillPercentage),
		"spilled", stats.Spilled,
		"time", fmt.Sprintf("%.1fs", stats.TimeTaken),
	)
	return m, tea.Batch(m.spinner.Tick, fortuneCmd(m.ctx, m.generator, stats))
}

// fortuneCmd runs the generator in a command goroutine.
func fortuneCmd(ctx context.Context, gen *fortune.Generator, stats fortune.PourStats) tea.Cmd {
	return func() tea.Msg {
		return FortuneMsg{Result: gen.Generate(ctx, stats)}
	}
}

// handleFortune completes the analysis and records the pour.
func (m Model) handleFortune(msg FortuneMsg) (tea.Model, tea.Cmd) {
	stats, _ := m.machine.Stats()
	if !m.machine.CompleteFortune(msg.Result.Fortune) {
		return m, nil
	}
	m.source = msg.Result.Source

	if m.store != nil {
		if _, err := m.store.SavePour(m.player, stats, msg.Result); err != nil {
			m.logger.Error("could not record pour", "error", err)
		}
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, sceneHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the simulation by the real frame time.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	delta := frameDelta(m.lastTick, now, m.config.FrameInterval())
	m.lastTick = now
	m.machine.Tick(delta)
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current scene to a file.
func (m *Model) saveScreenshot() {
	scene.Draw(m.screen, m.machine.Snapshot(), m.machine.Params())

	dir := filepath.Join(os.Getenv("HOME"), ".barista", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	filename := fmt.Sprintf("pour_%s.txt", time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.machine.Snapshot()
	w, h := m.config.ScreenW, sceneHeight(m.config.ScreenH)

	var body string
	switch snap.State {
	case pour.StateMenu:
		body = lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, menuCard())

	case pour.StateFinished:
		card := ""
		if snap.Fortune != nil {
			card = fortuneCard(*snap.Fortune, snap.Stats, m.source)
		}
		cardW := lipgloss.Width(card)
		if w-cardW-2 >= scene.MinWidth {
			m.screen.Resize(w-cardW-2, h)
			scene.Draw(m.screen, snap, m.machine.Params())
			body = lipgloss.JoinHorizontal(lipgloss.Center,
				RenderScreen(m.screen), "  ",
				lipgloss.Place(cardW, h, lipgloss.Center, lipgloss.Center, card))
		} else {
			body = lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, card)
		}

	default:
		m.screen.Resize(w, h)
		scene.Draw(m.screen, snap, m.machine.Params())
		body = RenderScreen(m.screen)
		if snap.State == pour.StateAnalyzing {
			body = replaceFirstLine(body, lipgloss.PlaceHorizontal(w, lipgloss.Center,
				m.spinner.View()+" "+titleStyle.Render("Consulting the Coffee Spirits...")))
		}
	}

	helpView := mutedStyle.Render(m.help.View(m.keys.forState(snap)))
	return body + "\n" + helpView
}

func replaceFirstLine(s, line string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return line + s[i:]
	}
	return line
}

// Run starts the Bubble Tea program with the given options in the local terminal.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	)

	_, err := p.Run()
	return err
}
