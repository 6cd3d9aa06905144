package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/barista/internal/core"
	"github.com/vovakirdan/barista/internal/fortune"
	"github.com/vovakirdan/barista/internal/pour"
	"github.com/vovakirdan/barista/internal/storage"
)

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keySpace = tea.KeyMsg{Type: tea.KeySpace}
)

func newTestModel(t *testing.T, store *storage.Store) Model {
	t.Helper()
	return NewModel(Options{
		Params: pour.DefaultParams(),
		Store:  store,
		Player: "tester",
		Config: core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60},
	})
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm, cmd
}

// runTicks feeds n ticks spaced step apart, starting after start.
func runTicks(t *testing.T, m Model, start time.Time, n int, step time.Duration) (Model, time.Time) {
	t.Helper()
	now := start
	for i := 0; i < n; i++ {
		now = now.Add(step)
		m, _ = update(t, m, TickMsg(now))
	}
	return m, now
}

func TestFrameDelta(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		prev     time.Time
		now      time.Time
		expected float64
	}{
		{"first tick", time.Time{}, base, 1.0 / 60},
		{"normal", base, base.Add(20 * time.Millisecond), 0.02},
		{"stall", base, base.Add(3 * time.Second), maxFrameDelta},
		{"backwards", base, base.Add(-time.Second), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := frameDelta(tt.prev, tt.now, 1.0/60)
			if got != tt.expected {
				t.Errorf("frameDelta() = %f, expected %f", got, tt.expected)
			}
		})
	}
}

func TestKeyboardFlow(t *testing.T) {
	m := newTestModel(t, nil)

	m, _ = update(t, m, keyEnter)
	if m.Machine().State() != pour.StatePlaying {
		t.Fatalf("state = %v, expected playing", m.Machine().State())
	}

	// Serving an empty cup does nothing
	m, cmd := update(t, m, keyEnter)
	if cmd != nil || m.Machine().State() != pour.StatePlaying {
		t.Fatal("serve should be rejected with an empty cup")
	}

	m, _ = update(t, m, keySpace)
	if !m.Machine().Session().Pouring {
		t.Fatal("space should start pouring")
	}

	start := time.Now()
	m, _ = runTicks(t, m, start, 30, 100*time.Millisecond)
	if m.Machine().Session().FillLevel <= 0 {
		t.Fatal("expected the cup to fill while pouring")
	}

	m, _ = update(t, m, keySpace)
	if m.Machine().Session().Pouring {
		t.Fatal("space should stop pouring")
	}

	m, cmd = update(t, m, keyEnter)
	if m.Machine().State() != pour.StateAnalyzing {
		t.Fatalf("state = %v, expected analyzing", m.Machine().State())
	}
	if cmd == nil {
		t.Fatal("serving should issue the fortune command")
	}
}

func TestMouseMapsToPointer(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = update(t, m, keyEnter)

	press := tea.MouseMsg{X: 10, Y: 10, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	m, _ = update(t, m, press)
	if !m.Machine().Session().Pouring {
		t.Fatal("left press should start pouring")
	}

	m, _ = update(t, m, tea.MouseMsg{X: 10, Y: 10, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	if m.Machine().Session().Pouring {
		t.Fatal("release should stop pouring")
	}

	m, _ = update(t, m, press)
	m, _ = update(t, m, tea.MouseMsg{X: 10, Y: 24, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	if m.Machine().Session().Pouring {
		t.Fatal("dragging off the scene should count as a leave")
	}

	m, _ = update(t, m, press)
	m, _ = update(t, m, tea.BlurMsg{})
	if m.Machine().Session().Pouring {
		t.Fatal("losing focus should count as a leave")
	}

	m, _ = update(t, m, tea.MouseMsg{X: 10, Y: 10, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	if m.Machine().Session().Pouring {
		t.Fatal("right button should not pour")
	}
}

func TestMousePressStartsFromMenu(t *testing.T) {
	m := newTestModel(t, nil)

	m, _ = update(t, m, tea.MouseMsg{X: 5, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.Machine().State() != pour.StatePlaying {
		t.Fatalf("state = %v, expected playing", m.Machine().State())
	}
	if m.Machine().Session().Pouring {
		t.Error("the click that starts the game should not pour")
	}
}

func TestFortuneCompletesAndRecords(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "pours.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m := newTestModel(t, store)
	m, _ = update(t, m, keyEnter)
	m, _ = update(t, m, keySpace)
	m, _ = runTicks(t, m, time.Now(), 40, 100*time.Millisecond)
	m, _ = update(t, m, keyEnter)

	stats, ok := m.Machine().Stats()
	if !ok {
		t.Fatal("expected stats after serving")
	}

	msg := fortuneCmd(m.ctx, m.generator, stats)()
	fm, ok := msg.(FortuneMsg)
	if !ok {
		t.Fatalf("fortune command returned %T", msg)
	}
	if fm.Result.Source != fortune.SourceOffline {
		t.Errorf("source = %q, expected offline without a client", fm.Result.Source)
	}

	m, _ = update(t, m, fm)
	if m.Machine().State() != pour.StateFinished {
		t.Fatalf("state = %v, expected finished", m.Machine().State())
	}
	if !strings.Contains(m.View(), "Barista Rating") {
		t.Error("finished view should show the fortune card")
	}

	pours, err := store.RecentPours(10)
	if err != nil {
		t.Fatalf("RecentPours() failed: %v", err)
	}
	if len(pours) != 1 {
		t.Fatalf("expected 1 recorded pour, got %d", len(pours))
	}
	if pours[0].Player != "tester" || pours[0].Stats != stats {
		t.Errorf("unexpected journal entry %+v", pours[0])
	}

	// A late duplicate result is ignored
	m, _ = update(t, m, fm)
	pours, _ = store.RecentPours(10)
	if len(pours) != 1 {
		t.Errorf("duplicate fortune recorded %d pours", len(pours))
	}

	m, _ = update(t, m, keyEnter)
	if m.Machine().State() != pour.StateMenu {
		t.Errorf("state = %v, expected menu after brewing another cup", m.Machine().State())
	}
}

func TestViewPerState(t *testing.T) {
	m := newTestModel(t, nil)
	if !strings.Contains(m.View(), "Zen Coffee") {
		t.Error("menu view should show the title")
	}

	m, _ = update(t, m, keyEnter)
	if !strings.Contains(m.View(), "Fill to Gold Ring") {
		t.Error("playing view should show the target")
	}

	m, _ = update(t, m, keySpace)
	m, _ = runTicks(t, m, time.Now(), 20, 100*time.Millisecond)
	m, _ = update(t, m, keyEnter)
	if !strings.Contains(m.View(), "Consulting the Coffee Spirits...") {
		t.Error("analyzing view should show the waiting message")
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, nil)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q should return a quit command")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}
