package pour

import (
	"time"

	"github.com/vovakirdan/barista/internal/fortune"
)

// Machine owns the game state and the current pour session. All methods
// must be called from a single goroutine (the presentation update loop);
// transitions are therefore serialized by construction.
//
// Action methods return false when the action is not legal in the current
// state. Rejected actions leave the machine untouched.
type Machine struct {
	params    Params
	now       func() time.Time
	state     GameState
	session   Session
	stats     *fortune.PourStats
	fortune   *fortune.CoffeeFortune
	listeners []func(Event)
}

// MachineOption configures a Machine.
type MachineOption func(*Machine)

// WithClock replaces the wall clock used for pour timing.
func WithClock(now func() time.Time) MachineOption {
	return func(m *Machine) {
		m.now = now
	}
}

// NewMachine creates a machine in the Menu state.
func NewMachine(params Params, opts ...MachineOption) *Machine {
	m := &Machine{
		params: params,
		now:    time.Now,
		state:  StateMenu,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Subscribe registers a listener for machine events. Listeners run
// synchronously inside the call that produced the event.
func (m *Machine) Subscribe(fn func(Event)) {
	m.listeners = append(m.listeners, fn)
}

func (m *Machine) emit(e Event) {
	for _, fn := range m.listeners {
		fn(e)
	}
}

func (m *Machine) transition(to GameState) {
	from := m.state
	m.state = to
	m.emit(StateChanged{From: from, To: to})
}

// Params returns the tuning the machine was built with.
func (m *Machine) Params() Params {
	return m.params
}

// State returns the current game state.
func (m *Machine) State() GameState {
	return m.state
}

// Session returns a copy of the current pour session.
func (m *Machine) Session() Session {
	return m.session
}

// StartGame moves Menu → Playing with a fresh session.
func (m *Machine) StartGame() bool {
	if m.state != StateMenu {
		return false
	}
	m.session = Session{}
	m.stats = nil
	m.fortune = nil
	m.transition(StatePlaying)
	return true
}

// PointerDown starts pouring. Ignored outside Playing. The first press of a
// session starts the pour clock.
func (m *Machine) PointerDown() bool {
	if m.state != StatePlaying {
		return false
	}
	m.session.Pouring = true
	if !m.session.Started() {
		m.session.StartTime = m.now()
	}
	return true
}

// PointerUp releases the pour intent. Always accepted.
func (m *Machine) PointerUp() {
	m.session.Pouring = false
}

// PointerLeave is treated as PointerUp, in case the release is never seen.
func (m *Machine) PointerLeave() {
	m.PointerUp()
}

// Tick advances the simulation by delta seconds. It never blocks and does
// not allocate; the pot keeps easing in every state, the cup only fills
// while Playing.
func (m *Machine) Tick(delta float64) {
	m.session.TiltAngle = m.params.EaseTilt(m.session.TiltAngle, m.session.Pouring, delta)

	res := m.params.StepFill(&m.session, delta, m.state == StatePlaying)
	if !res.Flowing {
		return
	}
	if res.SpilledNow {
		m.emit(Spilled{Fill: res.Update.Fill})
	}
	m.emit(FillUpdated{FillUpdate: res.Update})
}

// CanFinish reports whether FinishPour would be accepted.
func (m *Machine) CanFinish() bool {
	return m.state == StatePlaying && m.session.FillLevel > 0
}

// FinishPour moves Playing → Analyzing and returns the pour statistics the
// caller should hand to the fortune generator. Rejected while nothing has
// been poured.
func (m *Machine) FinishPour() (fortune.PourStats, bool) {
	if !m.CanFinish() {
		return fortune.PourStats{}, false
	}

	var elapsed float64
	if m.session.Started() {
		elapsed = m.now().Sub(m.session.StartTime).Seconds()
	}

	stats := fortune.PourStats{
		FillPercentage: m.session.FillLevel,
		Spilled:        m.session.Spilled,
		TimeTaken:      elapsed,
	}
	m.stats = &stats
	m.session.Pouring = false
	m.transition(StateAnalyzing)
	return stats, true
}

// CompleteFortune stores the fortune and moves Analyzing → Finished.
func (m *Machine) CompleteFortune(f fortune.CoffeeFortune) bool {
	if m.state != StateAnalyzing {
		return false
	}
	m.fortune = &f
	m.transition(StateFinished)
	return true
}

// ResetGame moves Finished → Menu, discarding the session, stats and fortune.
func (m *Machine) ResetGame() bool {
	if m.state != StateFinished {
		return false
	}
	m.session = Session{}
	m.stats = nil
	m.fortune = nil
	m.transition(StateMenu)
	return true
}

// Stats returns the statistics of the served pour, if any.
func (m *Machine) Stats() (fortune.PourStats, bool) {
	if m.stats == nil {
		return fortune.PourStats{}, false
	}
	return *m.stats, true
}

// Fortune returns the fortune of the served pour, if any.
func (m *Machine) Fortune() (fortune.CoffeeFortune, bool) {
	if m.fortune == nil {
		return fortune.CoffeeFortune{}, false
	}
	return *m.fortune, true
}
