package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/barista/internal/pour"
)

// KeyMap defines the key bindings of the game screen. Bindings that do
// not apply to the current state are disabled so the help bar only lists
// what the player can do right now.
type KeyMap struct {
	Start key.Binding
	Pour  key.Binding
	Serve key.Binding
	Again key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Pour, k.Serve, k.Again, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Start, k.Pour, k.Serve, k.Again},
		{k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Start: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "start brewing"),
		),
		Pour: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space/hold mouse", "pour"),
		),
		Serve: key.NewBinding(
			key.WithKeys("enter", "s"),
			key.WithHelp("enter", "serve"),
		),
		Again: key.NewBinding(
			key.WithKeys("enter", "r"),
			key.WithHelp("enter", "brew another cup"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// forState enables the bindings that apply to a snapshot.
func (k KeyMap) forState(snap pour.Snapshot) KeyMap {
	k.Start.SetEnabled(snap.State == pour.StateMenu)
	k.Pour.SetEnabled(snap.State == pour.StatePlaying)
	k.Serve.SetEnabled(snap.CanFinish)
	k.Serve.SetHelp("enter", strings.ToLower(pour.ServeLabel(snap.FillLevel)))
	k.Again.SetEnabled(snap.State == pour.StateFinished)
	return k
}

