package tui

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flappy-dragon/internal/config"
	"github.com/vovakirdan/flappy-dragon/internal/core"
)

// KeyMap translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMap struct {
	Flap       key.Binding
	Play       key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding
	Screenshot key.Binding
}

// NewKeyMap builds bindings from the configured key names.
func NewKeyMap(c config.ControlsConfig) KeyMap {
	return KeyMap{
		Flap: key.NewBinding(
			key.WithKeys(c.Flap...),
			key.WithHelp(helpKeys(c.Flap), "flap"),
		),
		Play: key.NewBinding(
			key.WithKeys(c.Play...),
			key.WithHelp(helpKeys(c.Play), "play"),
		),
		Quit: key.NewBinding(
			key.WithKeys(c.Quit...),
			key.WithHelp(helpKeys(c.Quit), "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "exit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// DefaultKeyMap returns bindings for the default controls.
func DefaultKeyMap() KeyMap {
	return NewKeyMap(config.Default().Controls)
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Flap, k.Play, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Flap, k.Play, k.Quit},
		{k.ForceQuit, k.Screenshot},
	}
}

// Action maps a key message to the game action it is bound to.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Flap):
		return core.ActionFlap
	case key.Matches(msg, k.Play):
		return core.ActionPlay
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	}
	return core.ActionNone
}

// helpKeys formats key names for the help footer.
func helpKeys(keys []string) string {
	names := make([]string, 0, len(keys))
	for _, k := range keys {
		if k == " " {
			k = "space"
		}
		if !slices.Contains(names, k) {
			names = append(names, k)
		}
	}
	return strings.Join(names, "/")
}
