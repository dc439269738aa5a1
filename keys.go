package main

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/andareed/siftly-wave/config"
)

type Keymap struct {
	Quit         key.Binding
	OpenHelp     key.Binding
	CommandMode  key.Binding
	SignalFinder key.Binding
	SignalUp     key.Binding
	SignalDown   key.Binding
	PanLeft      key.Binding
	PanRight     key.Binding
	ZoomIn       key.Binding
	ZoomOut      key.Binding
	ZoomFull     key.Binding
	CycleRadix   key.Binding
	CopyValue    key.Binding
	ClearMarkers key.Binding
	SaveSession  key.Binding
}

// buildKeymap applies config overrides on top of the defaults. A config
// entry replaces the whole key list for that action.
func buildKeymap(cfg config.Config) Keymap {
	bind := func(action, helpDesc string, defaults ...string) key.Binding {
		keys := defaults
		if override, ok := cfg.Keys[action]; ok && override != "" {
			keys = []string{override}
		}
		return key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(keys[0], helpDesc),
		)
	}

	return Keymap{
		Quit:         bind("quit", "quit", "q"),
		OpenHelp:     bind("help", "help / keys", "?"),
		CommandMode:  bind("command_mode", "command mode", ":"),
		SignalFinder: bind("signal_finder", "signal finder", "f"),
		SignalUp:     bind("up", "previous signal", "up", "k"),
		SignalDown:   bind("down", "next signal", "down", "j"),
		PanLeft:      bind("left", "pan left", "left", "h"),
		PanRight:     bind("right", "pan right", "right", "l"),
		ZoomIn:       bind("zoom_in", "zoom in", "+", "="),
		ZoomOut:      bind("zoom_out", "zoom out", "-"),
		ZoomFull:     bind("zoom_full", "zoom to full trace", "0"),
		CycleRadix:   bind("cycle_radix", "cycle bus radix", "r"),
		CopyValue:    bind("copy_value", "copy value at marker", "y"),
		ClearMarkers: bind("clear_markers", "clear click markers", "delete", "backspace"),
		SaveSession:  bind("save_session", "save session", "ctrl+s"),
	}
}

func (k Keymap) Legend() []key.Binding {
	return []key.Binding{
		k.SignalUp,
		k.SignalDown,
		k.PanLeft,
		k.PanRight,
		k.ZoomIn,
		k.ZoomOut,
		k.ZoomFull,
		k.CycleRadix,
		k.CopyValue,
		k.ClearMarkers,
		k.SaveSession,
		k.CommandMode,
		k.SignalFinder,
		k.OpenHelp,
		k.Quit,
	}
}
