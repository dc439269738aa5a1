package main

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/andareed/siftly-wave/config"
)

const (
	titleBarBGColor   = "#2b2b2b"
	titleBarFGColor   = "#e0e0e0"
	selectedBGColor   = "#3a3a3a"
	selectedFGColor   = "#e0e0e0"
	signalTextFGColor = "#c0c0c0"
	rulerFGColor      = "245"
	hintFGColor       = "#a0a0a0"
)

var (
	titleBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color(titleBarBGColor)).
			Foreground(lipgloss.Color(titleBarFGColor))

	signalStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color(signalTextFGColor))
	signalSelectedStyle = lipgloss.NewStyle().
				Background(lipgloss.Color(selectedBGColor)).
				Foreground(lipgloss.Color(selectedFGColor))

	rulerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(rulerFGColor))
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(hintFGColor))

	undefXStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")) // red
	undefZStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5")) // magenta
	dragStyle   = lipgloss.NewStyle().Reverse(true)
)

// styleSet carries the config-tunable styles; everything static stays in
// the package vars above.
type styleSet struct {
	primaryMarker   lipgloss.Style
	secondaryMarker lipgloss.Style
	drag            lipgloss.Style
}

func newStyles(ui config.UIConfig) styleSet {
	return styleSet{
		primaryMarker:   lipgloss.NewStyle().Foreground(lipgloss.Color(ui.PrimaryMarkerColor)),
		secondaryMarker: lipgloss.NewStyle().Foreground(lipgloss.Color(ui.SecondaryMarkerColor)),
		drag:            dragStyle.Foreground(lipgloss.Color(ui.DragColor)),
	}
}
