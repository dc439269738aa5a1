package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-wave/clipboard"
	"github.com/andareed/siftly-wave/vcd"
)

// visualDragPx is the pull distance that shows the selection overlay.
const visualDragPx = 5

func (m *model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.ui.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.OpenHelp):
		m.openHelp()
		return m, nil

	case key.Matches(msg, m.keys.CommandMode):
		m.enterCommandMode()
		return m, nil

	case key.Matches(msg, m.keys.SignalFinder):
		m.openFinder()
		return m, nil

	case key.Matches(msg, m.keys.SignalUp):
		if m.data.selected > 0 {
			m.data.selected--
		}
		return m, nil

	case key.Matches(msg, m.keys.SignalDown):
		if m.data.selected < len(m.data.displayed)-1 {
			m.data.selected++
		}
		return m, nil

	case key.Matches(msg, m.keys.PanLeft):
		m.data.view.PanLeft()
		return m, nil

	case key.Matches(msg, m.keys.PanRight):
		m.data.view.PanRight(m.data.maxTime())
		return m, nil

	case key.Matches(msg, m.keys.ZoomIn):
		m.data.view.ZoomIn()
		return m, nil

	case key.Matches(msg, m.keys.ZoomOut):
		m.data.view.ZoomOut(m.data.maxTime())
		return m, nil

	case key.Matches(msg, m.keys.ZoomFull):
		m.data.view.ZoomFull(m.data.maxTime())
		return m, nil

	case key.Matches(msg, m.keys.CycleRadix):
		m.data.radix = m.data.radix.Next()
		return m, m.startNotice("Radix set to "+m.data.radix.String(), false)

	case key.Matches(msg, m.keys.CopyValue):
		return m, m.copySelectedValue()

	case key.Matches(msg, m.keys.ClearMarkers):
		m.data.view.PrimaryMarker = nil
		m.data.view.SecondaryMarker = nil
		return m, nil

	case key.Matches(msg, m.keys.SaveSession):
		return m, m.openSaveDialog()
	}
	return m, nil
}

// copySelectedValue puts "signal=value @ time" for the selected signal at
// the primary marker onto the system clipboard.
func (m *model) copySelectedValue() tea.Cmd {
	signal, ok := m.data.selectedSignal()
	if !ok {
		return m.startNotice("No signal selected", true)
	}
	pm := m.data.view.PrimaryMarker
	if pm == nil {
		return m.startNotice("Primary marker not set", true)
	}
	v, ok := m.data.waveform.ValueAt(signal, *pm)
	if !ok {
		return m.startNotice("No value at marker", true)
	}
	text := fmt.Sprintf("%s=%s @ %d", signal, vcd.Format(v, vcd.FormatOptions{Radix: m.data.radix}), *pm)
	clipboard.Copy(text)
	return m.startNotice("Copied "+text, false)
}

func (m *model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	listWidth := m.signalColumnWidth()
	waveWidth := m.waveColumnWidth()
	waveX := msg.X - listWidth - 1

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.data.view.ZoomIn()
			return m, nil
		case tea.MouseButtonWheelDown:
			m.data.view.ZoomOut(m.data.maxTime())
			return m, nil
		case tea.MouseButtonLeft:
			if msg.X < listWidth {
				m.selectLaneAtRow(msg.Y)
				return m, nil
			}
			if waveX >= 0 && waveX < waveWidth {
				m.ui.mouseDown = true
				m.ui.mouseDownX = waveX
				m.ui.dragX = waveX
				m.ui.dragging = false
			}
		}

	case tea.MouseActionMotion:
		if m.ui.mouseDown {
			if waveX < 0 {
				waveX = 0
			}
			if waveX >= waveWidth {
				waveX = waveWidth - 1
			}
			m.ui.dragX = waveX
			// the selection overlay needs a slightly longer pull than the
			// commit threshold so clicks never flash a selection
			if abs(m.ui.dragX-m.ui.mouseDownX) >= visualDragPx {
				m.ui.dragging = true
			}
		}

	case tea.MouseActionRelease:
		if !m.ui.mouseDown {
			return m, nil
		}
		m.ui.mouseDown = false
		defer func() { m.ui.dragging = false }()

		if m.data.view.CommitDrag(m.ui.mouseDownX, m.ui.dragX, waveWidth) {
			return m, nil
		}
		// A short press is a click: place a marker at the press column.
		x := m.ui.mouseDownX
		if x >= 0 && x < waveWidth {
			if msg.Shift {
				m.data.view.SetSecondaryMarker(x, waveWidth)
			} else {
				m.data.view.SetPrimaryMarker(x, waveWidth)
			}
			m.selectLaneAtRow(msg.Y)
		}
	}
	return m, nil
}

// selectLaneAtRow maps a terminal row onto a displayed-signal index.
func (m *model) selectLaneAtRow(y int) {
	lane := (y - headerRows) / laneHeight
	if lane < 0 {
		return
	}
	start, end := m.laneWindow()
	idx := start + lane
	if idx < end {
		m.data.selected = idx
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
