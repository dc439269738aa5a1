package main

import (
	"github.com/andareed/siftly-wave/vcd"
)

// minSignalColumnWidth keeps the name column usable on narrow terminals
// regardless of the configured percentage.
const minSignalColumnWidth = 8

func (m *model) signalColumnWidth() int {
	w := m.ui.width * m.cfg.UI.SignalListPercentWidth / 100
	if w < minSignalColumnWidth {
		w = minSignalColumnWidth
	}
	if w > m.ui.width {
		w = m.ui.width
	}
	return w
}

func (m *model) waveColumnWidth() int {
	// one separator column between the list and the lanes
	w := m.ui.width - m.signalColumnWidth() - 1
	if w < 0 {
		w = 0
	}
	return w
}

// renderSignalCell draws the two list rows for one displayed signal: the
// name on top and, when the primary marker is set, the value underneath.
// A transition landing exactly on the marker shows as "before->after".
func (m *model) renderSignalCell(signal string, selected bool, width int) (string, string) {
	name := truncatePlain(signal, width)

	value := ""
	if pm := m.data.view.PrimaryMarker; pm != nil && m.data.waveform != nil {
		value = m.signalValueLabel(signal, *pm)
	}
	value = truncatePlain(value, width)

	nameRow := padRightPlain(name, width)
	valueRow := padRightPlain(value, width)
	if selected {
		return signalSelectedStyle.Render(nameRow), signalSelectedStyle.Render(valueRow)
	}
	return signalStyle.Render(nameRow), hintStyle.Render(valueRow)
}

func (m *model) signalValueLabel(signal string, t uint64) string {
	if tr, ok := m.data.waveform.TransitionAt(signal, t); ok {
		return tr
	}
	v, ok := m.data.waveform.ValueAt(signal, t)
	if !ok {
		return ""
	}
	return vcd.Format(v, vcd.FormatOptions{Radix: m.data.radix})
}

// visibleLaneCount is how many signal lanes fit in the waveform area.
func (m *model) visibleLaneCount() int {
	rows := m.ui.height - headerRows - footerRows
	if rows < 0 {
		rows = 0
	}
	return rows / laneHeight
}

// laneWindow returns the half-open displayed-signal index range shown on
// screen, scrolled so the selected signal stays visible.
func (m *model) laneWindow() (int, int) {
	count := m.visibleLaneCount()
	total := len(m.data.displayed)
	if count >= total {
		return 0, total
	}
	start := m.data.selected - count/2
	if start < 0 {
		start = 0
	}
	if start+count > total {
		start = total - count
	}
	return start, start + count
}
