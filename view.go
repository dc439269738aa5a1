package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Fixed screen furniture around the signal lanes: title, ruler and marker
// name rows on top, the two footer lines at the bottom.
const (
	headerRows = 3
	footerRows = 2
)

func (m *model) View() string {
	if m.ui.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}
	if m.ui.mode == modeFinder {
		return m.renderFinder()
	}

	base := m.renderMain()

	if m.activeDialog != nil && m.activeDialog.IsVisible() {
		return lipgloss.Place(m.ui.width, m.ui.height,
			lipgloss.Center, lipgloss.Center, m.activeDialog.View())
	}
	return base
}

func (m *model) renderMain() string {
	listWidth := m.signalColumnWidth()
	waveWidth := m.waveColumnWidth()
	leftPad := strings.Repeat(" ", min(listWidth+1, m.ui.width))

	var b strings.Builder
	b.WriteString(m.renderTitle())
	b.WriteByte('\n')
	b.WriteString(leftPad)
	b.WriteString(renderRuler(m.data.view, waveWidth))
	b.WriteByte('\n')
	b.WriteString(leftPad)
	b.WriteString(m.markerNamesRow(waveWidth))
	b.WriteByte('\n')

	start, end := m.laneWindow()
	rowsUsed := 0
	for i := start; i < end; i++ {
		signal := m.data.displayed[i]
		nameRow, valueRow := m.renderSignalCell(signal, i == m.data.selected, listWidth)
		laneTop, laneBottom := m.renderSignalLane(signal, waveWidth)
		b.WriteString(nameRow)
		b.WriteString("│")
		b.WriteString(laneTop)
		b.WriteByte('\n')
		b.WriteString(valueRow)
		b.WriteString("│")
		b.WriteString(laneBottom)
		b.WriteByte('\n')
		rowsUsed += laneHeight
	}

	// blank filler keeps the footer pinned to the bottom
	for filler := m.ui.height - headerRows - footerRows - rowsUsed; filler > 0; filler-- {
		b.WriteByte('\n')
	}

	b.WriteString(m.renderFooterLines())
	return b.String()
}

func (m *model) renderTitle() string {
	view := m.data.view
	title := fmt.Sprintf(" siftly-wave ▸ %s │ Time %d..%d of %d",
		filepath.Base(m.data.inputPath),
		view.TimeStart, view.TimeStart+view.TimeRange, m.data.maxTime())

	if pm := view.PrimaryMarker; pm != nil {
		title += fmt.Sprintf(" │ M1: %d", *pm)
	}
	if sm := view.SecondaryMarker; sm != nil {
		title += fmt.Sprintf(" │ M2: %d", *sm)
	}
	if pm, sm := view.PrimaryMarker, view.SecondaryMarker; pm != nil && sm != nil {
		delta := int64(*sm) - int64(*pm)
		title += fmt.Sprintf(" │ Δ: %d", delta)
	}

	return titleBarStyle.Render(padRightPlain(truncatePlain(title, m.ui.width), m.ui.width))
}

// renderFooterLines draws the two bottom rows. Command mode swaps the
// status line for the live command input.
func (m *model) renderFooterLines() string {
	st := FooterState{
		Mode:          m.ui.mode,
		FileName:      filepath.Base(m.data.inputPath),
		RadixLabel:    m.data.radix.String(),
		SignalIndex:   m.data.selected + 1,
		SignalTotal:   len(m.data.displayed),
		WatchEnabled:  m.watcher != nil,
		StatusMessage: m.ui.noticeMsg,
		StatusIsError: m.ui.noticeErr,
	}
	styles := DefaultFooterStyles()

	if m.ui.mode == modeCommand {
		st.ModeInput = m.ui.commandInput.Value()
		return renderControlBar(m.ui.width, st, styles) + "\n" + m.ui.commandInput.View()
	}
	return RenderFooter(m.ui.width, st, styles)
}
