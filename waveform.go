package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/andareed/siftly-wave/vcd"
)

// Style classes for waveform cells. Saved-marker classes occupy
// clsSavedBase..clsSavedBase+7, one per ANSI palette color.
const (
	clsDefault byte = iota
	clsUndefX
	clsUndefZ
	clsPrimary
	clsSecondary
	clsDrag
	clsSavedBase
)

// laneHeight is the number of terminal rows one signal occupies.
const laneHeight = 2

type laneBuffer struct {
	top, bottom       []rune
	topCls, bottomCls []byte
}

func newLaneBuffer(width int) *laneBuffer {
	lb := &laneBuffer{
		top:       make([]rune, width),
		bottom:    make([]rune, width),
		topCls:    make([]byte, width),
		bottomCls: make([]byte, width),
	}
	for i := 0; i < width; i++ {
		lb.top[i] = ' '
		lb.bottom[i] = ' '
	}
	return lb
}

// renderSignalLane draws the two waveform rows for one signal across the
// visible window, then overlays markers and any in-progress drag.
func (m *model) renderSignalLane(signal string, width int) (string, string) {
	lb := newLaneBuffer(width)
	if width > 0 && m.data.waveform != nil {
		vals, defined := m.columnValues(signal, width)
		if isBusSignal(m.data.waveform, signal) {
			m.drawBusLane(lb, vals, defined, width)
		} else {
			drawBinaryLane(lb, vals, defined, width)
		}
	}

	m.overlayMarkers(lb, width)
	m.overlayDrag(lb, width)

	return m.renderLaneRow(lb.top, lb.topCls), m.renderLaneRow(lb.bottom, lb.bottomCls)
}

// columnValues samples the signal once per column using the windowed
// change list, so off-screen history still defines the left edge.
func (m *model) columnValues(signal string, width int) ([]vcd.WaveValue, []bool) {
	vals := make([]vcd.WaveValue, width)
	defined := make([]bool, width)

	vis := m.data.waveform.VisibleValues(signal, m.data.displayed, m.data.view)
	if len(vis) == 0 {
		return vals, defined
	}

	idx := 0
	var current vcd.WaveValue
	haveCurrent := false
	for x := 0; x < width; x++ {
		t := m.data.view.ScreenPosToTime(x, width)
		for idx < len(vis) && vis[idx].Time <= t {
			current = vis[idx].Value
			haveCurrent = true
			idx++
		}
		vals[x] = current
		defined[x] = haveCurrent
	}
	return vals, defined
}

func isBusSignal(w *vcd.WaveformData, signal string) bool {
	log := w.Values[signal]
	return len(log) > 0 && log[0].Value.IsBus()
}

func drawBinaryLane(lb *laneBuffer, vals []vcd.WaveValue, defined []bool, width int) {
	for x := 0; x < width; x++ {
		if !defined[x] {
			continue
		}
		switch vals[x].Bit() {
		case vcd.V1:
			lb.top[x] = '▔'
		case vcd.V0:
			lb.bottom[x] = '▁'
		case vcd.VX:
			lb.top[x], lb.bottom[x] = 'x', 'x'
			lb.topCls[x], lb.bottomCls[x] = clsUndefX, clsUndefX
		case vcd.VZ:
			lb.bottom[x] = '┈'
			lb.bottomCls[x] = clsUndefZ
		}
	}

	// edge characters where the level flips between adjacent columns
	for x := 1; x < width; x++ {
		if !defined[x] || !defined[x-1] {
			continue
		}
		prev, cur := vals[x-1].Bit(), vals[x].Bit()
		if prev == cur {
			continue
		}
		switch {
		case prev == vcd.V0 && cur == vcd.V1:
			lb.top[x], lb.bottom[x] = '┌', '┘'
			lb.topCls[x], lb.bottomCls[x] = clsDefault, clsDefault
		case prev == vcd.V1 && cur == vcd.V0:
			lb.top[x], lb.bottom[x] = '┐', '└'
			lb.topCls[x], lb.bottomCls[x] = clsDefault, clsDefault
		}
	}
}

// drawBusLane renders a value rail on the bottom row with ticks at each
// transition and centers the formatted value label over each run.
func (m *model) drawBusLane(lb *laneBuffer, vals []vcd.WaveValue, defined []bool, width int) {
	for x := 0; x < width; x++ {
		if defined[x] {
			lb.bottom[x] = '─'
		}
	}

	opts := vcd.FormatOptions{Radix: m.data.radix}

	runStart := -1
	for x := 0; x <= width; x++ {
		boundary := x == width || !defined[x] ||
			(runStart >= 0 && !vals[x].Equal(vals[runStart]))
		if boundary {
			if runStart >= 0 {
				m.placeBusLabel(lb, vals[runStart], runStart, x, opts)
			}
			runStart = -1
			if x < width && defined[x] {
				runStart = x
				if x > 0 && defined[x-1] {
					lb.bottom[x] = '┼'
				}
			}
			continue
		}
		if runStart < 0 && defined[x] {
			runStart = x
		}
	}
}

func (m *model) placeBusLabel(lb *laneBuffer, v vcd.WaveValue, start, end int, opts vcd.FormatOptions) {
	runWidth := end - start
	if runWidth < 1 {
		return
	}
	label := vcd.Format(v, opts)
	if len(label) > runWidth {
		label = label[:runWidth]
	}
	pos := start + (runWidth-len(label))/2
	cls := clsDefault
	if strings.ContainsAny(label, "xzXZ") {
		cls = clsUndefX
	}
	for i, c := range label {
		lb.top[pos+i] = c
		lb.topCls[pos+i] = cls
	}
}

// overlayMarkers draws saved markers first, then the secondary and
// primary click markers on top.
func (m *model) overlayMarkers(lb *laneBuffer, width int) {
	view := m.data.view
	for i := range m.data.markers {
		mk := &m.data.markers[i]
		if x, ok := timeToX(mk.Time, view, width); ok {
			setMarkerColumn(lb, x, clsSavedBase+savedColorIndex(mk.Color))
		}
	}
	if view.SecondaryMarker != nil {
		if x, ok := timeToX(*view.SecondaryMarker, view, width); ok {
			setMarkerColumn(lb, x, clsSecondary)
		}
	}
	if view.PrimaryMarker != nil {
		if x, ok := timeToX(*view.PrimaryMarker, view, width); ok {
			setMarkerColumn(lb, x, clsPrimary)
		}
	}
}

func savedColorIndex(colorName string) byte {
	idx, ok := parseMarkerColor(colorName)
	if !ok {
		idx = ansiColors[defaultMarkerColor]
	}
	return idx[0] - '0'
}

func setMarkerColumn(lb *laneBuffer, x int, cls byte) {
	lb.top[x], lb.bottom[x] = '│', '│'
	lb.topCls[x], lb.bottomCls[x] = cls, cls
}

func (m *model) overlayDrag(lb *laneBuffer, width int) {
	if !m.ui.dragging {
		return
	}
	lo, hi := m.ui.mouseDownX, m.ui.dragX
	if lo > hi {
		lo, hi = hi, lo
	}
	if lo < 0 {
		lo = 0
	}
	if hi >= width {
		hi = width - 1
	}
	for x := lo; x <= hi; x++ {
		lb.topCls[x] = clsDrag
		lb.bottomCls[x] = clsDrag
	}
}

// renderLaneRow styles a row of cells, batching runs of equal class into
// one styled segment.
func (m *model) renderLaneRow(chars []rune, cls []byte) string {
	var b strings.Builder
	i := 0
	for i < len(chars) {
		j := i
		for j < len(chars) && cls[j] == cls[i] {
			j++
		}
		segment := string(chars[i:j])
		if cls[i] == clsDefault {
			b.WriteString(segment)
		} else {
			b.WriteString(m.classStyle(cls[i]).Render(segment))
		}
		i = j
	}
	return b.String()
}

func (m *model) classStyle(cls byte) lipgloss.Style {
	switch cls {
	case clsUndefX:
		return undefXStyle
	case clsUndefZ:
		return undefZStyle
	case clsPrimary:
		return m.styles.primaryMarker
	case clsSecondary:
		return m.styles.secondaryMarker
	case clsDrag:
		return m.styles.drag
	}
	if cls >= clsSavedBase && cls < clsSavedBase+8 {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(string('0' + rune(cls-clsSavedBase))))
	}
	return lipgloss.NewStyle()
}
