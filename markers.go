package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/andareed/siftly-wave/vcd"
)

const defaultMarkerColor = "blue"

// Marker is a named saved marker. Unlike the primary/secondary click
// markers it survives view changes and is addressed by name from the
// marker command. Color is one of the eight ANSI color names.
type Marker struct {
	Name  string `json:"name"`
	Time  uint64 `json:"time"`
	Color string `json:"color"`
}

// ansiColors maps accepted color names to their lipgloss palette index.
var ansiColors = map[string]string{
	"black":   "0",
	"red":     "1",
	"green":   "2",
	"yellow":  "3",
	"blue":    "4",
	"magenta": "5",
	"cyan":    "6",
	"white":   "7",
}

func parseMarkerColor(name string) (string, bool) {
	idx, ok := ansiColors[strings.ToLower(name)]
	return idx, ok
}

func markerStyle(colorName string) lipgloss.Style {
	idx, ok := parseMarkerColor(colorName)
	if !ok {
		idx = ansiColors[defaultMarkerColor]
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(idx))
}

func (m *model) findMarker(name string) int {
	for i := range m.data.markers {
		if m.data.markers[i].Name == name {
			return i
		}
	}
	return -1
}

// markerNamesRow renders the row of saved-marker names above the ruler.
// Names are placed at their marker's column; when neighbours collide, each
// visible marker keeps at least its first character and takes its full
// name only when it fits before the next one.
func (m *model) markerNamesRow(width int) string {
	row := make([]byte, width)
	for i := range row {
		row[i] = ' '
	}
	type placed struct {
		x      int
		marker *Marker
	}
	var visible []placed
	view := m.data.view
	for i := range m.data.markers {
		mk := &m.data.markers[i]
		x, ok := timeToX(mk.Time, view, width)
		if !ok {
			continue
		}
		visible = append(visible, placed{x: x, marker: mk})
	}
	if len(visible) == 0 {
		return string(row)
	}
	// stable left-to-right placement
	for i := 1; i < len(visible); i++ {
		for j := i; j > 0 && visible[j-1].x > visible[j].x; j-- {
			visible[j-1], visible[j] = visible[j], visible[j-1]
		}
	}

	var b strings.Builder
	cursor := 0
	for i, p := range visible {
		if p.x < cursor {
			continue // fully shadowed by the previous name
		}
		limit := width
		if i+1 < len(visible) && visible[i+1].x < limit {
			limit = visible[i+1].x
		}
		room := limit - p.x
		if room < 1 {
			room = 1
		}
		name := truncatePlain(p.marker.Name, room)
		name = truncatePlain(name, width-p.x)
		if name == "" {
			continue
		}
		b.WriteString(string(row[cursor:p.x]))
		b.WriteString(markerStyle(p.marker.Color).Render(name))
		cursor = p.x + runeWidth(name)
	}
	if cursor < width {
		b.WriteString(string(row[cursor:]))
	}
	return b.String()
}

// timeToX maps a time to a waveform column, inclusive of the right edge.
func timeToX(t uint64, view vcd.ViewState, width int) (int, bool) {
	if width <= 0 || view.TimeRange == 0 {
		return 0, false
	}
	end := view.TimeStart + view.TimeRange
	if t < view.TimeStart || t > end {
		return 0, false
	}
	x := int(float64(t-view.TimeStart) / float64(view.TimeRange) * float64(width))
	if x >= width {
		x = width - 1
	}
	return x, true
}
