package main

import (
	"strconv"

	"github.com/andareed/siftly-wave/vcd"
)

// tickInterval picks a label spacing for the ruler: the smallest value of
// the form 1/2/5 x 10^k that keeps the tick count at or under roughly one
// tick per ten columns.
func tickInterval(timeRange uint64, width int) uint64 {
	if timeRange == 0 {
		return 1
	}
	target := width / 10
	if target < 1 {
		target = 1
	}
	raw := timeRange / uint64(target)
	if raw < 1 {
		raw = 1
	}

	magnitude := uint64(1)
	for magnitude*10 <= raw {
		magnitude *= 10
	}
	for _, mult := range []uint64{1, 2, 5, 10} {
		if candidate := magnitude * mult; candidate >= raw {
			return candidate
		}
	}
	return magnitude * 10
}

// renderRuler draws one row of tick labels for the visible window. Each
// label is centered on its tick column; labels that would collide with an
// earlier one are dropped.
func renderRuler(view vcd.ViewState, width int) string {
	if width <= 0 {
		return ""
	}
	row := make([]byte, width)
	for i := range row {
		row[i] = ' '
	}

	interval := tickInterval(view.TimeRange, width)
	first := view.TimeStart
	if rem := first % interval; rem != 0 {
		first += interval - rem
	}
	end := view.TimeStart + view.TimeRange

	lastEnd := -1
	for t := first; t <= end; {
		x, ok := timeToX(t, view, width)
		if !ok {
			break
		}
		label := strconv.FormatUint(t, 10)
		start := x - len(label)/2
		if start < 0 {
			start = 0
		}
		if start+len(label) > width {
			start = width - len(label)
		}
		if start >= 0 && start > lastEnd {
			copy(row[start:], label)
			lastEnd = start + len(label)
		}
		next := t + interval
		if next < t {
			break // uint64 overflow
		}
		t = next
	}
	return rulerStyle.Render(string(row))
}
