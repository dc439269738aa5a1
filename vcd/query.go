package vcd

import "slices"

// ValueAt returns the value of the last change at or before t. The change
// logs are nondecreasing in time, so a forward scan that stops at the
// first later change is correct.
func (w *WaveformData) ValueAt(signal string, t uint64) (WaveValue, bool) {
	log, ok := w.Values[signal]
	if !ok {
		return WaveValue{}, false
	}
	var (
		last  WaveValue
		found bool
	)
	for _, c := range log {
		if c.Time > t {
			break
		}
		last = c.Value
		found = true
	}
	return last, found
}

// TransitionAt reports a "before->after" string when some change in the
// signal's log lands exactly on t, has a predecessor, and strictly differs
// from it. Scalar values format as V0/V1/VX/VZ, buses as their stored
// encoding. A Binary/Bus mix on one signal should never happen; it formats
// as "???" if it does.
func (w *WaveformData) TransitionAt(signal string, t uint64) (string, bool) {
	log, ok := w.Values[signal]
	if !ok {
		return "", false
	}
	for i, c := range log {
		if c.Time != t || i == 0 {
			continue
		}
		prev := log[i-1].Value
		if prev.Equal(c.Value) {
			continue
		}
		return formatTransition(prev, c.Value), true
	}
	return "", false
}

func formatTransition(before, after WaveValue) string {
	if before.IsBus() != after.IsBus() {
		return "???"
	}
	return before.Label() + "->" + after.Label()
}

// VisibleValues returns the changes inside the view window, prepended by a
// carry-forward entry at the window start when a change exists before it.
// That synthetic entry keeps the left edge of the display defined even
// when the nearest real change is off-screen. Signals not in the displayed
// set yield nothing; that is a no-render policy, not an error.
func (w *WaveformData) VisibleValues(signal string, displayed []string, view ViewState) []Change {
	if !slices.Contains(displayed, signal) {
		return nil
	}
	log, ok := w.Values[signal]
	if !ok {
		return nil
	}

	var result []Change

	var carry *WaveValue
	for i := range log {
		if log[i].Time >= view.TimeStart {
			break
		}
		carry = &log[i].Value
	}
	if carry != nil {
		result = append(result, Change{Time: view.TimeStart, Value: *carry})
	}

	end := view.TimeStart + view.TimeRange
	for _, c := range log {
		if c.Time >= view.TimeStart && c.Time < end {
			result = append(result, c)
		}
	}
	return result
}
