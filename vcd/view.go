package vcd

import "math"

const (
	// MinTimeRange is the tightest zoom allowed.
	MinTimeRange = 10

	// DefaultTimeRange applies before any file is loaded.
	DefaultTimeRange = 50

	// DragThreshold is the minimum pixel distance for a drag to commit as
	// a zoom selection; anything shorter is treated as a click.
	DragThreshold = 3
)

// ViewState is the visible window over the waveform, the half-open
// interval [TimeStart, TimeStart+TimeRange). Every navigation operation
// keeps TimeRange >= MinTimeRange and, when the trace is long enough,
// TimeStart+TimeRange <= maxTime. Markers persist independently of the
// window and may reference times outside it.
type ViewState struct {
	TimeStart uint64
	TimeRange uint64

	PrimaryMarker   *uint64
	SecondaryMarker *uint64
}

func NewViewState() ViewState {
	return ViewState{TimeRange: DefaultTimeRange}
}

// Reset rewinds to a full view of a freshly loaded trace.
func (v *ViewState) Reset(maxTime uint64) {
	v.TimeStart = 0
	v.TimeRange = maxTime
	if v.TimeRange < MinTimeRange {
		v.TimeRange = MinTimeRange
	}
	v.PrimaryMarker = nil
	v.SecondaryMarker = nil
}

// PanLeft shifts the window left by a quarter of its span.
func (v *ViewState) PanLeft() {
	v.TimeStart = satSub(v.TimeStart, v.TimeRange/4)
}

// PanRight shifts the window right by a quarter of its span, never past
// the end of the trace.
func (v *ViewState) PanRight(maxTime uint64) {
	if maxTime < v.TimeRange {
		v.TimeStart = 0
		return
	}
	next := v.TimeStart + v.TimeRange/4
	if next > maxTime-v.TimeRange {
		next = maxTime - v.TimeRange
	}
	v.TimeStart = next
}

// ZoomIn halves the span around the window center. No right-edge clamp is
// applied here: zooming in near the end legally leaves a shorter window
// touching maxTime.
func (v *ViewState) ZoomIn() {
	newRange := v.TimeRange / 2
	if newRange < MinTimeRange {
		newRange = MinTimeRange
	}
	center := v.TimeStart + v.TimeRange/2
	v.TimeStart = satSub(center, newRange/2)
	v.TimeRange = newRange
}

// ZoomOut doubles the span around the window center, clamped to the trace.
func (v *ViewState) ZoomOut(maxTime uint64) {
	newRange := v.TimeRange * 2
	if newRange > maxTime {
		newRange = maxTime
	}
	if newRange < MinTimeRange {
		newRange = MinTimeRange
	}
	center := v.TimeStart + v.TimeRange/2
	v.TimeStart = clampStart(satSub(center, newRange/2), newRange, maxTime)
	v.TimeRange = newRange
}

// ZoomToFactor shows 1/n of the trace around the current center. The
// caller validates n > 0.
func (v *ViewState) ZoomToFactor(maxTime, n uint64) {
	newRange := maxTime / n
	if newRange < MinTimeRange {
		newRange = MinTimeRange
	}
	center := v.TimeStart + v.TimeRange/2
	v.TimeStart = clampStart(satSub(center, newRange/2), newRange, maxTime)
	v.TimeRange = newRange
}

// ZoomFull shows the whole trace.
func (v *ViewState) ZoomFull(maxTime uint64) {
	v.TimeStart = 0
	v.TimeRange = maxTime
	if v.TimeRange < MinTimeRange {
		v.TimeRange = MinTimeRange
	}
}

// Goto centers the window on t. The caller validates t <= maxTime.
func (v *ViewState) Goto(t uint64) {
	v.TimeStart = satSub(t, v.TimeRange/2)
}

// ScreenPosToTime maps a column offset inside a width-column waveform area
// to a time value.
func (v *ViewState) ScreenPosToTime(x, width int) uint64 {
	if width <= 0 {
		return v.TimeStart
	}
	ratio := float64(x) / float64(width)
	exact := float64(v.TimeStart) + ratio*float64(v.TimeRange)
	return uint64(math.Round(exact))
}

// SetPrimaryMarker stores the time under screen column x. Marker times are
// stored verbatim, with no clamping to the visible window.
func (v *ViewState) SetPrimaryMarker(x, width int) {
	t := v.ScreenPosToTime(x, width)
	v.PrimaryMarker = &t
}

func (v *ViewState) SetSecondaryMarker(x, width int) {
	t := v.ScreenPosToTime(x, width)
	v.SecondaryMarker = &t
}

// CommitDrag turns a completed drag between two screen columns into a new
// window. Drags shorter than DragThreshold pixels are click noise and do
// not commit.
func (v *ViewState) CommitDrag(x1, x2, width int) bool {
	d := x1 - x2
	if d < 0 {
		d = -d
	}
	if d < DragThreshold {
		return false
	}
	t1 := v.ScreenPosToTime(x1, width)
	t2 := v.ScreenPosToTime(x2, width)
	if t2 < t1 {
		t1, t2 = t2, t1
	}
	v.TimeStart = t1
	v.TimeRange = t2 - t1
	if v.TimeRange < 1 {
		v.TimeRange = 1
	}
	return true
}

func satSub(a, b uint64) uint64 {
	if b > a {
		return 0
	}
	return a - b
}

func clampStart(start, span, maxTime uint64) uint64 {
	if start+span <= maxTime {
		return start
	}
	if maxTime >= span {
		return maxTime - span
	}
	return 0
}
