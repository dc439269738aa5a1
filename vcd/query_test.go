package vcd

import "testing"

func testWaveform() *WaveformData {
	return &WaveformData{
		Signals: []string{"top.clk", "top.data"},
		Values: map[string][]Change{
			"top.clk": {
				{0, Binary(V0)},
				{10, Binary(V1)},
				{20, Binary(V0)},
				{30, Binary(V1)},
			},
			"top.data": {
				{0, Bus("00")},
				{15, Bus("FF")},
				{25, Bus("0A")},
			},
		},
		MaxTime: 30,
	}
}

func TestValueAt(t *testing.T) {
	w := testWaveform()
	tests := []struct {
		signal string
		time   uint64
		want   WaveValue
		found  bool
	}{
		{"top.clk", 0, Binary(V0), true},
		{"top.clk", 5, Binary(V0), true},
		{"top.clk", 10, Binary(V1), true},
		{"top.clk", 19, Binary(V1), true},
		{"top.clk", 20, Binary(V0), true},
		{"top.clk", 1000, Binary(V1), true},
		{"top.data", 14, Bus("00"), true},
		{"top.data", 15, Bus("FF"), true},
		{"missing", 0, WaveValue{}, false},
	}
	for _, tt := range tests {
		got, found := w.ValueAt(tt.signal, tt.time)
		if found != tt.found {
			t.Errorf("ValueAt(%q, %d) found = %v, want %v", tt.signal, tt.time, found, tt.found)
			continue
		}
		if found && !got.Equal(tt.want) {
			t.Errorf("ValueAt(%q, %d) = %s, want %s", tt.signal, tt.time, got.Label(), tt.want.Label())
		}
	}
}

func TestValueAtBeforeFirstChange(t *testing.T) {
	w := &WaveformData{
		Values: map[string][]Change{
			"sig": {{10, Binary(V1)}},
		},
	}
	if _, found := w.ValueAt("sig", 5); found {
		t.Error("expected no value before the first change")
	}
}

func TestTransitionAt(t *testing.T) {
	w := testWaveform()
	tests := []struct {
		signal string
		time   uint64
		want   string
		found  bool
	}{
		{"top.clk", 10, "V0->V1", true},
		{"top.clk", 20, "V1->V0", true},
		{"top.clk", 0, "", false},  // first change has no predecessor
		{"top.clk", 15, "", false}, // no change at this time
		{"top.data", 15, "00->FF", true},
		{"top.data", 25, "FF->0A", true},
		{"missing", 10, "", false},
	}
	for _, tt := range tests {
		got, found := w.TransitionAt(tt.signal, tt.time)
		if found != tt.found || got != tt.want {
			t.Errorf("TransitionAt(%q, %d) = (%q, %v), want (%q, %v)",
				tt.signal, tt.time, got, found, tt.want, tt.found)
		}
	}
}

func TestTransitionAtEqualValuesIsNoTransition(t *testing.T) {
	w := &WaveformData{
		Values: map[string][]Change{
			"sig": {
				{0, Binary(V0)},
				{10, Binary(V0)},
				{20, Binary(V1)},
			},
		},
	}
	if _, found := w.TransitionAt("sig", 10); found {
		t.Error("repeated value should not report a transition")
	}
	if got, found := w.TransitionAt("sig", 20); !found || got != "V0->V1" {
		t.Errorf("TransitionAt(sig, 20) = (%q, %v), want (%q, true)", got, found, "V0->V1")
	}
}

func TestTransitionAtMixedVariants(t *testing.T) {
	w := &WaveformData{
		Values: map[string][]Change{
			"sig": {
				{0, Binary(V0)},
				{10, Bus("FF")},
			},
		},
	}
	if got, found := w.TransitionAt("sig", 10); !found || got != "???" {
		t.Errorf("TransitionAt across variants = (%q, %v), want (%q, true)", got, found, "???")
	}
}

func TestVisibleValuesCarryForward(t *testing.T) {
	w := testWaveform()
	view := ViewState{TimeStart: 12, TimeRange: 10}
	displayed := []string{"top.clk", "top.data"}

	got := w.VisibleValues("top.clk", displayed, view)
	want := []Change{
		{12, Binary(V1)}, // synthetic carry-forward at the window start
		{20, Binary(V0)},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d changes, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Time != want[i].Time || !got[i].Value.Equal(want[i].Value) {
			t.Errorf("visible[%d] = (%d, %s), want (%d, %s)",
				i, got[i].Time, got[i].Value.Label(), want[i].Time, want[i].Value.Label())
		}
	}
}

func TestVisibleValuesWindowIsHalfOpen(t *testing.T) {
	w := testWaveform()
	// Window [0, 15): the change at t=15 is outside.
	got := w.VisibleValues("top.data", []string{"top.data"}, ViewState{TimeStart: 0, TimeRange: 15})
	if len(got) != 1 {
		t.Fatalf("got %d changes, want 1", len(got))
	}
	if got[0].Time != 0 || got[0].Value.BusString() != "00" {
		t.Errorf("visible[0] = (%d, %q)", got[0].Time, got[0].Value.BusString())
	}
}

func TestVisibleValuesUndisplayedSignal(t *testing.T) {
	w := testWaveform()
	got := w.VisibleValues("top.clk", []string{"top.data"}, ViewState{TimeStart: 0, TimeRange: 30})
	if got != nil {
		t.Errorf("undisplayed signal yielded %d changes, want none", len(got))
	}
}

func TestVisibleValuesNoChangeBeforeWindow(t *testing.T) {
	w := testWaveform()
	got := w.VisibleValues("top.clk", []string{"top.clk"}, ViewState{TimeStart: 0, TimeRange: 12})
	if len(got) != 2 {
		t.Fatalf("got %d changes, want 2", len(got))
	}
	// No synthetic entry: the first real change already sits at the start.
	if got[0].Time != 0 || got[1].Time != 10 {
		t.Errorf("times = %d, %d, want 0, 10", got[0].Time, got[1].Time)
	}
}
