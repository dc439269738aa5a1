package main

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/andareed/siftly-wave/vcd"
)

func TestParseMarkerColor(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"red", "1", true},
		{"RED", "1", true},
		{"blue", "4", true},
		{"white", "7", true},
		{"plaid", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := parseMarkerColor(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("parseMarkerColor(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestTimeToX(t *testing.T) {
	view := vcd.ViewState{TimeStart: 0, TimeRange: 100}
	tests := []struct {
		name   string
		t      uint64
		width  int
		wantX  int
		wantOK bool
	}{
		{"origin", 0, 50, 0, true},
		{"midpoint", 50, 50, 25, true},
		{"right edge inclusive", 100, 50, 49, true},
		{"past the window", 101, 50, 0, false},
		{"zero width", 50, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, ok := timeToX(tt.t, view, tt.width)
			if x != tt.wantX || ok != tt.wantOK {
				t.Errorf("timeToX(%d) = (%d, %v), want (%d, %v)", tt.t, x, ok, tt.wantX, tt.wantOK)
			}
		})
	}
}

func TestTimeToXBeforeWindow(t *testing.T) {
	view := vcd.ViewState{TimeStart: 50, TimeRange: 100}
	if _, ok := timeToX(49, view, 50); ok {
		t.Error("time before window start should not map")
	}
}

func TestMarkerNamesRowPlacement(t *testing.T) {
	m := newTestModel(t)
	m.data.view = vcd.ViewState{TimeStart: 0, TimeRange: 100}
	m.data.markers = []Marker{
		{Name: "alpha", Time: 10, Color: "blue"},
		{Name: "beta", Time: 12, Color: "red"},
	}

	row := m.markerNamesRow(50)

	// alpha sits at column 5, beta at 6: alpha is squeezed to its first
	// character, beta fits in full.
	if !strings.Contains(row, "abeta") {
		t.Errorf("names row = %q, want squeezed \"abeta\"", row)
	}
	if strings.Contains(row, "alpha") {
		t.Errorf("names row = %q, full name should not fit", row)
	}
}

// Squeezing a multi-byte name down to one column must keep whole runes.
func TestMarkerNamesRowMultibyteTruncation(t *testing.T) {
	m := newTestModel(t)
	m.data.view = vcd.ViewState{TimeStart: 0, TimeRange: 100}
	m.data.markers = []Marker{
		{Name: "αβγδε", Time: 10, Color: "blue"},
		{Name: "beta", Time: 12, Color: "red"},
	}

	row := m.markerNamesRow(50)

	if !utf8.ValidString(row) {
		t.Fatalf("names row contains broken UTF-8: %q", row)
	}
	if !strings.Contains(row, "αbeta") {
		t.Errorf("names row = %q, want first rune kept as \"αbeta\"", row)
	}
}

func TestMarkerNamesRowOffscreenMarker(t *testing.T) {
	m := newTestModel(t)
	m.data.view = vcd.ViewState{TimeStart: 0, TimeRange: 50}
	m.data.markers = []Marker{{Name: "far", Time: 99, Color: "blue"}}

	row := m.markerNamesRow(50)
	if strings.Contains(row, "far") {
		t.Errorf("off-screen marker rendered: %q", row)
	}
}

func TestFindMarker(t *testing.T) {
	m := newTestModel(t)
	m.data.markers = []Marker{{Name: "a", Time: 1}, {Name: "b", Time: 2}}

	if idx := m.findMarker("b"); idx != 1 {
		t.Errorf("findMarker(b) = %d, want 1", idx)
	}
	if idx := m.findMarker("zz"); idx != -1 {
		t.Errorf("findMarker(zz) = %d, want -1", idx)
	}
}
