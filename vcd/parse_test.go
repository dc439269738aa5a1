package vcd

import (
	"strings"
	"testing"
)

const simpleVCD = `$date November 11, 2023 $end
$version Test VCD 1.0 $end
$timescale 1ps $end
$scope module test $end
$var wire 1 ! clk $end
$var wire 1 $ reset $end
$var wire 8 % data $end
$upscope $end
$enddefinitions $end
$dumpvars
0!
1$
b00000000 %
$end
#5
b00001111 %
#10
1!
b11110000 %
#15
b01010101 %
#20
0!
0$
b10101010 %
`

func TestParseSimpleVCD(t *testing.T) {
	data, err := Parse(strings.NewReader(simpleVCD))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	wantSignals := []string{"test.clk", "test.reset", "test.data"}
	if len(data.Signals) != len(wantSignals) {
		t.Fatalf("got %d signals, want %d", len(data.Signals), len(wantSignals))
	}
	for i, name := range wantSignals {
		if data.Signals[i] != name {
			t.Errorf("signal[%d] = %q, want %q", i, data.Signals[i], name)
		}
	}

	if data.MaxTime != 20 {
		t.Errorf("MaxTime = %d, want 20", data.MaxTime)
	}

	clk := data.Values["test.clk"]
	wantClk := []Change{
		{0, Binary(V0)},
		{10, Binary(V1)},
		{20, Binary(V0)},
	}
	if len(clk) != len(wantClk) {
		t.Fatalf("clk log has %d entries, want %d", len(clk), len(wantClk))
	}
	for i, want := range wantClk {
		if clk[i].Time != want.Time || !clk[i].Value.Equal(want.Value) {
			t.Errorf("clk[%d] = (%d, %s), want (%d, %s)",
				i, clk[i].Time, clk[i].Value.Label(), want.Time, want.Value.Label())
		}
	}

	// Bus values are hex-canonicalized after parsing.
	dataLog := data.Values["test.data"]
	wantData := []struct {
		time uint64
		bus  string
	}{
		{0, "00"}, {5, "0F"}, {10, "F0"}, {15, "55"}, {20, "AA"},
	}
	if len(dataLog) != len(wantData) {
		t.Fatalf("data log has %d entries, want %d", len(dataLog), len(wantData))
	}
	for i, want := range wantData {
		if dataLog[i].Time != want.time || dataLog[i].Value.BusString() != want.bus {
			t.Errorf("data[%d] = (%d, %q), want (%d, %q)",
				i, dataLog[i].Time, dataLog[i].Value.BusString(), want.time, want.bus)
		}
	}
}

func TestParseUndefinedBusStaysRaw(t *testing.T) {
	src := `$scope module top $end
$var wire 8 % data $end
$upscope $end
$enddefinitions $end
#0
b00001111 %
#10
b1x1x0000 %
`
	data, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	log := data.Values["top.data"]
	if len(log) != 2 {
		t.Fatalf("log has %d entries, want 2", len(log))
	}
	if got := log[0].Value.BusString(); got != "0F" {
		t.Errorf("defined bus = %q, want %q", got, "0F")
	}
	if got := log[1].Value.BusString(); got != "1x1x0000" {
		t.Errorf("undefined bus = %q, want raw %q", got, "1x1x0000")
	}
}

func TestParseNestedScopes(t *testing.T) {
	src := `$scope module chip $end
$scope module core $end
$var wire 1 ! clk $end
$upscope $end
$var wire 1 " irq $end
$upscope $end
$enddefinitions $end
#0
0!
1"
`
	data, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	want := []string{"chip.core.clk", "chip.irq"}
	for i, name := range want {
		if data.Signals[i] != name {
			t.Errorf("signal[%d] = %q, want %q", i, data.Signals[i], name)
		}
	}
}

func TestParseIgnoresChangesBeforeEnddefinitions(t *testing.T) {
	src := `$scope module top $end
$var wire 1 ! clk $end
#5
1!
$enddefinitions $end
#10
1!
`
	data, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	log := data.Values["top.clk"]
	if len(log) != 1 {
		t.Fatalf("log has %d entries, want 1", len(log))
	}
	if log[0].Time != 10 {
		t.Errorf("change at %d, want 10", log[0].Time)
	}
	if data.MaxTime != 10 {
		t.Errorf("MaxTime = %d, want 10", data.MaxTime)
	}
}

func TestParseSkipsMalformedLines(t *testing.T) {
	src := `$scope module top $end
$var wire 1 ! clk $end
$enddefinitions $end
$comment vendor extension $end
#0
0!
this line matches nothing
bzq not-a-change
#notatime
#10
1!
`
	data, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	log := data.Values["top.clk"]
	if len(log) != 2 {
		t.Fatalf("log has %d entries, want 2", len(log))
	}
}

func TestParseRealValues(t *testing.T) {
	src := `$scope module top $end
$var real 64 % temp $end
$enddefinitions $end
#0
r1.234 %
#5
r1.234e-5 %
`
	data, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	log := data.Values["top.temp"]
	if len(log) != 2 {
		t.Fatalf("log has %d entries, want 2", len(log))
	}
	if got := log[0].Value.BusString(); got != "r1.234" {
		t.Errorf("real value = %q, want %q", got, "r1.234")
	}
	if got := log[1].Value.BusString(); got != "r1.234e-5" {
		t.Errorf("real value = %q, want %q", got, "r1.234e-5")
	}
}

func TestParseValueChangeForms(t *testing.T) {
	tests := []struct {
		line   string
		wantID string
		want   WaveValue
	}{
		{"0#", "#", Binary(V0)},
		{"1$", "$", Binary(V1)},
		{"xSIG1", "SIG1", Binary(VX)},
		{"XSIG1", "SIG1", Binary(VX)},
		{"zSIG2", "SIG2", Binary(VZ)},
		{"ZSIG2", "SIG2", Binary(VZ)},
		{"b10101010 %", "%", Bus("10101010")},
		{"B10101010 %", "%", Bus("10101010")},
		{"b10xz101z %", "%", Bus("10xz101z")},
		{"b10XZ101Z %", "%", Bus("10XZ101Z")},
		{"r1.234 %", "%", Bus("r1.234")},
		{"R1.234 %", "%", Bus("r1.234")},
	}
	for _, tt := range tests {
		v, id, ok := parseValueChange(tt.line)
		if !ok {
			t.Errorf("parseValueChange(%q) failed", tt.line)
			continue
		}
		if id != tt.wantID {
			t.Errorf("parseValueChange(%q) id = %q, want %q", tt.line, id, tt.wantID)
		}
		if !v.Equal(tt.want) {
			t.Errorf("parseValueChange(%q) value = %s, want %s", tt.line, v.Label(), tt.want.Label())
		}
	}
}

func TestParseVarDeclaration(t *testing.T) {
	tests := []struct {
		line     string
		wantID   string
		wantName string
		ok       bool
	}{
		{"$var wire 1 # clk $end", "#", "clk", true},
		{"$var wire 8 % data_bus $end", "%", "data_bus", true},
		{"$var reg 32 @ address $end", "@", "address", true},
		{"$var wire 8 % data [7:0] $end", "%", "data", true},
		{"$var wire notanumber % data $end", "", "", false},
		{"$var wire 1 % name", "", "", false},
	}
	for _, tt := range tests {
		id, name, ok := parseVarDeclaration(tt.line)
		if ok != tt.ok {
			t.Errorf("parseVarDeclaration(%q) ok = %v, want %v", tt.line, ok, tt.ok)
			continue
		}
		if !ok {
			continue
		}
		if id != tt.wantID || name != tt.wantName {
			t.Errorf("parseVarDeclaration(%q) = (%q, %q), want (%q, %q)",
				tt.line, id, name, tt.wantID, tt.wantName)
		}
	}
}

func TestBinaryToHex(t *testing.T) {
	tests := []struct {
		bits string
		want string
	}{
		{"", ""},
		{"0", "0"},
		{"0000", "0"},
		{"00000", "00"},
		{"00000000", "00"},
		{"1", "1"},
		{"111", "7"},
		{"1111111", "7F"},
		{"11111111", "FF"},
		{"10101010", "AA"},
		{strings.Repeat("1", 512), strings.Repeat("F", 128)},
	}
	for _, tt := range tests {
		if got := BinaryToHex(tt.bits); got != tt.want {
			t.Errorf("BinaryToHex(%q) = %q, want %q", tt.bits, got, tt.want)
		}
	}
}

func TestParseMonotonicChangeLogs(t *testing.T) {
	data, err := Parse(strings.NewReader(simpleVCD))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	for name, log := range data.Values {
		for i := 1; i < len(log); i++ {
			if log[i].Time < log[i-1].Time {
				t.Errorf("%s: change log times decrease at index %d (%d < %d)",
					name, i, log[i].Time, log[i-1].Time)
			}
		}
	}
}

func TestParseFileMissing(t *testing.T) {
	if _, err := ParseFile("testdata/does-not-exist.vcd"); err == nil {
		t.Fatal("expected error for missing file")
	}
}
