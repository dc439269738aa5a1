package vcd

import (
	"strings"
	"testing"
)

func TestFormatScalar(t *testing.T) {
	tests := []struct {
		v         Value
		uppercase bool
		want      string
	}{
		{V0, false, "0"},
		{V1, false, "1"},
		{VX, false, "x"},
		{VX, true, "X"},
		{VZ, false, "z"},
		{VZ, true, "Z"},
	}
	for _, tt := range tests {
		// Radix never changes scalar rendering.
		for _, r := range []Radix{RadixBinary, RadixOctal, RadixDecimal, RadixHex} {
			got := Format(Binary(tt.v), FormatOptions{Radix: r, Uppercase: tt.uppercase})
			if got != tt.want {
				t.Errorf("Format(%s, %s, upper=%v) = %q, want %q",
					tt.v, r, tt.uppercase, got, tt.want)
			}
		}
	}
}

func TestFormatBusBinary(t *testing.T) {
	tests := []struct {
		in        string
		uppercase bool
		want      string
	}{
		{"0F", false, "1111"},
		{"ff", false, "11111111"},
		{"80", false, "10000000"},
		{"0", false, "0"},
		{"00", false, "00"},
		{"", false, ""},
		// Already-binary strings pass through untouched apart from x/z case.
		{"1010", false, "1010"},
		{"00101", false, "00101"},
		{"1x1z", false, "1x1z"},
		{"1X1Z", false, "1x1z"},
		{"1x1z", true, "1X1Z"},
		// Hex with embedded x/z: each x/z contributes one marker character.
		{"ax4", false, "1010x0100"},
		{"ax4", true, "1010X0100"},
	}
	for _, tt := range tests {
		got := Format(Bus(tt.in), FormatOptions{Radix: RadixBinary, Uppercase: tt.uppercase})
		if got != tt.want {
			t.Errorf("bin(%q, upper=%v) = %q, want %q", tt.in, tt.uppercase, got, tt.want)
		}
	}
}

func TestFormatBusOctal(t *testing.T) {
	tests := []struct {
		in        string
		uppercase bool
		want      string
	}{
		{"12", false, "22"},
		{"ff", false, "377"},
		{"8", false, "10"},
		{"0", false, "0"},
		// Any x/z in the source falls back to digit passthrough.
		{"x4", false, "x4"},
		{"x4", true, "X4"},
		{"1z", false, "1z"},
	}
	for _, tt := range tests {
		got := Format(Bus(tt.in), FormatOptions{Radix: RadixOctal, Uppercase: tt.uppercase})
		if got != tt.want {
			t.Errorf("oct(%q, upper=%v) = %q, want %q", tt.in, tt.uppercase, got, tt.want)
		}
	}
}

func TestFormatBusDecimal(t *testing.T) {
	tests := []struct {
		in        string
		uppercase bool
		want      string
	}{
		{"64", false, "100"},
		{"ff", false, "255"},
		{"0", false, "0"},
		{"FFFFFFFFFFFFFFFF", false, "18446744073709551615"},
		{"x4", false, "x4"},
		{"zz", true, "ZZ"},
	}
	for _, tt := range tests {
		got := Format(Bus(tt.in), FormatOptions{Radix: RadixDecimal, Uppercase: tt.uppercase})
		if got != tt.want {
			t.Errorf("dec(%q, upper=%v) = %q, want %q", tt.in, tt.uppercase, got, tt.want)
		}
	}
}

func TestFormatBusHex(t *testing.T) {
	tests := []struct {
		in        string
		uppercase bool
		want      string
	}{
		{"ff", false, "ff"},
		{"ff", true, "FF"},
		{"AB", false, "ab"},
		{"0F", true, "0F"},
		{"1x2z", false, "1x2z"},
		{"1x2z", true, "1X2Z"},
		{"", false, "0"},
	}
	for _, tt := range tests {
		got := Format(Bus(tt.in), FormatOptions{Radix: RadixHex, Uppercase: tt.uppercase})
		if got != tt.want {
			t.Errorf("hex(%q, upper=%v) = %q, want %q", tt.in, tt.uppercase, got, tt.want)
		}
	}
}

// Real-value changes are stored as "r<literal>" buses and must come back
// verbatim whatever the radix; they are labels, not numbers.
func TestFormatRealValueIsOpaque(t *testing.T) {
	for _, in := range []string{"r1.25", "r3.4e-2", "R0.5"} {
		for _, r := range []Radix{RadixBinary, RadixOctal, RadixDecimal, RadixHex} {
			got := Format(Bus(in), FormatOptions{Radix: r, Uppercase: true, Prefix: true})
			if got != in {
				t.Errorf("%s(%q) = %q, want verbatim", r, in, got)
			}
		}
	}
}

func TestFormatPrefix(t *testing.T) {
	tests := []struct {
		radix     Radix
		uppercase bool
		want      string
	}{
		{RadixBinary, false, "0b11111111"},
		{RadixOctal, false, "0o377"},
		{RadixDecimal, false, "0d255"},
		{RadixHex, false, "0xff"},
		{RadixHex, true, "0XFF"},
	}
	for _, tt := range tests {
		got := Format(Bus("ff"), FormatOptions{Radix: tt.radix, Uppercase: tt.uppercase, Prefix: true})
		if got != tt.want {
			t.Errorf("prefixed %s = %q, want %q", tt.radix, got, tt.want)
		}
	}
}

// Hex canonicalization and binary formatting invert each other for fully
// defined values, modulo leading zeros.
func TestFormatBinaryHexRoundTrip(t *testing.T) {
	bitStrings := []string{
		"1", "0", "101", "11110000", "000111",
		"1111111111111111", strings.Repeat("10", 40),
	}
	for _, bits := range bitStrings {
		hex := BinaryToHex(bits)
		back := Format(Bus(hex), FormatOptions{Radix: RadixBinary})
		want := trimLeadingZeros(bits)
		if back != want {
			t.Errorf("round trip %q -> %q -> %q, want %q", bits, hex, back, want)
		}
	}
}

func TestParseRadix(t *testing.T) {
	tests := []struct {
		in   string
		want Radix
		ok   bool
	}{
		{"bin", RadixBinary, true},
		{"oct", RadixOctal, true},
		{"dec", RadixDecimal, true},
		{"hex", RadixHex, true},
		{"binary", RadixHex, false},
		{"", RadixHex, false},
	}
	for _, tt := range tests {
		got, ok := ParseRadix(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseRadix(%q) = (%s, %v), want (%s, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestRadixNextCycles(t *testing.T) {
	order := []Radix{RadixBinary, RadixOctal, RadixDecimal, RadixHex, RadixBinary}
	for i := 0; i < len(order)-1; i++ {
		if got := order[i].Next(); got != order[i+1] {
			t.Errorf("%s.Next() = %s, want %s", order[i], got, order[i+1])
		}
	}
}
