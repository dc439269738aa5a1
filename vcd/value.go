package vcd

// Value is a single 4-state logic level.
type Value int

const (
	V0 Value = iota
	V1
	VX
	VZ
)

// String returns the variant name (V0, V1, VX, VZ). Transition text and the
// signal list use this form.
func (v Value) String() string {
	switch v {
	case V0:
		return "V0"
	case V1:
		return "V1"
	case VX:
		return "VX"
	case VZ:
		return "VZ"
	default:
		return "V?"
	}
}

// Digit returns the single display character for this level.
func (v Value) Digit(uppercase bool) byte {
	switch v {
	case V0:
		return '0'
	case V1:
		return '1'
	case VX:
		if uppercase {
			return 'X'
		}
		return 'x'
	case VZ:
		if uppercase {
			return 'Z'
		}
		return 'z'
	default:
		return '?'
	}
}

// WaveValue is either a single logic level (scalar signal) or a bus string.
// The bus string is an uppercase hex form when fully defined, a raw bit
// string when it contains x/z bits, or "r<literal>" for real-value changes.
type WaveValue struct {
	isBus bool
	bit   Value
	bus   string
}

func Binary(v Value) WaveValue {
	return WaveValue{bit: v}
}

func Bus(s string) WaveValue {
	return WaveValue{isBus: true, bus: s}
}

func (w WaveValue) IsBus() bool { return w.isBus }

// Bit returns the logic level of a scalar value. Only meaningful when
// IsBus() is false.
func (w WaveValue) Bit() Value { return w.bit }

// BusString returns the stored bus encoding. Only meaningful when IsBus()
// is true.
func (w WaveValue) BusString() string { return w.bus }

// Equal reports exact variant plus payload equality. Bus comparison is
// string comparison on the stored encoding, so "0F" and "1111" are not
// equal even if they denote the same number.
func (w WaveValue) Equal(o WaveValue) bool {
	if w.isBus != o.isBus {
		return false
	}
	if w.isBus {
		return w.bus == o.bus
	}
	return w.bit == o.bit
}

// Label is the plain display text: the variant name for scalars, the
// stored encoding for buses.
func (w WaveValue) Label() string {
	if w.isBus {
		return w.bus
	}
	return w.bit.String()
}

// Change is one entry of a signal's change log.
type Change struct {
	Time  uint64
	Value WaveValue
}

// WaveformData holds everything parsed from one dump file. It is built once
// by the parser and never mutated afterwards; a new file load replaces the
// whole value.
type WaveformData struct {
	// Signal names in declaration order, used for stable display.
	Signals []string

	// Per-signal change logs. Times are nondecreasing within each log.
	Values map[string][]Change

	// Largest timestamp observed in the file.
	MaxTime uint64
}
