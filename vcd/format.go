package vcd

import "strconv"

// Radix selects the display base for bus values.
type Radix int

const (
	RadixBinary Radix = iota
	RadixOctal
	RadixDecimal
	RadixHex
)

func (r Radix) String() string {
	switch r {
	case RadixBinary:
		return "bin"
	case RadixOctal:
		return "oct"
	case RadixDecimal:
		return "dec"
	case RadixHex:
		return "hex"
	default:
		return "hex"
	}
}

// ParseRadix accepts the command-mode radix names.
func ParseRadix(s string) (Radix, bool) {
	switch s {
	case "bin":
		return RadixBinary, true
	case "oct":
		return RadixOctal, true
	case "dec":
		return RadixDecimal, true
	case "hex":
		return RadixHex, true
	}
	return RadixHex, false
}

// Next cycles bin -> oct -> dec -> hex -> bin.
func (r Radix) Next() Radix {
	switch r {
	case RadixBinary:
		return RadixOctal
	case RadixOctal:
		return RadixDecimal
	case RadixDecimal:
		return RadixHex
	default:
		return RadixBinary
	}
}

// FormatOptions control bus rendering. Scalar values always render as
// their single level character whatever the radix.
type FormatOptions struct {
	Radix     Radix
	Uppercase bool
	Prefix    bool // 0b / 0o / 0d / 0x (0X when uppercase hex)
}

// Format renders a WaveValue for display.
func Format(v WaveValue, opts FormatOptions) string {
	if !v.IsBus() {
		return string(v.Bit().Digit(opts.Uppercase))
	}

	// real-value changes are opaque labels, never radix-converted
	if s := v.BusString(); len(s) > 0 && (s[0] == 'r' || s[0] == 'R') {
		return s
	}

	var prefix string
	if opts.Prefix {
		switch opts.Radix {
		case RadixBinary:
			prefix = "0b"
		case RadixOctal:
			prefix = "0o"
		case RadixDecimal:
			prefix = "0d"
		case RadixHex:
			if opts.Uppercase {
				prefix = "0X"
			} else {
				prefix = "0x"
			}
		}
	}

	s := v.BusString()
	switch opts.Radix {
	case RadixBinary:
		return prefix + formatStringAsBinary(s, opts.Uppercase)
	case RadixOctal:
		return prefix + formatStringAsOctal(s, opts.Uppercase)
	case RadixDecimal:
		return prefix + formatStringAsDecimal(s, opts.Uppercase)
	default:
		return prefix + formatStringAsHex(s, opts.Uppercase)
	}
}

// nibbleBits maps a hex digit to its 4-bit expansion.
var nibbleBits = map[byte]string{
	'0': "0000", '1': "0001", '2': "0010", '3': "0011",
	'4': "0100", '5': "0101", '6': "0110", '7': "0111",
	'8': "1000", '9': "1001", 'a': "1010", 'b': "1011",
	'c': "1100", 'd': "1101", 'e': "1110", 'f': "1111",
}

func isFourState(c byte) bool {
	return c == '0' || c == '1' || c == 'x' || c == 'X' || c == 'z' || c == 'Z'
}

func containsUndef(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == 'x' || c == 'X' || c == 'z' || c == 'Z' {
			return true
		}
	}
	return false
}

func caseUndef(c byte, uppercase bool) byte {
	switch c {
	case 'x', 'X':
		if uppercase {
			return 'X'
		}
		return 'x'
	case 'z', 'Z':
		if uppercase {
			return 'Z'
		}
		return 'z'
	}
	return c
}

// formatStringAsBinary expands the stored encoding into a bit string. A
// value that is already over {0,1,x,z} passes through with only x/z case
// normalization; hex digits expand to four bits each, x/z to a single
// marker character. Leading zero bits are stripped, keeping at least "0".
func formatStringAsBinary(s string, uppercase bool) string {
	allBits := true
	for i := 0; i < len(s); i++ {
		if !isFourState(s[i]) {
			allBits = false
			break
		}
	}
	if allBits {
		out := make([]byte, len(s))
		for i := 0; i < len(s); i++ {
			out[i] = caseUndef(s[i], uppercase)
		}
		return string(out)
	}

	var out []byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		if bits, ok := nibbleBits[lowerHexDigit(c)]; ok {
			out = append(out, bits...)
		} else if c == 'x' || c == 'X' || c == 'z' || c == 'Z' {
			out = append(out, caseUndef(c, uppercase))
		}
	}
	return trimLeadingZeros(string(out))
}

// formatStringAsOctal regroups the binary expansion into 3-bit digits. A
// source containing x/z falls back to digit-wise passthrough with case
// adjustment; this is an approximation kept on purpose, not true
// mixed-radix conversion.
func formatStringAsOctal(s string, uppercase bool) string {
	if containsUndef(s) {
		out := make([]byte, len(s))
		for i := 0; i < len(s); i++ {
			out[i] = caseUndef(s[i], uppercase)
		}
		return string(out)
	}

	binary := formatStringAsBinary(s, uppercase)
	pad := (3 - len(binary)%3) % 3
	padded := make([]byte, 0, pad+len(binary))
	for i := 0; i < pad; i++ {
		padded = append(padded, '0')
	}
	padded = append(padded, binary...)

	var out []byte
	for i := 0; i < len(padded); i += 3 {
		group := padded[i : i+3]
		if containsUndef(string(group)) {
			out = append(out, caseUndef(group[indexUndef(group)], uppercase))
			continue
		}
		d := byte(0)
		for _, b := range group {
			d <<= 1
			if b == '1' {
				d |= 1
			}
		}
		out = append(out, '0'+d)
	}
	return trimLeadingZeros(string(out))
}

// formatStringAsDecimal parses the hex form as an unsigned 64-bit integer
// when fully defined. With x/z in the source the characters are emitted
// unchanged apart from case; downstream snapshots depend on this exact
// fallback.
func formatStringAsDecimal(s string, uppercase bool) string {
	if !containsUndef(s) {
		if n, err := strconv.ParseUint(s, 16, 64); err == nil {
			return strconv.FormatUint(n, 10)
		}
	}
	out := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		out[i] = caseUndef(s[i], uppercase)
	}
	return string(out)
}

// formatStringAsHex is passthrough with case adjustment only; bus values
// are already stored in hex when fully defined.
func formatStringAsHex(s string, uppercase bool) string {
	out := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'f':
			if uppercase {
				c -= 'a' - 'A'
			}
		case c >= 'A' && c <= 'F':
			if !uppercase {
				c += 'a' - 'A'
			}
		default:
			c = caseUndef(c, uppercase)
		}
		out[i] = c
	}
	if len(out) == 0 {
		return "0"
	}
	return string(out)
}

func lowerHexDigit(c byte) byte {
	if c >= 'A' && c <= 'F' {
		return c + ('a' - 'A')
	}
	return c
}

func indexUndef(group []byte) int {
	for i, c := range group {
		if c == 'x' || c == 'X' || c == 'z' || c == 'Z' {
			return i
		}
	}
	return 0
}

func trimLeadingZeros(s string) string {
	i := 0
	for i < len(s) && s[i] == '0' {
		i++
	}
	if i == len(s) {
		return "0"
	}
	return s[i:]
}
