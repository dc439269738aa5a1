package vcd

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ParseFile opens path and parses it as a VCD text dump.
func ParseFile(path string) (*WaveformData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open vcd file %q", path)
	}
	defer f.Close()
	return Parse(f)
}

// Parse consumes a VCD text stream and builds the waveform model. Only I/O
// failures are errors; body lines that match no known pattern are skipped.
// Real-world dumps carry vendor extensions outside the core grammar, so
// leniency here is deliberate.
func Parse(r io.Reader) (*WaveformData, error) {
	var (
		scopeStack    []string
		idOrder       []string
		idToName      = map[string]string{}
		values        = map[string][]Change{}
		currentTime   uint64
		maxTime       uint64
		inDefinitions = true
		inDumpvars    bool
	)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())

		switch {
		case strings.HasPrefix(line, "$var"):
			id, name, ok := parseVarDeclaration(line)
			if !ok {
				continue
			}
			full := strings.Join(append(append([]string{}, scopeStack...), name), ".")
			if _, seen := idToName[id]; !seen {
				idOrder = append(idOrder, id)
			}
			idToName[id] = full
			if _, ok := values[full]; !ok {
				values[full] = nil
			}

		case strings.HasPrefix(line, "$scope"):
			if name, ok := parseScopeDeclaration(line); ok {
				scopeStack = append(scopeStack, name)
			}

		case strings.HasPrefix(line, "$upscope"):
			if len(scopeStack) > 0 {
				scopeStack = scopeStack[:len(scopeStack)-1]
			}

		case strings.HasPrefix(line, "$enddefinitions"):
			inDefinitions = false

		case strings.HasPrefix(line, "$dumpvars"):
			inDumpvars = true

		case strings.HasPrefix(line, "$end") && inDumpvars:
			inDumpvars = false

		case !inDefinitions && strings.HasPrefix(line, "#"):
			if t, ok := parseTimestamp(line); ok {
				currentTime = t
				if t > maxTime {
					maxTime = t
				}
			}

		case !inDefinitions && line != "" && !strings.HasPrefix(line, "$"):
			v, id, ok := parseValueChange(line)
			if !ok {
				continue
			}
			if name, known := idToName[id]; known {
				values[name] = append(values[name], Change{Time: currentTime, Value: v})
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "read vcd stream")
	}

	// Canonicalize fully-defined bus values to hex. Bus strings with x/z
	// bits stay raw: a nibble with one undefined bit has no single hex
	// digit, so one signal's log can mix raw-bit and hex encodings.
	for name, log := range values {
		for i, c := range log {
			if !c.Value.IsBus() {
				continue
			}
			s := c.Value.BusString()
			if isBinaryDigits(s) {
				log[i].Value = Bus(BinaryToHex(s))
			}
		}
		values[name] = log
	}

	signals := make([]string, 0, len(idOrder))
	for _, id := range idOrder {
		signals = append(signals, idToName[id])
	}

	return &WaveformData{
		Signals: signals,
		Values:  values,
		MaxTime: maxTime,
	}, nil
}

// BinaryToHex converts a 0/1 bit string to its uppercase hex canonical
// form. Bits are left-padded with zeros to the next nibble boundary, so
// "1" becomes "1" and "11111" becomes "1F". Empty input yields "".
func BinaryToHex(bits string) string {
	if bits == "" {
		return ""
	}
	pad := (4 - len(bits)%4) % 4
	padded := strings.Repeat("0", pad) + bits
	var b strings.Builder
	b.Grow(len(padded) / 4)
	for i := 0; i < len(padded); i += 4 {
		var nibble byte
		for _, c := range []byte(padded[i : i+4]) {
			nibble <<= 1
			if c == '1' {
				nibble |= 1
			}
		}
		b.WriteByte(hexDigitsUpper[nibble])
	}
	return b.String()
}

const hexDigitsUpper = "0123456789ABCDEF"

func isBinaryDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] != '0' && s[i] != '1' {
			return false
		}
	}
	return true
}

// isIdentifierChar reports whether c may appear in a VCD identifier:
// printable ASCII except space and backslash.
func isIdentifierChar(c byte) bool {
	return c >= '!' && c <= '~' && c != '\\'
}

func takeIdentifier(s string) (id, rest string) {
	i := 0
	for i < len(s) && isIdentifierChar(s[i]) {
		i++
	}
	return s[:i], s[i:]
}

// parseScopeDeclaration handles "$scope <kind> <name> $end". The kind is
// read but not retained.
func parseScopeDeclaration(line string) (string, bool) {
	if !strings.Contains(line, "$end") {
		return "", false
	}
	fields := strings.Fields(line)
	if len(fields) < 3 || fields[0] != "$scope" {
		return "", false
	}
	name := trimAtDollar(fields[2])
	if name == "" {
		return "", false
	}
	return name, true
}

// parseVarDeclaration handles "$var <type> <width> <id> <name> $end". The
// type and width are read but not retained; the display model keys off the
// value changes themselves.
func parseVarDeclaration(line string) (id, name string, ok bool) {
	if !strings.Contains(line, "$end") {
		return "", "", false
	}
	fields := strings.Fields(line)
	if len(fields) < 5 || fields[0] != "$var" {
		return "", "", false
	}
	if _, err := strconv.ParseUint(fields[2], 10, 32); err != nil {
		return "", "", false
	}
	id = fields[3]
	for i := 0; i < len(id); i++ {
		if !isIdentifierChar(id[i]) {
			return "", "", false
		}
	}
	name = trimAtDollar(fields[4])
	if id == "" || name == "" {
		return "", "", false
	}
	return id, name, true
}

// Names stop at '$' so that a glued "$end" does not leak into the name.
func trimAtDollar(s string) string {
	if i := strings.IndexByte(s, '$'); i >= 0 {
		return s[:i]
	}
	return s
}

func parseTimestamp(line string) (uint64, bool) {
	digits := line[1:]
	i := 0
	for i < len(digits) && digits[i] >= '0' && digits[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0, false
	}
	t, err := strconv.ParseUint(digits[:i], 10, 64)
	if err != nil {
		return 0, false
	}
	return t, true
}

// parseValueChange recognizes the three change forms:
//
//	0! 1! x! z!      scalar, identifier glued to the level character
//	b1010 !          vector, raw bit string then identifier
//	r1.25e-3 !       real, literal carried through as "r<literal>"
//
// Trailing content after the identifier is ignored.
func parseValueChange(line string) (WaveValue, string, bool) {
	switch line[0] {
	case 'b', 'B':
		i := 1
		for i < len(line) && strings.IndexByte("01xXzZ", line[i]) >= 0 {
			i++
		}
		if i == 1 {
			return WaveValue{}, "", false
		}
		bits := line[1:i]
		id, _ := takeIdentifier(strings.TrimLeft(line[i:], " \t"))
		if id == "" {
			return WaveValue{}, "", false
		}
		return Bus(bits), id, true

	case 'r', 'R':
		i := 1
		for i < len(line) && strings.IndexByte("0123456789.eE+-", line[i]) >= 0 {
			i++
		}
		if i == 1 {
			return WaveValue{}, "", false
		}
		lit := line[1:i]
		id, _ := takeIdentifier(strings.TrimLeft(line[i:], " \t"))
		if id == "" {
			return WaveValue{}, "", false
		}
		return Bus("r" + lit), id, true

	case '0', '1', 'x', 'X', 'z', 'Z':
		var v Value
		switch line[0] {
		case '0':
			v = V0
		case '1':
			v = V1
		case 'x', 'X':
			v = VX
		default:
			v = VZ
		}
		id, _ := takeIdentifier(line[1:])
		if id == "" {
			return WaveValue{}, "", false
		}
		return Binary(v), id, true
	}
	return WaveValue{}, "", false
}
