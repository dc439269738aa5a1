package main

import (
	"github.com/andareed/siftly-wave/vcd"
)

func cmdFindSignal(m *model, _ []string) (string, bool) {
	m.openFinder()
	return "", false
}

func cmdRadix(m *model, args []string) (string, bool) {
	if len(args) < 1 {
		return "Usage: radix <bin|oct|dec|hex>", true
	}
	r, ok := vcd.ParseRadix(args[0])
	if !ok {
		return "Unknown radix: " + args[0], true
	}
	m.data.radix = r
	return "Radix set to " + r.String(), false
}
