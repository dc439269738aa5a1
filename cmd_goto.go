package main

import (
	"fmt"
	"strconv"
)

func cmdGoto(m *model, args []string) (string, bool) {
	if len(args) < 1 {
		return "Usage: goto <time>", true
	}
	t, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return "Invalid time format", true
	}
	if t > m.data.maxTime() {
		return fmt.Sprintf("Time out of range (0-%d)", m.data.maxTime()), true
	}
	m.data.view.Goto(t)
	return fmt.Sprintf("Moved to time %d", t), false
}
