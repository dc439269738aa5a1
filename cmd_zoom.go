package main

import (
	"fmt"
	"strconv"
)

func cmdZoom(m *model, args []string) (string, bool) {
	if len(args) < 1 {
		return "Usage: zoom <factor>", true
	}
	n, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil || n == 0 {
		return "Invalid zoom factor", true
	}
	m.data.view.ZoomToFactor(m.data.maxTime(), n)
	return fmt.Sprintf("Zoomed to 1/%d", n), false
}

func cmdZoomFull(m *model, _ []string) (string, bool) {
	m.data.view.ZoomFull(m.data.maxTime())
	return "Zoomed to full view", false
}
