package main

import (
	"fmt"
	"strconv"
)

const markerUsage = "Usage: marker add|remove|color <name> [time]"

func cmdMarker(m *model, args []string) (string, bool) {
	if len(args) == 0 {
		return markerUsage, true
	}
	switch args[0] {
	case "add", "a":
		return markerAdd(m, args[1:])
	case "remove", "rm":
		return markerRemove(m, args[1:])
	case "color", "c":
		return markerColor(m, args[1:])
	default:
		return "Unknown subcommand.", true
	}
}

func markerAdd(m *model, args []string) (string, bool) {
	if len(args) < 1 {
		return markerUsage, true
	}
	name := args[0]
	if m.findMarker(name) >= 0 {
		return fmt.Sprintf("Marker '%s' already exists", name), true
	}

	var t uint64
	if len(args) >= 2 {
		parsed, err := strconv.ParseUint(args[1], 10, 64)
		if err != nil {
			return "Invalid time format", true
		}
		if parsed > m.data.maxTime() {
			return fmt.Sprintf("Time out of range (0-%d)", m.data.maxTime()), true
		}
		t = parsed
	} else {
		if m.data.view.PrimaryMarker == nil {
			return "No time specified and primary marker not set", true
		}
		t = *m.data.view.PrimaryMarker
	}

	m.data.markers = append(m.data.markers, Marker{
		Name:  name,
		Time:  t,
		Color: defaultMarkerColor,
	})
	return fmt.Sprintf("Added marker '%s' at time %d", name, t), false
}

func markerRemove(m *model, args []string) (string, bool) {
	if len(args) < 1 {
		return markerUsage, true
	}
	name := args[0]
	idx := m.findMarker(name)
	if idx < 0 {
		return fmt.Sprintf("No marker found with name '%s'", name), true
	}
	t := m.data.markers[idx].Time
	m.data.markers = append(m.data.markers[:idx], m.data.markers[idx+1:]...)
	return fmt.Sprintf("Removed marker '%s' at time %d", name, t), false
}

func markerColor(m *model, args []string) (string, bool) {
	if len(args) < 2 {
		return markerUsage, true
	}
	name, color := args[0], args[1]
	idx := m.findMarker(name)
	if idx < 0 {
		return fmt.Sprintf("No marker found with name '%s'", name), true
	}
	if _, ok := parseMarkerColor(color); !ok {
		return fmt.Sprintf("Unknown color: %s. Only ANSI colors are supported.", color), true
	}
	m.data.markers[idx].Color = color
	return fmt.Sprintf("Set color of marker '%s' to '%s'", name, color), false
}
