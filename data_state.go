package main

import (
	"github.com/andareed/siftly-wave/vcd"
)

// dataState is everything derived from the loaded trace plus the pieces of
// viewer state that persist across renders and saves. A new file load
// replaces waveform wholesale; the view resets, markers survive only on a
// watch-triggered reload.
type dataState struct {
	waveform  *vcd.WaveformData
	displayed []string // signal names currently shown, declaration order
	selected  int      // index into displayed

	view    vcd.ViewState
	markers []Marker
	radix   vcd.Radix

	inputPath string // source .vcd path
	sessionID string // assigned on first session save, stable thereafter
}

func (d *dataState) selectedSignal() (string, bool) {
	if d.selected < 0 || d.selected >= len(d.displayed) {
		return "", false
	}
	return d.displayed[d.selected], true
}

func (d *dataState) maxTime() uint64 {
	if d.waveform == nil {
		return 0
	}
	return d.waveform.MaxTime
}

// adoptWaveform swaps in a freshly parsed trace. keepSelection preserves
// markers and the displayed set (dropping names the new trace lost); a
// plain load shows everything and clears markers.
func (d *dataState) adoptWaveform(w *vcd.WaveformData, keepSelection bool) {
	d.waveform = w

	if keepSelection {
		known := make(map[string]struct{}, len(w.Signals))
		for _, name := range w.Signals {
			known[name] = struct{}{}
		}
		kept := d.displayed[:0]
		for _, name := range d.displayed {
			if _, ok := known[name]; ok {
				kept = append(kept, name)
			}
		}
		d.displayed = kept
		if len(d.displayed) == 0 {
			d.displayed = append([]string(nil), w.Signals...)
		}
	} else {
		d.displayed = append([]string(nil), w.Signals...)
		d.markers = nil
	}

	if d.selected >= len(d.displayed) {
		d.selected = len(d.displayed) - 1
	}
	if d.selected < 0 {
		d.selected = 0
	}

	primary, secondary := d.view.PrimaryMarker, d.view.SecondaryMarker
	d.view.Reset(w.MaxTime)
	if keepSelection {
		d.view.PrimaryMarker = primary
		d.view.SecondaryMarker = secondary
	}
}
