package main

import "github.com/charmbracelet/bubbles/textinput"

type uiState struct {
	mode   mode
	width  int
	height int

	commandInput textinput.Model
	history      []string // most recent first
	historyPos   int      // -1 when not browsing
	historyDraft string   // in-progress input saved while browsing

	finder finderState

	noticeMsg string
	noticeErr bool
	noticeSeq int

	// Mouse drag tracking, waveform-area columns.
	mouseDown  bool
	mouseDownX int
	dragX      int
	dragging   bool

	quitting bool
}
