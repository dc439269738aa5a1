package main

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-wave/logging"
)

// cmdHandler runs one parsed command against the model and returns the
// notice text plus whether it is an error. An empty message shows no
// notice (finder/help open their own UI instead).
type cmdHandler func(m *model, args []string) (string, bool)

const maxCommandHistory = 100

// newCommandRegistry builds the name->handler table once at startup.
// Aliases point at the same handler.
func newCommandRegistry() map[string]cmdHandler {
	reg := map[string]cmdHandler{
		"goto":       cmdGoto,
		"zoom":       cmdZoom,
		"zoomfull":   cmdZoomFull,
		"marker":     cmdMarker,
		"findsignal": cmdFindSignal,
		"radix":      cmdRadix,
		"save":       cmdSave,
		"help":       cmdHelp,
		"quit":       cmdQuit,
	}
	aliases := map[string]string{
		"zf": "zoomfull",
		"m":  "marker",
		"fs": "findsignal",
		"rx": "radix",
		"h":  "help",
		"q":  "quit",
	}
	for alias, target := range aliases {
		reg[alias] = reg[target]
	}
	return reg
}

// executeCommand parses and runs one command line, recording it in the
// history regardless of outcome.
func (m *model) executeCommand(line string) tea.Cmd {
	line = strings.TrimSpace(line)
	if line == "" {
		return m.startNotice("No command provided", true)
	}

	m.pushHistory(line)
	logging.Debugf("command: %q", line)

	fields := strings.Fields(line)
	name := fields[0]
	handler, ok := m.commands[name]
	if !ok {
		return m.startNotice("Unknown command: "+name, true)
	}

	msg, isErr := handler(m, fields[1:])
	if m.ui.quitting {
		return tea.Quit
	}
	if msg == "" {
		return nil
	}
	return m.startNotice(msg, isErr)
}

func (m *model) pushHistory(line string) {
	// skip immediate duplicates
	if len(m.ui.history) > 0 && m.ui.history[0] == line {
		return
	}
	m.ui.history = append([]string{line}, m.ui.history...)
	if len(m.ui.history) > maxCommandHistory {
		m.ui.history = m.ui.history[:maxCommandHistory]
	}
}

func (m *model) enterCommandMode() {
	m.ui.mode = modeCommand
	m.ui.commandInput.SetValue("")
	m.ui.commandInput.Focus()
	m.ui.historyPos = -1
	m.ui.historyDraft = ""
}

func (m *model) exitCommandMode() {
	m.ui.commandInput.Blur()
	m.ui.commandInput.SetValue("")
	m.ui.mode = modeNormal
	m.ui.historyPos = -1
}

func (m *model) handleCommandKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.exitCommandMode()
		return m, nil

	case tea.KeyEnter:
		line := m.ui.commandInput.Value()
		m.exitCommandMode()
		return m, m.executeCommand(line)

	case tea.KeyUp:
		m.historyOlder()
		return m, nil

	case tea.KeyDown:
		m.historyNewer()
		return m, nil
	}

	var cmd tea.Cmd
	m.ui.commandInput, cmd = m.ui.commandInput.Update(msg)
	// typing breaks out of history browsing
	if m.ui.historyPos >= 0 && m.ui.commandInput.Value() != m.ui.history[m.ui.historyPos] {
		m.ui.historyPos = -1
	}
	return m, cmd
}

func (m *model) historyOlder() {
	if len(m.ui.history) == 0 {
		return
	}
	if m.ui.historyPos == -1 {
		m.ui.historyDraft = m.ui.commandInput.Value()
	}
	if m.ui.historyPos < len(m.ui.history)-1 {
		m.ui.historyPos++
	}
	m.ui.commandInput.SetValue(m.ui.history[m.ui.historyPos])
	m.ui.commandInput.CursorEnd()
}

func (m *model) historyNewer() {
	if m.ui.historyPos == -1 {
		return
	}
	m.ui.historyPos--
	if m.ui.historyPos == -1 {
		m.ui.commandInput.SetValue(m.ui.historyDraft)
	} else {
		m.ui.commandInput.SetValue(m.ui.history[m.ui.historyPos])
	}
	m.ui.commandInput.CursorEnd()
}

func cmdHelp(m *model, _ []string) (string, bool) {
	m.openHelp()
	return "", false
}

func cmdQuit(m *model, _ []string) (string, bool) {
	m.ui.quitting = true
	return "", false
}
