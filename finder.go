package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"
)

// finderState backs the full-screen signal chooser. Selection is tracked
// per signal name so narrowing the match list never loses choices made
// under an earlier query.
type finderState struct {
	input    textinput.Model
	all      []string
	matches  []string
	cursor   int
	selected map[string]bool
}

func newFinderState() finderState {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 128
	return finderState{
		input:    ti,
		selected: make(map[string]bool),
	}
}

// openFinder enters finder mode seeded with the current displayed set.
func (m *model) openFinder() {
	f := &m.ui.finder
	f.all = nil
	if m.data.waveform != nil {
		f.all = append(f.all, m.data.waveform.Signals...)
	}
	f.selected = make(map[string]bool, len(m.data.displayed))
	for _, name := range m.data.displayed {
		f.selected[name] = true
	}
	f.input.SetValue("")
	f.input.Focus()
	f.cursor = 0
	f.refilter()
	m.ui.mode = modeFinder
}

func (f *finderState) refilter() {
	query := strings.TrimSpace(f.input.Value())
	if query == "" {
		f.matches = append(f.matches[:0], f.all...)
	} else {
		ranked := fuzzy.Find(query, f.all)
		f.matches = f.matches[:0]
		for _, r := range ranked {
			f.matches = append(f.matches, f.all[r.Index])
		}
	}
	if f.cursor >= len(f.matches) {
		f.cursor = 0
	}
}

func (f *finderState) selectedCount() int {
	n := 0
	for _, on := range f.selected {
		if on {
			n++
		}
	}
	return n
}

func (m *model) handleFinderKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := &m.ui.finder
	switch msg.String() {
	case "esc":
		m.ui.mode = modeNormal
		return m, nil
	case "enter":
		m.commitFinder()
		m.ui.mode = modeNormal
		return m, nil
	case "up":
		if f.cursor > 0 {
			f.cursor--
		}
		return m, nil
	case "down":
		if f.cursor < len(f.matches)-1 {
			f.cursor++
		}
		return m, nil
	case " ":
		if f.cursor < len(f.matches) {
			name := f.matches[f.cursor]
			f.selected[name] = !f.selected[name]
		}
		return m, nil
	case "ctrl+a":
		for _, name := range f.matches {
			f.selected[name] = true
		}
		return m, nil
	case "ctrl+x":
		f.selected = make(map[string]bool)
		return m, nil
	}

	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	f.refilter()
	return m, cmd
}

// commitFinder applies the chosen set in signal declaration order, not the
// order signals were toggled in.
func (m *model) commitFinder() {
	f := &m.ui.finder
	displayed := make([]string, 0, len(f.all))
	for _, name := range f.all {
		if f.selected[name] {
			displayed = append(displayed, name)
		}
	}
	m.data.displayed = displayed
	if m.data.selected >= len(displayed) {
		m.data.selected = 0
	}
}

func (m *model) renderFinder() string {
	f := &m.ui.finder
	var b strings.Builder

	b.WriteString(titleBarStyle.Render(padRightPlain(" Signal Finder", m.ui.width)))
	b.WriteByte('\n')
	b.WriteString(f.input.View())
	b.WriteByte('\n')
	b.WriteString(hintStyle.Render(fmt.Sprintf("Selected: %d/%d   (space toggle · ctrl+a all · ctrl+x none · enter apply · esc cancel)",
		f.selectedCount(), len(f.all))))
	b.WriteByte('\n')

	listRows := m.ui.height - 4
	if listRows < 1 {
		listRows = 1
	}
	start := 0
	if f.cursor >= listRows {
		start = f.cursor - listRows + 1
	}
	for i := start; i < len(f.matches) && i < start+listRows; i++ {
		name := f.matches[i]
		mark := "[ ]"
		if f.selected[name] {
			mark = "[x]"
		}
		line := fmt.Sprintf("  %s %s", mark, name)
		if i == f.cursor {
			line = "▸" + line[1:]
			line = signalSelectedStyle.Render(truncatePlain(line, m.ui.width))
		} else {
			line = truncatePlain(line, m.ui.width)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}
