package main

import (
	"path/filepath"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"

	"github.com/andareed/siftly-wave/config"
	"github.com/andareed/siftly-wave/dialogs"
	"github.com/andareed/siftly-wave/logging"
	"github.com/andareed/siftly-wave/vcd"
)

type mode int

const (
	modeNormal mode = iota
	modeCommand
	modeFinder
	modeDialog
)

type model struct {
	data dataState
	ui   uiState

	cfg      config.Config
	keys     Keymap
	styles   styleSet
	commands map[string]cmdHandler

	activeDialog dialogs.Dialog
	watcher      *fsnotify.Watcher

	ready bool
}

func newModel(cfg config.Config) *model {
	ci := textinput.New()
	ci.Prompt = ":"
	ci.CharLimit = 256

	m := &model{
		cfg:    cfg,
		keys:   buildKeymap(cfg),
		styles: newStyles(cfg.UI),
	}
	m.commands = newCommandRegistry()
	m.data.view = vcd.NewViewState()
	m.data.radix = vcd.RadixHex
	m.ui.commandInput = ci
	m.ui.historyPos = -1
	m.ui.finder = newFinderState()
	return m
}

func (m *model) Init() tea.Cmd {
	logging.Infof("siftly-wave: initialised with %d signals", len(m.data.displayed))
	if m.watcher != nil {
		return watchFile(m.watcher)
	}
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKey(msg)

	case tea.MouseMsg:
		if m.ui.mode == modeNormal {
			return m.handleMouse(msg)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.ui.width = msg.Width
		m.ui.height = msg.Height
		m.ui.finder.input.Width = max(20, msg.Width-4)
		m.ui.commandInput.Width = max(20, msg.Width-2)
		m.ready = true
		return m, nil

	case clearNoticeMsg:
		if msg.id == m.ui.noticeSeq {
			m.ui.noticeMsg = ""
			m.ui.noticeErr = false
		}
		return m, nil

	case fileReloadMsg:
		cmd := m.reloadFile()
		if m.watcher != nil {
			return m, tea.Batch(cmd, watchFile(m.watcher))
		}
		return m, cmd

	case watchErrMsg:
		logging.Warnf("watch: %v", msg.err)
		if m.watcher != nil {
			return m, watchFile(m.watcher)
		}
		return m, nil

	case dialogs.SaveConfirmedMsg:
		m.closeDialog()
		written, err := saveSession(m, msg.Path)
		if err != nil {
			return m, m.startNotice(err.Error(), true)
		}
		return m, m.startNotice("Saved session to "+written, false)

	case dialogs.SaveCanceledMsg:
		m.closeDialog()
		return m, nil
	}

	if m.activeDialog != nil {
		var cmd tea.Cmd
		m.activeDialog, cmd = m.activeDialog.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.ui.mode {
	case modeNormal:
		return m.handleNormalKey(msg)
	case modeCommand:
		return m.handleCommandKey(msg)
	case modeFinder:
		return m.handleFinderKey(msg)
	case modeDialog:
		return m.handleDialogKey(msg)
	}
	return m, nil
}

func (m *model) handleDialogKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.activeDialog != nil {
		var cmd tea.Cmd
		m.activeDialog, cmd = m.activeDialog.Update(msg)
		if !m.activeDialog.IsVisible() {
			m.activeDialog = nil
			m.ui.mode = modeNormal
		}
		return m, cmd
	}
	m.ui.mode = modeNormal
	return m, nil
}

func (m *model) closeDialog() {
	m.activeDialog = nil
	if m.ui.mode == modeDialog {
		m.ui.mode = modeNormal
	}
}

func (m *model) openHelp() {
	m.activeDialog = dialogs.NewHelpDialog(m.keys.Legend())
	m.ui.mode = modeDialog
}

func (m *model) openSaveDialog() tea.Cmd {
	if m.data.sessionID == "" {
		m.data.sessionID = uuid.NewString()
	}
	suggested := defaultSessionPath(m.data.inputPath, m.data.sessionID)
	dlg := dialogs.NewSaveDialog(suggested, filepath.Dir(m.data.inputPath))
	m.activeDialog = dlg
	m.ui.mode = modeDialog
	return dlg.Focus()
}

// reloadFile re-parses the watched trace and swaps it in, keeping markers
// and the displayed-signal selection alive across the reload.
func (m *model) reloadFile() tea.Cmd {
	w, err := vcd.ParseFile(m.data.inputPath)
	if err != nil {
		logging.Warnf("reload of %q failed: %v", m.data.inputPath, err)
		return m.startNotice("Reload failed: "+err.Error(), true)
	}
	m.data.adoptWaveform(w, true)
	logging.Infof("reloaded %q: %d signals, max time %d",
		m.data.inputPath, len(w.Signals), w.MaxTime)
	return m.startNotice("Reloaded "+m.data.inputPath, false)
}
