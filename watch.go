package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"

	"github.com/andareed/siftly-wave/logging"
)

type fileReloadMsg struct {
	path string
}

type watchErrMsg struct {
	err error
}

// newWatcher watches the trace file for rewrites. Simulators replace the
// file in place, so both Write and Create count as a reload trigger.
func newWatcher(path string) (*fsnotify.Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "create file watcher")
	}
	if err := w.Add(path); err != nil {
		w.Close()
		return nil, errors.Wrapf(err, "watch %q", path)
	}
	return w, nil
}

// watchFile blocks on the watcher until something happens, then reports it
// as a message. The update loop resubscribes after each delivery.
func watchFile(w *fsnotify.Watcher) tea.Cmd {
	return func() tea.Msg {
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return nil
				}
				logging.Debugf("watch event: %s", ev)
				if ev.Op.Has(fsnotify.Write) || ev.Op.Has(fsnotify.Create) {
					return fileReloadMsg{path: ev.Name}
				}
			case err, ok := <-w.Errors:
				if !ok {
					return nil
				}
				return watchErrMsg{err: err}
			}
		}
	}
}
