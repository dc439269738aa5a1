// Package clipboard copies text to the system clipboard, falling back to
// the terminal's OSC52 escape when no native clipboard is reachable
// (headless hosts, SSH sessions).
package clipboard

import (
	"github.com/atotto/clipboard"

	"github.com/andareed/siftly-wave/logging"
)

func Copy(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		logging.Warnf("Clipboard: native copy failed (%v), trying OSC52", err)
		return copyOSC52(text)
	}
	logging.Infof("Clipboard: copied %d bytes", len(text))
	return nil
}
