// Package session drives run-mode selection and the read-score-format loop.
package session

import "github.com/verte-zerg/numeracal/internal/model"

// SelectMode picks the run mode. Table mode is handled before this is called.
// Piped input always wins, so --recursive is ignored when stdin is not a terminal.
func SelectMode(stdinTTY, fullScreenSupported bool, flags model.Flags) model.Mode {
	switch {
	case !stdinTTY:
		return model.ModePipedBatch
	case flags.Recursive:
		return model.ModeInteractiveRecursive
	case flags.Fast || flags.JSON || !fullScreenSupported:
		return model.ModeFastBatch
	default:
		return model.ModeInteractiveFullScreen
	}
}
