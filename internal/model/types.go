// Package model defines shared data structures.
package model

import "fmt"

// LetterValue is the weight assigned to one character of a word.
type LetterValue struct {
	Letter rune
	Weight int
}

// WordScore captures a scored word and its per-letter breakdown.
type WordScore struct {
	Word    string
	Letters []LetterValue
	Total   int
}

// Session holds the words scored in one batch or one loop iteration.
type Session struct {
	Scores     []WordScore
	GrandTotal int
}

// Add appends a scored word and folds its total into the grand total.
func (s *Session) Add(ws WordScore) {
	s.Scores = append(s.Scores, ws)
	s.GrandTotal += ws.Total
}

// Toggle is a tri-state switch used by --color and --decorations.
type Toggle string

// Toggle values.
const (
	ToggleAuto   Toggle = "auto"
	ToggleAlways Toggle = "always"
	ToggleNever  Toggle = "never"
)

// ParseToggle validates a toggle value.
func ParseToggle(value string) (Toggle, error) {
	switch Toggle(value) {
	case ToggleAuto, ToggleAlways, ToggleNever:
		return Toggle(value), nil
	default:
		return "", fmt.Errorf("invalid value %q (expected auto, always or never)", value)
	}
}

// OutputOptions collects the flags that shape rendering.
type OutputOptions struct {
	Less        bool
	Raw         bool
	NoTotal     bool
	JSON        bool
	Quiet       bool
	Decorations Toggle
	Color       Toggle
}

// Decorated reports whether bold and italic emphasis are enabled.
func (o OutputOptions) Decorated() bool {
	return o.Decorations != ToggleNever
}

// Flags are the mode-selecting switches from the command line.
type Flags struct {
	Table     bool
	Fast      bool
	Recursive bool
	JSON      bool
}

// Mode is the run mode picked once per invocation.
type Mode int

// Run modes.
const (
	ModePipedBatch Mode = iota
	ModeFastBatch
	ModeInteractiveRecursive
	ModeInteractiveFullScreen
)

func (m Mode) String() string {
	switch m {
	case ModePipedBatch:
		return "piped-batch"
	case ModeFastBatch:
		return "fast-batch"
	case ModeInteractiveRecursive:
		return "interactive-recursive"
	case ModeInteractiveFullScreen:
		return "interactive-fullscreen"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}
