// Package render formats scored sessions and the weight table.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/verte-zerg/numeracal/internal/model"
	"github.com/verte-zerg/numeracal/internal/weights"
)

const (
	// TotalKey labels the grand total in JSON output.
	TotalKey = "TOTAL_VALUE"

	tableNote     = "Note: Both lowercase and uppercase letters hold equivalent value."
	exitNote      = "Note: Press Ctrl+C to exit."
	separatorLen  = 20
	defaultPrompt = "Enter words separated by spaces: "
	lessPrompt    = ": "
	rawPrompt     = ":"
)

const banner = `
             _   _ _   _ __  __ _____ ____      _    ____    _    _     ____
            | \ | | | | |  \/  | ____|  _ \    / \  / ___|  / \  | |   / ___|
            |  \| | | | | |\/| |  _| | |_) |  / _ \| |     / _ \ | |  | |
            | |\  | |_| | |  | | |___|  _ <  / ___ \ |___ / ___ \| |__| |___
            |_| \_|\___/|_|  |_|_____|_| \_\/_/   \_\____/_/   \_\_____\____|
            `

// Formatter renders sessions and the weight table according to OutputOptions.
type Formatter struct {
	opts   model.OutputOptions
	styles styles
}

// New returns a Formatter whose color detection is bound to term, the
// stream the output eventually reaches.
func New(term io.Writer, opts model.OutputOptions) *Formatter {
	r := newRenderer(term, opts.Color)
	return &Formatter{
		opts:   opts,
		styles: newStyles(r, opts.Decorated()),
	}
}

// Options returns the options the formatter was built with.
func (f *Formatter) Options() model.OutputOptions {
	return f.opts
}

// WriteSession renders the scored words of one batch or iteration.
func (f *Formatter) WriteSession(w io.Writer, session model.Session) error {
	if f.opts.JSON {
		return f.writeSessionJSON(w, session)
	}
	lw := &lineWriter{w: w}
	for _, ws := range session.Scores {
		if f.opts.Raw {
			lw.line(f.styles.word.Render(fmt.Sprintf("%s: %d", strconv.Quote(ws.Word), ws.Total)))
		} else {
			lw.line(f.styles.word.Render(fmt.Sprintf("Value of %s: %d", strconv.Quote(ws.Word), ws.Total)))
		}
		if f.opts.Less || f.opts.Raw {
			continue
		}
		for _, lv := range ws.Letters {
			lw.line(f.styles.letter.Render(fmt.Sprintf("%s: %d", strconv.QuoteRune(lv.Letter), lv.Weight)))
		}
	}
	if !f.opts.Raw {
		lw.line(f.styles.word.Render(strings.Repeat("-", separatorLen)))
	}
	if !f.opts.NoTotal {
		lw.line(f.styles.word.Render(fmt.Sprintf("Total Value: %d", session.GrandTotal)))
	}
	return lw.err
}

func (f *Formatter) writeSessionJSON(w io.Writer, session model.Session) error {
	out := make([]orderedObject, 0, len(session.Scores)+1)
	for _, ws := range session.Scores {
		out = append(out, orderedObject{{key: ws.Word, value: ws.Total}})
	}
	if !f.opts.NoTotal {
		out = append(out, orderedObject{{key: TotalKey, value: session.GrandTotal}})
	}
	return writeJSON(w, out)
}

// WriteTable renders the weight table itself; words are ignored in this mode.
func (f *Formatter) WriteTable(w io.Writer, table *weights.Table) error {
	entries := table.Entries()
	if f.opts.JSON {
		obj := make(orderedObject, 0, len(entries))
		for _, e := range entries {
			obj = append(obj, jsonField{key: string(e.Char), value: e.Weight})
		}
		return writeJSON(w, obj)
	}

	lw := &lineWriter{w: w}
	if f.opts.Less || f.opts.Raw {
		for _, e := range entries {
			lw.line(fmt.Sprintf("%c: %d", e.Char, e.Weight))
		}
	} else {
		for _, line := range f.tableGrid(entries) {
			lw.line(line)
		}
	}
	if !f.opts.Quiet {
		lw.line(f.styles.note.Render(tableNote))
	}
	return lw.err
}

func (f *Formatter) tableGrid(entries []weights.Entry) []string {
	rows := make([][]string, 0, len(entries)+1)
	prevDigit := false
	for _, e := range entries {
		isDigit := e.Char >= '0' && e.Char <= '9'
		if prevDigit && !isDigit {
			rows = append(rows, nil)
		}
		prevDigit = isDigit
		rows = append(rows, []string{string(e.Char), strconv.Itoa(e.Weight)})
	}
	return formatGrid([]string{"CHARACTER", "VALUE"}, rows, func(row, col int, cell string) string {
		switch {
		case row < 0:
			return f.styles.title.Render(cell)
		case col == 0:
			return f.styles.char.Render(cell)
		default:
			return f.styles.value.Render(cell)
		}
	})
}

// WriteExitNote prints the Ctrl+C hint shown before interactive loops.
func (f *Formatter) WriteExitNote(w io.Writer) error {
	if f.opts.Quiet {
		return nil
	}
	lw := &lineWriter{w: w}
	lw.line(f.styles.note.Render(exitNote))
	return lw.err
}

// WriteBanner prints the full-screen banner followed by two blank lines.
func (f *Formatter) WriteBanner(w io.Writer) error {
	lw := &lineWriter{w: w}
	lw.line(f.styles.banner.Render(banner) + "\n\n")
	return lw.err
}

// Prompt returns the text printed before each interactive read.
func (f *Formatter) Prompt() string {
	switch {
	case f.opts.Less:
		return lessPrompt
	case f.opts.Raw:
		return rawPrompt
	default:
		return defaultPrompt
	}
}

// lineWriter keeps the first write error and skips later writes.
type lineWriter struct {
	w   io.Writer
	err error
}

func (lw *lineWriter) line(s string) {
	if lw.err != nil {
		return
	}
	if _, err := io.WriteString(lw.w, s+"\n"); err != nil {
		lw.err = writeError(err)
	}
}

func writeError(err error) error {
	return fmt.Errorf("failed to write output: %w", err)
}
