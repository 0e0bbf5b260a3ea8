package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/verte-zerg/numeracal/internal/model"
	"github.com/verte-zerg/numeracal/internal/render"
	"github.com/verte-zerg/numeracal/internal/score"
	"github.com/verte-zerg/numeracal/internal/weights"
)

// ErrReadInput reports a failure to read piped words from stdin.
var ErrReadInput = errors.New("failed to read input")

// Screen runs the full-screen interactive surface.
type Screen interface {
	Run(ctx context.Context, words []string) error
}

// Controller owns the scoring pipeline for one process invocation.
type Controller struct {
	table     *weights.Table
	engine    *score.Engine
	formatter *render.Formatter
	in        io.Reader
	out       *bufio.Writer
	screen    Screen
	logger    *slog.Logger
}

// NewController wires the pipeline to in and out. out is buffered and
// flushed before every blocking read and when Run returns.
func NewController(table *weights.Table, formatter *render.Formatter, in io.Reader, out io.Writer, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		table:     table,
		engine:    score.New(table),
		formatter: formatter,
		in:        in,
		out:       bufio.NewWriter(out),
		logger:    logger,
	}
}

// SetScreen installs the full-screen surface used by ModeInteractiveFullScreen.
func (c *Controller) SetScreen(s Screen) {
	c.screen = s
}

// RunTable renders the weight table and ignores any words.
func (c *Controller) RunTable() error {
	err := c.formatter.WriteTable(c.out, c.table)
	return c.flush(err)
}

// Run executes mode with the command-line words.
func (c *Controller) Run(ctx context.Context, mode model.Mode, words []string) error {
	c.logger.Debug("run mode selected", "mode", mode.String(), "words", len(words))
	switch mode {
	case model.ModePipedBatch:
		piped, err := ReadWords(c.in)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrReadInput, err)
		}
		return c.flush(c.Iterate(c.out, piped))
	case model.ModeFastBatch:
		return c.flush(c.Iterate(c.out, words))
	case model.ModeInteractiveRecursive:
		if err := c.formatter.WriteExitNote(c.out); err != nil {
			return c.flush(err)
		}
		return c.flush(c.loop(ctx, words))
	case model.ModeInteractiveFullScreen:
		if c.screen == nil {
			return fmt.Errorf("full-screen mode is not available")
		}
		return c.screen.Run(ctx, words)
	default:
		return fmt.Errorf("unknown run mode %v", mode)
	}
}

// Iterate scores words into a fresh session and renders it to w. Totals
// never carry over between calls.
func (c *Controller) Iterate(w io.Writer, words []string) error {
	session := c.engine.ScoreWords(words)
	c.logger.Debug("scored session", "words", len(session.Scores), "total", session.GrandTotal)
	return c.formatter.WriteSession(w, session)
}

func (c *Controller) loop(ctx context.Context, words []string) error {
	lines := NewLineReader(c.in)
	for {
		if err := c.Iterate(c.out, words); err != nil {
			return err
		}
		if _, err := c.out.WriteString(c.formatter.Prompt()); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		if err := c.out.Flush(); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		if err := ctx.Err(); err != nil {
			return nil
		}

		next, err := lines.ReadWords()
		if errors.Is(err, io.EOF) {
			c.logger.Debug("terminal input closed")
			if _, werr := c.out.WriteString("\n"); werr != nil {
				return fmt.Errorf("failed to write output: %w", werr)
			}
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read line: %w", err)
		}
		words = next
	}
}

func (c *Controller) flush(err error) error {
	if ferr := c.out.Flush(); ferr != nil && err == nil {
		err = fmt.Errorf("failed to write output: %w", ferr)
	}
	return err
}
