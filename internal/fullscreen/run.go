package fullscreen

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/numeracal/internal/interrupt"
)

// Runner hosts the Model on the terminal's alternate screen.
type Runner struct {
	iter     Iterator
	deco     Decorator
	listener *interrupt.Listener
	in       io.Reader
	out      io.Writer
}

// NewRunner returns a Runner reading keys from in and drawing to out.
func NewRunner(iter Iterator, deco Decorator, listener *interrupt.Listener, in io.Reader, out io.Writer) *Runner {
	return &Runner{
		iter:     iter,
		deco:     deco,
		listener: listener,
		in:       in,
		out:      out,
	}
}

// Run blocks until Ctrl+C or an interrupt signal. Both restore the terminal
// and return nil.
func (r *Runner) Run(ctx context.Context, words []string) error {
	ctx, stop := r.listener.Listen(ctx)
	defer stop()

	m, err := NewModel(r.iter, r.deco, words)
	if err != nil {
		return err
	}
	program := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithoutSignalHandler(),
		tea.WithInput(r.in),
		tea.WithOutput(r.out),
	)
	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && interrupt.Interrupted(ctx) {
			return nil
		}
		return fmt.Errorf("failed to run full-screen session: %w", err)
	}
	return m.Err()
}
