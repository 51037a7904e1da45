package tui

import (
	"context"
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

// TUI runs the interactive shell on a terminal.
type TUI struct {
	shell   Shell
	history *History
	input   io.Reader
	output  io.Writer
}

// New creates a TUI reading keys from in and drawing to out.
func New(sh Shell, in io.Reader, out io.Writer) *TUI {
	return &TUI{
		shell:   sh,
		history: NewHistory(defaultHistorySize),
		input:   in,
		output:  out,
	}
}

// Run blocks until the user quits or ctx is cancelled. Cancellation of ctx
// is a normal exit.
func (t *TUI) Run(ctx context.Context) error {
	model := NewShellModel(ctx, t.shell, t.history)
	_, err := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(t.input),
		tea.WithOutput(t.output),
	).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
