package client

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/MKhiriev/adventure-client/internal/logger"
	"github.com/MKhiriev/adventure-client/internal/shell"
	"github.com/MKhiriev/adventure-client/internal/tui"
	"golang.org/x/term"
)

const clearScreen = "\x1b[2J"

// App runs the shell on the process's standard streams.
type App struct {
	shell  Shell
	input  io.Reader
	output io.Writer

	interactive bool
	logger      *logger.Logger
}

// NewApp creates an App bound to stdin and stdout.
func NewApp(sh Shell, logger *logger.Logger) *App {
	return newApp(sh, os.Stdin, os.Stdout, logger)
}

func newApp(sh Shell, in io.Reader, out io.Writer, logger *logger.Logger) *App {
	return &App{
		shell:       sh,
		input:       in,
		output:      out,
		interactive: isTerminal(in) && isTerminal(out),
		logger:      logger,
	}
}

// Run implements [Client]. It returns when the user quits, input ends or the
// process receives a termination signal.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if a.interactive {
		a.logger.Info().Msg("starting interactive shell")
		return tui.New(a.shell, a.input, a.output).Run(ctx)
	}

	a.logger.Info().Msg("starting line shell")
	return a.runLines(ctx)
}

// runLines drives the shell one input line at a time. The line that follows
// a password request is taken as the password.
func (a *App) runLines(ctx context.Context) error {
	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(a.input)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- sc.Err()
	}()

	passwordFor, quit := a.write(a.shell.Startup(ctx))
	for !quit {
		var (
			line string
			ok   bool
		)
		select {
		case <-ctx.Done():
			return nil
		case line, ok = <-lines:
		}
		if !ok {
			break
		}

		var reply shell.Reply
		if passwordFor != "" {
			reply = a.shell.SubmitPassword(ctx, passwordFor, line)
		} else {
			reply = a.shell.Execute(ctx, line)
		}
		passwordFor, quit = a.write(reply)
	}

	select {
	case err := <-scanErr:
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
	default:
	}
	return nil
}

func (a *App) write(reply shell.Reply) (passwordFor string, quit bool) {
	if reply.Clear {
		fmt.Fprint(a.output, clearScreen)
	}
	if len(reply.Lines) > 0 {
		fmt.Fprintln(a.output, strings.Join(reply.Lines, "\n"))
	}
	return reply.PasswordFor, reply.Quit
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
