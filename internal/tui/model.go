package tui

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/adventure-client/internal/shell"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	passwordPrompt = "Password: "
	interruptMark  = "^C"
	tickInterval   = time.Second
)

// printer emits text above the inline program.
type printer func(text string) tea.Cmd

// ShellModel is the Bubble Tea model of the interactive shell. It owns the
// prompt line and forwards complete lines to a [Shell] asynchronously; while
// a call is in flight further input is ignored.
type ShellModel struct {
	ctx   context.Context
	shell Shell
	print printer
	now   func() time.Time

	input   textinput.Model
	history *History
	// histIdx is the history entry shown in the input, -1 when editing a
	// fresh line.
	histIdx int
	draft   string

	// passwordFor is the username whose password is being typed.
	passwordFor string

	busy    bool
	cancel  context.CancelFunc
	pending string

	clock    time.Time
	quitting bool
}

// NewShellModel creates a [ShellModel] with a focused input line.
func NewShellModel(ctx context.Context, sh Shell, history *History) *ShellModel {
	input := textinput.New()
	input.Prompt = ""
	input.EchoCharacter = '*'
	input.Focus()

	return &ShellModel{
		ctx:     ctx,
		shell:   sh,
		print:   func(text string) tea.Cmd { return tea.Println(text) },
		now:     time.Now,
		input:   input,
		history: history,
		histIdx: -1,
	}
}

// Init implements [tea.Model]. Runs the shell startup sequence and starts the
// prompt clock.
func (m *ShellModel) Init() tea.Cmd {
	m.clock = m.now()

	return tea.Batch(
		textinput.Blink,
		tick(),
		m.run(m.shell.Startup),
	)
}

// Update implements [tea.Model].
func (m *ShellModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.clock = time.Time(msg)
		return m, tick()
	case replyMsg:
		return m, m.handleReply(msg.reply)
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *ShellModel) View() string {
	if m.quitting {
		return ""
	}
	if m.busy {
		return m.pending
	}
	return m.prompt() + m.input.View()
}

func (m *ShellModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.interrupt):
		return m.interrupt()
	case m.busy:
		return nil
	case key.Matches(msg, keys.eof):
		if m.input.Value() != "" || m.passwordFor != "" {
			return nil
		}
		m.quitting = true
		return tea.Quit
	case key.Matches(msg, keys.cancel):
		if m.passwordFor != "" {
			m.leavePasswordMode()
			return m.print(passwordPrompt + interruptMark)
		}
		return nil
	case key.Matches(msg, keys.submit):
		return m.submit()
	case key.Matches(msg, keys.prev):
		if m.passwordFor == "" {
			m.browse(1)
		}
		return nil
	case key.Matches(msg, keys.next):
		if m.passwordFor == "" {
			m.browse(-1)
		}
		return nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

// interrupt abandons the current line, or the call in flight.
func (m *ShellModel) interrupt() tea.Cmd {
	if m.busy {
		if m.cancel != nil {
			m.cancel()
		}
		return nil
	}

	typed := m.input.Value()
	if m.passwordFor != "" {
		typed = ""
	}
	line := m.prompt() + typed + interruptMark
	m.input.Reset()
	m.leavePasswordMode()
	m.histIdx = -1
	m.draft = ""
	return m.print(line)
}

func (m *ShellModel) submit() tea.Cmd {
	value := m.input.Value()
	m.input.Reset()
	m.histIdx = -1
	m.draft = ""

	if m.passwordFor != "" {
		username := m.passwordFor
		m.pending = passwordPrompt
		m.leavePasswordMode()
		return m.run(func(ctx context.Context) shell.Reply {
			return m.shell.SubmitPassword(ctx, username, value)
		})
	}

	m.pending = m.prompt() + value
	if strings.TrimSpace(value) != "" {
		m.history.Add(value)
	}
	return m.run(func(ctx context.Context) shell.Reply {
		return m.shell.Execute(ctx, value)
	})
}

func (m *ShellModel) run(call func(ctx context.Context) shell.Reply) tea.Cmd {
	ctx, cancel := context.WithCancel(m.ctx)
	m.busy = true
	m.cancel = cancel

	return func() tea.Msg {
		defer cancel()
		return replyMsg{reply: call(ctx)}
	}
}

func (m *ShellModel) handleReply(reply shell.Reply) tea.Cmd {
	m.busy = false
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}

	var out []string
	if m.pending != "" {
		out = append(out, m.pending)
	}
	m.pending = ""
	out = append(out, reply.Lines...)

	if reply.PasswordFor != "" {
		m.enterPasswordMode(reply.PasswordFor)
	}

	switch {
	case reply.Quit:
		m.quitting = true
		if len(out) == 0 {
			return tea.Quit
		}
		return tea.Sequence(m.print(strings.Join(out, "\n")), tea.Quit)
	case reply.Clear:
		return tea.ClearScreen
	case len(out) == 0:
		return nil
	default:
		return m.print(strings.Join(out, "\n"))
	}
}

func (m *ShellModel) browse(step int) {
	idx := m.histIdx + step
	if idx < -1 || idx >= m.history.Len() {
		return
	}

	if m.histIdx == -1 {
		m.draft = m.input.Value()
	}
	m.histIdx = idx

	if idx == -1 {
		m.input.SetValue(m.draft)
	} else {
		m.input.SetValue(m.history.Get(idx))
	}
	m.input.CursorEnd()
}

func (m *ShellModel) enterPasswordMode(username string) {
	m.passwordFor = username
	m.input.EchoMode = textinput.EchoPassword
}

func (m *ShellModel) leavePasswordMode() {
	m.passwordFor = ""
	m.input.EchoMode = textinput.EchoNormal
}

func (m *ShellModel) prompt() string {
	if m.passwordFor != "" {
		return passwordPrompt
	}
	return m.shell.Prompt(m.clock)
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
