package shell

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/adventure-client/internal/config"
	"github.com/MKhiriev/adventure-client/internal/logger"
	"github.com/MKhiriev/adventure-client/internal/render"
	"github.com/MKhiriev/adventure-client/internal/service"
	"github.com/MKhiriev/adventure-client/models"
)

const (
	msgNotLoggedIn   = "Not logged in."
	msgLoggedOut     = "Logged out."
	msgAutoLogin     = "Auto Login"
	msgLoginUsage    = "Usage: login <username>"
	msgEmptyPassword = "Password cannot be empty"
	msgNoUsername    = "Username not configured"
	msgCommandFailed = "ERROR executing command: %s"
	msgNothingToCopy = "Nothing to copy"
	msgCopied        = "Copied to clipboard."
	msgLoginFailed   = "Login failed: %s"
)

// Shell dispatches command lines. It is safe for concurrent use, although a
// front end normally runs one line at a time.
type Shell struct {
	game      service.GameService
	render    *render.Renderer
	account   config.Account
	clipboard Clipboard
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	mu         sync.Mutex
	lastOutput string
}

// New builds a Shell. account supplies the autologin credentials.
func New(
	game service.GameService,
	renderer *render.Renderer,
	account config.Account,
	clip Clipboard,
	buildInfo models.AppBuildInfo,
	logger *logger.Logger,
) *Shell {
	return &Shell{
		game:      game,
		render:    renderer,
		account:   account,
		clipboard: clip,
		buildInfo: buildInfo,
		logger:    logger,
	}
}

// Startup prints the title and logs in automatically when configured to.
func (s *Shell) Startup(ctx context.Context) Reply {
	var r Reply
	r.add(s.render.Title())

	if s.account.Autologin {
		s.autologin(ctx, &r)
	}
	return r
}

// Prompt renders the prompt for the current session.
func (s *Shell) Prompt(now time.Time) string {
	return s.render.Prompt(now, s.game.Session())
}

// Execute runs one input line.
func (s *Shell) Execute(ctx context.Context, line string) Reply {
	s.logger.Info().Str("cmd", line).Msg("input")

	var r Reply
	line = strings.TrimSpace(line)
	if line == "" {
		return r
	}

	name, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch name {
	case "login":
		if arg == "" {
			s.echoError(&r, msgLoginUsage)
			break
		}
		r.PasswordFor = arg
	case "autologin":
		s.autologin(ctx, &r)
	case "logout":
		s.logout(ctx, &r)
	case "help", "?":
		s.command(ctx, &r, "help")
	case "clear":
		r.Clear = true
	case "copy":
		s.copyLastOutput(&r)
	case "version":
		s.echo(&r, s.buildInfo.String())
	case "quit", "exit":
		r.Quit = true
	default:
		s.command(ctx, &r, line)
	}

	return r
}

// SubmitPassword completes a login started by a reply carrying PasswordFor.
func (s *Shell) SubmitPassword(ctx context.Context, username, password string) Reply {
	var r Reply
	if password == "" {
		s.echoError(&r, msgEmptyPassword)
		return r
	}

	s.login(ctx, &r, models.Credentials{Username: username, Password: password})
	return r
}

func (s *Shell) autologin(ctx context.Context, r *Reply) {
	switch {
	case s.account.Username != "" && s.account.Password != "":
		s.login(ctx, r, models.Credentials{
			Username: s.account.Username,
			Password: s.account.Password,
		})
	case s.account.Username != "":
		s.echo(r, msgAutoLogin)
		r.PasswordFor = s.account.Username
	default:
		s.echoError(r, msgNoUsername)
	}
}

func (s *Shell) login(ctx context.Context, r *Reply, creds models.Credentials) {
	initial, err := s.game.Login(ctx, creds)
	if err != nil {
		s.echoError(r, fmt.Sprintf(msgLoginFailed, humanizeError(err)))
		return
	}

	s.echoServer(r, initial)
}

func (s *Shell) logout(ctx context.Context, r *Reply) {
	if err := s.game.Logout(ctx); err != nil {
		s.echoError(r, humanizeError(err))
		return
	}
	s.echo(r, msgLoggedOut)
}

func (s *Shell) command(ctx context.Context, r *Reply, line string) {
	if !s.game.Session().LoggedIn {
		s.echo(r, msgNotLoggedIn)
		return
	}

	result, err := s.game.Command(ctx, line)
	if errors.Is(err, service.ErrNotLoggedIn) {
		s.echo(r, msgNotLoggedIn)
		return
	}
	if err != nil {
		s.logger.Error().Err(err).Str("cmd", line).Msg("command failed")
		s.echoError(r, fmt.Sprintf(msgCommandFailed, line))
		s.echoError(r, humanizeError(err))
		return
	}

	if !result.Success {
		s.echoError(r, fmt.Sprintf(msgCommandFailed, line))
	}
	if result.HasOutput() {
		s.echoServer(r, result.OutputText())
	}
}

func (s *Shell) copyLastOutput(r *Reply) {
	s.mu.Lock()
	text := s.lastOutput
	s.mu.Unlock()

	if text == "" {
		s.echoError(r, msgNothingToCopy)
		return
	}
	if err := s.clipboard.WriteAll(text); err != nil {
		s.logger.Error().Err(err).Msg("clipboard write failed")
		s.echoError(r, err.Error())
		return
	}
	s.echo(r, msgCopied)
}

// echoServer prints text received from the game and remembers it for copy.
func (s *Shell) echoServer(r *Reply, text string) {
	s.game.ObserveOutput(text)

	s.mu.Lock()
	s.lastOutput = text
	s.mu.Unlock()

	s.echo(r, text)
}

func (s *Shell) echo(r *Reply, text string) {
	s.logger.Info().Str("output", text).Msg("echo")
	r.add(s.render.Format(text))
}

func (s *Shell) echoError(r *Reply, text string) {
	s.logger.Info().Str("output", text).Msg("echo")
	r.add(s.render.Error(text))
}
