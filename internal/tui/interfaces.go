package tui

import (
	"context"
	"time"

	"github.com/MKhiriev/adventure-client/internal/shell"
)

// Shell is the command loop driven by the terminal UI. It is satisfied by
// *shell.Shell.
type Shell interface {
	Startup(ctx context.Context) shell.Reply
	Execute(ctx context.Context, line string) shell.Reply
	SubmitPassword(ctx context.Context, username, password string) shell.Reply
	Prompt(now time.Time) string
}
