package tui

import (
	"time"

	"github.com/MKhiriev/adventure-client/internal/shell"
)

// replyMsg carries the outcome of a shell call back into the update loop.
type replyMsg struct {
	reply shell.Reply
}

type tickMsg time.Time
