package service

import (
	"context"

	"github.com/MKhiriev/adventure-client/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/game_service_mock.go -package=mock

// GameService defines the client-side contract for a game session. It wraps
// the transport adapter and owns the client-side session state (logged-in
// flag and current level) that the shell prompt displays.
//
// Implementations must be safe for concurrent use: the terminal UI reads the
// session while server calls run in the background.
type GameService interface {
	// Login authenticates against the game and returns the opening narration.
	// Returns ErrEmptyUsername or ErrEmptyPassword before any network call
	// when a credential is blank.
	Login(ctx context.Context, creds models.Credentials) (string, error)

	// Logout ends the session on the server. The local session is cleared
	// even when the server call fails; the error is still returned.
	Logout(ctx context.Context) error

	// Command forwards one game command. Returns ErrNotLoggedIn when no
	// session is open.
	Command(ctx context.Context, command string) (models.CommandResult, error)

	// ObserveOutput scans server text for level announcements and updates
	// the current level accordingly.
	ObserveOutput(text string)

	// Session returns a snapshot of the session state.
	Session() models.Session
}
