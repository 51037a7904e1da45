package models

// InitialLevel is the level shown before the server announces one.
const InitialLevel = "0"

// Session is a snapshot of the client-side game session state. It exists only
// to drive the prompt; the server remains the source of truth.
type Session struct {
	LoggedIn bool
	Level    string
}
