package models

// Credentials is the username/password pair sent to the game login form.
type Credentials struct {
	Username string
	Password string
}
