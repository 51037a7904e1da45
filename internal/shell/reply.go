package shell

// Reply is what the front end must do after a line was executed.
type Reply struct {
	// Lines are rendered and ready to print, in order.
	Lines []string
	// Quit asks the front end to leave the loop.
	Quit bool
	// Clear asks the front end to clear the screen.
	Clear bool
	// PasswordFor is set when the next input must be read as the password
	// of this username and handed to [Shell.SubmitPassword].
	PasswordFor string
}

func (r *Reply) add(lines ...string) {
	r.Lines = append(r.Lines, lines...)
}
