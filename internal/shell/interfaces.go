package shell

//go:generate mockgen -source=interfaces.go -destination=../mock/clipboard_mock.go -package=mock

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	WriteAll(text string) error
}
