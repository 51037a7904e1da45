package shell

import "github.com/atotto/clipboard"

// SystemClipboard is the [Clipboard] backed by the OS clipboard.
type SystemClipboard struct{}

func (SystemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}
