package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	submit    key.Binding
	cancel    key.Binding
	interrupt key.Binding
	eof       key.Binding
	prev      key.Binding
	next      key.Binding
}

var keys = keyMap{
	submit:    key.NewBinding(key.WithKeys("enter")),
	cancel:    key.NewBinding(key.WithKeys("esc")),
	interrupt: key.NewBinding(key.WithKeys("ctrl+c")),
	eof:       key.NewBinding(key.WithKeys("ctrl+d")),
	prev:      key.NewBinding(key.WithKeys("up", "ctrl+p")),
	next:      key.NewBinding(key.WithKeys("down", "ctrl+n")),
}
