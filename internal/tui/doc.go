// Package tui is the interactive terminal front end of the adventure shell.
//
// It runs an inline Bubble Tea program: finished output is printed above a
// single editable prompt line, so the terminal scrollback reads like a
// classic line-oriented shell.
package tui
