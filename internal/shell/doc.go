// Package shell implements the adventure command loop independently of the
// terminal: it parses one input line, runs built-in commands or forwards the
// line to the game, and returns the rendered lines to print.
//
// The interactive terminal UI (package tui) and the headless line loop
// (package client) both drive a single *Shell.
package shell
