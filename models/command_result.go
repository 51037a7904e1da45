// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CommandResult is the JSON document returned by the game command endpoint.
//
// Output is nil when the server omitted the "output" key, which is distinct
// from an empty output string.
type CommandResult struct {
	Success bool    `json:"success"`
	Output  *string `json:"output,omitempty"`
}

// HasOutput reports whether the server sent an output value.
func (r CommandResult) HasOutput() bool {
	return r.Output != nil
}

// OutputText returns the output value or an empty string when absent.
func (r CommandResult) OutputText() string {
	if r.Output == nil {
		return ""
	}
	return *r.Output
}
