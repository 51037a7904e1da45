// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the adventure client application runtime.
//
// It decides how the shell is driven: by the interactive terminal UI when
// both stdin and stdout are terminals, or by a plain line loop otherwise, so
// the client can be scripted through a pipe.
package client
