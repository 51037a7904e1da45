// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package render turns raw game text into what the terminal shows.
//
// The game marks level transitions with banner lines such as
//
//	#### YOU ARE NOW PLAYING LEVEL 3 ####
//
// and echoes in-game prompts on lines starting with "$". [Renderer.Format]
// highlights both kinds of line; [DetectLevel] extracts the announced level.
// Styling goes through a lipgloss renderer so the colour profile follows the
// output terminal, and tests can force one.
package render
