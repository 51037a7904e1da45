// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer used to talk to the remote
// adventure game.
//
// The primary abstraction is [GameAdapter], which decouples the service layer
// from HTTP. The package ships an HTTP implementation
// ([NewHTTPGameAdapter]) that keeps the game session in a cookie jar for the
// lifetime of the adapter.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/adventure-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/game_adapter_mock.go -package=mock

// GameAdapter defines communication with the adventure game server.
type GameAdapter interface {
	// Login opens a game session for creds and returns the text content of
	// the page the server lands on, which holds the opening narration.
	Login(ctx context.Context, creds models.Credentials) (string, error)

	// Logout closes the current game session on the server.
	Logout(ctx context.Context) error

	// Command submits one free-text game command. A response that is not
	// valid JSON is reported inside the result, not as an error; only
	// transport failures return an error.
	Command(ctx context.Context, command string) (models.CommandResult, error)
}
