package service

import (
	"errors"

	"github.com/MKhiriev/adventure-client/internal/validators"
)

var (
	ErrEmptyUsername = validators.ErrEmptyUsername
	ErrEmptyPassword = validators.ErrEmptyPassword
	ErrEmptyCommand  = validators.ErrEmptyCommand
	ErrNotLoggedIn   = errors.New("not logged in")

	ErrLoginOnServer   = errors.New("login on server failed")
	ErrCommandOnServer = errors.New("command on server failed")
)
