package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/adventure-client/models"
)

// Field names accepted by [GameInputValidator].
const (
	FieldUsername = "username"
	FieldPassword = "password"
)

// GameInputValidator validates credentials and command lines.
type GameInputValidator struct{}

func NewGameInputValidator() Validator {
	return &GameInputValidator{}
}

// Validate accepts models.Credentials (optionally scoped to FieldUsername or
// FieldPassword) and command strings.
func (v *GameInputValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateCredentials(ctx, *value, fields...)

	case string:
		return v.validateCommand(value)

	default:
		return ErrUnsupportedType
	}
}

func (v *GameInputValidator) validateCredentials(_ context.Context, creds models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, field := range fields {
		switch field {
		case FieldUsername:
			if strings.TrimSpace(creds.Username) == "" {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if creds.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func (v *GameInputValidator) validateCommand(command string) error {
	if strings.TrimSpace(command) == "" {
		return ErrEmptyCommand
	}
	return nil
}
