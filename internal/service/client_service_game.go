package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/adventure-client/internal/adapter"
	"github.com/MKhiriev/adventure-client/internal/logger"
	"github.com/MKhiriev/adventure-client/internal/render"
	"github.com/MKhiriev/adventure-client/internal/validators"
	"github.com/MKhiriev/adventure-client/models"
)

type clientGameService struct {
	adapter   adapter.GameAdapter
	validator validators.Validator
	logger    *logger.Logger

	mu       sync.RWMutex
	loggedIn bool
	level    string
}

func NewClientGameService(gameAdapter adapter.GameAdapter, logger *logger.Logger) GameService {
	return &clientGameService{
		adapter:   gameAdapter,
		validator: validators.NewGameInputValidator(),
		logger:    logger,
		level:     models.InitialLevel,
	}
}

func (g *clientGameService) Login(ctx context.Context, creds models.Credentials) (string, error) {
	creds.Username = strings.TrimSpace(creds.Username)
	if err := g.validator.Validate(ctx, creds); err != nil {
		return "", err
	}

	text, err := g.adapter.Login(ctx, creds)
	if err != nil {
		g.logger.Error().Err(err).Str("username", creds.Username).Msg("login failed")
		return "", fmt.Errorf("%w: %w", ErrLoginOnServer, err)
	}

	g.mu.Lock()
	g.loggedIn = true
	g.level = models.InitialLevel
	g.mu.Unlock()

	g.logger.Info().Str("username", creds.Username).Msg("logged in")
	return text, nil
}

func (g *clientGameService) Logout(ctx context.Context) error {
	g.mu.Lock()
	g.loggedIn = false
	g.level = models.InitialLevel
	g.mu.Unlock()

	if err := g.adapter.Logout(ctx); err != nil {
		g.logger.Error().Err(err).Msg("logout failed")
		return fmt.Errorf("logout: %w", err)
	}

	g.logger.Info().Msg("logged out")
	return nil
}

func (g *clientGameService) Command(ctx context.Context, command string) (models.CommandResult, error) {
	g.mu.RLock()
	loggedIn := g.loggedIn
	g.mu.RUnlock()

	if !loggedIn {
		return models.CommandResult{}, ErrNotLoggedIn
	}
	if err := g.validator.Validate(ctx, command); err != nil {
		return models.CommandResult{}, err
	}

	result, err := g.adapter.Command(ctx, command)
	if err != nil {
		return models.CommandResult{}, fmt.Errorf("%w: %w", ErrCommandOnServer, err)
	}

	return result, nil
}

func (g *clientGameService) ObserveOutput(text string) {
	level, ok := render.DetectLevel(text)
	if !ok {
		return
	}

	g.mu.Lock()
	changed := g.level != level
	g.level = level
	g.mu.Unlock()

	if changed {
		g.logger.Info().Str("level", level).Msg("level changed")
	}
}

func (g *clientGameService) Session() models.Session {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return models.Session{LoggedIn: g.loggedIn, Level: g.level}
}
