package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/adventure-client/internal/config"
	"github.com/MKhiriev/adventure-client/internal/logger"
	"github.com/MKhiriev/adventure-client/internal/utils"
	"github.com/MKhiriev/adventure-client/models"
	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

const (
	traceIDHeader = "X-Trace-ID"

	invalidResponsePrefix = "Exception getting response: "
)

type httpGameAdapter struct {
	client   *utils.HTTPClient
	traceIDs *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHTTPGameAdapter constructs the HTTP implementation of [GameAdapter].
// It normalises and validates gameCfg.URL and configures the underlying HTTP
// client with the resolved base URL and request timeout. Every request is
// tagged with an X-Trace-ID header and logged at debug level.
//
// Returns an error if gameCfg.URL is empty or cannot be parsed as a valid URL.
func NewHTTPGameAdapter(gameCfg config.Game, logger *logger.Logger) (GameAdapter, error) {
	baseURL, err := normalizeBaseURL(gameCfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid game url: %w", err)
	}

	h := &httpGameAdapter{
		client:   utils.NewHTTPClient(baseURL, gameCfg.RequestTimeout),
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger,
	}
	h.client.
		OnBeforeRequest(h.tagRequest).
		OnAfterResponse(h.logResponse).
		OnError(h.logError)

	return h, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Login implements [GameAdapter]. It first GETs / so the server can set its
// session cookies, then POSTs the form fields username and password to
// /login, following redirects. The text content of the landing page body is
// returned.
func (h *httpGameAdapter) Login(ctx context.Context, creds models.Credentials) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/")
	if err != nil {
		return "", fmt.Errorf("open session request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", fmt.Errorf("open session: %w", err)
	}

	resp, err = h.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"username": creds.Username,
			"password": creds.Password,
		}).
		Post("/login")
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	text, err := extractBodyText(bytes.NewReader(resp.Body()))
	if err != nil {
		return "", fmt.Errorf("read login page: %w", err)
	}

	return text, nil
}

// Logout implements [GameAdapter]. It GETs /logout.
func (h *httpGameAdapter) Logout(ctx context.Context) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}

	return mapHTTPError(resp)
}

// Command implements [GameAdapter]. It POSTs the form field command to
// /command and decodes the JSON answer whatever the status code. An
// undecodable answer becomes an unsuccessful result carrying the raw body.
func (h *httpGameAdapter) Command(ctx context.Context, command string) (models.CommandResult, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{"command": command}).
		Post("/command")
	if err != nil {
		return models.CommandResult{}, fmt.Errorf("command request: %w", err)
	}

	var result models.CommandResult
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		h.logger.Warn().Err(err).Int("status", resp.StatusCode()).Msg("undecodable command response")

		output := invalidResponsePrefix + string(resp.Body())
		return models.CommandResult{Success: false, Output: &output}, nil
	}

	return result, nil
}

// tagRequest stamps the request with a trace id and attaches a child logger
// carrying that id to the request context.
func (h *httpGameAdapter) tagRequest(_ *resty.Client, req *resty.Request) error {
	traceID := h.traceIDs.Generate()
	req.SetHeader(traceIDHeader, traceID)

	reqLogger := h.logger.GetChildLogger()
	reqLogger.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", traceID)
	})
	req.SetContext(reqLogger.WithContext(req.Context()))
	return nil
}

func (h *httpGameAdapter) logResponse(_ *resty.Client, resp *resty.Response) error {
	logger.FromContext(resp.Request.Context()).Debug().
		Str("method", resp.Request.Method).
		Str("url", resp.Request.URL).
		Int("status", resp.StatusCode()).
		Dur("elapsed", resp.Time()).
		Msg("game request")
	return nil
}

func (h *httpGameAdapter) logError(req *resty.Request, err error) {
	logger.FromContext(req.Context()).Error().
		Err(err).
		Str("method", req.Method).
		Str("url", req.URL).
		Msg("game request failed")
}
