package main

import (
	"context"
	"errors"
	"flag"
	"os"

	"github.com/MKhiriev/adventure-client/internal/adapter"
	"github.com/MKhiriev/adventure-client/internal/client"
	"github.com/MKhiriev/adventure-client/internal/config"
	"github.com/MKhiriev/adventure-client/internal/logger"
	"github.com/MKhiriev/adventure-client/internal/render"
	"github.com/MKhiriev/adventure-client/internal/service"
	"github.com/MKhiriev/adventure-client/internal/shell"
	"github.com/MKhiriev/adventure-client/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const role = "adventure-client"

func main() {
	// stderr only until the log file is open
	bootLog := logger.New(zerolog.ConsoleWriter{Out: os.Stderr}, role, zerolog.InfoLevel)

	cfg, err := config.GetClientConfig(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		bootLog.Fatal().Err(err).Msg("error getting configs")
	}

	log, err := logger.NewClientLogger(role, cfg.Log.Path, cfg.Log.Level)
	if err != nil {
		bootLog.Fatal().Err(err).Msg("error opening log file")
	}
	defer log.Close()

	if err = run(cfg, log); err != nil {
		log.Error().Err(err).Msg("client run error")
		bootLog.Error().Err(err).Msg("client run error")
		log.Close()
		os.Exit(1)
	}
}

func run(cfg *config.StructuredConfig, log *logger.Logger) error {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	log.Info().
		Str("version", buildInfo.BuildVersion()).
		Str("commit", buildInfo.BuildCommit()).
		Str("url", cfg.Game.URL).
		Msg("client starting")

	gameAdapter, err := adapter.NewHTTPGameAdapter(cfg.Game, log)
	if err != nil {
		return err
	}

	services := service.NewClientServices(gameAdapter, log)
	sh := shell.New(
		services.GameService,
		render.New(lipgloss.DefaultRenderer()),
		cfg.Account,
		shell.SystemClipboard{},
		buildInfo,
		log,
	)

	return client.NewApp(sh, log).Run(context.Background())
}
