package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"
)

// usageOutput receives the flag usage printed for -h.
var usageOutput io.Writer = os.Stderr

// parseFlags parses the client command-line flags from args.
//
// Flags:
//
//	-u/-url game base URL
//	-timeout request timeout (e.g., "15s", "1m")
//	-user username for autologin
//	-autologin log in right after startup
//	-log log file path
//	-log-level log level (debug, info, warn, error)
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	var gameURL string
	var requestTimeout time.Duration
	var username string
	var autologin bool
	var logPath string
	var logLevel string
	var jsonConfigPath string

	fs := flag.NewFlagSet("adventure-client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&gameURL, "u", "", "Game base URL")
	fs.StringVar(&gameURL, "url", "", "Game base URL (alias)")
	fs.DurationVar(&requestTimeout, "timeout", 0, "Request timeout (e.g., 15s, 1m)")
	fs.StringVar(&username, "user", "", "Username for autologin")
	fs.BoolVar(&autologin, "autologin", false, "Log in right after startup")
	fs.StringVar(&logPath, "log", "", "Log file path")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(usageOutput)
			fmt.Fprintf(usageOutput, "Usage of %s:\n", fs.Name())
			fs.PrintDefaults()
		}
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Game: Game{
			URL:            gameURL,
			RequestTimeout: requestTimeout,
		},
		Account: Account{
			Username:  username,
			Autologin: autologin,
		},
		Log: Log{
			Path:  logPath,
			Level: logLevel,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
