package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/menulint/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("menulint", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
menulint - fetches a paginated menu dataset and validates its tree structure.

Usage:
  menulint [options] [URL]

Arguments:
  URL
    Source endpoint for the paginated menu dataset. Defaults to the
    challenge endpoint selected by -challenge-id.

Options:
`)
		flagSet.PrintDefaults()
	}

	urlFlag := flagSet.String("url", "", "Source endpoint for the menu dataset.")
	uFlag := flagSet.String("u", "", "Source endpoint for the menu dataset (shorthand).")
	configFlag := flagSet.String("config", "", "Path to an optional HCL configuration file.")
	challengeIDFlag := flagSet.Int("challenge-id", 0, "Challenge dataset id used when no URL is given. Defaults to 1.")
	maxDepthFlag := flagSet.Int("max-depth", 0, "Maximum allowed branch depth. Defaults to 4.")
	orphansFlag := flagSet.String("orphans", "", "Orphaned-node policy. Options: 'ignore' or 'report'. Defaults to 'ignore'.")
	timeoutFlag := flagSet.Duration("timeout", 0, "Per-request timeout. Defaults to 30s.")
	prettyFlag := flagSet.Bool("pretty", false, "Indent the JSON output.")
	healthPortFlag := flagSet.Int("healthcheck-port", 0, "Port for the HTTP health check server. 0 is disabled.")
	logFormatFlag := flagSet.String("log-format", "json", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	url := ""
	if *urlFlag != "" {
		url = *urlFlag
	} else if *uFlag != "" {
		url = *uFlag
	} else if flagSet.NArg() > 0 {
		url = flagSet.Arg(0)
	}
	slog.Debug("Source URL determined.", "url", url)

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	orphans := strings.ToLower(*orphansFlag)
	switch orphans {
	case "", "ignore", "report":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid orphans policy: must be 'ignore' or 'report'"}
	}

	if *timeoutFlag < 0 {
		return nil, false, &ExitError{Code: 2, Message: "invalid timeout: must not be negative"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		SourceURL:       url,
		ConfigPath:      *configFlag,
		ChallengeID:     *challengeIDFlag,
		MaxDepth:        *maxDepthFlag,
		Orphans:         orphans,
		Timeout:         *timeoutFlag,
		LogFormat:       logFormat,
		LogLevel:        logLevel,
		HealthcheckPort: *healthPortFlag,
		Pretty:          *prettyFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.")
	return config, false, nil
}
