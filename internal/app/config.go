package app

import "time"

// Config holds everything the CLI layer resolved from flags. Zero values
// mean "not set"; file values and defaults fill them in inside NewApp.
type Config struct {
	SourceURL   string
	ConfigPath  string
	ChallengeID int
	MaxDepth    int
	Orphans     string
	Timeout     time.Duration

	LogFormat       string
	LogLevel        string
	HealthcheckPort int
	Pretty          bool
}

// NewConfig validates the flag-level configuration.
func NewConfig(cfg Config) (*Config, error) {
	// Everything here is optional: with no flags at all the run falls back
	// to the default challenge endpoint. Cross-field validation happens on
	// the merged config.Model inside NewApp.
	return &cfg, nil
}
