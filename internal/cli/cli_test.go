package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	cfg, shouldExit, err := Parse(nil, out)
	require.NoError(t, err)
	require.False(t, shouldExit)
	require.NotNil(t, cfg)

	// Everything is optional: an empty invocation runs against the default
	// challenge endpoint.
	assert.Empty(t, cfg.SourceURL)
	assert.Zero(t, cfg.ChallengeID)
	assert.Zero(t, cfg.MaxDepth)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.Pretty)
}

func TestParse_URLSources(t *testing.T) {
	t.Parallel()

	t.Run("positional argument", func(t *testing.T) {
		t.Parallel()
		cfg, _, err := Parse([]string{"http://example.com/a.json"}, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Equal(t, "http://example.com/a.json", cfg.SourceURL)
	})

	t.Run("url flag wins over positional", func(t *testing.T) {
		t.Parallel()
		cfg, _, err := Parse([]string{"-url", "http://flag.example.com", "http://arg.example.com"}, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Equal(t, "http://flag.example.com", cfg.SourceURL)
	})

	t.Run("shorthand flag", func(t *testing.T) {
		t.Parallel()
		cfg, _, err := Parse([]string{"-u", "http://short.example.com"}, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Equal(t, "http://short.example.com", cfg.SourceURL)
	})
}

func TestParse_AllOptions(t *testing.T) {
	t.Parallel()

	cfg, _, err := Parse([]string{
		"-challenge-id", "2",
		"-max-depth", "6",
		"-orphans", "report",
		"-timeout", "10s",
		"-pretty",
		"-config", "menulint.hcl",
		"-log-format", "text",
		"-log-level", "debug",
		"-healthcheck-port", "8081",
	}, &bytes.Buffer{})
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.ChallengeID)
	assert.Equal(t, 6, cfg.MaxDepth)
	assert.Equal(t, "report", cfg.Orphans)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.True(t, cfg.Pretty)
	assert.Equal(t, "menulint.hcl", cfg.ConfigPath)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 8081, cfg.HealthcheckPort)
}

func TestParse_Help(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	_, shouldExit, err := Parse([]string{"-h"}, out)
	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Contains(t, out.String(), "Usage:")
}

func TestParse_InvalidValues(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		args []string
		want string
	}{
		{"bad log format", []string{"-log-format", "xml"}, "invalid log-format"},
		{"bad log level", []string{"-log-level", "loud"}, "invalid log-level"},
		{"bad orphans policy", []string{"-orphans", "discard"}, "invalid orphans policy"},
		{"negative timeout", []string{"-timeout", "-5s"}, "invalid timeout"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, _, err := Parse(tc.args, &bytes.Buffer{})
			require.Error(t, err)

			exitErr, ok := err.(*ExitError)
			require.True(t, ok, "expected an ExitError, got %T", err)
			assert.Equal(t, 2, exitErr.Code)
			assert.Contains(t, exitErr.Message, tc.want)
		})
	}
}

func TestParse_UnknownFlag(t *testing.T) {
	t.Parallel()

	_, _, err := Parse([]string{"--this-is-not-a-valid-flag"}, &bytes.Buffer{})
	require.Error(t, err)

	exitErr, ok := err.(*ExitError)
	require.True(t, ok)
	assert.Equal(t, 2, exitErr.Code)
}
