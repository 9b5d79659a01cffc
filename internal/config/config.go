// Package config defines the format-agnostic configuration model for a
// menulint run, along with the Loader interface implemented by
// format-specific packages such as hclconfig.
package config

import (
	"context"
	"fmt"
	"time"
)

// defaultURLFormat is the challenge endpoint template; the id selects which
// of the published datasets to fetch.
const defaultURLFormat = "https://backend-challenge-summer-2018.herokuapp.com/challenges.json?id=%d"

// OrphanPolicy decides what happens to nodes that are neither roots nor
// reachable from any root (subgraphs hanging off a dangling parent
// reference).
type OrphanPolicy string

const (
	// OrphanIgnore drops orphaned nodes from the result entirely. This
	// matches the behavior of the original challenge output.
	OrphanIgnore OrphanPolicy = "ignore"
	// OrphanReport lists orphaned node ids separately in the result.
	OrphanReport OrphanPolicy = "report"
)

// Model is the unified configuration for one run, after flags and an
// optional config file have been merged.
type Model struct {
	// SourceURL overrides the default challenge endpoint entirely.
	SourceURL string
	// ChallengeID selects the dataset when SourceURL is empty. Zero means 1.
	ChallengeID int
	// MaxDepth is the inclusive depth limit for the depth rule. Zero means
	// the classifier default (4).
	MaxDepth int
	// Orphans is the orphaned-subgraph policy. Empty means OrphanIgnore.
	Orphans OrphanPolicy
	// Timeout bounds each page request. Zero means 30s.
	Timeout time.Duration
}

// Loader is the interface for a format-specific configuration file loader.
type Loader interface {
	// Load reads a configuration file and translates it into the
	// format-agnostic model.
	Load(ctx context.Context, path string) (*Model, error)
}

// ApplyDefaults fills in every unset field with its default value.
func (m *Model) ApplyDefaults() {
	if m.ChallengeID == 0 {
		m.ChallengeID = 1
	}
	if m.Orphans == "" {
		m.Orphans = OrphanIgnore
	}
	if m.Timeout == 0 {
		m.Timeout = 30 * time.Second
	}
}

// Validate checks the model for values no run could make sense of.
func (m *Model) Validate() error {
	if m.MaxDepth < 0 {
		return fmt.Errorf("max depth must not be negative, got %d", m.MaxDepth)
	}
	if m.ChallengeID < 0 {
		return fmt.Errorf("challenge id must not be negative, got %d", m.ChallengeID)
	}
	switch m.Orphans {
	case "", OrphanIgnore, OrphanReport:
	default:
		return fmt.Errorf("invalid orphan policy %q: must be %q or %q", m.Orphans, OrphanIgnore, OrphanReport)
	}
	return nil
}

// ResolveURL returns the effective source URL: the explicit override when
// present, otherwise the challenge endpoint for the configured id. The
// default source is an explicit configuration value, never process-wide
// state.
func (m *Model) ResolveURL() string {
	if m.SourceURL != "" {
		return m.SourceURL
	}
	return fmt.Sprintf(defaultURLFormat, m.ChallengeID)
}
