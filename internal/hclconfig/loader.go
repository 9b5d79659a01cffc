// Package hclconfig is the HCL implementation of the config.Loader
// interface. Config files may reference process environment variables
// through an `env` object, e.g.:
//
//	source {
//	  url = env.MENULINT_URL
//	}
package hclconfig

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/menulint/internal/config"
	"github.com/vk/menulint/internal/ctxlog"
)

// Loader parses menulint HCL configuration files.
type Loader struct{}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// fileRoot decodes the top-level blocks of a config file.
type fileRoot struct {
	Source *sourceBlock `hcl:"source,block"`
	Rules  *rulesBlock  `hcl:"rules,block"`
	Remain hcl.Body     `hcl:",remain"`
}

type sourceBlock struct {
	URL         string `hcl:"url,optional"`
	ChallengeID int    `hcl:"challenge_id,optional"`
	Timeout     string `hcl:"timeout,optional"`
}

type rulesBlock struct {
	MaxDepth int    `hcl:"max_depth,optional"`
	Orphans  string `hcl:"orphans,optional"`
}

// Load reads and decodes one HCL config file into the format-agnostic model.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, diags)
	}

	var root fileRoot
	diags = gohcl.DecodeBody(hclFile.Body, evalContext(), &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, diags)
	}

	model := &config.Model{}
	if root.Source != nil {
		model.SourceURL = root.Source.URL
		model.ChallengeID = root.Source.ChallengeID
		if root.Source.Timeout != "" {
			timeout, err := time.ParseDuration(root.Source.Timeout)
			if err != nil {
				return nil, fmt.Errorf("invalid timeout in %s: %w", path, err)
			}
			model.Timeout = timeout
		}
	}
	if root.Rules != nil {
		model.MaxDepth = root.Rules.MaxDepth
		model.Orphans = config.OrphanPolicy(root.Rules.Orphans)
	}

	logger.Debug("Config file loaded.", "path", path)
	return model, nil
}

// evalContext exposes the process environment to config expressions as a
// single `env` object value.
func evalContext() *hcl.EvalContext {
	vars := make(map[string]cty.Value)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok && k != "" {
			vars[k] = cty.StringVal(v)
		}
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(vars),
		},
	}
}
