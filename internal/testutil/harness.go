// Package testutil provides shared helpers for integration-style tests: a
// canned paginated dataset server and a harness that runs the full
// application against it.
package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/vk/menulint/internal/app"
	"github.com/vk/menulint/internal/hclconfig"
	"github.com/vk/menulint/internal/menu"
)

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	Stdout    string
	LogOutput string
	Err       error
	App       *app.App
}

// ServePages starts an httptest server that mimics the challenge endpoint:
// each slice is one page of menus, requested via the `page` query
// parameter, and any page beyond the provided ones is empty. The server is
// shut down automatically at test cleanup.
func ServePages(t *testing.T, pages ...[]menu.Node) *httptest.Server {
	t.Helper()

	total := 0
	for _, p := range pages {
		total += len(p)
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pageNum, err := strconv.Atoi(r.URL.Query().Get("page"))
		if err != nil {
			pageNum = 1
		}

		menus := []menu.Node{}
		if pageNum >= 1 && pageNum <= len(pages) {
			menus = pages[pageNum-1]
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"menus": menus,
			"pagination": map[string]int{
				"current_page": pageNum,
				"per_page":     5,
				"total":        total,
			},
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

// RunApp provides a standardized harness for running the full application
// with a default background context.
func RunApp(t *testing.T, cfg *app.Config) *HarnessResult {
	t.Helper()
	return RunAppWithContext(context.Background(), t, cfg)
}

// RunAppWithContext runs the full application with the caller's context,
// capturing rendered output and logs.
func RunAppWithContext(ctx context.Context, t *testing.T, cfg *app.Config) *HarnessResult {
	t.Helper()

	if cfg.LogLevel == "" {
		cfg.LogLevel = "debug"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}

	logBuf := &SafeBuffer{}
	outBuf := &bytes.Buffer{}

	a, err := app.NewApp(outBuf, logBuf, cfg, hclconfig.NewLoader())
	if err != nil {
		return &HarnessResult{LogOutput: logBuf.String(), Err: err}
	}

	err = a.Run(ctx)
	return &HarnessResult{
		Stdout:    outBuf.String(),
		LogOutput: logBuf.String(),
		Err:       err,
		App:       a,
	}
}
