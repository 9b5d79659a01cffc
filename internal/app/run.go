package app

import (
	"context"
	"fmt"

	"github.com/vk/menulint/internal/classify"
	"github.com/vk/menulint/internal/config"
	"github.com/vk/menulint/internal/ctxlog"
	"github.com/vk/menulint/internal/nodestore"
	"github.com/vk/menulint/internal/render"
)

// Run executes one full pass: fetch the dataset, build the node store,
// classify every root's branch, and render the partitioned result.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if a.cfg.HealthcheckPort > 0 {
		a.startHealthcheckServer(a.cfg.HealthcheckPort)
	}

	url := a.model.ResolveURL()
	a.logger.Info("Fetching menu dataset.", "url", url)
	nodes, err := a.fetcher.FetchAll(ctx, url)
	if err != nil {
		return fmt.Errorf("failed to fetch dataset: %w", err)
	}

	store := nodestore.New(ctx, nodes)
	roots := store.Roots()
	a.logger.Debug("Node store built.", "nodes", store.Len(), "roots", len(roots))
	if len(roots) == 0 {
		a.logger.Warn("No roots found in dataset; result will be empty.")
	}

	classifier := classify.New(store, classify.Options{
		MaxDepth:      a.model.MaxDepth,
		ReportOrphans: a.model.Orphans == config.OrphanReport,
	})
	result, err := classifier.Classify(ctx)
	if err != nil {
		return fmt.Errorf("classification failed: %w", err)
	}
	a.logger.Info("Classification complete.",
		"valid", len(result.Valid), "invalid", len(result.Invalid), "orphans", len(result.Orphans))

	if err := render.JSON(a.outW, result, a.cfg.Pretty); err != nil {
		return fmt.Errorf("failed to render result: %w", err)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
