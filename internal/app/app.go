// Package app wires configuration, logging, the store adapter, and the
// services into a ready-to-use application for the CLI entry point.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/yhlin/vocabsheet/internal/adapter/cache"
	"github.com/yhlin/vocabsheet/internal/adapter/provider/datamuse"
	"github.com/yhlin/vocabsheet/internal/adapter/provider/freedict"
	"github.com/yhlin/vocabsheet/internal/adapter/provider/translate"
	"github.com/yhlin/vocabsheet/internal/adapter/sheets"
	"github.com/yhlin/vocabsheet/internal/config"
	"github.com/yhlin/vocabsheet/internal/service/enrich"
	"github.com/yhlin/vocabsheet/internal/service/vocab"
)

// App holds the assembled services for one process lifetime.
type App struct {
	Cfg    *config.Config
	Log    *slog.Logger
	Vocab  *vocab.Service
	Enrich *enrich.Service

	cache *cache.Store
}

// New loads configuration and builds the full service graph, connecting
// to the spreadsheet once. Call Close when done.
func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := NewLogger(cfg.Log)
	logger.Debug("starting", slog.String("version", BuildVersion()))

	store, err := sheets.New(ctx, cfg.Sheet, logger)
	if err != nil {
		return nil, fmt.Errorf("connect store: %w", err)
	}

	a := &App{
		Cfg:   cfg,
		Log:   logger,
		Vocab: vocab.NewService(logger, store, cfg.Review),
	}

	dict := freedict.NewProvider(cfg.Enrich.DictionaryBaseURL, cfg.Enrich.Timeout, logger)
	syn := datamuse.NewProvider(cfg.Enrich.DatamuseBaseURL, cfg.Enrich.MaxSynonyms, cfg.Enrich.Timeout, logger)

	var payloads *cache.Store
	if cfg.Enrich.CacheEnabled {
		payloads, err = cache.Open(cfg.Enrich.CachePath)
		if err != nil {
			return nil, fmt.Errorf("open enrich cache: %w", err)
		}
		a.cache = payloads
	}

	if payloads != nil {
		a.Enrich = enrich.NewService(logger, dict, syn, translate.NewStub(), payloads)
	} else {
		a.Enrich = enrich.NewService(logger, dict, syn, translate.NewStub(), nil)
	}

	return a, nil
}

// Close releases resources held by the app.
func (a *App) Close() error {
	if a.cache != nil {
		return a.cache.Close()
	}
	return nil
}
