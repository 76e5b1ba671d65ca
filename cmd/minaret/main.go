package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"minaret/internal/browser"
	"minaret/internal/config"
	"minaret/internal/content"
	"minaret/internal/export"
	"minaret/internal/hostcmd"
	"minaret/internal/index"
	"minaret/internal/logging"
	"minaret/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "minaret: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Parse()
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	logger, err := logging.New(logging.Config{Level: cfg.LogLevel, File: cfg.LogFile})
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	b := browser.New(browser.Options{
		HomeURL:      cfg.HomeURL,
		SearchEngine: cfg.SearchEngine,
		Bookmarks:    cfg.Bookmarks,
		Logger:       logger,
	})

	// The index only backs visit search, so a failure degrades that feature.
	idx, err := index.New()
	if err != nil {
		logger.Warn("visit index unavailable", zap.Error(err))
		idx = nil
	} else {
		defer idx.Close()
		logger.Debug("visit index ready", zap.Bool("fts5", idx.FTSEnabled()))
	}

	exp, err := export.New(cfg.ExportDir)
	if err != nil {
		return err
	}

	model := ui.NewModel(ui.Deps{
		Config:   cfg,
		Browser:  b,
		Resolver: content.NewResolver(),
		Indexer:  idx,
		Exporter: exp,
		Host:     hostcmd.Runner{},
		Logger:   logger,
	})

	logger.Info("starting", zap.String("start", cfg.Start), zap.String("home", cfg.HomeURL))
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
