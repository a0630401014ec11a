package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/murkotick/product-catalog-manager/internal/app/config"
	"github.com/murkotick/product-catalog-manager/internal/app/product/engine"
	"github.com/murkotick/product-catalog-manager/internal/app/product/repo"
	"github.com/murkotick/product-catalog-manager/internal/pkg/logging"
	cliproduct "github.com/murkotick/product-catalog-manager/internal/transport/cli/product"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("catalog", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	file := fs.String("file", "", "catalog file (overrides CATALOG_FILE)")
	fs.Usage = func() { fmt.Fprint(os.Stderr, cliproduct.Usage) }
	if err := fs.Parse(args); err != nil {
		return cliproduct.ExitUsage
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "catalog: config: %v\n", err)
		return cliproduct.ExitUsage
	}
	if *file != "" {
		cfg.CatalogFile = *file
	}

	logger, err := logging.New(logging.Options{
		Production: cfg.IsProduction(),
		Level:      cfg.LogLevel,
		File:       cfg.LogFile,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "catalog: logger: %v\n", err)
		return cliproduct.ExitUsage
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps := engine.Deps{
		Store:  repo.NewProductRepo(cfg.CatalogFile, logger),
		Logger: logger,
	}
	if cfg.JournalEnabled() {
		deps.Journal = repo.NewJournalRepo(cfg.JournalFile)
	}
	eng := engine.New(deps)

	n := eng.Load()
	logger.Debug("catalog loaded", zap.String("file", cfg.CatalogFile), zap.Int("products", n))

	h := cliproduct.NewHandler(eng, os.Stdout, os.Stderr)
	return h.Run(ctx, fs.Args())
}
