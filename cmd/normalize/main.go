package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/murkotick/product-catalog-manager/internal/app/config"
	"github.com/murkotick/product-catalog-manager/internal/app/product/engine"
	"github.com/murkotick/product-catalog-manager/internal/app/product/repo"
	"github.com/murkotick/product-catalog-manager/internal/pkg/logging"
)

// A small maintenance helper that rewrites a catalog file in canonical form:
// image paths with forward slashes, two-space indentation, every key present
// and explicit nulls for unset optional prices. A file that cannot be decoded
// is left untouched.
//
// Usage:
//
//	CATALOG_FILE=data/produits.json go run ./cmd/normalize
//	go run ./cmd/normalize -file path/to/produits.json
func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

const (
	exitOK         = 0
	exitUsage      = 1
	exitBadFile    = 3
	exitSaveFailed = 4
)

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("normalize", flag.ContinueOnError)
	fs.SetOutput(stderr)
	file := fs.String("file", "", "catalog file (overrides CATALOG_FILE)")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "normalize: config: %v\n", err)
		return exitUsage
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
		fmt.Fprintf(stderr, "normalize: logger: %v\n", err)
		return exitUsage
	}
	defer func() { _ = logger.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	return normalize(ctx, cfg.CatalogFile, logger, stdout, stderr)
}

func normalize(ctx context.Context, path string, logger *zap.Logger, stdout, stderr io.Writer) int {
	store := repo.NewProductRepo(path, logger)
	eng := engine.New(engine.Deps{
		Store:  store,
		Logger: logger,
	})

	n, err := eng.LoadStrict()
	if err != nil {
		logger.Error("catalog not normalized", zap.String("file", store.Path()), zap.Error(err))
		fmt.Fprintf(stderr, "normalize: %v\n", err)
		return exitBadFile
	}
	if err := eng.Save(ctx); err != nil {
		logger.Error("normalize failed", zap.String("file", store.Path()), zap.Error(err))
		fmt.Fprintf(stderr, "normalize: %v\n", err)
		return exitSaveFailed
	}

	fmt.Fprintf(stdout, "Normalized %d products in %s\n", n, store.Path())
	return exitOK
}
