package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/ChocolateDave/ml-notebook/internal/appconf"
	"github.com/ChocolateDave/ml-notebook/internal/dataset"
)

func main() {
	var (
		dataDir    = flag.String("data-dir", "data", "Local directory for the dataset cache")
		archiveURL = flag.String("archive-url", dataset.DefaultArchiveURL, "URL or local path of the dataset zip archive")
		dbPath     = flag.String("db", "data/bankruptcy.db", "Path to the SQLite sample cache")
		env        = flag.String("env", "development", "Environment (test|development|production)")
		verbose    = flag.Bool("verbose", false, "Verbose logging")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg := dataset.Config{
		ArchiveURL: *archiveURL,
		DataDir:    *dataDir,
		DBPath:     *dbPath,
		Env:        appconf.EnvFromString(*env),
		Verbose:    *verbose,
		Logger:     logger,
	}

	manager, err := dataset.InitManager(context.Background(), cfg)
	if err != nil {
		logger.Error("failed to initialize dataset manager", "error", err)
		os.Exit(1)
	}
	defer manager.Shutdown()

	manager.PrintStatistics()
}
