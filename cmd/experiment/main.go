package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/ChocolateDave/ml-notebook/internal/app"
	"github.com/ChocolateDave/ml-notebook/internal/appconf"
	"github.com/ChocolateDave/ml-notebook/internal/dataset"
)

func main() {
	var cfg app.Config
	var (
		dataDir    = flag.String("data-dir", "data", "Local directory for the dataset cache")
		archiveURL = flag.String("archive-url", dataset.DefaultArchiveURL, "URL or local path of the dataset zip archive")
		dbPath     = flag.String("db", "data/bankruptcy.db", "Path to the SQLite sample cache")
		env        = flag.String("env", "development", "Environment (test|development|production)")
		verbose    = flag.Bool("verbose", false, "Verbose logging")
	)
	flag.IntVar(&cfg.Horizon, "horizon", 1, "Forecasting horizon in years (1-5)")
	flag.Float64Var(&cfg.TestRatio, "test-ratio", 0.2, "Held-out fraction of samples")
	flag.IntVar(&cfg.Epochs, "epochs", 50, "Training epochs")
	flag.Float64Var(&cfg.LearningRate, "lr", 0.05, "SGD learning rate")
	flag.IntVar(&cfg.BatchSize, "batch-size", 256, "Mini-batch size")
	flag.Float64Var(&cfg.Threshold, "threshold", 0.5, "Positive-class decision threshold")
	flag.Int64Var(&cfg.Seed, "seed", 42, "Random seed")
	flag.Parse()

	cfg.Env = appconf.EnvFromString(*env)

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	datasetConfig := dataset.Config{
		ArchiveURL: *archiveURL,
		DataDir:    *dataDir,
		DBPath:     *dbPath,
		Horizons:   []int{cfg.Horizon},
		Env:        cfg.Env,
		Verbose:    *verbose,
		Logger:     logger,
	}

	ctx := context.Background()

	manager, err := dataset.InitManager(ctx, datasetConfig)
	if err != nil {
		logger.Error("failed to initialize dataset manager", "error", err)
		os.Exit(1)
	}
	defer manager.Shutdown()

	application := &app.Application{
		Config:        cfg,
		DatasetConfig: datasetConfig,
		Logger:        logger,
		Manager:       manager,
	}

	results, err := application.RunExperiment(ctx)
	if err != nil {
		logger.Error("experiment failed", "error", err)
		os.Exit(1)
	}

	logger.Info("experiment complete",
		"horizon", results.Horizon,
		"train_size", results.TrainSize,
		"test_size", results.TestSize,
		"mean_train_loss", results.MeanTrainLoss,
		"accuracy", results.Accuracy,
		"precision", results.Precision,
		"recall", results.Recall,
		"f1", results.F1,
		"auc", results.AUC,
	)
}
