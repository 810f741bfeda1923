package app

import (
	"log/slog"

	"github.com/ChocolateDave/ml-notebook/internal/appconf"
	"github.com/ChocolateDave/ml-notebook/internal/dataset"
)

// Application holds the dependencies for the experiment pipeline: the
// configuration, a logger and the dataset manager.
type Application struct {
	Config        Config
	DatasetConfig dataset.Config
	Logger        *slog.Logger
	Manager       *dataset.Manager
}

// Config holds all the configuration settings for an experiment run. The
// values are read in from command-line flags when the application starts.
type Config struct {
	Horizon      int     // forecasting horizon in years
	TestRatio    float64 // held-out fraction of samples
	Epochs       int
	LearningRate float64
	BatchSize    int
	Threshold    float64 // positive-class decision threshold
	Seed         int64
	Env          appconf.Environment
}
