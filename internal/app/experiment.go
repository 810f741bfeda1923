package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ChocolateDave/ml-notebook/internal/classify"
	"github.com/ChocolateDave/ml-notebook/internal/dataprep"
	"github.com/ChocolateDave/ml-notebook/internal/dataset"
	"github.com/ChocolateDave/ml-notebook/internal/logging"
	"github.com/ChocolateDave/ml-notebook/internal/metrics"
	"github.com/ChocolateDave/ml-notebook/internal/utils"
)

// Results summarizes a completed experiment run.
type Results struct {
	Horizon       int
	TrainSize     int
	TestSize      int
	MeanTrainLoss float64
	Accuracy      float64
	Precision     float64
	Recall        float64
	F1            float64
	AUC           float64
}

// RunExperiment trains the baseline classifier on one horizon table and
// evaluates it on a held-out split.
func (app *Application) RunExperiment(ctx context.Context) (*Results, error) {
	cfg := app.Config
	if err := app.validateConfig(); err != nil {
		return nil, err
	}

	table, err := app.Manager.Table(cfg.Horizon)
	if err != nil {
		return nil, err
	}

	// Work on a copy: imputation and scaling must not mutate the manager's table.
	x := cloneMatrix(table.Features)
	y := dataprep.FloatLabels(table.Labels)

	xTrain, xTest, yTrain, yTest := dataprep.TrainTestSplit(x, y, cfg.TestRatio, cfg.Seed)
	if len(xTrain) == 0 || len(xTest) == 0 {
		return nil, errors.New("not enough samples to split into train and test sets")
	}

	// Impute from training statistics only, then reuse them on the test split.
	means := dataprep.ImputeMean(xTrain)
	dataprep.ApplyMeans(xTest, means)

	scaler := dataprep.NewStandardScaler()
	xTrainScaled, err := scaler.FitTransform(xTrain)
	if err != nil {
		return nil, err
	}
	xTestScaled := scaler.Transform(xTest)

	model := classify.NewLogisticRegression(table.NumFeatures(),
		cfg.LearningRate, cfg.Epochs, cfg.BatchSize, cfg.Seed)

	trackers := metrics.NewTrackerGroup()
	model.OnEpoch = func(epoch int, loss float64) {
		trackers.UpdateN("train_loss", loss, 1)
		if app.DatasetConfig.Verbose {
			logging.LogOperation(app.Logger, "epoch_complete",
				slog.Int("epoch", epoch),
				slog.Float64("loss", loss))
		}
	}

	start := time.Now()
	if err := model.Fit(xTrainScaled, yTrain); err != nil {
		return nil, fmt.Errorf("error training classifier: %w", err)
	}
	logging.LogOperation(app.Logger, "training_complete",
		slog.String("trackers", trackers.String()),
		slog.Duration("duration", time.Since(start)))

	proba := model.PredictProba(xTestScaled)
	yPred := metrics.PredictionsFromProba(proba, cfg.Threshold)
	yTrue := intLabels(yTest)

	prec, rec, f1 := metrics.PrecisionRecallF1(yTrue, yPred)

	return &Results{
		Horizon:       cfg.Horizon,
		TrainSize:     len(xTrain),
		TestSize:      len(xTest),
		MeanTrainLoss: trackers.Item("train_loss"),
		Accuracy:      metrics.Accuracy(yTrue, yPred),
		Precision:     prec,
		Recall:        rec,
		F1:            f1,
		AUC:           metrics.ROCAUC(yTrue, proba),
	}, nil
}

func (app *Application) validateConfig() error {
	cfg := app.Config
	if cfg.Horizon < dataset.MinHorizon || cfg.Horizon > dataset.MaxHorizon {
		return fmt.Errorf("horizon must be between %d and %d, got %d",
			dataset.MinHorizon, dataset.MaxHorizon, cfg.Horizon)
	}
	if err := utils.ValidateRatio("test ratio", cfg.TestRatio); err != nil {
		return err
	}
	if err := utils.ValidateRatio("threshold", cfg.Threshold); err != nil {
		return err
	}
	if err := utils.ValidatePositiveInt("epochs", cfg.Epochs); err != nil {
		return err
	}
	if err := utils.ValidatePositiveInt("batch size", cfg.BatchSize); err != nil {
		return err
	}
	return utils.ValidatePositiveFloat("learning rate", cfg.LearningRate)
}

func cloneMatrix(x [][]float64) [][]float64 {
	out := make([][]float64, len(x))
	for i := range x {
		row := make([]float64, len(x[i]))
		copy(row, x[i])
		out[i] = row
	}
	return out
}

func intLabels(y []float64) []int {
	out := make([]int, len(y))
	for i, v := range y {
		if v >= 0.5 {
			out[i] = 1
		}
	}
	return out
}
