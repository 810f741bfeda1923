package datasetdb

import (
	"encoding/json"
	"fmt"
	"math"
	"time"
)

// Sample is one labeled observation for a single forecasting horizon
type Sample struct {
	Horizon  int       // forecasting horizon in years
	RowIndex int       // position within the source member file
	Features []float64 // financial ratios, NaN marks a missing cell
	Label    int       // 0 = survived, 1 = bankrupt
}

// ImportMetadata records the provenance of an imported member file
type ImportMetadata struct {
	Source      string // member file name
	ContentHash string // SHA-256 of the archive the member came from
	SampleCount int64
	ImportedAt  time.Time
}

// encodeFeatures serializes a feature vector to JSON. Missing cells (NaN)
// become null, since JSON has no representation for NaN.
func encodeFeatures(features []float64) (string, error) {
	vals := make([]*float64, len(features))
	for i := range features {
		if !math.IsNaN(features[i]) {
			v := features[i]
			vals[i] = &v
		}
	}

	b, err := json.Marshal(vals)
	if err != nil {
		return "", fmt.Errorf("error encoding features: %w", err)
	}
	return string(b), nil
}

func decodeFeatures(encoded string) ([]float64, error) {
	var vals []*float64
	if err := json.Unmarshal([]byte(encoded), &vals); err != nil {
		return nil, fmt.Errorf("error decoding features: %w", err)
	}

	features := make([]float64, len(vals))
	for i, v := range vals {
		if v == nil {
			features[i] = math.NaN()
		} else {
			features[i] = *v
		}
	}
	return features, nil
}
