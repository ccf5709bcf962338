package ml

import "fmt"

// Scaler applies the standard scaling fitted at training time:
// (x - mean) / scale per feature column.
type Scaler struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

func (s *Scaler) Transform(x []float64) ([]float64, error) {
	if len(x) != len(s.Mean) || len(x) != len(s.Scale) {
		return nil, fmt.Errorf("scaler expects %d features, got %d", len(s.Mean), len(x))
	}
	scaled := make([]float64, len(x))
	for i := range x {
		scaled[i] = (x[i] - s.Mean[i]) / s.Scale[i]
	}
	return scaled, nil
}
