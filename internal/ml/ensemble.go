package ml

import (
	"errors"
	"math"
)

// Fixed blend weights: the tree ensemble is trusted more.
const (
	treeWeight     = 0.6
	sequenceWeight = 0.4
)

// ErrModelUnavailable is returned when the models or scaler failed to load
// at startup. The condition is permanent for the process lifetime.
var ErrModelUnavailable = errors.New("prediction models are not loaded")

// Prediction carries the two component estimates and their blend, in minutes.
type Prediction struct {
	TreeMinutes      float64
	SequenceMinutes  float64
	EstimatedMinutes int
}

// Ensemble runs the raw feature vector through the tree model, the scaled
// single-timestep window through the sequence model, and blends the two.
// Stateless between calls.
type Ensemble struct {
	arts *Artifacts
}

func NewEnsemble(arts *Artifacts) *Ensemble {
	return &Ensemble{arts: arts}
}

// Available reports whether the model artifacts were loaded.
func (e *Ensemble) Available() bool {
	return e != nil && e.arts != nil &&
		e.arts.Tree != nil && e.arts.Sequence != nil && e.arts.Scaler != nil
}

func (e *Ensemble) Predict(vector []float64) (Prediction, error) {
	if !e.Available() {
		return Prediction{}, ErrModelUnavailable
	}

	treeMinutes := e.arts.Tree.Predict(vector)

	scaled, err := e.arts.Scaler.Transform(vector)
	if err != nil {
		return Prediction{}, err
	}
	sequenceMinutes := e.arts.Sequence.Predict(scaled)

	return Prediction{
		TreeMinutes:      treeMinutes,
		SequenceMinutes:  sequenceMinutes,
		EstimatedMinutes: Blend(treeMinutes, sequenceMinutes),
	}, nil
}

// Blend combines the two component estimates with the fixed 0.6/0.4 weights.
func Blend(treeMinutes, sequenceMinutes float64) int {
	return int(math.Round(treeMinutes*treeWeight + sequenceMinutes*sequenceWeight))
}
