package ml

import "fmt"

// Tree is a single regression tree in flattened array form: node i splits on
// Feature[i] at Threshold[i], descending to Left[i] when the feature value is
// <= the threshold. Feature[i] == -1 marks a leaf whose output is Value[i].
type Tree struct {
	Feature   []int     `json:"feature"`
	Threshold []float64 `json:"threshold"`
	Left      []int     `json:"left"`
	Right     []int     `json:"right"`
	Value     []float64 `json:"value"`
}

func (t *Tree) eval(x []float64) float64 {
	i := 0
	for t.Feature[i] >= 0 {
		if x[t.Feature[i]] <= t.Threshold[i] {
			i = t.Left[i]
		} else {
			i = t.Right[i]
		}
	}
	return t.Value[i]
}

func (t *Tree) validate(numFeatures int) error {
	n := len(t.Feature)
	if len(t.Threshold) != n || len(t.Left) != n || len(t.Right) != n || len(t.Value) != n {
		return fmt.Errorf("inconsistent tree node arrays")
	}
	for i := 0; i < n; i++ {
		if t.Feature[i] >= numFeatures {
			return fmt.Errorf("tree node %d references feature %d, model has %d", i, t.Feature[i], numFeatures)
		}
		if t.Feature[i] >= 0 && (t.Left[i] < 0 || t.Left[i] >= n || t.Right[i] < 0 || t.Right[i] >= n) {
			return fmt.Errorf("tree node %d has out-of-range children", i)
		}
	}
	return nil
}

// TreeEnsemble is a gradient-boosted regression forest. The prediction is
// the base score plus the learning-rate-weighted sum of every tree's leaf.
type TreeEnsemble struct {
	NumFeatures  int     `json:"num_features"`
	BaseScore    float64 `json:"base_score"`
	LearningRate float64 `json:"learning_rate"`
	Trees        []Tree  `json:"trees"`
}

// Predict consumes the raw, unscaled feature vector.
func (m *TreeEnsemble) Predict(x []float64) float64 {
	sum := m.BaseScore
	for i := range m.Trees {
		sum += m.LearningRate * m.Trees[i].eval(x)
	}
	return sum
}

func (m *TreeEnsemble) validate() error {
	if m.NumFeatures <= 0 {
		return fmt.Errorf("tree ensemble declares no features")
	}
	if len(m.Trees) == 0 {
		return fmt.Errorf("tree ensemble has no trees")
	}
	for i := range m.Trees {
		if err := m.Trees[i].validate(m.NumFeatures); err != nil {
			return fmt.Errorf("tree %d: %w", i, err)
		}
	}
	return nil
}
