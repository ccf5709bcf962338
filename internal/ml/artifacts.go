package ml

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/givihq/deliverytime/internal/features"
)

// Artifact file names inside the model directory.
const (
	treeModelFile     = "gbr_model.json"
	sequenceModelFile = "lstm_model.json"
	scalerFile        = "scaler.json"
	encodersFile      = "label_encoders.json"
	columnsFile       = "feature_columns.json"
)

// Artifacts bundles everything the prediction pipeline needs. Loaded once at
// process start and treated as immutable afterwards, so concurrent reads
// from request handlers are safe.
type Artifacts struct {
	Tree     *TreeEnsemble
	Sequence *SequenceModel
	Scaler   *Scaler
	Vocabs   features.Vocabularies
	Columns  []string
}

// LoadArtifacts reads the five model artifacts from dir. Any missing or
// malformed file fails the whole load; the caller is expected to mark the
// predictor unavailable for the process lifetime rather than retry.
func LoadArtifacts(dir string) (*Artifacts, error) {
	arts := &Artifacts{}

	if err := readJSON(filepath.Join(dir, treeModelFile), &arts.Tree); err != nil {
		return nil, err
	}
	if err := arts.Tree.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", treeModelFile, err)
	}

	if err := readJSON(filepath.Join(dir, sequenceModelFile), &arts.Sequence); err != nil {
		return nil, err
	}
	if err := arts.Sequence.compile(); err != nil {
		return nil, fmt.Errorf("%s: %w", sequenceModelFile, err)
	}

	if err := readJSON(filepath.Join(dir, scalerFile), &arts.Scaler); err != nil {
		return nil, err
	}
	if err := readJSON(filepath.Join(dir, encodersFile), &arts.Vocabs); err != nil {
		return nil, err
	}
	if err := readJSON(filepath.Join(dir, columnsFile), &arts.Columns); err != nil {
		return nil, err
	}

	if len(arts.Columns) == 0 {
		return nil, fmt.Errorf("%s: empty column order", columnsFile)
	}
	if len(arts.Scaler.Mean) != len(arts.Columns) {
		return nil, fmt.Errorf("scaler covers %d columns, column order has %d", len(arts.Scaler.Mean), len(arts.Columns))
	}
	if len(arts.Scaler.Scale) != len(arts.Scaler.Mean) {
		return nil, fmt.Errorf("scaler has %d scale entries for %d means", len(arts.Scaler.Scale), len(arts.Scaler.Mean))
	}
	for i, scale := range arts.Scaler.Scale {
		if scale == 0 {
			return nil, fmt.Errorf("%s: zero scale for column %q", scalerFile, arts.Columns[i])
		}
	}
	if arts.Tree.NumFeatures != len(arts.Columns) {
		return nil, fmt.Errorf("tree ensemble expects %d features, column order has %d", arts.Tree.NumFeatures, len(arts.Columns))
	}
	if arts.Sequence.InputDim != len(arts.Columns) {
		return nil, fmt.Errorf("sequence model expects %d features, column order has %d", arts.Sequence.InputDim, len(arts.Columns))
	}
	return arts, nil
}

func readJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading model artifact: %w", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	return nil
}
