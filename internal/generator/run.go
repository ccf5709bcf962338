package generator

import (
	"fmt"

	"github.com/givihq/deliverytime/internal/models"
	"github.com/schollz/progressbar/v3"
)

// WriteDataset generates cfg.Samples orders and writes them to the
// configured output.
func WriteDataset(cfg models.DatasetConfig) error {
	gen := New(cfg)

	out, err := NewDatasetWriter(cfg)
	if err != nil {
		return err
	}

	bar := progressbar.Default(int64(cfg.Samples), "generating orders")
	for i := 0; i < cfg.Samples; i++ {
		if err := out.Write(gen.Generate()); err != nil {
			out.Close()
			return fmt.Errorf("failed to write row %d: %w", i, err)
		}
		bar.Add(1)
	}

	return out.Close()
}
