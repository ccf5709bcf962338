package generator

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/givihq/deliverytime/internal/cloudwriter"
	"github.com/givihq/deliverytime/internal/models"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/source"
	"github.com/xitongsys/parquet-go/writer"
)

// DatasetWriter persists generated rows in one of the supported formats.
type DatasetWriter interface {
	Write(row Row) error
	Close() error
}

func NewDatasetWriter(cfg models.DatasetConfig) (DatasetWriter, error) {
	switch cfg.OutputFormat {
	case "csv":
		return newCSVWriter(cfg.OutputPath)
	case "json":
		return newJSONWriter(cfg.OutputPath)
	case "parquet":
		return newParquetWriter(cfg)
	default:
		return nil, fmt.Errorf("unsupported output format: %s", cfg.OutputFormat)
	}
}

type csvWriter struct {
	file *os.File
	w    *csv.Writer
}

func newCSVWriter(path string) (*csvWriter, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	w := csv.NewWriter(file)
	if err := w.Write(csvHeader); err != nil {
		file.Close()
		return nil, err
	}
	return &csvWriter{file: file, w: w}, nil
}

func (c *csvWriter) Write(row Row) error {
	record := []string{
		row.OrderID,
		row.RestaurantName,
		row.City,
		row.CuisineType,
		row.OrderDate,
		strconv.Itoa(int(row.OrderHour)),
		row.DayType,
		row.MealType,
		strconv.FormatFloat(row.DistanceKm, 'f', 2, 64),
		strconv.Itoa(int(row.OrderValueInr)),
		strconv.Itoa(int(row.NumItems)),
		row.WeatherCondition,
		row.TrafficLevel,
		strconv.Itoa(int(row.PreparationTimeMin)),
		strconv.FormatFloat(row.RestaurantRating, 'f', 1, 64),
		row.PartnerName,
		strconv.Itoa(int(row.PartnerExperienceMonths)),
		strconv.Itoa(int(row.ActualDeliveryTimeMin)),
	}
	return c.w.Write(record)
}

func (c *csvWriter) Close() error {
	c.w.Flush()
	if err := c.w.Error(); err != nil {
		c.file.Close()
		return err
	}
	return c.file.Close()
}

type jsonWriter struct {
	file *os.File
}

func newJSONWriter(path string) (*jsonWriter, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return &jsonWriter{file: file}, nil
}

// Write appends one JSON object per line.
func (j *jsonWriter) Write(row Row) error {
	data, err := json.Marshal(row)
	if err != nil {
		return err
	}
	if _, err := j.file.Write(data); err != nil {
		return err
	}
	_, err = j.file.WriteString("\n")
	return err
}

func (j *jsonWriter) Close() error {
	return j.file.Close()
}

type parquetWriter struct {
	file source.ParquetFile
	pw   *writer.ParquetWriter
}

func newParquetWriter(cfg models.DatasetConfig) (*parquetWriter, error) {
	var fw source.ParquetFile
	var err error

	if cfg.CloudStorage.Enabled {
		var factory cloudwriter.CloudWriterFactory
		switch cfg.CloudStorage.Provider {
		case "s3":
			factory, err = cloudwriter.NewS3WriterFactory(context.Background(), cfg.CloudStorage.Region)
		default:
			return nil, fmt.Errorf("unsupported cloud storage provider: %s", cfg.CloudStorage.Provider)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to create cloud writer factory: %w", err)
		}
		cw, err := factory.NewWriter(cfg.CloudStorage.BucketName, cfg.OutputPath)
		if err != nil {
			return nil, fmt.Errorf("failed to create cloud file writer: %w", err)
		}
		fw = newCloudParquetFile(cw)
	} else {
		fw, err = local.NewLocalFileWriter(cfg.OutputPath)
		if err != nil {
			return nil, fmt.Errorf("failed to create local file writer: %w", err)
		}
	}

	pw, err := writer.NewParquetWriter(fw, new(Row), 4)
	if err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to create ParquetWriter: %w", err)
	}
	return &parquetWriter{file: fw, pw: pw}, nil
}

func (p *parquetWriter) Write(row Row) error {
	return p.pw.Write(row)
}

func (p *parquetWriter) Close() error {
	if err := p.pw.WriteStop(); err != nil {
		p.file.Close()
		return err
	}
	return p.file.Close()
}

// cloudParquetFile adapts a CloudWriter to the parquet source interface.
// The writer only ever appends, so reads and end-relative seeks are not
// supported.
type cloudParquetFile struct {
	cloudWriter cloudwriter.CloudWriter
	offset      int64
}

func newCloudParquetFile(cw cloudwriter.CloudWriter) *cloudParquetFile {
	return &cloudParquetFile{cloudWriter: cw}
}

func (c *cloudParquetFile) Open(name string) (source.ParquetFile, error) {
	return c, nil
}

func (c *cloudParquetFile) Create(name string) (source.ParquetFile, error) {
	return c, nil
}

func (c *cloudParquetFile) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case io.SeekStart:
		c.offset = offset
	case io.SeekCurrent:
		c.offset += offset
	case io.SeekEnd:
		return 0, fmt.Errorf("seek from end not supported for cloud storage")
	}
	return c.offset, nil
}

func (c *cloudParquetFile) Read(p []byte) (n int, err error) {
	return 0, fmt.Errorf("read not supported for cloud storage")
}

func (c *cloudParquetFile) Write(p []byte) (n int, err error) {
	return c.cloudWriter.Write(p)
}

func (c *cloudParquetFile) Close() error {
	return c.cloudWriter.Close()
}
