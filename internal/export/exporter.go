// Package export writes popularity reports as CSV, JSON or Parquet to a
// local folder or to object storage.
package export

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/chrisdamba/foodadmin/internal/cloudwriter"
	"github.com/chrisdamba/foodadmin/internal/models"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/xitongsys/parquet-go-source/local"
)

const destinationLocal = "local"

type Exporter struct {
	basePath string
	folder   string
	factory  cloudwriter.CloudWriterFactory
	bucket   string
}

// NewExporter builds an Exporter for the configured destination.
func NewExporter(ctx context.Context, cfg models.ExportConfig) (*Exporter, error) {
	if cfg.Destination == "" || cfg.Destination == destinationLocal {
		return NewLocalExporter(cfg.OutputPath, cfg.OutputFolder), nil
	}
	factory, err := cloudwriter.NewFactory(ctx, cfg.CloudStorage.Provider, cfg.CloudStorage.Region)
	if err != nil {
		return nil, fmt.Errorf("failed to create cloud writer factory: %w", err)
	}
	return NewCloudExporter(factory, cfg.CloudStorage.BucketName, cfg.OutputFolder), nil
}

func NewLocalExporter(basePath, folder string) *Exporter {
	return &Exporter{basePath: basePath, folder: folder}
}

func NewCloudExporter(factory cloudwriter.CloudWriterFactory, bucket, folder string) *Exporter {
	return &Exporter{factory: factory, bucket: bucket, folder: folder}
}

// objectPath partitions reports by generation date.
func (e *Exporter) objectPath(report *models.PopularityReport, format Format) string {
	id := report.ID
	if id == "" {
		id = uuid.NewString()
	}
	t := report.GeneratedAt.UTC()
	partition := fmt.Sprintf("year=%d/month=%02d/day=%02d", t.Year(), t.Month(), t.Day())
	return path.Join(e.folder, "popularity", partition, "report-"+id+format.Extension())
}

// Export writes report and returns the local path or object key written.
func (e *Exporter) Export(ctx context.Context, report *models.PopularityReport, format Format) (string, error) {
	key := e.objectPath(report, format)
	var err error
	if e.factory != nil {
		err = e.exportCloud(ctx, key, report, format)
	} else {
		key = filepath.Join(e.basePath, filepath.FromSlash(key))
		err = e.exportLocal(key, report, format)
	}
	if err != nil {
		return "", err
	}

	log.WithFields(log.Fields{
		"report_id": report.ID,
		"format":    format,
		"target":    key,
		"rows":      len(report.Rows),
	}).Info("report exported")
	return key, nil
}

func (e *Exporter) exportLocal(filePath string, report *models.PopularityReport, format Format) error {
	if err := os.MkdirAll(filepath.Dir(filePath), os.ModePerm); err != nil {
		return err
	}

	if format == FormatParquet {
		fw, err := local.NewLocalFileWriter(filePath)
		if err != nil {
			return fmt.Errorf("failed to create local file writer: %w", err)
		}
		pw, err := newParquetFileWriter(fw)
		if err != nil {
			fw.Close()
			return err
		}
		if err := writeParquet(pw, report); err != nil {
			fw.Close()
			return err
		}
		return fw.Close()
	}

	file, err := os.Create(filePath)
	if err != nil {
		return err
	}
	return encodeAndClose(file, format, report)
}

func (e *Exporter) exportCloud(ctx context.Context, key string, report *models.PopularityReport, format Format) error {
	cw, err := e.factory.NewWriter(ctx, e.bucket, key, format.ContentType())
	if err != nil {
		return fmt.Errorf("failed to create cloud file writer: %w", err)
	}

	if format == FormatParquet {
		pf := NewCloudParquetFile(cw)
		pw, err := newParquetFileWriter(pf)
		if err != nil {
			return err
		}
		if err := writeParquet(pw, report); err != nil {
			return err
		}
		return pf.Close()
	}
	return encodeAndClose(cw, format, report)
}

func encodeAndClose(w io.WriteCloser, format Format, report *models.PopularityReport) error {
	if err := Encode(w, format, report); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}
