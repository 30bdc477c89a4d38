package jackets

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"jacket-manager/core/catalog"
	"jacket-manager/core/config"
	"jacket-manager/core/reconcile"
	"jacket-manager/core/storage"
	"jacket-manager/feature/jackets/descriptor"
	"jacket-manager/feature/jackets/picklist"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// ErrNoJobs is returned when an export is requested for a run that matched
// nothing. The summary's guidance message explains which stage came up empty.
var ErrNoJobs = errors.New("no jacket jobs to export")

// Service implements the jacket processing pipeline: workbook parsing,
// reconciliation against the catalog, and artifact generation.
type Service struct {
	store  *catalog.Store
	client storage.Client
	bucket string
	export config.ExportConfig
	logger *zap.Logger
}

// NewService creates a jackets service. The storage client may be nil when
// artifact upload is disabled.
func NewService(store *catalog.Store, client storage.Client, bucket string, export config.ExportConfig, logger *zap.Logger) *Service {
	return &Service{
		store:  store,
		client: client,
		bucket: bucket,
		export: export,
		logger: logger,
	}
}

// Process parses an uploaded order workbook and reconciles it against the
// catalog. Every call builds a fresh Run; nothing is carried over between
// uploads. Reconciliation diagnostics are logged here so they reach the
// operator even when the caller only looks at the artifacts.
func (s *Service) Process(ctx context.Context, filename string, data []byte) (*Run, error) {
	run := &Run{
		ID:        uuid.New(),
		Filename:  filename,
		StartedAt: time.Now(),
	}

	rows, err := ParseWorkbook(filename, data)
	if err != nil {
		return nil, err
	}
	run.Rows = rows

	result, err := reconcile.Reconcile(rows, s.store)
	if err != nil {
		return nil, err
	}
	run.Result = result

	for _, diag := range result.Diagnostics {
		switch diag.Kind {
		case reconcile.DiagnosticUnmatched:
			s.logger.Error("Jacket job not found in catalog",
				zap.String("run_id", run.ID.String()),
				zap.String("isbn", diag.ISBN),
				zap.String("title", diag.Title))
		case reconcile.DiagnosticExcludedByCatalog:
			s.logger.Warn("Catalog excludes row flagged as jacket",
				zap.String("run_id", run.ID.String()),
				zap.String("isbn", diag.ISBN),
				zap.String("title", diag.Title))
		}
	}

	s.logger.Info("Processed order workbook",
		zap.String("run_id", run.ID.String()),
		zap.String("filename", filename),
		zap.Int("total_rows", result.Summary.TotalRows),
		zap.Int("eligible_rows", result.Summary.EligibleRows),
		zap.Int("matched_jobs", result.Summary.MatchedJobs))

	return run, nil
}

// RenderPicklist generates the printable PDF for a run. Returns ErrNoJobs
// when the run matched nothing.
func (s *Service) RenderPicklist(ctx context.Context, run *Run) ([]byte, string, error) {
	if !run.Result.Summary.HasJobs() {
		return nil, "", ErrNoJobs
	}

	data, err := picklist.Render(picklist.Input{
		JobNumber:     run.PaceJobNo(),
		OrderDate:     run.OrderDate(),
		GeneratedAt:   time.Now(),
		Jobs:          run.Result.Jobs,
		TotalQuantity: run.TotalQuantity(),
		Logger:        s.logger,
	})
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("Jacket_Picklist_%s_%s.pdf", run.PaceJobNo(), time.Now().Format("2006-01-02"))
	s.uploadArtifact(ctx, run, filename, "application/pdf", data)
	return data, filename, nil
}

// RenderDescriptors generates the zipped per-job XML descriptors for a run.
// Returns ErrNoJobs when the run matched nothing.
func (s *Service) RenderDescriptors(ctx context.Context, run *Run) ([]byte, string, error) {
	if !run.Result.Summary.HasJobs() {
		return nil, "", ErrNoJobs
	}

	data, err := descriptor.Archive(run.Result.Jobs)
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("Jacket_XML_%s_%s.zip", run.PaceJobNo(), time.Now().Format("2006-01-02"))
	s.uploadArtifact(ctx, run, filename, "application/zip", data)
	return data, filename, nil
}

// uploadArtifact mirrors a generated artifact into the storage bucket when
// export upload is enabled. Upload failures are logged, not propagated; the
// caller already holds the bytes and the download must not fail because the
// mirror did.
func (s *Service) uploadArtifact(ctx context.Context, run *Run, filename, contentType string, data []byte) {
	if !s.export.Upload || s.client == nil {
		return
	}

	key := s.export.Prefix + "/" + filename
	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		s.logger.Error("Failed to upload artifact",
			zap.String("run_id", run.ID.String()),
			zap.String("object", key),
			zap.Error(err))
		return
	}

	s.logger.Info("Uploaded artifact",
		zap.String("run_id", run.ID.String()),
		zap.String("object", key),
		zap.Int("bytes", len(data)))
}
