package integrity

import (
	"context"
	"time"

	"jacket-manager/core/catalog"
	"jacket-manager/core/storage"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service runs integrity checks against the catalog and its backends.
type Service struct {
	store         *catalog.Store
	client        storage.Client
	bucket        string
	catalogObject string
	db            *gorm.DB
	logger        *zap.Logger
}

// NewService creates an integrity service. The storage client and database
// handle may be nil when those backends are not configured; their checks
// report SKIPPED.
func NewService(store *catalog.Store, client storage.Client, bucket, catalogObject string, db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{
		store:         store,
		client:        client,
		bucket:        bucket,
		catalogObject: catalogObject,
		db:            db,
		logger:        logger,
	}
}

// CheckAll runs every configured check and combines them into one report.
func (s *Service) CheckAll(ctx context.Context) *Report {
	start := time.Now()

	report := &Report{
		Catalog:  CheckCatalog(s.store),
		Storage:  CheckStorage(ctx, s.client, s.bucket, s.catalogObject),
		Database: CheckDatabase(s.db),
	}
	report.Status = combine(report.Catalog.Status, report.Storage.Status, report.Database.Status)
	report.GeneratedAt = time.Now().Format(time.RFC3339)
	report.ExecutionTime = time.Since(start).String()

	s.logger.Info("Integrity check complete",
		zap.String("status", string(report.Status)),
		zap.Int("duplicate_isbns", len(report.Catalog.DuplicateISBNs)),
		zap.Int("unroutable_records", len(report.Catalog.UnroutableRecords)))

	return report
}

// CheckCatalog runs only the catalog check.
func (s *Service) CheckCatalog(ctx context.Context) CatalogReport {
	return CheckCatalog(s.store)
}

// CheckStorage runs only the storage check.
func (s *Service) CheckStorage(ctx context.Context) StorageReport {
	return CheckStorage(ctx, s.client, s.bucket, s.catalogObject)
}

// CheckDatabase runs only the database check.
func (s *Service) CheckDatabase(ctx context.Context) DatabaseReport {
	return CheckDatabase(s.db)
}
