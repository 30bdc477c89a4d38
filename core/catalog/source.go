package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"jacket-manager/core/storage"

	"github.com/minio/minio-go/v7"
	"gorm.io/gorm"
)

// Source loads the full set of catalog records from an external origin.
// Absence or fetch failure must surface as an error, never as a silent
// empty catalog.
type Source interface {
	// Name returns a human-readable description of the origin, used in
	// startup error messages.
	Name() string

	// Load fetches and decodes all records.
	Load(ctx context.Context) ([]Record, error)
}

// FileSource loads the catalog from a local JSON export.
type FileSource struct {
	Path string
}

// Name returns the file path.
func (s *FileSource) Name() string {
	return "file " + s.Path
}

// Load reads and decodes the JSON file.
func (s *FileSource) Load(ctx context.Context) ([]Record, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", s.Path, err)
	}
	return decodeRecords(data)
}

// StorageSource loads the catalog from an object in the storage bucket.
type StorageSource struct {
	Client storage.Client
	Bucket string
	Object string
}

// Name returns the bucket/object pair.
func (s *StorageSource) Name() string {
	return "storage object " + s.Bucket + "/" + s.Object
}

// Load fetches the object and decodes it.
func (s *StorageSource) Load(ctx context.Context) ([]Record, error) {
	obj, err := s.Client.GetObject(ctx, s.Bucket, s.Object, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog object %s: %w", s.Object, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog object %s: %w", s.Object, err)
	}
	return decodeRecords(data)
}

// DatabaseSource loads the catalog from the catalog_records table.
type DatabaseSource struct {
	DB *gorm.DB
}

// Name returns the table name.
func (s *DatabaseSource) Name() string {
	return "database table " + RecordModel{}.TableName()
}

// Load selects all rows and converts them to records.
func (s *DatabaseSource) Load(ctx context.Context) ([]Record, error) {
	var rows []RecordModel
	if err := s.DB.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query catalog table: %w", err)
	}
	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.ToRecord())
	}
	return records, nil
}

// NewSource builds the configured source. The storage client and database
// handle may be nil when the respective source is not selected.
func NewSource(cfg Config, client storage.Client, bucket string, db *gorm.DB) (Source, error) {
	switch cfg.Source {
	case SourceFile:
		return &FileSource{Path: cfg.Path}, nil
	case SourceStorage:
		if client == nil {
			return nil, fmt.Errorf("catalog source %q requires a storage client", cfg.Source)
		}
		return &StorageSource{Client: client, Bucket: bucket, Object: cfg.Object}, nil
	case SourceDatabase:
		if db == nil {
			return nil, fmt.Errorf("catalog source %q requires a database connection", cfg.Source)
		}
		return &DatabaseSource{DB: db}, nil
	default:
		return nil, fmt.Errorf("unknown catalog source %q", cfg.Source)
	}
}

// decodeRecords parses the JSON export into records.
func decodeRecords(data []byte) ([]Record, error) {
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("malformed catalog JSON: %w", err)
	}
	return records, nil
}
