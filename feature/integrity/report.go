package integrity

// Status grades one integrity check.
type Status string

const (
	// StatusPass means the check found nothing wrong.
	StatusPass Status = "PASS"

	// StatusWarning means the check found issues that do not block
	// processing, like catalog records with incomplete specifications.
	StatusWarning Status = "WARNING"

	// StatusFail means the checked component is unusable.
	StatusFail Status = "FAIL"

	// StatusSkipped means the component is not configured in this deployment.
	StatusSkipped Status = "SKIPPED"
)

// CatalogReport describes the health of the loaded catalog.
type CatalogReport struct {
	Status Status `json:"status"`

	// TotalRecords counts every record in the source, shadowed duplicates
	// included.
	TotalRecords int `json:"total_records"`

	// UniqueRecords counts the records reachable by lookup.
	UniqueRecords int `json:"unique_records"`

	// JacketedRecords counts records with the jacket flag set.
	JacketedRecords int `json:"jacketed_records"`

	// DuplicateISBNs lists identifiers that appeared more than once. Lookups
	// resolve to the first-loaded record; the rest are shadowed.
	DuplicateISBNs []string `json:"duplicate_isbns"`

	// UnroutableRecords lists jacketed records whose trim dimensions do not
	// parse as numbers. Their jobs would all fall through to the default
	// route.
	UnroutableRecords []string `json:"unroutable_records"`

	// MissingArtwork lists jacketed records without a PDF URL.
	MissingArtwork []string `json:"missing_artwork"`

	// Error carries the load failure, if the catalog never became ready.
	Error string `json:"error,omitempty"`
}

// StorageReport describes the health of the object storage backend.
type StorageReport struct {
	Status Status `json:"status"`

	// BucketExists reports whether the configured bucket is reachable.
	BucketExists bool `json:"bucket_exists"`

	// CatalogObjectPresent reports whether the catalog export object exists
	// in the bucket.
	CatalogObjectPresent bool `json:"catalog_object_present"`

	Error string `json:"error,omitempty"`
}

// DatabaseReport describes the health of the catalog database table.
type DatabaseReport struct {
	Status Status `json:"status"`

	// TablePresent reports whether the catalog table exists at all.
	TablePresent bool `json:"table_present"`

	// MissingColumns lists expected columns absent from the table.
	MissingColumns []string `json:"missing_columns"`

	Error string `json:"error,omitempty"`
}

// Report is the combined integrity report across all configured backends.
type Report struct {
	GeneratedAt   string         `json:"generated_at"`
	ExecutionTime string         `json:"execution_time"`
	Status        Status         `json:"status"`
	Catalog       CatalogReport  `json:"catalog"`
	Storage       StorageReport  `json:"storage"`
	Database      DatabaseReport `json:"database"`
}

// combine folds per-check statuses into the overall grade. SKIPPED checks
// do not count against the deployment.
func combine(statuses ...Status) Status {
	overall := StatusPass
	for _, s := range statuses {
		switch s {
		case StatusFail:
			return StatusFail
		case StatusWarning:
			overall = StatusWarning
		}
	}
	return overall
}
