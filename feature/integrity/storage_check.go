package integrity

import (
	"context"

	"jacket-manager/core/storage"

	"github.com/minio/minio-go/v7"
)

// CheckStorage verifies that the configured bucket is reachable and that the
// catalog export object exists in it.
func CheckStorage(ctx context.Context, client storage.Client, bucket, catalogObject string) StorageReport {
	report := StorageReport{}

	if client == nil {
		report.Status = StatusSkipped
		return report
	}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		report.Status = StatusFail
		report.Error = err.Error()
		return report
	}
	report.BucketExists = exists
	if !exists {
		report.Status = StatusFail
		report.Error = "bucket " + bucket + " not found"
		return report
	}

	for obj := range client.ListObjects(ctx, bucket, minio.ListObjectsOptions{Prefix: catalogObject}) {
		if obj.Err != nil {
			report.Status = StatusFail
			report.Error = obj.Err.Error()
			return report
		}
		if obj.Key == catalogObject {
			report.CatalogObjectPresent = true
		}
	}

	report.Status = StatusPass
	if !report.CatalogObjectPresent {
		report.Status = StatusWarning
		report.Error = "catalog object " + catalogObject + " not found"
	}
	return report
}
