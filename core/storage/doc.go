// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind a small interface covering what the
// application actually does with storage: fetching the catalog JSON object
// at startup and uploading exported picklists and descriptor bundles. The
// abstraction supports both AWS S3 and self-hosted MinIO instances and
// keeps storage interactions mockable (see core/storage/mocks).
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	obj, err := client.GetObject(ctx, "jackets", "catalog/cup_data.json", minio.GetObjectOptions{})
package storage
