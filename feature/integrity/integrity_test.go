package integrity

import (
	"context"
	"errors"
	"testing"

	"jacket-manager/core/catalog"
	"jacket-manager/core/database"
	"jacket-manager/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func healthyStore() *catalog.Store {
	store := catalog.NewStore()
	store.Populate([]catalog.Record{
		{ISBN: "9780521000001", HasJacket: true, TrimHeight: "280", TrimWidth: "216", PDFUrl: "https://assets.example.com/1.pdf"},
		{ISBN: "9780521000002", HasJacket: false},
	})
	return store
}

func TestCheckCatalog_Pass(t *testing.T) {
	report := CheckCatalog(healthyStore())

	assert.Equal(t, StatusPass, report.Status)
	assert.Equal(t, 2, report.TotalRecords)
	assert.Equal(t, 2, report.UniqueRecords)
	assert.Equal(t, 1, report.JacketedRecords)
	assert.Empty(t, report.DuplicateISBNs)
	assert.Empty(t, report.UnroutableRecords)
	assert.Empty(t, report.MissingArtwork)
}

func TestCheckCatalog_NotReady(t *testing.T) {
	report := CheckCatalog(catalog.NewStore())
	assert.Equal(t, StatusFail, report.Status)
	assert.Equal(t, catalog.ErrUnavailable.Error(), report.Error)
}

func TestCheckCatalog_LoadFailure(t *testing.T) {
	store := catalog.NewStore()
	store.Fail(errors.New("connection refused"))

	report := CheckCatalog(store)
	assert.Equal(t, StatusFail, report.Status)
	assert.Contains(t, report.Error, "connection refused")
}

func TestCheckCatalog_SurfacesDuplicates(t *testing.T) {
	store := catalog.NewStore()
	store.Populate([]catalog.Record{
		{ISBN: "9780521000001", HasJacket: true, TrimHeight: "280", TrimWidth: "216", PDFUrl: "u"},
		{ISBN: "9780521000001", HasJacket: true, TrimHeight: "234", TrimWidth: "156", PDFUrl: "u"},
	})

	report := CheckCatalog(store)
	assert.Equal(t, StatusWarning, report.Status)
	assert.Equal(t, []string{"9780521000001"}, report.DuplicateISBNs)
	assert.Equal(t, 2, report.TotalRecords)
	assert.Equal(t, 1, report.UniqueRecords)
}

func TestCheckCatalog_FlagsUnroutableAndMissingArtwork(t *testing.T) {
	store := catalog.NewStore()
	store.Populate([]catalog.Record{
		{ISBN: "9780521000001", HasJacket: true, TrimHeight: "tall", TrimWidth: "216", PDFUrl: "u"},
		{ISBN: "9780521000002", HasJacket: true, TrimHeight: "280", TrimWidth: "216"},
		{ISBN: "9780521000003", HasJacket: false, TrimHeight: "", TrimWidth: ""},
	})

	report := CheckCatalog(store)
	assert.Equal(t, StatusWarning, report.Status)
	assert.Equal(t, []string{"9780521000001"}, report.UnroutableRecords)
	assert.Equal(t, []string{"9780521000002"}, report.MissingArtwork)
}

func objectChannel(infos ...minio.ObjectInfo) <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo, len(infos))
	for _, info := range infos {
		ch <- info
	}
	close(ch)
	return ch
}

func TestCheckStorage_Pass(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "jackets").Return(true, nil)
	client.On("ListObjects", mock.Anything, "jackets", mock.Anything).
		Return(objectChannel(minio.ObjectInfo{Key: "catalog/cup_data.json"}))

	report := CheckStorage(context.Background(), client, "jackets", "catalog/cup_data.json")
	assert.Equal(t, StatusPass, report.Status)
	assert.True(t, report.BucketExists)
	assert.True(t, report.CatalogObjectPresent)
}

func TestCheckStorage_MissingBucket(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "jackets").Return(false, nil)

	report := CheckStorage(context.Background(), client, "jackets", "catalog/cup_data.json")
	assert.Equal(t, StatusFail, report.Status)
	assert.False(t, report.BucketExists)
}

func TestCheckStorage_MissingCatalogObject(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "jackets").Return(true, nil)
	client.On("ListObjects", mock.Anything, "jackets", mock.Anything).
		Return(objectChannel())

	report := CheckStorage(context.Background(), client, "jackets", "catalog/cup_data.json")
	assert.Equal(t, StatusWarning, report.Status)
	assert.True(t, report.BucketExists)
	assert.False(t, report.CatalogObjectPresent)
}

func TestCheckStorage_NotConfigured(t *testing.T) {
	report := CheckStorage(context.Background(), nil, "jackets", "catalog/cup_data.json")
	assert.Equal(t, StatusSkipped, report.Status)
}

func TestCheckDatabase_Pass(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(&catalog.RecordModel{}))

	report := CheckDatabase(db)
	assert.Equal(t, StatusPass, report.Status)
	assert.True(t, report.TablePresent)
	assert.Empty(t, report.MissingColumns)
}

func TestCheckDatabase_MissingTable(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	assert.NoError(t, err)

	report := CheckDatabase(db)
	assert.Equal(t, StatusFail, report.Status)
	assert.False(t, report.TablePresent)
}

func TestCheckDatabase_NotConfigured(t *testing.T) {
	report := CheckDatabase(nil)
	assert.Equal(t, StatusSkipped, report.Status)
}

func TestCheckAll_CombinesStatuses(t *testing.T) {
	svc := NewService(healthyStore(), nil, "jackets", "catalog/cup_data.json", nil, zap.NewNop())

	report := svc.CheckAll(context.Background())
	assert.Equal(t, StatusPass, report.Status)
	assert.Equal(t, StatusPass, report.Catalog.Status)
	assert.Equal(t, StatusSkipped, report.Storage.Status)
	assert.Equal(t, StatusSkipped, report.Database.Status)
	assert.NotEmpty(t, report.GeneratedAt)
}

func TestCombine(t *testing.T) {
	assert.Equal(t, StatusPass, combine(StatusPass, StatusSkipped))
	assert.Equal(t, StatusWarning, combine(StatusPass, StatusWarning, StatusSkipped))
	assert.Equal(t, StatusFail, combine(StatusWarning, StatusFail))
}
