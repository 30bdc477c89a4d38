package integrity

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestApp() *fiber.App {
	app := fiber.New()
	feature := NewFeature(healthyStore(), nil, "jackets", "catalog/cup_data.json", nil, zap.NewNop())
	_ = feature.Load(app)
	return app
}

func TestHandleCheckAll(t *testing.T) {
	app := newTestApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/integrity", nil), -1)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var report Report
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
	assert.Equal(t, StatusPass, report.Status)
	assert.Equal(t, StatusSkipped, report.Storage.Status)
}

func TestHandleCheckCatalog(t *testing.T) {
	app := newTestApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/integrity/catalog", nil), -1)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var report CatalogReport
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
	assert.Equal(t, 2, report.TotalRecords)
}

func TestHandleCheckStorage_Skipped(t *testing.T) {
	app := newTestApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/integrity/storage", nil), -1)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var report StorageReport
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
	assert.Equal(t, StatusSkipped, report.Status)
}

func TestHandleCheckDatabase_Skipped(t *testing.T) {
	app := newTestApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/integrity/database", nil), -1)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var report DatabaseReport
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
	assert.Equal(t, StatusSkipped, report.Status)
}
