package integrity

import (
	"jacket-manager/core/logger"

	"github.com/gofiber/fiber/v2"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleCheckAll)
	group.Get("/catalog", h.HandleCheckCatalog)
	group.Get("/storage", h.HandleCheckStorage)
	group.Get("/database", h.HandleCheckDatabase)
}

// HandleCheckAll returns the combined integrity report.
// @Summary Full integrity check
// @Description Check the catalog, storage, and database backends and return a combined report.
// @Tags integrity
// @Produce json
// @Success 200 {object} integrity.Report "Integrity report"
// @Router /integrity [get]
func (h *Handler) HandleCheckAll(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Running full integrity check")
	return c.JSON(h.service.CheckAll(c.Context()))
}

// HandleCheckCatalog returns the catalog integrity report.
// @Summary Catalog integrity check
// @Description Check the loaded catalog for duplicates, unroutable records, and missing artwork.
// @Tags integrity
// @Produce json
// @Success 200 {object} integrity.CatalogReport "Catalog report"
// @Router /integrity/catalog [get]
func (h *Handler) HandleCheckCatalog(c *fiber.Ctx) error {
	return c.JSON(h.service.CheckCatalog(c.Context()))
}

// HandleCheckStorage returns the storage integrity report.
// @Summary Storage integrity check
// @Description Check bucket reachability and the presence of the catalog export object.
// @Tags integrity
// @Produce json
// @Success 200 {object} integrity.StorageReport "Storage report"
// @Router /integrity/storage [get]
func (h *Handler) HandleCheckStorage(c *fiber.Ctx) error {
	return c.JSON(h.service.CheckStorage(c.Context()))
}

// HandleCheckDatabase returns the database integrity report.
// @Summary Database integrity check
// @Description Check that the catalog table exists and carries the expected columns.
// @Tags integrity
// @Produce json
// @Success 200 {object} integrity.DatabaseReport "Database report"
// @Router /integrity/database [get]
func (h *Handler) HandleCheckDatabase(c *fiber.Ctx) error {
	return c.JSON(h.service.CheckDatabase(c.Context()))
}
