package jackets

import (
	"errors"
	"io"

	"jacket-manager/core/catalog"
	"jacket-manager/core/logger"
	"jacket-manager/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for jacket processing.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the jacket processing routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/jackets")
	group.Post("/preview", h.HandlePreview)
	group.Post("/picklist", h.HandlePicklist)
	group.Post("/descriptors", h.HandleDescriptors)
}

// JobView is the on-screen representation of one reconciled jacket job.
// Missing display values fall back to "N/A"; the exported descriptors keep
// the raw values instead.
type JobView struct {
	OrderNo   string `json:"order_no"`
	ISBN      string `json:"isbn"`
	Title     string `json:"title"`
	Quantity  int    `json:"quantity"`
	TrimSize  string `json:"trim_size"`
	Treatment string `json:"treatment"`
	Route     string `json:"route"`
}

// PreviewResponse is the JSON body of a preview request.
type PreviewResponse struct {
	RunID       string                 `json:"run_id"`
	Filename    string                 `json:"filename"`
	PaceJobNo   string                 `json:"pace_job_no"`
	OrderDate   string                 `json:"order_date,omitempty"`
	Summary     reconcile.Summary      `json:"summary"`
	Guidance    string                 `json:"guidance,omitempty"`
	Jobs        []JobView              `json:"jobs"`
	Diagnostics []reconcile.Diagnostic `json:"diagnostics"`
}

// HandlePreview reconciles an uploaded order workbook and returns the result
// set without generating artifacts.
// @Summary Preview jacket jobs
// @Description Parse an order workbook, reconcile it against the catalog, and return the matched jobs, routes, and diagnostics.
// @Tags jackets
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Order workbook (.xlsx or .xls)"
// @Success 200 {object} jackets.PreviewResponse "Reconciliation result"
// @Failure 400 {object} map[string]string "Invalid upload"
// @Failure 503 {object} map[string]string "Catalog unavailable"
// @Router /jackets/preview [post]
func (h *Handler) HandlePreview(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	run, status, err := h.processUpload(c)
	if err != nil {
		l.Error("Preview failed", zap.Error(err))
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	jobs := make([]JobView, 0, len(run.Result.Jobs))
	for _, job := range run.Result.Jobs {
		jobs = append(jobs, JobView{
			OrderNo:   orNA(job.Row.Field(reconcile.FieldCustomerOrderNo).Trimmed()),
			ISBN:      orNA(job.ISBN),
			Title:     orNA(job.Title()),
			Quantity:  job.Quantity(),
			TrimSize:  job.Record.TrimHeight.String() + "x" + job.Record.TrimWidth.String(),
			Treatment: orNA(job.Record.CoverMediaTreatment),
			Route:     job.Route,
		})
	}

	return c.JSON(PreviewResponse{
		RunID:       run.ID.String(),
		Filename:    run.Filename,
		PaceJobNo:   run.PaceJobNo(),
		OrderDate:   run.OrderDate(),
		Summary:     run.Result.Summary,
		Guidance:    run.Result.Summary.Guidance(),
		Jobs:        jobs,
		Diagnostics: run.Result.Diagnostics,
	})
}

// HandlePicklist reconciles an uploaded order workbook and returns the
// printable PDF picklist.
// @Summary Generate picklist PDF
// @Description Parse an order workbook, reconcile it, and return the printable barcode picklist.
// @Tags jackets
// @Accept multipart/form-data
// @Produce application/pdf
// @Param file formData file true "Order workbook (.xlsx or .xls)"
// @Success 200 {file} binary "Picklist PDF"
// @Failure 400 {object} map[string]string "Invalid upload"
// @Failure 422 {object} map[string]string "No jacket jobs matched"
// @Failure 503 {object} map[string]string "Catalog unavailable"
// @Router /jackets/picklist [post]
func (h *Handler) HandlePicklist(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	run, status, err := h.processUpload(c)
	if err != nil {
		l.Error("Picklist generation failed", zap.Error(err))
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	data, filename, err := h.service.RenderPicklist(c.Context(), run)
	if err != nil {
		return h.exportError(c, l, run, err)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}

// HandleDescriptors reconciles an uploaded order workbook and returns the
// zipped per-job XML descriptors.
// @Summary Generate XML descriptors
// @Description Parse an order workbook, reconcile it, and return a ZIP of per-job XML descriptors.
// @Tags jackets
// @Accept multipart/form-data
// @Produce application/zip
// @Param file formData file true "Order workbook (.xlsx or .xls)"
// @Success 200 {file} binary "Descriptor ZIP"
// @Failure 400 {object} map[string]string "Invalid upload"
// @Failure 422 {object} map[string]string "No jacket jobs matched"
// @Failure 503 {object} map[string]string "Catalog unavailable"
// @Router /jackets/descriptors [post]
func (h *Handler) HandleDescriptors(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	run, status, err := h.processUpload(c)
	if err != nil {
		l.Error("Descriptor generation failed", zap.Error(err))
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	data, filename, err := h.service.RenderDescriptors(c.Context(), run)
	if err != nil {
		return h.exportError(c, l, run, err)
	}

	c.Set(fiber.HeaderContentType, "application/zip")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}

// processUpload reads the multipart upload and runs it through the pipeline,
// mapping pipeline errors to HTTP statuses.
func (h *Handler) processUpload(c *fiber.Ctx) (*Run, int, error) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return nil, fiber.StatusBadRequest, errors.New("missing file upload")
	}

	f, err := fileHeader.Open()
	if err != nil {
		return nil, fiber.StatusBadRequest, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fiber.StatusBadRequest, err
	}

	run, err := h.service.Process(c.Context(), fileHeader.Filename, data)
	if err != nil {
		if errors.Is(err, catalog.ErrUnavailable) {
			return nil, fiber.StatusServiceUnavailable, err
		}
		return nil, fiber.StatusBadRequest, err
	}
	return run, fiber.StatusOK, nil
}

// exportError maps artifact generation errors to HTTP statuses. An empty
// result set is the caller's problem, not the server's, so it answers 422
// with the summary's guidance message.
func (h *Handler) exportError(c *fiber.Ctx, l *zap.Logger, run *Run, err error) error {
	if errors.Is(err, ErrNoJobs) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":    err.Error(),
			"guidance": run.Result.Summary.Guidance(),
			"summary":  run.Result.Summary,
		})
	}
	l.Error("Artifact generation failed", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}

// orNA substitutes "N/A" for an empty display value.
func orNA(value string) string {
	if value == "" {
		return "N/A"
	}
	return value
}
