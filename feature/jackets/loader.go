package jackets

import (
	"jacket-manager/core/catalog"
	"jacket-manager/core/config"
	"jacket-manager/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the jacket processing feature.
func NewFeature(store *catalog.Store, client storage.Client, bucket string, export config.ExportConfig, logger *zap.Logger) *Feature {
	svc := NewService(store, client, bucket, export, logger)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "jackets"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
