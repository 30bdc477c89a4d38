package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"jacket-manager/core/catalog"
	"jacket-manager/core/config"
	"jacket-manager/core/database"
	"jacket-manager/core/loader"
	"jacket-manager/core/logger"
	"jacket-manager/core/middleware/auth"
	"jacket-manager/core/middleware/rayid"
	"jacket-manager/core/storage"

	"jacket-manager/feature/integrity"
	"jacket-manager/feature/jackets"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "jacket-manager/docs/swagger"
)

// @title Jacket Manager API
// @version 1.0
// @description API for reconciling jacket orders against the book production catalog.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the jacket manager server",
	Long:  `Starts the HTTP server, loads the catalog in the background, and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Connect to Database (Optional unless the catalog lives there)
		var db *gorm.DB
		if conn, err := database.Connect(cfg.Database); err != nil {
			if cfg.Catalog.Source == catalog.SourceDatabase {
				logg.Fatal("Catalog source is database but connection failed", zap.Error(err))
			}
			logg.Warn("Optional database connection failed", zap.Error(err))
		} else {
			db = conn
			logg.Info("Connected to catalog database")
		}

		// 4. Initialize Storage (Optional unless the catalog or exports use it)
		var client storage.Client
		if cfg.Storage.Endpoint != "" {
			client, err = storage.NewClient(cfg.Storage)
			if err != nil {
				logg.Fatal("Failed to create storage client", zap.Error(err))
			}
		} else if cfg.Catalog.Source == catalog.SourceStorage {
			logg.Fatal("Catalog source is storage but no storage endpoint is configured")
		}

		// 5. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 6. Load the catalog in the background. Uploads are accepted
		// immediately; reconciliation requests answer 503 until the store
		// becomes ready.
		store := catalog.NewStore()
		go loadCatalog(context.Background(), store, cfg, client, db, logg)

		// 7. Initialize Feature Loader
		mgr := loader.NewManager()

		// Register Features
		mgr.Register(jackets.NewFeature(store, client, cfg.Storage.Bucket, cfg.Export, logg))
		mgr.Register(integrity.NewFeature(store, client, cfg.Storage.Bucket, cfg.Catalog.Object, db, logg))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Logging Middleware (Custom to use Zap + RayID)
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// 2.5 Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 3. Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 8. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 9. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 10. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

// loadCatalog resolves the configured source and populates the store.
// Failures leave the store not ready with the cause attached so requests
// answer with the real error instead of a generic 503.
func loadCatalog(ctx context.Context, store *catalog.Store, cfg *config.Config, client storage.Client, db *gorm.DB, logg *zap.Logger) {
	src, err := catalog.NewSource(cfg.Catalog, client, cfg.Storage.Bucket, db)
	if err != nil {
		store.Fail(err)
		logg.Error("Failed to resolve catalog source", zap.Error(err))
		return
	}

	records, err := src.Load(ctx)
	if err != nil {
		store.Fail(err)
		logg.Error("Failed to load catalog", zap.String("source", src.Name()), zap.Error(err))
		return
	}

	store.Populate(records)
	logg.Info("Catalog loaded",
		zap.String("source", src.Name()),
		zap.Int("records", store.Len()))
	if dupes := store.Duplicates(); len(dupes) > 0 {
		logg.Warn("Catalog contains duplicate ISBNs; first occurrence wins",
			zap.Strings("isbns", dupes))
	}
}

func init() {
	RootCmd.AddCommand(startCmd)
}
