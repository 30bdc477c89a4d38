package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"jacket-manager/core/config"
	"jacket-manager/core/database"
	"jacket-manager/core/logger"
	"jacket-manager/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var catalogJSON bool

// catalogCmd represents the catalog command
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Check the integrity of the catalog and its backends",
	Long: `Loads the catalog from the configured source and reports duplicate ISBNs,
jacketed records that cannot be routed, and missing artwork references,
along with storage and database backend health.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer logg.Sync()

		store, client, err := loadCatalogSync(ctx, cfg, logg)
		if err != nil {
			return err
		}

		// The one-shot check reuses the server's integrity service. The
		// database handle is optional here; without one the database check
		// reports SKIPPED.
		var db *gorm.DB
		if conn, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional database connection failed", zap.Error(err))
		} else {
			db = conn
		}

		svc := integrity.NewService(store, client, cfg.Storage.Bucket, cfg.Catalog.Object, db, logg)
		report := svc.CheckAll(ctx)

		fmt.Println("\n=== Catalog Integrity ===")
		fmt.Printf("Status: %s\n", report.Status)
		fmt.Printf("Total Records: %d\n", report.Catalog.TotalRecords)
		fmt.Printf("Unique Records: %d\n", report.Catalog.UniqueRecords)
		fmt.Printf("Jacketed Records: %d\n", report.Catalog.JacketedRecords)
		fmt.Printf("Duplicate ISBNs: %d\n", len(report.Catalog.DuplicateISBNs))
		fmt.Printf("Unroutable Records: %d\n", len(report.Catalog.UnroutableRecords))
		fmt.Printf("Missing Artwork: %d\n", len(report.Catalog.MissingArtwork))
		fmt.Printf("Storage: %s\n", report.Storage.Status)
		fmt.Printf("Database: %s\n", report.Database.Status)
		fmt.Printf("Execution Time: %s\n", report.ExecutionTime)

		if catalogJSON {
			filename := fmt.Sprintf("integrity_catalog_%d.json", time.Now().Unix())
			data, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal JSON: %w", err)
			}
			if err := os.WriteFile(filename, data, 0644); err != nil {
				return fmt.Errorf("failed to save JSON file: %w", err)
			}
			logg.Info("Detailed JSON report saved", zap.String("file", filename))
		}

		return nil
	},
}

func init() {
	RootCmd.AddCommand(catalogCmd)
	catalogCmd.Flags().BoolVar(&catalogJSON, "json", false, "Save the full report as JSON")
}
