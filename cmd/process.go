package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"jacket-manager/core/catalog"
	"jacket-manager/core/config"
	"jacket-manager/core/database"
	"jacket-manager/core/logger"
	"jacket-manager/core/reconcile"
	"jacket-manager/core/storage"
	"jacket-manager/feature/jackets"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	processPicklist    bool
	processDescriptors bool
	processOut         string
	processJSON        bool
)

// processCmd represents the process command
var processCmd = &cobra.Command{
	Use:   "process <workbook>",
	Short: "Process an order workbook without starting the server",
	Long: `Reconciles a customer order workbook against the catalog and prints the
result. With --picklist or --descriptors the corresponding artifacts are
written to the output directory.`,
	Args: cobra.ExactArgs(1),
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

		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read workbook: %w", err)
		}

		svc := jackets.NewService(store, client, cfg.Storage.Bucket, cfg.Export, logg)
		run, err := svc.Process(ctx, filepath.Base(args[0]), data)
		if err != nil {
			return err
		}

		summary := run.Result.Summary
		fmt.Println("\n=== Jacket Reconciliation ===")
		fmt.Printf("Job Number: %s\n", run.PaceJobNo())
		fmt.Printf("Total Rows: %d\n", summary.TotalRows)
		fmt.Printf("Jacket Jobs: %d\n", summary.EligibleRows)
		fmt.Printf("Matched: %d\n", summary.MatchedJobs)
		fmt.Printf("Total Jackets Required: %d\n", run.TotalQuantity())

		for _, job := range run.Result.Jobs {
			fmt.Printf("  %s  %-40s qty %-3d %s\n", job.ISBN, job.Title(), job.Quantity(), job.Route)
		}
		for _, diag := range run.Result.Diagnostics {
			fmt.Printf("  ! %s: %s\n", diag.ISBN, diag.Reason)
		}
		if msg := summary.Guidance(); msg != "" {
			fmt.Println(msg)
		}

		if processJSON {
			if err := writeArtifact(logg, processOut, "Jacket_Preview_"+run.PaceJobNo()+".json", marshalRun(run)); err != nil {
				return err
			}
		}

		if !summary.HasJobs() {
			if processPicklist || processDescriptors {
				logg.Warn("Skipping artifact generation; no jacket jobs matched")
			}
			return nil
		}

		if processPicklist {
			data, filename, err := svc.RenderPicklist(ctx, run)
			if err != nil {
				return err
			}
			if err := writeArtifact(logg, processOut, filename, data); err != nil {
				return err
			}
		}

		if processDescriptors {
			data, filename, err := svc.RenderDescriptors(ctx, run)
			if err != nil {
				return err
			}
			if err := writeArtifact(logg, processOut, filename, data); err != nil {
				return err
			}
		}

		return nil
	},
}

// loadCatalogSync resolves the configured catalog source and loads it
// synchronously. One-shot commands have no server to hide behind; a broken
// catalog fails the command.
func loadCatalogSync(ctx context.Context, cfg *config.Config, logg *zap.Logger) (*catalog.Store, storage.Client, error) {
	var db *gorm.DB
	if cfg.Catalog.Source == catalog.SourceDatabase {
		conn, err := database.Connect(cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("database connection required: %w", err)
		}
		db = conn
	}

	var client storage.Client
	if cfg.Storage.Endpoint != "" {
		c, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		client = c
	}

	src, err := catalog.NewSource(cfg.Catalog, client, cfg.Storage.Bucket, db)
	if err != nil {
		return nil, nil, err
	}

	records, err := src.Load(ctx)
	if err != nil {
		return nil, nil, err
	}

	store := catalog.NewStore()
	store.Populate(records)
	logg.Info("Catalog loaded",
		zap.String("source", src.Name()),
		zap.Int("records", store.Len()))
	if dupes := store.Duplicates(); len(dupes) > 0 {
		logg.Warn("Catalog contains duplicate ISBNs; first occurrence wins",
			zap.Strings("isbns", dupes))
	}
	return store, client, nil
}

// writeArtifact writes one generated artifact into the output directory.
func writeArtifact(logg *zap.Logger, dir, filename string, data []byte) error {
	if dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	logg.Info("Artifact written", zap.String("file", path), zap.Int("bytes", len(data)))
	return nil
}

// marshalRun renders the reconciliation result as indented JSON.
func marshalRun(run *jackets.Run) []byte {
	view := struct {
		RunID     string            `json:"run_id"`
		Filename  string            `json:"filename"`
		PaceJobNo string            `json:"pace_job_no"`
		Result    *reconcile.Result `json:"result"`
	}{
		RunID:     run.ID.String(),
		Filename:  run.Filename,
		PaceJobNo: run.PaceJobNo(),
		Result:    run.Result,
	}
	data, _ := json.MarshalIndent(view, "", "  ")
	return data
}

func init() {
	RootCmd.AddCommand(processCmd)
	processCmd.Flags().BoolVar(&processPicklist, "picklist", false, "Write the picklist PDF")
	processCmd.Flags().BoolVar(&processDescriptors, "descriptors", false, "Write the descriptor ZIP")
	processCmd.Flags().StringVar(&processOut, "out", ".", "Output directory for artifacts")
	processCmd.Flags().BoolVar(&processJSON, "json", false, "Write the reconciliation result as JSON")
}
