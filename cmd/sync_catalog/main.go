package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/joho/godotenv"

	"epoxyworld-backend/internal/config"
	"epoxyworld-backend/internal/models"
	"epoxyworld-backend/internal/services"
)

// SyncOrchestrator runs the full catalog sync pipeline: fetch from Square,
// transform into website products, merge with the persisted list, write.
type SyncOrchestrator struct {
	squareClient *services.SquareClient
	s3Client     *services.S3Client
	store        *services.ProductStore
	runID        string
	startTime    time.Time
}

// SyncOptions are the command-line options for one run.
type SyncOptions struct {
	DryRun        bool
	ProductFilter string
}

// NewSyncOrchestrator creates an orchestrator with all required services.
func NewSyncOrchestrator(ctx context.Context, cfg *config.SyncConfig) (*SyncOrchestrator, error) {
	squareClient := services.NewSquareClient(cfg.Square.BaseURL(), cfg.Square.AccessToken)

	s3Client, err := services.NewS3Client(ctx, cfg.AWS.S3Bucket, cfg.AWS.Region, cfg.Paths.ImagesPrefix)
	if err != nil {
		return nil, err
	}

	return &SyncOrchestrator{
		squareClient: squareClient,
		s3Client:     s3Client,
		store:        services.NewProductStore(cfg.Paths.ProductsFile),
		runID:        models.GenerateSyncRunID(time.Now()),
		startTime:    time.Now(),
	}, nil
}

// Run executes one sync. A fetch or load failure is fatal; a per-item image
// failure skips that item, leaving its prior record untouched by the merge.
func (o *SyncOrchestrator) Run(ctx context.Context, opts SyncOptions) (*models.SyncRun, error) {
	log.Printf("Starting catalog sync run %s (dry-run: %v)", o.runID, opts.DryRun)

	run := &models.SyncRun{
		ID:            o.runID,
		StartedAt:     o.startTime,
		DryRun:        opts.DryRun,
		ProductFilter: opts.ProductFilter,
	}

	log.Printf("Fetching products from Square...")
	items, err := o.squareClient.FetchCatalogItems(ctx)
	if err != nil {
		return o.failRun(ctx, run, err)
	}
	log.Printf("Found %d products", len(items))
	run.ItemsFetched = len(items)

	if opts.ProductFilter != "" {
		items = services.FilterItems(items, opts.ProductFilter)
		log.Printf("Filtered to %d products matching %q", len(items), opts.ProductFilter)
	}

	log.Printf("Loading existing product data...")
	existingProducts, err := o.store.Load()
	if err != nil {
		return o.failRun(ctx, run, err)
	}
	log.Printf("Loaded %d existing products", len(existingProducts))

	log.Printf("Processing products...")
	processed := services.ProcessItems(ctx, items, existingProducts, o.s3Client, services.ProcessOptions{
		DryRun: opts.DryRun,
		Now:    time.Now().UTC(),
	})
	run.ItemsSynced = len(processed.Products)
	run.ItemsSkipped = processed.Skipped
	run.Errors = append(run.Errors, processed.Errors...)

	finalProducts := services.Merge(existingProducts, processed.Products)
	log.Printf("Final catalog: %d products", len(finalProducts))
	run.TotalProducts = len(finalProducts)

	changes := services.Diff(existingProducts, finalProducts)
	printChanges(changes)
	run.ProductsAdded = len(changes.Added)
	run.ProductsRemoved = len(changes.Removed)
	run.ProductsUpdated = len(changes.Updated)

	if opts.DryRun {
		log.Printf("DRY RUN - no changes saved")
	} else {
		log.Printf("Saving changes...")
		if err := o.store.Save(finalProducts); err != nil {
			return o.failRun(ctx, run, err)
		}
		log.Printf("Products saved to %s (backup at %s)", o.store.Path(), o.store.BackupPath())
	}

	run.MarkCompleted(time.Now())

	if !opts.DryRun {
		if result, err := o.s3Client.UploadSyncRun(ctx, run); err != nil {
			log.Printf("Warning: failed to upload sync run record: %v", err)
		} else {
			log.Printf("Uploaded sync run record: %s", result.Key)
		}
	}

	return run, nil
}

// failRun finalizes and best-effort uploads the run record after a fatal
// error, then passes the error through.
func (o *SyncOrchestrator) failRun(ctx context.Context, run *models.SyncRun, err error) (*models.SyncRun, error) {
	run.MarkFailed(err, time.Now())
	if !run.DryRun {
		if _, uploadErr := o.s3Client.UploadSyncRun(ctx, run); uploadErr != nil {
			log.Printf("Warning: failed to upload sync run record: %v", uploadErr)
		}
	}
	return run, err
}

func printChanges(changes services.ChangeSet) {
	log.Printf("Changes preview:")

	if len(changes.Added) > 0 {
		log.Printf("  Added (%d):", len(changes.Added))
		for _, p := range changes.Added {
			log.Printf("    + %s", p.Name)
		}
	}

	if len(changes.Removed) > 0 {
		log.Printf("  Removed (%d):", len(changes.Removed))
		for _, p := range changes.Removed {
			log.Printf("    - %s", p.Name)
		}
	}

	if len(changes.Updated) > 0 {
		log.Printf("  Updated (%d):", len(changes.Updated))
		for _, c := range changes.Updated {
			if c.OldBasePrice != c.NewBasePrice {
				log.Printf("    ~ %s (price: $%d -> $%d)", c.Name, c.OldBasePrice, c.NewBasePrice)
			} else {
				log.Printf("    ~ %s", c.Name)
			}
		}
	}

	if changes.Empty() {
		log.Printf("  No changes detected")
	}
}

func main() {
	dryRun := flag.Bool("dry-run", false, "preview changes without uploading images or writing the products file")
	productFilter := flag.String("product", "", "only sync items whose name contains this string (case-insensitive)")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: could not load .env file: %v", err)
	}

	cfg, err := config.LoadSync()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	orchestrator, err := NewSyncOrchestrator(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize sync: %v", err)
	}

	run, err := orchestrator.Run(ctx, SyncOptions{
		DryRun:        *dryRun,
		ProductFilter: *productFilter,
	})
	if err != nil {
		log.Fatalf("Sync failed: %v", err)
	}

	log.Printf("Sync complete!")
	log.Printf("Summary: synced %d of %d fetched items, %d total products, %dms",
		run.ItemsSynced, run.ItemsFetched, run.TotalProducts, run.DurationMS)
}
