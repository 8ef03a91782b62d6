package cmd

import (
	"log"
	"time"

	"dvd-tracker/core/config"
	"dvd-tracker/core/database"
	"dvd-tracker/core/logger"
	"dvd-tracker/core/torrents"
	"dvd-tracker/feature/catalog/models"
	"dvd-tracker/feature/catalog/reconcile"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	refreshBatchSize   int
	refreshMaxAgeHours int
	refreshDelay       time.Duration
	refreshForce       bool
)

// refreshCmd refreshes the torrent availability cache for stale items.
var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Refresh torrent availability for the catalog",
	Long: `Looks up current torrent availability for items that have an IMDB id
and whose cached data is older than the maximum age. Provider calls are
spaced out by the configured delay.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()

		db, err := database.Connect(cfg.Database)
		if err != nil {
			return err
		}

		client := torrents.NewClient(cfg.Torrents, logg)

		query := db.Model(&models.Movie{}).Where("imdb_id <> ''")
		if !refreshForce {
			cutoff := time.Now().Add(-time.Duration(refreshMaxAgeHours) * time.Hour)
			query = query.Where("torrents_checked_at IS NULL OR torrents_checked_at < ?", cutoff)
		}

		var items []models.Movie
		if err := query.Limit(refreshBatchSize).Find(&items).Error; err != nil {
			return err
		}

		if len(items) == 0 {
			logg.Info("No items need availability updates")
			return nil
		}

		logg.Info("Refreshing availability",
			zap.Int("items", len(items)),
			zap.Duration("delay", refreshDelay))

		var succeeded, failed int
		for i := range items {
			item := &items[i]
			outcome, err := reconcile.RefreshAvailability(cmd.Context(), db, item, client, logg)
			switch {
			case err != nil:
				failed++
				logg.Error("Refresh failed",
					zap.String("name", item.Name),
					zap.Error(err))
			case outcome == reconcile.RefreshOK:
				succeeded++
				logg.Info("Refreshed",
					zap.String("name", item.Name),
					zap.Int("torrents", len(item.Torrents)))
			default:
				failed++
				logg.Warn("Refresh failed",
					zap.String("name", item.Name),
					zap.String("outcome", outcome.String()))
			}

			// Space out provider calls
			if i < len(items)-1 {
				time.Sleep(refreshDelay)
			}
		}

		logg.Info("Refresh completed",
			zap.Int("succeeded", succeeded),
			zap.Int("failed", failed))
		return nil
	},
}

func init() {
	refreshCmd.Flags().IntVar(&refreshBatchSize, "batch-size", 50, "number of items to process in one run")
	refreshCmd.Flags().IntVar(&refreshMaxAgeHours, "max-age-hours", 168, "maximum cache age before refresh")
	refreshCmd.Flags().DurationVar(&refreshDelay, "delay", time.Second, "pause between provider calls")
	refreshCmd.Flags().BoolVar(&refreshForce, "force", false, "refresh every item regardless of cache age")
	RootCmd.AddCommand(refreshCmd)
}
