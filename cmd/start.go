package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"dvd-tracker/core/config"
	"dvd-tracker/core/database"
	"dvd-tracker/core/loader"
	"dvd-tracker/core/logger"
	"dvd-tracker/core/metadata"
	"dvd-tracker/core/middleware/auth"
	"dvd-tracker/core/middleware/rayid"
	"dvd-tracker/core/storage"
	"dvd-tracker/core/torrents"
	"dvd-tracker/feature/catalog"
	"dvd-tracker/feature/catalog/models"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "dvd-tracker/docs/swagger"
)

// @title DVD Tracker API
// @version 1.0
// @description API for tracking a personal movie collection.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the collection tracker server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.Load(".")
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

		// 3. Connect to Database (required, the catalog lives there)
		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Failed to connect to database", zap.Error(err))
		}
		if err := db.AutoMigrate(&models.Movie{}); err != nil {
			logg.Fatal("Failed to migrate catalog schema", zap.Error(err))
		}
		if missing, err := database.VerifyTable(db, models.Movie{}.TableName(), []string{"id", "name", "status"}); err != nil {
			logg.Warn("Schema verification skipped", zap.Error(err))
		} else if len(missing) > 0 {
			logg.Fatal("Catalog table is missing columns", zap.Strings("columns", missing))
		}

		// 4. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We log our own startup message
		})

		// 5. Initialize Storage (poster bucket)
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}
		if err := storage.EnsureBucket(cmd.Context(), store, cfg.Storage.Bucket); err != nil {
			logg.Warn("Poster bucket unavailable, posters disabled", zap.Error(err))
		}

		// 6. Provider Clients
		meta := metadata.NewClient(cfg.Metadata, logg)
		torrentClient := torrents.NewClient(cfg.Torrents, logg)

		// 7. Feature Loader
		mgr := loader.NewManager()
		mgr.Register(catalog.NewFeature(db, logg, meta, torrentClient, store, cfg.Storage.Bucket, cfg.Server.PageSize))

		// Middleware Registration
		// RayID first so every request is traceable
		app.Use(rayid.New())

		// Request logging with Zap + RayID
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

		// Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// Auth (protects the API; empty key disables it)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
