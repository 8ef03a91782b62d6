package cmd

import (
	"log"
	"os"

	"dvd-tracker/core/config"
	"dvd-tracker/core/database"
	"dvd-tracker/core/logger"
	"dvd-tracker/feature/catalog"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var exportOutput string

// exportCmd dumps the catalog as CSV.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the catalog as CSV",
	Long:  `Writes the whole collection as CSV to a file, or stdout when no output path is given.`,
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

		out := os.Stdout
		if exportOutput != "" {
			f, err := os.Create(exportOutput)
			if err != nil {
				return err
			}
			defer f.Close()
			out = f
		}

		// The export path only needs the database; provider clients stay nil.
		svc := catalog.NewService(db, logg, nil, nil, nil, "", cfg.Server.PageSize)
		if err := svc.ExportCSV(cmd.Context(), out); err != nil {
			return err
		}

		if exportOutput != "" {
			logg.Info("Catalog exported", zap.String("output", exportOutput))
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default stdout)")
	RootCmd.AddCommand(exportCmd)
}
