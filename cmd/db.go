package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"kondate/internal/catalog"
	"kondate/internal/models"
	"kondate/internal/repositories/postgres"
)

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Manages the postgres catalog store",
}

var dbLoadCmd = &cobra.Command{
	Use:   "load",
	Short: "Parses the catalog file and loads it into postgres",
	Run: func(cmd *cobra.Command, args []string) {
		withRepository(func(ctx context.Context, repo *postgres.MenuRecordRepository, cfg *models.Config) error {
			raw, err := os.ReadFile(cfg.CatalogFile)
			if err != nil {
				return err
			}
			records, err := catalog.Parse(string(raw))
			if err != nil {
				return err
			}

			if err := repo.Init(ctx); err != nil {
				return fmt.Errorf("creating table: %w", err)
			}
			if err := repo.DeleteAll(ctx); err != nil {
				return fmt.Errorf("clearing table: %w", err)
			}
			if err := repo.BulkCreate(ctx, records); err != nil {
				return fmt.Errorf("inserting records: %w", err)
			}
			fmt.Printf("Loaded %d records from %s\n", len(records), cfg.CatalogFile)
			return nil
		})
	},
}

var dbCountCmd = &cobra.Command{
	Use:   "count",
	Short: "Counts stored catalog records",
	Run: func(cmd *cobra.Command, args []string) {
		withRepository(func(ctx context.Context, repo *postgres.MenuRecordRepository, cfg *models.Config) error {
			count, err := repo.Count(ctx)
			if err != nil {
				return err
			}
			fmt.Println(count)
			return nil
		})
	},
}

var dbClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Removes every stored catalog record",
	Run: func(cmd *cobra.Command, args []string) {
		withRepository(func(ctx context.Context, repo *postgres.MenuRecordRepository, cfg *models.Config) error {
			return repo.DeleteAll(ctx)
		})
	},
}

func withRepository(fn func(ctx context.Context, repo *postgres.MenuRecordRepository, cfg *models.Config) error) {
	cfg, err := models.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error connecting to postgres: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := fn(ctx, postgres.NewMenuRecordRepository(pool), cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(dbCmd)
	dbCmd.AddCommand(dbLoadCmd)
	dbCmd.AddCommand(dbCountCmd)
	dbCmd.AddCommand(dbClearCmd)
}
