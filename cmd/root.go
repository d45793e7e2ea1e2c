package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"kondate/internal/catalog"
	"kondate/internal/models"
	"kondate/internal/repositories/postgres"
	"kondate/internal/session"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "kondate",
	Short: "Picks tonight's dinner from a menu catalog",
	Long: `kondate loads a dinner menu catalog, narrows it by genre, dessert or
staple carbohydrate (or leaves it fully random), and draws one dish uniformly
at random. Rerolls draw again from the same candidates; repeats are allowed.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		records, err := loadCatalog(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading catalog: %v\n", err)
			os.Exit(1)
		}

		f, err := filterFromFlags()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		sess := session.New(cfg, records)
		if err := sess.Pick(f, cfg.Rerolls); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is examples/config.json)")

	rootCmd.PersistentFlags().String("genre", "", "Pick within one genre (和食, 洋食, 中華, その他, デザート)")
	rootCmd.PersistentFlags().Bool("dessert", false, "Pick a dessert")
	rootCmd.PersistentFlags().String("carb", "", "Pick by staple carbohydrate (米 or 麺)")
	rootCmd.PersistentFlags().Bool("random", false, "Pick from every non-dessert dish (the default)")

	rootCmd.PersistentFlags().String("catalog-file", "", "Catalog file path")
	rootCmd.PersistentFlags().String("source", "", "Catalog source: file or postgres")
	rootCmd.PersistentFlags().String("database-url", "", "Postgres connection URL")
	rootCmd.PersistentFlags().Int64("seed", 0, "Random seed (0 seeds from the clock)")

	rootCmd.Flags().Int("rerolls", 0, "Extra draws over the same candidate set")

	viper.BindPFlag("genre", rootCmd.PersistentFlags().Lookup("genre"))
	viper.BindPFlag("dessert", rootCmd.PersistentFlags().Lookup("dessert"))
	viper.BindPFlag("carb", rootCmd.PersistentFlags().Lookup("carb"))
	viper.BindPFlag("random", rootCmd.PersistentFlags().Lookup("random"))
	viper.BindPFlag("catalog_file", rootCmd.PersistentFlags().Lookup("catalog-file"))
	viper.BindPFlag("catalog_source", rootCmd.PersistentFlags().Lookup("source"))
	viper.BindPFlag("database_url", rootCmd.PersistentFlags().Lookup("database-url"))
	viper.BindPFlag("seed", rootCmd.PersistentFlags().Lookup("seed"))
	viper.BindPFlag("rerolls", rootCmd.Flags().Lookup("rerolls"))
}

// filterFromFlags builds the user's intent from the mode flags. With no mode
// flag set the pick is fully random (desserts excluded).
func filterFromFlags() (models.Filter, error) {
	genre := viper.GetString("genre")
	carb := viper.GetString("carb")

	modes := 0
	for _, set := range []bool{viper.GetBool("dessert"), genre != "", carb != "", viper.GetBool("random")} {
		if set {
			modes++
		}
	}
	if modes > 1 {
		return nil, fmt.Errorf("choose at most one of --genre, --dessert, --carb, --random")
	}

	switch {
	case viper.GetBool("dessert"):
		return models.DessertFilter{}, nil
	case genre != "":
		g, err := models.ParseGenre(genre)
		if err != nil {
			return nil, err
		}
		return models.GenreFilter{Genre: g}, nil
	case carb != "":
		c, err := models.ParseCarb(carb)
		if err != nil {
			return nil, err
		}
		f, err := models.NewCarbFilter(c)
		if err != nil {
			return nil, err
		}
		return f, nil
	default:
		return models.RandomFilter{}, nil
	}
}

// loadCatalog fetches the catalog from the configured source. The parser
// only ever sees a text blob; where it came from is decided here.
func loadCatalog(cfg *models.Config) ([]models.MenuRecord, error) {
	if cfg.CatalogSource == "postgres" {
		ctx := context.Background()
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("connecting to postgres: %w", err)
		}
		defer pool.Close()
		return postgres.NewMenuRecordRepository(pool).GetAll(ctx)
	}

	raw, err := os.ReadFile(cfg.CatalogFile)
	if err != nil {
		return nil, err
	}
	return catalog.Parse(string(raw))
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
