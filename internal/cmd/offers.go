package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/mchandra/offergen/internal/config"
	"github.com/mchandra/offergen/internal/data"
	"github.com/mchandra/offergen/internal/database"
	"github.com/mchandra/offergen/internal/generator"
	"github.com/mchandra/offergen/internal/ui"
	"github.com/mchandra/offergen/internal/utils"

	"github.com/spf13/cobra"
)

var (
	offersCount  int
	offersSeed   int64
	offersDB     string
	offersDriver string
)

// offersCmd represents the offers command
var offersCmd = &cobra.Command{
	Use:   "offers",
	Short: "Generate merchant offers into the database",
	Long: `Generate merchant promotions and load them into the offer database.

Offers span ten merchant categories with type-appropriate discount
shapes (percentage discounts, fixed cashbacks, BOGO, reward points),
coupon codes, validity windows, and affiliate tracking links.

The target table is replaced on every run. The default database is a
local SQLite file; pass a MySQL DSN with --driver mysql for MariaDB.

Example:
  offergen offers --count 1000
  offergen offers --db offers.db --seed 42
  offergen offers --driver mysql --db "user:pass@tcp(localhost:3306)/offers"`,
	Run: runOffers,
}

func init() {
	rootCmd.AddCommand(offersCmd)

	offersCmd.Flags().IntVar(&offersCount, "count", config.OfferCount, "number of offers to generate")
	offersCmd.Flags().Int64Var(&offersSeed, "seed", 0, "random seed for reproducibility (0 = random)")
	offersCmd.Flags().StringVar(&offersDB, "db", config.DBDSN, "database DSN (file path for sqlite)")
	offersCmd.Flags().StringVar(&offersDriver, "driver", config.DBDriver, "database driver: sqlite or mysql")
}

// openQueries connects to the database and ensures the schema exists
func openQueries(ctx context.Context, dsn, driver string) (*database.Queries, *database.Pool, error) {
	pool, err := database.NewPool(config.DatabaseConfig{
		DSN:          dsn,
		Driver:       driver,
		MaxOpenConns: config.DBMaxOpenConns,
		MaxIdleConns: config.DBMaxIdleConns,
	})
	if err != nil {
		return nil, nil, err
	}

	if err := pool.Connect(ctx); err != nil {
		pool.Close()
		return nil, nil, err
	}

	queries := database.NewQueries(pool)
	if err := queries.EnsureSchema(ctx); err != nil {
		pool.Close()
		return nil, nil, err
	}

	return queries, pool, nil
}

func runOffers(cmd *cobra.Command, args []string) {
	u := ui.New()
	if noColor {
		u.SetNoColor(true)
	}

	fmt.Println(u.Header("Offer Generator"))
	fmt.Println()
	fmt.Println(u.KeyValue("Offers", fmt.Sprintf("%d", offersCount)))
	fmt.Println(u.KeyValue("Database", offersDB))
	fmt.Println(u.KeyValue("Driver", offersDriver))
	if offersSeed != 0 {
		fmt.Println(u.KeyValue("Seed", fmt.Sprintf("%d", offersSeed)))
	}
	fmt.Println()

	ctx := context.Background()

	spin := u.NewSpinner("Connecting to database")
	spin.Start()
	queries, pool, err := openQueries(ctx, offersDB, offersDriver)
	if err != nil {
		spin.Error(err.Error())
		os.Exit(1)
	}
	defer pool.Close()
	spin.Success("ready")

	catalog, err := data.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, u.Error(err.Error()))
		os.Exit(1)
	}

	start := time.Now()
	rng := utils.NewRandom(offersSeed)
	offers := generator.NewOfferGenerator(catalog).Generate(rng, offersCount, time.Now())

	spinLoad := u.NewSpinner("Loading offers")
	spinLoad.Start()
	if err := queries.ReplaceOffers(ctx, offers); err != nil {
		spinLoad.Error(err.Error())
		os.Exit(1)
	}
	spinLoad.Success("loaded")

	count, err := queries.CountOffers(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, u.Error(err.Error()))
		os.Exit(1)
	}

	items := []ui.KV{
		{Key: "Offers", Value: fmt.Sprintf("%d", count)},
		{Key: "Seed", Value: fmt.Sprintf("%d", rng.Seed())},
		{Key: "Duration", Value: time.Since(start).Round(1 * 1e6).String()},
		{Key: "Status", Value: "Success"},
	}
	fmt.Println(u.SummaryBox("Offers Loaded", items))
}
