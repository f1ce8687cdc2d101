package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/mchandra/offergen/internal/config"
	"github.com/mchandra/offergen/internal/generator"
	"github.com/mchandra/offergen/internal/ui"
	"github.com/mchandra/offergen/internal/utils"

	"github.com/spf13/cobra"
)

var (
	targetSeed       int64
	targetDB         string
	targetDriver     string
	targetMax        int
	targetActiveOnly bool
)

// targetCmd represents the target command
var targetCmd = &cobra.Command{
	Use:   "target",
	Short: "Assign offers to customers",
	Long: `Assign offers to customers in the offer database.

Every customer gets between one and --max-per-customer distinct
offers. Run the offers and customers commands first; targeting reads
both tables and replaces the assignment table.

With --active-only, only offers whose validity window contains today
are eligible.

Example:
  offergen target --db offers.db
  offergen target --max-per-customer 5 --seed 42
  offergen target --active-only`,
	Run: runTarget,
}

func init() {
	rootCmd.AddCommand(targetCmd)

	targetCmd.Flags().Int64Var(&targetSeed, "seed", 0, "random seed for reproducibility (0 = random)")
	targetCmd.Flags().StringVar(&targetDB, "db", config.DBDSN, "database DSN (file path for sqlite)")
	targetCmd.Flags().StringVar(&targetDriver, "driver", config.DBDriver, "database driver: sqlite or mysql")
	targetCmd.Flags().IntVar(&targetMax, "max-per-customer", config.MaxOffersPerCustomer, "maximum offers per customer")
	targetCmd.Flags().BoolVar(&targetActiveOnly, "active-only", false, "only assign offers valid today")
}

func runTarget(cmd *cobra.Command, args []string) {
	u := ui.New()
	if noColor {
		u.SetNoColor(true)
	}

	fmt.Println(u.Header("Offer Targeting"))
	fmt.Println()
	fmt.Println(u.KeyValue("Database", targetDB))
	fmt.Println(u.KeyValue("Driver", targetDriver))
	fmt.Println(u.KeyValue("Max/Cust", fmt.Sprintf("%d", targetMax)))
	if targetActiveOnly {
		fmt.Println(u.KeyValue("Eligibility", "active offers only"))
	}
	if targetSeed != 0 {
		fmt.Println(u.KeyValue("Seed", fmt.Sprintf("%d", targetSeed)))
	}
	fmt.Println()

	ctx := context.Background()

	spin := u.NewSpinner("Connecting to database")
	spin.Start()
	queries, pool, err := openQueries(ctx, targetDB, targetDriver)
	if err != nil {
		spin.Error(err.Error())
		os.Exit(1)
	}
	defer pool.Close()
	spin.Success("ready")

	customerIDs, err := queries.CustomerIDs(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, u.Error(err.Error()))
		os.Exit(1)
	}
	if len(customerIDs) == 0 {
		fmt.Fprintln(os.Stderr, u.Error("No customers in database; run 'offergen customers' first"))
		os.Exit(1)
	}

	now := time.Now()
	var offerIDs []string
	if targetActiveOnly {
		offerIDs, err = queries.ActiveOfferIDs(ctx, now)
	} else {
		offerIDs, err = queries.OfferIDs(ctx)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, u.Error(err.Error()))
		os.Exit(1)
	}
	if len(offerIDs) == 0 {
		fmt.Fprintln(os.Stderr, u.Error("No eligible offers in database; run 'offergen offers' first"))
		os.Exit(1)
	}

	start := time.Now()
	rng := utils.NewRandom(targetSeed)
	assignments := generator.BuildTargeting(rng, customerIDs, offerIDs, targetMax, now)

	spinLoad := u.NewSpinner("Loading assignments")
	spinLoad.Start()
	if err := queries.ReplaceTargeting(ctx, assignments); err != nil {
		spinLoad.Error(err.Error())
		os.Exit(1)
	}
	spinLoad.Success("loaded")

	count, err := queries.CountTargeting(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, u.Error(err.Error()))
		os.Exit(1)
	}

	items := []ui.KV{
		{Key: "Customers", Value: fmt.Sprintf("%d", len(customerIDs))},
		{Key: "Offers", Value: fmt.Sprintf("%d eligible", len(offerIDs))},
		{Key: "Assignments", Value: fmt.Sprintf("%d", count)},
		{Key: "Seed", Value: fmt.Sprintf("%d", rng.Seed())},
		{Key: "Duration", Value: time.Since(start).Round(1 * 1e6).String()},
		{Key: "Status", Value: "Success"},
	}
	fmt.Println(u.SummaryBox("Targeting Complete", items))
}
