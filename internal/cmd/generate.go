package cmd

import (
	"fmt"
	"os"

	"github.com/mchandra/offergen/internal/config"
	"github.com/mchandra/offergen/internal/generator"
	"github.com/mchandra/offergen/internal/ui"

	"github.com/spf13/cobra"
)

var (
	// Generation parameters (frequently changed)
	genCustomers int
	genDays      int
	genOutputDir string
	genFilename  string
	genSeed      int64
	genFormat    string
	genCompress  bool
	genXZPreset  int
	genPolicy    string
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate card transaction history files",
	Long: `Generate synthetic card transaction history for a customer roster.

Each customer gets a spending profile (favorite merchant categories,
weekday/weekend activity, time-of-day habits, spend distribution) and
an optional set of recurring subscription charges. Daily transactions
are then drawn from that profile across the requested window.

Output is a single CSV (optionally xz-compressed) or XLSX file.

Example:
  offergen generate --customers 5000 --days 365
  offergen generate --seed 42                        # Reproducible
  offergen generate --format xlsx --output ./out
  offergen generate --compress                       # .csv.xz output`,
	Run: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().IntVar(&genCustomers, "customers", config.BatchCustomers, "number of customers to generate")
	generateCmd.Flags().IntVar(&genDays, "days", config.BatchDays, "days of transaction history")
	generateCmd.Flags().StringVar(&genOutputDir, "output", ".", "output directory")
	generateCmd.Flags().StringVar(&genFilename, "filename", config.BatchFilename, "output filename without extension")
	generateCmd.Flags().Int64Var(&genSeed, "seed", 0, "random seed for reproducibility (0 = random)")
	generateCmd.Flags().StringVar(&genFormat, "format", "csv", "output format: csv or xlsx")
	generateCmd.Flags().BoolVar(&genCompress, "compress", false, "compress CSV output with xz (creates .csv.xz)")
	generateCmd.Flags().IntVar(&genXZPreset, "xz-preset", 6, "xz compression preset 0-9 (with --compress)")
	generateCmd.Flags().StringVar(&genPolicy, "category-policy", "merchant_derived", "merchant selection policy: merchant_derived or filter_pool")
}

func runGenerate(cmd *cobra.Command, args []string) {
	// Initialize UI
	u := ui.New()
	if noColor {
		u.SetNoColor(true)
	}

	if genFormat != "csv" && genFormat != "xlsx" {
		fmt.Fprintln(os.Stderr, u.Error(fmt.Sprintf("Unknown format %q (valid: csv, xlsx)", genFormat)))
		os.Exit(1)
	}

	// Check xz availability if compression is requested
	if genCompress && genFormat == "csv" {
		if err := generator.CheckXZAvailable(); err != nil {
			fmt.Fprintln(os.Stderr, u.Error("xz compression requested but xz is not available"))
			fmt.Fprintln(os.Stderr, "Install with: apt install xz-utils (Linux) or brew install xz (macOS)")
			os.Exit(1)
		}
	}

	fmt.Println(u.Header("Transaction History Generator"))
	fmt.Println()
	fmt.Println(u.KeyValue("Customers", fmt.Sprintf("%d", genCustomers)))
	fmt.Println(u.KeyValue("Days", fmt.Sprintf("%d", genDays)))
	fmt.Println(u.KeyValue("Format", genFormat))
	fmt.Println(u.KeyValue("Output", genOutputDir))
	if genSeed != 0 {
		fmt.Println(u.KeyValue("Seed", fmt.Sprintf("%d", genSeed)))
	}
	if genCompress && genFormat == "csv" {
		fmt.Println(u.KeyValue("Compression", "xz (.csv.xz)"))
	}
	fmt.Println()

	bar := u.NewProgressBar("Customers", int64(genCustomers))

	result, err := generator.RunBatch(generator.BatchConfig{
		Customers: genCustomers,
		Days:      genDays,
		Seed:      genSeed,
		OutputDir: genOutputDir,
		Filename:  genFilename,
		Format:    generator.OutputFormat(genFormat),
		Compress:  genCompress,
		XZPreset:  genXZPreset,
		Policy:    generator.CategoryPolicy(genPolicy),
		Currency:  config.BatchCurrency,
		Progress: func(done, total int64) {
			bar.Update(done)
		},
	})
	if err != nil {
		bar.Fail(err)
		os.Exit(1)
	}
	bar.Complete()

	printGenerateSummary(u, result)
	fmt.Println()
	fmt.Println(u.Success("Output written to: " + result.Path))
}

// printGenerateSummary prints a styled generation summary
func printGenerateSummary(u *ui.UI, result *generator.BatchResult) {
	items := []ui.KV{
		{Key: "Customers", Value: fmt.Sprintf("%d", result.Customers)},
		{Key: "Transactions", Value: fmt.Sprintf("%d", result.Transactions)},
		{Key: "Total Volume", Value: result.TotalVolume.Format(config.BatchCurrency)},
		{Key: "Seed", Value: fmt.Sprintf("%d", result.Seed)},
		{Key: "Duration", Value: result.Elapsed.Round(1 * 1e6).String()},
		{Key: "Status", Value: "Success"},
	}

	fmt.Println(u.SummaryBox("Generation Complete", items))
}
