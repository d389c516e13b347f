package cli

import (
	"errors"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vladislavdragonenkov/estore/internal/app"
)

var (
	seedPath    string
	jsonPath    string
	xmlPath     string
	metricsPath string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Fulfil pending orders and export the store",
	Long: `Build the store from --seed (or the demo data set), process every pending
order and write the JSON and XML exports. Orders that cannot be fulfilled are
reported and do not stop the export. With --metrics the run also writes its
counters in the Prometheus text format.`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func init() {
	defaults := app.DefaultConfig()
	runCmd.Flags().StringVar(&seedPath, "seed", "", "path to a TOML seed file (env "+app.EnvSeedPath+"); empty uses demo data")
	runCmd.Flags().StringVar(&jsonPath, "json", defaults.JSONPath, "JSON export path, empty disables (env "+app.EnvJSONPath+")")
	runCmd.Flags().StringVar(&xmlPath, "xml", defaults.XMLPath, "XML export path, empty disables (env "+app.EnvXMLPath+")")
	runCmd.Flags().StringVar(&metricsPath, "metrics", "", "Prometheus text file for run metrics, empty disables (env "+app.EnvMetricsPath+")")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, _ []string) error {
	cfg := baseConfig(cmd)
	if cmd.Flags().Changed("seed") {
		cfg.SeedPath = seedPath
	}
	if cmd.Flags().Changed("json") {
		cfg.JSONPath = jsonPath
	}
	if cmd.Flags().Changed("xml") {
		cfg.XMLPath = xmlPath
	}
	if cmd.Flags().Changed("metrics") {
		cfg.MetricsPath = metricsPath
	}

	deps := app.NewDependencies(log.WithField("component", "app"))
	report, err := app.Run(cmd.Context(), cfg, deps)
	if err != nil {
		return err
	}

	cmd.Printf("Store %s: %d fulfilled, %d rejected\n",
		report.Store.Name, report.Result.Fulfilled, report.Result.Rejected)
	for _, orderErr := range unwrapJoined(report.OrderErrs) {
		cmd.Printf("  order failed: %v\n", orderErr)
	}
	if len(report.Events) > 0 {
		cmd.Println("Journal:")
		for _, e := range report.Events {
			cmd.Printf("  %s %s %s x %d\n", e.Occurred.Format(time.RFC3339), e.Type, e.Product, e.Quantity)
		}
	}
	if report.JSONPath != "" {
		cmd.Printf("JSON saved to %s\n", report.JSONPath)
	}
	if report.XMLPath != "" {
		cmd.Printf("XML saved to %s\n", report.XMLPath)
	}
	if report.MetricsPath != "" {
		cmd.Printf("Metrics saved to %s\n", report.MetricsPath)
	}
	return nil
}

func unwrapJoined(err error) []error {
	if err == nil {
		return nil
	}
	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) {
		return joined.Unwrap()
	}
	return []error{err}
}
