package cli

import (
	"fmt"
	"io"

	"github.com/cyphera/gas-cost-report/internal/config"
	"github.com/cyphera/gas-cost-report/internal/logger"
	"github.com/cyphera/gas-cost-report/internal/scenarios"
	"github.com/cyphera/gas-cost-report/internal/services"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewRootCommand builds the gas-report command tree. Reports are written to out.
// Running the root command without a subcommand reports the standard scenario set.
func NewRootCommand(cfg config.Config, out io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "gas-report",
		Short:         "Gas cost reports for the SoundRise contract operations",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenarioSet(cfg, out, scenarios.SetStandard)
		},
	}
	rootCmd.SetOut(out)

	rootCmd.AddCommand(
		newScenarioSetCommand(cfg, out, scenarios.SetStandard, "Report gas costs for the base test scenarios"),
		newScenarioSetCommand(cfg, out, scenarios.SetExtended, "Report gas costs for the extended test scenarios"),
		newListCommand(out),
	)

	return rootCmd
}

func newScenarioSetCommand(cfg config.Config, out io.Writer, set, short string) *cobra.Command {
	return &cobra.Command{
		Use:   set,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenarioSet(cfg, out, set)
		},
	}
}

func newListCommand(out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "scenarios",
		Short: "List the available scenario sets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range scenarios.Names() {
				set, err := scenarios.Lookup(name)
				if err != nil {
					return err
				}
				if _, err := fmt.Fprintf(out, "%s (%d scenarios)\n", name, len(set)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// NewCalculator builds the gas cost service for cfg
func NewCalculator(cfg config.Config) *services.GasCostService {
	var opts []services.ConverterOption
	if cfg.HasRate {
		opts = append(opts, services.WithExchangeRate(cfg.ExchangeRate))
	}
	return services.NewGasCostService(cfg.GasPriceGwei, opts...)
}

func runScenarioSet(cfg config.Config, out io.Writer, set string) error {
	list, err := scenarios.Lookup(set)
	if err != nil {
		return err
	}

	logger.Info("Running gas cost report",
		zap.String("set", set),
		zap.Int("scenarios", len(list)),
		zap.Float64("gas_price_gwei", cfg.GasPriceGwei),
		zap.Bool("fiat", cfg.HasRate))

	reporter := services.NewGasReportService(NewCalculator(cfg), out)
	if err := reporter.ReportScenarios(list); err != nil {
		return fmt.Errorf("scenario set %s: %w", set, err)
	}
	return nil
}
