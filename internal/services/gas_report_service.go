package services

import (
	"fmt"
	"io"

	"github.com/cyphera/gas-cost-report/internal/constants"
	"github.com/cyphera/gas-cost-report/internal/helpers"
	"github.com/cyphera/gas-cost-report/internal/logger"
	"github.com/cyphera/gas-cost-report/internal/types/business"
	"github.com/davecgh/go-spew/spew"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// GasReportService writes per-step and total gas cost blocks for gas-used sequences
type GasReportService struct {
	calculator GasCostCalculator
	out        io.Writer
	logger     *zap.Logger
}

// NewGasReportService creates a new gas report service writing to out
func NewGasReportService(calculator GasCostCalculator, out io.Writer) *GasReportService {
	return &GasReportService{
		calculator: calculator,
		out:        out,
		logger:     logger.Log,
	}
}

// Report computes the cost of each gas-used value in order and writes the report block.
// An empty label is reported as "Transaction". The first write error aborts the report.
func (s *GasReportService) Report(gasUsed []int64, label string) (business.GasCostTotals, error) {
	if label == "" {
		label = constants.DefaultReportLabel
	}

	log := s.logger.With(
		zap.String("run_id", uuid.NewString()),
		zap.String("label", label),
		zap.Int("steps", len(gasUsed)))
	log.Debug("Generating gas cost report")

	w := &reportWriter{out: s.out}
	fiat := s.calculator.HasExchangeRate()

	totals := business.GasCostTotals{}
	var totalUSD float64

	w.printf("\n%s:\n", label)
	for i, g := range gasUsed {
		cost := s.calculator.Compute(g)
		if ce := log.Check(zapcore.DebugLevel, "Computed gas cost"); ce != nil {
			ce.Write(zap.Int("step", i+1), zap.String("record", spew.Sdump(cost)))
		}

		totals.Steps++
		totals.TotalGasUsed += cost.GasUsed
		totals.TotalETH += cost.CostETH
		if fiat && cost.CostUSD != nil {
			totalUSD += *cost.CostUSD
		}

		w.printf("Step %d:\n", i+1)
		w.printf("  Gas Used: %d\n", cost.GasUsed)
		w.printf("  Gas Price: %s Gwei\n", helpers.FormatGasPrice(cost.GasPriceGwei))
		w.printf("  Cost: %s %s\n", helpers.FormatDecimalString(cost.CostETH, constants.ETHDecimals), constants.ETHCurrency)
		if cost.HasFiat() {
			w.printf("  Cost: $%s %s\n", helpers.FormatDecimalString(*cost.CostUSD, constants.USDDecimals), constants.USDCurrency)
		}
	}

	w.printf("Total for %s:\n", label)
	w.printf("  Total Gas Used: %d\n", totals.TotalGasUsed)
	w.printf("  Total Cost: %s %s\n", helpers.FormatDecimalString(totals.TotalETH, constants.ETHDecimals), constants.ETHCurrency)
	if fiat {
		totals.TotalUSD = &totalUSD
		w.printf("  Total Cost: $%s %s\n", helpers.FormatDecimalString(totalUSD, constants.USDDecimals), constants.USDCurrency)
	}

	if w.err != nil {
		log.Error("Failed to write gas cost report", zap.Error(w.err))
		return totals, fmt.Errorf("failed to write report for %q: %w", label, w.err)
	}

	log.Debug("Gas cost report complete",
		zap.Int64("total_gas_used", totals.TotalGasUsed),
		zap.Float64("total_eth", totals.TotalETH))

	return totals, nil
}

// ReportScenarios reports each scenario in order, stopping at the first failure
func (s *GasReportService) ReportScenarios(scenarios []business.GasScenario) error {
	for _, scenario := range scenarios {
		if _, err := s.Report(scenario.GasUsed, scenario.Label); err != nil {
			return err
		}
	}
	return nil
}

// reportWriter keeps the first write error and skips later writes
type reportWriter struct {
	out io.Writer
	err error
}

func (w *reportWriter) printf(format string, args ...interface{}) {
	if w.err != nil {
		return
	}
	_, w.err = fmt.Fprintf(w.out, format, args...)
}
