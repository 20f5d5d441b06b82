package services_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/cyphera/gas-cost-report/internal/mocks"
	"github.com/cyphera/gas-cost-report/internal/services"
	"github.com/cyphera/gas-cost-report/internal/types/business"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGasReportService_Report(t *testing.T) {
	tests := []struct {
		name       string
		opts       []services.ConverterOption
		gasUsed    []int64
		label      string
		wantOutput string
	}{
		{
			name:    "single step with fiat",
			opts:    []services.ConverterOption{services.WithExchangeRate(3000)},
			gasUsed: []int64{70755},
			label:   "Scenario 1: Artist Registration",
			wantOutput: "\nScenario 1: Artist Registration:\n" +
				"Step 1:\n" +
				"  Gas Used: 70755\n" +
				"  Gas Price: 15.0 Gwei\n" +
				"  Cost: 0.00106132 ETH\n" +
				"  Cost: $3.18 USD\n" +
				"Total for Scenario 1: Artist Registration:\n" +
				"  Total Gas Used: 70755\n" +
				"  Total Cost: 0.00106132 ETH\n" +
				"  Total Cost: $3.18 USD\n",
		},
		{
			name:    "no exchange rate omits fiat lines",
			gasUsed: []int64{70755, 195241},
			label:   "No Fiat",
			wantOutput: "\nNo Fiat:\n" +
				"Step 1:\n" +
				"  Gas Used: 70755\n" +
				"  Gas Price: 15.0 Gwei\n" +
				"  Cost: 0.00106132 ETH\n" +
				"Step 2:\n" +
				"  Gas Used: 195241\n" +
				"  Gas Price: 15.0 Gwei\n" +
				"  Cost: 0.00292861 ETH\n" +
				"Total for No Fiat:\n" +
				"  Total Gas Used: 265996\n" +
				"  Total Cost: 0.00398994 ETH\n",
		},
		{
			name:    "empty label defaults to Transaction",
			opts:    []services.ConverterOption{services.WithExchangeRate(3000)},
			gasUsed: []int64{78384},
			wantOutput: "\nTransaction:\n" +
				"Step 1:\n" +
				"  Gas Used: 78384\n" +
				"  Gas Price: 15.0 Gwei\n" +
				"  Cost: 0.00117576 ETH\n" +
				"  Cost: $3.53 USD\n" +
				"Total for Transaction:\n" +
				"  Total Gas Used: 78384\n" +
				"  Total Cost: 0.00117576 ETH\n" +
				"  Total Cost: $3.53 USD\n",
		},
		{
			name:    "empty sequence prints zero totals",
			opts:    []services.ConverterOption{services.WithExchangeRate(3000)},
			gasUsed: nil,
			label:   "Empty",
			wantOutput: "\nEmpty:\n" +
				"Total for Empty:\n" +
				"  Total Gas Used: 0\n" +
				"  Total Cost: 0.00000000 ETH\n" +
				"  Total Cost: $0.00 USD\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			reporter := services.NewGasReportService(services.NewGasCostService(15, tt.opts...), &out)

			_, err := reporter.Report(tt.gasUsed, tt.label)

			require.NoError(t, err)
			assert.Equal(t, tt.wantOutput, out.String())
		})
	}
}

func TestGasReportService_ReportTotals(t *testing.T) {
	var out bytes.Buffer
	calculator := services.NewGasCostService(15, services.WithExchangeRate(3000))
	reporter := services.NewGasReportService(calculator, &out)
	gasUsed := []int64{70755, 195241, 78384}

	totals, err := reporter.Report(gasUsed, "Full Flow")
	require.NoError(t, err)

	var wantETH float64
	for _, g := range gasUsed {
		wantETH += calculator.Compute(g).CostETH
	}

	assert.Equal(t, 3, totals.Steps)
	assert.Equal(t, int64(344380), totals.TotalGasUsed)
	assert.InDelta(t, wantETH, totals.TotalETH, 1e-15)
	assert.InDelta(t, 0.0051657, totals.TotalETH, 1e-15)
	require.NotNil(t, totals.TotalUSD)
	assert.InDelta(t, wantETH*3000, *totals.TotalUSD, 1e-9)
	assert.Contains(t, out.String(), "  Total Cost: 0.00516570 ETH\n")
	assert.Contains(t, out.String(), "  Total Cost: $15.50 USD\n")
}

func TestGasReportService_ReportCallsCalculatorInOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCalculator := mocks.NewMockGasCostCalculator(ctrl)
	mockCalculator.EXPECT().HasExchangeRate().Return(false).AnyTimes()
	gomock.InOrder(
		mockCalculator.EXPECT().Compute(int64(3)).Return(business.GasCostRecord{GasUsed: 3, GasPriceGwei: 2, CostETH: 0.5}),
		mockCalculator.EXPECT().Compute(int64(1)).Return(business.GasCostRecord{GasUsed: 1, GasPriceGwei: 2, CostETH: 0.25}),
		mockCalculator.EXPECT().Compute(int64(2)).Return(business.GasCostRecord{GasUsed: 2, GasPriceGwei: 2, CostETH: 0.125}),
	)

	var out bytes.Buffer
	totals, err := services.NewGasReportService(mockCalculator, &out).Report([]int64{3, 1, 2}, "Mocked")

	require.NoError(t, err)
	assert.Equal(t, int64(6), totals.TotalGasUsed)
	assert.Equal(t, 0.875, totals.TotalETH)
	assert.Nil(t, totals.TotalUSD)

	output := out.String()
	assert.Less(t, strings.Index(output, "Step 1:\n  Gas Used: 3\n"), strings.Index(output, "Step 2:\n  Gas Used: 1\n"))
	assert.Less(t, strings.Index(output, "Step 2:\n  Gas Used: 1\n"), strings.Index(output, "Step 3:\n  Gas Used: 2\n"))
	assert.Contains(t, output, "  Gas Price: 2.0 Gwei\n")
	assert.Contains(t, output, "  Total Cost: 0.87500000 ETH\n")
	assert.NotContains(t, output, "USD")
}

func TestGasReportService_ReportScenarios(t *testing.T) {
	var out bytes.Buffer
	reporter := services.NewGasReportService(services.NewGasCostService(15, services.WithExchangeRate(3000)), &out)

	err := reporter.ReportScenarios([]business.GasScenario{
		{Label: "First", GasUsed: []int64{70755}},
		{Label: "Second", GasUsed: []int64{195241}},
	})

	require.NoError(t, err)
	output := out.String()
	assert.True(t, strings.HasPrefix(output, "\nFirst:\n"))
	assert.Contains(t, output, "Total for First:\n")
	assert.Contains(t, output, "\nSecond:\n")
	assert.Less(t, strings.Index(output, "Total for First:"), strings.Index(output, "\nSecond:\n"))
}

func TestGasReportService_WriteError(t *testing.T) {
	writer := &failingWriter{failAfter: 2}
	reporter := services.NewGasReportService(services.NewGasCostService(15, services.WithExchangeRate(3000)), writer)

	err := reporter.ReportScenarios([]business.GasScenario{
		{Label: "Broken", GasUsed: []int64{70755}},
		{Label: "Never Written", GasUsed: []int64{195241}},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, errWriteFailed)
	assert.Contains(t, err.Error(), `failed to write report for "Broken"`)
	assert.Equal(t, 2, writer.writes)
}

var errWriteFailed = errors.New("write failed")

type failingWriter struct {
	failAfter int
	writes    int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.writes >= w.failAfter {
		return 0, errWriteFailed
	}
	w.writes++
	return len(p), nil
}
