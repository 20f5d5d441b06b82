package business

// GasCostRecord is the cost of a single gas-used value at the configured price
type GasCostRecord struct {
	GasUsed      int64    `json:"gas_used"`
	GasPriceGwei float64  `json:"gas_price_gwei"`
	CostETH      float64  `json:"cost_eth"`
	CostUSD      *float64 `json:"cost_usd,omitempty"` // nil when no exchange rate is configured
}

// HasFiat reports whether the record carries a fiat cost
func (r GasCostRecord) HasFiat() bool {
	return r.CostUSD != nil
}

// GasCostTotals represents the running totals of a report
type GasCostTotals struct {
	Steps        int      `json:"steps"`
	TotalGasUsed int64    `json:"total_gas_used"`
	TotalETH     float64  `json:"total_eth"`
	TotalUSD     *float64 `json:"total_usd,omitempty"`
}

// GasScenario is a labelled, ordered sequence of gas-used values
type GasScenario struct {
	Label   string  `json:"label"`
	GasUsed []int64 `json:"gas_used"`
}
