package services

import (
	"github.com/cyphera/gas-cost-report/internal/constants"
	"github.com/cyphera/gas-cost-report/internal/logger"
	"github.com/cyphera/gas-cost-report/internal/types/business"
	"go.uber.org/zap"
)

// GasCostCalculator converts gas usage into a cost record
type GasCostCalculator interface {
	Compute(gasUsed int64) business.GasCostRecord
	HasExchangeRate() bool
}

// GasCostService converts gas usage at a fixed Gwei price into ETH and, optionally, USD.
// It is immutable once constructed.
type GasCostService struct {
	gasPriceGwei float64
	exchangeRate float64
	hasRate      bool
	logger       *zap.Logger
}

// ConverterOption configures a GasCostService
type ConverterOption func(*GasCostService)

// WithExchangeRate sets the USD price of one ETH. A zero rate is kept as a valid rate.
func WithExchangeRate(rate float64) ConverterOption {
	return func(s *GasCostService) {
		s.exchangeRate = rate
		s.hasRate = true
	}
}

// NewGasCostService creates a new gas cost service.
// Inputs are not validated; negative or non-finite values flow through the arithmetic.
func NewGasCostService(gasPriceGwei float64, opts ...ConverterOption) *GasCostService {
	s := &GasCostService{
		gasPriceGwei: gasPriceGwei,
		logger:       logger.Log,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.hasRate && s.exchangeRate == 0 {
		s.logger.Warn("Exchange rate configured as zero, fiat costs will be reported as $0.00",
			zap.Float64("gas_price_gwei", gasPriceGwei))
	}

	return s
}

// Compute calculates the cost of gasUsed at the configured price
func (s *GasCostService) Compute(gasUsed int64) business.GasCostRecord {
	record := business.GasCostRecord{
		GasUsed:      gasUsed,
		GasPriceGwei: s.gasPriceGwei,
		CostETH:      gasCostETH(gasUsed, s.gasPriceGwei),
	}

	if s.hasRate {
		costUSD := record.CostETH * s.exchangeRate
		record.CostUSD = &costUSD
	}

	return record
}

// HasExchangeRate reports whether fiat conversion is configured
func (s *GasCostService) HasExchangeRate() bool {
	return s.hasRate
}

// GasPriceGwei returns the configured gas price
func (s *GasCostService) GasPriceGwei() float64 {
	return s.gasPriceGwei
}

// ExchangeRate returns the configured rate and whether one is set
func (s *GasCostService) ExchangeRate() (float64, bool) {
	return s.exchangeRate, s.hasRate
}

// gasCostETH prices gas in wei first, then scales the total down to ETH.
// Keep the operation order: reordering the float math changes the printed digits.
func gasCostETH(gasUsed int64, gasPriceGwei float64) float64 {
	gasPriceWei := gasPriceGwei * constants.GweiToWei
	costWei := float64(gasUsed) * gasPriceWei
	return costWei / constants.WeiToEth
}
