package config

import (
	"os"
	"strings"

	"github.com/cyphera/gas-cost-report/internal/constants"
	"github.com/cyphera/gas-cost-report/internal/helpers"
	"github.com/cyphera/gas-cost-report/internal/scenarios"
	"github.com/pkg/errors"
)

// Config holds the pricing used for a report run
type Config struct {
	GasPriceGwei float64
	ExchangeRate float64
	HasRate      bool
}

// Default returns the built-in pricing: 15 Gwei at 3000 USD/ETH
func Default() Config {
	return Config{
		GasPriceGwei: scenarios.DefaultGasPriceGwei,
		ExchangeRate: scenarios.DefaultETHUSDPrice,
		HasRate:      true,
	}
}

// Load reads pricing overrides from the environment, keeping defaults for unset values
func Load() (Config, error) {
	return LoadFrom(os.LookupEnv)
}

// LoadFrom is Load with an injectable lookup function
func LoadFrom(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if raw, ok := lookup(constants.EnvGasPriceGwei); ok && strings.TrimSpace(raw) != "" {
		price, err := helpers.ParseGasPrice(raw)
		if err != nil {
			return Config{}, errors.Wrap(err, constants.EnvGasPriceGwei)
		}
		cfg.GasPriceGwei = price
	}

	if raw, ok := lookup(constants.EnvETHUSDPrice); ok {
		if strings.EqualFold(strings.TrimSpace(raw), constants.DisabledRateValue) {
			cfg.ExchangeRate, cfg.HasRate = 0, false
			return cfg, nil
		}
		rate, hasRate, err := helpers.ParseExchangeRate(raw)
		if err != nil {
			return Config{}, errors.Wrap(err, constants.EnvETHUSDPrice)
		}
		cfg.ExchangeRate, cfg.HasRate = rate, hasRate
	}

	return cfg, nil
}
