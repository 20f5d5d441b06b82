package constants

// Common string constants used throughout the codebase
const (
	// Log levels
	ErrorLevel = "error"

	// Environments
	ProdEnvironment = "prod"

	// Currencies
	ETHCurrency = "ETH"
	USDCurrency = "USD"

	// Report
	DefaultReportLabel = "Transaction"
)

// Environment variable names
const (
	EnvStage        = "STAGE"
	EnvLogLevel     = "LOG_LEVEL"
	EnvGasPriceGwei = "GAS_PRICE_GWEI"
	EnvETHUSDPrice  = "ETH_USD_PRICE"
)

// DisabledRateValue turns fiat output off when used as the ETH_USD_PRICE value.
const DisabledRateValue = "none"
