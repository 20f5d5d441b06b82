// Package scenarios holds the fixed SoundRise gas measurements that the report runs over.
package scenarios

import (
	"fmt"
	"strings"

	"github.com/cyphera/gas-cost-report/internal/types/business"
)

// Default pricing (March 26, 2025 estimate).
const (
	DefaultGasPriceGwei = 15
	DefaultETHUSDPrice  = 3000
)

// Scenario set names
const (
	SetStandard = "standard"
	SetExtended = "extended"
)

// Standard returns the scenarios measured by the base SoundRise test suite
func Standard() []business.GasScenario {
	return []business.GasScenario{
		{Label: "Scenario 1: Artist Registration", GasUsed: []int64{70755}},
		{Label: "Scenario 2: Upload New Song", GasUsed: []int64{195241}},
		{Label: "Scenario 3: Purchase Song with ETH", GasUsed: []int64{78384}},
		{Label: "Scenario 4: Play Song and Pay Royalty", GasUsed: []int64{58417}},
		{Label: "Scenario 5: Rate Song and Mint 5 SRT", GasUsed: []int64{117507}},
		{Label: "Scenario 6: Redeem Exclusive Content with SRT", GasUsed: []int64{90060}},
		{Label: "Scenario 7: Full Flow - Register, Upload, Purchase", GasUsed: []int64{52451, 195241, 78384}},
	}
}

// Extended returns the scenarios measured by the extended SoundRise test suite
func Extended() []business.GasScenario {
	return []business.GasScenario{
		{Label: "1. Successful Artist Registration", GasUsed: []int64{70755}},
		{Label: "2. Successful Song Upload", GasUsed: []int64{195241}},
		{Label: "3. ETH Song Purchase", GasUsed: []int64{78384}},
		{Label: "4. SRT Exclusive Content Redemption", GasUsed: []int64{90060}},
		{Label: "5. Song Rating with SRT Reward", GasUsed: []int64{134607}},
		{Label: "6. Full Flow: Register, Upload, Purchase", GasUsed: []int64{70755, 195241, 78384}},
		{Label: "7. Owner Minting Tokens", GasUsed: []int64{54210}},
		{Label: "8. Upload with Zero Royalty", GasUsed: []int64{175425}},
	}
}

// Names returns the known scenario set names
func Names() []string {
	return []string{SetStandard, SetExtended}
}

// Lookup returns the scenario set with the given name
func Lookup(name string) ([]business.GasScenario, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case SetStandard:
		return Standard(), nil
	case SetExtended:
		return Extended(), nil
	default:
		return nil, fmt.Errorf("unknown scenario set %q, expected one of: %s", name, strings.Join(Names(), ", "))
	}
}
