package constants

import "github.com/ethereum/go-ethereum/params"

// Denomination multipliers. Gas prices are quoted in Gwei, costs are reported in Ether.
const (
	GweiToWei = params.GWei
	WeiToEth  = params.Ether
)

// Output precision for report amounts.
const (
	ETHDecimals = 8
	USDDecimals = 2
)
