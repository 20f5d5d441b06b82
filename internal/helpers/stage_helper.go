package helpers

import (
	"strings"

	"github.com/cyphera/gas-cost-report/internal/constants"
)

// Stage constants define the possible deployment/runtime environments.
const (
	StageProd  = constants.ProdEnvironment
	StageDev   = "dev"
	StageLocal = "local"
)

// IsValidStage checks if the provided stage string is one of the defined valid stages.
func IsValidStage(stage string) bool {
	switch stage {
	case StageProd, StageDev, StageLocal:
		return true
	default:
		return false
	}
}

// ResolveStage normalises a raw STAGE value, falling back to StageLocal when unset.
// The second return value is false when the input was set but not a known stage.
func ResolveStage(raw string) (string, bool) {
	stage := strings.ToLower(strings.TrimSpace(raw))
	if stage == "" {
		return StageLocal, true
	}
	if !IsValidStage(stage) {
		return StageLocal, false
	}
	return stage, true
}
