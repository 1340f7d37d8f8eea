package flowplan

import (
	"math"

	"github.com/de-tools/flowplan/pkg/models/domain"
)

// ComputeTeamMetrics derives the budget-consumption metrics for one team.
// Plan is consumed first; buffer consumption only begins once spend exceeds
// plan. No rounding is applied and negative inputs are accepted as-is.
func ComputeTeamMetrics(plan, buffer, ytdSpend float64) domain.TeamMetrics {
	baseLimit := plan - buffer
	consumedBuffer := math.Max(ytdSpend-plan, 0)

	return domain.TeamMetrics{
		Plan:            plan,
		Buffer:          buffer,
		YTDSpend:        ytdSpend,
		BaseLimit:       baseLimit,
		OverVsBase:      ytdSpend - baseLimit,
		RemainingPlan:   math.Max(plan-ytdSpend, 0),
		ConsumedBuffer:  consumedBuffer,
		RemainingBuffer: math.Max(buffer-consumedBuffer, 0),
		YTGTotal:        math.Max(plan+buffer-ytdSpend, 0),
	}
}
