package service

import (
	"github.com/shopspring/decimal"

	"github.com/limbo/synapse/pkg/entity"
)

var hundred = decimal.NewFromInt(100)

// Evaluate checks a requirement document against a stats snapshot.
// Every key must hold for eligibility; counters missing from stats and
// malformed thresholds never pass. An empty document is never eligible.
func Evaluate(reqs entity.Requirements, stats entity.StatsSnapshot) (bool, map[entity.Counter]entity.RequirementProgress) {
	progress := make(map[entity.Counter]entity.RequirementProgress, len(reqs))
	eligible := len(reqs) > 0
	for counter, threshold := range reqs {
		actual, known := stats[counter]
		if !threshold.Valid || !known {
			progress[counter] = entity.RequirementProgress{
				Actual:     actual,
				Required:   threshold.Value,
				Percentage: decimal.Zero,
			}
			eligible = false
			continue
		}
		value := decimal.NewFromInt(int64(actual))
		p := entity.RequirementProgress{
			Actual:   actual,
			Required: threshold.Value,
		}
		if !threshold.Value.IsPositive() {
			p.Percentage = hundred.Round(2)
		} else {
			p.Percentage = decimal.Min(hundred, value.Div(threshold.Value).Mul(hundred)).Round(2)
			if value.LessThan(threshold.Value) {
				eligible = false
			}
		}
		progress[counter] = p
	}
	return eligible, progress
}
