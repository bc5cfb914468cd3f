// Package metrics derives the dashboard figures from already-fetched
// entity collections. Every function here is pure: no store access, no
// side effects. Each metric has exactly one convention and every view goes
// through here instead of recomputing its own variant.
package metrics

import (
	"time"

	"agricrm/entities"
	"agricrm/pkg/pipeline"
)

// CountByStatus tallies leads per stage. Every one of the seven stages is
// present in the result, zero-filled, so chart series keep a fixed width.
func CountByStatus(leads []entities.Lead) map[pipeline.Stage]int {
	out := make(map[pipeline.Stage]int, len(pipeline.All))
	for _, s := range pipeline.All {
		out[s] = 0
	}
	for _, l := range leads {
		s := pipeline.Stage(l.Status)
		if _, ok := out[s]; ok {
			out[s]++
		}
	}
	return out
}

// ConversionRate is won leads over all leads, as a percentage. 0 for an
// empty input.
func ConversionRate(leads []entities.Lead) float64 {
	if len(leads) == 0 {
		return 0
	}
	won := 0
	for _, l := range leads {
		if pipeline.Stage(l.Status) == pipeline.StageWon {
			won++
		}
	}
	return float64(won) / float64(len(leads)) * 100
}

// Revenue sums quantity x product price over purchases. A line with a
// missing quantity, missing product, or missing price contributes 0 rather
// than failing the whole aggregate. Prices are read through the preloaded
// product at call time, so revenue is always current-price revenue.
func Revenue(purchases []entities.Purchase) float64 {
	var sum float64
	for _, p := range purchases {
		sum += LineRevenue(p)
	}
	return sum
}

// LineRevenue is the computed value of a single purchase.
func LineRevenue(p entities.Purchase) float64 {
	if p.Quantity == nil || p.Product == nil || p.Product.Price == nil {
		return 0
	}
	return float64(*p.Quantity) * *p.Product.Price
}

// GrowthPercent is the period-over-period change. A zero previous period
// reports 0 rather than an undefined or infinite growth, so a cold-start
// baseline renders cleanly.
func GrowthPercent(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return (current - previous) / previous * 100
}

type FunnelStage struct {
	Stage      pipeline.Stage `json:"stage"`
	Count      int            `json:"count"`
	Percentage float64        `json:"percentage"`
}

// Funnel builds the six-stage drop-off series. Percentages are relative to
// the New stage count (not stage-over-stage); 0 throughout when there are
// no New leads.
func Funnel(leads []entities.Lead) []FunnelStage {
	counts := CountByStatus(leads)
	base := counts[pipeline.StageNew]
	out := make([]FunnelStage, 0, len(pipeline.Ordered))
	for _, s := range pipeline.Ordered {
		pct := 0.0
		if base > 0 {
			pct = float64(counts[s]) / float64(base) * 100
		}
		out = append(out, FunnelStage{Stage: s, Count: counts[s], Percentage: pct})
	}
	return out
}

// AvgCycleDays is the mean age of won leads, i.e. average days from lead
// creation to now for everything closed won in the input. 0 when nothing
// has been won.
func AvgCycleDays(leads []entities.Lead, now time.Time) float64 {
	var sum, n int
	for _, l := range leads {
		if pipeline.Stage(l.Status) == pipeline.StageWon {
			sum += pipeline.AgeInDays(l.CreatedAt, now)
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return float64(sum) / float64(n)
}
