// Package analytics derives dashboard summary numbers from collections and
// reference series: growth percentages, funnel breakdowns, and segment
// shares.
package analytics

import (
	"fmt"
	"math"
)

// GrowthPercent returns the signed percentage change from previous to
// current. A zero previous period is defined as 0% growth: a percentage
// against an empty baseline carries no information on the dashboards.
func GrowthPercent(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return round1((current - previous) / previous * 100)
}

// FormatGrowth renders a growth percentage with an explicit sign and one
// decimal place, e.g. "+12.5%" or "-2.1%".
func FormatGrowth(percent float64) string {
	return fmt.Sprintf("%+.1f%%", percent)
}

// AverageOrderValue is totalSpent / totalOrders, 0 when there are no orders.
func AverageOrderValue(totalSpent float64, totalOrders int) float64 {
	if totalOrders == 0 {
		return 0
	}
	return totalSpent / float64(totalOrders)
}

// Stage is one step of the sales funnel.
type Stage struct {
	Stage      string  `json:"stage"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// FunnelStages fills in each stage's percentage relative to the first
// (top-of-funnel) stage, not the prior one: a 400-count stage under a
// 1000-count top is 40%.
func FunnelStages(stages []Stage) []Stage {
	out := make([]Stage, len(stages))
	copy(out, stages)
	if len(out) == 0 || out[0].Count == 0 {
		for i := range out {
			out[i].Percentage = 0
		}
		return out
	}
	top := float64(out[0].Count)
	for i := range out {
		out[i].Percentage = round1(float64(out[i].Count) / top * 100)
	}
	return out
}

// Share holds a named count with its percentage of the total.
type Share struct {
	Name       string  `json:"name"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// Shares computes each entry's percentage of the summed counts. The
// percentages sum to 100 within one-decimal rounding tolerance.
func Shares(entries []Share) []Share {
	out := make([]Share, len(entries))
	copy(out, entries)
	total := 0
	for _, e := range out {
		total += e.Count
	}
	if total == 0 {
		for i := range out {
			out[i].Percentage = 0
		}
		return out
	}
	for i := range out {
		out[i].Percentage = round1(float64(out[i].Count) / float64(total) * 100)
	}
	return out
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
