package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrowthPercent(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		previous float64
		want     float64
	}{
		{"growth", 125, 100, 25},
		{"decline", 90, 100, -10},
		{"flat", 100, 100, 0},
		{"zero previous is defined as zero", 500, 0, 0},
		{"rounds to one decimal", 101.26, 100, 1.3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, GrowthPercent(tt.current, tt.previous), 0.001)
		})
	}
}

func TestFormatGrowthCarriesExplicitSign(t *testing.T) {
	assert.Equal(t, "+12.5%", FormatGrowth(12.5))
	assert.Equal(t, "-2.1%", FormatGrowth(-2.1))
	assert.Equal(t, "+0.0%", FormatGrowth(0))
}

func TestAverageOrderValue(t *testing.T) {
	assert.InDelta(t, 161.46, AverageOrderValue(322.92, 2), 0.001)
	assert.Zero(t, AverageOrderValue(0, 0))
}

func TestFunnelStagesRelativeToTop(t *testing.T) {
	stages := FunnelStages([]Stage{
		{Stage: "Visitors", Count: 1000},
		{Stage: "Purchase", Count: 400},
	})

	require.Len(t, stages, 2)
	// 400/1000, not 400/400: stage share is measured against the top.
	assert.InDelta(t, 100.0, stages[0].Percentage, 0.001)
	assert.InDelta(t, 40.0, stages[1].Percentage, 0.001)
}

func TestFunnelStagesZeroTop(t *testing.T) {
	stages := FunnelStages([]Stage{
		{Stage: "Visitors", Count: 0},
		{Stage: "Purchase", Count: 10},
	})
	for _, s := range stages {
		assert.Zero(t, s.Percentage)
	}
}

func TestFunnelStagesDoesNotMutateInput(t *testing.T) {
	in := []Stage{{Stage: "a", Count: 10}, {Stage: "b", Count: 5}}
	FunnelStages(in)
	assert.Zero(t, in[0].Percentage)
	assert.Zero(t, in[1].Percentage)
}

func TestSharesSumToRoughlyHundred(t *testing.T) {
	shares := Shares([]Share{
		{Name: "New", Count: 245},
		{Name: "Returning", Count: 387},
		{Name: "VIP", Count: 89},
		{Name: "Enterprise", Count: 171},
	})

	var sum float64
	for _, s := range shares {
		sum += s.Percentage
	}
	assert.InDelta(t, 100, sum, 0.5)
	assert.InDelta(t, 27.5, shares[0].Percentage, 0.001)
	assert.InDelta(t, 10.0, shares[2].Percentage, 0.001)
}

func TestSharesZeroTotal(t *testing.T) {
	shares := Shares([]Share{{Name: "a"}, {Name: "b"}})
	for _, s := range shares {
		assert.Zero(t, s.Percentage)
	}
}
