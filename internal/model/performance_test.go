package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPerformanceMetrics_Derived(t *testing.T) {
	tests := []struct {
		name     string
		perf     PerformanceMetrics
		wantCTR  float64
		wantCVR  float64
		wantCPC  float64
		wantACoS float64
		wantROAS float64
		hasSales bool
	}{
		{
			name:     "converting keyword",
			perf:     PerformanceMetrics{Impressions: 2000, Clicks: 40, Orders: 4, Spend: 20, Sales: 100},
			wantCTR:  2,
			wantCVR:  10,
			wantCPC:  0.5,
			wantACoS: 20,
			wantROAS: 5,
			hasSales: true,
		},
		{
			name:    "spend without sales",
			perf:    PerformanceMetrics{Impressions: 500, Clicks: 10, Spend: 8},
			wantCTR: 2,
			wantCPC: 0.8,
		},
		{
			name: "no activity",
			perf: PerformanceMetrics{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.wantCTR, tt.perf.CTR(), 1e-9)
			assert.InDelta(t, tt.wantCVR, tt.perf.CVR(), 1e-9)
			assert.InDelta(t, tt.wantCPC, tt.perf.CPC(), 1e-9)
			assert.InDelta(t, tt.wantACoS, tt.perf.ACoS(), 1e-9)
			assert.InDelta(t, tt.wantROAS, tt.perf.ROAS(), 1e-9)
			assert.Equal(t, tt.hasSales, tt.perf.HasSales())
		})
	}
}

func TestPerformanceMetrics_Validate(t *testing.T) {
	valid := PerformanceMetrics{Impressions: 10, Clicks: 1}
	assert.NoError(t, valid.Validate())

	for _, bad := range []PerformanceMetrics{
		{Impressions: -1},
		{Clicks: -1},
		{Orders: -1},
		{Spend: -0.01},
		{Sales: -5},
	} {
		assert.Error(t, bad.Validate())
	}
}

func TestBrandSettings(t *testing.T) {
	settings := DefaultBrandSettings()
	assert.InDelta(t, 25, settings.TargetACoS, 0)
	assert.InDelta(t, 0.4, settings.TargetCTR, 0)
	assert.InDelta(t, 10, settings.TargetCVR, 0)
	assert.InDelta(t, 4, settings.TargetROAS, 0)
	assert.NoError(t, settings.Validate())

	settings.ProductPrice = -1
	assert.Error(t, settings.Validate())

	settings = DefaultBrandSettings()
	settings.TargetCVR = -2
	assert.Error(t, settings.Validate())
}

func TestBidAdvisory_Reason(t *testing.T) {
	adv := BidAdvisory{Reasoning: []string{"ACoS 12.0% is well under target", "bid raised 15%"}}
	assert.Equal(t, "ACoS 12.0% is well under target. bid raised 15%", adv.Reason())
	assert.Empty(t, BidAdvisory{}.Reason())
}
