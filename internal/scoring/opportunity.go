// Package scoring computes keyword opportunity scores and bid recommendations.
package scoring

import (
	"math"
	"strings"

	"github.com/Veraticus/keyword-lifecycle/internal/model"
)

// Component ceilings of the opportunity score.
const (
	MaxPerformanceScore = 40
	MaxVolumeScore      = 25
	MaxCompetitionScore = 20
	MaxRelevanceScore   = 15
	MaxOpportunityScore = 100
)

// OpportunityTier buckets an opportunity score.
type OpportunityTier string

// Opportunity tiers.
const (
	TierHigh   OpportunityTier = "High"
	TierMedium OpportunityTier = "Medium"
	TierLow    OpportunityTier = "Low"
)

// VolumeTier is the coarse size of a search-volume bucket.
type VolumeTier string

// Volume tiers.
const (
	VolumeHigh    VolumeTier = "high"
	VolumeMedium  VolumeTier = "medium"
	VolumeLow     VolumeTier = "low"
	VolumeUnknown VolumeTier = "unknown"
)

type volumeBucket struct {
	tier  VolumeTier
	score int
}

// searchVolumeBuckets maps monthly search volume bucket labels to their score and tier.
var searchVolumeBuckets = map[string]volumeBucket{
	"<1K":      {VolumeLow, 5},
	"1K-5K":    {VolumeLow, 10},
	"5K-10K":   {VolumeMedium, 15},
	"10K-50K":  {VolumeMedium, 20},
	"50K-100K": {VolumeHigh, 23},
	"100K+":    {VolumeHigh, 25},
}

var competitionScores = map[model.Competition]int{
	model.CompetitionLow:    20,
	model.CompetitionMedium: 12,
	model.CompetitionHigh:   5,
}

// VolumeBuckets lists the recognized search volume bucket labels, smallest first.
func VolumeBuckets() []string {
	return []string{"<1K", "1K-5K", "5K-10K", "10K-50K", "50K-100K", "100K+"}
}

// VolumeTierOf returns the tier of a search volume bucket label.
func VolumeTierOf(bucket string) VolumeTier {
	if b, ok := searchVolumeBuckets[strings.ToUpper(strings.TrimSpace(bucket))]; ok {
		return b.tier
	}
	return VolumeUnknown
}

// OpportunityBreakdown shows how each component contributed to an opportunity score.
type OpportunityBreakdown struct {
	Performance    float64 `json:"performance"`
	Volume         float64 `json:"volume"`
	Competition    float64 `json:"competition"`
	Relevance      float64 `json:"relevance"`
	Total          int     `json:"total"`
	HasPerformance bool    `json:"has_performance"`
}

// CalculateOpportunityScore rates a keyword from 0 to 100.
// Without performance data the performance component is simply left out.
func CalculateOpportunityScore(keyword model.Keyword, perf *model.PerformanceMetrics, settings model.BrandSettings) int {
	return ScoreBreakdown(keyword, perf, settings).Total
}

// ScoreBreakdown computes the opportunity score and keeps each component.
func ScoreBreakdown(keyword model.Keyword, perf *model.PerformanceMetrics, settings model.BrandSettings) OpportunityBreakdown {
	var b OpportunityBreakdown

	if perf != nil {
		b.HasPerformance = true
		b.Performance = performanceFit(*perf, settings)
	}
	if bucket, ok := searchVolumeBuckets[strings.ToUpper(strings.TrimSpace(keyword.SearchVolume))]; ok {
		b.Volume = float64(bucket.score)
	}
	b.Competition = float64(competitionScores[keyword.Competition])
	b.Relevance = relevanceScore(keyword.Relevance)

	total := b.Performance + b.Volume + b.Competition + b.Relevance
	b.Total = int(math.Round(math.Min(math.Max(total, 0), MaxOpportunityScore)))

	return b
}

// performanceFit scores observed metrics against brand targets: ACoS up to 15,
// CTR up to 10, CVR up to 10 and ROAS up to 5.
func performanceFit(perf model.PerformanceMetrics, settings model.BrandSettings) float64 {
	targets := withDefaults(settings)
	score := 0.0

	if perf.HasSales() {
		acos := perf.ACoS()
		switch {
		case acos <= targets.TargetACoS:
			score += 15
		case acos <= targets.TargetACoS*1.3:
			score += 8
		default:
			score += 3
		}
	}

	score += rateScore(perf.CTR(), targets.TargetCTR, 10)
	score += rateScore(perf.CVR(), targets.TargetCVR, 10)
	score += rateScore(perf.ROAS(), targets.TargetROAS, 5)

	return math.Min(score, MaxPerformanceScore)
}

// rateScore awards full points at or above target, half of them from half
// the target upward and nothing below that.
func rateScore(actual, target, points float64) float64 {
	switch {
	case actual <= 0:
		return 0
	case actual >= target:
		return points
	case actual >= target*0.5:
		return math.Round(points / 2)
	default:
		return 0
	}
}

// relevanceScore scales a 1-10 rating linearly onto 0-15. Unrated keywords score 0.
func relevanceScore(relevance int) float64 {
	if relevance <= 0 {
		return 0
	}
	r := math.Min(float64(relevance), 10)
	return r / 10 * MaxRelevanceScore
}

// GetOpportunityTier buckets a score: 70 and up is High, 40 and up is Medium.
func GetOpportunityTier(score int) OpportunityTier {
	switch {
	case score >= 70:
		return TierHigh
	case score >= 40:
		return TierMedium
	default:
		return TierLow
	}
}

// withDefaults fills unset targets from DefaultBrandSettings.
func withDefaults(settings model.BrandSettings) model.BrandSettings {
	defaults := model.DefaultBrandSettings()
	if settings.TargetACoS <= 0 {
		settings.TargetACoS = defaults.TargetACoS
	}
	if settings.TargetCTR <= 0 {
		settings.TargetCTR = defaults.TargetCTR
	}
	if settings.TargetCVR <= 0 {
		settings.TargetCVR = defaults.TargetCVR
	}
	if settings.TargetROAS <= 0 {
		settings.TargetROAS = defaults.TargetROAS
	}
	return settings
}
