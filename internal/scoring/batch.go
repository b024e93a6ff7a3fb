package scoring

import (
	"github.com/Veraticus/keyword-lifecycle/internal/model"
)

// BatchOpportunityScores scores every keyword. Performance is looked up by the
// keyword's normalized text; the result is keyed the same way.
func BatchOpportunityScores(keywords []model.Keyword, perf map[string]model.PerformanceMetrics, settings model.BrandSettings) map[string]int {
	scores := make(map[string]int, len(keywords))
	for _, k := range keywords {
		var p *model.PerformanceMetrics
		if m, ok := perf[k.Normalized]; ok {
			p = &m
		}
		scores[k.Normalized] = CalculateOpportunityScore(k, p, settings)
	}
	return scores
}

// BatchBidRecommendations advises a bid for every keyword with performance data.
func BatchBidRecommendations(perf map[string]model.PerformanceMetrics, settings model.BrandSettings) map[string]model.BidAdvisory {
	return NewAdvisor().RecommendBatch(perf, settings)
}

// RecommendBatch advises a bid for every entry in perf, keyed the same way.
func (a *Advisor) RecommendBatch(perf map[string]model.PerformanceMetrics, settings model.BrandSettings) map[string]model.BidAdvisory {
	advice := make(map[string]model.BidAdvisory, len(perf))
	for key, p := range perf {
		advice[key] = a.Recommend(p, settings)
	}
	return advice
}
