package engine

import (
	"github.com/Veraticus/keyword-lifecycle/internal/model"
	"github.com/Veraticus/keyword-lifecycle/internal/scoring"
)

// PlanInput is everything needed to plan a batch of keywords.
// Performance is keyed by normalized keyword text; keywords without an entry
// are planned without performance data.
type PlanInput struct {
	Performance map[string]model.PerformanceMetrics
	Keywords    []model.Keyword
	Campaigns   []model.Campaign
}

// KeywordPlan is the scored, priced and placed form of one keyword.
type KeywordPlan struct {
	Bid             *model.BidAdvisory            `json:"bid,omitempty"`
	Tier            scoring.OpportunityTier       `json:"tier"`
	Recommendations model.CampaignRecommendations `json:"recommendations"`
	Keyword         model.Keyword                 `json:"keyword"`
	Breakdown       scoring.OpportunityBreakdown  `json:"breakdown"`
	Score           int                           `json:"score"`
}

// ProgressFunc is told how many keywords of a batch have been planned.
type ProgressFunc func(done, total int)

// Plan scores each keyword, advises a bid where performance exists and ranks
// the campaigns it could join. Plans are returned in keyword order.
func (e *Engine) Plan(in PlanInput, progress ProgressFunc) []KeywordPlan {
	plans := make([]KeywordPlan, 0, len(in.Keywords))

	for i, k := range in.Keywords {
		var perf *model.PerformanceMetrics
		if p, ok := in.Performance[k.Normalized]; ok {
			perf = &p
		}

		breakdown := scoring.ScoreBreakdown(k, perf, e.config.Settings)
		plan := KeywordPlan{
			Keyword:         k,
			Breakdown:       breakdown,
			Score:           breakdown.Total,
			Tier:            scoring.GetOpportunityTier(breakdown.Total),
			Recommendations: e.recommender.Recommend(k, perf, in.Campaigns),
		}
		if perf != nil {
			bid := e.advisor.Recommend(*perf, e.config.Settings)
			plan.Bid = &bid
		}

		plans = append(plans, plan)
		if progress != nil {
			progress(i+1, len(in.Keywords))
		}
	}

	e.logger.Debug("Planned keywords", "keywords", len(plans), "campaigns", len(in.Campaigns))

	return plans
}
