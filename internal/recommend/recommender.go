package recommend

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/Veraticus/keyword-lifecycle/internal/model"
	"github.com/Veraticus/keyword-lifecycle/internal/scoring"
)

// Recommender ranks campaigns for keywords using a brand's targets.
type Recommender struct {
	advisor  *scoring.Advisor
	logger   *slog.Logger
	settings model.BrandSettings
}

// NewRecommender creates a recommender judging performance against settings.
func NewRecommender(settings model.BrandSettings, logger *slog.Logger) *Recommender {
	if logger == nil {
		logger = slog.Default()
	}
	if settings.TargetACoS <= 0 {
		settings.TargetACoS = model.DefaultBrandSettings().TargetACoS
	}
	return &Recommender{
		advisor:  scoring.NewAdvisor(scoring.WithLogger(logger)),
		logger:   logger,
		settings: settings,
	}
}

// GetCampaignRecommendations ranks campaigns for a keyword using default brand targets.
func GetCampaignRecommendations(keyword model.Keyword, perf *model.PerformanceMetrics, campaigns []model.Campaign) model.CampaignRecommendations {
	return NewRecommender(model.DefaultBrandSettings(), nil).Recommend(keyword, perf, campaigns)
}

// Recommend scores every campaign for keyword and returns those scoring at
// least 50, best first. Campaigns with equal scores keep their input order.
func (r *Recommender) Recommend(keyword model.Keyword, perf *model.PerformanceMetrics, campaigns []model.Campaign) model.CampaignRecommendations {
	recs := make(model.CampaignRecommendations, 0, len(campaigns))

	var bid *float64
	if perf != nil {
		suggested := r.advisor.Recommend(*perf, r.settings).SuggestedBid
		bid = &suggested
	}

	for _, c := range campaigns {
		rec := r.score(keyword, perf, c)
		rec.SuggestedBid = bid
		recs = append(recs, rec)
	}

	ranked := recs.AboveThreshold(MinRecommendationScore)

	r.logger.Debug("campaign recommendations",
		"keyword", keyword.Text,
		"campaigns", len(campaigns),
		"recommended", len(ranked))

	return ranked
}

func (r *Recommender) score(keyword model.Keyword, perf *model.PerformanceMetrics, c model.Campaign) model.CampaignRecommendation {
	ctype := InferCampaignType(c.Name)
	match := intendedMatch(keyword)

	var reasons []string
	score := 0

	if pts := categoryAlignment[keyword.Category][ctype]; pts > 0 {
		score += pts
		if pts >= 20 {
			reasons = append(reasons, fmt.Sprintf("%s keyword suits a %s campaign", keyword.Category, ctype))
		}
	}

	if pts := typeAlignment[match][ctype]; pts > 0 {
		score += pts
		if pts >= 20 {
			reasons = append(reasons, fmt.Sprintf("%s targeting fits a %s campaign", match, ctype))
		}
	}

	if perf != nil {
		if pts := lifecycleAlignment[keyword.Lifecycle][ctype]; pts > 0 {
			score += pts
			if pts >= 10 {
				reasons = append(reasons, fmt.Sprintf("%s stage keyword belongs in a %s campaign", keyword.Lifecycle, ctype))
			}
		}

		rag := ragStatusOf(*perf, r.settings.TargetACoS)
		if pts := ragAlignment[rag][ctype]; pts > 0 {
			score += pts
			reasons = append(reasons, fmt.Sprintf("%s performance suits a %s campaign", rag, ctype))
		}
	}

	tier := scoring.VolumeTierOf(keyword.SearchVolume)
	if pts := volumeAlignment[tier][ctype]; pts > 0 {
		score += pts
		reasons = append(reasons, fmt.Sprintf("%s search volume suits a %s campaign", tier, ctype))
	}

	if keyword.Category == model.CategoryBranded && ctype == TypeBranded {
		score += brandedBonus
		reasons = append(reasons, "branded keyword in a branded campaign")
	}

	score = min(score, 100)

	reason := strings.Join(reasons, "; ")
	if reason == "" {
		reason = fmt.Sprintf("%d%% match", score)
	}

	suggestedMatch, ok := campaignMatch[ctype]
	if !ok {
		suggestedMatch = match
	}

	return model.CampaignRecommendation{
		CampaignID:         c.ID,
		Score:              score,
		Reason:             reason,
		SuggestedAdGroup:   suggestAdGroup(keyword, c.AdGroups),
		SuggestedMatchType: suggestedMatch,
	}
}

// suggestAdGroup prefers an ad group named after the keyword's category or the
// keyword itself, then the campaign's first ad group.
func suggestAdGroup(keyword model.Keyword, groups []model.AdGroup) *model.AdGroup {
	if len(groups) == 0 {
		return nil
	}

	category := strings.ToLower(string(keyword.Category))
	text := strings.ToLower(strings.TrimSpace(keyword.Text))

	for i := range groups {
		name := strings.ToLower(groups[i].Name)
		if (category != "" && strings.Contains(name, category)) || (text != "" && strings.Contains(name, text)) {
			g := groups[i]
			return &g
		}
	}

	g := groups[0]
	return &g
}
