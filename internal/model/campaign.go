package model

import "sort"

// AdGroup is an ad group inside an existing campaign.
type AdGroup struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// Campaign is an existing campaign a keyword may be placed into.
type Campaign struct {
	ID       string    `json:"id" yaml:"id"`
	Name     string    `json:"name" yaml:"name"`
	AdGroups []AdGroup `json:"ad_groups,omitempty" yaml:"ad_groups,omitempty"`
}

// CampaignRecommendation scores how well a keyword fits a campaign.
type CampaignRecommendation struct {
	SuggestedAdGroup   *AdGroup `json:"suggested_ad_group,omitempty" yaml:"suggested_ad_group,omitempty"`
	SuggestedBid       *float64 `json:"suggested_bid,omitempty" yaml:"suggested_bid,omitempty"`
	CampaignID         string   `json:"campaign_id" yaml:"campaign_id"`
	Reason             string   `json:"reason" yaml:"reason"`
	SuggestedMatchType Match    `json:"suggested_match_type,omitempty" yaml:"suggested_match_type,omitempty"`
	Score              int      `json:"score" yaml:"score"`
}

// CampaignRecommendations is a slice of recommendations with ranking helpers.
type CampaignRecommendations []CampaignRecommendation

// Sort orders recommendations by score, highest first.
// Ties keep their original order.
func (r CampaignRecommendations) Sort() {
	sort.SliceStable(r, func(i, j int) bool {
		return r[i].Score > r[j].Score
	})
}

// AboveThreshold returns the recommendations scoring at least threshold, in ranked order.
func (r CampaignRecommendations) AboveThreshold(threshold int) CampaignRecommendations {
	result := CampaignRecommendations{}
	for _, rec := range r {
		if rec.Score >= threshold {
			result = append(result, rec)
		}
	}
	result.Sort()
	return result
}

// Top returns the best recommendation, or nil if there are none.
func (r CampaignRecommendations) Top() *CampaignRecommendation {
	if len(r) == 0 {
		return nil
	}
	r.Sort()
	return &r[0]
}
