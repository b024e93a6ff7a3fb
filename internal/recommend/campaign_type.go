// Package recommend ranks existing campaigns by how well a keyword fits them.
package recommend

import "strings"

// CampaignType is the coarse purpose of a campaign, inferred from its name.
type CampaignType string

// Campaign types, listed in the order names are checked against them.
const (
	TypeAuto        CampaignType = "auto"
	TypeExact       CampaignType = "exact"
	TypePhrase      CampaignType = "phrase"
	TypeBroad       CampaignType = "broad"
	TypeBranded     CampaignType = "branded"
	TypeCompetitor  CampaignType = "competitor"
	TypeCategory    CampaignType = "category"
	TypeSKAG        CampaignType = "skag"
	TypeResearch    CampaignType = "research"
	TypeTest        CampaignType = "test"
	TypePerformance CampaignType = "performance"
	TypeDiscovery   CampaignType = "discovery"
	TypeGeneral     CampaignType = "general"
)

// campaignTypeVocabulary is checked in order; the first substring found wins.
var campaignTypeVocabulary = []CampaignType{
	TypeAuto,
	TypeExact,
	TypePhrase,
	TypeBroad,
	TypeBranded,
	TypeCompetitor,
	TypeCategory,
	TypeSKAG,
	TypeResearch,
	TypeTest,
	TypePerformance,
	TypeDiscovery,
}

// InferCampaignType guesses a campaign's type from words in its name.
// This is a substring heuristic: "Automotive Parts" reads as auto and
// "NIKE_US_M_SP_EXACT_BRANDED_202510" reads as exact, not branded.
func InferCampaignType(name string) CampaignType {
	lower := strings.ToLower(name)
	for _, t := range campaignTypeVocabulary {
		if strings.Contains(lower, string(t)) {
			return t
		}
	}
	return TypeGeneral
}
