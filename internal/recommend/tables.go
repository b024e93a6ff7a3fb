package recommend

import (
	"github.com/Veraticus/keyword-lifecycle/internal/model"
	"github.com/Veraticus/keyword-lifecycle/internal/scoring"
)

// RAGStatus is the red/amber/green health of a keyword's performance.
type RAGStatus string

// RAG statuses.
const (
	RAGGreen RAGStatus = "green"
	RAGAmber RAGStatus = "amber"
	RAGRed   RAGStatus = "red"
)

const (
	// MinRecommendationScore is the lowest score a returned recommendation may have.
	MinRecommendationScore = 50
	brandedBonus           = 10
	// redNoSalesClicks is the click count after which a keyword without sales is red.
	redNoSalesClicks = 10
)

// categoryAlignment scores a keyword category against a campaign type (max 30).
var categoryAlignment = map[model.KeywordCategory]map[CampaignType]int{
	model.CategoryBranded: {
		TypeBranded: 30, TypeExact: 15, TypeSKAG: 15, TypePerformance: 10, TypeGeneral: 5,
	},
	model.CategoryCompetitor: {
		TypeCompetitor: 30, TypeExact: 15, TypePhrase: 10, TypeTest: 10, TypeGeneral: 5,
	},
	model.CategoryGeneric: {
		TypeResearch: 25, TypeDiscovery: 25, TypeBroad: 20, TypePhrase: 20, TypeAuto: 20,
		TypeCategory: 20, TypeTest: 15, TypeGeneral: 10,
	},
	model.CategoryProduct: {
		TypeCategory: 30, TypeBroad: 20, TypePhrase: 20, TypeResearch: 15, TypeDiscovery: 15, TypeGeneral: 10,
	},
	model.CategoryLongTail: {
		TypeExact: 25, TypePhrase: 25, TypeSKAG: 20, TypePerformance: 15, TypeGeneral: 10,
	},
}

// typeAlignment scores a keyword's intended match type against a campaign type (max 25).
var typeAlignment = map[model.Match]map[CampaignType]int{
	model.MatchExact: {
		TypeExact: 25, TypeSKAG: 25, TypePerformance: 20, TypeBranded: 15, TypeCompetitor: 10,
	},
	model.MatchPhrase: {
		TypePhrase: 25, TypeTest: 15, TypeCategory: 15, TypeCompetitor: 15, TypeBranded: 10,
	},
	model.MatchBroad: {
		TypeBroad: 25, TypeResearch: 20, TypeDiscovery: 20, TypeCategory: 15, TypeTest: 15,
	},
	model.MatchAuto: {
		TypeAuto: 25, TypeResearch: 20, TypeDiscovery: 20,
	},
	model.MatchPT: {
		TypeCompetitor: 20, TypeAuto: 15, TypeCategory: 15,
	},
	model.MatchVideo: {
		TypeBranded: 10, TypeCategory: 10,
	},
}

// lifecycleAlignment scores a keyword's lifecycle stage against a campaign type (max 15).
var lifecycleAlignment = map[model.LifecycleStage]map[CampaignType]int{
	model.LifecycleDiscovery: {
		TypeAuto: 15, TypeBroad: 15, TypeResearch: 15, TypeDiscovery: 15, TypeTest: 5,
	},
	model.LifecycleTest: {
		TypeTest: 15, TypePhrase: 15, TypeBroad: 10, TypeCategory: 10,
	},
	model.LifecyclePerformance: {
		TypePerformance: 15, TypeExact: 15, TypePhrase: 10, TypeSKAG: 10,
	},
	model.LifecycleSKAG: {
		TypeSKAG: 15, TypeExact: 15, TypePerformance: 10,
	},
}

// ragAlignment scores a keyword's performance health against a campaign type (max 10).
var ragAlignment = map[RAGStatus]map[CampaignType]int{
	RAGGreen: {TypeExact: 10, TypeSKAG: 10, TypePerformance: 10, TypeBranded: 10},
	RAGAmber: {TypePhrase: 10, TypeTest: 10, TypeCategory: 10},
	RAGRed:   {TypeResearch: 5, TypeDiscovery: 5, TypeAuto: 5, TypeBroad: 5},
}

// volumeAlignment scores a keyword's search volume tier against a campaign type (max 10).
var volumeAlignment = map[scoring.VolumeTier]map[CampaignType]int{
	scoring.VolumeHigh:   {TypeBroad: 10, TypeAuto: 10, TypeResearch: 10, TypeDiscovery: 10, TypeCategory: 10},
	scoring.VolumeMedium: {TypePhrase: 10, TypeTest: 10, TypeCategory: 10},
	scoring.VolumeLow:    {TypeExact: 10, TypeSKAG: 10, TypePerformance: 10},
}

// lifecycleMatch is the match type a keyword normally runs at in each lifecycle stage.
var lifecycleMatch = map[model.LifecycleStage]model.Match{
	model.LifecycleDiscovery:   model.MatchBroad,
	model.LifecycleTest:        model.MatchPhrase,
	model.LifecyclePerformance: model.MatchExact,
	model.LifecycleSKAG:        model.MatchExact,
}

// campaignMatch is the match type a keyword should use inside each campaign type.
var campaignMatch = map[CampaignType]model.Match{
	TypeAuto:        model.MatchAuto,
	TypeExact:       model.MatchExact,
	TypeSKAG:        model.MatchExact,
	TypePerformance: model.MatchExact,
	TypeBranded:     model.MatchExact,
	TypePhrase:      model.MatchPhrase,
	TypeTest:        model.MatchPhrase,
	TypeCompetitor:  model.MatchPhrase,
	TypeBroad:       model.MatchBroad,
	TypeResearch:    model.MatchBroad,
	TypeDiscovery:   model.MatchBroad,
	TypeCategory:    model.MatchBroad,
}

// intendedMatch is the keyword's own match type, or the one its lifecycle implies.
func intendedMatch(k model.Keyword) model.Match {
	if k.MatchType.Valid() {
		return k.MatchType
	}
	if m, ok := lifecycleMatch[k.Lifecycle]; ok {
		return m
	}
	return model.MatchBroad
}

// ragStatusOf rates performance against the target ACoS.
func ragStatusOf(perf model.PerformanceMetrics, targetACoS float64) RAGStatus {
	if !perf.HasSales() {
		if perf.Clicks >= redNoSalesClicks {
			return RAGRed
		}
		return RAGAmber
	}

	acos := perf.ACoS()
	switch {
	case acos <= targetACoS:
		return RAGGreen
	case acos <= targetACoS*1.3:
		return RAGAmber
	default:
		return RAGRed
	}
}
