package engine

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/keyword-lifecycle/internal/model"
	"github.com/Veraticus/keyword-lifecycle/internal/naming"
	"github.com/Veraticus/keyword-lifecycle/internal/scoring"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testEngine() *Engine {
	clock := func() time.Time { return time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC) }
	return NewWithConfig(DefaultConfig(), quietLogger(), naming.WithClock(clock))
}

func TestNewWithConfig_Defaults(t *testing.T) {
	e := NewWithConfig(Config{}, nil)
	assert.InDelta(t, 0.9, e.config.DedupThreshold, 1e-9)
	assert.NotNil(t, e.logger)
}

func TestKeywordID(t *testing.T) {
	a := KeywordID("search-terms", 0, "yoga mat")
	assert.Equal(t, a, KeywordID("search-terms", 0, "yoga mat"))
	assert.NotEqual(t, a, KeywordID("search-terms", 1, "yoga mat"))
	assert.NotEqual(t, a, KeywordID("planner", 0, "yoga mat"))
	assert.Len(t, a, 36)
}

func TestIngest(t *testing.T) {
	tests := []struct {
		name           string
		raw            string
		wantTexts      []string
		wantDuplicates int
		wantErrors     int
	}{
		{
			name:      "newline separated",
			raw:       "yoga mat\nwater bottle\n\n",
			wantTexts: []string{"yoga mat", "water bottle"},
		},
		{
			name:           "case variants are exact duplicates",
			raw:            "running shoes\nRunning Shoes\nwater bottle",
			wantTexts:      []string{"running shoes", "Running Shoes", "water bottle"},
			wantDuplicates: 1,
		},
		{
			name:      "csv with header",
			raw:       "keyword,volume\nyoga mat,1200\nyoga block,300",
			wantTexts: []string{"yoga mat", "yoga block"},
		},
		{
			name:       "invalid characters reject the batch",
			raw:        "yoga mat\nyoga & pilates",
			wantErrors: 1,
		},
		{
			name:       "empty input",
			raw:        "  \n ",
			wantErrors: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := testEngine().Ingest(tt.raw, "upload")

			assert.Len(t, result.Errors, tt.wantErrors)
			assert.Len(t, result.Duplicates, tt.wantDuplicates)

			texts := make([]string, 0, len(result.Keywords))
			for _, k := range result.Keywords {
				texts = append(texts, k.Text)
				assert.Equal(t, "upload", k.Source)
				assert.NotEmpty(t, k.ID)
				assert.NotEmpty(t, k.Normalized)
			}
			if tt.wantErrors > 0 {
				assert.Empty(t, texts)
			} else {
				assert.Equal(t, tt.wantTexts, texts)
			}
		})
	}
}

func TestIngest_DeterministicIDs(t *testing.T) {
	first := testEngine().Ingest("yoga mat\nyoga block", "upload")
	second := testEngine().Ingest("yoga mat\nyoga block", "upload")

	require.Len(t, first.Keywords, 2)
	require.Len(t, second.Keywords, 2)
	assert.Equal(t, first.Keywords[0].ID, second.Keywords[0].ID)
	assert.NotEqual(t, first.Keywords[0].ID, first.Keywords[1].ID)
}

func TestIngest_DuplicateIDsReferenceKeywords(t *testing.T) {
	result := testEngine().Ingest("Yoga Mat\nyoga mat", "upload")

	require.Len(t, result.Duplicates, 1)
	assert.Equal(t, result.Keywords[0].ID, result.Duplicates[0].First)
	assert.Equal(t, result.Keywords[1].ID, result.Duplicates[0].Second)
	assert.Equal(t, model.DuplicateExact, result.Duplicates[0].MatchType)
}

func TestPlan(t *testing.T) {
	keywords := []model.Keyword{
		{
			ID:           "k1",
			Text:         "yoga mat",
			Normalized:   "yoga mat",
			Category:     model.CategoryGeneric,
			Lifecycle:    model.LifecycleDiscovery,
			SearchVolume: "100K+",
		},
		{
			ID:           "k2",
			Text:         "nike running",
			Normalized:   "nike running",
			Category:     model.CategoryBranded,
			MatchType:    model.MatchExact,
			Lifecycle:    model.LifecyclePerformance,
			SearchVolume: "<1K",
		},
	}
	perf := map[string]model.PerformanceMetrics{
		"nike running": {Impressions: 5000, Clicks: 50, Orders: 5, Spend: 25, Sales: 250},
	}
	campaigns := []model.Campaign{
		{ID: "c1", Name: "Yoga Exact - Top"},
		{ID: "c2", Name: "Yoga Broad Harvest", AdGroups: []model.AdGroup{{ID: "g3", Name: "Generic yoga terms"}}},
		{ID: "c4", Name: "NIKE Branded"},
	}

	var calls [][2]int
	plans := testEngine().Plan(PlanInput{Keywords: keywords, Performance: perf, Campaigns: campaigns}, func(done, total int) {
		calls = append(calls, [2]int{done, total})
	})

	require.Len(t, plans, 2)
	assert.Equal(t, [][2]int{{1, 2}, {2, 2}}, calls)

	settings := model.DefaultBrandSettings()

	first := plans[0]
	assert.Equal(t, "k1", first.Keyword.ID)
	assert.Nil(t, first.Bid)
	assert.Equal(t, scoring.CalculateOpportunityScore(keywords[0], nil, settings), first.Score)
	assert.Equal(t, scoring.GetOpportunityTier(first.Score), first.Tier)
	assert.False(t, first.Breakdown.HasPerformance)
	require.NotEmpty(t, first.Recommendations)
	assert.Equal(t, "c2", first.Recommendations[0].CampaignID)

	second := plans[1]
	require.NotNil(t, second.Bid)
	p := perf["nike running"]
	assert.Equal(t, scoring.GetBidRecommendation(p, settings), *second.Bid)
	assert.Equal(t, scoring.CalculateOpportunityScore(keywords[1], &p, settings), second.Score)
	assert.True(t, second.Breakdown.HasPerformance)
}

func TestPlan_NilProgress(t *testing.T) {
	plans := testEngine().Plan(PlanInput{Keywords: []model.Keyword{{ID: "k", Text: "mat", Normalized: "mat"}}}, nil)
	require.Len(t, plans, 1)
	assert.Empty(t, plans[0].Recommendations)
}

func TestExportNames(t *testing.T) {
	components := []model.NamingComponents{
		{Brand: "NIKE", Country: "US", Stage: model.StageLaunch, Type: model.AdTypeSP, Match: model.MatchAuto, Theme: model.ThemeResearch, DateCode: "202508"},
		{Brand: "NIKE", Country: "US", Stage: model.StageLaunch, Type: model.AdTypeSP, Match: model.MatchAuto, Theme: model.ThemeCategory, DateCode: "202508"},
		{Brand: "NIKE", Country: "US", Stage: model.StageMaintain, Type: model.AdTypeSD, Match: model.MatchExact, Theme: model.ThemeResearch, DateCode: "202508"},
	}

	result := testEngine().ExportNames(components)

	assert.Equal(t, []string{
		"NIKE_US_L_SP_AUTO_RESEARCH_202508",
		"NIKE_US_L_SP_AUTO_CATEGORY_202508",
	}, result.Names)
	assert.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings, "NIKE_US_L_SP_AUTO_CATEGORY_202508")

	require.Len(t, result.Rejected, 1)
	assert.Equal(t, "NIKE_US_M_SD_EXACT_RESEARCH_202508", result.Rejected[0].Name)
	assert.Len(t, result.Rejected[0].Errors, 2)
}
