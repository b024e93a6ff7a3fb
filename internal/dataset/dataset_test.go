package dataset

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/keyword-lifecycle/internal/common"
	"github.com/Veraticus/keyword-lifecycle/internal/model"
)

const sampleYAML = `
brand: acme
source: planner
keywords:
  - id: k1
    text: "Yoga Mats"
    category: generic
    search_volume: 10K-50K
    competition: Medium
  - id: k2
    text: acme yoga mat
    category: branded
    source: search-terms
performance:
  - keyword: yoga mats
    impressions: 1000
    clicks: 20
    orders: 2
    spend: 10
    sales: 60
  - keyword: "YOGA MATS"
    impressions: 500
    clicks: 5
    spend: 2.5
campaigns:
  - id: c1
    name: Yoga Exact
    ad_groups:
      - id: g1
        name: Mats
names:
  - brand: ACME
    country: US
    stage: L
    type: SP
    match: AUTO
    theme: RESEARCH
    date_code: "202508"
`

func TestDecode(t *testing.T) {
	ds, err := Decode(strings.NewReader(sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "acme", ds.Brand)
	require.Len(t, ds.Keywords, 2)
	assert.Equal(t, "yoga mats", ds.Keywords[0].Normalized)
	assert.Equal(t, "yoga mat", ds.Keywords[0].Stem)
	assert.Equal(t, "planner", ds.Keywords[0].Source)
	assert.Equal(t, "search-terms", ds.Keywords[1].Source)
	assert.Equal(t, model.CompetitionMedium, ds.Keywords[0].Competition)

	require.Len(t, ds.Campaigns, 1)
	assert.Equal(t, "Mats", ds.Campaigns[0].AdGroups[0].Name)

	require.Len(t, ds.Names, 1)
	assert.Equal(t, model.MatchAuto, ds.Names[0].Match)
	assert.Equal(t, "202508", ds.Names[0].DateCode)
}

func TestDecode_JSON(t *testing.T) {
	doc := `{"keywords": [{"id": "a", "text": "water bottle"}], "performance": [{"keyword": "water bottle", "clicks": 3}]}`

	ds, err := Decode(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, ds.Keywords, 1)
	assert.Equal(t, "water bottle", ds.Keywords[0].Normalized)
	assert.Equal(t, int64(3), ds.PerformanceMap()["water bottle"].Clicks)
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "unknown field", doc: "keyword_list: []\n"},
		{name: "negative metric", doc: "performance:\n  - keyword: mat\n    clicks: -1\n"},
		{name: "malformed", doc: "keywords: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.doc))
			assert.ErrorIs(t, err, common.ErrInvalidInput)
		})
	}
}

func TestDecode_Empty(t *testing.T) {
	ds, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, ds.Keywords)
}

func TestPerformanceMap_SumsVariants(t *testing.T) {
	ds, err := Decode(strings.NewReader(sampleYAML))
	require.NoError(t, err)

	perf := ds.PerformanceMap()
	require.Len(t, perf, 1)
	got := perf["yoga mats"]
	assert.Equal(t, int64(1500), got.Impressions)
	assert.Equal(t, int64(25), got.Clicks)
	assert.Equal(t, int64(2), got.Orders)
	assert.InDelta(t, 12.5, got.Spend, 1e-9)
	assert.InDelta(t, 60, got.Sales, 1e-9)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "plan.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(sampleYAML), 0o600))
	ds, err := Load(yamlPath)
	require.NoError(t, err)
	assert.Len(t, ds.Keywords, 2)

	txtPath := filepath.Join(dir, "plan.txt")
	require.NoError(t, os.WriteFile(txtPath, []byte(sampleYAML), 0o600))
	_, err = Load(txtPath)
	assert.ErrorIs(t, err, common.ErrUnknownFormat)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestEncode(t *testing.T) {
	value := map[string]any{"names": []string{"ACME_US_L_SP_AUTO_RESEARCH_202508"}}

	var yamlBuf bytes.Buffer
	require.NoError(t, Encode(&yamlBuf, FormatYAML, value))
	assert.Equal(t, "names:\n  - ACME_US_L_SP_AUTO_RESEARCH_202508\n", yamlBuf.String())

	var jsonBuf bytes.Buffer
	require.NoError(t, Encode(&jsonBuf, FormatJSON, value))
	assert.JSONEq(t, `{"names": ["ACME_US_L_SP_AUTO_RESEARCH_202508"]}`, jsonBuf.String())

	assert.ErrorIs(t, Encode(&jsonBuf, "xml", value), common.ErrUnknownFormat)
}
