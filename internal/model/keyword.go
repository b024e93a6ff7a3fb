// Package model defines the core data structures for the keyword lifecycle engine.
package model

// KeywordCategory classifies what a keyword is about.
type KeywordCategory string

const (
	// CategoryBranded covers searches for the brand itself.
	CategoryBranded KeywordCategory = "branded"
	// CategoryCompetitor covers searches naming a competing brand.
	CategoryCompetitor KeywordCategory = "competitor"
	// CategoryGeneric covers broad, unbranded product searches.
	CategoryGeneric KeywordCategory = "generic"
	// CategoryProduct covers product-category searches ("running shoes").
	CategoryProduct KeywordCategory = "category"
	// CategoryLongTail covers specific multi-word searches.
	CategoryLongTail KeywordCategory = "long-tail"
)

// Competition is the ad-auction competition level for a keyword.
type Competition string

// Competition levels.
const (
	CompetitionLow    Competition = "Low"
	CompetitionMedium Competition = "Medium"
	CompetitionHigh   Competition = "High"
)

// LifecycleStage is a keyword's maturity bucket.
type LifecycleStage string

// Lifecycle stages.
const (
	LifecycleDiscovery   LifecycleStage = "Discovery"
	LifecycleTest        LifecycleStage = "Test"
	LifecyclePerformance LifecycleStage = "Performance"
	LifecycleSKAG        LifecycleStage = "SKAG"
	LifecycleArchived    LifecycleStage = "Archived"
)

// Keyword is a single advertising keyword with its canonical forms.
// Normalized and Stem are derived from Text and must be recomputed whenever Text changes.
type Keyword struct {
	ID           string          `json:"id" yaml:"id"`
	Text         string          `json:"text" yaml:"text"`
	Normalized   string          `json:"normalized" yaml:"normalized"`
	Stem         string          `json:"stem" yaml:"stem"`
	Source       string          `json:"source,omitempty" yaml:"source,omitempty"`
	Category     KeywordCategory `json:"category,omitempty" yaml:"category,omitempty"`
	SearchVolume string          `json:"search_volume,omitempty" yaml:"search_volume,omitempty"`
	Competition  Competition     `json:"competition,omitempty" yaml:"competition,omitempty"`
	Lifecycle    LifecycleStage  `json:"lifecycle,omitempty" yaml:"lifecycle,omitempty"`
	MatchType    Match           `json:"match_type,omitempty" yaml:"match_type,omitempty"`
	Relevance    int             `json:"relevance,omitempty" yaml:"relevance,omitempty"`
}

// DuplicateMatchType describes how two keywords relate.
type DuplicateMatchType string

const (
	// DuplicateExact means the normalized forms are identical.
	DuplicateExact DuplicateMatchType = "exact"
	// DuplicateVariant means the stemmed forms are similar above the threshold.
	DuplicateVariant DuplicateMatchType = "variant"
	// DuplicateCrossSource means a duplicate was found between two different import sources.
	DuplicateCrossSource DuplicateMatchType = "cross-source"
)

// DuplicateRelation links two keywords found to be duplicates of each other.
// First always precedes Second in the input order.
type DuplicateRelation struct {
	First      string             `json:"first" yaml:"first"`
	Second     string             `json:"second" yaml:"second"`
	MatchType  DuplicateMatchType `json:"match_type" yaml:"match_type"`
	Similarity float64            `json:"similarity" yaml:"similarity"`
}
