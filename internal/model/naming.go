package model

// Stage is the funnel stage token of a campaign name.
type Stage string

// Funnel stages: Launch, Optimize, Scale, Maintain.
const (
	StageLaunch   Stage = "L"
	StageOptimize Stage = "O"
	StageScale    Stage = "S"
	StageMaintain Stage = "M"
)

// AllStages lists the stages in canonical order.
func AllStages() []Stage {
	return []Stage{StageLaunch, StageOptimize, StageScale, StageMaintain}
}

// Valid reports whether s is a known stage.
func (s Stage) Valid() bool {
	for _, v := range AllStages() {
		if s == v {
			return true
		}
	}
	return false
}

// AdType is the ad product token of a campaign name.
type AdType string

// Ad products: Sponsored Products, Sponsored Brands, Sponsored Display.
const (
	AdTypeSP AdType = "SP"
	AdTypeSB AdType = "SB"
	AdTypeSD AdType = "SD"
)

// AllAdTypes lists the ad types in canonical order.
func AllAdTypes() []AdType {
	return []AdType{AdTypeSP, AdTypeSB, AdTypeSD}
}

// Valid reports whether t is a known ad type.
func (t AdType) Valid() bool {
	for _, v := range AllAdTypes() {
		if t == v {
			return true
		}
	}
	return false
}

// Match is a targeting match type.
type Match string

// Match types.
const (
	MatchAuto   Match = "AUTO"
	MatchBroad  Match = "BROAD"
	MatchPhrase Match = "PHRASE"
	MatchExact  Match = "EXACT"
	MatchPT     Match = "PT"
	MatchVideo  Match = "VIDEO"
)

// AllMatches lists the match types in canonical order.
func AllMatches() []Match {
	return []Match{MatchAuto, MatchBroad, MatchPhrase, MatchExact, MatchPT, MatchVideo}
}

// Valid reports whether m is a known match type.
func (m Match) Valid() bool {
	for _, v := range AllMatches() {
		if m == v {
			return true
		}
	}
	return false
}

// Theme is the campaign theme token of a campaign name.
type Theme string

// Campaign themes.
const (
	ThemeResearch    Theme = "RESEARCH"
	ThemePerformance Theme = "PERFORMANCE"
	ThemeBranded     Theme = "BRANDED"
	ThemeComp        Theme = "COMP"
	ThemeCategory    Theme = "CATEGORY"
	ThemeCrossSell   Theme = "CROSSSELL"
	ThemeAwareness   Theme = "AWARENESS"
	ThemeRemarketing Theme = "REMARKETING"
)

// AllThemes lists the themes in canonical order.
func AllThemes() []Theme {
	return []Theme{
		ThemeResearch, ThemePerformance, ThemeBranded, ThemeComp,
		ThemeCategory, ThemeCrossSell, ThemeAwareness, ThemeRemarketing,
	}
}

// Valid reports whether t is a known theme.
func (t Theme) Valid() bool {
	for _, v := range AllThemes() {
		if t == v {
			return true
		}
	}
	return false
}

// NamingComponents is the parsed form of a BRAND_COUNTRY_STAGE_TYPE_MATCH_THEME_YYYYMM campaign name.
type NamingComponents struct {
	Brand    string `json:"brand" yaml:"brand"`
	Country  string `json:"country" yaml:"country"`
	Stage    Stage  `json:"stage" yaml:"stage"`
	Type     AdType `json:"type" yaml:"type"`
	Match    Match  `json:"match" yaml:"match"`
	Theme    Theme  `json:"theme" yaml:"theme"`
	DateCode string `json:"date_code" yaml:"date_code"`
}
