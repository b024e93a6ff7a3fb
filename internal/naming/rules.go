package naming

import (
	"slices"

	"github.com/Veraticus/keyword-lifecycle/internal/model"
)

// stageThemes lists the themes each funnel stage may run.
var stageThemes = map[model.Stage][]model.Theme{
	model.StageLaunch:   {model.ThemeResearch, model.ThemeCategory},
	model.StageOptimize: {model.ThemePerformance, model.ThemeComp, model.ThemeCategory},
	model.StageScale:    {model.ThemeCrossSell, model.ThemeAwareness, model.ThemeCategory},
	model.StageMaintain: {model.ThemeRemarketing, model.ThemeBranded},
}

// typeMatches lists the match types each ad product supports.
var typeMatches = map[model.AdType][]model.Match{
	model.AdTypeSP: {model.MatchAuto, model.MatchBroad, model.MatchPhrase, model.MatchExact, model.MatchPT},
	model.AdTypeSB: {model.MatchBroad, model.MatchPhrase, model.MatchExact, model.MatchVideo},
	model.AdTypeSD: {model.MatchBroad, model.MatchPhrase},
}

// stageNames are the human-readable stage labels used in messages.
var stageNames = map[model.Stage]string{
	model.StageLaunch:   "Launch",
	model.StageOptimize: "Optimize",
	model.StageScale:    "Scale",
	model.StageMaintain: "Maintain",
}

// AllowedThemes returns the themes a stage may use, or nil for an unknown stage.
func AllowedThemes(stage model.Stage) []model.Theme {
	return slices.Clone(stageThemes[stage])
}

// AllowedMatches returns the match types an ad type supports, or nil for an unknown type.
func AllowedMatches(adType model.AdType) []model.Match {
	return slices.Clone(typeMatches[adType])
}

// StageAllowsTheme reports whether the stage/theme pair is permitted.
func StageAllowsTheme(stage model.Stage, theme model.Theme) bool {
	return slices.Contains(stageThemes[stage], theme)
}

// TypeAllowsMatch reports whether the type/match pair is permitted.
func TypeAllowsMatch(adType model.AdType, match model.Match) bool {
	return slices.Contains(typeMatches[adType], match)
}

// Suggest returns a copy of c with any rule-breaking theme or match replaced by
// the first allowed value, along with a description of each change.
func Suggest(c model.NamingComponents) (model.NamingComponents, []string) {
	var changes []string

	if allowed := stageThemes[c.Stage]; len(allowed) > 0 && !slices.Contains(allowed, c.Theme) {
		changes = append(changes, "theme "+string(c.Theme)+" -> "+string(allowed[0]))
		c.Theme = allowed[0]
	}
	if allowed := typeMatches[c.Type]; len(allowed) > 0 && !slices.Contains(allowed, c.Match) {
		changes = append(changes, "match "+string(c.Match)+" -> "+string(allowed[0]))
		c.Match = allowed[0]
	}

	return c, changes
}
