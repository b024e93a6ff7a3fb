package naming

import (
	"fmt"
	"strconv"
	"time"

	"github.com/Veraticus/keyword-lifecycle/internal/model"
)

const (
	// MinYear is the earliest year a date code may carry.
	MinYear = 2020
	// maxYearsAhead bounds how far past the current year a date code may go.
	maxYearsAhead = 2
	// futureWarningMonths is how far ahead a date code may be before it draws a warning.
	futureWarningMonths = 3
)

// ValidationResult collects every problem found in a campaign name.
// Errors block acceptance; warnings do not.
type ValidationResult struct {
	Components *model.NamingComponents `json:"components,omitempty"`
	Errors     []string                `json:"errors"`
	Warnings   []string                `json:"warnings"`
	IsValid    bool                    `json:"is_valid"`
}

// Validator applies the naming convention's cross-field rules.
type Validator struct {
	now func() time.Time
}

// Option configures a Validator.
type Option func(*Validator)

// WithClock sets the clock used to judge date codes.
func WithClock(now func() time.Time) Option {
	return func(v *Validator) {
		v.now = now
	}
}

// NewValidator creates a new campaign name validator.
func NewValidator(opts ...Option) *Validator {
	v := &Validator{now: time.Now}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

var defaultValidator = NewValidator()

// Validate checks a campaign name against the naming convention.
func Validate(name string) ValidationResult {
	return defaultValidator.Validate(name)
}

// ValidateComponents checks already-parsed components against the naming convention.
func ValidateComponents(c model.NamingComponents) ValidationResult {
	return defaultValidator.ValidateComponents(c)
}

// ValidateDateCode checks a YYYYMM date code.
func ValidateDateCode(code string) ValidationResult {
	return defaultValidator.ValidateDateCode(code)
}

// Validate parses name and, if it is well formed, applies every cross-field rule.
func (v *Validator) Validate(name string) ValidationResult {
	c, problems := tokenize(name)
	if len(problems) > 0 {
		return ValidationResult{
			Errors:   problems,
			Warnings: []string{},
		}
	}
	return v.ValidateComponents(*c)
}

// ValidateComponents applies the stage/theme, type/match and date code rules.
// All rules run; violations accumulate rather than stopping at the first.
func (v *Validator) ValidateComponents(c model.NamingComponents) ValidationResult {
	result := ValidationResult{
		Components: &c,
		Errors:     []string{},
		Warnings:   []string{},
	}

	result.Errors = append(result.Errors, fieldProblems(c)...)

	if !StageAllowsTheme(c.Stage, c.Theme) {
		result.Errors = append(result.Errors, fmt.Sprintf(
			"stage-theme mismatch: stage %s (%s) cannot use theme %s; allowed: %s",
			c.Stage, stageLabel(c.Stage), c.Theme, joinValues(stageThemes[c.Stage])))
	}

	if !TypeAllowsMatch(c.Type, c.Match) {
		result.Errors = append(result.Errors, fmt.Sprintf(
			"type-match mismatch: type %s cannot use match %s; allowed: %s",
			c.Type, c.Match, joinValues(typeMatches[c.Type])))
	}

	// Conventions rather than hard rules
	if c.Type == model.AdTypeSP && c.Match == model.MatchAuto && c.Theme != model.ThemeResearch {
		result.Warnings = append(result.Warnings, fmt.Sprintf(
			"SP AUTO campaigns are normally RESEARCH themed, got %s", c.Theme))
	}
	if c.Type == model.AdTypeSB && c.Match == model.MatchVideo && c.Theme != model.ThemeAwareness {
		result.Warnings = append(result.Warnings, fmt.Sprintf(
			"SB VIDEO campaigns are normally AWARENESS themed, got %s", c.Theme))
	}

	date := v.ValidateDateCode(c.DateCode)
	result.Errors = append(result.Errors, date.Errors...)
	result.Warnings = append(result.Warnings, date.Warnings...)

	result.IsValid = len(result.Errors) == 0
	return result
}

// ValidateDateCode checks that code is YYYYMM with a year between 2020 and two
// years from now and a real month. Dates more than three months ahead are warned about.
func (v *Validator) ValidateDateCode(code string) ValidationResult {
	result := ValidationResult{
		Errors:   []string{},
		Warnings: []string{},
	}

	if !dateCodeRe.MatchString(code) {
		result.Errors = append(result.Errors, fmt.Sprintf("invalid date code %q: must be exactly 6 digits (YYYYMM)", code))
		return result
	}

	year, _ := strconv.Atoi(code[:4])
	month, _ := strconv.Atoi(code[4:])

	now := v.now()
	maxYear := now.Year() + maxYearsAhead

	if year < MinYear || year > maxYear {
		result.Errors = append(result.Errors, fmt.Sprintf(
			"invalid date code %s: year %d must be between %d and %d", code, year, MinYear, maxYear))
	}
	if month < 1 || month > 12 {
		result.Errors = append(result.Errors, fmt.Sprintf(
			"invalid date code %s: month %02d must be between 01 and 12", code, month))
	}

	if len(result.Errors) == 0 {
		ahead := (year*12 + month) - (now.Year()*12 + int(now.Month()))
		if ahead > futureWarningMonths {
			result.Warnings = append(result.Warnings, fmt.Sprintf(
				"date code %s is %d months in the future", code, ahead))
		}
	}

	result.IsValid = len(result.Errors) == 0
	return result
}

func stageLabel(s model.Stage) string {
	if name, ok := stageNames[s]; ok {
		return name
	}
	return "unknown"
}
