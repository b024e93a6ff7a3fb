// Package naming parses, validates and generates campaign names of the form
// BRAND_COUNTRY_STAGE_TYPE_MATCH_THEME_YYYYMM.
package naming

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/Veraticus/keyword-lifecycle/internal/model"
)

const (
	// Separator joins the tokens of a campaign name.
	Separator = "_"
	// TokenCount is the number of tokens in a campaign name.
	TokenCount = 7
	// MaxBrandLength is the longest brand token allowed.
	MaxBrandLength = 20
	// Format documents the token layout.
	Format = "BRAND_COUNTRY_STAGE_TYPE_MATCH_THEME_YYYYMM"
)

var (
	brandRe    = regexp.MustCompile(`^[A-Za-z0-9]{1,20}$`)
	countryRe  = regexp.MustCompile(`^[A-Z]{2}$`)
	dateCodeRe = regexp.MustCompile(`^[0-9]{6}$`)
)

// Parse splits a campaign name into its components.
// It returns false when the name does not have the fixed seven-token shape.
func Parse(name string) (*model.NamingComponents, bool) {
	c, problems := tokenize(name)
	if len(problems) > 0 {
		return nil, false
	}
	return c, true
}

// tokenize checks the structure of name and reports every structural problem.
func tokenize(name string) (*model.NamingComponents, []string) {
	tokens := strings.Split(name, Separator)
	if len(tokens) != TokenCount {
		return nil, []string{fmt.Sprintf("invalid campaign name format: expected %d tokens (%s), got %d",
			TokenCount, Format, len(tokens))}
	}

	c := &model.NamingComponents{
		Brand:    tokens[0],
		Country:  tokens[1],
		Stage:    model.Stage(tokens[2]),
		Type:     model.AdType(tokens[3]),
		Match:    model.Match(tokens[4]),
		Theme:    model.Theme(tokens[5]),
		DateCode: tokens[6],
	}

	problems := fieldProblems(*c)
	if !dateCodeRe.MatchString(c.DateCode) {
		problems = append(problems, fmt.Sprintf("invalid date code %q: must be YYYYMM", c.DateCode))
	}

	if len(problems) > 0 {
		return nil, problems
	}
	return c, nil
}

// fieldProblems checks every token except the date code against its shape or enumeration.
func fieldProblems(c model.NamingComponents) []string {
	var problems []string
	if !brandRe.MatchString(c.Brand) {
		problems = append(problems, fmt.Sprintf("invalid brand %q: must be 1-%d alphanumeric characters", c.Brand, MaxBrandLength))
	}
	if !countryRe.MatchString(c.Country) {
		problems = append(problems, fmt.Sprintf("invalid country %q: must be a 2-letter uppercase code", c.Country))
	}
	if !c.Stage.Valid() {
		problems = append(problems, fmt.Sprintf("invalid stage %q: must be one of %s", c.Stage, joinValues(model.AllStages())))
	}
	if !c.Type.Valid() {
		problems = append(problems, fmt.Sprintf("invalid type %q: must be one of %s", c.Type, joinValues(model.AllAdTypes())))
	}
	if !c.Match.Valid() {
		problems = append(problems, fmt.Sprintf("invalid match %q: must be one of %s", c.Match, joinValues(model.AllMatches())))
	}
	if !c.Theme.Valid() {
		problems = append(problems, fmt.Sprintf("invalid theme %q: must be one of %s", c.Theme, joinValues(model.AllThemes())))
	}
	return problems
}

// Generate joins components into a campaign name. It does not validate them.
func Generate(c model.NamingComponents) string {
	return strings.Join([]string{
		c.Brand,
		c.Country,
		string(c.Stage),
		string(c.Type),
		string(c.Match),
		string(c.Theme),
		c.DateCode,
	}, Separator)
}

// FormatBrandName turns a free-text brand into a brand token: uppercase,
// alphanumerics only, at most 20 characters.
func FormatBrandName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(name) {
		if r > unicode.MaxASCII {
			continue
		}
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			if b.Len() == MaxBrandLength {
				break
			}
		}
	}
	return b.String()
}

func joinValues[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}
