package naming

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/keyword-lifecycle/internal/model"
)

func fixedClock() Option {
	return WithClock(func() time.Time {
		return time.Date(2025, time.October, 15, 12, 0, 0, 0, time.UTC)
	})
}

func TestValidate_ConventionExamples(t *testing.T) {
	t.Run("valid launch research auto", func(t *testing.T) {
		result := Validate("NIKE_US_L_SP_AUTO_RESEARCH_202510")
		assert.True(t, result.IsValid)
		assert.Empty(t, result.Errors)
		require.NotNil(t, result.Components)
		assert.Equal(t, "NIKE", result.Components.Brand)
	})

	t.Run("launch cannot remarket", func(t *testing.T) {
		result := Validate("NIKE_US_L_SP_AUTO_REMARKETING_202510")
		assert.False(t, result.IsValid)
		require.NotEmpty(t, result.Errors)
		assert.Contains(t, result.Errors[0], "stage-theme mismatch")
		assert.Contains(t, result.Errors[0], "REMARKETING")
	})

	t.Run("display cannot use exact", func(t *testing.T) {
		result := Validate("NIKE_US_S_SD_EXACT_AWARENESS_202510")
		assert.False(t, result.IsValid)
		require.Len(t, result.Errors, 1)
		assert.Contains(t, result.Errors[0], "type-match mismatch")
		assert.Contains(t, result.Errors[0], "EXACT")
	})
}

func TestValidator_Validate(t *testing.T) {
	v := NewValidator(fixedClock())

	tests := []struct {
		name         string
		input        string
		wantValid    bool
		wantErrors   []string
		wantWarnings []string
	}{
		{
			name:      "valid optimize performance exact",
			input:     "ACME_DE_O_SP_EXACT_PERFORMANCE_202509",
			wantValid: true,
		},
		{
			name:      "valid maintain branded",
			input:     "ACME_DE_M_SB_PHRASE_BRANDED_202510",
			wantValid: true,
		},
		{
			name:       "structural failure",
			input:      "ACME-DE-O-SP",
			wantErrors: []string{"invalid campaign name format"},
		},
		{
			name:       "every structural problem reported",
			input:      "acme!_usa_X_SP_AUTO_RESEARCH_2025",
			wantErrors: []string{"invalid brand", "invalid country", "invalid stage", "invalid date code"},
		},
		{
			name:       "both cross-field rules broken",
			input:      "ACME_US_L_SD_EXACT_REMARKETING_202510",
			wantErrors: []string{"stage-theme mismatch", "type-match mismatch"},
		},
		{
			name:         "sp auto outside research warns",
			input:        "ACME_US_L_SP_AUTO_CATEGORY_202510",
			wantValid:    true,
			wantWarnings: []string{"SP AUTO campaigns are normally RESEARCH themed"},
		},
		{
			name:      "sb video awareness is fine",
			input:     "ACME_US_S_SB_VIDEO_AWARENESS_202510",
			wantValid: true,
		},
		{
			name:         "sb video outside awareness warns",
			input:        "ACME_US_S_SB_VIDEO_CROSSSELL_202510",
			wantValid:    true,
			wantWarnings: []string{"SB VIDEO campaigns are normally AWARENESS themed"},
		},
		{
			name:       "sd video is a hard error",
			input:      "ACME_US_S_SD_VIDEO_AWARENESS_202510",
			wantErrors: []string{"type-match mismatch"},
		},
		{
			name:       "rules and date accumulate",
			input:      "ACME_US_L_SD_EXACT_REMARKETING_201901",
			wantErrors: []string{"stage-theme mismatch", "type-match mismatch", "year 2019"},
		},
		{
			name:         "far future date warns",
			input:        "ACME_US_L_SP_AUTO_RESEARCH_202606",
			wantValid:    true,
			wantWarnings: []string{"8 months in the future"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := v.Validate(tt.input)

			assert.Equal(t, tt.wantValid, result.IsValid)
			require.Len(t, result.Errors, len(tt.wantErrors), "errors: %v", result.Errors)
			for i, want := range tt.wantErrors {
				assert.Contains(t, result.Errors[i], want)
			}
			require.Len(t, result.Warnings, len(tt.wantWarnings), "warnings: %v", result.Warnings)
			for i, want := range tt.wantWarnings {
				assert.Contains(t, result.Warnings[i], want)
			}
			if tt.wantValid {
				assert.NotNil(t, result.Components)
			}
		})
	}
}

func TestValidator_ValidateComponents(t *testing.T) {
	v := NewValidator(fixedClock())

	result := v.ValidateComponents(model.NamingComponents{
		Brand:    "NIKE",
		Country:  "US",
		Stage:    model.StageMaintain,
		Type:     model.AdTypeSP,
		Match:    model.MatchExact,
		Theme:    model.ThemeBranded,
		DateCode: "202508",
	})
	assert.True(t, result.IsValid)

	result = v.ValidateComponents(model.NamingComponents{
		Brand:    "NI_KE",
		Country:  "US",
		Stage:    model.StageMaintain,
		Type:     model.AdTypeSP,
		Match:    model.MatchExact,
		Theme:    model.ThemeBranded,
		DateCode: "202508",
	})
	assert.False(t, result.IsValid)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "invalid brand")
}

func TestValidateDateCode(t *testing.T) {
	v := NewValidator(fixedClock())

	tests := []struct {
		code        string
		wantValid   bool
		wantWarning bool
	}{
		{code: "202510", wantValid: true},
		{code: "202001", wantValid: true},
		{code: "202601", wantValid: true},
		{code: "202602", wantValid: true, wantWarning: true},
		{code: "202712", wantValid: true, wantWarning: true},
		{code: "202801"},
		{code: "201912"},
		{code: "201901"},
		{code: "202513"},
		{code: "202500"},
		{code: "20251"},
		{code: "2025101"},
		{code: "2025AB"},
		{code: ""},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			result := v.ValidateDateCode(tt.code)
			assert.Equal(t, tt.wantValid, result.IsValid, "errors: %v", result.Errors)
			assert.Equal(t, tt.wantWarning, len(result.Warnings) > 0, "warnings: %v", result.Warnings)
		})
	}
}

func TestValidateDateCode_PackageLevel(t *testing.T) {
	assert.False(t, ValidateDateCode("202513").IsValid)
	assert.False(t, ValidateDateCode("201901").IsValid)
	assert.True(t, ValidateDateCode("202203").IsValid)
}
