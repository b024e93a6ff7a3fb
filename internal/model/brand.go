package model

import "fmt"

// BrandSettings holds the per-brand thresholds used by scoring and bid advice.
// Rates are percentages (TargetACoS 25 means 25%).
type BrandSettings struct {
	TargetACoS            float64 `json:"target_acos" yaml:"target_acos" mapstructure:"target_acos"`
	TargetCTR             float64 `json:"target_ctr" yaml:"target_ctr" mapstructure:"target_ctr"`
	TargetCVR             float64 `json:"target_cvr" yaml:"target_cvr" mapstructure:"target_cvr"`
	TargetROAS            float64 `json:"target_roas" yaml:"target_roas" mapstructure:"target_roas"`
	ProductPrice          float64 `json:"product_price" yaml:"product_price" mapstructure:"product_price"`
	IsCompetitiveCategory bool    `json:"is_competitive_category" yaml:"is_competitive_category" mapstructure:"is_competitive_category"`
}

// DefaultBrandSettings returns the thresholds used when a brand has none configured.
func DefaultBrandSettings() BrandSettings {
	return BrandSettings{
		TargetACoS: 25,
		TargetCTR:  0.4,
		TargetCVR:  10,
		TargetROAS: 4,
	}
}

// Validate rejects negative thresholds.
func (b *BrandSettings) Validate() error {
	if b.TargetACoS < 0 || b.TargetCTR < 0 || b.TargetCVR < 0 || b.TargetROAS < 0 {
		return fmt.Errorf("brand targets must be non-negative")
	}
	if b.ProductPrice < 0 {
		return fmt.Errorf("product price must be non-negative, got %.2f", b.ProductPrice)
	}
	return nil
}
