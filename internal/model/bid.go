package model

import "strings"

// BidAdvisory is a bid recommendation together with the rules that produced it.
type BidAdvisory struct {
	ExpectedImpact    string   `json:"expected_impact" yaml:"expected_impact"`
	Reasoning         []string `json:"reasoning" yaml:"reasoning"`
	CurrentBid        float64  `json:"current_bid" yaml:"current_bid"`
	SuggestedBid      float64  `json:"suggested_bid" yaml:"suggested_bid"`
	CPCMax            float64  `json:"cpc_max" yaml:"cpc_max"`
	CeilingOverridden bool     `json:"ceiling_overridden,omitempty" yaml:"ceiling_overridden,omitempty"`
}

// Reason joins the fired rules in firing order.
func (b BidAdvisory) Reason() string {
	return strings.Join(b.Reasoning, ". ")
}
