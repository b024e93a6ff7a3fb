package model

import (
	"fmt"
)

// PerformanceMetrics holds the raw advertising counters for a keyword.
// Rates are always derived from the counters so they cannot drift.
type PerformanceMetrics struct {
	Impressions int64   `json:"impressions" yaml:"impressions"`
	Clicks      int64   `json:"clicks" yaml:"clicks"`
	Orders      int64   `json:"orders" yaml:"orders"`
	Spend       float64 `json:"spend" yaml:"spend"`
	Sales       float64 `json:"sales" yaml:"sales"`
}

// Validate ensures every counter is non-negative.
func (p *PerformanceMetrics) Validate() error {
	switch {
	case p.Impressions < 0:
		return fmt.Errorf("impressions must be non-negative, got %d", p.Impressions)
	case p.Clicks < 0:
		return fmt.Errorf("clicks must be non-negative, got %d", p.Clicks)
	case p.Orders < 0:
		return fmt.Errorf("orders must be non-negative, got %d", p.Orders)
	case p.Spend < 0:
		return fmt.Errorf("spend must be non-negative, got %.2f", p.Spend)
	case p.Sales < 0:
		return fmt.Errorf("sales must be non-negative, got %.2f", p.Sales)
	}
	return nil
}

// CTR returns the click-through rate as a percentage.
func (p PerformanceMetrics) CTR() float64 {
	if p.Impressions == 0 {
		return 0
	}
	return float64(p.Clicks) / float64(p.Impressions) * 100
}

// CVR returns the conversion rate as a percentage.
func (p PerformanceMetrics) CVR() float64 {
	if p.Clicks == 0 {
		return 0
	}
	return float64(p.Orders) / float64(p.Clicks) * 100
}

// CPC returns the average cost per click.
func (p PerformanceMetrics) CPC() float64 {
	if p.Clicks == 0 {
		return 0
	}
	return p.Spend / float64(p.Clicks)
}

// ACoS returns advertising cost of sale as a percentage.
// A keyword with spend but no sales has no meaningful ACoS and reports 0;
// callers should check HasSales first.
func (p PerformanceMetrics) ACoS() float64 {
	if p.Sales == 0 {
		return 0
	}
	return p.Spend / p.Sales * 100
}

// ROAS returns return on ad spend.
func (p PerformanceMetrics) ROAS() float64 {
	if p.Spend == 0 {
		return 0
	}
	return p.Sales / p.Spend
}

// HasSales reports whether the keyword has attributed any sales.
func (p PerformanceMetrics) HasSales() bool {
	return p.Sales > 0
}
