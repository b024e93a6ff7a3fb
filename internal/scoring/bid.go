package scoring

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/Veraticus/keyword-lifecycle/internal/model"
)

// Bid advisory constants.
const (
	// DefaultConversionRatePct is the conversion rate assumed for CPC max when none is known.
	DefaultConversionRatePct = 10.0
	// FlatStartingBid is used when there is neither click history nor a product price.
	FlatStartingBid = 0.50
	// MinBid is the platform's lowest accepted bid.
	MinBid = 0.02

	ceilingSafetyMargin    = 0.95
	insufficientDataRatio  = 0.6
	insufficientDataClicks = 5
	sufficientVolumeClicks = 20
	competitiveBidStep     = 0.15
	defaultBidStep         = 0.20
	mildOverageStep        = 0.05
	conversionAdjustStep   = 0.10
)

// CalculateCPCMax returns the highest profitable cost per click:
// price × targetACoS% × conversionRate%. It is 0 when price or target ACoS is
// not positive. A non-positive conversion rate falls back to 10%.
func CalculateCPCMax(price, targetACoS, conversionRatePct float64) float64 {
	if price <= 0 || targetACoS <= 0 {
		return 0
	}
	if conversionRatePct <= 0 {
		conversionRatePct = DefaultConversionRatePct
	}
	return price * (targetACoS / 100) * (conversionRatePct / 100)
}

// Advisor produces bid recommendations.
type Advisor struct {
	logger        *slog.Logger
	allowOverride bool
}

// AdvisorOption configures an Advisor.
type AdvisorOption func(*Advisor)

// WithLogger sets the logger used for override and debug messages.
func WithLogger(logger *slog.Logger) AdvisorOption {
	return func(a *Advisor) {
		a.logger = logger
	}
}

// WithCeilingOverride lets suggested bids stay above the CPC max ceiling.
// Every override is recorded in the advisory and logged as a warning.
func WithCeilingOverride(allow bool) AdvisorOption {
	return func(a *Advisor) {
		a.allowOverride = allow
	}
}

// NewAdvisor creates a new bid advisor.
func NewAdvisor(opts ...AdvisorOption) *Advisor {
	a := &Advisor{}
	for _, opt := range opts {
		opt(a)
	}
	if a.logger == nil {
		a.logger = slog.Default()
	}
	return a
}

// GetBidRecommendation advises a bid without ever exceeding the CPC max ceiling.
func GetBidRecommendation(perf model.PerformanceMetrics, settings model.BrandSettings) model.BidAdvisory {
	return NewAdvisor().Recommend(perf, settings)
}

// Recommend advises a bid for a keyword from its performance and the brand's targets.
// Each rule that fires appends to the reasoning in the order it fired.
func (a *Advisor) Recommend(perf model.PerformanceMetrics, settings model.BrandSettings) model.BidAdvisory {
	targets := withDefaults(settings)

	adv := model.BidAdvisory{
		CurrentBid: perf.CPC(),
		CPCMax:     CalculateCPCMax(settings.ProductPrice, targets.TargetACoS, targets.TargetCVR),
		Reasoning:  []string{},
	}
	if adv.CurrentBid <= 0 {
		adv.CurrentBid = FlatStartingBid
	}

	step := defaultBidStep
	if settings.IsCompetitiveCategory {
		step = competitiveBidStep
	}

	suggested := adv.CurrentBid
	acos := perf.ACoS()
	target := targets.TargetACoS

	switch {
	case perf.Clicks < insufficientDataClicks:
		if adv.CPCMax > 0 {
			suggested = adv.CPCMax * insufficientDataRatio
			adv.Reasoning = append(adv.Reasoning, fmt.Sprintf(
				"Insufficient data (%d clicks): starting at 60%% of CPC max $%.2f", perf.Clicks, adv.CPCMax))
		} else {
			suggested = FlatStartingBid
			adv.Reasoning = append(adv.Reasoning, fmt.Sprintf(
				"Insufficient data (%d clicks) and no product price: using flat starting bid $%.2f", perf.Clicks, FlatStartingBid))
		}
		adv.ExpectedImpact = "Collect at least 5 clicks before adjusting"
	case !perf.HasSales():
		suggested = adv.CurrentBid * (1 - step)
		adv.Reasoning = append(adv.Reasoning, fmt.Sprintf(
			"No sales from %d clicks: decreasing bid by %.0f%%", perf.Clicks, step*100))
		adv.ExpectedImpact = "Lower wasted spend"
	case acos < target*0.7:
		suggested = adv.CurrentBid * (1 + step)
		adv.Reasoning = append(adv.Reasoning, fmt.Sprintf(
			"ACoS %.1f%% is well under target %.1f%%: increasing bid by %.0f%%", acos, target, step*100))
		adv.ExpectedImpact = "More impressions and sales while staying profitable"
	case acos > target*1.3:
		suggested = adv.CurrentBid * (1 - step)
		adv.Reasoning = append(adv.Reasoning, fmt.Sprintf(
			"ACoS %.1f%% is well over target %.1f%%: decreasing bid by %.0f%%", acos, target, step*100))
		adv.ExpectedImpact = "Lower ACoS with some loss of traffic"
	case acos > target*1.1:
		suggested = adv.CurrentBid * (1 - mildOverageStep)
		adv.Reasoning = append(adv.Reasoning, fmt.Sprintf(
			"ACoS %.1f%% is slightly over target %.1f%%: decreasing bid by 5%%", acos, target))
		adv.ExpectedImpact = "Small ACoS improvement with minimal traffic loss"
	default:
		adv.Reasoning = append(adv.Reasoning, fmt.Sprintf(
			"ACoS %.1f%% is on target %.1f%%: holding bid", acos, target))
		adv.ExpectedImpact = "Stable performance"
	}

	suggested = a.clamp(&adv, suggested)

	if perf.Clicks >= sufficientVolumeClicks {
		cvr := perf.CVR()
		switch {
		case cvr > targets.TargetCVR*1.5:
			suggested *= 1 + conversionAdjustStep
			adv.Reasoning = append(adv.Reasoning, fmt.Sprintf(
				"Conversion rate %.1f%% is exceptional against target %.1f%%: increasing bid by 10%%", cvr, targets.TargetCVR))
			suggested = a.clamp(&adv, suggested)
		case cvr < targets.TargetCVR*0.5:
			suggested *= 1 - conversionAdjustStep
			adv.Reasoning = append(adv.Reasoning, fmt.Sprintf(
				"Conversion rate %.1f%% is poor against target %.1f%%: decreasing bid by 10%%", cvr, targets.TargetCVR))
			suggested = a.clamp(&adv, suggested)
		}
	}

	adv.SuggestedBid = roundCents(suggested)
	if adv.CPCMax > 0 && !adv.CeilingOverridden && adv.SuggestedBid > adv.CPCMax {
		adv.SuggestedBid = math.Floor(adv.CPCMax*100) / 100
	}

	a.logger.Debug("bid recommendation",
		"current_bid", adv.CurrentBid,
		"suggested_bid", adv.SuggestedBid,
		"cpc_max", adv.CPCMax,
		"rules", len(adv.Reasoning))

	return adv
}

// clamp keeps bid within the safety ceiling below CPC max and above the platform
// minimum, noting each adjustment in the advisory.
func (a *Advisor) clamp(adv *model.BidAdvisory, bid float64) float64 {
	if adv.CPCMax > 0 {
		ceiling := adv.CPCMax * ceilingSafetyMargin
		if bid > ceiling {
			if a.allowOverride {
				if !adv.CeilingOverridden {
					adv.CeilingOverridden = true
					adv.Reasoning = append(adv.Reasoning, fmt.Sprintf(
						"Ceiling override: bid $%.2f kept above CPC max safety limit $%.2f", bid, ceiling))
					a.logger.Warn("bid exceeds profitability ceiling by override",
						"bid", bid, "ceiling", ceiling, "cpc_max", adv.CPCMax)
				}
			} else {
				bid = ceiling
				adv.Reasoning = append(adv.Reasoning, fmt.Sprintf(
					"Capped at 95%% of CPC max ($%.2f)", ceiling))
			}
		}
	}

	if bid < MinBid {
		bid = MinBid
		adv.Reasoning = append(adv.Reasoning, fmt.Sprintf("Raised to platform minimum $%.2f", MinBid))
		if adv.CPCMax > 0 && MinBid > adv.CPCMax && !adv.CeilingOverridden {
			adv.CeilingOverridden = true
			adv.Reasoning = append(adv.Reasoning, fmt.Sprintf(
				"CPC max $%.4f is below the platform minimum; this keyword cannot be profitable at any bid", adv.CPCMax))
			a.logger.Warn("platform minimum bid exceeds profitability ceiling",
				"min_bid", MinBid, "cpc_max", adv.CPCMax)
		}
	}

	return bid
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
