package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/viper"

	"github.com/Veraticus/keyword-lifecycle/internal/common"
	"github.com/Veraticus/keyword-lifecycle/internal/model"
	"github.com/Veraticus/keyword-lifecycle/internal/normalize"
)

// Config keys.
const (
	KeyLogLevel        = "logging.level"
	KeyLogFormat       = "logging.format"
	KeyDedupThreshold  = "dedup.threshold"
	KeyCeilingOverride = "bids.allow_ceiling_override"
	KeyDefaults        = "defaults"
	KeyBrands          = "brands"
)

// SetDefaults registers the built-in values for every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "text")
	v.SetDefault(KeyDedupThreshold, normalize.DefaultThreshold)
	v.SetDefault(KeyCeilingOverride, false)
}

// LoadBrandSettings resolves the settings for brand. Values under "defaults"
// override the built-in defaults, and values under "brands.<brand>" override
// both. An empty brand returns the defaults alone.
func LoadBrandSettings(v *viper.Viper, brand string) (model.BrandSettings, error) {
	settings := model.DefaultBrandSettings()

	if v.IsSet(KeyDefaults) {
		if err := v.UnmarshalKey(KeyDefaults, &settings); err != nil {
			return settings, fmt.Errorf("%w: defaults: %w", common.ErrInvalidConfig, err)
		}
	}

	if brand = strings.TrimSpace(brand); brand != "" {
		key := KeyBrands + "." + strings.ToLower(brand)
		if !v.IsSet(key) {
			return settings, fmt.Errorf("%w: %s", common.ErrUnknownBrand, brand)
		}
		if err := v.UnmarshalKey(key, &settings); err != nil {
			return settings, fmt.Errorf("%w: brand %s: %w", common.ErrInvalidConfig, brand, err)
		}
	}

	if err := settings.Validate(); err != nil {
		return settings, fmt.Errorf("%w: %w", common.ErrInvalidConfig, err)
	}

	return settings, nil
}

// BrandNames lists the configured brands in sorted order.
func BrandNames(v *viper.Viper) []string {
	brands := v.GetStringMap(KeyBrands)
	names := make([]string, 0, len(brands))
	for name := range brands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DedupThreshold returns the configured similarity threshold. It must lie in (0, 1].
func DedupThreshold(v *viper.Viper) (float64, error) {
	if !v.IsSet(KeyDedupThreshold) {
		return normalize.DefaultThreshold, nil
	}
	t := v.GetFloat64(KeyDedupThreshold)
	if t <= 0 || t > 1 {
		return normalize.DefaultThreshold, fmt.Errorf("%w: %s must be in (0, 1], got %v",
			common.ErrInvalidConfig, KeyDedupThreshold, t)
	}
	return t, nil
}
