package main

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Veraticus/keyword-lifecycle/internal/common"
	"github.com/Veraticus/keyword-lifecycle/internal/config"
	"github.com/Veraticus/keyword-lifecycle/internal/dataset"
	"github.com/Veraticus/keyword-lifecycle/internal/engine"
	"github.com/Veraticus/keyword-lifecycle/internal/model"
)

const outputTable = "table"

// addOutputFlag registers --output on cmd.
func addOutputFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", outputTable, "output format (table, yaml, json)")
}

// writeOutput renders v as YAML or JSON, or calls table for the table format.
func writeOutput(cmd *cobra.Command, v any, table func() error) error {
	format, _ := cmd.Flags().GetString("output")
	if format == "" || format == outputTable {
		return table()
	}
	return dataset.Encode(cmd.OutOrStdout(), format, v)
}

// resolveBrand prefers the --brand flag. Otherwise the dataset's brand is used
// when it is configured, and the defaults apply when it is not.
func resolveBrand(flagBrand string, ds *dataset.Dataset) string {
	if flagBrand != "" {
		return flagBrand
	}
	if ds == nil || ds.Brand == "" {
		return ""
	}
	if slices.Contains(config.BrandNames(viper.GetViper()), strings.ToLower(ds.Brand)) {
		return ds.Brand
	}
	common.LogDebug("Dataset brand not configured, using defaults", common.Fields{"brand": ds.Brand})
	return ""
}

// brandSettings loads the settings for brand, overlaid with any --price flag.
func brandSettings(cmd *cobra.Command, brand string) (model.BrandSettings, error) {
	settings, err := config.LoadBrandSettings(viper.GetViper(), brand)
	if err != nil {
		return settings, common.NewUserError(fmt.Sprintf("could not load settings for brand %q", brand), err)
	}
	if f := cmd.Flags().Lookup("price"); f != nil && f.Changed {
		settings.ProductPrice, _ = cmd.Flags().GetFloat64("price")
	}
	return settings, nil
}

// newEngine builds an engine from the global config and the brand's settings.
func newEngine(cmd *cobra.Command, brand string) (*engine.Engine, error) {
	settings, err := brandSettings(cmd, brand)
	if err != nil {
		return nil, err
	}

	threshold, err := dedupThreshold(0)
	if err != nil {
		return nil, err
	}

	cfg := engine.Config{
		Settings:             settings,
		DedupThreshold:       threshold,
		AllowCeilingOverride: viper.GetBool(config.KeyCeilingOverride),
	}
	return engine.NewWithConfig(cfg, slog.Default()), nil
}

// dedupThreshold returns the flag value when one was given, else the configured threshold.
func dedupThreshold(flagValue float64) (float64, error) {
	if flagValue == 0 {
		return config.DedupThreshold(viper.GetViper())
	}
	if flagValue < 0 || flagValue > 1 {
		return 0, common.NewUserError(fmt.Sprintf("threshold must be in (0, 1], got %v", flagValue), common.ErrInvalidInput)
	}
	return flagValue, nil
}

// loadDataset reads the --file dataset.
func loadDataset(cmd *cobra.Command) (*dataset.Dataset, error) {
	path, _ := cmd.Flags().GetString("file")
	if path == "" {
		return nil, common.NewUserError("a dataset file is required (--file)", common.ErrMissingConfig)
	}
	ds, err := dataset.Load(path)
	if err != nil {
		return nil, common.NewUserError("could not load dataset", err)
	}
	common.LogInfo("Dataset loaded", common.Fields{
		"file":        path,
		"keywords":    len(ds.Keywords),
		"performance": len(ds.Performance),
		"campaigns":   len(ds.Campaigns),
		"names":       len(ds.Names),
	})
	return ds, nil
}

func formatMoney(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

func pct(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}
