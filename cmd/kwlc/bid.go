package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Veraticus/keyword-lifecycle/internal/cli"
	"github.com/Veraticus/keyword-lifecycle/internal/common"
	"github.com/Veraticus/keyword-lifecycle/internal/config"
	"github.com/Veraticus/keyword-lifecycle/internal/dataset"
	"github.com/Veraticus/keyword-lifecycle/internal/model"
	"github.com/Veraticus/keyword-lifecycle/internal/scoring"
)

type bidLine struct {
	Keyword  string            `json:"keyword" yaml:"keyword"`
	Advisory model.BidAdvisory `json:"advisory" yaml:"advisory"`
}

func bidCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bid",
		Short: "Advise bids from search-term performance",
		Long: `Advise a bid for each search term. The profitability ceiling is
price × target ACoS × conversion rate, and suggested bids stay below 95% of it
unless overrides are enabled (bids.allow_ceiling_override).

Give a dataset with --file, or describe one search term with the metric flags.`,
		RunE: runBid,
	}

	cmd.Flags().StringP("file", "f", "", "dataset file (yaml or json)")
	cmd.Flags().String("brand", "", "brand whose targets to use")
	cmd.Flags().Float64("price", 0, "product price (overrides the brand setting)")
	cmd.Flags().String("keyword", "", "search term the metric flags describe")
	cmd.Flags().Int64("impressions", 0, "impressions")
	cmd.Flags().Int64("clicks", 0, "clicks")
	cmd.Flags().Int64("orders", 0, "orders")
	cmd.Flags().Float64("spend", 0, "ad spend")
	cmd.Flags().Float64("sales", 0, "attributed sales")
	cmd.Flags().Bool("allow-override", false, "let bids exceed the profitability ceiling")
	_ = viper.BindPFlag(config.KeyCeilingOverride, cmd.Flags().Lookup("allow-override"))
	addOutputFlag(cmd)

	return cmd
}

func runBid(cmd *cobra.Command, _ []string) error {
	var ds *dataset.Dataset
	if path, _ := cmd.Flags().GetString("file"); path != "" {
		loaded, err := loadDataset(cmd)
		if err != nil {
			return err
		}
		ds = loaded
	} else {
		ds = &dataset.Dataset{Performance: []dataset.PerformanceRecord{metricsFromFlags(cmd)}}
		if err := ds.Performance[0].Validate(); err != nil {
			return common.NewUserError("invalid metrics", fmt.Errorf("%w: %w", common.ErrInvalidInput, err))
		}
	}

	flagBrand, _ := cmd.Flags().GetString("brand")
	settings, err := brandSettings(cmd, resolveBrand(flagBrand, ds))
	if err != nil {
		return err
	}

	advisor := scoring.NewAdvisor(scoring.WithCeilingOverride(viper.GetBool(config.KeyCeilingOverride)))
	advice := advisor.RecommendBatch(ds.PerformanceMap(), settings)

	lines := make([]bidLine, 0, len(advice))
	for keyword, adv := range advice {
		lines = append(lines, bidLine{Keyword: keyword, Advisory: adv})
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].Keyword < lines[j].Keyword })

	return writeOutput(cmd, lines, func() error {
		out := cmd.OutOrStdout()
		table := cli.NewTable(out, "KEYWORD", "CURRENT", "SUGGESTED", "CPC MAX", "IMPACT")
		for _, l := range lines {
			suggested := formatMoney(l.Advisory.SuggestedBid)
			if l.Advisory.CeilingOverridden {
				suggested += " !"
			}
			table.Row(l.Keyword, formatMoney(l.Advisory.CurrentBid), suggested, formatMoney(l.Advisory.CPCMax), l.Advisory.ExpectedImpact)
		}
		if err := table.Flush(); err != nil {
			return err
		}
		for _, l := range lines {
			fmt.Fprintf(out, "\n%s\n  %s\n", cli.BoldStyle.Render(l.Keyword), strings.Join(l.Advisory.Reasoning, "\n  "))
		}
		return nil
	})
}

func metricsFromFlags(cmd *cobra.Command) dataset.PerformanceRecord {
	var r dataset.PerformanceRecord
	r.Keyword, _ = cmd.Flags().GetString("keyword")
	if r.Keyword == "" {
		r.Keyword = "search term"
	}
	r.Impressions, _ = cmd.Flags().GetInt64("impressions")
	r.Clicks, _ = cmd.Flags().GetInt64("clicks")
	r.Orders, _ = cmd.Flags().GetInt64("orders")
	r.Spend, _ = cmd.Flags().GetFloat64("spend")
	r.Sales, _ = cmd.Flags().GetFloat64("sales")
	return r
}
