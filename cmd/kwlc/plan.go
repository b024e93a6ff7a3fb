package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Veraticus/keyword-lifecycle/internal/cli"
	"github.com/Veraticus/keyword-lifecycle/internal/common"
	"github.com/Veraticus/keyword-lifecycle/internal/engine"
	"github.com/Veraticus/keyword-lifecycle/internal/model"
	"github.com/Veraticus/keyword-lifecycle/internal/scoring"
)

// progressThreshold is the batch size above which plan draws a progress bar.
const progressThreshold = 50

func planCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Score, price and place every keyword in a dataset",
		Long: `Run the full decision pipeline over a dataset: opportunity score and tier
for each keyword, bid advice where performance exists, and the best-fitting
campaigns from the dataset's campaign list.`,
		RunE: runPlan,
	}

	cmd.Flags().StringP("file", "f", "", "dataset file (yaml or json)")
	cmd.Flags().String("brand", "", "brand whose targets to use")
	cmd.Flags().Float64("price", 0, "product price (overrides the brand setting)")
	cmd.Flags().Int("top", 1, "campaign suggestions to show per keyword")
	cmd.Flags().Bool("no-progress", false, "never draw a progress bar")
	addOutputFlag(cmd)

	return cmd
}

func runPlan(cmd *cobra.Command, _ []string) error {
	ds, err := loadDataset(cmd)
	if err != nil {
		return err
	}
	if len(ds.Keywords) == 0 {
		return common.NewUserError("dataset lists no keywords", common.ErrInvalidInput)
	}

	flagBrand, _ := cmd.Flags().GetString("brand")
	eng, err := newEngine(cmd, resolveBrand(flagBrand, ds))
	if err != nil {
		return err
	}

	var progress engine.ProgressFunc
	if quiet, _ := cmd.Flags().GetBool("no-progress"); !quiet && len(ds.Keywords) > progressThreshold {
		progress = cli.NewProgress(cmd.ErrOrStderr(), len(ds.Keywords), "Planning keywords...")
	}

	plans := eng.Plan(engine.PlanInput{
		Keywords:    ds.Keywords,
		Performance: ds.PerformanceMap(),
		Campaigns:   ds.Campaigns,
	}, progress)

	top, _ := cmd.Flags().GetInt("top")
	return writeOutput(cmd, plans, func() error {
		return printPlans(cmd, plans, ds.Campaigns, top)
	})
}

func printPlans(cmd *cobra.Command, plans []engine.KeywordPlan, campaigns []model.Campaign, top int) error {
	out := cmd.OutOrStdout()

	names := make(map[string]string, len(campaigns))
	for _, c := range campaigns {
		names[c.ID] = c.Name
	}

	tiers := map[scoring.OpportunityTier]int{}
	table := cli.NewTable(out, "SCORE", "TIER", "KEYWORD", "BID", "CAMPAIGN")
	for _, p := range plans {
		tiers[p.Tier]++

		bid := "-"
		if p.Bid != nil {
			bid = formatMoney(p.Bid.SuggestedBid)
		}

		recs := p.Recommendations
		if len(recs) > top {
			recs = recs[:max(top, 0)]
		}
		placements := make([]string, 0, len(recs))
		for _, r := range recs {
			placements = append(placements, fmt.Sprintf("%s (%d)", names[r.CampaignID], r.Score))
		}
		campaign := "-"
		if len(placements) > 0 {
			campaign = strings.Join(placements, ", ")
		}

		table.Row(cli.FormatScore(p.Score), cli.FormatTier(string(p.Tier)), p.Keyword.Text, bid, campaign)
	}
	if err := table.Flush(); err != nil {
		return err
	}

	summary := fmt.Sprintf("%d keywords: %d high, %d medium, %d low",
		len(plans), tiers[scoring.TierHigh], tiers[scoring.TierMedium], tiers[scoring.TierLow])
	fmt.Fprintln(out)
	fmt.Fprintln(out, cli.RenderBox(cli.ChartIcon+" Plan", summary))
	return nil
}
