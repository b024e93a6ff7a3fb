package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Veraticus/keyword-lifecycle/internal/cli"
	"github.com/Veraticus/keyword-lifecycle/internal/common"
	"github.com/Veraticus/keyword-lifecycle/internal/model"
	"github.com/Veraticus/keyword-lifecycle/internal/normalize"
	"github.com/Veraticus/keyword-lifecycle/internal/recommend"
)

func recommendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recommend KEYWORD",
		Short: "Suggest campaigns for a keyword",
		Long: `Rank the campaigns in a dataset by how well they suit a keyword. The
campaign's type is inferred from its name. Only campaigns scoring 50 or more
are listed. The keyword is looked up in the dataset's keywords for its
category, volume and lifecycle; unknown keywords are treated as generic.`,
		Args: cobra.ExactArgs(1),
		RunE: runRecommend,
	}

	cmd.Flags().StringP("file", "f", "", "dataset file with campaigns (yaml or json)")
	cmd.Flags().String("brand", "", "brand whose targets to use")
	addOutputFlag(cmd)

	return cmd
}

func runRecommend(cmd *cobra.Command, args []string) error {
	ds, err := loadDataset(cmd)
	if err != nil {
		return err
	}
	if len(ds.Campaigns) == 0 {
		return common.NewUserError("dataset lists no campaigns", common.ErrInvalidInput)
	}

	flagBrand, _ := cmd.Flags().GetString("brand")
	settings, err := brandSettings(cmd, resolveBrand(flagBrand, ds))
	if err != nil {
		return err
	}

	keyword := normalize.NewKeyword("", args[0])
	keyword.Category = model.CategoryGeneric
	for _, k := range ds.Keywords {
		if k.Normalized == keyword.Normalized {
			keyword = k
			break
		}
	}

	var perf *model.PerformanceMetrics
	if p, ok := ds.PerformanceMap()[keyword.Normalized]; ok {
		perf = &p
	}

	recs := recommend.NewRecommender(settings, nil).Recommend(keyword, perf, ds.Campaigns)

	return writeOutput(cmd, recs, func() error {
		out := cmd.OutOrStdout()
		if len(recs) == 0 {
			fmt.Fprintln(out, cli.FormatInfo("No campaign is a good fit for "+keyword.Text))
			return nil
		}

		names := make(map[string]string, len(ds.Campaigns))
		for _, c := range ds.Campaigns {
			names[c.ID] = c.Name
		}

		table := cli.NewTable(out, "SCORE", "CAMPAIGN", "TYPE", "MATCH", "AD GROUP", "BID", "REASON")
		for _, r := range recs {
			group, bid := "-", "-"
			if r.SuggestedAdGroup != nil {
				group = r.SuggestedAdGroup.Name
			}
			if r.SuggestedBid != nil {
				bid = formatMoney(*r.SuggestedBid)
			}
			table.Row(
				cli.FormatScore(r.Score),
				names[r.CampaignID],
				string(recommend.InferCampaignType(names[r.CampaignID])),
				string(r.SuggestedMatchType),
				group,
				bid,
				r.Reason,
			)
		}
		return table.Flush()
	})
}
