package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/Veraticus/keyword-lifecycle/internal/cli"
	"github.com/Veraticus/keyword-lifecycle/internal/model"
	"github.com/Veraticus/keyword-lifecycle/internal/scoring"
)

type scoredKeyword struct {
	Keyword   string                       `json:"keyword" yaml:"keyword"`
	Tier      scoring.OpportunityTier      `json:"tier" yaml:"tier"`
	Breakdown scoring.OpportunityBreakdown `json:"breakdown" yaml:"breakdown"`
	Score     int                          `json:"score" yaml:"score"`
}

func scoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score keyword opportunity",
		Long: `Score each keyword in a dataset from 0 to 100. Performance against the
brand's targets is worth up to 40 points, search volume 25, competition 20
and relevance 15. Scores of 70 and above are High tier, 40 and above Medium.`,
		RunE: runScore,
	}

	cmd.Flags().StringP("file", "f", "", "dataset file (yaml or json)")
	cmd.Flags().String("brand", "", "brand whose targets to score against")
	addOutputFlag(cmd)

	return cmd
}

func runScore(cmd *cobra.Command, _ []string) error {
	ds, err := loadDataset(cmd)
	if err != nil {
		return err
	}
	flagBrand, _ := cmd.Flags().GetString("brand")
	settings, err := brandSettings(cmd, resolveBrand(flagBrand, ds))
	if err != nil {
		return err
	}

	perf := ds.PerformanceMap()
	scored := make([]scoredKeyword, 0, len(ds.Keywords))
	for _, k := range ds.Keywords {
		var metrics *model.PerformanceMetrics
		if p, ok := perf[k.Normalized]; ok {
			metrics = &p
		}
		b := scoring.ScoreBreakdown(k, metrics, settings)
		scored = append(scored, scoredKeyword{
			Keyword:   k.Text,
			Score:     b.Total,
			Tier:      scoring.GetOpportunityTier(b.Total),
			Breakdown: b,
		})
	}
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })

	return writeOutput(cmd, scored, func() error {
		table := cli.NewTable(cmd.OutOrStdout(), "SCORE", "TIER", "KEYWORD", "PERF", "VOLUME", "COMP", "REL")
		for _, s := range scored {
			table.Row(
				cli.FormatScore(s.Score),
				cli.FormatTier(string(s.Tier)),
				s.Keyword,
				fmt.Sprintf("%.0f", s.Breakdown.Performance),
				fmt.Sprintf("%.0f", s.Breakdown.Volume),
				fmt.Sprintf("%.0f", s.Breakdown.Competition),
				fmt.Sprintf("%.0f", s.Breakdown.Relevance),
			)
		}
		return table.Flush()
	})
}
