package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Veraticus/keyword-lifecycle/internal/cli"
	"github.com/Veraticus/keyword-lifecycle/internal/model"
	"github.com/Veraticus/keyword-lifecycle/internal/normalize"
)

func dedupeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dedupe",
		Short: "Group duplicate keywords in a dataset",
		Long: `Compare every keyword in a dataset with every other. Identical normalized
text is an exact duplicate, near-identical stems are variants, and pairs
from different sources are flagged as cross-source.

With --keep the deduplicated keyword list is printed instead of the groups.`,
		RunE: runDedupe,
	}

	cmd.Flags().StringP("file", "f", "", "dataset file (yaml or json)")
	cmd.Flags().Float64("threshold", 0, "variant similarity threshold (default from config)")
	cmd.Flags().Bool("keep", false, "print the keywords that survive deduplication")
	addOutputFlag(cmd)

	return cmd
}

func runDedupe(cmd *cobra.Command, _ []string) error {
	ds, err := loadDataset(cmd)
	if err != nil {
		return err
	}

	flagThreshold, _ := cmd.Flags().GetFloat64("threshold")
	threshold, err := dedupThreshold(flagThreshold)
	if err != nil {
		return err
	}

	if keep, _ := cmd.Flags().GetBool("keep"); keep {
		kept := normalize.Deduplicate(ds.Keywords, threshold)
		ds.Keywords = kept
		return writeOutput(cmd, ds, func() error {
			table := cli.NewTable(cmd.OutOrStdout(), "ID", "KEYWORD")
			for _, k := range kept {
				table.Row(k.ID, k.Text)
			}
			return table.Flush()
		})
	}

	relations := normalize.FindDuplicates(ds.Keywords, threshold)
	groups := normalize.GroupDuplicates(relations)

	return writeOutput(cmd, map[string]any{"duplicates": relations, "groups": groups}, func() error {
		return printGroups(cmd, ds.Keywords, groups, len(relations))
	})
}

func printGroups(cmd *cobra.Command, keywords []model.Keyword, groups [][]string, pairs int) error {
	out := cmd.OutOrStdout()
	if len(groups) == 0 {
		fmt.Fprintln(out, cli.FormatSuccess("No duplicates found"))
		return nil
	}

	texts := make(map[string]string, len(keywords))
	for _, k := range keywords {
		texts[k.ID] = k.Text
	}

	fmt.Fprintln(out, cli.FormatTitle(fmt.Sprintf("%d duplicate group(s), %d pair(s)", len(groups), pairs)))
	for i, group := range groups {
		members := make([]string, len(group))
		for j, id := range group {
			members[j] = texts[id]
		}
		fmt.Fprintf(out, "%3d. %s\n", i+1, strings.Join(members, " | "))
	}
	return nil
}
