package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Veraticus/keyword-lifecycle/internal/cli"
	"github.com/Veraticus/keyword-lifecycle/internal/common"
	"github.com/Veraticus/keyword-lifecycle/internal/dataset"
	"github.com/Veraticus/keyword-lifecycle/internal/engine"
)

func ingestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ingest [file]",
		Short: "Clean a raw keyword list and report duplicates",
		Long: `Read keywords from a file (or stdin), one per line or as the first column
of a CSV export. Header rows and blank lines are skipped. The batch is
validated, cleaned and normalized, and duplicate pairs are reported.

With --output yaml the result can be fed straight back in as a dataset.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runIngest,
	}

	cmd.Flags().String("source", "manual", "label recorded as each keyword's source")
	cmd.Flags().String("brand", "", "brand whose settings to use")
	addOutputFlag(cmd)

	return cmd
}

func runIngest(cmd *cobra.Command, args []string) error {
	path := "-"
	if len(args) > 0 {
		path = args[0]
	}

	raw, err := cli.ReadInput(cmd.Context(), path, cmd.InOrStdin())
	if err != nil {
		return err
	}

	source, _ := cmd.Flags().GetString("source")
	brand, _ := cmd.Flags().GetString("brand")
	eng, err := newEngine(cmd, brand)
	if err != nil {
		return err
	}

	result := eng.Ingest(raw, source)
	if len(result.Errors) > 0 {
		out := cmd.ErrOrStderr()
		for _, e := range result.Errors {
			fmt.Fprintln(out, cli.FormatError(e))
		}
		return common.NewUserError(fmt.Sprintf("%d problem(s) in keyword input", len(result.Errors)), common.ErrInvalidInput)
	}

	out := dataset.Dataset{Brand: brand, Source: source, Keywords: result.Keywords}
	return writeOutput(cmd, out, func() error {
		return printIngest(cmd, result)
	})
}

func printIngest(cmd *cobra.Command, result engine.IngestResult) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, cli.FormatTitle("Keywords"))

	table := cli.NewTable(out, "KEYWORD", "NORMALIZED", "STEM")
	for _, k := range result.Keywords {
		table.Row(k.Text, k.Normalized, k.Stem)
	}
	if err := table.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf("%d of %d parsed keywords kept", len(result.Keywords), result.Parsed)))

	if len(result.Duplicates) == 0 {
		return nil
	}

	texts := make(map[string]string, len(result.Keywords))
	for _, k := range result.Keywords {
		texts[k.ID] = k.Text
	}

	lines := make([]string, 0, len(result.Duplicates))
	for _, d := range result.Duplicates {
		lines = append(lines, fmt.Sprintf("%-12s %.2f  %s ~ %s", d.MatchType, d.Similarity, texts[d.First], texts[d.Second]))
	}
	fmt.Fprintln(out, cli.FormatWarning(fmt.Sprintf("%d duplicate pair(s)", len(result.Duplicates))))
	fmt.Fprintln(out, strings.Join(lines, "\n"))

	return nil
}
