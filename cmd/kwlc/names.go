package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Veraticus/keyword-lifecycle/internal/cli"
	"github.com/Veraticus/keyword-lifecycle/internal/common"
	"github.com/Veraticus/keyword-lifecycle/internal/model"
	"github.com/Veraticus/keyword-lifecycle/internal/naming"
)

func namesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "names",
		Short: "Validate and build campaign names",
		Long: `Campaign names follow BRAND_COUNTRY_STAGE_TYPE_MATCH_THEME_YYYYMM,
for example ACME_US_L_SP_AUTO_RESEARCH_202508.

Stages: L (Launch), O (Optimize), S (Scale), M (Maintain).
Each stage allows only some themes and each ad type only some match types.`,
	}

	cmd.AddCommand(namesValidateCmd())
	cmd.AddCommand(namesGenerateCmd())
	cmd.AddCommand(namesParseCmd())
	cmd.AddCommand(namesFormatBrandCmd())
	cmd.AddCommand(namesExportCmd())

	return cmd
}

func namesValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate NAME...",
		Short: "Check campaign names against the naming convention",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			suggest, _ := cmd.Flags().GetBool("suggest")

			results := make([]naming.ValidationResult, 0, len(args))
			invalid := 0
			for _, name := range args {
				r := naming.Validate(name)
				if !r.IsValid {
					invalid++
				}
				results = append(results, r)
			}

			err := writeOutput(cmd, results, func() error {
				out := cmd.OutOrStdout()
				for i, r := range results {
					printValidation(cmd, args[i], r)
					if suggest && !r.IsValid && r.Components != nil {
						fixed, changes := naming.Suggest(*r.Components)
						if len(changes) > 0 {
							fmt.Fprintf(out, "    suggestion: %s (%s)\n", naming.Generate(fixed), strings.Join(changes, ", "))
						}
					}
				}
				return nil
			})
			if err != nil {
				return err
			}

			if invalid > 0 {
				return common.NewUserError(fmt.Sprintf("%d of %d name(s) invalid", invalid, len(args)), common.ErrInvalidName)
			}
			return nil
		},
	}

	cmd.Flags().Bool("suggest", false, "propose the nearest valid name for invalid ones")
	addOutputFlag(cmd)

	return cmd
}

func printValidation(cmd *cobra.Command, name string, r naming.ValidationResult) {
	out := cmd.OutOrStdout()
	if r.IsValid {
		fmt.Fprintln(out, cli.FormatSuccess(name))
	} else {
		fmt.Fprintln(out, cli.FormatError(name))
	}
	for _, e := range r.Errors {
		fmt.Fprintf(out, "    error: %s\n", e)
	}
	for _, w := range r.Warnings {
		fmt.Fprintf(out, "    warning: %s\n", w)
	}
}

func namesGenerateCmd() *cobra.Command {
	var c model.NamingComponents
	var stage, adType, match, theme string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Build a campaign name from its parts",
		Long: `Build a campaign name from its parts. The brand is formatted into a valid
token and the date code defaults to the current month. The name is validated
before it is printed.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c.Brand = naming.FormatBrandName(c.Brand)
			c.Country = strings.ToUpper(c.Country)
			c.Stage = model.Stage(strings.ToUpper(stage))
			c.Type = model.AdType(strings.ToUpper(adType))
			c.Match = model.Match(strings.ToUpper(match))
			c.Theme = model.Theme(strings.ToUpper(theme))
			if c.DateCode == "" {
				c.DateCode = time.Now().Format("200601")
			}

			name := naming.Generate(c)
			r := naming.ValidateComponents(c)
			if !r.IsValid {
				printValidation(cmd, name, r)
				return common.NewUserError("generated name is invalid", common.ErrInvalidName)
			}

			fmt.Fprintln(cmd.OutOrStdout(), name)
			for _, w := range r.Warnings {
				fmt.Fprintln(cmd.ErrOrStderr(), cli.FormatWarning(w))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&c.Brand, "brand", "", "brand name")
	cmd.Flags().StringVar(&c.Country, "country", "US", "two-letter marketplace code")
	cmd.Flags().StringVar(&stage, "stage", "", "funnel stage (L, O, S, M)")
	cmd.Flags().StringVar(&adType, "type", "SP", "ad type (SP, SB, SD)")
	cmd.Flags().StringVar(&match, "match", "", "match type (AUTO, BROAD, PHRASE, EXACT, PT, VIDEO)")
	cmd.Flags().StringVar(&theme, "theme", "", "campaign theme")
	cmd.Flags().StringVar(&c.DateCode, "date", "", "date code YYYYMM (default: this month)")
	_ = cmd.MarkFlagRequired("brand")
	_ = cmd.MarkFlagRequired("stage")
	_ = cmd.MarkFlagRequired("match")
	_ = cmd.MarkFlagRequired("theme")

	return cmd
}

func namesParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse NAME",
		Short: "Split a campaign name into its parts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, ok := naming.Parse(args[0])
			if !ok {
				return common.NewUserError(fmt.Sprintf("%q is not a well-formed campaign name", args[0]), common.ErrInvalidName)
			}

			return writeOutput(cmd, c, func() error {
				table := cli.NewTable(cmd.OutOrStdout())
				table.Row("Brand", c.Brand)
				table.Row("Country", c.Country)
				table.Row("Stage", string(c.Stage))
				table.Row("Type", string(c.Type))
				table.Row("Match", string(c.Match))
				table.Row("Theme", string(c.Theme))
				table.Row("Date", c.DateCode)
				return table.Flush()
			})
		},
	}
	addOutputFlag(cmd)
	return cmd
}

func namesFormatBrandCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "format-brand TEXT",
		Short: "Turn free text into a brand token",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			brand := naming.FormatBrandName(strings.Join(args, " "))
			if brand == "" {
				return common.NewUserError("brand has no letters or digits", common.ErrInvalidInput)
			}
			fmt.Fprintln(cmd.OutOrStdout(), brand)
			return nil
		},
	}
}

func namesExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Generate every name listed in a dataset",
		Long: `Generate the campaign names listed under "names" in a dataset. Valid names
are printed; invalid ones are reported with their errors and make the
command fail.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ds, err := loadDataset(cmd)
			if err != nil {
				return err
			}
			eng, err := newEngine(cmd, "")
			if err != nil {
				return err
			}

			result := eng.ExportNames(ds.Names)
			err = writeOutput(cmd, result, func() error {
				out := cmd.OutOrStdout()
				for _, name := range result.Names {
					fmt.Fprintln(out, name)
				}
				for _, rejected := range result.Rejected {
					fmt.Fprintln(cmd.ErrOrStderr(), cli.FormatError(rejected.Name+": "+strings.Join(rejected.Errors, "; ")))
				}
				return nil
			})
			if err != nil {
				return err
			}

			if len(result.Rejected) > 0 {
				return common.NewUserError(fmt.Sprintf("%d name(s) rejected", len(result.Rejected)), common.ErrInvalidName)
			}
			return nil
		},
	}

	cmd.Flags().StringP("file", "f", "", "dataset file (yaml or json)")
	addOutputFlag(cmd)

	return cmd
}
