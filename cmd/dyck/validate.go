package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/forestrie/go-dyck/dycktesting"
)

var errMismatches = errors.New("split scan disagrees with the reference")

func newValidateCommand(ctx *cmdContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the split scan against the reference for every shape",
		Long: `Drives every shape with up to --max-leaves leaves, and --random shapes too
large for 64 bits, through each integer representation of the split scan and
compares the results with a straightforward reference.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var reprs []dycktesting.Representation
			for _, r := range ctx.conf.GetStringSlice("validate-repr") {
				reprs = append(reprs, dycktesting.Representation(r))
			}
			if len(reprs) == 0 {
				reprs = dycktesting.AllRepresentations()
			}

			v := dycktesting.NewValidator(
				dycktesting.WithLogger(ctx.named("validate")),
				dycktesting.WithMaxLeaves(ctx.conf.GetInt("max-leaves")),
				dycktesting.WithRepresentations(reprs...),
				dycktesting.WithRandomShapes(ctx.conf.GetInt("random"), ctx.conf.GetInt64("seed")),
			)
			report, err := v.Run()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d shapes\n", report.Shapes)
			for _, r := range reprs {
				checked, ok := report.Checked[r]
				if !ok {
					continue
				}
				fmt.Fprintf(out, "%-8s %8d %v\n", r, checked, report.Elapsed[r])
			}
			for _, m := range report.Mismatches {
				fmt.Fprintln(out, m)
			}
			if !report.OK() {
				return fmt.Errorf("%w: %d mismatches", errMismatches, len(report.Mismatches))
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.Int("max-leaves", 10, fmt.Sprintf("Enumerate every shape with up to this many leaves, at most %d", dycktesting.MaxValidatorLeaves))
	f.Int("random", 0, "Number of random shapes beyond 64 bits")
	f.Int64("seed", 1, "Seed for the random shapes")
	f.StringSlice("repr", nil, "Representations to check, default all")
	_ = ctx.conf.BindPFlag("max-leaves", f.Lookup("max-leaves"))
	_ = ctx.conf.BindPFlag("random", f.Lookup("random"))
	_ = ctx.conf.BindPFlag("seed", f.Lookup("seed"))
	_ = ctx.conf.BindPFlag("validate-repr", f.Lookup("repr"))
	return cmd
}
