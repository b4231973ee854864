package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	barcalc "Rebar/internal/calc/bar"
	"Rebar/internal/calc/confidence"
	"Rebar/internal/profile"
	"Rebar/internal/shape"
)

// calcCmd calculates a single bar from flags and prints the derivation.
var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Calculate one bar from flags.",
	Long:  "Calculates cutting length, bar count and weight for a single bar and prints the step-by-step derivation.",
	RunE: func(cmd *cobra.Command, args []string) error {
		shapeID, _ := cmd.Flags().GetString("shape")
		diameter, _ := cmd.Flags().GetFloat64("dia")
		spacing, _ := cmd.Flags().GetFloat64("spacing")
		span, _ := cmd.Flags().GetFloat64("span")
		cover, _ := cmd.Flags().GetFloat64("cover")
		dims, _ := cmd.Flags().GetStringSlice("dim")

		entry := barcalc.Entry{
			Shape:      shape.ID(shapeID),
			DiameterMM: diameter,
			SpacingMM:  spacing,
			SpanMM:     span,
			CoverMM:    cover,
			Dimensions: map[string]float64{},
		}
		for _, d := range dims {
			parts := strings.SplitN(d, "=", 2)
			if len(parts) != 2 {
				return fmt.Errorf("bad dimension %q, want slot=value", d)
			}
			v, err := strconv.ParseFloat(parts[1], 64)
			if err != nil {
				return fmt.Errorf("bad dimension %q: %w", d, err)
			}
			entry.Dimensions[parts[0]] = v
		}

		params := profile.Resolve(profile.ProjectConfig{ProfileID: viper.GetString("profile")})
		res, err := barcalc.Calculate(entry, nil, params)
		if err != nil {
			return err
		}
		conf := confidence.Score(entry, nil, params)

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		for _, s := range res.Steps {
			fmt.Fprintf(w, "%s\t%s\t%.3f %s\t\n", s.Description, s.Formula, s.Value, s.Units)
		}
		fmt.Fprintln(w, " \t \t \t")
		fmt.Fprintf(w, "Cutting length\t\t%.0f mm\t\n", res.CuttingLengthMM)
		fmt.Fprintf(w, "Bars\t\t%d\t\n", res.Count)
		fmt.Fprintf(w, "Total weight\t\t%.2f kg\t\n", res.TotalWeightKg)
		fmt.Fprintf(w, "Confidence\t\t%d (%s)\t\n", conf.Score, conf.Level)
		w.Flush()

		return nil
	},
}

func init() {
	rootCmd.AddCommand(calcCmd)
	calcCmd.Flags().String("shape", "straight", "shape id (straight, u-bar, stirrup, cranked, l-bar, hooked-straight)")
	calcCmd.Flags().Float64("dia", 12, "bar diameter in mm")
	calcCmd.Flags().Float64("spacing", 0, "bar spacing in mm (0 = single bar)")
	calcCmd.Flags().Float64("span", 0, "member span in mm")
	calcCmd.Flags().Float64("cover", 0, "concrete cover in mm (0 = profile default)")
	calcCmd.Flags().StringSlice("dim", nil, "dimension slot, repeatable (e.g. --dim A=1200 --dim B=300)")
}
