package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/xuri/excelize/v2"

	"Rebar/internal/calc/aggregate"
	"Rebar/internal/calc/batch"
	"Rebar/internal/calc/export"
	"Rebar/internal/calc/importer"
	"Rebar/internal/calc/report"
	"Rebar/internal/profile"
)

// scheduleCmd builds a full schedule from an xlsx bar list.
var scheduleCmd = &cobra.Command{
	Use:   "schedule <barlist.xlsx>",
	Short: "Calculate a bar list workbook into a schedule.",
	Long: `Reads a bar list workbook (component, shape, diameter, spacing, span,
cover, a..f, lap per row), calculates every bar and prints the schedule.
Use --xlsx or --pdf to also write the schedule to a file.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := excelize.OpenFile(args[0])
		if err != nil {
			return fmt.Errorf("open workbook: %w", err)
		}
		defer f.Close()

		rows, err := f.GetRows(f.GetSheetName(0))
		if err != nil {
			return err
		}
		if len(rows) < 2 {
			return fmt.Errorf("workbook has no bar rows")
		}

		var items []batch.Item
		for i := 1; i < len(rows); i++ {
			entry, err := importer.ParseRow(rows[i])
			if err != nil {
				log.WithField("row", i+1).Warn("Skipping unparsable row")
				continue
			}
			items = append(items, batch.Item{Entry: entry})
		}

		params := profile.Resolve(profile.ProjectConfig{ProfileID: viper.GetString("profile")})
		results := batch.Calculate(items, params)
		summary := aggregate.Project(aggregate.Lines(results))

		printSchedule(results, summary)

		if out, _ := cmd.Flags().GetString("xlsx"); out != "" {
			wb, err := export.Workbook(results, summary)
			if err != nil {
				return err
			}
			if err := wb.SaveAs(out); err != nil {
				return err
			}
			log.WithField("path", out).Info("Schedule workbook written")
		}
		if out, _ := cmd.Flags().GetString("pdf"); out != "" {
			title, _ := cmd.Flags().GetString("title")
			pdf := report.Build(report.Meta{Title: title}, results, summary)
			if err := pdf.OutputFileAndClose(out); err != nil {
				return err
			}
			log.WithField("path", out).Info("Schedule PDF written")
		}
		return nil
	},
}

func printSchedule(results []batch.ItemResult, summary aggregate.ProjectSummary) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "COMPONENT\tSHAPE\tDIA\tCUT LEN\tNOS\tLEN (M)\tWEIGHT (KG)\t")

	for _, r := range results {
		if r.Result == nil {
			fmt.Fprintf(w, "%s\t%s\t-\t-\t-\t-\terror: %s\t\n",
				r.Entry.Component, tagOf(r), r.Error)
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%.0f\t%.0f\t%d\t%.2f\t%.2f\t\n",
			r.Entry.Component, tagOf(r), r.Entry.DiameterMM,
			r.Result.CuttingLengthMM, r.Result.Count,
			r.Result.TotalLengthM, r.Result.TotalWeightKg)
	}

	fmt.Fprintln(w, " \t \t \t \t \t \t \t")
	for _, d := range summary.ByDiameter {
		fmt.Fprintf(w, "T%.0f\t \t \t \t \t%.2f\t%.2f\t\n", d.DiameterMM, d.LengthM, d.WeightKg)
	}
	fmt.Fprintf(w, "TOTAL\t \t \t \t \t \t%.2f\t\n", summary.TotalWeightKg)
	w.Flush()

	fmt.Printf("\nGrand total: %.2f kg (%.3f t)\n", summary.TotalWeightKg, summary.TotalWeightT)
}

func tagOf(r batch.ItemResult) string {
	tag := string(r.Entry.Shape)
	if tag == "" {
		tag = string(r.Entry.BarType)
	}
	return strings.TrimSpace(tag)
}

func init() {
	rootCmd.AddCommand(scheduleCmd)
	scheduleCmd.Flags().String("xlsx", "", "write the schedule workbook to this path")
	scheduleCmd.Flags().String("pdf", "", "write the schedule PDF to this path")
	scheduleCmd.Flags().String("title", "Bar Bending Schedule", "report title")
}
