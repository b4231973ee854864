package report

import (
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"

	"Rebar/internal/calc/aggregate"
	"Rebar/internal/calc/batch"
)

// Meta is the report title block.
type Meta struct {
	Project string `json:"project"`
	Author  string `json:"author"`
	Title   string `json:"title"`
	Notes   string `json:"notes"`
}

var colWidths = []float64{30, 24, 16, 28, 14, 20, 22, 24}

var colTitles = []string{
	"Component", "Shape", "Dia", "Cut len (mm)", "Nos",
	"Len (m)", "kg/m", "Weight (kg)",
}

// Build renders the bar schedule and diameter summary to an A4 PDF.
func Build(meta Meta, results []batch.ItemResult, summary aggregate.ProjectSummary) *gofpdf.Fpdf {
	if meta.Title == "" {
		meta.Title = "Bar Bending Schedule"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, meta.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", meta.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", meta.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 9)
	for i, title := range colTitles {
		pdf.CellFormat(colWidths[i], 7, title, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, r := range results {
		if r.Result == nil {
			continue
		}
		tag := string(r.Entry.Shape)
		if tag == "" {
			tag = string(r.Entry.BarType)
		}
		cells := []string{
			r.Entry.Component,
			tag,
			fmt.Sprintf("%.0f", r.Entry.DiameterMM),
			fmt.Sprintf("%.0f", r.Result.CuttingLengthMM),
			fmt.Sprintf("%d", r.Result.Count),
			fmt.Sprintf("%.2f", r.Result.TotalLengthM),
			fmt.Sprintf("%.3f", r.Result.UnitWeightKgM),
			fmt.Sprintf("%.2f", r.Result.TotalWeightKg),
		}
		for i, c := range cells {
			pdf.CellFormat(colWidths[i], 6, c, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(8)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 7, "Steel summary by diameter")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	for _, d := range summary.ByDiameter {
		pdf.Cell(0, 6, fmt.Sprintf("T%.0f: %.2f m, %.2f kg", d.DiameterMM, d.LengthM, d.WeightKg))
		pdf.Ln(6)
	}
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Grand total: %.2f kg (%.3f t)", summary.TotalWeightKg, summary.TotalWeightT))

	if meta.Notes != "" {
		pdf.Ln(10)
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 6, meta.Notes, "", "L", false)
	}
	return pdf
}
