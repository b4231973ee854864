package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"Rebar/internal/calc/aggregate"
	"Rebar/internal/calc/batch"
)

var scheduleHeader = []interface{}{
	"Component", "Bar", "Shape", "Dia (mm)", "Cutting length (mm)",
	"Nos", "Length (m)", "Unit wt (kg/m)", "Weight (kg)",
}

// Workbook renders calculated bars and the project summary into a two-sheet
// schedule workbook.
func Workbook(results []batch.ItemResult, summary aggregate.ProjectSummary) (*excelize.File, error) {
	f := excelize.NewFile()
	const sheet = "Schedule"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	if err := f.SetSheetRow(sheet, "A1", &scheduleHeader); err != nil {
		return nil, err
	}
	row := 2
	for _, r := range results {
		if r.Result == nil {
			continue
		}
		tag := string(r.Entry.Shape)
		if tag == "" {
			tag = string(r.Entry.BarType)
		}
		line := []interface{}{
			r.Entry.Component,
			r.Entry.Name,
			tag,
			r.Entry.DiameterMM,
			r.Result.CuttingLengthMM,
			r.Result.Count,
			r.Result.TotalLengthM,
			r.Result.UnitWeightKgM,
			r.Result.TotalWeightKg,
		}
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", row), &line); err != nil {
			return nil, err
		}
		row++
	}

	const sumSheet = "Summary"
	if _, err := f.NewSheet(sumSheet); err != nil {
		return nil, err
	}
	sumHeader := []interface{}{"Dia (mm)", "Length (m)", "Weight (kg)"}
	if err := f.SetSheetRow(sumSheet, "A1", &sumHeader); err != nil {
		return nil, err
	}
	row = 2
	for _, d := range summary.ByDiameter {
		line := []interface{}{d.DiameterMM, d.LengthM, d.WeightKg}
		if err := f.SetSheetRow(sumSheet, fmt.Sprintf("A%d", row), &line); err != nil {
			return nil, err
		}
		row++
	}
	totals := []interface{}{"Total", "", summary.TotalWeightKg}
	if err := f.SetSheetRow(sumSheet, fmt.Sprintf("A%d", row+1), &totals); err != nil {
		return nil, err
	}
	tonnes := []interface{}{"Total (t)", "", summary.TotalWeightT}
	if err := f.SetSheetRow(sumSheet, fmt.Sprintf("A%d", row+2), &tonnes); err != nil {
		return nil, err
	}
	return f, nil
}
