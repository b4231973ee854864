package importer

import (
	"encoding/json"
	"net/http"

	"github.com/xuri/excelize/v2"

	"Rebar/internal/calc/aggregate"
	"Rebar/internal/calc/batch"
	"Rebar/internal/profile"
)

type Handler struct{}

type ImportResult struct {
	Count   int                      `json:"count"`
	Results []batch.ItemResult       `json:"results"`
	Summary aggregate.ProjectSummary `json:"summary"`
}

// Xlsx imports a bar list workbook, calculates every parsable row and
// returns the results with the project summary. Malformed rows are
// skipped; the upstream entry surface owns validation.
func (h *Handler) Xlsx(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}

	var items []batch.Item
	for i := 1; i < len(rows); i++ {
		entry, err := ParseRow(rows[i])
		if err != nil {
			continue
		}
		items = append(items, batch.Item{Entry: entry})
	}

	params := profile.Resolve(projectConfig(r))
	results := batch.Calculate(items, params)
	summary := aggregate.Project(aggregate.Lines(results))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ImportResult{
		Count:   len(results),
		Results: results,
		Summary: summary,
	})
}

// projectConfig reads the optional profile binding from the form field.
func projectConfig(r *http.Request) profile.ProjectConfig {
	return profile.ProjectConfig{ProfileID: r.FormValue("profile_id")}
}
