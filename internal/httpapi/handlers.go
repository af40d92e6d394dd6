package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/aman-choudhary9785/iscode/internal/is17452"
	"github.com/aman-choudhary9785/iscode/internal/mix"
	"github.com/aman-choudhary9785/iscode/internal/report"
	"github.com/aman-choudhary9785/iscode/internal/version"
)

type checkResponse struct {
	Valid    bool     `json:"valid"`
	Error    string   `json:"error,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

type materialInfo struct {
	Name            string  `json:"name"`
	SpecificGravity float64 `json:"specific_gravity"`
	MinSG           float64 `json:"min_sg"`
	MaxSG           float64 `json:"max_sg"`
	DefaultPercent  float64 `json:"default_percent"`
}

type inputRangeInfo struct {
	Field string  `json:"field"`
	Unit  string  `json:"unit,omitempty"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
}

type materialsResponse struct {
	Precursors  []materialInfo   `json:"precursors"`
	InputRanges []inputRangeInfo `json:"input_ranges"`
}

type versionResponse struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildTime string `json:"build_time"`
}

func handleDesign(w http.ResponseWriter, r *http.Request) {
	var input mix.Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := mix.Design(input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, res)
}

func handleCheck(w http.ResponseWriter, r *http.Request) {
	var input mix.Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := mix.Design(input)
	if err != nil {
		writeJSON(w, checkResponse{Valid: false, Error: err.Error()})
		return
	}
	writeJSON(w, checkResponse{Valid: true, Warnings: res.Warnings})
}

func handleReport(w http.ResponseWriter, r *http.Request) {
	var input mix.Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := mix.Design(input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"mix-design.pdf\"")
	if err := report.PDF(res, w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}

func handleMaterials(w http.ResponseWriter, r *http.Request) {
	resp := materialsResponse{
		Precursors:  make([]materialInfo, 0, len(is17452.PrecursorMaterials)),
		InputRanges: make([]inputRangeInfo, 0, len(is17452.TypicalInputRanges)),
	}
	for _, m := range is17452.PrecursorMaterials {
		resp.Precursors = append(resp.Precursors, materialInfo{
			Name:            m.Name,
			SpecificGravity: m.SpecificGravity,
			MinSG:           m.MinSG,
			MaxSG:           m.MaxSG,
			DefaultPercent:  m.DefaultPercent,
		})
	}
	for _, rng := range is17452.TypicalInputRanges {
		resp.InputRanges = append(resp.InputRanges, inputRangeInfo{
			Field: rng.Field,
			Unit:  rng.Unit,
			Min:   rng.Min,
			Max:   rng.Max,
		})
	}
	writeJSON(w, resp)
}

func handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, versionResponse{
		Version:   version.Version,
		GitCommit: version.GitCommit,
		BuildTime: version.BuildTime,
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
