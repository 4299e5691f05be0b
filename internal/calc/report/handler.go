package report

import (
	"encoding/json"
	"errors"
	"net/http"

	mullion "Mullion/internal/calc/mullion"
	"Mullion/internal/catalog"
)

type Handler struct {
	Catalog *catalog.Catalog
}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := mullion.Evaluate(input.Request, h.Catalog)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, catalog.ErrNoSections) {
			status = http.StatusUnprocessableEntity
		}
		http.Error(w, err.Error(), status)
		return
	}

	pdf := Build(input, res)
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"mullion_report.pdf\"")
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}
