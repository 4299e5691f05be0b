package importer

import (
	"encoding/json"
	"errors"
	"net/http"

	mullion "Mullion/internal/calc/mullion"
	"Mullion/internal/catalog"
)

type Handler struct{}

// Mullion evaluates a request against an uploaded section workbook instead
// of the built-in catalog. The multipart form carries the workbook under
// "file" and the evaluation request JSON under "params".
func (h *Handler) Mullion(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	cat, err := catalog.ReadWorkbook(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}

	var input mullion.Input
	if err := json.Unmarshal([]byte(r.FormValue("params")), &input); err != nil {
		http.Error(w, "Invalid params", http.StatusBadRequest)
		return
	}
	if len(input.Suppliers) == 0 {
		// Default to every supplier present in the upload.
		input.Suppliers = cat.Suppliers(input.Material)
	}

	res, err := mullion.Evaluate(input, cat)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, catalog.ErrNoSections) {
			status = http.StatusUnprocessableEntity
		}
		http.Error(w, err.Error(), status)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
