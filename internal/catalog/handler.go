package catalog

import (
	"encoding/json"
	"net/http"

	"Mullion/internal/material"
)

// Handler exposes read-only views of the loaded catalog.
type Handler struct {
	Catalog *Catalog
}

func (h *Handler) Suppliers(w http.ResponseWriter, r *http.Request) {
	mat := r.URL.Query().Get("material")
	if mat == "" {
		http.Error(w, "material query parameter required", http.StatusBadRequest)
		return
	}
	if _, err := material.Lookup(mat); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.Catalog.Suppliers(mat))
}

func (h *Handler) Sections(w http.ResponseWriter, r *http.Request) {
	sections := h.Catalog.Sections()
	if mat := r.URL.Query().Get("material"); mat != "" {
		filtered := sections[:0]
		for _, s := range sections {
			if s.Material == mat {
				filtered = append(filtered, s)
			}
		}
		sections = filtered
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(sections)
}
