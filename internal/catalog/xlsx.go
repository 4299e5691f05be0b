package catalog

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Sheet names in the cross-section workbook, one per material. Fixed order
// keeps catalog row order identical across restarts.
var materialSheets = []struct {
	material string
	sheet    string
}{
	{"Aluminium", "Alu Mullion Database"},
	{"Steel", "Steel Mullion Database"},
}

// LoadWorkbook reads the section database workbook from disk.
func LoadWorkbook(path string) (*Catalog, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return fromFile(f)
}

// ReadWorkbook reads a section database workbook from a stream, e.g. an
// uploaded file.
func ReadWorkbook(r io.Reader) (*Catalog, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return fromFile(f)
}

func fromFile(f *excelize.File) (*Catalog, error) {
	var sections []Section
	for _, ms := range materialSheets {
		rows, err := f.GetRows(ms.sheet)
		if err != nil {
			// A workbook may carry only one of the two materials.
			continue
		}
		sections = append(sections, parseRows(ms.material, rows)...)
	}
	if len(sections) == 0 {
		return nil, fmt.Errorf("%w: workbook has no recognised sheets", ErrNoSections)
	}
	return New(sections), nil
}

// parseRows converts sheet rows to sections. Expected columns:
// Supplier, Profile Name, Material, Reinf, Depth, Iyy, Wyy.
// The first row is the header and the row under it carries units, not data.
func parseRows(materialName string, rows [][]string) []Section {
	var out []Section
	for i := 2; i < len(rows); i++ {
		row := rows[i]
		if len(row) < 7 {
			continue
		}
		depth, err := toFloat(row[4])
		if err != nil {
			continue
		}
		iyy, err := toFloat(row[5])
		if err != nil {
			continue
		}
		wyy, err := toFloat(row[6])
		if err != nil {
			continue
		}
		out = append(out, Section{
			Supplier: strings.TrimSpace(row[0]),
			Profile:  strings.TrimSpace(row[1]),
			Material: materialName,
			Reinf:    toBool(row[3]),
			DepthMM:  depth,
			IyyMM4:   iyy,
			WyyMM3:   wyy,
		})
	}
	return out
}

func toFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

func toBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "y", "1":
		return true
	}
	return false
}
