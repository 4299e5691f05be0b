package catalog

import (
	"errors"
	"fmt"
	"sort"
)

var ErrNoSections = errors.New("no sections available")

// Section is one candidate mullion profile from the supplier database.
// Iyy and Wyy are stored in mm⁴ and mm³, the units of the workbook.
type Section struct {
	Supplier string  `json:"supplier"`
	Profile  string  `json:"profile_name"`
	Material string  `json:"material"`
	Reinf    bool    `json:"reinf"`
	DepthMM  float64 `json:"depth_mm"`
	IyyMM4   float64 `json:"iyy_mm4"`
	WyyMM3   float64 `json:"wyy_mm3"`
	Custom   bool    `json:"custom,omitempty"`
}

// ZCm3 returns the available section modulus in cm³.
func (s Section) ZCm3() float64 { return s.WyyMM3 / 1000.0 }

// ICm4 returns the second moment of area in cm⁴.
func (s Section) ICm4() float64 { return s.IyyMM4 / 10000.0 }

// CustomSection is a user-supplied profile, either entered manually or
// produced by an external geometry analysis of an imported drawing.
// I and Z arrive in cm⁴/cm³, the units shown to the engineer.
type CustomSection struct {
	Name       string  `json:"name"`
	DepthMM    float64 `json:"depth_mm"`
	ICm4       float64 `json:"i_cm4"`
	ZCm3       float64 `json:"z_cm3"`
	Reinforced *bool   `json:"reinforced,omitempty"`
	Supplier   string  `json:"supplier,omitempty"`
}

func (c CustomSection) Validate() error {
	if c.DepthMM <= 0 || c.ICm4 <= 0 || c.ZCm3 <= 0 {
		return fmt.Errorf("custom section %q: depth, I and Z must be positive", c.Name)
	}
	return nil
}

// Section converts the custom profile into a catalog row for the given
// material, applying the defaults for the optional fields.
func (c CustomSection) Section(materialName string) Section {
	supplier := c.Supplier
	if supplier == "" {
		supplier = "Custom"
	}
	reinf := true
	if c.Reinforced != nil {
		reinf = *c.Reinforced
	}
	name := c.Name
	if name == "" {
		name = "Custom Profile"
	}
	return Section{
		Supplier: supplier,
		Profile:  name,
		Material: materialName,
		Reinf:    reinf,
		DepthMM:  c.DepthMM,
		IyyMM4:   c.ICm4 * 10000.0, // cm⁴ -> mm⁴
		WyyMM3:   c.ZCm3 * 1000.0,  // cm³ -> mm³
		Custom:   true,
	}
}

// Catalog is the read-only section database, loaded once at startup.
type Catalog struct {
	sections []Section
}

func New(sections []Section) *Catalog {
	return &Catalog{sections: sections}
}

// Sections returns a copy of all rows in workbook order.
func (c *Catalog) Sections() []Section {
	out := make([]Section, len(c.sections))
	copy(out, c.sections)
	return out
}

// Suppliers lists the distinct suppliers offering the given material.
func (c *Catalog) Suppliers(materialName string) []string {
	seen := map[string]bool{}
	for _, s := range c.sections {
		if s.Material == materialName && !seen[s.Supplier] {
			seen[s.Supplier] = true
		}
	}
	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Filter selects the candidate set for one evaluation run: catalog rows
// matching the material and one of the allowed suppliers, in their original
// relative order, with the custom section (if any) appended as the final
// row. Downstream code relies on the custom row being last.
func (c *Catalog) Filter(materialName string, suppliers []string, custom *CustomSection) ([]Section, error) {
	allowed := make(map[string]bool, len(suppliers))
	for _, s := range suppliers {
		allowed[s] = true
	}

	var out []Section
	for _, s := range c.sections {
		if s.Material == materialName && allowed[s.Supplier] {
			out = append(out, s)
		}
	}

	if custom != nil {
		if err := custom.Validate(); err != nil {
			return nil, err
		}
		out = append(out, custom.Section(materialName))
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: material %q, suppliers %v", ErrNoSections, materialName, suppliers)
	}
	return out, nil
}
