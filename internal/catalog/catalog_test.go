package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() *Catalog {
	return New([]Section{
		{Supplier: "Schueco", Profile: "S-100", Material: "Aluminium", Reinf: false, DepthMM: 100, IyyMM4: 1e7, WyyMM3: 60000},
		{Supplier: "Reynaers", Profile: "R-120", Material: "Aluminium", Reinf: true, DepthMM: 120, IyyMM4: 8e6, WyyMM3: 80000},
		{Supplier: "Schueco", Profile: "S-90", Material: "Aluminium", Reinf: false, DepthMM: 90, IyyMM4: 6e6, WyyMM3: 40000},
		{Supplier: "Jansen", Profile: "J-140", Material: "Steel", Reinf: false, DepthMM: 140, IyyMM4: 2e7, WyyMM3: 150000},
	})
}

func TestFilter_MaterialAndSupplier(t *testing.T) {
	got, err := testCatalog().Filter("Aluminium", []string{"Schueco"}, nil)
	require.NoError(t, err)
	require.Len(t, got, 2)
	// Original relative order is preserved.
	assert.Equal(t, "S-100", got[0].Profile)
	assert.Equal(t, "S-90", got[1].Profile)
}

func TestFilter_EmptyWithoutCustom(t *testing.T) {
	_, err := testCatalog().Filter("Aluminium", []string{"Jansen"}, nil)
	assert.ErrorIs(t, err, ErrNoSections)
}

func TestFilter_CustomIsAlwaysLast(t *testing.T) {
	custom := &CustomSection{Name: "My Profile", DepthMM: 150, ICm4: 500, ZCm3: 50}
	got, err := testCatalog().Filter("Aluminium", []string{"Schueco", "Reynaers"}, custom)
	require.NoError(t, err)
	require.Len(t, got, 4)

	last := got[len(got)-1]
	assert.True(t, last.Custom)
	assert.Equal(t, "My Profile", last.Profile)
	assert.Equal(t, "Custom", last.Supplier)
	assert.True(t, last.Reinf, "reinforcement defaults to true")
	// cm⁴/cm³ inputs are stored in workbook units.
	assert.InDelta(t, 5e6, last.IyyMM4, 1e-9)
	assert.InDelta(t, 50000.0, last.WyyMM3, 1e-9)
	for _, s := range got[:len(got)-1] {
		assert.False(t, s.Custom)
	}
}

func TestFilter_CustomOnly(t *testing.T) {
	// An empty filtered set is fine when a custom section is supplied.
	custom := &CustomSection{Name: "Solo", DepthMM: 100, ICm4: 300, ZCm3: 30}
	got, err := testCatalog().Filter("Aluminium", []string{"Jansen"}, custom)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].Custom)
}

func TestFilter_InvalidCustom(t *testing.T) {
	custom := &CustomSection{Name: "Bad", DepthMM: 0, ICm4: 300, ZCm3: 30}
	_, err := testCatalog().Filter("Aluminium", []string{"Schueco"}, custom)
	assert.Error(t, err)
}

func TestCustomSection_OverridesDefaults(t *testing.T) {
	reinf := false
	c := CustomSection{Name: "X", DepthMM: 80, ICm4: 100, ZCm3: 10, Reinforced: &reinf, Supplier: "Acme"}
	s := c.Section("Steel")
	assert.Equal(t, "Acme", s.Supplier)
	assert.False(t, s.Reinf)
	assert.Equal(t, "Steel", s.Material)
}

func TestSuppliers(t *testing.T) {
	assert.Equal(t, []string{"Reynaers", "Schueco"}, testCatalog().Suppliers("Aluminium"))
	assert.Equal(t, []string{"Jansen"}, testCatalog().Suppliers("Steel"))
	assert.Empty(t, testCatalog().Suppliers("Timber"))
}

func TestParseRows_SkipsHeaderAndUnitsRows(t *testing.T) {
	rows := [][]string{
		{"Supplier", "Profile Name", "Material", "Reinf", "Depth", "Iyy", "Wyy"},
		{"", "", "", "", "mm", "mm4", "mm3"},
		{"Schueco", "S-100", "Aluminium", "TRUE", "100", "10000000", "60000"},
		{"Schueco", "bad row", "Aluminium", "FALSE", "n/a", "1", "1"},
	}
	got := parseRows("Aluminium", rows)
	require.Len(t, got, 1)
	assert.Equal(t, "S-100", got[0].Profile)
	assert.True(t, got[0].Reinf)
	assert.InDelta(t, 100.0, got[0].DepthMM, 1e-9)
}
